package command

// root.go defines the root command for the reelcritic CLI.

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var apiURL string // global flag for the API server URL

var rootCmd = &cobra.Command{
	Use:   "reelcritic",
	Short: "reelcritic - ReelCritic Command Line Interface",
	Long: `reelcritic is a tool to interact with the ReelCritic API. Use it to:
- Browse and search the movie catalog
- Post and read reviews
- Follow other critics and check the leaderboard
- Read the community feed

Use "reelcritic [command] -h" to see all available commands.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "API server URL")
}
