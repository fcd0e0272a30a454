package command

// User commands: browse profiles, follow critics, check the leaderboard.

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelcritic/cmd/cli/command/client"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "User commands",
	Long:  `Browse user profiles, follow or unfollow critics.`,
}

var listUsersCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)

		users, err := httpClient.GetUsers()
		if err != nil {
			return fmt.Errorf("failed to get users: %w", err)
		}

		for _, u := range users {
			fmt.Printf("%s  %s (%d followers, %d reviews)\n", u.ID, u.Username, u.Followers, u.ReviewCount)
		}
		return nil
	},
}

var getUserCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a user profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Send the token when available so is_following is viewer-relative.
		httpClient, err := authenticatedClient()
		if err != nil {
			httpClient = client.NewHTTPClient(apiURL)
		}

		user, err := httpClient.GetUser(args[0])
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}

		fmt.Printf("Username: %s\n", user.Username)
		if user.Bio != "" {
			fmt.Printf("Bio: %s\n", user.Bio)
		}
		fmt.Printf("Member since: %s\n", user.MemberSince)
		fmt.Printf("Followers: %d, Following: %d\n", user.Followers, user.Following)
		fmt.Printf("Reviews: %d, Points: %d\n", user.ReviewCount, user.Points)
		if user.IsFollowing {
			fmt.Println("You follow this user.")
		}
		return nil
	},
}

var followUserCmd = &cobra.Command{
	Use:   "follow [id]",
	Short: "Toggle following a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		resp, err := httpClient.FollowUser(args[0])
		if err != nil {
			return fmt.Errorf("failed to toggle follow: %w", err)
		}

		if resp.Following {
			fmt.Printf("✓ Now following %s (%d followers).\n", resp.Target.Username, resp.Target.Followers)
		} else {
			fmt.Printf("✓ Unfollowed %s (%d followers).\n", resp.Target.Username, resp.Target.Followers)
		}
		return nil
	},
}

var popularCriticsCmd = &cobra.Command{
	Use:   "popular",
	Short: "Show the popular critics leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient := client.NewHTTPClient(apiURL)

		critics, err := httpClient.GetPopularCritics()
		if err != nil {
			return fmt.Errorf("failed to get leaderboard: %w", err)
		}

		if len(critics) == 0 {
			fmt.Println("No critics ranked yet.")
			return nil
		}

		for _, c := range critics {
			fmt.Printf("#%d  %s: %d points (%d followers)\n", c.Rank, c.Username, c.Points, c.Followers)
		}
		fmt.Println(strings.Repeat("-", 50))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(listUsersCmd)
	userCmd.AddCommand(getUserCmd)
	userCmd.AddCommand(followUserCmd)
	userCmd.AddCommand(popularCriticsCmd)
}
