package command

// Authentication commands: register, login, logout, whoami.

import (
	"fmt"

	"github.com/spf13/cobra"

	"reelcritic/cmd/cli/authentication"
	"reelcritic/cmd/cli/command/client"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Authenticate with the ReelCritic API server. Supports registration, login, logout.`,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new ReelCritic account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.RegisterRequest
		req.Username, _ = cmd.Flags().GetString("username")
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")
		req.ConfirmPassword = req.Password

		httpClient := client.NewHTTPClient(apiURL)
		response, err := httpClient.Register(&req)
		if err != nil {
			return err
		}

		if err := saveCredentials(response); err != nil {
			return fmt.Errorf("registered, but failed to store credentials: %w", err)
		}

		fmt.Println("✓ Registration successful!")
		fmt.Printf("Logged in as %s (id %s)\n", response.User.Username, response.User.ID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to your ReelCritic account",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.LoginRequest
		req.Email, _ = cmd.Flags().GetString("email")
		req.Password, _ = cmd.Flags().GetString("password")

		httpClient := client.NewHTTPClient(apiURL)
		response, err := httpClient.Login(&req)
		if err != nil {
			return err
		}

		if err := saveCredentials(response); err != nil {
			return fmt.Errorf("logged in, but failed to store credentials: %w", err)
		}

		fmt.Printf("✓ Successfully logged in as %s!\n", response.User.Username)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from your ReelCritic account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if creds, err := authentication.GetTokens(); err == nil {
			httpClient := client.NewHTTPClient(apiURL)
			httpClient.SetToken(creds.AccessToken)
			// Best effort: clear the server session, then drop local creds.
			_ = httpClient.Logout()
		}

		if err := authentication.DeleteTokens(); err != nil {
			return fmt.Errorf("failed to clear stored credentials: %w", err)
		}
		fmt.Println("✓ Successfully logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := authenticatedClient()
		if err != nil {
			return err
		}

		user, err := httpClient.Me()
		if err != nil {
			return fmt.Errorf("failed to fetch profile: %w", err)
		}

		fmt.Printf("Username: %s\n", user.Username)
		fmt.Printf("Email: %s\n", user.Email)
		fmt.Printf("Member since: %s\n", user.MemberSince)
		fmt.Printf("Followers: %d, Following: %d\n", user.Followers, user.Following)
		fmt.Printf("Reviews: %d, Points: %d\n", user.ReviewCount, user.Points)
		return nil
	},
}

// authenticatedClient builds an HTTP client carrying the stored token.
func authenticatedClient() (*client.HTTPClient, error) {
	creds, err := authentication.GetTokens()
	if err != nil {
		return nil, fmt.Errorf("not logged in, please run 'reelcritic auth login'")
	}
	httpClient := client.NewHTTPClient(apiURL)
	httpClient.SetToken(creds.AccessToken)
	return httpClient, nil
}

func saveCredentials(response *client.AuthResponse) error {
	return authentication.StoreTokens(&authentication.StoredCredentials{
		AccessToken: response.Token,
		Username:    response.User.Username,
		UserID:      response.User.ID,
	})
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(registerCmd)
	authCmd.AddCommand(loginCmd)
	authCmd.AddCommand(logoutCmd)
	authCmd.AddCommand(whoamiCmd)

	registerCmd.Flags().StringP("username", "u", "", "Username for the new account")
	registerCmd.Flags().StringP("email", "e", "", "Email address for the new account")
	registerCmd.Flags().StringP("password", "p", "", "Password for the new account")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringP("email", "e", "", "Email address for the account")
	loginCmd.Flags().StringP("password", "p", "", "Password for the account")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
}
