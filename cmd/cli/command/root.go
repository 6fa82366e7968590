package command

// root.go defines the root command for the bookshelf CLI.

import (
	"fmt"
	"os"
	"time"

	"github.com/Alireza01sjd/project-god-mode/cmd/cli/authentication"
	"github.com/Alireza01sjd/project-god-mode/cmd/cli/command/client"

	"github.com/spf13/cobra"
)

var apiURL string // global flag for API server URL

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookshelf",
	Short: "bookshelf - reading platform command line interface",
	Long: `bookshelf is a tool for interacting with the reading platform API.
Use it to:
- Browse and search the book catalog
- Report and review your reading progress
- Open and close reading sessions

Use "bookshelf <command> -h" to see all available commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "http://localhost:8080", "API server URL")
}

// getAuthenticatedClient builds an HTTP client with the stored access
// token, refreshing it first when the stored one has expired.
func getAuthenticatedClient() (*client.HTTPClient, error) {
	creds, err := authentication.GetTokens()
	if err != nil {
		return nil, fmt.Errorf("not logged in, please run 'bookshelf auth login'")
	}
	httpClient := client.NewHTTPClient(apiURL)

	if creds.Expired() && creds.RefreshToken != "" {
		refreshed, err := httpClient.Refresh(creds.RefreshToken)
		if err != nil {
			return nil, fmt.Errorf("session expired, please run 'bookshelf auth login'")
		}
		creds.AccessToken = refreshed.AccessToken
		creds.ExpiresAt = time.Now().Add(time.Duration(refreshed.ExpiresIn) * time.Second).Unix()
		// keychain write failures are not fatal; the token works for
		// this invocation either way
		_ = authentication.StoreTokens(creds)
	}

	httpClient.SetToken(creds.AccessToken)
	return httpClient, nil
}
