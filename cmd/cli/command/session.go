package command

import (
	"fmt"
	"strconv"

	"github.com/Alireza01sjd/project-god-mode/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// sessionCmd groups the reading session subcommands
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage reading sessions",
	Long:  `Open a session when you start reading, close it when you stop, and review past sessions.`,
}

var sessionOpenCmd = &cobra.Command{
	Use:   "open",
	Short: "Open a reading session",
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, _ := cmd.Flags().GetInt64("book-id")

		httpClient, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		session, err := httpClient.OpenSession(&client.OpenSessionRequest{BookID: bookID})
		if err != nil {
			return fmt.Errorf("failed to open session: %w", err)
		}

		color.Green("✓ Session opened")
		fmt.Printf("Session ID: %s\n", session.ID)
		fmt.Printf("Started at: %s\n", session.StartTime.Format("2006-01-02 15:04:05"))
		return nil
	},
}

var sessionCloseCmd = &cobra.Command{
	Use:   "close <session-id>",
	Short: "Close a reading session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pagesRead, _ := cmd.Flags().GetInt("pages")
		if pagesRead < 0 {
			return fmt.Errorf("--pages must not be negative")
		}

		httpClient, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		session, err := httpClient.CloseSession(args[0], &client.CloseSessionRequest{
			PagesRead: pagesRead,
		})
		if err != nil {
			return fmt.Errorf("failed to close session: %w", err)
		}

		color.Green("✓ Session closed")
		fmt.Printf("Pages read: %d\n", session.PagesRead)
		fmt.Printf("Duration: %ds\n", session.DurationSeconds)
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your reading sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		var bookID *int64
		if b, _ := cmd.Flags().GetString("book-id"); b != "" {
			parsed, err := strconv.ParseInt(b, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid book id: %s", b)
			}
			bookID = &parsed
		}

		httpClient, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		sessions, err := httpClient.ListSessions(bookID)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}
		for _, s := range sessions {
			status := "open"
			if s.EndTime != nil {
				status = fmt.Sprintf("closed, %d pages, %ds", s.PagesRead, s.DurationSeconds)
			}
			fmt.Printf("%s  book %d  %s  (%s)\n",
				s.ID, s.BookID, s.StartTime.Format("2006-01-02 15:04"), status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionOpenCmd)
	sessionCmd.AddCommand(sessionCloseCmd)
	sessionCmd.AddCommand(sessionListCmd)

	sessionOpenCmd.Flags().Int64("book-id", 0, "Book ID")
	sessionOpenCmd.MarkFlagRequired("book-id")

	sessionCloseCmd.Flags().Int("pages", 0, "Pages read during the session")

	sessionListCmd.Flags().String("book-id", "", "Filter by book ID")
}
