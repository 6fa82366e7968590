package command

import (
	"fmt"
	"strconv"

	"github.com/Alireza01sjd/project-god-mode/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// progressCmd groups the reading progress subcommands
var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Manage reading progress",
	Long:  `Report and review your reading progress per book.`,
}

var progressReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report reading progress for a book",
	Long:  `Report your current page for a book. A first report creates the record; later reports update it in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, _ := cmd.Flags().GetInt64("book-id")
		currentPage, _ := cmd.Flags().GetInt("page")
		totalPages, _ := cmd.Flags().GetInt("total")

		if currentPage < 0 {
			return fmt.Errorf("--page must not be negative")
		}
		if totalPages <= 0 {
			return fmt.Errorf("--total must be a positive number")
		}

		httpClient, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		progress, err := httpClient.ReportProgress(bookID, &client.ReportProgressRequest{
			CurrentPage: currentPage,
			TotalPages:  totalPages,
		})
		if err != nil {
			return fmt.Errorf("failed to report progress: %w", err)
		}

		color.Green("✓ Progress saved")
		fmt.Printf("Book %d: page %d/%d (%.2f%%)\n",
			progress.BookID, progress.CurrentPage, progress.TotalPages, progress.Progress)
		return nil
	},
}

var progressGetCmd = &cobra.Command{
	Use:   "get <book-id>",
	Short: "Show progress for a book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid book id: %s", args[0])
		}

		httpClient, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		progress, err := httpClient.GetProgress(bookID)
		if err != nil {
			return fmt.Errorf("failed to get progress: %w", err)
		}

		fmt.Printf("Book %d: page %d/%d (%.2f%%)\n",
			progress.BookID, progress.CurrentPage, progress.TotalPages, progress.Progress)
		fmt.Printf("Last read: %s\n", progress.LastReadAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

var progressListCmd = &cobra.Command{
	Use:   "list",
	Short: "List progress across all your books",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		list, err := httpClient.ListProgress()
		if err != nil {
			return fmt.Errorf("failed to list progress: %w", err)
		}

		if len(list) == 0 {
			fmt.Println("No reading progress yet.")
			return nil
		}
		for _, p := range list {
			fmt.Printf("Book %d: page %d/%d (%.2f%%), last read %s\n",
				p.BookID, p.CurrentPage, p.TotalPages, p.Progress,
				p.LastReadAt.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.AddCommand(progressReportCmd)
	progressCmd.AddCommand(progressGetCmd)
	progressCmd.AddCommand(progressListCmd)

	progressReportCmd.Flags().Int64("book-id", 0, "Book ID")
	progressReportCmd.Flags().Int("page", 0, "Current page")
	progressReportCmd.Flags().Int("total", 0, "Total pages of your edition")
	progressReportCmd.MarkFlagRequired("book-id")
	progressReportCmd.MarkFlagRequired("page")
	progressReportCmd.MarkFlagRequired("total")
}
