package command

import (
	"fmt"
	"strconv"

	"github.com/Alireza01sjd/project-god-mode/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Book catalog commands",
	Long:  `Browse the catalog: list, view, search, create and delete books.`,
}

var listBookCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books",
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		books, err := httpClient.GetAllBooks()
		if err != nil {
			return fmt.Errorf("failed to get book list: %w", err)
		}

		if len(books) == 0 {
			fmt.Println("No books found.")
			return nil
		}

		fmt.Printf("Found %d books:\n\n", len(books))
		for _, b := range books {
			printBook(b)
			fmt.Println("---")
		}
		return nil
	},
}

var getBookCmd = &cobra.Command{
	Use:   "get <book-id>",
	Short: "Show a single book",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid book id: %s", args[0])
		}

		httpClient, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		book, err := httpClient.GetBookByID(id)
		if err != nil {
			return fmt.Errorf("failed to get book: %w", err)
		}
		printBook(*book)
		return nil
	},
}

var searchBookCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search books by title",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		httpClient, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		books, err := httpClient.SearchBooks(args[0])
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(books) == 0 {
			fmt.Println("No books matched.")
			return nil
		}
		for _, b := range books {
			fmt.Printf("%d\t%s\n", b.ID, b.Title)
		}
		return nil
	},
}

var createBookCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a book (admin only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		var req client.CreateBookRequest
		req.Title, _ = cmd.Flags().GetString("title")
		req.TotalPages, _ = cmd.Flags().GetInt("pages")
		if s, _ := cmd.Flags().GetString("slug"); s != "" {
			req.Slug = &s
		}
		if a, _ := cmd.Flags().GetInt64("author-id"); a > 0 {
			req.AuthorID = &a
		}
		if d, _ := cmd.Flags().GetString("description"); d != "" {
			req.Description = &d
		}

		httpClient, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		book, err := httpClient.CreateBook(&req)
		if err != nil {
			return fmt.Errorf("failed to create book: %w", err)
		}
		color.Green("✓ Created book %d: %s", book.ID, book.Title)
		return nil
	},
}

var deleteBookCmd = &cobra.Command{
	Use:   "delete <book-id>",
	Short: "Delete a book (admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid book id: %s", args[0])
		}

		httpClient, err := getAuthenticatedClient()
		if err != nil {
			return err
		}

		if err := httpClient.DeleteBook(id); err != nil {
			return fmt.Errorf("failed to delete book: %w", err)
		}
		color.Green("✓ Deleted book %d", id)
		return nil
	},
}

func printBook(b client.BookResponse) {
	fmt.Printf("ID: %d\n", b.ID)
	fmt.Printf("Title: %s\n", b.Title)
	fmt.Printf("Pages: %d\n", b.TotalPages)
	if b.Author != nil {
		fmt.Printf("Author: %s\n", b.Author.Name)
	}
	if b.Language != nil {
		fmt.Printf("Language: %s\n", *b.Language)
	}
	if b.Description != nil {
		fmt.Printf("Description: %s\n", *b.Description)
	}
}

func init() {
	rootCmd.AddCommand(bookCmd)
	bookCmd.AddCommand(listBookCmd)
	bookCmd.AddCommand(getBookCmd)
	bookCmd.AddCommand(searchBookCmd)
	bookCmd.AddCommand(createBookCmd)
	bookCmd.AddCommand(deleteBookCmd)

	createBookCmd.Flags().StringP("title", "t", "", "Book title")
	createBookCmd.Flags().IntP("pages", "n", 0, "Total page count")
	createBookCmd.Flags().String("slug", "", "URL slug")
	createBookCmd.Flags().Int64("author-id", 0, "Author ID")
	createBookCmd.Flags().StringP("description", "d", "", "Description")
	createBookCmd.MarkFlagRequired("title")
	createBookCmd.MarkFlagRequired("pages")
}
