package main

import (
	"fmt"
	"strings"

	"github.com/rmehra23/chatlens/internal/search"
	"github.com/spf13/cobra"
)

const (
	sColorReset   = "\033[0m"
	sColorBoldRed = "\033[1;31m"
	sColorDim     = "\033[2m"
)

func colorizeSnippet(snippet string) string {
	snippet = strings.ReplaceAll(snippet, ">>>", sColorBoldRed)
	snippet = strings.ReplaceAll(snippet, "<<<", sColorReset)
	return snippet
}

func searchCmd() *cobra.Command {
	var chat, author, since string
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search across loaded chat messages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			opts := search.Options{
				Query:   strings.Join(args, " "),
				ChatKey: chat,
				Author:  author,
				Since:   since,
				Limit:   limit,
			}

			results, err := search.Search(db, opts)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			if len(results) == 0 {
				fmt.Println("no matches")
				return nil
			}

			for _, r := range results {
				snippet := strings.ReplaceAll(r.Snippet, "\n", " ")
				fmt.Printf("%s%s%s  %s: %s\n",
					sColorDim, r.Ts, sColorReset,
					r.Author, colorizeSnippet(snippet))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&chat, "chat", "", "Restrict to one chat")
	cmd.Flags().StringVar(&author, "author", "", "Restrict to one sender")
	cmd.Flags().StringVar(&since, "since", "", "Only messages since date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 50, "Max results")

	return cmd
}
