package main

import (
	"fmt"
	"strconv"

	"github.com/rmehra23/chatlens/internal/render"
	"github.com/spf13/cobra"
)

func wordsCmd() *cobra.Command {
	var chat, user string
	var cloud bool

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Most common words, stop words excluded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			_, msgs, err := loadRecords(db, chat)
			if err != nil {
				return err
			}
			a, err := newAnalyzer(cfg)
			if err != nil {
				return err
			}

			if cloud {
				// raw text for an external word-cloud renderer
				text := a.WordCloudText(user, msgs)
				if text == "" {
					return nil
				}
				fmt.Println(text)
				return nil
			}

			words := a.WordFrequency(user, msgs)
			rows := make([][]string, len(words))
			for i, w := range words {
				rows[i] = []string{w.Word, strconv.Itoa(w.Count)}
			}
			fmt.Print(render.Table([]string{"word", "count"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&chat, "chat", "", "Chat to analyze (default: the only loaded chat)")
	cmd.Flags().StringVar(&user, "user", "", "Restrict to one sender (default: everyone)")
	cmd.Flags().BoolVar(&cloud, "cloud", false, "Dump the filtered text blob instead of the frequency table")

	return cmd
}
