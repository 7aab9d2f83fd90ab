package main

import (
	"fmt"
	"strconv"

	"github.com/rmehra23/chatlens/internal/render"
	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	var chat, user string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Message, word, media and link counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			chatKey, msgs, err := loadRecords(db, chat)
			if err != nil {
				return err
			}
			a, err := newAnalyzer(cfg)
			if err != nil {
				return err
			}

			s := a.Summary(user, msgs)
			fmt.Printf("%s\n\n", chatKey)
			fmt.Print(render.Table(
				[]string{"messages", "words", "media", "links"},
				[][]string{{
					strconv.Itoa(s.Messages),
					strconv.Itoa(s.Words),
					strconv.Itoa(s.Media),
					strconv.Itoa(s.Links),
				}},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&chat, "chat", "", "Chat to analyze (default: the only loaded chat)")
	cmd.Flags().StringVar(&user, "user", "", "Restrict to one sender (default: everyone)")

	return cmd
}
