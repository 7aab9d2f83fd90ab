package main

import (
	"fmt"
	"strconv"

	"github.com/rmehra23/chatlens/internal/render"
	"github.com/spf13/cobra"
)

func emojiCmd() *cobra.Command {
	var chat, user string

	cmd := &cobra.Command{
		Use:   "emoji",
		Short: "Emoji usage, most frequent first",
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

			emojis := a.EmojiFrequency(user, msgs)
			if len(emojis) == 0 {
				fmt.Println("no emoji in this selection")
				return nil
			}
			rows := make([][]string, len(emojis))
			for i, e := range emojis {
				rows[i] = []string{e.Emoji, strconv.Itoa(e.Count)}
			}
			fmt.Print(render.Table([]string{"emoji", "count"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&chat, "chat", "", "Chat to analyze (default: the only loaded chat)")
	cmd.Flags().StringVar(&user, "user", "", "Restrict to one sender (default: everyone)")

	return cmd
}
