package main

import (
	"fmt"
	"strconv"

	"github.com/rmehra23/chatlens/internal/render"
	"github.com/spf13/cobra"
)

func sendersCmd() *cobra.Command {
	var chat string

	cmd := &cobra.Command{
		Use:   "senders",
		Short: "Busiest senders and each sender's share of the chat",
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

			top, shares := a.TopSenders(msgs)

			items := make([]render.BarItem, len(top))
			for i, s := range top {
				items[i] = render.BarItem{Label: s.Name, Count: s.Count}
			}
			fmt.Print(render.BarChart(items, barWidth()))
			fmt.Println()

			rows := make([][]string, len(shares))
			for i, s := range shares {
				rows[i] = []string{s.Name, strconv.FormatFloat(s.Percent, 'f', 2, 64)}
			}
			fmt.Print(render.Table([]string{"name", "percent"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&chat, "chat", "", "Chat to analyze (default: the only loaded chat)")

	return cmd
}
