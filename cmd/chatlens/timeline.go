package main

import (
	"fmt"

	"github.com/rmehra23/chatlens/internal/render"
	"github.com/spf13/cobra"
)

func timelineCmd() *cobra.Command {
	var chat, user string
	var daily bool

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Messages per calendar month (or per day with --daily)",
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

			var items []render.BarItem
			if daily {
				for _, b := range a.DailyTimeline(user, msgs) {
					items = append(items, render.BarItem{Label: b.Date, Count: b.Count})
				}
			} else {
				for _, b := range a.MonthlyTimeline(user, msgs) {
					items = append(items, render.BarItem{Label: b.Label, Count: b.Count})
				}
			}
			if len(items) == 0 {
				fmt.Println("no messages in this selection")
				return nil
			}
			fmt.Print(render.BarChart(items, barWidth()))
			return nil
		},
	}

	cmd.Flags().StringVar(&chat, "chat", "", "Chat to analyze (default: the only loaded chat)")
	cmd.Flags().StringVar(&user, "user", "", "Restrict to one sender (default: everyone)")
	cmd.Flags().BoolVar(&daily, "daily", false, "Bucket per day instead of per month")

	return cmd
}
