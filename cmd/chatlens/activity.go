package main

import (
	"fmt"

	"github.com/rmehra23/chatlens/internal/render"
	"github.com/spf13/cobra"
)

func activityCmd() *cobra.Command {
	var chat, user string
	var heatmap bool

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Weekday and month activity maps, or the hour heatmap",
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

			if heatmap {
				fmt.Print(render.HeatmapGrid(a.Heatmap(user, msgs)))
				return nil
			}

			fmt.Println("by weekday:")
			fmt.Print(render.BarChart(toBars(a.WeekdayActivity(user, msgs)), barWidth()))
			fmt.Println("\nby month:")
			fmt.Print(render.BarChart(toBars(a.MonthActivity(user, msgs)), barWidth()))
			return nil
		},
	}

	cmd.Flags().StringVar(&chat, "chat", "", "Chat to analyze (default: the only loaded chat)")
	cmd.Flags().StringVar(&user, "user", "", "Restrict to one sender (default: everyone)")
	cmd.Flags().BoolVar(&heatmap, "heatmap", false, "Weekday x hour-window heatmap")

	return cmd
}
