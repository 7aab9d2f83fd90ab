package main

import (
	"fmt"
	"os"

	"github.com/rmehra23/chatlens/internal/index"
	"github.com/spf13/cobra"
)

func loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <export.txt>...",
		Short: "Parse exported chat files and load them into the local store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()

			for _, path := range args {
				stats, err := index.IngestFile(db, path)
				if err != nil {
					return fmt.Errorf("load %s: %w", path, err)
				}
				fmt.Fprintf(os.Stderr, "%s\n", stats)
			}

			if pruned, err := index.Prune(db); err == nil && pruned > 0 {
				fmt.Fprintf(os.Stderr, "pruned %d stale chat(s)\n", pruned)
			}
			return nil
		},
	}
}
