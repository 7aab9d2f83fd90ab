package main

import (
	"fmt"
	"os"

	"github.com/rmehra23/chatlens/internal/config"
	"github.com/rmehra23/chatlens/internal/index"
	"github.com/rmehra23/chatlens/internal/stopwords"
	"github.com/spf13/cobra"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, DB, FTS5, and show loaded chats",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Stop words ===")
			if cfg.StopWordsPath == "" {
				fmt.Println("  built-in default list")
			} else if _, err := os.Stat(cfg.StopWordsPath); err != nil {
				fmt.Printf("  %s (NOT FOUND, default list used)\n", cfg.StopWordsPath)
			} else {
				stop, err := stopwords.Load(cfg.StopWordsPath)
				if err != nil {
					fmt.Printf("  %s (ERROR: %v)\n", cfg.StopWordsPath, err)
				} else {
					fmt.Printf("  %s (%d words)\n", cfg.StopWordsPath, len(stop))
				}
			}

			fmt.Println("\n=== Database ===")
			fmt.Printf("  Path: %s\n", cfg.DBPath)
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				fmt.Println("  Status: NOT FOUND (run 'chatlens load' first)")
				return nil
			}

			db, err := index.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			chatCount, err := db.ChatCount()
			if err != nil {
				return fmt.Errorf("count chats: %w", err)
			}
			msgCount, err := db.MessageCount()
			if err != nil {
				return fmt.Errorf("count messages: %w", err)
			}
			fmt.Printf("  Chats:    %d\n", chatCount)
			fmt.Printf("  Messages: %d\n", msgCount)

			fmt.Println("\n=== FTS5 ===")
			var ftsCount int
			err = db.Raw().QueryRow("SELECT COUNT(*) FROM messages_fts").Scan(&ftsCount)
			if err != nil {
				fmt.Printf("  FTS5 error: %v\n", err)
			} else {
				fmt.Printf("  FTS5 entries: %d\n", ftsCount)
				if ftsCount == msgCount {
					fmt.Println("  Status: OK (synced)")
				} else {
					fmt.Printf("  Status: MISMATCH (messages=%d, fts=%d)\n", msgCount, ftsCount)
				}
			}

			fmt.Println("\n=== Chats ===")
			chats, err := db.ListChats()
			if err != nil {
				return fmt.Errorf("list chats: %w", err)
			}
			if len(chats) == 0 {
				fmt.Println("  (none loaded)")
			}
			for _, c := range chats {
				fmt.Printf("  %s: %d messages, %s .. %s\n", c.ChatKey, c.Messages, c.FirstTs, c.LastTs)
				if _, err := os.Stat(c.FilePath); os.IsNotExist(err) {
					fmt.Printf("    source file missing: %s\n", c.FilePath)
				}
			}

			if info, err := os.Stat(cfg.DBPath); err == nil {
				sizeMB := float64(info.Size()) / 1024 / 1024
				fmt.Printf("\n=== DB Size: %.1f MB ===\n", sizeMB)
			}

			return nil
		},
	}
}
