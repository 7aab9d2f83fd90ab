package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "chatlens",
		Short:   "Chatlens - statistics over exported WhatsApp chats",
		Version: version,
	}

	rootCmd.AddCommand(loadCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(sendersCmd())
	rootCmd.AddCommand(wordsCmd())
	rootCmd.AddCommand(emojiCmd())
	rootCmd.AddCommand(timelineCmd())
	rootCmd.AddCommand(activityCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
