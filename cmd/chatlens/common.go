package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/rmehra23/chatlens/internal/analyze"
	"github.com/rmehra23/chatlens/internal/config"
	"github.com/rmehra23/chatlens/internal/index"
	"github.com/rmehra23/chatlens/internal/parse"
	"github.com/rmehra23/chatlens/internal/render"
	"github.com/rmehra23/chatlens/internal/stopwords"
)

// openStore loads the config and opens the record store. Callers own the
// returned DB and must Close it.
func openStore() (*config.Config, *index.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	db, err := index.OpenDB(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	return cfg, db, nil
}

// loadRecords resolves the chat selection (explicit flag or the single loaded
// chat) and returns its ordered record sequence.
func loadRecords(db *index.DB, chatFlag string) (string, []parse.Message, error) {
	chatKey := chatFlag
	if chatKey == "" {
		key, err := db.DefaultChatKey()
		if err != nil {
			return "", nil, err
		}
		chatKey = key
	}

	msgs, err := db.GetMessages(chatKey)
	if err != nil {
		return "", nil, fmt.Errorf("load messages: %w", err)
	}
	if len(msgs) == 0 {
		return "", nil, fmt.Errorf("chat %q is not loaded", chatKey)
	}
	return chatKey, msgs, nil
}

func newAnalyzer(cfg *config.Config) (*analyze.Analyzer, error) {
	stop, err := stopwords.Load(cfg.StopWordsPath)
	if err != nil {
		return nil, fmt.Errorf("load stop words: %w", err)
	}
	return analyze.New(stop), nil
}

func toBars(counts []analyze.ActivityCount) []render.BarItem {
	items := make([]render.BarItem, len(counts))
	for i, c := range counts {
		items[i] = render.BarItem{Label: c.Name, Count: c.Count}
	}
	return items
}

// barWidth leaves room for labels and counts within the terminal width.
func barWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 40
	}
	if w > 120 {
		w = 120
	}
	return w - 30
}
