package index

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmehra23/chatlens/internal/parse"
)

type Stats struct {
	ChatKey  string
	Messages int
	Skipped  bool
}

func (s Stats) String() string {
	if s.Skipped {
		return fmt.Sprintf("chat=%s unchanged, skipped", s.ChatKey)
	}
	return fmt.Sprintf("chat=%s messages=%d", s.ChatKey, s.Messages)
}

// IngestFile parses one exported transcript and replaces its rows in the
// store. A file whose mtime and size are unchanged since the last load is
// skipped without re-parsing. Parser failures propagate untouched so the
// caller can show them; nothing is written on failure.
func IngestFile(db *DB, path string) (Stats, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	chatKey := ChatKeyFor(path)
	stats := Stats{ChatKey: chatKey}

	info, err := os.Stat(path)
	if err != nil {
		return stats, fmt.Errorf("stat: %w", err)
	}

	prev, err := db.GetChatInfo(chatKey)
	if err != nil {
		return stats, err
	}
	if prev != nil && prev.Mtime == info.ModTime().Unix() && prev.Size == info.Size() {
		stats.Skipped = true
		return stats, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return stats, fmt.Errorf("read: %w", err)
	}

	msgs, err := parse.Parse(string(data))
	if err != nil {
		return stats, err
	}
	stats.Messages = len(msgs)

	if err := storeChat(db, chatKey, abs, info.ModTime().Unix(), info.Size(), msgs); err != nil {
		return stats, fmt.Errorf("store: %w", err)
	}
	return stats, nil
}

// ChatKeyFor derives the store key from the export file name:
// "WhatsApp Chat with Alice.txt" -> "WhatsApp Chat with Alice".
func ChatKeyFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func storeChat(db *DB, chatKey, filePath string, mtime, size int64, msgs []parse.Message) error {
	// delete old data first
	if err := db.DeleteChat(chatKey); err != nil {
		return err
	}

	tx, err := db.Raw().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	firstTs := msgs[0].Timestamp.Format(tsLayout)
	lastTs := msgs[len(msgs)-1].Timestamp.Format(tsLayout)

	_, err = tx.Exec(
		`INSERT INTO chats (chat_key, file_path, first_ts, last_ts, mtime, size)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		chatKey, filePath, firstTs, lastTs, mtime, size,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO messages (chat_key, seq, ts, author, body)
		 VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, m := range msgs {
		if _, err := stmt.Exec(chatKey, i, m.Timestamp.Format(tsLayout), m.Author, m.Body); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Prune drops chats whose source files no longer exist on disk.
func Prune(db *DB) (int, error) {
	chats, err := db.ListChats()
	if err != nil {
		return 0, err
	}

	pruned := 0
	for _, c := range chats {
		if _, err := os.Stat(c.FilePath); os.IsNotExist(err) {
			if err := db.DeleteChat(c.ChatKey); err != nil {
				return pruned, err
			}
			pruned++
		}
	}
	return pruned, nil
}
