package index

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rmehra23/chatlens/internal/parse"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA cache_size = -64000;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS chats (
    chat_key   TEXT PRIMARY KEY,
    file_path  TEXT NOT NULL,
    first_ts   TEXT NOT NULL DEFAULT '',
    last_ts    TEXT NOT NULL DEFAULT '',
    mtime      INTEGER NOT NULL DEFAULT 0,
    size       INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS messages (
    chat_key TEXT NOT NULL,
    seq      INTEGER NOT NULL,
    ts       TEXT NOT NULL,
    author   TEXT NOT NULL,
    body     TEXT NOT NULL,
    PRIMARY KEY (chat_key, seq)
);

CREATE VIRTUAL TABLE IF NOT EXISTS messages_fts USING fts5(
    body,
    content=messages,
    content_rowid=rowid,
    tokenize='unicode61'
);

-- triggers to keep FTS in sync
CREATE TRIGGER IF NOT EXISTS messages_ai AFTER INSERT ON messages BEGIN
    INSERT INTO messages_fts(rowid, body) VALUES (new.rowid, new.body);
END;

CREATE TRIGGER IF NOT EXISTS messages_ad AFTER DELETE ON messages BEGIN
    INSERT INTO messages_fts(messages_fts, rowid, body) VALUES('delete', old.rowid, old.body);
END;

CREATE TRIGGER IF NOT EXISTS messages_au AFTER UPDATE ON messages BEGIN
    INSERT INTO messages_fts(messages_fts, rowid, body) VALUES('delete', old.rowid, old.body);
    INSERT INTO messages_fts(rowid, body) VALUES (new.rowid, new.body);
END;
`

// tsLayout is how timestamps are stored: local wall-clock time, no zone,
// exactly what the transcript itself carries.
const tsLayout = "2006-01-02T15:04:05"

type DB struct {
	db *sql.DB
}

func OpenDB(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	// schema version tracking for forced re-ingest
	db.Exec("CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT)")
	d := &DB{db: db}
	d.migrateSchemaVersion()

	return d, nil
}

// schemaVersion should be bumped whenever transcript parsing changes, to
// force a full re-ingest of every loaded chat.
const schemaVersion = "1"

func (d *DB) migrateSchemaVersion() {
	var ver string
	err := d.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&ver)
	if err != nil || ver != schemaVersion {
		// force re-ingest by resetting all chat mtime/size to 0
		d.db.Exec("UPDATE chats SET mtime = 0, size = 0")
		d.db.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)", schemaVersion)
	}
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

type ChatInfo struct {
	Mtime int64
	Size  int64
}

func (d *DB) GetChatInfo(chatKey string) (*ChatInfo, error) {
	var info ChatInfo
	err := d.db.QueryRow(
		"SELECT mtime, size FROM chats WHERE chat_key = ?",
		chatKey,
	).Scan(&info.Mtime, &info.Size)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

type ChatRow struct {
	ChatKey  string
	FilePath string
	FirstTs  string
	LastTs   string
	Messages int
}

func (d *DB) ListChats() ([]ChatRow, error) {
	rows, err := d.db.Query(`
		SELECT c.chat_key, c.file_path, c.first_ts, c.last_ts,
		       (SELECT COUNT(*) FROM messages m WHERE m.chat_key = c.chat_key)
		FROM chats c
		ORDER BY c.chat_key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chats []ChatRow
	for rows.Next() {
		var c ChatRow
		if err := rows.Scan(&c.ChatKey, &c.FilePath, &c.FirstTs, &c.LastTs, &c.Messages); err != nil {
			return nil, err
		}
		chats = append(chats, c)
	}
	return chats, rows.Err()
}

// DefaultChatKey resolves which chat a command works on when --chat is not
// given: fine when exactly one chat is loaded, an error otherwise.
func (d *DB) DefaultChatKey() (string, error) {
	chats, err := d.ListChats()
	if err != nil {
		return "", err
	}
	switch len(chats) {
	case 0:
		return "", fmt.Errorf("no chats loaded, run 'chatlens load <export.txt>' first")
	case 1:
		return chats[0].ChatKey, nil
	default:
		keys := make([]string, len(chats))
		for i, c := range chats {
			keys[i] = c.ChatKey
		}
		return "", fmt.Errorf("multiple chats loaded, pick one with --chat: %v", keys)
	}
}

func (d *DB) DeleteChat(chatKey string) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM messages WHERE chat_key = ?", chatKey); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM chats WHERE chat_key = ?", chatKey); err != nil {
		return err
	}
	return tx.Commit()
}

func (d *DB) ChatCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM chats").Scan(&n)
	return n, err
}

func (d *DB) MessageCount() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&n)
	return n, err
}

// GetMessages rebuilds the ordered record sequence for one chat. Only
// timestamp, author and body are stored; the calendar fields are re-derived
// through parse.NewMessage so store and parser cannot disagree.
func (d *DB) GetMessages(chatKey string) ([]parse.Message, error) {
	rows, err := d.db.Query(
		"SELECT ts, author, body FROM messages WHERE chat_key = ? ORDER BY seq",
		chatKey,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []parse.Message
	for rows.Next() {
		var ts, author, body string
		if err := rows.Scan(&ts, &author, &body); err != nil {
			return nil, err
		}
		stamp, err := time.Parse(tsLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("stored timestamp %q: %w", ts, err)
		}
		msgs = append(msgs, parse.NewMessage(stamp, author, body))
	}
	return msgs, rows.Err()
}

// Authors returns the distinct real senders of a chat, alphabetically,
// system notifications excluded.
func (d *DB) Authors(chatKey string) ([]string, error) {
	rows, err := d.db.Query(
		"SELECT DISTINCT author FROM messages WHERE chat_key = ? AND author != ? ORDER BY author",
		chatKey, parse.GroupNotification,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}
