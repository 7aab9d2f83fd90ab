package index

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmehra23/chatlens/internal/parse"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "chatlens.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func writeExport(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleExport = "1/1/24, 10:00 am - Alice: Hello there\n" +
	"1/1/24, 10:05 am - Bob: <Media omitted>\n" +
	"1/1/24, 10:06 am - Alice added Carol\n"

func TestIngestFile_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	path := writeExport(t, t.TempDir(), "WhatsApp Chat with Bob.txt", sampleExport)

	stats, err := IngestFile(db, path)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if stats.ChatKey != "WhatsApp Chat with Bob" {
		t.Errorf("chat key = %q", stats.ChatKey)
	}
	if stats.Messages != 3 {
		t.Errorf("messages = %d, want 3", stats.Messages)
	}

	msgs, err := db.GetMessages(stats.ChatKey)
	if err != nil {
		t.Fatalf("get messages: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("loaded %d messages, want 3", len(msgs))
	}
	if msgs[0].Author != "Alice" || msgs[0].Body != "Hello there\n" {
		t.Errorf("msgs[0] = %+v", msgs[0])
	}
	if msgs[2].Author != parse.GroupNotification {
		t.Errorf("msgs[2].Author = %q, want sentinel", msgs[2].Author)
	}
	// derived fields survive the round trip
	if msgs[0].Period != "10-11" || msgs[0].Weekday != "Monday" {
		t.Errorf("derived fields lost: %+v", msgs[0])
	}
}

func TestIngestFile_SkipsUnchanged(t *testing.T) {
	db := openTestDB(t)
	path := writeExport(t, t.TempDir(), "chat.txt", sampleExport)

	if _, err := IngestFile(db, path); err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	stats, err := IngestFile(db, path)
	if err != nil {
		t.Fatalf("second ingest: %v", err)
	}
	if !stats.Skipped {
		t.Errorf("unchanged file should be skipped")
	}
}

func TestIngestFile_ParserFailurePropagates(t *testing.T) {
	db := openTestDB(t)
	path := writeExport(t, t.TempDir(), "notes.txt", "no headers here\n")

	_, err := IngestFile(db, path)
	if !errors.Is(err, parse.ErrFormatMismatch) {
		t.Fatalf("err = %v, want ErrFormatMismatch", err)
	}

	n, err := db.ChatCount()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("failed ingest must not store a chat, count = %d", n)
	}
}

func TestAuthors(t *testing.T) {
	db := openTestDB(t)
	path := writeExport(t, t.TempDir(), "chat.txt", sampleExport)
	if _, err := IngestFile(db, path); err != nil {
		t.Fatal(err)
	}

	authors, err := db.Authors("chat")
	if err != nil {
		t.Fatal(err)
	}
	if len(authors) != 2 || authors[0] != "Alice" || authors[1] != "Bob" {
		t.Errorf("authors = %v, want [Alice Bob]", authors)
	}
}

func TestDefaultChatKey(t *testing.T) {
	db := openTestDB(t)

	if _, err := db.DefaultChatKey(); err == nil {
		t.Errorf("empty store must not resolve a default chat")
	}

	dir := t.TempDir()
	if _, err := IngestFile(db, writeExport(t, dir, "one.txt", sampleExport)); err != nil {
		t.Fatal(err)
	}
	key, err := db.DefaultChatKey()
	if err != nil || key != "one" {
		t.Errorf("key = %q err = %v, want 'one'", key, err)
	}

	if _, err := IngestFile(db, writeExport(t, dir, "two.txt", sampleExport)); err != nil {
		t.Fatal(err)
	}
	if _, err := db.DefaultChatKey(); err == nil {
		t.Errorf("two chats must force an explicit --chat")
	}
}

func TestPrune(t *testing.T) {
	db := openTestDB(t)
	dir := t.TempDir()
	path := writeExport(t, dir, "gone.txt", sampleExport)
	if _, err := IngestFile(db, path); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	pruned, err := Prune(db)
	if err != nil {
		t.Fatal(err)
	}
	if pruned != 1 {
		t.Errorf("pruned = %d, want 1", pruned)
	}
	n, _ := db.ChatCount()
	if n != 0 {
		t.Errorf("chat count after prune = %d, want 0", n)
	}
}
