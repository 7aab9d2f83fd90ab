package parse

import (
	"fmt"
	"time"
)

// GroupNotification is the author assigned to system events (subject changes,
// joins, leaves) whose segment carries no "name: " prefix.
const GroupNotification = "group_notification"

// MediaPlaceholder is the literal body WhatsApp writes for an omitted
// attachment, trailing newline included.
const MediaPlaceholder = "<Media omitted>\n"

// Message is one parsed chat message with its derived calendar fields.
type Message struct {
	Timestamp time.Time
	Author    string
	Body      string

	Date     string // "2006-01-02", for daily bucketing
	Year     int
	MonthNum int
	Month    string // full month name
	Weekday  string // full weekday name
	Period   string // one-hour window "HH-HH", wraps 23 -> 00
}

// NewMessage derives all calendar fields from the timestamp. Both the parser
// and the store rebuild records through this, so the derivation cannot drift.
func NewMessage(ts time.Time, author, body string) Message {
	return Message{
		Timestamp: ts,
		Author:    author,
		Body:      body,
		Date:      ts.Format("2006-01-02"),
		Year:      ts.Year(),
		MonthNum:  int(ts.Month()),
		Month:     ts.Month().String(),
		Weekday:   ts.Weekday().String(),
		Period:    HourPeriod(ts.Hour()),
	}
}

// HourPeriod formats the one-hour window containing hour h, e.g.
// 9 -> "09-10", 23 -> "23-00".
func HourPeriod(h int) string {
	return fmt.Sprintf("%02d-%02d", h, (h+1)%24)
}
