package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// headerRe marks the start of a message: "d/m/yy, h:mm am - " and its
// variants. WhatsApp sometimes separates the am/pm marker with a narrow
// no-break space (U+202F), which Go's \s does not cover.
var headerRe = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4},\s\d{1,2}:\d{2}[\s\x{202f}\x{00a0}]?(?:[AaPp][Mm])?\s-\s`)

// authorRe splits the shortest leading "name: " prefix off a message body.
// Non-greedy so a colon inside the message never extends the name, (?s) so a
// pathological multi-line name still terminates at the first ": ".
var authorRe = regexp.MustCompile(`(?s)\A(.+?):\s`)

// primaryLayout is the common Android export format: day/month/2-digit year,
// 12-hour clock with am/pm marker.
const primaryLayout = "2/1/06, 3:04pm"

// fallbackLayouts cover spaced am/pm markers, 24-hour clocks and 4-digit
// years. Tried per header only after the primary layout fails somewhere in
// the batch.
var fallbackLayouts = []string{
	primaryLayout,
	"2/1/06, 3:04 pm",
	"2/1/06, 15:04",
	"2/1/2006, 3:04pm",
	"2/1/2006, 3:04 pm",
	"2/1/2006, 15:04",
}

// ErrFormatMismatch signals input with no recognizable message headers at all.
var ErrFormatMismatch = errors.New("no message headers found: not a WhatsApp chat export")

// DateParseError reports a header that survived the header pattern but could
// not be converted to a timestamp. One bad header rejects the whole
// transcript: a record set with garbage timestamps would silently corrupt
// every time-based query downstream.
type DateParseError struct {
	Header string
	Index  int
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("message %d: cannot parse date %q", e.Index, e.Header)
}

// Parse converts a raw chat export into its ordered message sequence.
// Parsing is all-or-nothing: either every header yields a timestamp or an
// error is returned and no records are.
func Parse(raw string) ([]Message, error) {
	locs := headerRe.FindAllStringIndex(raw, -1)
	if len(locs) == 0 {
		return nil, ErrFormatMismatch
	}

	headers := make([]string, len(locs))
	bodies := make([]string, len(locs))
	for i, loc := range locs {
		headers[i] = cleanHeader(raw[loc[0]:loc[1]])
		end := len(raw)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		bodies[i] = raw[loc[1]:end]
	}

	stamps, err := parseStamps(headers)
	if err != nil {
		return nil, err
	}

	msgs := make([]Message, len(locs))
	for i, body := range bodies {
		author := GroupNotification
		text := body
		if m := authorRe.FindStringSubmatchIndex(body); m != nil {
			author = body[m[2]:m[3]]
			text = body[m[1]:]
		}
		msgs[i] = NewMessage(stamps[i], author, text)
	}
	return msgs, nil
}

// cleanHeader normalizes a matched header down to its date-time text:
// no-break spaces removed, trailing " - " separator stripped, lower-cased so
// "AM"/"am" parse alike.
func cleanHeader(h string) string {
	h = strings.ReplaceAll(h, " ", "")
	h = strings.ReplaceAll(h, " ", "")
	h = strings.TrimSpace(h)
	h = strings.TrimSuffix(h, "-")
	h = strings.TrimSpace(h)
	return strings.ToLower(h)
}

// parseStamps tries the primary layout across the whole batch first; if any
// header misses, the batch is re-parsed against the permissive layout list.
func parseStamps(headers []string) ([]time.Time, error) {
	stamps := make([]time.Time, len(headers))

	primaryOK := true
	for i, h := range headers {
		t, err := time.Parse(primaryLayout, h)
		if err != nil {
			primaryOK = false
			break
		}
		stamps[i] = t
	}
	if primaryOK {
		return stamps, nil
	}

	for i, h := range headers {
		t, err := parseAny(h)
		if err != nil {
			return nil, &DateParseError{Header: h, Index: i}
		}
		stamps[i] = t
	}
	return stamps, nil
}

func parseAny(h string) (time.Time, error) {
	var lastErr error
	for _, layout := range fallbackLayouts {
		t, err := time.Parse(layout, h)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
