// Package analyze answers read-only statistical queries over a parsed message
// sequence. Every method is pure: the record slice is never mutated and calls
// have no ordering dependency, so a host may run them concurrently.
package analyze

import (
	"regexp"
	"strings"

	"github.com/rmehra23/chatlens/internal/parse"
	"github.com/rmehra23/chatlens/internal/stopwords"
	"mvdan.cc/xurls/v2"
)

// AllUsers selects every sender. The empty string is treated the same so a
// CLI flag can simply default to "".
const AllUsers = "all"

// Analyzer bundles what the queries need beyond the records themselves: the
// compiled URL pattern and the stop-word set. Build it once at startup and
// pass it around explicitly.
type Analyzer struct {
	urls *regexp.Regexp
	stop stopwords.Set
}

func New(stop stopwords.Set) *Analyzer {
	return &Analyzer{
		// Relaxed also matches scheme-less URLs like "example.com/x".
		urls: xurls.Relaxed(),
		stop: stop,
	}
}

// filter restricts msgs to one sender, or returns them unchanged for the
// all-users sentinel.
func filter(user string, msgs []parse.Message) []parse.Message {
	if user == "" || user == AllUsers {
		return msgs
	}
	var out []parse.Message
	for _, m := range msgs {
		if m.Author == user {
			out = append(out, m)
		}
	}
	return out
}

// chatText restricts msgs to real conversation text: one sender (or all),
// no system notifications, no media placeholders.
func chatText(user string, msgs []parse.Message) []parse.Message {
	var out []parse.Message
	for _, m := range filter(user, msgs) {
		if m.Author == parse.GroupNotification || m.Body == parse.MediaPlaceholder {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Summary holds the headline counts for a sender selection.
type Summary struct {
	Messages int
	Words    int
	Media    int
	Links    int
}

// Summary counts messages, words, media placeholders and links. Media
// placeholder bodies contribute to the media count only, not the word count;
// links are extracted from every body.
func (a *Analyzer) Summary(user string, msgs []parse.Message) Summary {
	var s Summary
	for _, m := range filter(user, msgs) {
		s.Messages++
		if m.Body == parse.MediaPlaceholder {
			s.Media++
		} else {
			s.Words += len(strings.Fields(m.Body))
		}
		s.Links += len(a.urls.FindAllString(m.Body, -1))
	}
	return s
}
