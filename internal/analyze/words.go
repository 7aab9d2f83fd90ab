package analyze

import (
	"sort"
	"strings"

	"github.com/rmehra23/chatlens/internal/parse"
)

type WordCount struct {
	Word  string
	Count int
}

// WordFrequency returns the 20 most common lower-cased tokens across real
// conversation text, stop words excluded. Ties break alphabetically so the
// result is deterministic.
func (a *Analyzer) WordFrequency(user string, msgs []parse.Message) []WordCount {
	counts := make(map[string]int)
	for _, m := range chatText(user, msgs) {
		for _, w := range strings.Fields(strings.ToLower(m.Body)) {
			if a.stop.Contains(w) {
				continue
			}
			counts[w]++
		}
	}

	ranked := make([]WordCount, 0, len(counts))
	for w, n := range counts {
		ranked = append(ranked, WordCount{Word: w, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})

	if len(ranked) > 20 {
		ranked = ranked[:20]
	}
	return ranked
}

// WordCloudText returns the same filtered vocabulary as WordFrequency but as
// one joined text blob, for an external word-cloud renderer. Empty selections
// yield empty text; the renderer is expected to short-circuit on it.
func (a *Analyzer) WordCloudText(user string, msgs []parse.Message) string {
	var parts []string
	for _, m := range chatText(user, msgs) {
		if s := a.stop.Strip(m.Body); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
