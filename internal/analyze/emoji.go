package analyze

import (
	"sort"

	"github.com/forPelevin/gomoji"
	"github.com/rmehra23/chatlens/internal/parse"
)

type EmojiCount struct {
	Emoji string
	Count int
}

// EmojiFrequency counts every emoji rune across the selected bodies,
// most frequent first. All distinct emoji are returned, not a top-N.
func (a *Analyzer) EmojiFrequency(user string, msgs []parse.Message) []EmojiCount {
	counts := make(map[string]int)
	for _, m := range filter(user, msgs) {
		for _, r := range m.Body {
			if gomoji.ContainsEmoji(string(r)) {
				counts[string(r)]++
			}
		}
	}

	ranked := make([]EmojiCount, 0, len(counts))
	for e, n := range counts {
		ranked = append(ranked, EmojiCount{Emoji: e, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Emoji < ranked[j].Emoji
	})
	return ranked
}
