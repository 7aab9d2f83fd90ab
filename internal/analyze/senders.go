package analyze

import (
	"math"
	"sort"

	"github.com/rmehra23/chatlens/internal/parse"
)

type SenderCount struct {
	Name  string
	Count int
}

type SenderShare struct {
	Name    string
	Percent float64
}

// TopSenders ranks senders over the whole record set: the five busiest by
// message count, plus the full percentage table. Percent is the sender's
// share of all messages, rounded to two decimals. Only meaningful for the
// all-users view, so no user filter is taken.
func (a *Analyzer) TopSenders(msgs []parse.Message) ([]SenderCount, []SenderShare) {
	counts := make(map[string]int)
	for _, m := range msgs {
		counts[m.Author]++
	}

	ranked := make([]SenderCount, 0, len(counts))
	for name, n := range counts {
		ranked = append(ranked, SenderCount{Name: name, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})

	shares := make([]SenderShare, len(ranked))
	total := len(msgs)
	for i, r := range ranked {
		p := 100 * float64(r.Count) / float64(total)
		shares[i] = SenderShare{Name: r.Name, Percent: math.Round(p*100) / 100}
	}

	top := ranked
	if len(top) > 5 {
		top = top[:5]
	}
	return top, shares
}
