package analyze

import (
	"sort"

	"github.com/rmehra23/chatlens/internal/parse"
)

type ActivityCount struct {
	Name  string
	Count int
}

// weekdayOrder is the fixed Monday-first row order for the heatmap.
var weekdayOrder = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayActivity counts messages per weekday name, busiest first. Weekdays
// with no messages are simply absent.
func (a *Analyzer) WeekdayActivity(user string, msgs []parse.Message) []ActivityCount {
	counts := make(map[string]int)
	for _, m := range filter(user, msgs) {
		counts[m.Weekday]++
	}
	return rankActivity(counts)
}

// MonthActivity counts messages per month name, busiest first.
func (a *Analyzer) MonthActivity(user string, msgs []parse.Message) []ActivityCount {
	counts := make(map[string]int)
	for _, m := range filter(user, msgs) {
		counts[m.Month]++
	}
	return rankActivity(counts)
}

func rankActivity(counts map[string]int) []ActivityCount {
	ranked := make([]ActivityCount, 0, len(counts))
	for name, n := range counts {
		ranked = append(ranked, ActivityCount{Name: name, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}

// Heatmap is the weekday × hour-window activity matrix. Rows are always the
// full Monday-first week and columns the canonical 24 windows starting
// "00-01", with zeroes where nothing happened.
type Heatmap struct {
	Days    [7]string
	Periods [24]string
	Counts  [7][24]int
}

func (a *Analyzer) Heatmap(user string, msgs []parse.Message) Heatmap {
	var hm Heatmap
	hm.Days = weekdayOrder
	for h := 0; h < 24; h++ {
		hm.Periods[h] = parse.HourPeriod(h)
	}

	row := make(map[string]int, 7)
	for i, d := range weekdayOrder {
		row[d] = i
	}
	col := make(map[string]int, 24)
	for i, p := range hm.Periods {
		col[p] = i
	}

	for _, m := range filter(user, msgs) {
		r, okR := row[m.Weekday]
		c, okC := col[m.Period]
		if okR && okC {
			hm.Counts[r][c]++
		}
	}
	return hm
}

// MaxCount returns the hottest cell, for scaling shaded output.
func (h Heatmap) MaxCount() int {
	max := 0
	for _, r := range h.Counts {
		for _, n := range r {
			if n > max {
				max = n
			}
		}
	}
	return max
}
