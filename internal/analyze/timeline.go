package analyze

import (
	"sort"
	"strconv"

	"github.com/rmehra23/chatlens/internal/parse"
)

type MonthBucket struct {
	Year     int
	MonthNum int
	Month    string
	Label    string // "January-2024"
	Count    int
}

type DayBucket struct {
	Date  string // "2006-01-02"
	Count int
}

// MonthlyTimeline buckets messages per calendar month, chronologically.
// Only months that actually occur are present.
func (a *Analyzer) MonthlyTimeline(user string, msgs []parse.Message) []MonthBucket {
	type ym struct{ year, month int }
	counts := make(map[ym]int)
	names := make(map[ym]string)
	for _, m := range filter(user, msgs) {
		k := ym{m.Year, m.MonthNum}
		counts[k]++
		names[k] = m.Month
	}

	buckets := make([]MonthBucket, 0, len(counts))
	for k, n := range counts {
		buckets = append(buckets, MonthBucket{
			Year:     k.year,
			MonthNum: k.month,
			Month:    names[k],
			Label:    names[k] + "-" + strconv.Itoa(k.year),
			Count:    n,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Year != buckets[j].Year {
			return buckets[i].Year < buckets[j].Year
		}
		return buckets[i].MonthNum < buckets[j].MonthNum
	})
	return buckets
}

// DailyTimeline buckets messages per calendar day, chronologically.
func (a *Analyzer) DailyTimeline(user string, msgs []parse.Message) []DayBucket {
	counts := make(map[string]int)
	for _, m := range filter(user, msgs) {
		counts[m.Date]++
	}

	buckets := make([]DayBucket, 0, len(counts))
	for d, n := range counts {
		buckets = append(buckets, DayBucket{Date: d, Count: n})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date < buckets[j].Date
	})
	return buckets
}
