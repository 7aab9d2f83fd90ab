package analyze

import (
	"math"
	"testing"
	"time"

	"github.com/rmehra23/chatlens/internal/parse"
	"github.com/rmehra23/chatlens/internal/stopwords"
)

func msg(t *testing.T, ts, author, body string) parse.Message {
	t.Helper()
	stamp, err := time.Parse("2006-01-02 15:04", ts)
	if err != nil {
		t.Fatalf("bad test timestamp %q: %v", ts, err)
	}
	return parse.NewMessage(stamp, author, body)
}

func testAnalyzer() *Analyzer {
	return New(stopwords.Default())
}

func TestSummary_SpecScenario(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2024-01-01 10:00", "Alice", "Hello there\n"),
		msg(t, "2024-01-01 10:05", "Bob", parse.MediaPlaceholder),
	}

	s := testAnalyzer().Summary(AllUsers, msgs)
	want := Summary{Messages: 2, Words: 2, Media: 1, Links: 0}
	if s != want {
		t.Errorf("Summary = %+v, want %+v", s, want)
	}
}

func TestSummary_CountsLinks(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2024-01-01 10:00", "Alice", "see https://example.com/a and example.org\n"),
		msg(t, "2024-01-01 10:01", "Bob", "plain text\n"),
	}

	s := testAnalyzer().Summary(AllUsers, msgs)
	if s.Links != 2 {
		t.Errorf("Links = %d, want 2", s.Links)
	}
}

func TestSummary_UserFilter(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2024-01-01 10:00", "Alice", "one two three\n"),
		msg(t, "2024-01-01 10:01", "Bob", "four\n"),
	}

	s := testAnalyzer().Summary("Bob", msgs)
	if s.Messages != 1 || s.Words != 1 {
		t.Errorf("filtered Summary = %+v", s)
	}
}

func TestSummary_EmptySelection(t *testing.T) {
	s := testAnalyzer().Summary("Nobody", []parse.Message{
		msg(t, "2024-01-01 10:00", "Alice", "hi\n"),
	})
	if s != (Summary{}) {
		t.Errorf("empty selection must give zeroes, got %+v", s)
	}
}

func TestTopSenders(t *testing.T) {
	var msgs []parse.Message
	for i := 0; i < 6; i++ {
		msgs = append(msgs, msg(t, "2024-01-01 10:00", "Alice", "hi\n"))
	}
	for i := 0; i < 3; i++ {
		msgs = append(msgs, msg(t, "2024-01-01 11:00", "Bob", "hi\n"))
	}
	msgs = append(msgs, msg(t, "2024-01-01 12:00", "Carol", "hi\n"))

	top, shares := testAnalyzer().TopSenders(msgs)
	if len(top) != 3 {
		t.Fatalf("expected 3 ranked senders, got %d", len(top))
	}
	if top[0].Name != "Alice" || top[0].Count != 6 {
		t.Errorf("top[0] = %+v", top[0])
	}
	if top[1].Name != "Bob" || top[2].Name != "Carol" {
		t.Errorf("ranking order = %v", top)
	}

	if shares[0].Percent != 60.0 || shares[1].Percent != 30.0 || shares[2].Percent != 10.0 {
		t.Errorf("shares = %v", shares)
	}
}

func TestTopSenders_PercentSumsTo100(t *testing.T) {
	var msgs []parse.Message
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, name := range names {
		for j := 0; j <= i*2; j++ {
			msgs = append(msgs, msg(t, "2024-01-01 10:00", name, "hi\n"))
		}
	}

	top, shares := testAnalyzer().TopSenders(msgs)
	if len(top) != 5 {
		t.Errorf("top list capped at 5, got %d", len(top))
	}
	if len(shares) != len(names) {
		t.Errorf("share table must cover every sender, got %d", len(shares))
	}

	sum := 0.0
	for _, s := range shares {
		sum += s.Percent
	}
	if math.Abs(sum-100.0) > 0.05 {
		t.Errorf("percent sum = %.4f, want 100 within rounding epsilon", sum)
	}
}

func TestWordFrequency(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2024-01-01 10:00", "Alice", "Pizza pizza is the best\n"),
		msg(t, "2024-01-01 10:01", "Bob", "pizza again\n"),
		msg(t, "2024-01-01 10:02", "Bob", parse.MediaPlaceholder),
		msg(t, "2024-01-01 10:03", parse.GroupNotification, "Alice changed the subject\n"),
	}

	words := testAnalyzer().WordFrequency(AllUsers, msgs)
	if len(words) == 0 || words[0].Word != "pizza" || words[0].Count != 3 {
		t.Fatalf("words[0] = %+v, want pizza x3", words)
	}
	for _, w := range words {
		if w.Word == "the" || w.Word == "is" {
			t.Errorf("stop word %q leaked into frequency table", w.Word)
		}
		if w.Word == "subject" || w.Word == "changed" {
			t.Errorf("notification text %q must be excluded", w.Word)
		}
		if w.Word == "<media" || w.Word == "omitted>" {
			t.Errorf("media placeholder %q must be excluded", w.Word)
		}
	}
}

func TestWordFrequency_CapsAt20(t *testing.T) {
	var msgs []parse.Message
	body := ""
	for i := 0; i < 30; i++ {
		body += "w" + string(rune('a'+i%26)) + string(rune('a'+i/26)) + " "
	}
	msgs = append(msgs, msg(t, "2024-01-01 10:00", "Alice", body+"\n"))

	words := testAnalyzer().WordFrequency(AllUsers, msgs)
	if len(words) != 20 {
		t.Errorf("expected top-20 cap, got %d", len(words))
	}
}

func TestWordCloudText(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2024-01-01 10:00", "Alice", "The plan is GO\n"),
		msg(t, "2024-01-01 10:01", "Bob", "to the moon\n"),
	}

	got := testAnalyzer().WordCloudText(AllUsers, msgs)
	if got != "plan go moon" {
		t.Errorf("WordCloudText = %q, want %q", got, "plan go moon")
	}
}

func TestWordCloudText_EmptySelection(t *testing.T) {
	if got := testAnalyzer().WordCloudText("Nobody", nil); got != "" {
		t.Errorf("empty selection = %q, want empty text", got)
	}
}

func TestEmojiFrequency(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2024-01-01 10:00", "Alice", "nice \U0001F600\U0001F600\n"),
		msg(t, "2024-01-01 10:01", "Bob", "\U0001F600 \U0001F389\n"),
	}

	emojis := testAnalyzer().EmojiFrequency(AllUsers, msgs)
	if len(emojis) != 2 {
		t.Fatalf("expected 2 distinct emoji, got %v", emojis)
	}
	if emojis[0].Emoji != "\U0001F600" || emojis[0].Count != 3 {
		t.Errorf("emojis[0] = %+v", emojis[0])
	}
	if emojis[1].Emoji != "\U0001F389" || emojis[1].Count != 1 {
		t.Errorf("emojis[1] = %+v", emojis[1])
	}
}

func TestEmojiFrequency_NoEmoji(t *testing.T) {
	msgs := []parse.Message{msg(t, "2024-01-01 10:00", "Alice", "plain words only\n")}
	if got := testAnalyzer().EmojiFrequency(AllUsers, msgs); len(got) != 0 {
		t.Errorf("expected no emoji, got %v", got)
	}
}

func TestMonthlyTimeline_Chronological(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2024-02-10 10:00", "Alice", "feb\n"),
		msg(t, "2023-12-31 10:00", "Alice", "dec\n"),
		msg(t, "2024-01-15 10:00", "Alice", "jan\n"),
		msg(t, "2024-01-20 10:00", "Bob", "jan again\n"),
	}

	tl := testAnalyzer().MonthlyTimeline(AllUsers, msgs)
	if len(tl) != 3 {
		t.Fatalf("expected 3 month buckets, got %d", len(tl))
	}
	if tl[0].Label != "December-2023" || tl[0].Count != 1 {
		t.Errorf("tl[0] = %+v", tl[0])
	}
	if tl[1].Label != "January-2024" || tl[1].Count != 2 {
		t.Errorf("tl[1] = %+v", tl[1])
	}
	if tl[2].Label != "February-2024" || tl[2].Count != 1 {
		t.Errorf("tl[2] = %+v", tl[2])
	}
}

func TestDailyTimeline(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2024-01-02 10:00", "Alice", "b\n"),
		msg(t, "2024-01-01 10:00", "Alice", "a\n"),
		msg(t, "2024-01-02 11:00", "Bob", "c\n"),
	}

	tl := testAnalyzer().DailyTimeline(AllUsers, msgs)
	if len(tl) != 2 {
		t.Fatalf("expected 2 day buckets, got %d", len(tl))
	}
	if tl[0].Date != "2024-01-01" || tl[0].Count != 1 {
		t.Errorf("tl[0] = %+v", tl[0])
	}
	if tl[1].Date != "2024-01-02" || tl[1].Count != 2 {
		t.Errorf("tl[1] = %+v", tl[1])
	}
}

func TestWeekdayActivity(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2024-01-01 10:00", "Alice", "mon\n"), // Monday
		msg(t, "2024-01-01 11:00", "Bob", "mon\n"),
		msg(t, "2024-01-02 10:00", "Alice", "tue\n"), // Tuesday
	}

	act := testAnalyzer().WeekdayActivity(AllUsers, msgs)
	if len(act) != 2 {
		t.Fatalf("expected 2 weekday buckets, got %d", len(act))
	}
	if act[0].Name != "Monday" || act[0].Count != 2 {
		t.Errorf("act[0] = %+v", act[0])
	}
}

func TestHeatmap(t *testing.T) {
	msgs := []parse.Message{
		msg(t, "2024-01-01 23:30", "Alice", "late monday\n"),
		msg(t, "2024-01-01 23:45", "Bob", "also late\n"),
		msg(t, "2024-01-07 00:10", "Alice", "sunday after midnight\n"),
	}

	hm := testAnalyzer().Heatmap(AllUsers, msgs)

	if hm.Days[0] != "Monday" || hm.Days[6] != "Sunday" {
		t.Errorf("day order = %v", hm.Days)
	}
	if hm.Periods[0] != "00-01" || hm.Periods[23] != "23-00" {
		t.Errorf("period order = %v", hm.Periods)
	}
	if hm.Counts[0][23] != 2 {
		t.Errorf("Monday 23-00 = %d, want 2", hm.Counts[0][23])
	}
	if hm.Counts[6][0] != 1 {
		t.Errorf("Sunday 00-01 = %d, want 1", hm.Counts[6][0])
	}
	if hm.MaxCount() != 2 {
		t.Errorf("MaxCount = %d, want 2", hm.MaxCount())
	}

	// everything else stays zero
	total := 0
	for _, row := range hm.Counts {
		for _, n := range row {
			total += n
		}
	}
	if total != 3 {
		t.Errorf("total cells = %d, want 3", total)
	}
}
