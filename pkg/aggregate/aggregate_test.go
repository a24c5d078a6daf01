package aggregate

import (
	"testing"
	"time"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
)

func fp(v float64) *float64 { return &v }

func taskWith(tag string, minutes float64) *record.Record {
	r := record.NewTask("Task", "2026-09-01")
	r.Tag = tag
	r.SetDuration(minutes)
	return r
}

func eventOn(date string, minutes float64) *record.Record {
	r := record.NewEvent("Event", date, "10:00")
	r.SetDuration(minutes)
	return r
}

func TestTotalDurationIsAdditive(t *testing.T) {
	left := []*record.Record{taskWith("Math", 30), taskWith("Math", 45)}
	right := []*record.Record{eventOn("2026-09-01", 25)}

	both := append(append([]*record.Record{}, left...), right...)
	if got, want := TotalDuration(both), TotalDuration(left)+TotalDuration(right); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
	if got := TotalDuration(both); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestTotalDurationSkipsMissingValues(t *testing.T) {
	records := []*record.Record{
		{Duration: fp(30)},
		{},
		{Duration: fp(-10)},
	}
	if got := TotalDuration(records); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
}

func TestTopTagPrefersMostFrequent(t *testing.T) {
	records := []*record.Record{
		taskWith("Math", 10),
		taskWith("Science", 10),
		taskWith("Science", 10),
	}
	if got := TopTag(records); got != "Science" {
		t.Fatalf("expected Science, got %q", got)
	}
}

func TestTopTagTieGoesToFirstEncountered(t *testing.T) {
	records := []*record.Record{
		taskWith("Math", 10),
		taskWith("Science", 10),
		taskWith("Science", 10),
		taskWith("Math", 10),
	}
	if got := TopTag(records); got != "Math" {
		t.Fatalf("expected Math on tie, got %q", got)
	}
}

func TestTopTagEmptySetYieldsNone(t *testing.T) {
	if got := TopTag(nil); got != NoTag {
		t.Fatalf("expected %q, got %q", NoTag, got)
	}
}

func TestDailyTotalsIsDenseAndZeroFilled(t *testing.T) {
	now := time.Date(2026, time.September, 1, 15, 0, 0, 0, time.UTC)
	records := []*record.Record{
		eventOn("2026-08-30", 60),
		eventOn("2026-09-01", 30),
		eventOn("2026-09-01", 15),
		eventOn("2020-01-01", 500), // outside the window
		taskWith("Math", 90),       // tasks carry no date
	}

	series := DailyTotals(records, 7, now)
	if len(series) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(series))
	}
	if series[0].Key() != "2026-08-26" || series[6].Key() != "2026-09-01" {
		t.Fatalf("unexpected window: %s .. %s", series[0].Key(), series[6].Key())
	}

	want := map[string]int{"2026-08-30": 60, "2026-09-01": 45}
	for _, d := range series {
		if d.Minutes != want[d.Key()] {
			t.Fatalf("%s: expected %d, got %d", d.Key(), want[d.Key()], d.Minutes)
		}
	}
}

func TestDailyTotalsTruncatesLongDateKeys(t *testing.T) {
	now := time.Date(2026, time.September, 1, 15, 0, 0, 0, time.UTC)
	r := eventOn("2026-09-01T00:00:00Z", 40)

	series := DailyTotals([]*record.Record{r}, 1, now)
	if len(series) != 1 || series[0].Minutes != 40 {
		t.Fatalf("expected the long key to fold into its day, got %+v", series)
	}
}

func TestCapStatusUnset(t *testing.T) {
	for _, capMin := range []int{0, -100} {
		got := CapStatus(capMin, 500)
		if got.State != CapUnset || got.Level != LevelRoutine {
			t.Fatalf("cap %d: expected unset routine, got %+v", capMin, got)
		}
		if got.Text() != "No weekly cap set" {
			t.Fatalf("cap %d: unexpected text %q", capMin, got.Text())
		}
	}
}

func TestCapStatusRemaining(t *testing.T) {
	got := CapStatus(480, 400)
	if got.State != CapRemaining || got.Level != LevelRoutine || got.Minutes != 80 {
		t.Fatalf("expected 80 remaining routine, got %+v", got)
	}
	if got.Text() != "Remaining: 1 h 20 m" {
		t.Fatalf("unexpected text %q", got.Text())
	}
}

func TestCapStatusExactlyAtCapIsNotOver(t *testing.T) {
	got := CapStatus(480, 480)
	if got.State != CapRemaining || got.Minutes != 0 {
		t.Fatalf("expected zero remaining, got %+v", got)
	}
}

func TestCapStatusOverIsUrgent(t *testing.T) {
	got := CapStatus(480, 500)
	if got.State != CapOver || got.Level != LevelUrgent || got.Minutes != 20 {
		t.Fatalf("expected 20 over urgent, got %+v", got)
	}
	if got.Text() != "Over by 20 m" {
		t.Fatalf("unexpected text %q", got.Text())
	}

	got = CapStatus(600, 650)
	if got.Level != LevelUrgent || got.Text() != "Over by 50 m" {
		t.Fatalf("expected urgent over by 50 m, got %+v (%q)", got, got.Text())
	}
}
