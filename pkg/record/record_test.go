package record

import (
	"encoding/json"
	"testing"
	"time"
)

func fp(v float64) *float64 { return &v }

func TestNewTaskDefaults(t *testing.T) {
	r := NewTask("Math homework", "2026-09-02")
	if r.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if r.Type != TypeTask {
		t.Fatalf("expected task type, got %q", r.Type)
	}
	if r.Status != StatusTodo || r.Priority != PriorityLow {
		t.Fatalf("unexpected defaults: %s %s", r.Status, r.Priority)
	}
	if r.Tag != DefaultTag {
		t.Fatalf("expected default tag, got %q", r.Tag)
	}
	if got := r.DurationMinutes(); got != DefaultTaskMinutes {
		t.Fatalf("expected default duration %d, got %d", DefaultTaskMinutes, got)
	}
	if r.Created.IsZero() || r.Updated.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestDurationMinutesFallbackOrder(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want int
	}{
		{"duration wins", Record{Duration: fp(90), Minutes: fp(10), MinutesEstimated: fp(5)}, 90},
		{"minutes next", Record{Minutes: fp(45.4), MinutesEstimated: fp(5)}, 45},
		{"estimate last", Record{MinutesEstimated: fp(30.6)}, 31},
		{"nothing set", Record{}, 0},
		{"negative clamps", Record{Duration: fp(-15)}, 0},
		{"rounds half up", Record{Duration: fp(2.5)}, 3},
	}
	for _, tc := range tests {
		if got := tc.rec.DurationMinutes(); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestSetDurationClearsLegacyFields(t *testing.T) {
	r := Record{Minutes: fp(10), MinutesEstimated: fp(20)}
	r.SetDuration(120)
	if r.Minutes != nil || r.MinutesEstimated != nil {
		t.Fatalf("expected legacy fields cleared")
	}
	if got := r.DurationMinutes(); got != 120 {
		t.Fatalf("expected 120, got %d", got)
	}
}

func TestInstantFallsBackToDateOnly(t *testing.T) {
	r := NewEvent("Study group", "2026-09-03", "")
	got, ok := r.Instant(time.UTC)
	if !ok {
		t.Fatalf("expected a parseable instant")
	}
	want := time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestInstantCombinesDateAndTime(t *testing.T) {
	r := NewEvent("Study group", "2026-09-03", "14:30")
	got, ok := r.Instant(time.UTC)
	if !ok {
		t.Fatalf("expected a parseable instant")
	}
	want := time.Date(2026, time.September, 3, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTagOrDefault(t *testing.T) {
	r := Record{Tag: "  "}
	if got := r.TagOrDefault(); got != DefaultTag {
		t.Fatalf("expected default tag, got %q", got)
	}
	r.Tag = " Science "
	if got := r.TagOrDefault(); got != "Science" {
		t.Fatalf("expected trimmed tag, got %q", got)
	}
}

func TestRecordJSONRoundTrip(t *testing.T) {
	r := NewTask("Read chapter four", "2026-09-10")
	r.Description = "Pages 80 through 120"
	r.SetDuration(45)

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Record
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ID != r.ID || back.Title != r.Title || back.DueDate != r.DueDate {
		t.Fatalf("round trip lost fields: %+v", back)
	}
	if back.DurationMinutes() != 45 {
		t.Fatalf("round trip lost duration: %d", back.DurationMinutes())
	}
	if !back.Created.Time.Equal(r.Created.Time.Truncate(time.Second)) {
		t.Fatalf("round trip shifted createdAt: %v vs %v", back.Created, r.Created)
	}
}

func TestLegacyMinutesFieldSurvivesDecode(t *testing.T) {
	raw := `{"id":"a1","type":"task","title":"Old export","minutes":25,"createdAt":"2025-01-02T10:00:00Z"}`
	var r Record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := r.DurationMinutes(); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
}

func TestStatusAliases(t *testing.T) {
	if s, err := StatusForAlias("in progress"); err != nil || s != StatusInProgress {
		t.Fatalf("expected InProgress, got %q (%v)", s, err)
	}
	if _, err := StatusForAlias("someday"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
	if p, err := PriorityForAlias("2"); err != nil || p != PriorityMedium {
		t.Fatalf("expected Medium, got %q (%v)", p, err)
	}
}
