package classify

import (
	"testing"
	"time"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
)

var now = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.Local)

func task(due string, status record.Status) *record.Record {
	r := record.NewTask("Math homework", due)
	r.Status = status
	return r
}

func event(date, at string) *record.Record {
	return record.NewEvent("Study group", date, at)
}

func TestDoneTaskIsCompletedRegardlessOfDueDate(t *testing.T) {
	for _, due := range []string{"2020-01-01", "2026-09-01", "2099-12-31"} {
		r := task(due, record.StatusDone)
		if got := Classify(r, now); got != Completed {
			t.Fatalf("due %s: expected Completed, got %v", due, got)
		}
	}
}

func TestDoneStatusComparesCaseInsensitively(t *testing.T) {
	r := task("2099-12-31", record.Status("done"))
	if got := Classify(r, now); got != Completed {
		t.Fatalf("expected Completed for lowercase done, got %v", got)
	}
}

func TestTaskBucketsByDueDay(t *testing.T) {
	tests := []struct {
		due  string
		want Bucket
	}{
		{"2026-08-31", Completed},
		{"2026-09-01", Today},
		{"2026-09-02", Upcoming},
		{"2027-01-15", Upcoming},
	}
	for _, tc := range tests {
		r := task(tc.due, record.StatusTodo)
		if got := Classify(r, now); got != tc.want {
			t.Fatalf("due %s: expected %v, got %v", tc.due, tc.want, got)
		}
	}
}

func TestEventPastInstantIsCompletedEvenToday(t *testing.T) {
	// Same day as now, but the time already passed.
	r := event("2026-09-01", "09:00")
	if got := Classify(r, now); got != Completed {
		t.Fatalf("expected Completed for past instant today, got %v", got)
	}
}

func TestEventTodayWithFutureTimeIsToday(t *testing.T) {
	r := event("2026-09-01", "18:30")
	if got := Classify(r, now); got != Today {
		t.Fatalf("expected Today, got %v", got)
	}
}

func TestEventLaterDateIsUpcoming(t *testing.T) {
	r := event("2026-09-03", "08:00")
	if got := Classify(r, now); got != Upcoming {
		t.Fatalf("expected Upcoming, got %v", got)
	}
}

func TestUnparsableDatesSinkToCompleted(t *testing.T) {
	if got := Classify(task("not-a-date", record.StatusTodo), now); got != Completed {
		t.Fatalf("expected Completed for bad due date, got %v", got)
	}
	if got := Classify(event("also bad", "99:99"), now); got != Completed {
		t.Fatalf("expected Completed for bad event date, got %v", got)
	}
}

func TestGroupSortsTodayAndUpcomingChronologically(t *testing.T) {
	late := event("2026-09-01", "20:00")
	early := event("2026-09-01", "13:00")
	farTask := task("2026-09-05", record.StatusTodo)
	nearTask := task("2026-09-02", record.StatusTodo)

	b := Group([]*record.Record{late, farTask, early, nearTask}, now)

	today := b.Columns[Today]
	if len(today) != 2 {
		t.Fatalf("expected 2 in Today, got %d", len(today))
	}
	if today[0].ID != early.ID || today[1].ID != late.ID {
		t.Fatalf("Today column not sorted by instant")
	}

	upcoming := b.Columns[Upcoming]
	if len(upcoming) != 2 {
		t.Fatalf("expected 2 in Upcoming, got %d", len(upcoming))
	}
	if upcoming[0].ID != nearTask.ID || upcoming[1].ID != farTask.ID {
		t.Fatalf("Upcoming column not sorted by due day")
	}
}

func TestGroupKeepsCompletedInStoreOrder(t *testing.T) {
	first := task("2026-08-20", record.StatusTodo)
	second := task("2026-08-25", record.StatusDone)
	third := event("2026-08-30", "10:00")

	b := Group([]*record.Record{first, second, third}, now)

	completed := b.Columns[Completed]
	if len(completed) != 3 {
		t.Fatalf("expected 3 in Completed, got %d", len(completed))
	}
	if completed[0].ID != first.ID || completed[1].ID != second.ID || completed[2].ID != third.ID {
		t.Fatalf("Completed column should keep store order")
	}
}

func TestBucketForAlias(t *testing.T) {
	if b, ok := BucketForAlias("done"); !ok || b != Completed {
		t.Fatalf("expected done to resolve to Completed")
	}
	if _, ok := BucketForAlias("nonsense"); ok {
		t.Fatalf("expected nonsense to not resolve")
	}
}
