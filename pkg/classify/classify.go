// Package classify decides which board column a record belongs to. The
// classification is a pure function of the record and the current time and
// is recomputed on every query; no status is ever cached.
package classify

import (
	"sort"
	"time"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
)

// Bucket is one of the three board columns.
type Bucket int

const (
	Today Bucket = iota
	Upcoming
	Completed
)

func (b Bucket) String() string {
	switch b {
	case Today:
		return "Today"
	case Upcoming:
		return "Upcoming"
	case Completed:
		return "Completed"
	}
	return "Unknown"
}

// Buckets lists the columns in display order.
func Buckets() []Bucket {
	return []Bucket{Today, Upcoming, Completed}
}

// BucketForAlias resolves user input like "today" to a bucket.
func BucketForAlias(alias string) (Bucket, bool) {
	switch alias {
	case "today", "now":
		return Today, true
	case "upcoming", "future", "later":
		return Upcoming, true
	case "completed", "complete", "done", "past":
		return Completed, true
	}
	return Today, false
}

// Classify places a record in a bucket relative to now.
//
// Tasks: a Done task is Completed regardless of its due date. Otherwise the
// due date, truncated to the day, is compared against today: earlier is
// Completed, equal is Today, later is Upcoming.
//
// Events: an event whose instant has already passed is Completed even when
// its date is today. Otherwise a same-day event is Today and anything
// later is Upcoming.
//
// Records whose dates cannot be parsed sink into Completed, the same
// column an ancient date would land in.
func Classify(r *record.Record, now time.Time) Bucket {
	switch r.Type {
	case record.TypeTask:
		if r.Status.Done() {
			return Completed
		}
		due, ok := r.DueDay(now.Location())
		if !ok {
			return Completed
		}
		today := dayOf(now)
		switch {
		case due.Before(today):
			return Completed
		case due.Equal(today):
			return Today
		default:
			return Upcoming
		}
	case record.TypeEvent:
		instant, ok := r.Instant(now.Location())
		if !ok {
			return Completed
		}
		if instant.Before(now) {
			return Completed
		}
		if dayOf(instant).Equal(dayOf(now)) {
			return Today
		}
		return Upcoming
	}
	return Completed
}

// Board holds a full classification pass over a record set.
type Board struct {
	Now     time.Time
	Columns map[Bucket][]*record.Record
}

// Count returns the number of records in the bucket.
func (b Board) Count(bucket Bucket) int {
	return len(b.Columns[bucket])
}

// Group classifies every record and sorts the Today and Upcoming columns
// ascending by their chronological key (due day for tasks, instant for
// events), ties broken by creation time then id. The Completed column
// keeps store order so finished records stay where they were listed.
func Group(records []*record.Record, now time.Time) Board {
	b := Board{
		Now:     now,
		Columns: make(map[Bucket][]*record.Record, 3),
	}
	for _, r := range records {
		if r == nil {
			continue
		}
		bucket := Classify(r, now)
		b.Columns[bucket] = append(b.Columns[bucket], r)
	}
	sortChronological(b.Columns[Today], now.Location())
	sortChronological(b.Columns[Upcoming], now.Location())
	return b
}

func sortChronological(records []*record.Record, loc *time.Location) {
	sort.SliceStable(records, func(i, j int) bool {
		left, lok := records[i].When(loc)
		right, rok := records[j].When(loc)
		switch {
		case !lok && !rok:
			return records[i].ID < records[j].ID
		case !lok:
			return false
		case !rok:
			return true
		}
		if left.Equal(right) {
			lc := records[i].Created.Time
			rc := records[j].Created.Time
			if lc.Equal(rc) {
				return records[i].ID < records[j].ID
			}
			return lc.Before(rc)
		}
		return left.Before(right)
	})
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
