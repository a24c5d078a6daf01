package record

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Type discriminates the two record variants kept in the planner.
type Type string

const (
	TypeTask  Type = "task"
	TypeEvent Type = "event"
)

// DefaultTag is applied when a record is created without a tag.
const DefaultTag = "General"

// DefaultTaskMinutes is the duration assumed for tasks created without one.
const DefaultTaskMinutes = 60

const (
	LayoutDate = "2006-01-02"
	LayoutTime = "15:04"
)

// Record is the unit of persisted planner data, either a task or an event.
// Task-only and event-only fields are pointers or zero values on the other
// variant so a single JSON shape round-trips both.
type Record struct {
	ID          string `json:"id"`
	Type        Type   `json:"type"`
	Title       string `json:"title"`
	Tag         string `json:"tag,omitempty"`
	Description string `json:"description,omitempty"`

	// Task fields.
	DueDate  string   `json:"dueDate,omitempty"`
	Status   Status   `json:"status,omitempty"`
	Priority Priority `json:"priority,omitempty"`

	// Event fields.
	Date string `json:"date,omitempty"`
	Time string `json:"time,omitempty"`

	// Duration in minutes. Older exports used "minutes" or
	// "minutesEstimated", so all three survive a round trip.
	Duration         *float64 `json:"duration,omitempty"`
	Minutes          *float64 `json:"minutes,omitempty"`
	MinutesEstimated *float64 `json:"minutesEstimated,omitempty"`

	Created Timestamp `json:"createdAt"`
	Updated Timestamp `json:"updatedAt"`
}

// NewTask builds a task record with a fresh id and creation timestamps.
func NewTask(title, dueDate string) *Record {
	r := newRecord(TypeTask, title)
	r.DueDate = dueDate
	r.Status = StatusTodo
	r.Priority = PriorityLow
	d := float64(DefaultTaskMinutes)
	r.Duration = &d
	return r
}

// NewEvent builds an event record with a fresh id and creation timestamps.
func NewEvent(title, date, at string) *Record {
	r := newRecord(TypeEvent, title)
	r.Date = date
	r.Time = at
	return r
}

func newRecord(t Type, title string) *Record {
	now := time.Now()
	return &Record{
		ID:      uuid.NewString(),
		Type:    t,
		Title:   title,
		Tag:     DefaultTag,
		Created: Timestamp{Time: now},
		Updated: Timestamp{Time: now},
	}
}

// Touch refreshes the updated timestamp after a mutation.
func (r *Record) Touch() {
	r.Updated = Timestamp{Time: time.Now()}
}

// SetDuration stores minutes under the canonical duration field.
func (r *Record) SetDuration(minutes float64) {
	if minutes < 0 {
		minutes = 0
	}
	r.Duration = &minutes
	r.Minutes = nil
	r.MinutesEstimated = nil
}

// DurationMinutes reads the record's duration from the first present of
// duration, minutes, or minutesEstimated, coerced to a non-negative whole
// minute. Missing or negative values contribute zero.
func (r *Record) DurationMinutes() int {
	if r == nil {
		return 0
	}
	for _, v := range []*float64{r.Duration, r.Minutes, r.MinutesEstimated} {
		if v == nil {
			continue
		}
		m := math.Round(*v)
		if m < 0 || math.IsNaN(m) || math.IsInf(m, 0) {
			return 0
		}
		return int(m)
	}
	return 0
}

// DueDay parses the task due date as the start of that calendar day.
func (r *Record) DueDay(loc *time.Location) (time.Time, bool) {
	if r.Type != TypeTask || r.DueDate == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(LayoutDate, r.DueDate, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Instant combines the event's date and time into a single point in time.
func (r *Record) Instant(loc *time.Location) (time.Time, bool) {
	if r.Type != TypeEvent || r.Date == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(LayoutDate+" "+LayoutTime, r.Date+" "+r.Time, loc)
	if err != nil {
		// An event without a usable time still lands on its day.
		t, err = time.ParseInLocation(LayoutDate, r.Date, loc)
		if err != nil {
			return time.Time{}, false
		}
	}
	return t, true
}

// When returns the chronological sort key for the record: the due day for
// tasks, the instant for events.
func (r *Record) When(loc *time.Location) (time.Time, bool) {
	switch r.Type {
	case TypeTask:
		return r.DueDay(loc)
	case TypeEvent:
		return r.Instant(loc)
	}
	return time.Time{}, false
}

// TagOrDefault returns the trimmed tag, or the default when absent.
func (r *Record) TagOrDefault() string {
	tag := strings.TrimSpace(r.Tag)
	if tag == "" {
		return DefaultTag
	}
	return tag
}

func (r *Record) String() string {
	switch r.Type {
	case TypeTask:
		return fmt.Sprintf("%s (due %s, %s, %s)", r.Title, r.DueDate, r.Status, r.Priority)
	case TypeEvent:
		return fmt.Sprintf("%s (%s %s)", r.Title, r.Date, r.Time)
	}
	return r.Title
}
