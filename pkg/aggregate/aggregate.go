// Package aggregate computes derived statistics over a record set: totals,
// the most frequent tag, trailing daily duration series, and the weekly
// cap status. Nothing here is stored; every value is recomputed from the
// current records and clock.
package aggregate

import (
	"time"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
)

// NoTag is returned by TopTag when no record carries a tag.
const NoTag = "none"

// TotalCount returns the number of records in the set.
func TotalCount(records []*record.Record) int {
	n := 0
	for _, r := range records {
		if r != nil {
			n++
		}
	}
	return n
}

// TotalDuration sums every record's duration in minutes. Missing or
// unparsable durations contribute zero, so the sum is additive over
// disjoint sets.
func TotalDuration(records []*record.Record) int {
	total := 0
	for _, r := range records {
		total += r.DurationMinutes()
	}
	return total
}

// TopTag returns the most frequent tag across the set. Ties go to the tag
// encountered first; an untagged set yields NoTag.
func TopTag(records []*record.Record) string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, r := range records {
		if r == nil {
			continue
		}
		tag := r.TagOrDefault()
		if tag == "" {
			continue
		}
		if _, seen := counts[tag]; !seen {
			order = append(order, tag)
		}
		counts[tag]++
	}

	top := NoTag
	max := 0
	for _, tag := range order {
		if counts[tag] > max {
			max = counts[tag]
			top = tag
		}
	}
	return top
}

// DayTotal is one day of the trailing duration series.
type DayTotal struct {
	Day     time.Time
	Minutes int
}

// Key returns the day formatted as the series bucket key.
func (d DayTotal) Key() string {
	return d.Day.Format(record.LayoutDate)
}

// DailyTotals sums durations per calendar day for the trailing days ending
// today (inclusive), producing a dense zero-filled series of exactly days
// entries. Only records carrying an explicit date field (events) land in a
// day bucket; tasks have no date and are naturally excluded.
func DailyTotals(records []*record.Record, days int, now time.Time) []DayTotal {
	if days <= 0 {
		return nil
	}

	byDay := make(map[string]int)
	for _, r := range records {
		if r == nil || r.Date == "" {
			continue
		}
		key := r.Date
		if len(key) > len(record.LayoutDate) {
			key = key[:len(record.LayoutDate)]
		}
		byDay[key] += r.DurationMinutes()
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	series := make([]DayTotal, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		series = append(series, DayTotal{
			Day:     day,
			Minutes: byDay[day.Format(record.LayoutDate)],
		})
	}
	return series
}
