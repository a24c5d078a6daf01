package app

import (
	"context"
	"time"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/aggregate"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
)

// TrendDays is the window of the dashboard's daily duration series.
const TrendDays = 7

// Dashboard is the derived-statistics view over the current record set.
type Dashboard struct {
	TaskCount     int
	EventCount    int
	TotalDuration int
	TopTag        string
	Trend         []aggregate.DayTotal
	Cap           aggregate.CapReport
	Unit          string
}

// Dashboard recomputes every derived statistic from the current records,
// settings, and clock. Nothing is cached between calls.
func (s *Service) Dashboard(ctx context.Context, now time.Time) (Dashboard, error) {
	p, err := s.persistence()
	if err != nil {
		return Dashboard{}, err
	}

	records := p.List(ctx)
	tasks := 0
	events := 0
	for _, r := range records {
		switch r.Type {
		case record.TypeTask:
			tasks++
		case record.TypeEvent:
			events++
		}
	}

	used := aggregate.TotalDuration(records)
	return Dashboard{
		TaskCount:     tasks,
		EventCount:    events,
		TotalDuration: used,
		TopTag:        aggregate.TopTag(records),
		Trend:         aggregate.DailyTotals(records, TrendDays, now),
		Cap:           aggregate.CapStatus(p.CapMinutes(), used),
		Unit:          p.Unit(),
	}, nil
}
