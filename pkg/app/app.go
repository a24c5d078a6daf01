// Package app provides high-level planner operations over the store.
// It wraps persistence, validation, and classification so the CLI and the
// live board share one implementation.
package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/classify"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/search"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/validate"
)

// Service provides planner operations for records and settings.
type Service struct {
	Persistence store.Persistence
	Validator   validate.Strategy
}

// New builds a Service with the default validation rules.
func New(p store.Persistence) *Service {
	return &Service{Persistence: p, Validator: validate.Rules{}}
}

// ErrNotFound is returned when no record matches the requested id.
var ErrNotFound = errors.New("app: record not found")

// ValidationError carries every field failure from a rejected submission.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "app: invalid record: " + strings.Join(e.Messages, "; ")
}

func (s *Service) validator() validate.Strategy {
	if s.Validator != nil {
		return s.Validator
	}
	return validate.Rules{}
}

func (s *Service) persistence() (store.Persistence, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence, nil
}

// TaskInput is a task submission from the user.
type TaskInput struct {
	Title       string
	DueDate     string
	Status      string
	Priority    string
	Duration    string
	Tag         string
	Description string
}

// AddTask validates and stores a new task. A rejected submission returns a
// ValidationError listing every failing field and writes nothing.
func (s *Service) AddTask(ctx context.Context, in TaskInput) (*record.Record, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}

	r := record.NewTask(strings.TrimSpace(in.Title), in.DueDate)
	if tag := strings.TrimSpace(in.Tag); tag != "" {
		r.Tag = tag
	}
	r.Description = strings.TrimSpace(in.Description)

	if in.Status != "" {
		status, err := record.StatusForAlias(in.Status)
		if err != nil {
			return nil, &ValidationError{Messages: []string{err.Error()}}
		}
		r.Status = status
	}
	if in.Priority != "" {
		priority, err := record.PriorityForAlias(in.Priority)
		if err != nil {
			return nil, &ValidationError{Messages: []string{err.Error()}}
		}
		r.Priority = priority
	}

	var msgs []string
	if in.Duration != "" {
		if res := s.validator().Field("duration", in.Duration); !res.Valid {
			msgs = append(msgs, res.Message)
		} else if v, err := strconv.ParseFloat(in.Duration, 64); err == nil {
			r.SetDuration(v)
		}
		// A non-numeric duration that slipped past the pattern keeps the
		// 60-minute default rather than failing the submission.
	}

	msgs = append(msgs, s.validator().Record(r)...)
	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	if err := p.Store(r); err != nil {
		return nil, err
	}
	return r, nil
}

// EventInput is an event submission from the user.
type EventInput struct {
	Title       string
	Date        string
	Time        string
	Duration    string
	Tag         string
	Description string
}

// AddEvent validates and stores a new event.
func (s *Service) AddEvent(ctx context.Context, in EventInput) (*record.Record, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}

	r := record.NewEvent(strings.TrimSpace(in.Title), in.Date, in.Time)
	if tag := strings.TrimSpace(in.Tag); tag != "" {
		r.Tag = tag
	}
	r.Description = strings.TrimSpace(in.Description)

	var msgs []string
	if in.Duration != "" {
		if res := s.validator().Field("duration", in.Duration); !res.Valid {
			msgs = append(msgs, res.Message)
		} else if v, err := strconv.ParseFloat(in.Duration, 64); err == nil {
			r.SetDuration(v)
		}
	}

	msgs = append(msgs, s.validator().Record(r)...)
	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	if err := p.Store(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Edit describes a partial update to an existing record. Nil fields are
// left alone; id, type, and creation time are immutable.
type Edit struct {
	Title       *string
	Tag         *string
	Description *string
	DueDate     *string
	Status      *string
	Priority    *string
	Date        *string
	Time        *string
	Duration    *string
}

// Update applies an edit to the record with the given id, re-validating
// the result before anything is written.
func (s *Service) Update(ctx context.Context, id string, edit Edit) (*record.Record, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}
	r, err := p.Get(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if edit.Title != nil {
		r.Title = strings.TrimSpace(*edit.Title)
	}
	if edit.Tag != nil {
		r.Tag = strings.TrimSpace(*edit.Tag)
	}
	if edit.Description != nil {
		r.Description = strings.TrimSpace(*edit.Description)
	}
	if edit.DueDate != nil {
		r.DueDate = *edit.DueDate
	}
	if edit.Date != nil {
		r.Date = *edit.Date
	}
	if edit.Time != nil {
		r.Time = *edit.Time
	}
	if edit.Status != nil {
		status, err := record.StatusForAlias(*edit.Status)
		if err != nil {
			return nil, &ValidationError{Messages: []string{err.Error()}}
		}
		r.Status = status
	}
	if edit.Priority != nil {
		priority, err := record.PriorityForAlias(*edit.Priority)
		if err != nil {
			return nil, &ValidationError{Messages: []string{err.Error()}}
		}
		r.Priority = priority
	}

	var msgs []string
	if edit.Duration != nil {
		if res := s.validator().Field("duration", *edit.Duration); !res.Valid {
			msgs = append(msgs, res.Message)
		} else if v, err := strconv.ParseFloat(*edit.Duration, 64); err == nil {
			r.SetDuration(v)
		}
	}

	msgs = append(msgs, s.validator().Record(r)...)
	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	r.Touch()
	if err := p.Store(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Complete marks the task with the given id as Done.
func (s *Service) Complete(ctx context.Context, id string) (*record.Record, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}
	r, err := p.Get(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if r.Type != record.TypeTask {
		return nil, fmt.Errorf("app: %s is an event; events complete on their own", id)
	}
	r.Status = record.StatusDone
	r.Touch()
	if err := p.Store(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Remove deletes the record with the given id.
func (s *Service) Remove(ctx context.Context, id string) error {
	p, err := s.persistence()
	if err != nil {
		return err
	}
	if _, err := p.Get(ctx, id); err != nil {
		return ErrNotFound
	}
	return p.Delete(id)
}

// Records lists every stored record.
func (s *Service) Records(ctx context.Context) ([]*record.Record, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}
	return p.List(ctx), nil
}

// Board classifies the current record set against now.
func (s *Service) Board(ctx context.Context, now time.Time) (classify.Board, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return classify.Board{}, err
	}
	return classify.Group(records, now), nil
}

// Search filters the record set by pattern. An empty pattern returns
// everything; an invalid pattern returns ok=false and the caller keeps its
// current view.
func (s *Service) Search(ctx context.Context, pattern string) (search.Result, *search.Matcher, bool, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return search.Result{}, nil, false, err
	}
	m := search.Compile(pattern)
	if m == nil && strings.TrimSpace(pattern) != "" {
		// Malformed pattern: no matcher, view unchanged.
		return search.Filter(records, nil), nil, false, nil
	}
	return search.Filter(records, m), m, true, nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}
	return p.Watch(ctx)
}

// Export serializes the full planner state.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	p, err := s.persistence()
	if err != nil {
		return nil, err
	}
	return p.Export(ctx)
}

// Import replaces the planner state from an exported document,
// all-or-nothing.
func (s *Service) Import(ctx context.Context, data []byte) error {
	p, err := s.persistence()
	if err != nil {
		return err
	}
	return p.Import(ctx, data)
}
