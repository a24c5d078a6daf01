package store

import (
	"context"
	"testing"
	"time"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/timeutil"
)

func TestWatchEmitsRecordChanges(t *testing.T) {
	p := load(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before storing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Store(record.NewTask("Math homework", "2026-09-10")); err != nil {
		t.Fatalf("store: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Type == EventRecordsChanged {
				if evt.Key != KeyRecords {
					t.Fatalf("expected key %q, got %q", KeyRecords, evt.Key)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for record change event")
		}
	}
}

func TestWatchEmitsSettingChanges(t *testing.T) {
	p := load(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	if err := p.SetUnit(timeutil.UnitHours); err != nil {
		t.Fatalf("set unit: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Type == EventSettingChanged {
				if evt.Key != KeyUnit {
					t.Fatalf("expected key %q, got %q", KeyUnit, evt.Key)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for setting change event")
		}
	}
}

func TestWatchChannelClosesOnCancel(t *testing.T) {
	p := load(t)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for channel close")
		}
	}
}
