package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/timeutil"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestStoreAndGetRoundTrip(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	r := record.NewTask("Math homework", "2026-09-10")
	if err := p.Store(r); err != nil {
		t.Fatalf("store: %v", err)
	}

	got, err := p.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != r.ID || got.Title != r.Title || got.DueDate != r.DueDate {
		t.Fatalf("round trip lost fields: %+v", got)
	}
}

func TestGetMissingRecord(t *testing.T) {
	p := load(t)
	if _, err := p.Get(context.Background(), "no-such-id"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreRejectsRecordWithoutID(t *testing.T) {
	p := load(t)
	if err := p.Store(&record.Record{Type: record.TypeTask}); err == nil {
		t.Fatalf("expected error for missing id")
	}
	if err := p.Store(nil); err == nil {
		t.Fatalf("expected error for nil record")
	}
}

func TestListOrdersByCreationTime(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	first := record.NewTask("First", "2026-09-10")
	second := record.NewTask("Second", "2026-09-11")
	second.Created.Time = first.Created.Time.Add(time.Second)

	// Store out of order; List should restore creation order.
	if err := p.Store(second); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := p.Store(first); err != nil {
		t.Fatalf("store: %v", err)
	}

	all := p.List(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if all[0].ID != first.ID || all[1].ID != second.ID {
		t.Fatalf("expected creation order, got %s then %s", all[0].Title, all[1].Title)
	}
}

func TestListSkipsCorruptEntries(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	ctx := context.Background()

	good := record.NewTask("Readable", "2026-09-10")
	if err := p.Store(good); err != nil {
		t.Fatalf("store: %v", err)
	}

	// Plant a file diskv will list but json will refuse.
	bad := filepath.Join(base, "records", "corrupt-entry")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	all := p.List(ctx)
	if len(all) != 1 || all[0].ID != good.ID {
		t.Fatalf("expected only the readable record, got %d", len(all))
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	r := record.NewTask("Short lived", "2026-09-10")
	if err := p.Store(r); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := p.Delete(r.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := p.Get(ctx, r.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSettingsDefaults(t *testing.T) {
	p := load(t)
	if got := p.CapMinutes(); got != 0 {
		t.Fatalf("expected unset cap, got %d", got)
	}
	if got := p.Unit(); got != timeutil.UnitMinutes {
		t.Fatalf("expected minutes default, got %q", got)
	}
	if got := p.Theme(); got != "light" {
		t.Fatalf("expected light default, got %q", got)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	p := load(t)
	if err := p.SetCapMinutes(480); err != nil {
		t.Fatalf("set cap: %v", err)
	}
	if err := p.SetUnit(timeutil.UnitHours); err != nil {
		t.Fatalf("set unit: %v", err)
	}
	if err := p.SetTheme("dark"); err != nil {
		t.Fatalf("set theme: %v", err)
	}

	if got := p.CapMinutes(); got != 480 {
		t.Fatalf("expected 480, got %d", got)
	}
	if got := p.Unit(); got != timeutil.UnitHours {
		t.Fatalf("expected hours, got %q", got)
	}
	if got := p.Theme(); got != "dark" {
		t.Fatalf("expected dark, got %q", got)
	}
}

func TestSettingsRejectInvalidValues(t *testing.T) {
	p := load(t)
	if err := p.SetUnit("fortnights"); err == nil {
		t.Fatalf("expected unit rejection")
	}
	if err := p.SetTheme("mauve"); err == nil {
		t.Fatalf("expected theme rejection")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := load(t)
	ctx := context.Background()

	task := record.NewTask("Math homework", "2026-09-10")
	event := record.NewEvent("Study group", "2026-09-12", "14:00")
	for _, r := range []*record.Record{task, event} {
		if err := src.Store(r); err != nil {
			t.Fatalf("store: %v", err)
		}
	}
	if err := src.SetCapMinutes(600); err != nil {
		t.Fatalf("set cap: %v", err)
	}
	if err := src.SetUnit(timeutil.UnitHours); err != nil {
		t.Fatalf("set unit: %v", err)
	}

	data, err := src.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	dst := load(t)
	if err := dst.Import(ctx, data); err != nil {
		t.Fatalf("import: %v", err)
	}

	all := dst.List(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	ids := map[string]bool{all[0].ID: true, all[1].ID: true}
	if !ids[task.ID] || !ids[event.ID] {
		t.Fatalf("imported ids do not match exported ids")
	}
	if dst.CapMinutes() != 600 || dst.Unit() != timeutil.UnitHours {
		t.Fatalf("settings lost in transfer: cap=%d unit=%q", dst.CapMinutes(), dst.Unit())
	}
}

func TestImportReplacesExistingRecords(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	old := record.NewTask("Old record", "2026-09-01")
	if err := p.Store(old); err != nil {
		t.Fatalf("store: %v", err)
	}

	incoming := record.NewTask("Incoming", "2026-09-05")
	doc := document{Records: []*record.Record{incoming}}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if err := p.Import(ctx, data); err != nil {
		t.Fatalf("import: %v", err)
	}

	all := p.List(ctx)
	if len(all) != 1 || all[0].ID != incoming.ID {
		t.Fatalf("expected only the incoming record, got %d", len(all))
	}
}

func TestImportRejectsInvalidDocumentWithoutWriting(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	keep := record.NewTask("Keep me", "2026-09-01")
	if err := p.Store(keep); err != nil {
		t.Fatalf("store: %v", err)
	}

	bad := record.NewTask("No id", "2026-09-05")
	bad.ID = ""
	good := record.NewTask("Fine", "2026-09-06")
	doc := document{Records: []*record.Record{good, bad}}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if err := p.Import(ctx, data); err == nil {
		t.Fatalf("expected import rejection")
	}

	all := p.List(ctx)
	if len(all) != 1 || all[0].ID != keep.ID {
		t.Fatalf("rejected import must leave the store untouched, got %d records", len(all))
	}
}

func TestImportRejectsMalformedJSON(t *testing.T) {
	p := load(t)
	if err := p.Import(context.Background(), []byte("{oops")); err == nil {
		t.Fatalf("expected error for malformed document")
	}
}

func TestImportRejectsDuplicateIDs(t *testing.T) {
	p := load(t)
	r := record.NewTask("Twin", "2026-09-05")
	doc := document{Records: []*record.Record{r, r}}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := p.Import(context.Background(), data); err == nil {
		t.Fatalf("expected duplicate id rejection")
	}
}
