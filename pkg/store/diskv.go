package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/timeutil"
)

// Logical setting names. These are the keys the store persists under, the
// keys export documents use, and the keys change notifications carry.
const (
	KeyRecords = "records"
	KeyCap     = "weeklyCapMinutes"
	KeyUnit    = "durationUnit"
	KeyTheme   = "theme"
)

// ErrNotFound is returned when no record exists for the requested id.
var ErrNotFound = errors.New("store: record not found")

// Persistence is the durable key-value contract for planner data: the
// record collection plus the weekly cap, display unit, and theme settings,
// with change notification and whole-state export/import.
type Persistence interface {
	List(ctx context.Context) []*record.Record
	Get(ctx context.Context, id string) (*record.Record, error)
	Store(r *record.Record) error
	Delete(id string) error

	CapMinutes() int
	SetCapMinutes(minutes int) error
	Unit() string
	SetUnit(unit string) error
	Theme() string
	SetTheme(theme string) error

	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, data []byte) error

	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Keys are "records-<id>" or "settings-<name>"; the first dash separates
// the bucket directory from the file name. Record ids contain dashes, so
// only the first one splits.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return &diskv.PathKey{Path: []string{}, FileName: s}
	}
	return &diskv.PathKey{
		Path:     []string{parts[0]},
		FileName: parts[1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

func recordKey(id string) string {
	return "records-" + id
}

func settingKey(name string) string {
	return "settings-" + name
}

func (p *persistence) read(key string) (*record.Record, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	r := &record.Record{}
	if err := json.Unmarshal(val, r); err != nil {
		return nil, err
	}
	if r.ID == "" {
		r.ID = strings.TrimPrefix(key, "records-")
	}
	return r, nil
}

// List returns every stored record ordered by creation time then id.
// Unreadable entries are skipped with a note; a corrupt store degrades to
// fewer records, never a failed read path.
func (p *persistence) List(ctx context.Context) []*record.Record {
	all := make([]*record.Record, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(key, "records-") {
			continue
		}
		r, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, r)
	}
	sortRecords(all)
	return all
}

func (p *persistence) Get(ctx context.Context, id string) (*record.Record, error) {
	r, err := p.read(recordKey(id))
	if err != nil {
		return nil, ErrNotFound
	}
	return r, nil
}

func (p *persistence) Store(r *record.Record) error {
	if r == nil {
		return errors.New("store: nil record")
	}
	if r.ID == "" {
		return errors.New("store: record id required")
	}
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return p.d.Write(recordKey(r.ID), data)
}

func (p *persistence) Delete(id string) error {
	return p.d.Erase(recordKey(id))
}

func (p *persistence) CapMinutes() int {
	var minutes int
	if err := p.readSetting(KeyCap, &minutes); err != nil || minutes < 0 {
		return 0
	}
	return minutes
}

func (p *persistence) SetCapMinutes(minutes int) error {
	if minutes < 0 {
		minutes = 0
	}
	return p.writeSetting(KeyCap, minutes)
}

func (p *persistence) Unit() string {
	var unit string
	if err := p.readSetting(KeyUnit, &unit); err != nil {
		return timeutil.UnitMinutes
	}
	if unit != timeutil.UnitHours {
		return timeutil.UnitMinutes
	}
	return unit
}

func (p *persistence) SetUnit(unit string) error {
	if unit != timeutil.UnitMinutes && unit != timeutil.UnitHours {
		return fmt.Errorf("store: unit must be %q or %q", timeutil.UnitMinutes, timeutil.UnitHours)
	}
	return p.writeSetting(KeyUnit, unit)
}

func (p *persistence) Theme() string {
	var theme string
	if err := p.readSetting(KeyTheme, &theme); err != nil {
		return "light"
	}
	if theme != "dark" {
		return "light"
	}
	return theme
}

func (p *persistence) SetTheme(theme string) error {
	if theme != "light" && theme != "dark" {
		return fmt.Errorf("store: theme must be %q or %q", "light", "dark")
	}
	return p.writeSetting(KeyTheme, theme)
}

// Settings persist as JSON values under their logical name, so exported
// documents and stored settings share one encoding.
func (p *persistence) readSetting(name string, out interface{}) error {
	val, err := p.d.Read(settingKey(name))
	if err != nil {
		return err
	}
	return json.Unmarshal(val, out)
}

func (p *persistence) writeSetting(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.d.Write(settingKey(name), data)
}

func sortRecords(records []*record.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		left := records[i]
		right := records[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.Created.Time
		rt := right.Created.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.ID < right.ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.ID < right.ID
			}
			return lt.Before(rt)
		}
	})
}
