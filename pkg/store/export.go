package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
)

// document is the full persisted state serialized as one JSON object keyed
// by logical setting name.
type document struct {
	Records []*record.Record `json:"records"`
	Cap     int              `json:"weeklyCapMinutes"`
	Unit    string           `json:"durationUnit"`
	Theme   string           `json:"theme"`
}

// Export serializes the whole store into a single JSON document.
func (p *persistence) Export(ctx context.Context) ([]byte, error) {
	doc := document{
		Records: p.List(ctx),
		Cap:     p.CapMinutes(),
		Unit:    p.Unit(),
		Theme:   p.Theme(),
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Import replaces the store contents with the document. The whole document
// is validated first: it must parse, and every record needs at minimum an
// id, a type, and a creation timestamp. A structurally invalid document is
// rejected before any key is written, leaving existing state untouched.
func (p *persistence) Import(ctx context.Context, data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("store: invalid import document: %w", err)
	}

	seen := make(map[string]bool, len(doc.Records))
	for i, r := range doc.Records {
		switch {
		case r == nil:
			return fmt.Errorf("store: import record %d is empty", i)
		case r.ID == "":
			return fmt.Errorf("store: import record %d is missing an id", i)
		case r.Type != record.TypeTask && r.Type != record.TypeEvent:
			return fmt.Errorf("store: import record %q has unknown type %q", r.ID, r.Type)
		case r.Created.IsZero():
			return fmt.Errorf("store: import record %q is missing a creation timestamp", r.ID)
		case seen[r.ID]:
			return fmt.Errorf("store: import record id %q appears twice", r.ID)
		}
		seen[r.ID] = true
	}

	// Validation passed; now the incoming collection replaces the stored one.
	for _, existing := range p.List(ctx) {
		if err := p.Delete(existing.ID); err != nil {
			return fmt.Errorf("store: clear record %s: %w", existing.ID, err)
		}
	}
	for _, r := range doc.Records {
		if err := p.Store(r); err != nil {
			return fmt.Errorf("store: import record %s: %w", r.ID, err)
		}
	}
	if err := p.SetCapMinutes(doc.Cap); err != nil {
		return err
	}
	if doc.Unit != "" {
		if err := p.SetUnit(doc.Unit); err != nil {
			return err
		}
	}
	if doc.Theme != "" {
		if err := p.SetTheme(doc.Theme); err != nil {
			return err
		}
	}
	return nil
}
