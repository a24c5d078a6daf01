// Package get provides the runner logic for listing the board.
package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/classify"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/printers"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
)

// Get lists records classified into the three board columns.
type Get struct {
	ShowID      bool
	Bucket      classify.Bucket
	AllBuckets  bool
	Type        record.Type // empty means both variants
	JSON        bool
	Persistence store.Persistence
}

// Do classifies the current record set against the wall clock and prints
// the requested column, or the whole board.
func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	records := n.Persistence.List(ctx)
	records = n.filtered(records)
	board := classify.Group(records, time.Now())

	if n.JSON {
		return n.printJSON(board)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	if n.AllBuckets {
		pp.Board(board)
		return nil
	}

	fmt.Println("")
	pp.TitleWithCount(n.Bucket.String(), board.Count(n.Bucket))
	pp.Column(board.Columns[n.Bucket]...)
	return nil
}

func (n *Get) filtered(all []*record.Record) []*record.Record {
	if n.Type == "" {
		return all
	}
	c := make([]*record.Record, 0, len(all))
	for _, r := range all {
		if r.Type == n.Type {
			c = append(c, r)
		}
	}
	return c
}

func (n *Get) printJSON(board classify.Board) error {
	out := make(map[string][]*record.Record, 3)
	for _, bucket := range classify.Buckets() {
		if !n.AllBuckets && bucket != n.Bucket {
			continue
		}
		out[bucket.String()] = board.Columns[bucket]
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}
