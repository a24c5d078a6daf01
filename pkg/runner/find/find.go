// Package find provides the runner logic for pattern search.
package find

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/classify"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/printers"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/search"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
)

// Find filters the board by a user search pattern.
type Find struct {
	Pattern     string
	ShowID      bool
	Persistence store.Persistence
}

// Do compiles the pattern, filters the record set on title and tag, and
// prints the classified board with matches highlighted. An empty pattern
// shows everything; a malformed one prints a note and shows everything
// unfiltered rather than erroring out.
func (n *Find) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not search, no persistence")
	}

	records := n.Persistence.List(ctx)

	matcher := search.Compile(n.Pattern)
	if matcher == nil && n.Pattern != "" {
		fmt.Println("invalid pattern; showing all records")
	}

	result := search.Filter(records, matcher)
	board := classify.Group(result.Records, time.Now())

	pp := printers.PrettyPrint{ShowID: n.ShowID, Matcher: matcher}
	pp.Board(board)
	return nil
}
