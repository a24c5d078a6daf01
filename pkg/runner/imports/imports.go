// Package imports provides the runner logic for restoring exported state.
package imports

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
)

// Import replaces the planner state from an exported document. The whole
// document is validated before anything is written; a bad document leaves
// existing state untouched.
type Import struct {
	Path        string
	Persistence store.Persistence
}

func (n *Import) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not import, no persistence")
	}

	data, err := os.ReadFile(n.Path)
	if err != nil {
		return fmt.Errorf("read %s: %w", n.Path, err)
	}

	if err := n.Persistence.Import(ctx, data); err != nil {
		return err
	}
	fmt.Printf("imported %s\n", n.Path)
	return nil
}
