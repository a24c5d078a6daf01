// Package export provides the runner logic for dumping the full state.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
)

// Export writes the full planner state as one JSON document.
type Export struct {
	Path        string // empty writes to stdout
	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	data, err := n.Persistence.Export(ctx)
	if err != nil {
		return err
	}

	if n.Path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(n.Path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", n.Path, err)
	}
	fmt.Printf("exported to %s\n", n.Path)
	return nil
}
