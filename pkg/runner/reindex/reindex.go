package reindex

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/daybook/pkg/store"
)

// Reindex rebuilds the id index from the year files on disk.
type Reindex struct {
	Config   store.Config
	Registry store.Registry
}

func (n *Reindex) Do(ctx context.Context) error {
	if n.Config == nil || n.Registry == nil {
		return errors.New("can not reindex, no store")
	}

	count, err := store.Reindex(n.Config, n.Registry)
	if err != nil {
		return err
	}
	fmt.Printf("indexed %d entries\n", count)
	return nil
}
