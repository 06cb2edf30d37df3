package find

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daybook/pkg/link"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/search"
	"tableflip.dev/daybook/pkg/store"
)

// Find searches the journal, by text pattern or by date.
type Find struct {
	Pattern string
	Date    *time.Time

	Config store.Config
}

func (n *Find) Do(ctx context.Context) error {
	if n.Config == nil {
		return errors.New("can not find, no config")
	}

	pp := printers.PrettyPrint{}

	if n.Date != nil {
		file, line, err := search.OnDate(n.Config, *n.Date)
		if err != nil {
			return err
		}
		pp.Position(link.Position{File: file, Line: line})
		return nil
	}

	if n.Pattern == "" {
		return errors.New("nothing to search for")
	}
	matches, err := search.Grep(ctx, n.Config.BasePath(), n.Pattern)
	if err != nil {
		return err
	}
	fmt.Println("")
	pp.Matches(matches...)
	return nil
}
