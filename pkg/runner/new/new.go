package new

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/link"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/stamp"
)

// New creates one entry from already-resolved values.
type New struct {
	Described stamp.TimeRange
	CreatedAt stamp.Instant

	ShowID  bool
	Journal *journal.Journal
}

func (n *New) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not create, no journal")
	}

	e, err := n.Journal.CreateEntry(n.Described, n.CreatedAt)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title(e.Label)
	pp.Entries(e)
	if n.ShowID {
		fmt.Println(link.Bracketed(e.ID, link.Label(e)))
	}
	return nil
}
