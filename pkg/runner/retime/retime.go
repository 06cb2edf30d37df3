package retime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/stamp"
)

// Retime corrects one of an entry's time properties.
type Retime struct {
	ID       string
	Property journal.PropertyKey
	Mode     journal.Mode
	At       stamp.Instant // described only
	Now      time.Time     // created / converted end

	Journal *journal.Journal
}

func (n *Retime) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not retime, no journal")
	}

	e, err := n.Journal.Open(n.ID)
	if err != nil {
		return err
	}

	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	var val string
	switch n.Property {
	case journal.PropDescribed:
		val, err = n.Journal.ChangeDescribed(e, n.Mode, n.At)
	case journal.PropCreated:
		val, err = n.Journal.ChangeCreated(e, now)
	case journal.PropConverted:
		val, err = n.Journal.ChangeConverted(e, now)
	default:
		return fmt.Errorf("unknown property %q", n.Property)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(e.Label)
	fmt.Printf("%s: %s\n", n.Property, val)
	return nil
}
