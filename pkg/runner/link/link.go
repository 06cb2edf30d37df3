package link

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/link"
	"tableflip.dev/daybook/pkg/printers"
)

// Show prints the reference token for an entry, ready to paste.
type Show struct {
	ID     string
	Search string

	Journal *journal.Journal
}

func (n *Show) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not link, no journal")
	}

	e, err := n.Journal.Open(n.ID)
	if err != nil {
		return err
	}

	token := link.EncodeToken(e.ID, n.Search)
	fmt.Println(link.External(token))
	fmt.Println(link.Bracketed(token, link.Label(e)))
	return nil
}

// Follow resolves a token back to a file position.
type Follow struct {
	Token string

	Journal *journal.Journal
}

func (n *Follow) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not follow, no journal")
	}

	pos, warn, err := link.Resolve(n.Journal, link.ParseExternal(n.Token))
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	if warn != nil {
		pp.Warning(warn.String())
	}
	pp.Position(pos)
	return nil
}
