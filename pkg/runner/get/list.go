package get

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/printers"
)

// Get lists the entries of one year file.
type Get struct {
	Year     int // zero means the current year
	Date     *time.Time
	Calendar bool
	ShowID   bool

	Journal *journal.Journal
}

func (n *Get) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not get, no journal")
	}

	year := n.Year
	if n.Date != nil {
		year = n.Date.Year()
	}
	if year == 0 {
		year = time.Now().Year()
	}
	file := fmt.Sprintf("%04d", year)

	all, err := n.Journal.Entries(file)
	if err != nil {
		if os.IsNotExist(err) {
			all = nil
		} else {
			return err
		}
	}
	if n.Date != nil {
		all = onDay(all, *n.Date)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title(file)

	if n.Calendar {
		pp.Calendar(year, all...)
		return nil
	}
	pp.Entries(all...)
	return nil
}

func onDay(all []*journal.Entry, day time.Time) []*journal.Entry {
	want := day.Format("2006-01-02")
	c := make([]*journal.Entry, 0, len(all))
	for _, e := range all {
		if len(e.Label) >= len(want) && e.Label[:len(want)] == want {
			c = append(c, e)
		}
	}
	return c
}

// ParseYear turns a positional argument into a year.
func ParseYear(arg string) (int, error) {
	y, err := strconv.Atoi(arg)
	if err != nil || y < 1000 || y > 9999 {
		return 0, fmt.Errorf("%q is not a 4-digit year", arg)
	}
	return y, nil
}
