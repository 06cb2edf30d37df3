package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/dates"
	"tableflip.dev/daybook/pkg/journal"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints one month per row-block for the given year, marking
// the days that carry at least one entry.
func (pp *PrettyPrint) Calendar(year int, entries ...*journal.Entry) {
	then := time.Date(year, time.January, 1, 1, 0, 0, 0, time.Local)
	for i := 0; i < 12; i++ {
		pp.PrintMonth(then, entries...)
		then = NextMonth(then)
	}
}

// PrintMonth renders one month, highlighting days that have entries.
func (pp *PrettyPrint) PrintMonth(then time.Time, entries ...*journal.Entry) {
	days := DaysIn(then)
	count := make([]int, days)

	for _, e := range entries {
		day, err := dates.ParseHeadingLabel(e.Label)
		if err != nil {
			continue
		}
		if day.Year() == then.Year() && day.Month() == then.Month() {
			count[day.Day()-1]++
		}
	}

	pp.PrintMonthCount(then, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		if i < d {
			fmt.Print("   ")
		}
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			l2.Printf("%2d ", i+1)
		} else {
			l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()+1, then.Local().Day(), 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
