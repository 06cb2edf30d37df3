// Package dates holds the calendar arithmetic behind entry placement.
package dates

import (
	"fmt"
	"time"
)

const (
	// DefaultLateThreshold attributes activity before 03:00 to the
	// previous calendar day.
	DefaultLateThreshold = 3 * time.Hour

	layoutHeading = "2006-01-02 Monday"
	layoutMonth   = "2006-01 January"
	layoutDisplay = "02.01.2006"
)

// Logical shifts t back by threshold before deriving the calendar day,
// so a 02:30 session still belongs to the previous day under the
// default threshold.
func Logical(t time.Time, threshold time.Duration) time.Time {
	if threshold < 0 {
		threshold = DefaultLateThreshold
	}
	return t.Add(-threshold)
}

// Triple returns the (month, day, year) key used for date-tree lookup.
func Triple(t time.Time) (int, int, int) {
	y, m, d := t.Date()
	return int(m), d, y
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// HeadingLabel renders the visible label of a day heading, e.g.
// "2014-12-31 Wednesday".
func HeadingLabel(t time.Time) string {
	return t.Format(layoutHeading)
}

// MonthLabel renders a month heading, e.g. "2014-12 December".
func MonthLabel(t time.Time) string {
	return t.Format(layoutMonth)
}

// YearLabel renders the top-level year heading and the year-file name.
func YearLabel(t time.Time) string {
	return fmt.Sprintf("%04d", t.Year())
}

// Display renders a date for link labels, e.g. "31.12.2014".
func Display(t time.Time) string {
	return t.Format(layoutDisplay)
}

// ParseHeadingLabel recovers the day from a heading label. The weekday
// text is accepted as written and the date portion wins.
func ParseHeadingLabel(label string) (time.Time, error) {
	return time.ParseInLocation(layoutHeading, label, time.Local)
}
