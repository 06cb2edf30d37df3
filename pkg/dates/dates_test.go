package dates

import (
	"testing"
	"time"
)

func TestLogicalLateNight(t *testing.T) {
	early := time.Date(2014, time.December, 31, 2, 30, 0, 0, time.Local)
	if got := Logical(early, DefaultLateThreshold); got.Day() != 30 {
		t.Fatalf("02:30 should belong to the previous day, got day %d", got.Day())
	}

	morning := time.Date(2014, time.December, 31, 3, 30, 0, 0, time.Local)
	if got := Logical(morning, DefaultLateThreshold); got.Day() != 31 {
		t.Fatalf("03:30 should keep its own day, got day %d", got.Day())
	}
}

func TestTriple(t *testing.T) {
	m, d, y := Triple(time.Date(2014, time.December, 31, 20, 8, 0, 0, time.Local))
	if m != 12 || d != 31 || y != 2014 {
		t.Fatalf("got (%d, %d, %d)", m, d, y)
	}
}

func TestLabels(t *testing.T) {
	day := time.Date(2014, time.December, 31, 0, 0, 0, 0, time.Local)

	if got := HeadingLabel(day); got != "2014-12-31 Wednesday" {
		t.Fatalf("heading label: got %q", got)
	}
	if got := MonthLabel(day); got != "2014-12 December" {
		t.Fatalf("month label: got %q", got)
	}
	if got := YearLabel(day); got != "2014" {
		t.Fatalf("year label: got %q", got)
	}
	if got := Display(day); got != "31.12.2014" {
		t.Fatalf("display: got %q", got)
	}
}

func TestParseHeadingLabel(t *testing.T) {
	day, err := ParseHeadingLabel("2014-12-31 Wednesday")
	if err != nil {
		t.Fatalf("ParseHeadingLabel: %v", err)
	}
	if !SameDay(day, time.Date(2014, time.December, 31, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("wrong day: %v", day)
	}

	if _, err := ParseHeadingLabel("not a label"); err == nil {
		t.Fatalf("expected an error")
	}
}
