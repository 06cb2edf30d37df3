package journal

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/stamp"
)

func makeEntry(t *testing.T, j *Journal) *Entry {
	t.Helper()
	e, err := j.CreateEntry(
		stamp.Point(stamp.On(local(2014, time.December, 31, 0, 0))),
		stamp.At(local(2014, time.December, 31, 20, 8)))
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	return e
}

func TestParseMode(t *testing.T) {
	for raw, want := range map[string]Mode{
		"start":  ModeStart,
		"end":    ModeEnd,
		"single": ModeSingle,
	} {
		got, err := ParseMode(raw)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v", raw, got, err)
		}
	}
	if _, err := ParseMode("sideways"); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
}

func TestChangeCreatedExtendsToRange(t *testing.T) {
	j, _ := testJournal(t)
	e := makeEntry(t, j)

	val, err := j.ChangeCreated(e, local(2015, time.January, 1, 11, 30))
	if err != nil {
		t.Fatalf("ChangeCreated: %v", err)
	}
	want := "<2014-12-31 Wed 20:08>--<2015-01-01 Thu 11:30>"
	if val != want {
		t.Fatalf("got %q, want %q", val, want)
	}

	// A later session only moves the end.
	val, err = j.ChangeCreated(e, local(2015, time.January, 2, 9, 0))
	if err != nil {
		t.Fatalf("second ChangeCreated: %v", err)
	}
	want = "<2014-12-31 Wed 20:08>--<2015-01-02 Fri 09:00>"
	if val != want {
		t.Fatalf("got %q, want %q", val, want)
	}
}

func TestChangeConvertedStartsAsPoint(t *testing.T) {
	j, _ := testJournal(t)
	e := makeEntry(t, j)

	if _, _, err := e.Range(PropConverted); err != nil {
		t.Fatalf("Range: %v", err)
	}
	val, err := j.ChangeConverted(e, local(2015, time.January, 2, 10, 0))
	if err != nil {
		t.Fatalf("ChangeConverted: %v", err)
	}
	if val != "<2015-01-02 Fri 10:00>" {
		t.Fatalf("unset converted should become a point, got %q", val)
	}
}

func TestChangeDescribedStart(t *testing.T) {
	j, _ := testJournal(t)
	e := makeEntry(t, j)

	val, err := j.ChangeDescribed(e, ModeStart, stamp.On(local(2014, time.December, 29, 0, 0)))
	if err != nil {
		t.Fatalf("ChangeDescribed: %v", err)
	}
	if val != "<2014-12-29 Mon>--<2014-12-31 Wed>" {
		t.Fatalf("got %q", val)
	}
	// Start corrections leave the heading alone.
	if e.Label != "2014-12-31 Wednesday" {
		t.Fatalf("label changed: %q", e.Label)
	}
}

func TestChangeDescribedSingleRelabels(t *testing.T) {
	j, _ := testJournal(t)
	e := makeEntry(t, j)

	val, err := j.ChangeDescribed(e, ModeSingle, stamp.On(local(2015, time.January, 1, 0, 0)))
	if err != nil {
		t.Fatalf("ChangeDescribed: %v", err)
	}
	if val != "<2015-01-01 Thu>" {
		t.Fatalf("got %q", val)
	}
	if e.Label != "2015-01-01 Thursday" {
		t.Fatalf("label not recomputed: %q", e.Label)
	}

	ref, err := j.reg.Get(e.ID)
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if ref.Label != "2015-01-01 Thursday" {
		t.Fatalf("registry label not updated: %q", ref.Label)
	}
}

func TestChangeDescribedEndRelabels(t *testing.T) {
	j, _ := testJournal(t)
	e := makeEntry(t, j)

	// Point described: replacing the end turns it into a range whose
	// start still names the heading day.
	val, err := j.ChangeDescribed(e, ModeEnd, stamp.On(local(2015, time.January, 1, 0, 0)))
	if err != nil {
		t.Fatalf("ChangeDescribed: %v", err)
	}
	if val != "<2014-12-31 Wed>--<2015-01-01 Thu>" {
		t.Fatalf("got %q", val)
	}
	if e.Label != "2014-12-31 Wednesday" {
		t.Fatalf("label should follow described start, got %q", e.Label)
	}
}

func TestChangeDescribedInvalidMode(t *testing.T) {
	j, _ := testJournal(t)
	e := makeEntry(t, j)

	if _, err := j.ChangeDescribed(e, Mode(42), stamp.On(time.Now())); !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
}
