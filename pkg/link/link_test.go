package link

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/stamp"
	"tableflip.dev/daybook/pkg/store"
)

func TestEncodeToken(t *testing.T) {
	if got := EncodeToken("abc", ""); got != "abc" {
		t.Fatalf("heading token: got %q", got)
	}
	if got := EncodeToken("abc", "17.12"); got != `abc::17\.12` {
		t.Fatalf("escaped token: got %q", got)
	}
}

func TestDecodeToken(t *testing.T) {
	id, search := DecodeToken(`abc::17\.12`)
	if id != "abc" || search != `17\.12` {
		t.Fatalf("got (%q, %q)", id, search)
	}

	id, search = DecodeToken("abc")
	if id != "abc" || search != "" {
		t.Fatalf("bare token: got (%q, %q)", id, search)
	}

	// The split happens on the last :: occurrence.
	id, search = DecodeToken("a::b::c")
	if id != "a::b" || search != "c" {
		t.Fatalf("last-split: got (%q, %q)", id, search)
	}
}

func TestExternal(t *testing.T) {
	if got := External("abc"); got != "daybook:abc" {
		t.Fatalf("got %q", got)
	}
	if got := ParseExternal("daybook:abc::x"); got != "abc::x" {
		t.Fatalf("got %q", got)
	}
	if got := ParseExternal("abc"); got != "abc" {
		t.Fatalf("bare ref: got %q", got)
	}
	if got := Bracketed("abc", "31.12.2014"); got != "[[daybook:abc][31.12.2014]]" {
		t.Fatalf("got %q", got)
	}
}

func testEntry(t *testing.T, body ...string) (*journal.Journal, *journal.Entry) {
	t.Helper()
	cfg := &store.StaticConfig{Path: t.TempDir(), Index: t.TempDir()}
	reg, err := store.Load(cfg)
	if err != nil {
		t.Fatalf("store.Load: %v", err)
	}
	j := journal.New(cfg, reg)

	e, err := j.CreateEntry(
		stamp.Point(stamp.Instant{Time: time.Date(2014, time.December, 31, 0, 0, 0, 0, time.Local)}),
		stamp.At(time.Date(2014, time.December, 31, 20, 8, 0, 0, time.Local)))
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	if len(body) > 0 {
		if err := j.AppendSubentry(e, "notes", nil, body...); err != nil {
			t.Fatalf("AppendSubentry: %v", err)
		}
		e, err = j.Open(e.ID)
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
	}
	return j, e
}

func TestResolveHeading(t *testing.T) {
	j, e := testEntry(t)

	pos, warn, err := Resolve(j, e.ID)
	if err != nil || warn != nil {
		t.Fatalf("Resolve: warn=%v err=%v", warn, err)
	}
	if pos.File != "2014" || pos.Line != e.HeadingLine() {
		t.Fatalf("got %+v", pos)
	}
}

func TestResolveSearch(t *testing.T) {
	j, e := testEntry(t, "we took the 17.12 train home")

	pos, warn, err := Resolve(j, EncodeToken(e.ID, "17.12"))
	if err != nil || warn != nil {
		t.Fatalf("Resolve: warn=%v err=%v", warn, err)
	}
	if pos.Line <= e.HeadingLine() {
		t.Fatalf("match should be below the heading: %+v", pos)
	}
	// Escaped dot must not match "17x12".
	if _, warn, _ := Resolve(j, EncodeToken(e.ID, "17x12")); warn == nil {
		t.Fatalf("expected a warning for a missing pattern")
	}
}

func TestResolveSkipsEmbeddedLinks(t *testing.T) {
	j, e := testEntry(t,
		"see [[daybook:other::station][the station]] for context",
		"we finally reached the station at dusk")

	pos, warn, err := Resolve(j, EncodeToken(e.ID, "station"))
	if err != nil || warn != nil {
		t.Fatalf("Resolve: warn=%v err=%v", warn, err)
	}
	_, lines := e.ExtentLines()
	matched := lines[pos.Line-e.HeadingLine()]
	if matched != "we finally reached the station at dusk" {
		t.Fatalf("matched the wrong line: %q", matched)
	}
}

func TestResolveOnlyInsideLinksWarns(t *testing.T) {
	j, e := testEntry(t, "see [[daybook:other::station][the station]] for context")

	pos, warn, err := Resolve(j, EncodeToken(e.ID, "station"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if warn == nil {
		t.Fatalf("expected a warning")
	}
	if pos.Line != e.HeadingLine() {
		t.Fatalf("should fall back to the heading: %+v", pos)
	}
}

func TestResolveUnknownID(t *testing.T) {
	j, _ := testEntry(t)
	if _, _, err := Resolve(j, "20140101-000000-zzzzz"); !errors.Is(err, store.ErrUnknownID) {
		t.Fatalf("expected ErrUnknownID, got %v", err)
	}
}

func TestLabel(t *testing.T) {
	_, e := testEntry(t)
	if got := Label(e); got != "31.12.2014" {
		t.Fatalf("got %q", got)
	}
}
