package stamp

import (
	"errors"
	"testing"
	"time"
)

func TestEncode(t *testing.T) {
	i := At(time.Date(2014, time.December, 31, 20, 8, 0, 0, time.Local))

	if got := Encode(i, false); got != "<2014-12-31 Wed>" {
		t.Fatalf("date-only encode: got %q", got)
	}
	if got := Encode(i, true); got != "<2014-12-31 Wed 20:08>" {
		t.Fatalf("timed encode: got %q", got)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, text := range []string{
		"<2014-12-31 Wed>",
		"<2014-12-31 Wed 20:08>",
		"<2014-12-30 Tue>--<2014-12-31 Wed>",
		"<2014-12-30 Tue 09:15>--<2014-12-31 Wed 20:08>",
	} {
		r, err := Decode(text)
		if err != nil {
			t.Fatalf("Decode(%q): %v", text, err)
		}
		if got := r.Render(); got != text {
			t.Fatalf("round trip of %q: got %q", text, got)
		}
	}
}

func TestDecodeSingleHyphenRange(t *testing.T) {
	r, err := Decode("<2014-12-30 Tue>-<2014-12-31 Wed>")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !r.IsRange() {
		t.Fatalf("expected a range")
	}
	if r.Start.Day() != 30 || r.End.Day() != 31 {
		t.Fatalf("wrong endpoints: %v -- %v", r.Start, r.End)
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, text := range []string{
		"",
		"2014-12-31 Wed",
		"<2014-12-31>",
		"<not a stamp>",
		"<2014-12-31 Wed>--",
	} {
		if _, err := Decode(text); !errors.Is(err, ErrMalformed) {
			t.Fatalf("Decode(%q): expected ErrMalformed, got %v", text, err)
		}
	}
}

func TestDecodeComponentPoint(t *testing.T) {
	text := "<2014-12-31 Wed>"

	i, ok, err := DecodeComponent(text, false, false)
	if err != nil || !ok {
		t.Fatalf("start of point: ok=%v err=%v", ok, err)
	}
	if i.Day() != 31 {
		t.Fatalf("start of point: got %v", i)
	}

	if _, ok, err := DecodeComponent(text, true, false); err != nil || ok {
		t.Fatalf("end of point without force: ok=%v err=%v", ok, err)
	}

	i, ok, err = DecodeComponent(text, true, true)
	if err != nil || !ok {
		t.Fatalf("forced end of point: ok=%v err=%v", ok, err)
	}
	if i.Day() != 31 {
		t.Fatalf("forced end of point: got %v", i)
	}
}

func TestDecodeComponentRange(t *testing.T) {
	text := "<2014-12-30 Tue>--<2014-12-31 Wed>"

	for _, force := range []bool{false, true} {
		start, ok, err := DecodeComponent(text, false, force)
		if err != nil || !ok {
			t.Fatalf("range start (force=%v): ok=%v err=%v", force, ok, err)
		}
		if start.Day() != 30 {
			t.Fatalf("range start: got %v", start)
		}
		end, ok, err := DecodeComponent(text, true, force)
		if err != nil || !ok {
			t.Fatalf("range end (force=%v): ok=%v err=%v", force, ok, err)
		}
		if end.Day() != 31 {
			t.Fatalf("range end: got %v", end)
		}
	}
}

func TestDecodeKeepsTimePrecision(t *testing.T) {
	r, err := Decode("<2014-12-31 Wed 20:08>")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !r.Start.Timed {
		t.Fatalf("expected timed instant")
	}
	if r.Start.Hour() != 20 || r.Start.Minute() != 8 {
		t.Fatalf("wrong time of day: %v", r.Start)
	}

	r, err = Decode("<2014-12-31 Wed>")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if r.Start.Timed {
		t.Fatalf("expected day-precision instant")
	}
}
