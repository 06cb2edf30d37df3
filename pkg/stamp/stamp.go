// Package stamp converts between journal stamp strings and instants.
//
// A stamp is an angle-bracketed date, optionally with a time of day:
// <2014-12-31 Wed> or <2014-12-31 Wed 20:08>. Two stamps joined by a
// double hyphen form a range: <2014-12-30 Tue>--<2014-12-31 Wed>.
package stamp

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

const (
	layoutDate = "2006-01-02 Mon"
	layoutTime = "2006-01-02 Mon 15:04"
)

// ErrMalformed is returned when text does not parse as a stamp or range.
var ErrMalformed = errors.New("malformed stamp")

// Instant is a point in time with an optional time-of-day component.
// Instants without a time of day compare and render at day precision.
type Instant struct {
	time.Time
	Timed bool
}

// At wraps a time with full time-of-day precision.
func At(t time.Time) Instant {
	return Instant{Time: t.Truncate(time.Minute), Timed: true}
}

// On wraps a time at day precision, discarding the time of day.
func On(t time.Time) Instant {
	y, m, d := t.Date()
	return Instant{Time: time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

// SameDay reports whether both instants fall on the same calendar day.
func (i Instant) SameDay(other Instant) bool {
	ay, am, ad := i.Date()
	by, bm, bd := other.Date()
	return ay == by && am == bm && ad == bd
}

func (i Instant) String() string {
	return Encode(i, i.Timed)
}

// TimeRange is either a single instant (a point) or an ordered pair.
type TimeRange struct {
	Start  Instant
	End    Instant
	ranged bool
}

// Point returns a TimeRange holding a single instant.
func Point(i Instant) TimeRange {
	return TimeRange{Start: i, End: i}
}

// Span returns a TimeRange with distinct start and end.
func Span(start, end Instant) TimeRange {
	return TimeRange{Start: start, End: end, ranged: true}
}

// IsRange reports whether the range was built from two stamps.
func (r TimeRange) IsRange() bool {
	return r.ranged
}

// Render serializes the range back to stamp text. Points render as a
// single stamp, ranges as start--end, each side keeping its own
// time-of-day precision.
func (r TimeRange) Render() string {
	if !r.ranged {
		return Encode(r.Start, r.Start.Timed)
	}
	return Encode(r.Start, r.Start.Timed) + "--" + Encode(r.End, r.End.Timed)
}

// Encode renders an instant as a stamp, with or without the time of day.
func Encode(i Instant, withTime bool) string {
	if withTime {
		return "<" + i.Format(layoutTime) + ">"
	}
	return "<" + i.Format(layoutDate) + ">"
}

var (
	stampPattern = regexp.MustCompile(`^<([^<>]+)>$`)
	rangePattern = regexp.MustCompile(`^<([^<>]+)>--?<([^<>]+)>$`)
)

// Decode parses stamp text into a TimeRange. A single stamp yields a
// point, two stamps joined by -- (or a single -) yield a range. The
// decoder preserves exactly what it reads; it never reorders endpoints.
func Decode(text string) (TimeRange, error) {
	if m := rangePattern.FindStringSubmatch(text); m != nil {
		start, err := decodeOne(m[1])
		if err != nil {
			return TimeRange{}, fmt.Errorf("stamp: range start of %q: %w", text, err)
		}
		end, err := decodeOne(m[2])
		if err != nil {
			return TimeRange{}, fmt.Errorf("stamp: range end of %q: %w", text, err)
		}
		return Span(start, end), nil
	}
	if m := stampPattern.FindStringSubmatch(text); m != nil {
		i, err := decodeOne(m[1])
		if err != nil {
			return TimeRange{}, fmt.Errorf("stamp: %q: %w", text, err)
		}
		return Point(i), nil
	}
	return TimeRange{}, fmt.Errorf("stamp: %q: %w", text, ErrMalformed)
}

// DecodeComponent parses stamp text and extracts one endpoint. For a
// point, the single instant is returned when the start is wanted, or
// when force is set; asking for the end of a point without force
// reports ok=false. For a range, the requested endpoint is returned
// regardless of force.
func DecodeComponent(text string, wantEnd, force bool) (Instant, bool, error) {
	r, err := Decode(text)
	if err != nil {
		return Instant{}, false, err
	}
	if r.IsRange() {
		if wantEnd {
			return r.End, true, nil
		}
		return r.Start, true, nil
	}
	if !wantEnd || force {
		return r.Start, true, nil
	}
	return Instant{}, false, nil
}

func decodeOne(inner string) (Instant, error) {
	if t, err := time.ParseInLocation(layoutTime, inner, time.Local); err == nil {
		return Instant{Time: t, Timed: true}, nil
	}
	if t, err := time.ParseInLocation(layoutDate, inner, time.Local); err == nil {
		return Instant{Time: t}, nil
	}
	return Instant{}, ErrMalformed
}
