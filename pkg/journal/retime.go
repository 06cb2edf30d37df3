package journal

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/daybook/pkg/dates"
	"tableflip.dev/daybook/pkg/stamp"
	"tableflip.dev/daybook/pkg/store"
)

// Mode selects which component of a range property to rewrite.
type Mode int

const (
	// ModeStart replaces the start, keeping the end.
	ModeStart Mode = iota
	// ModeEnd replaces the end, keeping the start.
	ModeEnd
	// ModeSingle discards the old value for a fresh single-point date.
	ModeSingle
)

// ErrInvalidMode flags an unrecognized Mode value. Callers pass modes
// from a closed set; anything else is a programming error.
var ErrInvalidMode = errors.New("invalid retime mode")

// ParseMode maps the CLI spelling of a mode to its value.
func ParseMode(raw string) (Mode, error) {
	switch raw {
	case "start":
		return ModeStart, nil
	case "end":
		return ModeEnd, nil
	case "single":
		return ModeSingle, nil
	}
	return 0, fmt.Errorf("%q: %w", raw, ErrInvalidMode)
}

// ChangeRange rewrites one endpoint of a range-valued property.
//
// An unset property becomes a point stamp at the given instant. A set
// one is decoded and re-rendered with the chosen endpoint replaced:
// replacing the end of a point turns it into a range, and replacing
// the start keeps the old single value as the end. The write is a
// single property set, create-or-update.
func (j *Journal) ChangeRange(e *Entry, key PropertyKey, mode Mode, at stamp.Instant) (string, error) {
	if mode != ModeStart && mode != ModeEnd {
		return "", fmt.Errorf("mode %d: %w", mode, ErrInvalidMode)
	}

	val := stamp.Encode(at, at.Timed)
	if existing, ok := e.h.Property(string(key)); ok {
		if mode == ModeEnd {
			start, _, err := stamp.DecodeComponent(existing, false, false)
			if err != nil {
				return "", err
			}
			val = stamp.Span(start, at).Render()
		} else {
			end, _, err := stamp.DecodeComponent(existing, true, true)
			if err != nil {
				return "", err
			}
			val = stamp.Span(at, end).Render()
		}
	}

	e.h.SetProperty(string(key), val)
	if err := j.save(e.doc, e.File); err != nil {
		return "", err
	}
	return val, nil
}

// ChangeCreated extends the created property so its end is now: a
// second authoring session turns the original point into a range.
func (j *Journal) ChangeCreated(e *Entry, now time.Time) (string, error) {
	return j.ChangeRange(e, PropCreated, ModeEnd, stamp.At(now))
}

// ChangeConverted records (or extends) the conversion bookkeeping
// range, always ending now.
func (j *Journal) ChangeConverted(e *Entry, now time.Time) (string, error) {
	return j.ChangeRange(e, PropConverted, ModeEnd, stamp.At(now))
}

// ChangeDescribed corrects the described period. ModeStart and ModeEnd
// rewrite one endpoint; ModeSingle replaces the whole value with a
// fresh point date. After ModeEnd and ModeSingle the heading label is
// recomputed from the new described start-day — the label and the
// described date must never drift apart.
func (j *Journal) ChangeDescribed(e *Entry, mode Mode, at stamp.Instant) (string, error) {
	switch mode {
	case ModeStart:
		return j.ChangeRange(e, PropDescribed, ModeStart, at)
	case ModeEnd:
		val, err := j.ChangeRange(e, PropDescribed, ModeEnd, at)
		if err != nil {
			return "", err
		}
		return val, j.relabel(e)
	case ModeSingle:
		e.h.SetProperty(string(PropDescribed), stamp.Encode(at, false))
		if err := j.relabel(e); err != nil {
			return "", err
		}
		return stamp.Encode(at, false), nil
	}
	return "", fmt.Errorf("mode %d: %w", mode, ErrInvalidMode)
}

// relabel rewrites the heading from the described start-day and keeps
// the id index in step. Saves the file.
func (j *Journal) relabel(e *Entry) error {
	raw, ok := e.h.Property(string(PropDescribed))
	if !ok {
		return nil
	}
	start, _, err := stamp.DecodeComponent(raw, false, false)
	if err != nil {
		return err
	}

	label := dates.HeadingLabel(start.Time)
	e.h.Label = label
	e.Label = label
	if err := j.save(e.doc, e.File); err != nil {
		return err
	}
	return j.reg.Put(e.ID, store.Ref{File: e.File, Label: label})
}
