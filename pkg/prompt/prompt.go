// Package prompt gathers values interactively. Core packages never
// prompt; commands use this adapter to resolve missing flags before
// calling them.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/manifoldco/promptui"

	"tableflip.dev/daybook/pkg/stamp"
)

const (
	layoutDay    = "2006-01-02"
	layoutMinute = "2006-01-02 15:04"
)

// Instant asks for a date, or a date with a time of day. The default
// renders at day precision; entering nothing accepts it.
func Instant(label string, def time.Time) (stamp.Instant, error) {
	p := promptui.Prompt{
		Label:   fmt.Sprintf("%s (%s or %s)", label, layoutDay, layoutMinute),
		Default: def.Format(layoutDay),
		Validate: func(input string) error {
			_, err := parseInstant(input)
			return err
		},
	}
	raw, err := p.Run()
	if err != nil {
		return stamp.Instant{}, err
	}
	return parseInstant(raw)
}

// ParseInstant resolves flag input the same way the prompt does.
func ParseInstant(raw string) (stamp.Instant, error) {
	return parseInstant(raw)
}

func parseInstant(raw string) (stamp.Instant, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.ParseInLocation(layoutMinute, raw, time.Local); err == nil {
		return stamp.At(t), nil
	}
	if t, err := time.ParseInLocation(layoutDay, raw, time.Local); err == nil {
		return stamp.On(t), nil
	}
	return stamp.Instant{}, fmt.Errorf("%q is not a date (%s) or date-time (%s)", raw, layoutDay, layoutMinute)
}

// String asks for one line of free text.
func String(label string) (string, error) {
	p := promptui.Prompt{Label: label}
	return p.Run()
}

// Select asks the user to pick one of the given items.
func Select(label string, items []string) (string, error) {
	s := promptui.Select{
		Label:    label,
		Items:    items,
		HideHelp: true,
	}
	_, choice, err := s.Run()
	return choice, err
}
