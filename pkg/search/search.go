// Package search finds text and dates across the journal directory.
// Free-text search shells out to the system grep rather than scanning
// files in-process.
package search

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/daybook/pkg/dates"
	"tableflip.dev/daybook/pkg/document"
	"tableflip.dev/daybook/pkg/store"
)

// ErrMissingFile means the year file for a requested date is absent.
var ErrMissingFile = errors.New("year file does not exist")

// Match is one grep hit inside a year file.
type Match struct {
	File string
	Line int
	Text string
}

// Grep runs the external grep tool over the year files and returns its
// hits. No matches is not an error.
func Grep(ctx context.Context, dir, pattern string) ([]Match, error) {
	cmd := exec.CommandContext(ctx, "grep", "-rn",
		"--include=[0-9][0-9][0-9][0-9]", "-e", pattern, ".")
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) && exit.ExitCode() == 1 {
			return nil, nil // grep found nothing
		}
		return nil, fmt.Errorf("grep: %w", err)
	}

	var matches []Match
	for _, line := range strings.Split(out.String(), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 3)
		if len(parts) != 3 {
			continue
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		matches = append(matches, Match{
			File: strings.TrimPrefix(parts[0], "./"),
			Line: n,
			Text: parts[2],
		})
	}
	return matches, nil
}

// OnDate locates the first day heading for the given date and returns
// its file name and line number.
func OnDate(cfg store.Config, day time.Time) (string, int, error) {
	file := dates.YearLabel(day)
	doc, err := document.Load(filepath.Join(cfg.BasePath(), file))
	if err != nil {
		if os.IsNotExist(err) {
			return "", 0, fmt.Errorf("%s: %w", file, ErrMissingFile)
		}
		return "", 0, err
	}
	for i, h := range doc.Headings {
		if h.Level != 3 {
			continue
		}
		if t, ok := h.Day(); ok && dates.SameDay(t, day) {
			return file, doc.LineOf(i), nil
		}
	}
	return "", 0, fmt.Errorf("no entry on %s in %s", dates.Display(day), file)
}
