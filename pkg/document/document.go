// Package document parses and rewrites year files.
//
// A year file is a plain text outline: heading lines start with one or
// more stars, an optional property drawer (:PROPERTIES: ... :END:)
// follows a heading, and everything else is free body text. The
// package understands just enough structure to navigate the
// year -> month -> day tree and to read and write drawer properties;
// body text passes through untouched.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"tableflip.dev/daybook/pkg/dates"
)

// Property is one key/value pair inside a drawer. Order is preserved.
type Property struct {
	Key   string
	Value string
}

// Heading is one outline node: its star level, visible label, drawer
// properties, and the free body lines up to the next heading.
type Heading struct {
	Level int
	Label string
	Props []Property
	Body  []string
}

// Property returns the value for key, if the drawer has it.
func (h *Heading) Property(key string) (string, bool) {
	for _, p := range h.Props {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// SetProperty writes key to the drawer, creating it on first write and
// replacing the value in place on later ones.
func (h *Heading) SetProperty(key, value string) {
	for i, p := range h.Props {
		if p.Key == key {
			h.Props[i].Value = value
			return
		}
	}
	h.Props = append(h.Props, Property{Key: key, Value: value})
}

// Day parses the heading label as a day heading. ok is false for
// headings that do not carry a date label.
func (h *Heading) Day() (time.Time, bool) {
	t, err := dates.ParseHeadingLabel(h.Label)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Document is a parsed year file.
type Document struct {
	Preamble []string
	Headings []*Heading
}

var (
	headingPattern  = regexp.MustCompile(`^(\*+)\s+(.*?)\s*$`)
	propertyPattern = regexp.MustCompile(`^:([A-Za-z][A-Za-z0-9_-]*):\s*(.*)$`)
)

// ErrBadDrawer is returned for a :PROPERTIES: block with no :END:.
var ErrBadDrawer = errors.New("unterminated property drawer")

// Parse reads outline text into a Document.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	lines := strings.Split(string(data), "\n")
	// Split keeps a phantom empty element after a trailing newline.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var current *Heading
	for n := 0; n < len(lines); n++ {
		line := lines[n]
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			current = &Heading{Level: len(m[1]), Label: m[2]}
			doc.Headings = append(doc.Headings, current)
			continue
		}
		if current == nil {
			doc.Preamble = append(doc.Preamble, line)
			continue
		}
		if len(current.Props) == 0 && len(current.Body) == 0 &&
			strings.TrimSpace(line) == ":PROPERTIES:" {
			end := -1
			for j := n + 1; j < len(lines); j++ {
				if strings.TrimSpace(lines[j]) == ":END:" {
					end = j
					break
				}
			}
			if end < 0 {
				return nil, fmt.Errorf("document: line %d: %w", n+1, ErrBadDrawer)
			}
			for j := n + 1; j < end; j++ {
				pm := propertyPattern.FindStringSubmatch(strings.TrimSpace(lines[j]))
				if pm == nil {
					return nil, fmt.Errorf("document: line %d: bad property line %q", j+1, lines[j])
				}
				current.Props = append(current.Props, Property{Key: pm[1], Value: pm[2]})
			}
			n = end
			continue
		}
		current.Body = append(current.Body, line)
	}
	return doc, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Bytes serializes the document back to outline text.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	for _, line := range d.Preamble {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	for _, h := range d.Headings {
		buf.WriteString(strings.Repeat("*", h.Level))
		buf.WriteByte(' ')
		buf.WriteString(h.Label)
		buf.WriteByte('\n')
		if len(h.Props) > 0 {
			buf.WriteString(":PROPERTIES:\n")
			for _, p := range h.Props {
				fmt.Fprintf(&buf, ":%s: %s\n", p.Key, p.Value)
			}
			buf.WriteString(":END:\n")
		}
		for _, line := range h.Body {
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

// Save writes the document to path in one atomic rename.
func (d *Document) Save(path string) error {
	return atomic.WriteFile(path, bytes.NewReader(d.Bytes()))
}

// Insert places h at index i, shifting later headings down.
func (d *Document) Insert(i int, h *Heading) {
	d.Headings = append(d.Headings, nil)
	copy(d.Headings[i+1:], d.Headings[i:])
	d.Headings[i] = h
}

// LineOf returns the 1-based line number of heading i in the rendered
// file.
func (d *Document) LineOf(i int) int {
	line := len(d.Preamble) + 1
	for j := 0; j < i; j++ {
		line += d.headingLines(j)
	}
	return line
}

// Extent returns the rendered line numbers [from, to) covered by the
// entry at heading index i: its own heading through everything before
// the next heading of level 3 or shallower.
func (d *Document) Extent(i int) (int, int) {
	from := d.LineOf(i)
	to := from + d.headingLines(i)
	for j := i + 1; j < len(d.Headings); j++ {
		if d.Headings[j].Level <= 3 {
			break
		}
		to += d.headingLines(j)
	}
	return from, to
}

func (d *Document) headingLines(i int) int {
	h := d.Headings[i]
	n := 1 + len(h.Body)
	if len(h.Props) > 0 {
		n += len(h.Props) + 2
	}
	return n
}

// sectionEnd returns the first heading index after start whose level is
// at or above (shallower than or equal to) level, or len(Headings).
func (d *Document) sectionEnd(start, level int) int {
	for j := start; j < len(d.Headings); j++ {
		if d.Headings[j].Level <= level {
			return j
		}
	}
	return len(d.Headings)
}

// find returns the index of the first heading at level with the given
// label, scanning [from, to).
func (d *Document) find(from, to, level int, label string) int {
	for j := from; j < to; j++ {
		if d.Headings[j].Level == level && d.Headings[j].Label == label {
			return j
		}
	}
	return -1
}

// DayAnchor locates the insertion point for an entry on the given day,
// creating the year and month levels as needed.
//
// When the day has no heading yet, a bare one is inserted in date order
// within its month and reuse is true: the caller writes the new entry
// straight into it. A bare existing day heading (no drawer) is likewise
// reused. Once the day carries at least one real entry, reuse is false
// and idx points immediately after the last entry on that day, so
// same-day entries append in creation order and never interleave.
// Day identity is the date parsed from the label, not the label text.
func (d *Document) DayAnchor(day time.Time) (idx int, reuse bool) {
	day = dates.StartOfDay(day)

	yi := d.find(0, len(d.Headings), 1, dates.YearLabel(day))
	if yi < 0 {
		yi = len(d.Headings)
		d.Insert(yi, &Heading{Level: 1, Label: dates.YearLabel(day)})
	}
	yearEnd := d.sectionEnd(yi+1, 1)

	mi := d.find(yi+1, yearEnd, 2, dates.MonthLabel(day))
	if mi < 0 {
		mi = yearEnd
		for j := yi + 1; j < yearEnd; j++ {
			h := d.Headings[j]
			if h.Level != 2 {
				continue
			}
			if t, err := time.ParseInLocation("2006-01 January", h.Label, day.Location()); err == nil && t.After(day) {
				mi = j
				break
			}
		}
		d.Insert(mi, &Heading{Level: 2, Label: dates.MonthLabel(day)})
	}
	monthEnd := d.sectionEnd(mi+1, 2)

	first, last := -1, -1
	insert := monthEnd
	for j := mi + 1; j < monthEnd; j++ {
		h := d.Headings[j]
		if h.Level != 3 {
			continue
		}
		t, ok := h.Day()
		if !ok {
			continue
		}
		switch {
		case dates.SameDay(t, day):
			if first < 0 {
				first = j
			}
			last = j
		case t.After(day) && first < 0:
			if insert == monthEnd {
				insert = j
			}
		}
	}

	if first < 0 {
		d.Insert(insert, &Heading{Level: 3, Label: dates.HeadingLabel(day)})
		return insert, true
	}
	if first == last && len(d.Headings[first].Props) == 0 {
		return first, true
	}
	return d.sectionEnd(last+1, 3), false
}
