// Package journal creates and mutates diary entries inside year files.
package journal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tableflip.dev/daybook/pkg/dates"
	"tableflip.dev/daybook/pkg/document"
	"tableflip.dev/daybook/pkg/stamp"
	"tableflip.dev/daybook/pkg/store"
)

// PropertyKey names one of the range-valued entry properties.
type PropertyKey string

const (
	PropDescribed PropertyKey = "described"
	PropCreated   PropertyKey = "created"
	PropConverted PropertyKey = "converted"
)

var (
	// ErrNoID means an entry heading came back without its id right
	// after assignment.
	ErrNoID = errors.New("entry has no id")
	// ErrBadRange means a described range ends before it starts.
	ErrBadRange = errors.New("range ends before it starts")
)

// Entry is one diary record, bound to its parsed year file so property
// writes land back in place.
type Entry struct {
	ID    string
	File  string
	Label string

	doc *document.Document
	h   *document.Heading
	idx int
}

// Property reads one of the entry's stamp properties as raw text.
func (e *Entry) Property(key PropertyKey) (string, bool) {
	return e.h.Property(string(key))
}

// Range decodes one of the entry's stamp properties. ok is false when
// the property is unset.
func (e *Entry) Range(key PropertyKey) (stamp.TimeRange, bool, error) {
	raw, ok := e.h.Property(string(key))
	if !ok {
		return stamp.TimeRange{}, false, nil
	}
	r, err := stamp.Decode(raw)
	if err != nil {
		return stamp.TimeRange{}, true, err
	}
	return r, true, nil
}

// HeadingLine is the 1-based line of the entry heading in its file.
func (e *Entry) HeadingLine() int {
	return e.doc.LineOf(e.idx)
}

// ExtentLines returns the entry's slice of the rendered file: the
// first line number and every line from the heading up to the next
// heading at level 3 or shallower.
func (e *Entry) ExtentLines() (int, []string) {
	from, to := e.doc.Extent(e.idx)
	all := strings.Split(string(e.doc.Bytes()), "\n")
	return from, all[from-1 : to-1]
}

// Journal is the entry repository over one journal directory.
type Journal struct {
	cfg store.Config
	reg store.Registry
}

// New binds a Journal to its config and id registry.
func New(cfg store.Config, reg store.Registry) *Journal {
	return &Journal{cfg: cfg, reg: reg}
}

func (j *Journal) yearPath(name string) string {
	return filepath.Join(j.cfg.BasePath(), name)
}

// openYear loads the named year file, seeding a brand-new one from the
// configured template.
func (j *Journal) openYear(name string) (*document.Document, error) {
	doc, err := document.Load(j.yearPath(name))
	if err == nil {
		return doc, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	if tpl := j.cfg.TemplatePath(); tpl != "" {
		data, err := os.ReadFile(tpl)
		if err != nil {
			return nil, fmt.Errorf("year template: %w", err)
		}
		return document.Parse(data)
	}
	return &document.Document{}, nil
}

func (j *Journal) save(doc *document.Document, name string) error {
	if err := os.MkdirAll(j.cfg.BasePath(), 0o755); err != nil {
		return err
	}
	return doc.Save(j.yearPath(name))
}

// CreateEntry files a new entry for the described period, authored at
// createdAt. The entry is placed by the described range's end day:
// the end picks the year file and anchors same-day ordering. A second
// entry for an existing day appends after the last one already there.
func (j *Journal) CreateEntry(described stamp.TimeRange, createdAt stamp.Instant) (*Entry, error) {
	if described.IsRange() && described.End.Before(described.Start.Time) {
		return nil, fmt.Errorf("described %s: %w", described.Render(), ErrBadRange)
	}

	day := dates.StartOfDay(described.End.Time)
	file := dates.YearLabel(day)

	doc, err := j.openYear(file)
	if err != nil {
		return nil, err
	}

	idx, reuse := doc.DayAnchor(day)
	if !reuse {
		doc.Insert(idx, &document.Heading{Level: 3, Label: dates.HeadingLabel(day)})
	}
	h := doc.Headings[idx]

	val := described.Render()
	if described.IsRange() && described.Start.SameDay(described.End) {
		// A range within one calendar day reads as a point.
		val = stamp.Point(described.Start).Render()
	}

	id := j.reg.NewID(createdAt.Time)
	h.SetProperty(string(PropDescribed), val)
	h.SetProperty(string(PropCreated), stamp.Encode(createdAt, true))
	h.SetProperty("id", id)
	doc.Insert(idx+1, &document.Heading{Level: 4, Label: "entry :new:"})

	got, ok := h.Property("id")
	if !ok || got != id {
		return nil, fmt.Errorf("entry %s: %w", h.Label, ErrNoID)
	}

	if err := j.save(doc, file); err != nil {
		return nil, err
	}
	if err := j.reg.Put(id, store.Ref{File: file, Label: h.Label}); err != nil {
		return nil, err
	}

	return &Entry{ID: id, File: file, Label: h.Label, doc: doc, h: h, idx: idx}, nil
}

// Open loads the entry with the given id via the registry.
func (j *Journal) Open(id string) (*Entry, error) {
	ref, err := j.reg.Get(id)
	if err != nil {
		return nil, err
	}
	doc, err := document.Load(j.yearPath(ref.File))
	if err != nil {
		return nil, err
	}
	for i, h := range doc.Headings {
		if h.Level != 3 {
			continue
		}
		if got, ok := h.Property("id"); ok && got == id {
			return &Entry{ID: id, File: ref.File, Label: h.Label, doc: doc, h: h, idx: i}, nil
		}
	}
	return nil, fmt.Errorf("index points %q at %s but the file has no such entry (try reindex): %w",
		id, ref.File, store.ErrUnknownID)
}

// AppendSubentry adds a free-text child heading under the entry, after
// any existing subentries. Tags render in the trailing :tag: form.
func (j *Journal) AppendSubentry(e *Entry, title string, tags []string, body ...string) error {
	label := title
	if len(tags) > 0 {
		label = fmt.Sprintf("%s :%s:", title, joinTags(tags))
	}

	at := e.idx + 1
	for at < len(e.doc.Headings) && e.doc.Headings[at].Level > 3 {
		at++
	}
	e.doc.Insert(at, &document.Heading{Level: 4, Label: label, Body: body})
	return j.save(e.doc, e.File)
}

func joinTags(tags []string) string {
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += ":"
		}
		out += t
	}
	return out
}

// Entries lists every entry in the named year file, in file order.
func (j *Journal) Entries(file string) ([]*Entry, error) {
	doc, err := document.Load(j.yearPath(file))
	if err != nil {
		return nil, err
	}
	var all []*Entry
	for i, h := range doc.Headings {
		if h.Level != 3 {
			continue
		}
		id, ok := h.Property("id")
		if !ok {
			continue
		}
		all = append(all, &Entry{ID: id, File: file, Label: h.Label, doc: doc, h: h, idx: i})
	}
	return all, nil
}
