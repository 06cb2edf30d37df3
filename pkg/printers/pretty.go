package printers

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/link"
	"tableflip.dev/daybook/pkg/search"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("20141231-200800-k3v9a  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Entries renders one row per entry: id (optional), day label, and the
// described / created / converted stamps.
func (pp *PrettyPrint) Entries(entries ...*journal.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold("ID"), bold("Day"), bold("Described"), bold("Created"))
	} else {
		tbl.AddRow(bold("Day"), bold("Described"), bold("Created"))
	}
	for _, e := range entries {
		described, _ := e.Property(journal.PropDescribed)
		created, _ := e.Property(journal.PropCreated)
		if pp.ShowID {
			tbl.AddRow(e.ID, e.Label, described, created)
		} else {
			tbl.AddRow(e.Label, described, created)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Matches renders grep hits as file:line rows.
func (pp *PrettyPrint) Matches(matches ...search.Match) {
	if len(matches) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no matches\n\n")
		return
	}
	loc := color.New(color.FgHiYellow)
	for _, m := range matches {
		_, _ = loc.Printf("%s:%d", m.File, m.Line)
		fmt.Printf("  %s\n", strings.TrimSpace(m.Text))
	}
}

// Position renders a resolved link target.
func (pp *PrettyPrint) Position(pos link.Position) {
	loc := color.New(color.FgHiYellow)
	_, _ = loc.Printf("%s:%d", pos.File, pos.Line)
	if pos.Col > 0 {
		_, _ = loc.Printf(":%d", pos.Col)
	}
	fmt.Println("")
}

// Warning renders a non-fatal message on stderr without stopping
// anything.
func (pp *PrettyPrint) Warning(msg string) {
	w := color.New(color.FgYellow, color.Italic)
	_, _ = fmt.Fprintln(os.Stderr, w.Sprint(msg))
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}
