// Package link encodes and resolves cross-entry reference tokens.
//
// A token is an entry id with an optional search part: "id" points at
// the entry heading, "id::search" at the first occurrence of search
// inside the entry. The external form carries the daybook: scheme and
// embeds as a bracketed reference with an optional display label.
package link

import (
	"fmt"
	"regexp"
	"strings"

	"tableflip.dev/daybook/pkg/dates"
	"tableflip.dev/daybook/pkg/journal"
)

// Scheme is the reference scheme tokens travel under.
const Scheme = "daybook"

// EncodeToken builds the compact token for an entry, escaping the
// search text so it later reads back as a literal pattern. Heading
// references pass an empty search and get a bare id.
func EncodeToken(id, search string) string {
	if search == "" {
		return id
	}
	return id + "::" + regexp.QuoteMeta(search)
}

// DecodeToken splits a token on its last :: occurrence. The search
// part comes back still escaped; Resolve compiles it as-is.
func DecodeToken(token string) (id, search string) {
	if at := strings.LastIndex(token, "::"); at >= 0 {
		return token[:at], token[at+2:]
	}
	return token, ""
}

// External renders the token in scheme-qualified form.
func External(token string) string {
	return Scheme + ":" + token
}

// ParseExternal strips the scheme prefix, accepting bare tokens too.
func ParseExternal(ref string) string {
	return strings.TrimPrefix(ref, Scheme+":")
}

// Bracketed renders an embeddable reference with a display label.
func Bracketed(token, label string) string {
	if label == "" {
		return fmt.Sprintf("[[%s]]", External(token))
	}
	return fmt.Sprintf("[[%s][%s]]", External(token), label)
}

// Position is a resolved file location.
type Position struct {
	File string
	Line int
	Col  int
}

// Warning reports a non-fatal resolution miss: the entry was found but
// the search text was not, so the position fell back to the heading.
type Warning struct {
	ID     string
	Search string
	Reason string
}

func (w *Warning) String() string {
	return fmt.Sprintf("link %s: %q %s, falling back to the entry heading", w.ID, w.Search, w.Reason)
}

// embeddedLink matches a bracketed daybook reference, so a link's own
// visible text is never mistaken for a search target.
var embeddedLink = regexp.MustCompile(`\[\[` + Scheme + `:[^\]]*\](\[[^\]]*\])?\]`)

// Resolve turns a token back into a concrete file position.
//
// The id must be known to the registry. With a search part, the entry
// text is scanned forward from the heading, bounded to the entry's
// extent, for the first match that does not sit inside another
// embedded link token. Both miss cases degrade to the heading position
// with a Warning, never an error.
func Resolve(j *journal.Journal, token string) (Position, *Warning, error) {
	id, search := DecodeToken(token)

	e, err := j.Open(id)
	if err != nil {
		return Position{}, nil, err
	}
	at := Position{File: e.File, Line: e.HeadingLine()}
	if search == "" {
		return at, nil, nil
	}

	pattern, err := regexp.Compile(search)
	if err != nil {
		return Position{}, nil, fmt.Errorf("link %s: bad search %q: %w", id, search, err)
	}

	first, lines := e.ExtentLines()
	sawOnlyLinks := false
	for n, line := range lines {
		for _, m := range pattern.FindAllStringIndex(line, -1) {
			if insideLink(line, m[0], m[1]) {
				sawOnlyLinks = true
				continue
			}
			return Position{File: e.File, Line: first + n, Col: m[0] + 1}, nil, nil
		}
	}

	reason := "not found before the next entry"
	if sawOnlyLinks {
		reason = "found only inside other links"
	}
	return at, &Warning{ID: id, Search: search, Reason: reason}, nil
}

func insideLink(line string, from, to int) bool {
	for _, span := range embeddedLink.FindAllStringIndex(line, -1) {
		if from >= span[0] && to <= span[1] {
			return true
		}
	}
	return false
}

// Label derives the display date for a link to the entry: the
// described start day when present, else the created start day.
func Label(e *journal.Entry) string {
	for _, key := range []journal.PropertyKey{journal.PropDescribed, journal.PropCreated} {
		r, ok, err := e.Range(key)
		if err != nil || !ok {
			continue
		}
		return dates.Display(r.Start.Time)
	}
	return ""
}
