package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"tableflip.dev/daybook/pkg/document"
)

var yearFilePattern = regexp.MustCompile(`^[0-9]{4}$`)

// Reindex rebuilds the id index by scanning every year file under the
// journal directory. Existing index records are overwritten; records
// whose id no longer appears in any file are left behind (ids are
// permanent, dangling ones only ever mean a raw manual edit).
// It returns the number of entries indexed.
func Reindex(cfg Config, reg Registry) (int, error) {
	files, err := os.ReadDir(cfg.BasePath())
	if err != nil {
		return 0, fmt.Errorf("reindex: %w", err)
	}

	count := 0
	for _, f := range files {
		if f.IsDir() || !yearFilePattern.MatchString(f.Name()) {
			continue
		}
		doc, err := document.Load(filepath.Join(cfg.BasePath(), f.Name()))
		if err != nil {
			return count, fmt.Errorf("reindex: %w", err)
		}
		for _, h := range doc.Headings {
			if h.Level != 3 {
				continue
			}
			id, ok := h.Property("id")
			if !ok {
				continue
			}
			if err := reg.Put(id, Ref{File: f.Name(), Label: h.Label}); err != nil {
				return count, fmt.Errorf("reindex %s: %w", id, err)
			}
			count++
		}
	}
	return count, nil
}
