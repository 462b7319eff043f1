// Package repository persists raw case archives and parsed tables. An
// archive is the durable form of a scrape: the full text of every fetched
// document plus provenance, so batches can be re-parsed without refetching.
package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/openalabama/courtrecords/internal/records"
)

// Archive is an ordered collection of raw case documents.
type Archive struct {
	Cases []records.RawCase
}

// FromDirectory builds an archive from every .txt file directly under dir,
// in lexical filename order. File bodies are taken verbatim; the
// modification time stands in for the retrieval timestamp.
func FromDirectory(dir string) (*Archive, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading archive directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	a := &Archive{Cases: make([]records.RawCase, 0, len(names))}
	for _, name := range names {
		path := filepath.Join(dir, name)
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		ts := float64(time.Now().Unix())
		if info, err := os.Stat(path); err == nil {
			ts = float64(info.ModTime().Unix())
		}
		a.Cases = append(a.Cases, records.RawCase{
			Path:      path,
			Text:      string(body),
			Timestamp: ts,
		})
	}
	return a, nil
}

// Dedupe removes documents whose text duplicates an earlier one, keeping
// first occurrences, and reports how many were removed.
func (a *Archive) Dedupe() int {
	seen := make(map[string]struct{}, len(a.Cases))
	kept := a.Cases[:0]
	for _, c := range a.Cases {
		if _, ok := seen[c.Text]; ok {
			continue
		}
		seen[c.Text] = struct{}{}
		kept = append(kept, c)
	}
	removed := len(a.Cases) - len(kept)
	a.Cases = kept
	return removed
}
