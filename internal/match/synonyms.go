package match

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed synonyms.yml
var synonymsYAML []byte

// Entry maps one canonical search term to its known variant phrases.
type Entry struct {
	Term     string   `yaml:"term"`
	Variants []string `yaml:"variants"`
}

// Group is one cluster of related category terms; any two members of the
// same group are treated as equivalent by the category facets.
type Group struct {
	Name    string   `yaml:"name"`
	Members []string `yaml:"members"`
}

// Index is the read-only synonym table. Entry order is significant: the
// interpreter scans entries in file order and the first hit wins, so the
// table is kept as a slice, never a map.
type Index struct {
	Entries []Entry
	Groups  []Group
}

type indexFile struct {
	Terms          []Entry `yaml:"terms"`
	CategoryGroups []Group `yaml:"category_groups"`
}

// LoadIndex parses a synonym table from YAML. Variants are lower-cased and
// trimmed once here so the match tiers never re-normalize.
func LoadIndex(b []byte) (*Index, error) {
	var f indexFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse synonym table: %w", err)
	}
	if len(f.Terms) == 0 {
		return nil, fmt.Errorf("synonym table has no terms")
	}

	idx := &Index{
		Entries: make([]Entry, 0, len(f.Terms)),
		Groups:  make([]Group, 0, len(f.CategoryGroups)),
	}
	for _, e := range f.Terms {
		term := strings.ToLower(strings.TrimSpace(e.Term))
		if term == "" {
			continue
		}
		var vs []string
		for _, v := range e.Variants {
			v = strings.ToLower(strings.TrimSpace(v))
			if v != "" {
				vs = append(vs, v)
			}
		}
		idx.Entries = append(idx.Entries, Entry{Term: term, Variants: vs})
	}
	for _, g := range f.CategoryGroups {
		var ms []string
		for _, m := range g.Members {
			m = strings.ToLower(strings.TrimSpace(m))
			if m != "" {
				ms = append(ms, m)
			}
		}
		idx.Groups = append(idx.Groups, Group{Name: g.Name, Members: ms})
	}
	return idx, nil
}

var (
	defaultOnce sync.Once
	defaultIdx  *Index
)

// Default returns the embedded synonym table, parsed once at first use and
// immutable afterwards, so unsynchronized concurrent reads are safe.
func Default() *Index {
	defaultOnce.Do(func() {
		idx, err := LoadIndex(synonymsYAML)
		if err != nil {
			// The table ships inside the binary; failing to parse it is a
			// build defect, not a runtime condition.
			panic(err)
		}
		defaultIdx = idx
	})
	return defaultIdx
}

// SameGroup reports whether a and b fall into the same category group.
// Membership is substring containment either way, so "information
// technology" hits the "it" group's "information technology" member and
// "IT (2378)" callers can pass the normalized "it".
func (idx *Index) SameGroup(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	for _, g := range idx.Groups {
		if g.contains(a) && g.contains(b) {
			return true
		}
	}
	return false
}

// InGroup reports whether v belongs to any member of the named group's
// cluster. Used by tests and the read-only synonyms endpoint.
func (idx *Index) InGroup(name, v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, g := range idx.Groups {
		if g.Name == name {
			return g.contains(v)
		}
	}
	return false
}

func (g Group) contains(v string) bool {
	for _, m := range g.Members {
		if v == m {
			return true
		}
		// Longer phrases still count: "information technology services"
		// contains the member "information technology".
		if len(m) >= 3 && strings.Contains(v, m) {
			return true
		}
	}
	return false
}
