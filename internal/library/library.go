package library

import (
	"errors"
	"fmt"
	"strings"
)

// Entry is one reference record in the movie index. The pipeline never
// mutates entries; they exist to be projected into oracle prompts and to
// anchor movie-id validation.
type Entry struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Year          int      `json:"year"`
	Genres        []string `json:"genres,omitempty"`
	ContentRating string   `json:"contentRating,omitempty"`
	Runtime       int      `json:"runtimeMinutes,omitempty"`
	CriticRating  float64  `json:"criticRating,omitempty"`
	Summary       string   `json:"summary,omitempty"`
}

// Index is an immutable, ordered collection of entries with id lookup.
type Index struct {
	entries []Entry
	byID    map[string]*Entry
}

// NewIndex validates the supplied entries and builds an index over them.
// Every entry must carry a non-empty id and ids must be unique; the order of
// the input slice is preserved.
func NewIndex(entries []Entry) (*Index, error) {
	idx := &Index{
		entries: make([]Entry, len(entries)),
		byID:    make(map[string]*Entry, len(entries)),
	}
	copy(idx.entries, entries)
	for i := range idx.entries {
		id := strings.TrimSpace(idx.entries[i].ID)
		if id == "" {
			return nil, fmt.Errorf("library index: entry %d (%q) has no id", i, idx.entries[i].Title)
		}
		idx.entries[i].ID = id
		if _, exists := idx.byID[id]; exists {
			return nil, fmt.Errorf("library index: duplicate id %q", id)
		}
		idx.byID[id] = &idx.entries[i]
	}
	return idx, nil
}

// Len returns the number of entries in the index.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// Entries returns the indexed entries in their original order. The returned
// slice is a copy; callers cannot mutate the index through it.
func (x *Index) Entries() []Entry {
	if x == nil {
		return nil
	}
	out := make([]Entry, len(x.entries))
	copy(out, x.entries)
	return out
}

// ByID looks up an entry by its identifier.
func (x *Index) ByID(id string) (Entry, bool) {
	if x == nil {
		return Entry{}, false
	}
	entry, ok := x.byID[id]
	if !ok {
		return Entry{}, false
	}
	return *entry, true
}

// Contains reports whether the index holds an entry with the given id.
func (x *Index) Contains(id string) bool {
	if x == nil {
		return false
	}
	_, ok := x.byID[id]
	return ok
}

// ErrEmptyIndex indicates a loaded index contained no movies.
var ErrEmptyIndex = errors.New("library index contains no movies")
