package lookup

import (
	"fmt"
	"slices"
	"strings"

	"sakatsuku04/internal/domain"
)

// maxDenseCode bounds the slice used for direct code indexing.
const maxDenseCode = 1 << 12

// Entry is one (code, text) pair of a table, with the key it was stored under.
type Entry struct {
	Code int    `json:"code"`
	Key  string `json:"key"`
	Text string `json:"text"`
}

// Table is an immutable code to text mapping for one category in one locale.
type Table struct {
	category Category
	locale   domain.Locale
	encoding Encoding

	dense   []string
	present []bool
	sparse  map[int]string

	ordered []Entry
}

// NewTable validates raw (key -> text) against the encoding of category and
// builds a table. Every key must be the canonical encoding of its code.
func NewTable(category Category, locale domain.Locale, raw map[string]string) (*Table, error) {
	enc, ok := Definitions[category]
	if !ok {
		return nil, fmt.Errorf("new table %q: %w", category, domain.ErrUnknownCategory)
	}

	t := &Table{
		category: category,
		locale:   locale,
		encoding: enc,
		ordered:  make([]Entry, 0, len(raw)),
	}

	dense := true
	maxCode := -1
	for key, text := range raw {
		code, canonical := enc.Code(key)
		if !canonical {
			return nil, fmt.Errorf("new table %s/%s key %q (%s): %w", category, locale, key, enc, domain.ErrInvalidTableKey)
		}
		if code < 0 || code >= maxDenseCode {
			dense = false
		}
		maxCode = max(maxCode, code)
		t.ordered = append(t.ordered, Entry{Code: code, Key: key, Text: text})
	}

	// Keys are compared as strings, so decimal "10" sorts before "2".
	slices.SortFunc(t.ordered, func(a, b Entry) int {
		return strings.Compare(a.Key, b.Key)
	})

	if dense {
		t.dense = make([]string, maxCode+1)
		t.present = make([]bool, maxCode+1)
		for _, e := range t.ordered {
			t.dense[e.Code] = e.Text
			t.present[e.Code] = true
		}
	} else {
		t.sparse = make(map[int]string, len(t.ordered))
		for _, e := range t.ordered {
			t.sparse[e.Code] = e.Text
		}
	}
	return t, nil
}

func (t *Table) Category() Category { return t.category }

func (t *Table) Locale() domain.Locale { return t.locale }

func (t *Table) Encoding() Encoding { return t.encoding }

func (t *Table) Len() int { return len(t.ordered) }

// Lookup returns the text stored for code.
func (t *Table) Lookup(code int) (string, bool) {
	if t.sparse != nil {
		s, ok := t.sparse[code]
		return s, ok
	}
	if code < 0 || code >= len(t.dense) || !t.present[code] {
		return "", false
	}
	return t.dense[code], true
}

// Text returns the text for code, or "" when the table has no entry.
func (t *Table) Text(code int) string {
	s, _ := t.Lookup(code)
	return s
}

// Entries returns a copy of the table ordered by key string.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.ordered)
}
