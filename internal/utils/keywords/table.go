// Package keywords resolves product names against ordered keyword tables.
//
// Tables are slices rather than maps so that "first match wins" is stable:
// a name containing two keywords always resolves to the one declared first.
package keywords

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

type Entry[V any] struct {
	Keyword string
	Value   V
}

type Table[V any] []Entry[V]

// Lookup returns the value of the first entry whose keyword is a substring
// of the normalized name.
func (t Table[V]) Lookup(name string) (V, bool) {
	key := Normalize(name)
	for _, entry := range t {
		if strings.Contains(key, Normalize(entry.Keyword)) {
			return entry.Value, true
		}
	}
	var zero V
	return zero, false
}

func (t Table[V]) LookupOr(name string, fallback V) V {
	if v, ok := t.Lookup(name); ok {
		return v
	}
	return fallback
}

// Normalize trims, composes (NFC) and case-folds s. Composing first keeps
// "maçã" typed with combining marks equal to its precomposed form.
func Normalize(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}
