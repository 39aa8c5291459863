package dict

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/harperlint/harper/token"
)

// quoteNormalizer maps the smart-quote variants named in §4.3 onto a
// plain apostrophe at lookup time. The buffer itself is never
// rewritten (§3): normalization only affects dictionary lookups.
var quoteNormalizer = strings.NewReplacer(
	"’", "'", // ’
	"‘", "'", // ‘
	"＇", "'", // ＇
)

// Normalize lowercases w and folds smart quotes to a plain
// apostrophe, the transform every lookup in this package applies
// before consulting the lexicon.
func Normalize(w string) string {
	return strings.ToLower(quoteNormalizer.Replace(w))
}

// Dictionary is the immutable, fully expanded lexicon of §3: a
// normalized-string-keyed map to WordMetadata, plus the auxiliary
// structures §4.3 requires for fuzzy matching (words sorted by
// length, and a sorted key list for automaton-style pruning).
//
// A Dictionary is safe for concurrent read-only use once built (§5):
// nothing here mutates after New returns.
type Dictionary struct {
	entries map[string]token.WordMetadata
	// byLength holds every key, sorted primarily by rune length then
	// lexicographically, for the length-bucketed linear fuzzy-match
	// scan (§4.3).
	byLength []string
	// sortedKeys holds every key in pure lexicographic order, the
	// "sorted, serializable key map" the automaton-accelerated
	// backend queries (§4.3, §6).
	sortedKeys []string
}

// New builds a Dictionary from a fully expanded lexicon map, as
// produced by BuildLexicon.
func New(entries map[string]token.WordMetadata) *Dictionary {
	d := &Dictionary{entries: entries}

	d.byLength = make([]string, 0, len(entries))
	d.sortedKeys = make([]string, 0, len(entries))
	for k := range entries {
		d.byLength = append(d.byLength, k)
		d.sortedKeys = append(d.sortedKeys, k)
	}

	sort.Slice(d.byLength, func(i, j int) bool {
		a, b := d.byLength[i], d.byLength[j]
		la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
		if la != lb {
			return la < lb
		}
		return a < b
	})
	sort.Strings(d.sortedKeys)

	return d
}

// ContainsWord reports whether w (after normalization) is in the
// lexicon, per §4.3.
func (d *Dictionary) ContainsWord(w string) bool {
	_, ok := d.entries[Normalize(w)]
	return ok
}

// Metadata returns the merged metadata for w (exact or normalized
// match), or the zero value if w is not in the lexicon.
func (d *Dictionary) Metadata(w string) token.WordMetadata {
	if meta, ok := d.entries[w]; ok {
		return meta
	}
	return d.entries[Normalize(w)]
}

// Len returns the number of distinct entries in the lexicon.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// WordsByLength returns every lexicon key, sorted by length then
// lexicographically -- the structure the linear fuzzy-match backend
// buckets over.
func (d *Dictionary) WordsByLength() []string {
	return d.byLength
}

// SortedKeys returns every lexicon key in lexicographic order -- the
// structure the automaton-accelerated fuzzy-match backend queries.
func (d *Dictionary) SortedKeys() []string {
	return d.sortedKeys
}
