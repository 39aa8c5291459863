package dict

import "github.com/harperlint/harper/token"

// MarkedWord is a base word plus the affix flags it carries, as read
// from a word-list line of the form "word/FLAGS" (§6).
type MarkedWord struct {
	Letters    []rune
	Attributes []rune
}

// visited tracks surface forms already produced during one call to
// ExpandMarkedWord, so cross-product recursion can't loop forever on
// a pathological affix table and so duplicate insertions merge
// metadata instead of overwriting it, per the determinism note in
// §4.2: "insertions are accumulative".
type visited map[string]bool

// ExpandMarkedWord runs the algorithm of §4.2: for each flag on word,
// apply its Expansion's replacements, optionally recursing under the
// complementary attributes when CrossProduct is set, and insert every
// produced form (and the original word) into dest, merging metadata
// with WordMetadata.Or on collision.
func ExpandMarkedWord(word MarkedWord, inherited token.WordMetadata, attrs AttributeList, dest map[string]token.WordMetadata) {
	expandMarkedWord(word, inherited, attrs, dest, make(visited))
}

func expandMarkedWord(word MarkedWord, inherited token.WordMetadata, attrs AttributeList, dest map[string]token.WordMetadata, seen visited) {
	gifted := token.WordMetadata{}

	for _, flag := range word.Attributes {
		expansion, ok := attrs[flag]
		if !ok {
			continue
		}

		var produced []MarkedWord
		for _, repl := range expansion.Replacements {
			newLetters, ok := repl.Apply(word.Letters, expansion.Suffix)
			if !ok {
				continue
			}

			meta := expansion.Adds
			if isZeroMetadata(meta) {
				meta = inherited
			}
			insertOrMerge(dest, newLetters, meta)
			produced = append(produced, MarkedWord{Letters: newLetters, Attributes: complementaryFlags(word.Attributes, attrs, expansion.Suffix)})
			gifted = gifted.Or(expansion.Gifts)
		}

		if expansion.CrossProduct {
			for _, p := range produced {
				key := string(p.Letters)
				if seen[key] {
					continue
				}
				seen[key] = true
				meta := dest[key]
				expandMarkedWord(p, meta, attrs, dest, seen)
			}
		}
	}

	key := string(word.Letters)
	if _, exists := dest[key]; !exists {
		dest[key] = inherited.Or(gifted)
	}
}

// complementaryFlags returns the flags of word that belong to an
// Expansion whose Suffix differs from suffix, i.e. the "opposite
// side" attributes a cross-product recursion should apply next.
func complementaryFlags(flags []rune, attrs AttributeList, suffix bool) []rune {
	var out []rune
	for _, f := range flags {
		if exp, ok := attrs[f]; ok && exp.Suffix != suffix {
			out = append(out, f)
		}
	}
	return out
}

func insertOrMerge(dest map[string]token.WordMetadata, letters []rune, meta token.WordMetadata) {
	key := string(letters)
	if existing, ok := dest[key]; ok {
		dest[key] = existing.Or(meta)
	} else {
		dest[key] = meta
	}
}

func isZeroMetadata(m token.WordMetadata) bool {
	return m.Noun == nil && m.Verb == nil && m.Adjective == nil &&
		m.Adverb == nil && m.Conjunction == nil && !m.Common
}

// BuildLexicon expands every marked word in words against attrs,
// producing the fully enumerated lexicon of §3.
func BuildLexicon(words []MarkedWord, attrs AttributeList) map[string]token.WordMetadata {
	dest := make(map[string]token.WordMetadata, len(words)*2)
	for _, w := range words {
		ExpandMarkedWord(w, token.WordMetadata{}, attrs, dest)
	}
	return dest
}
