package token

// NounMetadata records noun-specific grammatical properties. Nil
// fields are "unknown", distinct from a known-false value.
type NounMetadata struct {
	IsProper     *bool
	IsPlural     *bool
	IsPronoun    *bool
	IsPossessive *bool
}

// VerbTense enumerates the tenses the engine distinguishes.
type VerbTense int8

const (
	TenseUnknown VerbTense = iota
	TensePast
	TensePresent
	TenseFuture
)

// VerbMetadata records verb-specific grammatical properties.
type VerbMetadata struct {
	Tense      VerbTense
	IsLinking  *bool
}

// AdjectiveMetadata, AdverbMetadata, and ConjunctionMetadata are
// currently tag-only: their presence on a WordMetadata is itself the
// signal linters consult (e.g. "is this token an adjective at all"),
// matching how spec §3 describes them (bare sub-records with no
// further fields named).
type AdjectiveMetadata struct{}
type AdverbMetadata struct{}
type ConjunctionMetadata struct{}

// WordMetadata is the linguistic annotation attached to a Word token
// or a dictionary entry. Every sub-record is optional; a nil pointer
// means "this word was never classified along this axis", not "false".
type WordMetadata struct {
	Noun        *NounMetadata
	Verb        *VerbMetadata
	Adjective   *AdjectiveMetadata
	Adverb      *AdverbMetadata
	Conjunction *ConjunctionMetadata

	// Common flags a word as high-frequency; used to break fuzzy-match
	// ties in favor of common words (§4.3).
	Common bool
}

// orBool returns the first non-nil of a, b.
func orBool(a, b *bool) *bool {
	if a != nil {
		return a
	}
	return b
}

// Or merges two WordMetadata values field-by-field, preferring values
// already present in m over those in other. This is the `or(a, b)`
// operator named in spec §3: associative and idempotent, so repeated
// affix expansions that derive the same surface form can be merged in
// any order without changing the result.
func (m WordMetadata) Or(other WordMetadata) WordMetadata {
	result := m

	switch {
	case result.Noun == nil:
		result.Noun = other.Noun
	case other.Noun != nil:
		merged := *result.Noun
		merged.IsProper = orBool(merged.IsProper, other.Noun.IsProper)
		merged.IsPlural = orBool(merged.IsPlural, other.Noun.IsPlural)
		merged.IsPronoun = orBool(merged.IsPronoun, other.Noun.IsPronoun)
		merged.IsPossessive = orBool(merged.IsPossessive, other.Noun.IsPossessive)
		result.Noun = &merged
	}

	switch {
	case result.Verb == nil:
		result.Verb = other.Verb
	case other.Verb != nil:
		merged := *result.Verb
		if merged.Tense == TenseUnknown {
			merged.Tense = other.Verb.Tense
		}
		merged.IsLinking = orBool(merged.IsLinking, other.Verb.IsLinking)
		result.Verb = &merged
	}

	if result.Adjective == nil {
		result.Adjective = other.Adjective
	}
	if result.Adverb == nil {
		result.Adverb = other.Adverb
	}
	if result.Conjunction == nil {
		result.Conjunction = other.Conjunction
	}

	result.Common = result.Common || other.Common

	return result
}

// IsNoun, IsVerb, IsAdjective, IsAdverb, IsConjunction, IsPronoun, and
// IsLinkingVerb are convenience predicates used throughout lint/ and
// pattern/ so rules don't need to nil-check sub-records themselves.

func (m WordMetadata) IsNoun() bool { return m.Noun != nil }

func (m WordMetadata) IsVerb() bool { return m.Verb != nil }

func (m WordMetadata) IsAdjective() bool { return m.Adjective != nil }

func (m WordMetadata) IsAdverb() bool { return m.Adverb != nil }

func (m WordMetadata) IsConjunction() bool { return m.Conjunction != nil }

func (m WordMetadata) IsPronoun() bool {
	return m.Noun != nil && m.Noun.IsPronoun != nil && *m.Noun.IsPronoun
}

func (m WordMetadata) IsPossessive() bool {
	return m.Noun != nil && m.Noun.IsPossessive != nil && *m.Noun.IsPossessive
}

func (m WordMetadata) IsPlural() bool {
	return m.Noun != nil && m.Noun.IsPlural != nil && *m.Noun.IsPlural
}

func (m WordMetadata) IsProperNoun() bool {
	return m.Noun != nil && m.Noun.IsProper != nil && *m.Noun.IsProper
}

func (m WordMetadata) IsLinkingVerb() bool {
	return m.Verb != nil && m.Verb.IsLinking != nil && *m.Verb.IsLinking
}

// BoolPtr is a small helper for constructing literal *bool values in
// dictionary/affix code and tests, matching the teacher's habit of a
// tiny helper for obtaining addresses of literals (see e.g.
// experimental/ast's use of pointer-returning helpers for optional
// fields).
func BoolPtr(b bool) *bool {
	return &b
}
