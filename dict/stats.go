package dict

import (
	"google.golang.org/protobuf/types/known/structpb"
)

// BuildStats returns a snapshot of lexicon composition, shaped as a
// structpb.Struct so it can be attached as-is to telemetry or
// diagnostic payloads that already speak protobuf well-known types
// elsewhere in a caller's stack, without this package taking on a
// bespoke stats wire format of its own.
func (d *Dictionary) BuildStats() (*structpb.Struct, error) {
	var nouns, verbs, adjectives, adverbs, conjunctions, common float64
	for _, meta := range d.entries {
		if meta.IsNoun() {
			nouns++
		}
		if meta.IsVerb() {
			verbs++
		}
		if meta.IsAdjective() {
			adjectives++
		}
		if meta.IsAdverb() {
			adverbs++
		}
		if meta.IsConjunction() {
			conjunctions++
		}
		if meta.Common {
			common++
		}
	}

	return structpb.NewStruct(map[string]any{
		"total_entries":     float64(d.Len()),
		"noun_entries":      nouns,
		"verb_entries":      verbs,
		"adjective_entries": adjectives,
		"adverb_entries":    adverbs,
		"conjunction_entries": conjunctions,
		"common_entries":    common,
	})
}
