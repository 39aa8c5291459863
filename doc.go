// Package harper implements a grammar and style checking engine:
// lexing, a Hunspell-derived dictionary, token-prefix pattern
// matching, and a rule-based linter that runs over a document model
// supporting in-place suggestion application.
//
// Engine ties the pieces together; the dict, lex, token, span, mask,
// parse, document, pattern, and lint packages implement one layer
// each and can be used independently of Engine.
package harper
