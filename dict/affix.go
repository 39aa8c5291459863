// Package dict implements the morphological dictionary: builder
// (§4.2), lookup (§4.3), and the fuzzy-match spellcheck backends
// that §4.3/§4.8 require.
package dict

import (
	"strings"

	"github.com/harperlint/harper/internal/dicterr"
	"github.com/harperlint/harper/token"
)

// conditionOp is one position of a Condition: a literal rune, a "."
// wildcard, or a character class.
type conditionOp struct {
	literal  rune
	isDot    bool
	class    map[rune]bool
	negate   bool
	isClass  bool
}

// Condition is the fixed-length affix-condition matcher of §3/§4.2:
// literal characters, ".", "[abc]", and "[^abc]". Its length equals
// the number of operators it was compiled from.
type Condition struct {
	ops []conditionOp
}

// Len returns the number of characters a target must have to be
// tested against this condition.
func (c Condition) Len() int {
	return len(c.ops)
}

// Matches reports whether target satisfies every operator in order.
// len(target) must equal c.Len().
func (c Condition) Matches(target []rune) bool {
	if len(target) != len(c.ops) {
		return false
	}
	for i, op := range c.ops {
		r := target[i]
		switch {
		case op.isDot:
			continue
		case op.isClass:
			in := op.class[r]
			if op.negate {
				in = !in
			}
			if !in {
				return false
			}
		default:
			if r != op.literal {
				return false
			}
		}
	}
	return true
}

// ParseCondition compiles a condition string like "[^aeiou]e" into a
// Condition, per §4.2's fixed-length matcher grammar. Returns a
// dicterr.Error tagged UnmatchedBracket if a "[" is never closed.
func ParseCondition(pattern string, line int) (Condition, error) {
	runes := []rune(pattern)
	var ops []conditionOp

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '.':
			ops = append(ops, conditionOp{isDot: true})
		case '[':
			end := indexRune(runes[i+1:], ']')
			if end < 0 {
				return Condition{}, dicterr.New(dicterr.UnmatchedBracket, line, i,
					"unmatched '[' in condition %q", pattern)
			}
			body := runes[i+1 : i+1+end]
			negate := false
			if len(body) > 0 && body[0] == '^' {
				negate = true
				body = body[1:]
			}
			class := make(map[rune]bool, len(body))
			for _, r := range body {
				class[r] = true
			}
			ops = append(ops, conditionOp{isClass: true, negate: negate, class: class})
			i += end + 1
		default:
			ops = append(ops, conditionOp{literal: runes[i]})
		}
	}

	return Condition{ops: ops}, nil
}

func indexRune(runes []rune, target rune) int {
	for i, r := range runes {
		if r == target {
			return i
		}
	}
	return -1
}

// AffixReplacement is one rewrite rule within an Expansion: strip
// `Remove` from the affected end of a word (after `Condition`
// matches) and attach `Add` in its place.
type AffixReplacement struct {
	Remove    []rune
	Add       []rune
	Condition Condition
}

// Apply attempts this replacement against letters, given whether the
// expansion it belongs to is a suffix rule. Returns (nil, false) if
// the condition doesn't match or the letters are too short, per §4.2.
func (r AffixReplacement) Apply(letters []rune, suffix bool) ([]rune, bool) {
	condLen := r.Condition.Len()
	if len(letters) < condLen {
		return nil, false
	}

	var target []rune
	if suffix {
		target = letters[len(letters)-condLen:]
	} else {
		target = letters[:condLen]
	}
	if !r.Condition.Matches(target) {
		return nil, false
	}

	if suffix {
		if !hasSuffix(letters, r.Remove) {
			return nil, false
		}
		stripped := letters[:len(letters)-len(r.Remove)]
		result := make([]rune, 0, len(stripped)+len(r.Add))
		result = append(result, stripped...)
		result = append(result, r.Add...)
		return result, true
	}

	if !hasPrefix(letters, r.Remove) {
		return nil, false
	}
	stripped := letters[len(r.Remove):]
	result := make([]rune, 0, len(stripped)+len(r.Add))
	result = append(result, r.Add...)
	result = append(result, stripped...)
	return result, true
}

func hasSuffix(letters, suffix []rune) bool {
	if len(suffix) == 0 {
		return true
	}
	return strings.HasSuffix(string(letters), string(suffix))
}

func hasPrefix(letters, prefix []rune) bool {
	if len(prefix) == 0 {
		return true
	}
	return strings.HasPrefix(string(letters), string(prefix))
}

// Expansion is an affix rule set keyed by a single flag character in
// an AttributeList (§3/§4.2).
type Expansion struct {
	// Suffix is true for a suffix rule, false for a prefix rule.
	Suffix bool
	// CrossProduct, if true, means each produced word is recursively
	// expanded under the complementary (opposite-Suffix) attributes.
	CrossProduct bool
	Replacements []AffixReplacement
	// Adds is merged onto forms this expansion produces.
	Adds token.WordMetadata
	// Gifts is merged back onto the original word that carried this
	// flag.
	Gifts token.WordMetadata
}

// AttributeList maps a flag character to its Expansion.
type AttributeList map[rune]Expansion
