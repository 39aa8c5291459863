package dict

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/harperlint/harper/internal/dicterr"
	"github.com/harperlint/harper/token"
)

// ParseWordList reads the on-disk word-list format of §6: the first
// non-empty line is an approximate item count, and every remaining
// line is `word` or `word/FLAGS`.
func ParseWordList(r io.Reader, h *dicterr.Handler) ([]MarkedWord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	sawCount := false
	var words []MarkedWord

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if !sawCount {
			sawCount = true
			if _, err := strconv.Atoi(text); err != nil {
				return nil, h.Handle(dicterr.New(dicterr.BadCount, line, 0,
					"expected an approximate item count, got %q", text))
			}
			continue
		}

		base, flags, _ := strings.Cut(text, "/")
		words = append(words, MarkedWord{
			Letters:    []rune(base),
			Attributes: []rune(flags),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

// affixFile is the §6 on-disk affix-table JSON shape:
// {"affixes": {"<flag>": Expansion}}.
type affixFile struct {
	Affixes map[string]affixExpansionJSON `json:"affixes"`
}

type affixReplacementJSON struct {
	Remove    string `json:"remove"`
	Add       string `json:"add"`
	Condition string `json:"condition"`
}

type affixExpansionJSON struct {
	Suffix       bool                   `json:"suffix"`
	CrossProduct bool                   `json:"cross_product"`
	Replacements []affixReplacementJSON `json:"replacements"`
	Adds         wordMetadataJSON       `json:"adds"`
	Gifts        wordMetadataJSON       `json:"gifts"`
}

// wordMetadataJSON is the flat, wire-friendly projection of
// token.WordMetadata used by the JSON affix table and nowhere else --
// the in-memory type keeps pointer fields to distinguish "unknown"
// from "known false" (§3), which a JSON boolean can't represent
// directly, so this mirror uses *bool fields that round-trip through
// encoding/json's own nil handling.
type wordMetadataJSON struct {
	Noun *struct {
		IsProper     *bool `json:"is_proper"`
		IsPlural     *bool `json:"is_plural"`
		IsPronoun    *bool `json:"is_pronoun"`
		IsPossessive *bool `json:"is_possessive"`
	} `json:"noun"`
	Verb *struct {
		Tense     string `json:"tense"`
		IsLinking *bool  `json:"is_linking"`
	} `json:"verb"`
	Adjective   *struct{} `json:"adjective"`
	Adverb      *struct{} `json:"adverb"`
	Conjunction *struct{} `json:"conjunction"`
	Common      bool      `json:"common"`
}

func (j wordMetadataJSON) toMetadata() token.WordMetadata {
	var m token.WordMetadata
	if j.Noun != nil {
		m.Noun = &token.NounMetadata{
			IsProper:     j.Noun.IsProper,
			IsPlural:     j.Noun.IsPlural,
			IsPronoun:    j.Noun.IsPronoun,
			IsPossessive: j.Noun.IsPossessive,
		}
	}
	if j.Verb != nil {
		m.Verb = &token.VerbMetadata{
			Tense:     parseTense(j.Verb.Tense),
			IsLinking: j.Verb.IsLinking,
		}
	}
	if j.Adjective != nil {
		m.Adjective = &token.AdjectiveMetadata{}
	}
	if j.Adverb != nil {
		m.Adverb = &token.AdverbMetadata{}
	}
	if j.Conjunction != nil {
		m.Conjunction = &token.ConjunctionMetadata{}
	}
	m.Common = j.Common
	return m
}

func parseTense(s string) token.VerbTense {
	switch s {
	case "past":
		return token.TensePast
	case "present":
		return token.TensePresent
	case "future":
		return token.TenseFuture
	default:
		return token.TenseUnknown
	}
}

// ParseAffixTable reads the on-disk affix-table JSON format of §6 and
// compiles it into an AttributeList. Flags must be single characters
// per §4.2; a multi-character key is a build-time error.
func ParseAffixTable(r io.Reader, h *dicterr.Handler) (AttributeList, error) {
	var raw affixFile
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}

	attrs := make(AttributeList, len(raw.Affixes))
	for flagStr, expJSON := range raw.Affixes {
		flagRunes := []rune(flagStr)
		if len(flagRunes) != 1 {
			return nil, h.Handle(dicterr.New(dicterr.MultiCharFlag, 0, 0,
				"affix flag %q is not a single character", flagStr))
		}

		replacements := make([]AffixReplacement, 0, len(expJSON.Replacements))
		for _, r := range expJSON.Replacements {
			cond, err := ParseCondition(r.Condition, 0)
			if err != nil {
				return nil, err
			}
			replacements = append(replacements, AffixReplacement{
				Remove:    []rune(r.Remove),
				Add:       []rune(r.Add),
				Condition: cond,
			})
		}

		attrs[flagRunes[0]] = Expansion{
			Suffix:       expJSON.Suffix,
			CrossProduct: expJSON.CrossProduct,
			Replacements: replacements,
			Adds:         expJSON.Adds.toMetadata(),
			Gifts:        expJSON.Gifts.toMetadata(),
		}
	}

	return attrs, nil
}

// LoadFromFS builds a Dictionary from a word-list file and an affix
// table found in fsys by globbing the given patterns, using doublestar
// so word lists can be organized into per-language subdirectories
// (e.g. "dicts/**/words.txt") the way on-disk lexicon bundles are laid
// out in practice.
func LoadFromFS(fsys fs.FS, wordListGlob, affixGlob string) (*Dictionary, error) {
	h := &dicterr.Handler{}

	wordPaths, err := doublestar.Glob(fsys, wordListGlob)
	if err != nil {
		return nil, fmt.Errorf("globbing word list %q: %w", wordListGlob, err)
	}
	if len(wordPaths) == 0 {
		return nil, fmt.Errorf("no word-list file matched %q", wordListGlob)
	}

	affixPaths, err := doublestar.Glob(fsys, affixGlob)
	if err != nil {
		return nil, fmt.Errorf("globbing affix table %q: %w", affixGlob, err)
	}
	if len(affixPaths) == 0 {
		return nil, fmt.Errorf("no affix table matched %q", affixGlob)
	}

	wordFile, err := fsys.Open(wordPaths[0])
	if err != nil {
		return nil, err
	}
	defer wordFile.Close()

	words, err := ParseWordList(wordFile, h)
	if err != nil {
		return nil, err
	}
	if err := h.Err(); err != nil {
		return nil, err
	}

	affixFile, err := fsys.Open(affixPaths[0])
	if err != nil {
		return nil, err
	}
	defer affixFile.Close()

	attrs, err := ParseAffixTable(affixFile, h)
	if err != nil {
		return nil, err
	}
	if err := h.Err(); err != nil {
		return nil, err
	}

	lexicon := BuildLexicon(words, attrs)
	return New(lexicon), nil
}
