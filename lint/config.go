package lint

import (
	"io"

	"gopkg.in/yaml.v3"
)

// defaultRuleNames lists every rule considered on by default when a
// Config doesn't mention it explicitly.
var defaultRuleNames = []string{
	"SentenceCapitalization", "CapitalizePersonalPronouns", "NumberSuffixCapitalization",
	"EllipsisLength", "DotInitialisms", "Spaces", "UnclosedQuotes", "WrongQuotes",
	"LongSentences", "SpelledNumbers",
	"RepeatedWords", "MultipleSequentialPronouns", "ThatWhich",
	"AnA", "AvoidCurses", "BoringWords", "TerminatingConjunctions",
	"CorrectNumberSuffix", "LinkingVerbs", "UseGenitive", "Matcher",
	"Spellcheck",
}

// Config is the per-rule on/off switchboard of §4.7, serialized as
// YAML so it can live alongside a project's other dotfiles.
type Config struct {
	Rules map[string]bool `yaml:"rules"`
}

// FillDefaultValues resolves any rule name absent from Rules to
// enabled, per §4.7's "fill_default_values" responsibility. Rules
// explicitly set to false stay disabled.
func (c *Config) FillDefaultValues() {
	if c.Rules == nil {
		c.Rules = make(map[string]bool, len(defaultRuleNames))
	}
	for _, name := range defaultRuleNames {
		if _, ok := c.Rules[name]; !ok {
			c.Rules[name] = true
		}
	}
}

// DefaultConfig returns a Config with every rule enabled.
func DefaultConfig() *Config {
	c := &Config{}
	c.FillDefaultValues()
	return c
}

// LoadConfig reads a YAML-encoded Config from r, filling in defaults
// for any rule it doesn't mention.
func LoadConfig(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return nil, err
	}
	c.FillDefaultValues()
	return &c, nil
}
