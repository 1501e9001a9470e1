package langconfig

import "strings"

// DefaultLanguage is used when no language is configured.
const DefaultLanguage = "en"

// Config holds the language lists.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Required []string `env:"LANGUAGES_REQUIRED" envSeparator:"," json:"required" yaml:"required" toml:"required"`
	Optional []string `env:"LANGUAGES_OPTIONAL" envSeparator:"," json:"optional" yaml:"optional" toml:"optional"`
}

// AllLanguages returns required languages followed by optional ones.
// Entries are trimmed, blanks are dropped and repeats keep their first position.
// An empty required list counts as ["en"].
func (c Config) AllLanguages() []string {
	required := normalize(c.Required)
	if len(required) == 0 {
		required = []string{DefaultLanguage}
	}

	out := make([]string, 0, len(required)+len(c.Optional))
	seen := make(map[string]struct{}, cap(out))
	for _, lang := range append(required, normalize(c.Optional)...) {
		if _, ok := seen[lang]; ok {
			continue
		}
		seen[lang] = struct{}{}
		out = append(out, lang)
	}

	return out
}

// DefaultLanguage returns the first configured language, or "en".
func (c Config) DefaultLanguage() string {
	if all := c.AllLanguages(); len(all) > 0 {
		return all[0]
	}
	return DefaultLanguage
}

func normalize(langs []string) []string {
	out := make([]string, 0, len(langs))
	for _, lang := range langs {
		if lang = strings.TrimSpace(lang); lang != "" {
			out = append(out, lang)
		}
	}
	return out
}
