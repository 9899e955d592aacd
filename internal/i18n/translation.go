// Package i18n provides the string tables used to localize the filter UI.
package i18n

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is the code of the built-in English table.
const DefaultLanguage = "en"

// Translation is the string table of one language.
type Translation struct {
	// Code is the BCP 47 language code, e.g. "de" or "pt-BR"
	Code string `yaml:"language"`

	// Name is the language's own name for itself
	Name string `yaml:"name,omitempty"`

	Strings map[string]string `yaml:"strings"`
}

// English returns the built-in English translation.
func English() *Translation {
	return &Translation{Code: DefaultLanguage, Name: "English", Strings: maps.Clone(english)}
}

// Lookup returns the string for ref. Missing strings fall back to English and
// then to the reference itself, so lookups never fail.
func (t *Translation) Lookup(ref string) string {
	if t != nil {
		if s, ok := t.Strings[ref]; ok && s != "" {
			return s
		}
	}
	if s, ok := english[ref]; ok {
		return s
	}
	return ref
}

// Tag returns the parsed language tag.
func (t *Translation) Tag() (language.Tag, error) {
	tag, err := language.Parse(t.Code)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language code %q: %w", t.Code, err)
	}
	return tag, nil
}

// LoadTranslation reads a YAML translation file. When the file does not name
// its language, the file name without extension is used.
func LoadTranslation(path string) (*Translation, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read translation file: %w", err)
	}

	var t Translation
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse translation %s: %w", path, err)
	}
	if t.Code == "" {
		t.Code = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if _, err := t.Tag(); err != nil {
		return nil, fmt.Errorf("translation %s: %w", path, err)
	}
	return &t, nil
}
