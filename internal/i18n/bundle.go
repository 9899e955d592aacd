package i18n

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Bundle is the set of available translations.
type Bundle struct {
	fallback     *Translation
	translations []*Translation
	byCode       map[string]*Translation
	matcher      language.Matcher
}

// NewBundle builds a bundle from translations. English is always available;
// a translation with code "en" replaces the built-in table. fallback names
// the language served when negotiation finds no match.
func NewBundle(fallback string, translations ...*Translation) (*Bundle, error) {
	if fallback == "" {
		fallback = DefaultLanguage
	}

	b := &Bundle{byCode: make(map[string]*Translation)}
	add := func(t *Translation) error {
		tag, err := t.Tag()
		if err != nil {
			return err
		}
		code := tag.String()
		if _, dup := b.byCode[code]; dup {
			return fmt.Errorf("duplicate translation for language %s", code)
		}
		t.Code = code
		b.byCode[code] = t
		b.translations = append(b.translations, t)
		return nil
	}

	hasEnglish := false
	for _, t := range translations {
		if t == nil {
			continue
		}
		if err := add(t); err != nil {
			return nil, err
		}
		if t.Code == DefaultLanguage {
			hasEnglish = true
		}
	}
	if !hasEnglish {
		if err := add(English()); err != nil {
			return nil, err
		}
	}

	fallbackTag, err := language.Parse(fallback)
	if err != nil {
		return nil, fmt.Errorf("invalid default language %q: %w", fallback, err)
	}
	def, ok := b.byCode[fallbackTag.String()]
	if !ok {
		return nil, fmt.Errorf("default language %s has no translation", fallback)
	}
	b.fallback = def

	// The matcher falls back to its first tag.
	tags := []language.Tag{language.Make(def.Code)}
	ordered := []*Translation{def}
	for _, t := range b.translations {
		if t != def {
			tags = append(tags, language.Make(t.Code))
			ordered = append(ordered, t)
		}
	}
	b.translations = ordered
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// LoadBundle loads every *.yaml and *.yml translation in dir. An empty dir
// yields a bundle with only the built-in English table.
func LoadBundle(dir, fallback string) (*Bundle, error) {
	if dir == "" {
		return NewBundle(fallback)
	}

	entries, err := os.ReadDir(filepath.Clean(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read translations directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	translations := make([]*Translation, 0, len(files))
	for _, f := range files {
		t, err := LoadTranslation(f)
		if err != nil {
			return nil, err
		}
		translations = append(translations, t)
	}

	b, err := NewBundle(fallback, translations...)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded translations", "dir", dir, "languages", b.Languages())
	return b, nil
}

// Default returns the fallback translation.
func (b *Bundle) Default() *Translation {
	return b.fallback
}

// Get returns the translation for an exact language code.
func (b *Bundle) Get(code string) (*Translation, bool) {
	tag, err := language.Parse(code)
	if err != nil {
		return nil, false
	}
	t, ok := b.byCode[tag.String()]
	return t, ok
}

// Languages returns the available language codes, fallback first.
func (b *Bundle) Languages() []string {
	codes := make([]string, 0, len(b.translations))
	for _, t := range b.translations {
		codes = append(codes, t.Code)
	}
	return codes
}

// Match negotiates the best translation for the given preferences. Each
// preference is a language code or an Accept-Language header value; earlier
// preferences win. Unparseable or empty preferences are skipped.
func (b *Bundle) Match(preferences ...string) *Translation {
	for _, pref := range preferences {
		pref = strings.TrimSpace(pref)
		if pref == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, index, confidence := b.matcher.Match(tags...)
		if confidence != language.No {
			return b.translations[index]
		}
	}
	return b.fallback
}
