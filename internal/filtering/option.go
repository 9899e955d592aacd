package filtering

import (
	"unicode"

	"github.com/ktane-web/filter-server/internal/enum"
)

// Option is one selectable value of a filter.
type Option struct {
	// Value is the underlying integer of the enum member (a single bit for flag filters)
	Value int

	// Name is the enum member name, used as JSON key and DOM id fragment
	Name string

	// LabelRef and ExplainRef are localization references resolved at render time
	LabelRef   string
	ExplainRef string

	// Accel is the keyboard accelerator, zero when the option has none
	Accel rune
}

// HasAccel reports whether the option declares a keyboard accelerator.
func (o Option) HasAccel() bool {
	return o.Accel != 0
}

// ExtractOptions derives the filter options of an enum from its member table.
// Members without a filter marker are left out entirely. Declaration order is kept.
func ExtractOptions[E ~int](table enum.Table[E]) []Option {
	options := make([]Option, 0, len(table))
	for _, m := range table {
		if m.Filter == nil {
			continue
		}
		options = append(options, Option{
			Value:      int(m.Value),
			Name:       m.Name,
			LabelRef:   m.Filter.Label,
			ExplainRef: m.Filter.Explain,
			Accel:      m.Filter.Accel,
		})
	}
	return options
}

// optionNames returns the option names in order.
func optionNames(options []Option) []string {
	names := make([]string, 0, len(options))
	for _, o := range options {
		names = append(names, o.Name)
	}
	return names
}

// DuplicateAccelerators returns the accelerators used by more than one option.
// Accelerators are compared case-insensitively since browsers treat access keys that way.
func DuplicateAccelerators(options []Option) []rune {
	seen := make(map[rune]bool, len(options))
	var dups []rune
	for _, o := range options {
		if !o.HasAccel() {
			continue
		}
		key := unicode.ToLower(o.Accel)
		if taken, ok := seen[key]; ok {
			if !taken {
				dups = append(dups, key)
				seen[key] = true
			}
			continue
		}
		seen[key] = false
	}
	return dups
}
