// Package enum provides statically declared member tables for integer enum types.
//
// A Table lists every member of an enum in declaration order together with its
// symbolic name and, for members that may be offered as filter options, a
// Marker carrying the localization references and keyboard accelerator. Tables
// replace any form of runtime inspection: they are plain values built once at
// package initialization and never mutated.
package enum

import (
	"fmt"
	"strconv"
	"strings"
)

// Marker flags an enum member as filterable.
type Marker struct {
	// Label is the localization reference of the option label
	Label string

	// Explain is the optional localization reference of a longer explanation
	Explain string

	// Accel is the optional keyboard accelerator (zero means none)
	Accel rune
}

// Member describes a single enum member.
type Member[E ~int] struct {
	Value E
	Name  string

	// Filter is nil for members that must never appear as a filter option
	Filter *Marker
}

// Table is the ordered member list of one enum type.
type Table[E ~int] []Member[E]

// Name returns the symbolic name of v.
func (t Table[E]) Name(v E) (string, bool) {
	for _, m := range t {
		if m.Value == v {
			return m.Name, true
		}
	}
	return "", false
}

// String returns the symbolic name of v, or its decimal value when v is not a member.
func (t Table[E]) String(v E) string {
	if name, ok := t.Name(v); ok {
		return name
	}
	return strconv.Itoa(int(v))
}

// Parse returns the member called name.
func (t Table[E]) Parse(name string) (E, bool) {
	for _, m := range t {
		if m.Name == name {
			return m.Value, true
		}
	}
	var zero E
	return zero, false
}

// Names returns every member name in declaration order.
func (t Table[E]) Names() []string {
	names := make([]string, 0, len(t))
	for _, m := range t {
		names = append(names, m.Name)
	}
	return names
}

// UnmarshalText parses a member name into dst. It is meant to back the
// encoding.TextUnmarshaler implementation of the enum type.
func (t Table[E]) UnmarshalText(text []byte, dst *E) error {
	v, ok := t.Parse(string(text))
	if !ok {
		return fmt.Errorf("unknown value %q", string(text))
	}
	*dst = v
	return nil
}

// FormatFlags renders a bit mask as a comma separated list of member names.
// Bits that do not belong to any member are ignored.
func (t Table[E]) FormatFlags(mask E) string {
	var parts []string
	for _, m := range t {
		if m.Value != 0 && mask&m.Value == m.Value {
			parts = append(parts, m.Name)
		}
	}
	return strings.Join(parts, ", ")
}

// ParseFlags parses a comma separated list of member names into a bit mask.
func (t Table[E]) ParseFlags(s string) (E, error) {
	var mask E
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, ok := t.Parse(part)
		if !ok {
			return 0, fmt.Errorf("unknown flag %q", part)
		}
		mask |= v
	}
	return mask, nil
}
