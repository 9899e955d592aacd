package filtering

import (
	"fmt"

	"github.com/tidwall/gjson"
	"golang.org/x/net/html"

	"github.com/ktane-web/filter-server/internal/enum"
)

// Kind identifies the evaluation and rendering strategy of a filter.
type Kind string

const (
	// KindRange is an ordinal range selected with a slider
	KindRange Kind = "range"

	// KindMultiChoice is a single-valued enum offered as a set of checkboxes
	KindMultiChoice Kind = "multichoice"

	// KindFlags is a bit-flag enum with a yes/no/either choice per flag
	KindFlags Kind = "flags"
)

// ClientExpr is a code fragment evaluated by the browser runtime to derive the
// filtered attribute of an item without another request. It is stored and
// emitted verbatim and never interpreted on the server.
type ClientExpr string

// Localizer resolves localization references to display strings.
type Localizer interface {
	Lookup(ref string) string
}

// Localization references used by the flag filter rows.
const (
	FlagYesRef    = "flagYes"
	FlagNoRef     = "flagNo"
	FlagEitherRef = "flagEither"
)

// Filter is a named filter over one attribute of items of type T.
//
// Implementations are immutable after construction and safe for concurrent use.
type Filter[T any] interface {
	// ID is the stable identifier used as JSON key and DOM id namespace
	ID() string

	// Kind returns the filter strategy
	Kind() Kind

	// Options returns the selectable options in display order
	Options() []Option

	// Descriptor returns the browser runtime description of the filter
	Descriptor() Descriptor

	// Render builds the form control group, resolving every label through loc
	Render(loc Localizer) *html.Node

	// Matches reports whether item passes the filter under the client state.
	// It never panics, whatever JSON the state holds.
	Matches(item T, state gjson.Result) bool
}

// declaration holds what every filter kind shares.
type declaration struct {
	id      string
	nameRef string
	expr    ClientExpr
	options []Option
}

func newDeclaration(id, nameRef string, expr ClientExpr, options []Option) declaration {
	if id == "" {
		panic("filtering: filter id is required")
	}
	if nameRef == "" {
		panic(fmt.Sprintf("filtering: filter %q: readable name is required", id))
	}
	if expr == "" {
		panic(fmt.Sprintf("filtering: filter %q: client expression is required", id))
	}
	return declaration{
		id:      id,
		nameRef: nameRef,
		expr:    expr,
		options: options,
	}
}

func (d *declaration) ID() string {
	return d.id
}

func (d *declaration) Options() []Option {
	out := make([]Option, len(d.options))
	copy(out, d.options)
	return out
}

func (d *declaration) descriptor(kind Kind) Descriptor {
	return Descriptor{
		ID:     d.id,
		Fnc:    d.expr,
		Type:   kind,
		Values: optionNames(d.options),
	}
}

// controlID returns the DOM id of an option-level control.
func (d *declaration) controlID(parts ...string) string {
	id := "filter-" + d.id
	for _, p := range parts {
		id += "-" + p
	}
	return id
}

// Slider declares a range filter over an ordinal enum. get reports false when
// the item has no value for the attribute.
func Slider[T any, E ~int](
	id, nameRef string,
	table enum.Table[E],
	get func(T) (E, bool),
	expr ClientExpr,
) Filter[T] {
	if get == nil {
		panic(fmt.Sprintf("filtering: filter %q: accessor is required", id))
	}
	options := requireOptions(id, table)
	return &rangeFilter[T]{
		declaration: newDeclaration(id, nameRef, expr, options),
		value: func(item T) (int, bool) {
			v, ok := get(item)
			return int(v), ok
		},
	}
}

// Checkboxes declares a multi-choice filter over a single-valued enum. get
// reports false when the item has no value for the attribute.
func Checkboxes[T any, E ~int](
	id, nameRef string,
	table enum.Table[E],
	get func(T) (E, bool),
	expr ClientExpr,
) Filter[T] {
	if get == nil {
		panic(fmt.Sprintf("filtering: filter %q: accessor is required", id))
	}
	options := requireOptions(id, table)
	return &choiceFilter[T]{
		declaration: newDeclaration(id, nameRef, expr, options),
		value: func(item T) (string, bool) {
			v, ok := get(item)
			if !ok {
				return "", false
			}
			return table.String(v), true
		},
	}
}

// Flags declares a flag filter over a bit-flag enum. get returns the item's mask.
func Flags[T any, E ~int](
	id, nameRef string,
	table enum.Table[E],
	get func(T) E,
	expr ClientExpr,
) Filter[T] {
	if get == nil {
		panic(fmt.Sprintf("filtering: filter %q: accessor is required", id))
	}
	options := requireOptions(id, table)
	return &flagsFilter[T]{
		declaration: newDeclaration(id, nameRef, expr, options),
		mask: func(item T) int {
			return int(get(item))
		},
	}
}

func requireOptions[E ~int](id string, table enum.Table[E]) []Option {
	if table == nil {
		panic(fmt.Sprintf("filtering: filter %q: enum table is required", id))
	}
	return ExtractOptions(table)
}
