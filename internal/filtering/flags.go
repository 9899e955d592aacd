package filtering

import (
	"github.com/tidwall/gjson"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Flag constraint values found in the client state.
const (
	flagRequired  = "y"
	flagForbidden = "n"
	flagEither    = "e"
)

// flagsFilter constrains each bit of a flag attribute independently.
type flagsFilter[T any] struct {
	declaration
	mask func(T) int
}

var _ Filter[struct{}] = (*flagsFilter[struct{}])(nil)

func (*flagsFilter[T]) Kind() Kind {
	return KindFlags
}

func (f *flagsFilter[T]) Descriptor() Descriptor {
	return f.descriptor(KindFlags)
}

// Render emits a table with a yes/no/either radio group per flag.
func (f *flagsFilter[T]) Render(loc Localizer) *html.Node {
	rows := make([]*html.Node, 0, len(f.options))
	for _, o := range f.options {
		group := f.controlID(o.Name)
		rows = append(rows, element(atom.Tr, nil,
			element(atom.Th, attrs("title", lookupOptional(loc, o.ExplainRef)), text(loc.Lookup(o.LabelRef))),
			f.radio(group, flagRequired, loc.Lookup(FlagYesRef)),
			f.radio(group, flagForbidden, loc.Lookup(FlagNoRef)),
			f.radio(group, flagEither, loc.Lookup(FlagEitherRef)),
		))
	}
	return optionGroup(loc.Lookup(f.nameRef), element(atom.Table, nil, rows...))
}

func (*flagsFilter[T]) radio(group, choice, label string) *html.Node {
	id := group + "-" + choice
	return element(atom.Td, nil,
		element(atom.Input, attrs("type", "radio", "class", "filter", "name", group, "id", id)),
		element(atom.Label, attrs("for", id), text(" "+label)),
	)
}

// Matches requires every flag marked "y" to be set and every flag marked "n"
// to be clear. Any other value, or no value, leaves the flag unconstrained.
func (f *flagsFilter[T]) Matches(item T, state gjson.Result) bool {
	mask := f.mask(item)
	for _, o := range f.options {
		has := mask&o.Value != 0
		switch state.Get(gjson.Escape(o.Name)).String() {
		case flagRequired:
			if !has {
				return false
			}
		case flagForbidden:
			if has {
				return false
			}
		}
	}
	return true
}
