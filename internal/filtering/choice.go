package filtering

import (
	"github.com/tidwall/gjson"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// choiceFilter lets the user pick which values of a single-valued attribute are allowed.
type choiceFilter[T any] struct {
	declaration
	value func(T) (string, bool)
}

var _ Filter[struct{}] = (*choiceFilter[struct{}])(nil)

func (*choiceFilter[T]) Kind() Kind {
	return KindMultiChoice
}

func (f *choiceFilter[T]) Descriptor() Descriptor {
	return f.descriptor(KindMultiChoice)
}

// Render emits one checkbox per option.
func (f *choiceFilter[T]) Render(loc Localizer) *html.Node {
	rows := make([]*html.Node, 0, len(f.options))
	for _, o := range f.options {
		id := f.controlID(o.Name)
		rows = append(rows, element(atom.Div, nil,
			element(atom.Input, attrs("type", "checkbox", "class", "filter", "id", id)),
			text(" "),
			element(atom.Label,
				attrs("for", id, "accesskey", accessKey(o.Accel), "title", lookupOptional(loc, o.ExplainRef)),
				accelLabel(loc.Lookup(o.LabelRef), o.Accel)...),
		))
	}
	return optionGroup(loc.Lookup(f.nameRef), rows...)
}

// Matches accepts items without a value, items whose value is checked, and
// every item when nothing at all is checked.
func (f *choiceFilter[T]) Matches(item T, state gjson.Result) bool {
	name, ok := f.value(item)
	if !ok {
		return true
	}
	if !state.IsObject() {
		return true
	}
	if state.Get(gjson.Escape(name)).Bool() {
		return true
	}
	anyChecked := false
	state.ForEach(func(_, v gjson.Result) bool {
		if v.Bool() {
			anyChecked = true
			return false
		}
		return true
	})
	return !anyChecked
}

func lookupOptional(loc Localizer, ref string) string {
	if ref == "" {
		return ""
	}
	return loc.Lookup(ref)
}
