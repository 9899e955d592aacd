package filtering

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// rangeFilter selects items whose ordinal value lies in an inclusive range.
type rangeFilter[T any] struct {
	declaration
	value func(T) (int, bool)
}

var _ Filter[struct{}] = (*rangeFilter[struct{}])(nil)

func (*rangeFilter[T]) Kind() Kind {
	return KindRange
}

func (f *rangeFilter[T]) Descriptor() Descriptor {
	return f.descriptor(KindRange)
}

// Render emits the slider container. The interactive widget is attached by the
// page runtime, which reads the ordered positions from data-values.
func (f *rangeFilter[T]) Render(loc Localizer) *html.Node {
	labels := make([]string, 0, len(f.options))
	for _, o := range f.options {
		labels = append(labels, loc.Lookup(o.LabelRef))
	}
	return optionGroup(loc.Lookup(f.nameRef),
		element(atom.Div, attrs(
			"id", f.controlID(),
			"class", "slider",
			"data-values", strings.Join(optionNames(f.options), ","),
			"data-labels", jsonList(labels),
		)),
		element(atom.Div, attrs(
			"id", "filter-label-"+f.id,
			"class", "slider-label",
		)),
	)
}

// Matches accepts items without a value unconditionally. Otherwise the state
// must hold integer "min" and "max" bounds; a missing bound leaves that side
// open and a bound of any other type rejects the item.
func (f *rangeFilter[T]) Matches(item T, state gjson.Result) bool {
	v, ok := f.value(item)
	if !ok {
		return true
	}
	lo, ok := bound(state.Get("min"))
	if !ok {
		return false
	}
	hi, ok := bound(state.Get("max"))
	if !ok {
		return false
	}
	if lo != nil && int64(v) < *lo {
		return false
	}
	if hi != nil && int64(v) > *hi {
		return false
	}
	return true
}

// bound reads an integer bound. It returns nil for a missing bound and false
// when the value cannot be compared with an ordinal.
func bound(r gjson.Result) (*int64, bool) {
	if !r.Exists() || r.Type == gjson.Null {
		return nil, true
	}
	if r.Type != gjson.Number {
		return nil, false
	}
	f := r.Float()
	if f != math.Trunc(f) {
		return nil, false
	}
	// Integral bounds beyond int64 saturate.
	var n int64
	switch {
	case f >= math.MaxInt64:
		n = math.MaxInt64
	case f <= math.MinInt64:
		n = math.MinInt64
	default:
		n = r.Int()
	}
	return &n, true
}

func jsonList(items []string) string {
	// Marshalling a string slice cannot fail.
	b, _ := json.Marshal(items)
	return string(b)
}
