package filtering

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tidwall/gjson"
	"golang.org/x/net/html"
)

// Group names exposed to the page.
const (
	GroupPrimary   = "primary"
	GroupSecondary = "secondary"
	GroupAll       = "all"
)

// ErrUnknownGroup is returned when a filter group name is not recognised.
var ErrUnknownGroup = errors.New("unknown filter group")

// Registry is the validated, ordered set of filters shown together on a page.
// It is built once and read-only afterwards.
type Registry[T any] struct {
	primary   []Filter[T]
	secondary []Filter[T]
	all       []Filter[T]

	descriptors map[string][]Descriptor
}

// NewRegistry validates the two filter groups and builds the registry. Filter
// ids must be unique across both groups and accelerators unique within each filter.
func NewRegistry[T any](primary, secondary []Filter[T]) (*Registry[T], error) {
	primary = slices.Clone(primary)
	secondary = slices.Clone(secondary)
	all := slices.Concat(primary, secondary)

	var errs []error
	ids := make(map[string]bool, len(all))
	for i, f := range all {
		if f == nil {
			errs = append(errs, fmt.Errorf("filter[%d]: nil filter", i))
			continue
		}
		if ids[f.ID()] {
			errs = append(errs, fmt.Errorf("filter[%d]: duplicate filter id '%s'", i, f.ID()))
		}
		ids[f.ID()] = true
		if dups := DuplicateAccelerators(f.Options()); len(dups) > 0 {
			errs = append(errs, fmt.Errorf("filter '%s': duplicate accelerators %q", f.ID(), string(dups)))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	r := &Registry[T]{
		primary:   primary,
		secondary: secondary,
		all:       all,
	}
	r.descriptors = map[string][]Descriptor{
		GroupPrimary:   describe(primary),
		GroupSecondary: describe(secondary),
		GroupAll:       describe(all),
	}
	return r, nil
}

func describe[T any](filters []Filter[T]) []Descriptor {
	out := make([]Descriptor, 0, len(filters))
	for _, f := range filters {
		out = append(out, f.Descriptor())
	}
	return out
}

// Group returns the filters of the named group. GroupAll, or the empty name,
// selects every filter.
func (r *Registry[T]) Group(name string) ([]Filter[T], error) {
	switch name {
	case GroupPrimary:
		return slices.Clone(r.primary), nil
	case GroupSecondary:
		return slices.Clone(r.secondary), nil
	case GroupAll, "":
		return slices.Clone(r.all), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, name)
}

// Filters returns every filter, primary group first.
func (r *Registry[T]) Filters() []Filter[T] {
	return slices.Clone(r.all)
}

// Descriptors returns the descriptors of the named group.
func (r *Registry[T]) Descriptors(group string) ([]Descriptor, error) {
	if group == "" {
		group = GroupAll
	}
	d, ok := r.descriptors[group]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, group)
	}
	return slices.Clone(d), nil
}

// Render builds the control groups of the named group in the given language.
func (r *Registry[T]) Render(group string, loc Localizer) ([]*html.Node, error) {
	filters, err := r.Group(group)
	if err != nil {
		return nil, err
	}
	nodes := make([]*html.Node, 0, len(filters))
	for _, f := range filters {
		nodes = append(nodes, f.Render(loc))
	}
	return nodes, nil
}

// Match reports whether item passes every filter. state holds the client
// state of each filter keyed by filter id; filters without an entry are
// evaluated against a missing value, which never excludes anything. On
// rejection the id of the first failing filter is returned.
func (r *Registry[T]) Match(item T, state gjson.Result) (bool, string) {
	for _, f := range r.all {
		if !f.Matches(item, state.Get(gjson.Escape(f.ID()))) {
			return false, f.ID()
		}
	}
	return true, ""
}
