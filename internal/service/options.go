package service

import (
	"fmt"
	"strings"
)

// Option is a function that sets an option for service operations
type Option func(o any) error

type languagesOption interface {
	setLanguages(languages []string) error
}

type limitOption interface {
	setLimit(limit int) error
}

// RenderFiltersOptions is the options for the RenderFilters operation
type RenderFiltersOptions struct {
	// Languages are language codes or Accept-Language values, most preferred first
	Languages []string
}

//nolint:unparam
func (o *RenderFiltersOptions) setLanguages(languages []string) error {
	o.Languages = append(o.Languages, languages...)
	return nil
}

// SearchModulesOptions is the options for the SearchModules operation
type SearchModulesOptions struct {
	// Limit caps the number of returned modules; zero returns all of them
	Limit int
}

//nolint:unparam
func (o *SearchModulesOptions) setLimit(limit int) error {
	o.Limit = limit
	return nil
}

// WithLanguages adds language preferences for the RenderFilters operation.
// Blank preferences are dropped; at least one must remain.
func WithLanguages(preferences ...string) Option {
	return func(o any) error {
		var languages []string
		for _, p := range preferences {
			if p = strings.TrimSpace(p); p != "" {
				languages = append(languages, p)
			}
		}
		if len(languages) == 0 {
			return fmt.Errorf("invalid languages: %q", preferences)
		}

		switch o := o.(type) {
		case languagesOption:
			return o.setLanguages(languages)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// WithLimit sets the limit for the SearchModules operation
func WithLimit(limit int) Option {
	return func(o any) error {
		if limit <= 0 {
			return fmt.Errorf("invalid limit: %d", limit)
		}

		switch o := o.(type) {
		case limitOption:
			return o.setLimit(limit)
		default:
			return fmt.Errorf("invalid option type: %T", o)
		}
	}
}

// Apply applies opts to target, stopping at the first error.
func Apply(target any, opts ...Option) error {
	for _, opt := range opts {
		if err := opt(target); err != nil {
			return err
		}
	}
	return nil
}
