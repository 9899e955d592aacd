// Package service provides the business logic of the filter API
package service

import (
	"context"
	"errors"

	"github.com/ktane-web/filter-server/internal/catalog"
	"github.com/ktane-web/filter-server/internal/filtering"
)

var (
	// ErrNotReady is returned while no catalog has been loaded
	ErrNotReady = errors.New("catalog not loaded")
	// ErrUnknownGroup is returned for a filter group other than primary, secondary or all
	ErrUnknownGroup = errors.New("unknown filter group")
	// ErrInvalidState is returned when the client filter state is not a JSON object
	ErrInvalidState = errors.New("invalid filter state")
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks -source=service.go FilterService

// FilterService defines the operations behind the filter API
type FilterService interface {
	// CheckReadiness reports whether a catalog is being served
	CheckReadiness(ctx context.Context) error

	// CatalogInfo describes the served catalog
	CatalogInfo(ctx context.Context) (*CatalogInfo, error)

	// Descriptors returns the browser descriptors of a filter group
	Descriptors(ctx context.Context, group string) ([]filtering.Descriptor, error)

	// RenderFilters renders the controls of a filter group in the best matching language
	RenderFilters(ctx context.Context, group string, opts ...Option) (*Fragment, error)

	// SearchModules returns the modules passing every filter of the client state
	SearchModules(ctx context.Context, state []byte, opts ...Option) (*SearchResult, error)
}

// CatalogInfo describes the served catalog.
type CatalogInfo struct {
	Version string `json:"version"`
	Modules int    `json:"modules"`
}

// Fragment is a rendered group of filter controls.
type Fragment struct {
	// Language is the code of the translation used for the labels
	Language string
	HTML     []byte
}

// SearchResult is the outcome of a module search.
type SearchResult struct {
	// Version of the catalog that was searched
	Version string `json:"version"`
	// Count is the number of matching modules, before any limit
	Count   int               `json:"count"`
	Modules []*catalog.Module `json:"modules"`
}
