// Package v1 provides the filter API v1 endpoints.
package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ktane-web/filter-server/internal/api/common"
	"github.com/ktane-web/filter-server/internal/filtering"
	"github.com/ktane-web/filter-server/internal/service"
)

// MaxStateBytes caps the size of a search request body.
const MaxStateBytes = 1 << 20

// ScriptGlobal is the global the descriptor script assigns the filter list to.
const ScriptGlobal = "filters"

// Routes handles HTTP requests for the filter API v1 endpoints.
type Routes struct {
	service service.FilterService
}

// NewRoutes creates a new Routes instance with the given service.
func NewRoutes(svc service.FilterService) *Routes {
	return &Routes{
		service: svc,
	}
}

// Router creates the HTTP router for the filter API v1 endpoints.
func Router(svc service.FilterService) http.Handler {
	routes := NewRoutes(svc)

	r := chi.NewRouter()

	r.Get("/catalog", routes.getCatalog)
	r.Get("/filters", routes.listFilters)
	r.Get("/filters.js", routes.filtersScript)
	r.Get("/filters/html", routes.renderFilters)
	r.Post("/modules/search", routes.searchModules)

	return r
}

// getCatalog handles GET /api/v1/catalog
func (routes *Routes) getCatalog(w http.ResponseWriter, r *http.Request) {
	info, err := routes.service.CatalogInfo(r.Context())
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, info, http.StatusOK)
}

// listFilters handles GET /api/v1/filters
//
// The client expression of each filter is a JSON string here.
func (routes *Routes) listFilters(w http.ResponseWriter, r *http.Request) {
	descriptors, ok := routes.descriptors(w, r)
	if !ok {
		return
	}
	common.WriteJSONResponse(w, descriptors, http.StatusOK)
}

// filtersScript handles GET /api/v1/filters.js
//
// The script embeds client expressions as code, ready for the page runtime.
func (routes *Routes) filtersScript(w http.ResponseWriter, r *http.Request) {
	descriptors, ok := routes.descriptors(w, r)
	if !ok {
		return
	}
	common.WriteBody(w, "text/javascript; charset=utf-8", Script(descriptors))
}

// Script returns the statement assigning descriptors to the page global.
func Script(descriptors []filtering.Descriptor) []byte {
	script := []byte("window." + ScriptGlobal + " = ")
	script = filtering.AppendScript(script, descriptors)
	return append(script, ";\n"...)
}

func (routes *Routes) descriptors(w http.ResponseWriter, r *http.Request) ([]filtering.Descriptor, bool) {
	group, err := common.GetAndValidateQueryParam(r, "group")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	descriptors, err := routes.service.Descriptors(r.Context(), group)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return nil, false
	}
	return descriptors, true
}

// renderFilters handles GET /api/v1/filters/html
//
// The lang query parameter takes precedence over Accept-Language.
func (routes *Routes) renderFilters(w http.ResponseWriter, r *http.Request) {
	group, err := common.GetAndValidateQueryParam(r, "group")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	lang, err := common.GetAndValidateQueryParam(r, "lang")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	var opts []service.Option
	if accept := r.Header.Get("Accept-Language"); lang != "" || accept != "" {
		opts = append(opts, service.WithLanguages(lang, accept))
	}

	fragment, err := routes.service.RenderFilters(r.Context(), group, opts...)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Language", fragment.Language)
	w.Header().Add("Vary", "Accept-Language")
	common.WriteBody(w, "text/html; charset=utf-8", fragment.HTML)
}

// searchModules handles POST /api/v1/modules/search
//
// The body is the client filter state, an object keyed by filter id. An empty
// body matches every module.
func (routes *Routes) searchModules(w http.ResponseWriter, r *http.Request) {
	limit, err := common.GetLimitParam(r)
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxStateBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			common.WriteErrorResponse(w, "filter state is too large", http.StatusRequestEntityTooLarge)
			return
		}
		common.WriteErrorResponse(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	var opts []service.Option
	if limit > 0 {
		opts = append(opts, service.WithLimit(limit))
	}

	result, err := routes.service.SearchModules(r.Context(), state, opts...)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, result, http.StatusOK)
}
