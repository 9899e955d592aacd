package v1_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	v1 "github.com/ktane-web/filter-server/internal/api/v1"
	"github.com/ktane-web/filter-server/internal/catalog"
	"github.com/ktane-web/filter-server/internal/filtering"
	"github.com/ktane-web/filter-server/internal/service"
	"github.com/ktane-web/filter-server/internal/service/mocks"
)

var testDescriptors = []filtering.Descriptor{
	{ID: "type", Fnc: "mod=>mod.Type", Type: filtering.KindMultiChoice, Values: []string{"Regular", "Needy"}},
}

func newMockService(t *testing.T) *mocks.MockFilterService {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return mocks.NewMockFilterService(ctrl)
}

func serve(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestListFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setup      func(*mocks.MockFilterService)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "all groups by default",
			query: "",
			setup: func(m *mocks.MockFilterService) {
				m.EXPECT().Descriptors(gomock.Any(), "").Return(testDescriptors, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"id":"type","fnc":"mod=>mod.Type","type":"multichoice","values":["Regular","Needy"]}]`,
		},
		{
			name:  "named group",
			query: "?group=secondary",
			setup: func(m *mocks.MockFilterService) {
				m.EXPECT().Descriptors(gomock.Any(), "secondary").Return([]filtering.Descriptor{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:  "unknown group",
			query: "?group=other",
			setup: func(m *mocks.MockFilterService) {
				m.EXPECT().Descriptors(gomock.Any(), "other").
					Return(nil, fmt.Errorf("%w: %q", service.ErrUnknownGroup, "other"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"unknown filter group: \"other\""}`,
		},
		{
			name:       "whitespace in group",
			query:      "?group=a%20b",
			setup:      func(*mocks.MockFilterService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"group cannot contain whitespace"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newMockService(t)
			tt.setup(svc)

			rr := serve(t, v1.Router(svc), httptest.NewRequest(http.MethodGet, "/filters"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestFiltersScript(t *testing.T) {
	t.Parallel()

	svc := newMockService(t)
	svc.EXPECT().Descriptors(gomock.Any(), "primary").Return(testDescriptors, nil)

	rr := serve(t, v1.Router(svc), httptest.NewRequest(http.MethodGet, "/filters.js?group=primary", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/javascript; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t,
		`window.filters = [{"id":"type","fnc":mod=>mod.Type,"type":"multichoice","values":["Regular","Needy"]}];`+"\n",
		rr.Body.String())
}

func TestRenderFilters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		target        string
		acceptLang    string
		wantGroup     string
		wantLanguages []string
	}{
		{name: "no preference", target: "/filters/html?group=primary", wantGroup: "primary"},
		{name: "header only", target: "/filters/html", acceptLang: "de-DE,de;q=0.9", wantGroup: "", wantLanguages: []string{"de-DE,de;q=0.9"}},
		{name: "query beats header", target: "/filters/html?group=all&lang=fr", acceptLang: "de", wantGroup: "all", wantLanguages: []string{"fr", "de"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newMockService(t)
			svc.EXPECT().RenderFilters(gomock.Any(), tt.wantGroup, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, opts ...service.Option) (*service.Fragment, error) {
					options := &service.RenderFiltersOptions{}
					if err := service.Apply(options, opts...); err != nil {
						return nil, err
					}
					assert.Equal(t, tt.wantLanguages, options.Languages)
					return &service.Fragment{Language: "de", HTML: []byte(`<div class="option-group"></div>`)}, nil
				})

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.acceptLang != "" {
				req.Header.Set("Accept-Language", tt.acceptLang)
			}
			rr := serve(t, v1.Router(svc), req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Equal(t, "Accept-Language", rr.Header().Get("Vary"))
			assert.Equal(t, "de", rr.Header().Get("Content-Language"))
			assert.Equal(t, `<div class="option-group"></div>`, rr.Body.String())
		})
	}
}

func TestSearchModules(t *testing.T) {
	t.Parallel()

	wires := &catalog.Module{Name: "Wires", ModuleID: "Wires", Type: catalog.Regular}

	tests := []struct {
		name       string
		target     string
		body       string
		setup      func(*mocks.MockFilterService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "matches",
			target: "/modules/search",
			body:   `{"type":{"Regular":true}}`,
			setup: func(m *mocks.MockFilterService) {
				m.EXPECT().SearchModules(gomock.Any(), []byte(`{"type":{"Regular":true}}`)).
					Return(&service.SearchResult{Version: "1.0.0", Count: 1, Modules: []*catalog.Module{wires}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "limit is passed as an option",
			target: "/modules/search?limit=5",
			body:   `{}`,
			setup: func(m *mocks.MockFilterService) {
				m.EXPECT().SearchModules(gomock.Any(), []byte(`{}`), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ []byte, opts ...service.Option) (*service.SearchResult, error) {
						options := &service.SearchModulesOptions{}
						if err := service.Apply(options, opts...); err != nil {
							return nil, err
						}
						return &service.SearchResult{Version: "1.0.0", Count: options.Limit, Modules: []*catalog.Module{}}, nil
					})
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"version":"1.0.0","count":5,"modules":[]}`,
		},
		{
			name:       "invalid limit",
			target:     "/modules/search?limit=none",
			body:       `{}`,
			setup:      func(*mocks.MockFilterService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid limit parameter: must be a positive integer"}`,
		},
		{
			name:   "malformed state",
			target: "/modules/search",
			body:   `{"type":`,
			setup: func(m *mocks.MockFilterService) {
				m.EXPECT().SearchModules(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: malformed JSON", service.ErrInvalidState))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid filter state: malformed JSON"}`,
		},
		{
			name:   "catalog not loaded",
			target: "/modules/search",
			body:   ``,
			setup: func(m *mocks.MockFilterService) {
				m.EXPECT().SearchModules(gomock.Any(), gomock.Any()).Return(nil, service.ErrNotReady)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":"catalog not loaded"}`,
		},
		{
			name:       "body too large",
			target:     "/modules/search",
			body:       `{"x":"` + strings.Repeat("a", v1.MaxStateBytes) + `"}`,
			setup:      func(*mocks.MockFilterService) {},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   `{"error":"filter state is too large"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newMockService(t)
			tt.setup(svc)

			req := httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(tt.body))
			rr := serve(t, v1.Router(svc), req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
				return
			}
			var result service.SearchResult
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&result))
			assert.Equal(t, 1, result.Count)
			require.Len(t, result.Modules, 1)
			assert.Equal(t, "Wires", result.Modules[0].ModuleID)
		})
	}
}

func TestGetCatalog(t *testing.T) {
	t.Parallel()

	svc := newMockService(t)
	svc.EXPECT().CatalogInfo(gomock.Any()).Return(&service.CatalogInfo{Version: "3.0.0", Modules: 42}, nil)

	rr := serve(t, v1.Router(svc), httptest.NewRequest(http.MethodGet, "/catalog", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"3.0.0","modules":42}`, rr.Body.String())
}

func TestHealthRouter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		ready      error
		wantStatus int
		wantBody   string
	}{
		{name: "health", path: "/health", wantStatus: http.StatusOK, wantBody: `{"status":"healthy"}`},
		{name: "ready", path: "/readiness", wantStatus: http.StatusOK, wantBody: `{"status":"ready"}`},
		{name: "not ready", path: "/readiness", ready: service.ErrNotReady, wantStatus: http.StatusServiceUnavailable,
			wantBody: `{"error":"FilterService not ready: catalog not loaded"}`},
		{name: "version", path: "/version", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newMockService(t)
			svc.EXPECT().CheckReadiness(gomock.Any()).Return(tt.ready).AnyTimes()

			rr := serve(t, v1.HealthRouter(svc), httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
				return
			}
			var info map[string]string
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&info))
			assert.Contains(t, info, "version")
			assert.Contains(t, info, "go_version")
		})
	}
}
