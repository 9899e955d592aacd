package inmemory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/ktane-web/filter-server/internal/catalog"
	"github.com/ktane-web/filter-server/internal/i18n"
	"github.com/ktane-web/filter-server/internal/modfilters"
	"github.com/ktane-web/filter-server/internal/service"
	"github.com/ktane-web/filter-server/internal/telemetry"
)

const testCatalog = `{
  "version": "2.1.0",
  "modules": [
    {"Name": "Wires", "ModuleID": "Wires", "Type": "Regular", "Origin": "Vanilla",
     "Compatibility": "Compatible", "DefuserDifficulty": "VeryEasy", "TwitchPlaysScore": 2},
    {"Name": "Knob", "ModuleID": "NeedyKnob", "Type": "Needy", "Origin": "Vanilla",
     "Compatibility": "Compatible"},
    {"Name": "Forget Me Not", "ModuleID": "MemoryV2", "Type": "Regular", "Origin": "Mods",
     "Compatibility": "Problematic", "DefuserDifficulty": "Hard", "BossStatus": "FullBoss",
     "Quirks": "SolvesAtEnd, InstantDeath"}
  ]
}`

func newTestService(t *testing.T, loaded bool, opts ...Option) service.FilterService {
	t.Helper()

	store := catalog.NewStore(nil)
	if loaded {
		c, err := catalog.Parse([]byte(testCatalog))
		require.NoError(t, err)
		require.NoError(t, store.Replace(c))
	}

	registry, err := modfilters.NewRegistry()
	require.NoError(t, err)

	bundle, err := i18n.NewBundle(i18n.DefaultLanguage, &i18n.Translation{
		Code:    "de",
		Strings: map[string]string{"filterType": "Modultyp"},
	})
	require.NoError(t, err)

	svc, err := New(store, registry, bundle, opts...)
	require.NoError(t, err)
	return svc
}

func moduleIDs(modules []*catalog.Module) []string {
	ids := make([]string, 0, len(modules))
	for _, m := range modules {
		ids = append(ids, m.ModuleID)
	}
	return ids
}

func TestNew_RequiresCollaborators(t *testing.T) {
	t.Parallel()

	registry, err := modfilters.NewRegistry()
	require.NoError(t, err)
	bundle, err := i18n.NewBundle(i18n.DefaultLanguage)
	require.NoError(t, err)
	store := catalog.NewStore(nil)

	_, err = New(nil, registry, bundle)
	assert.ErrorContains(t, err, "catalog store is required")
	_, err = New(store, nil, bundle)
	assert.ErrorContains(t, err, "filter registry is required")
	_, err = New(store, registry, nil)
	assert.ErrorContains(t, err, "translation bundle is required")
}

func TestCheckReadiness(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.ErrorIs(t, newTestService(t, false).CheckReadiness(ctx), service.ErrNotReady)
	assert.NoError(t, newTestService(t, true).CheckReadiness(ctx))
}

func TestCatalogInfo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := newTestService(t, false).CatalogInfo(ctx)
	assert.ErrorIs(t, err, service.ErrNotReady)

	info, err := newTestService(t, true).CatalogInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, &service.CatalogInfo{Version: "2.1.0", Modules: 3}, info)
}

func TestDescriptors(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, false)

	tests := []struct {
		group   string
		count   int
		first   string
		wantErr error
	}{
		{group: "primary", count: 8, first: modfilters.DefuserDifficulty},
		{group: "secondary", count: 4, first: modfilters.MysteryModule},
		{group: "all", count: 12, first: modfilters.DefuserDifficulty},
		{group: "", count: 12, first: modfilters.DefuserDifficulty},
		{group: "tertiary", wantErr: service.ErrUnknownGroup},
	}

	for _, tt := range tests {
		t.Run("group "+tt.group, func(t *testing.T) {
			t.Parallel()

			got, err := svc.Descriptors(context.Background(), tt.group)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.group)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, tt.count)
			assert.Equal(t, tt.first, got[0].ID)
		})
	}
}

func TestRenderFilters(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, false)

	tests := []struct {
		name      string
		group     string
		opts      []service.Option
		wantLang  string
		contains  []string
		excludes  []string
		wantError string
	}{
		{
			name:     "default language",
			group:    "primary",
			wantLang: "en",
			contains: []string{"<h4>Type</h4>", `id="filter-type-Needy"`},
			excludes: []string{"filter-quirks"},
		},
		{
			name:     "accept-language header",
			group:    "primary",
			opts:     []service.Option{service.WithLanguages("de-DE,de;q=0.9,en;q=0.5")},
			wantLang: "de",
			// Strings missing from the German table fall back to English.
			contains: []string{"<h4>Modultyp</h4>", "<h4>Origin</h4>"},
		},
		{
			name:     "explicit language beats header",
			group:    "secondary",
			opts:     []service.Option{service.WithLanguages("en", "de")},
			wantLang: "en",
			contains: []string{`id="filter-quirks-InstantDeath-y"`},
			excludes: []string{"filter-type"},
		},
		{
			name:     "unsupported language falls back",
			group:    "all",
			opts:     []service.Option{service.WithLanguages("ja")},
			wantLang: "en",
		},
		{
			name:      "unknown group",
			group:     "sidebar",
			wantError: "unknown filter group",
		},
		{
			name:      "blank languages",
			group:     "primary",
			opts:      []service.Option{service.WithLanguages(" ", "")},
			wantError: "invalid languages",
		},
		{
			name:      "option of another operation",
			group:     "primary",
			opts:      []service.Option{service.WithLimit(3)},
			wantError: "invalid option type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fragment, err := svc.RenderFilters(context.Background(), tt.group, tt.opts...)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLang, fragment.Language)
			for _, want := range tt.contains {
				assert.Contains(t, string(fragment.HTML), want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, string(fragment.HTML), unwanted)
			}
		})
	}
}

func TestSearchModules(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, true)

	tests := []struct {
		name      string
		state     string
		opts      []service.Option
		wantCount int
		wantIDs   []string
		wantErr   error
	}{
		{name: "empty body", state: "", wantCount: 3, wantIDs: []string{"Wires", "NeedyKnob", "MemoryV2"}},
		{name: "empty object", state: "{}", wantCount: 3, wantIDs: []string{"Wires", "NeedyKnob", "MemoryV2"}},
		{name: "checked type", state: `{"type":{"Needy":true}}`, wantCount: 1, wantIDs: []string{"NeedyKnob"}},
		{name: "nothing checked is a no-op", state: `{"type":{"Regular":false,"Needy":false}}`, wantCount: 3, wantIDs: []string{"Wires", "NeedyKnob", "MemoryV2"}},
		{name: "range keeps modules without a value", state: `{"defdiff":{"min":0,"max":1}}`, wantCount: 2, wantIDs: []string{"Wires", "NeedyKnob"}},
		{name: "required quirk", state: `{"quirks":{"InstantDeath":"y"}}`, wantCount: 1, wantIDs: []string{"MemoryV2"}},
		{name: "excluded quirk", state: `{"quirks":{"SolvesAtEnd":"n"}}`, wantCount: 2, wantIDs: []string{"Wires", "NeedyKnob"}},
		{name: "conjunction across filters", state: `{"origin":{"Vanilla":true},"twitchplays":{"Supported":true}}`, wantCount: 1, wantIDs: []string{"Wires"}},
		{name: "unknown filter ids are ignored", state: `{"color":{"red":true}}`, wantCount: 3, wantIDs: []string{"Wires", "NeedyKnob", "MemoryV2"}},
		{name: "limit keeps the total count", state: "{}", opts: []service.Option{service.WithLimit(1)}, wantCount: 3, wantIDs: []string{"Wires"}},
		{name: "no match", state: `{"type":{"Widget":true}}`, wantCount: 0, wantIDs: []string{}},
		{name: "malformed JSON", state: `{"type":`, wantErr: service.ErrInvalidState},
		{name: "not an object", state: `[1,2]`, wantErr: service.ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := svc.SearchModules(context.Background(), []byte(tt.state), tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2.1.0", result.Version)
			assert.Equal(t, tt.wantCount, result.Count)
			assert.Equal(t, tt.wantIDs, moduleIDs(result.Modules))
		})
	}
}

func TestSearchModules_NotReady(t *testing.T) {
	t.Parallel()

	_, err := newTestService(t, false).SearchModules(context.Background(), []byte("{}"))
	assert.ErrorIs(t, err, service.ErrNotReady)
}

func TestSearchModules_Instrumented(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	metrics, err := telemetry.NewFilterMetrics(mp)
	require.NoError(t, err)

	svc := newTestService(t, true, WithTracer(tp.Tracer(ServiceTracerName)), WithMetrics(metrics))

	_, err = svc.SearchModules(context.Background(), []byte(`{"type":{"Needy":true}}`))
	require.NoError(t, err)
	_, err = svc.SearchModules(context.Background(), []byte(`nope`))
	require.ErrorIs(t, err, service.ErrInvalidState)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "filterService.SearchModules", spans[0].Name)
	attrs := make(map[attribute.Key]attribute.Value)
	for _, a := range spans[0].Attributes {
		attrs[a.Key] = a.Value
	}
	assert.Equal(t, int64(1), attrs["result.count"].AsInt64())
	assert.Equal(t, "2.1.0", attrs["catalog.version"].AsString())
	assert.Len(t, spans[1].Events, 1, "rejected state is recorded as an event")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var excluded map[string]int64
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if m.Name != "filter_api_modules_excluded_total" || !ok {
				continue
			}
			excluded = make(map[string]int64)
			for _, dp := range sum.DataPoints {
				id, _ := dp.Attributes.Value("filter")
				excluded[id.AsString()] = dp.Value
			}
		}
	}
	assert.Equal(t, map[string]int64{modfilters.Type: 2}, excluded)
}
