package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to write config file")
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		yamlContent string
		want        func(t *testing.T, cfg *Config)
		wantErr     string
	}{
		{
			name: "minimal",
			yamlContent: `
catalog:
  path: ./data/modules.json
`,
			want: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "./data/modules.json", cfg.Catalog.Path)
				assert.False(t, cfg.Catalog.Watch)
				assert.Nil(t, cfg.Translations)
				assert.Nil(t, cfg.Telemetry)
				assert.Equal(t, "", cfg.GetTranslationsDir())
				assert.Equal(t, DefaultLanguage, cfg.GetDefaultLanguage())
				assert.Equal(t, "", cfg.GetAddress())
				assert.Equal(t, DefaultRequestTimeout, cfg.GetRequestTimeout())
			},
		},
		{
			name: "full",
			yamlContent: `
catalog:
  path: /srv/modules.json
  watch: true
translations:
  dir: /srv/translations
  defaultLanguage: de
server:
  address: ":9090"
  requestTimeout: 3s
telemetry:
  enabled: true
  serviceName: filters
  metrics:
    enabled: true
    prometheus: true
  tracing:
    enabled: true
    sampling: 0.5
`,
			want: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.True(t, cfg.Catalog.Watch)
				assert.Equal(t, "/srv/translations", cfg.GetTranslationsDir())
				assert.Equal(t, "de", cfg.GetDefaultLanguage())
				assert.Equal(t, ":9090", cfg.GetAddress())
				assert.Equal(t, 3*time.Second, cfg.GetRequestTimeout())
				require.NotNil(t, cfg.Telemetry)
				assert.Equal(t, "filters", cfg.Telemetry.GetServiceName())
				require.NotNil(t, cfg.Telemetry.Tracing)
				assert.InDelta(t, 0.5, cfg.Telemetry.Tracing.GetSampling(), 1e-9)
				require.NotNil(t, cfg.Telemetry.Metrics)
				assert.True(t, cfg.Telemetry.Metrics.Prometheus)
			},
		},
		{
			name:        "missing catalog path",
			yamlContent: "translations:\n  dir: ./translations\n",
			wantErr:     "catalog.path is required",
		},
		{
			name: "bad default language",
			yamlContent: `
catalog:
  path: modules.json
translations:
  defaultLanguage: "not a tag!"
`,
			wantErr: "translations.defaultLanguage",
		},
		{
			name: "bad request timeout",
			yamlContent: `
catalog:
  path: modules.json
server:
  requestTimeout: soon
`,
			wantErr: "server.requestTimeout",
		},
		{
			name: "negative request timeout",
			yamlContent: `
catalog:
  path: modules.json
server:
  requestTimeout: -1s
`,
			wantErr: "server.requestTimeout must be positive",
		},
		{
			name: "invalid telemetry",
			yamlContent: `
catalog:
  path: modules.json
telemetry:
  enabled: true
  tracing:
    enabled: true
    sampling: 2
`,
			wantErr: "telemetry: tracing",
		},
		{
			name:        "malformed yaml",
			yamlContent: "catalog: [",
			wantErr:     "failed to parse YAML config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := LoadConfig(WithConfigPath(writeConfig(t, tt.yamlContent)))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.want(t, cfg)
		})
	}
}

func TestLoadConfig_JoinsErrors(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte(`
server:
  requestTimeout: never
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog.path is required")
	assert.Contains(t, err.Error(), "server.requestTimeout")
}

func TestLoadConfig_RequiresPath(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig()
	require.EqualError(t, err, "config path is required")
}

func TestWithConfigPath(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("catalog:\n  path: modules.json\n"), 0600))

	linkPath := filepath.Join(tmpDir, "link.yaml")
	require.NoError(t, os.Symlink(configPath, linkPath))

	realPath, err := filepath.EvalSymlinks(configPath)
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		wantPath string
		wantErr  bool
	}{
		{name: "empty path", path: "", wantErr: true},
		{name: "missing file", path: filepath.Join(tmpDir, "absent.yaml"), wantErr: true},
		{name: "path traversal at start", path: "../../../../../../etc/passwd", wantErr: true},
		{name: "path traversal in middle", path: "config/../../etc/passwd", wantErr: true},
		{name: "absolute path", path: configPath, wantPath: realPath},
		{name: "symlink is resolved", path: linkPath, wantPath: realPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &loaderConfig{}
			err := WithConfigPath(tt.path)(cfg)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, cfg.path)
		})
	}
}
