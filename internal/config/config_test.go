package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/timerpairs/internal/config"
	"github.com/mpyw/timerpairs/internal/report"
	"github.com/mpyw/timerpairs/internal/scope"
	"github.com/mpyw/timerpairs/internal/timer"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	assert.Equal(t, []string{"console"}, cfg.ObjectNames)
	assert.Equal(t, scope.File, cfg.Scope)
	assert.Equal(t, "time", cfg.StartMethod)
	assert.Equal(t, "timeEnd", cfg.EndMethod)
	assert.Equal(t, report.SeverityError, cfg.Severity)
	assert.Contains(t, cfg.Extensions, ".js")
	assert.Contains(t, cfg.Exclude, "node_modules")
	require.NoError(t, cfg.Validate())

	assert.Equal(t, timer.DefaultOptions(), cfg.Options())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(strings.NewReader(`
objectNames: [perf, console]
scope: SameRootFunction
severity: warning
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"perf", "console"}, cfg.ObjectNames)
	assert.Equal(t, scope.SameRootFunction, cfg.Scope)
	assert.Equal(t, report.SeverityWarning, cfg.Severity)
	assert.Equal(t, "time", cfg.StartMethod, "unset fields keep defaults")

	opts := cfg.Options()
	assert.Equal(t, scope.SameRootFunction, opts.Scope)
	assert.Equal(t, timer.DefaultMethods, opts.Methods)
}

func TestLoad_Empty(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)
}

func TestLoad_EmptyObjectNames(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(strings.NewReader(`objectNames: []`))
	require.NoError(t, err)
	assert.Empty(t, cfg.ObjectNames, "an explicit empty list disables every receiver")
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown scope", yaml: `scope: Block`},
		{name: "lowercase scope", yaml: `scope: file`},
		{name: "object names not a list", yaml: `objectNames: console`},
		{name: "object name not a string", yaml: `objectNames: [1]`},
		{name: "unknown option", yaml: `allowDuplicates: true`},
		{name: "same start and end", yaml: "startMethod: mark\nendMethod: mark"},
		{name: "empty start method", yaml: `startMethod: ""`},
		{name: "bad severity", yaml: `severity: fatal`},
		{name: "bad extension", yaml: `extensions: [js]`},
		{name: "not a mapping", yaml: `- console`},
		{name: "broken yaml", yaml: "scope: [File"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(strings.NewReader(tt.yaml))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("scope: SameFunction\n"), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, scope.SameFunction, cfg.Scope)

	cfg, err = config.LoadDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, scope.SameFunction, cfg.Scope)

	_, err = config.LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	cfg, err = config.LoadDefault(t.TempDir())
	require.NoError(t, err, "missing default file falls back to defaults")
	assert.Equal(t, config.New(), cfg)
}

func TestSchema(t *testing.T) {
	t.Parallel()

	var schema struct {
		Properties map[string]any `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(config.Schema(), &schema))

	for _, key := range []string{"objectNames", "scope", "startMethod", "endMethod", "severity", "extensions", "exclude"} {
		assert.Contains(t, schema.Properties, key)
	}
}
