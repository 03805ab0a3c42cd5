package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akrennmair/pico/pico2go"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, pico2go.DefaultRuntime, cfg.Build.Runtime)
	assert.Equal(t, pico2go.DefaultHeader, cfg.Build.Header)
	assert.Empty(t, cfg.Path)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoad(t *testing.T) {
	testData := []struct {
		name     string
		content  string
		expected Config
	}{
		{
			name:     "empty file",
			content:  "",
			expected: Default(),
		},
		{
			name: "all settings",
			content: `[build]
runtime = "example.com/runtime"
header = "generated"

[log]
level = "debug"
`,
			expected: Config{
				Build: BuildConfig{Runtime: "example.com/runtime", Header: "generated"},
				Log:   LogConfig{Level: "debug"},
			},
		},
		{
			name:    "empty header",
			content: "[build]\nheader = \"\"\n",
			expected: Config{
				Build: BuildConfig{Runtime: pico2go.DefaultRuntime, Header: ""},
				Log:   LogConfig{Level: "info"},
			},
		},
		{
			name:    "only log level",
			content: "[log]\nlevel = \"WARN\"\n",
			expected: Config{
				Build: BuildConfig{Runtime: pico2go.DefaultRuntime, Header: pico2go.DefaultHeader},
				Log:   LogConfig{Level: "WARN"},
			},
		},
	}

	for _, tt := range testData {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)

			cfg, err := Load(path)
			require.NoError(t, err)

			tt.expected.Path = path
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	testData := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "invalid TOML",
			content: "[build\n",
			errMsg:  "failed to parse TOML",
		},
		{
			name:    "unknown key",
			content: "[build]\noutput = \"x\"\n",
			errMsg:  "unknown keys build.output",
		},
		{
			name:    "empty runtime",
			content: "[build]\nruntime = \" \"\n",
			errMsg:  "[build].runtime must not be empty",
		},
		{
			name:    "invalid level",
			content: "[log]\nlevel = \"loud\"\n",
			errMsg:  "invalid [log].level",
		},
		{
			name:    "wrong type",
			content: "[log]\nlevel = 3\n",
			errMsg:  "failed to parse TOML",
		},
	}

	for _, tt := range testData {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	_, ok, err := Find(nested)
	require.NoError(t, err)
	// there could be a pico.toml somewhere above the temp dir, but not below root.
	if ok {
		t.Skip("found a pico.toml outside of the test directory")
	}

	path := writeConfig(t, root, "")

	found, ok, err := Find(nested)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, path, found)

	found, ok, err = Find(root)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, path, found)
}

func TestResolve(t *testing.T) {
	root := t.TempDir()

	explicit := filepath.Join(root, "custom.toml")
	require.NoError(t, os.WriteFile(explicit, []byte("[log]\nlevel = \"error\"\n"), 0644))

	cfg, err := Resolve(explicit, "")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, explicit, cfg.Path)

	path := writeConfig(t, root, "[build]\nheader = \"hi\"\n")

	cfg, err = Resolve("", root)
	require.NoError(t, err)
	assert.Equal(t, "hi", cfg.Build.Header)
	assert.Equal(t, path, cfg.Path)

	_, err = Resolve(filepath.Join(root, "missing.toml"), root)
	require.Error(t, err)
}
