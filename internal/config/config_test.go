package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/basics/internal/config"
	"github.com/marcodamonte/basics/internal/runner"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "basics.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
banner: rule
color: never
log_level: debug
group_headings: always
topics:
  - conversion
  - custom_types/enum_c
`)

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "rule", cfg.Banner)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, []string{"conversion", "custom_types/enum_c"}, cfg.Topics)
	assert.Equal(t, runner.HeadingsAlways, cfg.Headings())

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_OverridesWin(t *testing.T) {
	path := writeFile(t, "banner: rule\ncolor: always\n")

	cfg, err := config.Load(path, map[string]any{"banner": "hash"})
	require.NoError(t, err)

	assert.Equal(t, "hash", cfg.Banner)
	assert.Equal(t, "always", cfg.Color)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"banner":      "banner: stars\n",
		"color":       "color: sometimes\n",
		"level":       "log_level: loud\n",
		"headings":    "group_headings: maybe\n",
		"unknown key": "bannr: hash\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, body), nil)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := config.Load(writeFile(t, "banner: [unterminated\n"), nil)
	assert.Error(t, err)
}
