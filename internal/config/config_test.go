package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listslider/internal/domain"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 500, cfg.SlideSpeedMs)
	assert.Equal(t, 3000, cfg.SlideDelayMs)
	assert.Equal(t, 1, cfg.ItemsPerViewport)
	assert.False(t, cfg.Loop)
	assert.False(t, cfg.AutoSlide)
	assert.False(t, cfg.NoStyling)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 500*time.Millisecond, cfg.SlideSpeed())
	assert.Equal(t, 3*time.Second, cfg.SlideDelay())
}

func TestResolveOverridesDefaults(t *testing.T) {
	cfg, err := Resolve(Default(), map[string]any{
		"slide_speed":        200,
		"loop":               true,
		"items_per_viewport": int64(3),
		"auto_slide":         true,
		"no_css":             true,
	})
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.SlideSpeedMs)
	assert.Equal(t, 3000, cfg.SlideDelayMs, "unset keys keep defaults")
	assert.True(t, cfg.Loop)
	assert.Equal(t, 3, cfg.ItemsPerViewport)
	assert.True(t, cfg.AutoSlide)
	assert.True(t, cfg.NoStyling)
}

func TestResolveIgnoresUnknownKeys(t *testing.T) {
	cfg, err := Resolve(Default(), map[string]any{"transition": "fade", "slide_delay": 10.0})
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.SlideDelayMs)
}

func TestResolveRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		options map[string]any
		option  string
	}{
		{"zero items per viewport", map[string]any{"items_per_viewport": 0}, KeyItemsPerViewport},
		{"negative items per viewport", map[string]any{"items_per_viewport": -2}, KeyItemsPerViewport},
		{"negative speed", map[string]any{"slide_speed": -1}, KeySlideSpeed},
		{"negative delay", map[string]any{"slide_delay": -1}, KeySlideDelay},
		{"fractional speed", map[string]any{"slide_speed": 1.5}, KeySlideSpeed},
		{"string bool", map[string]any{"loop": "yes"}, KeyLoop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defaults := Default()
			cfg, err := Resolve(defaults, tt.options)
			require.Error(t, err)

			var cfgErr *domain.ConfigurationError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.option, cfgErr.Option)
			assert.Equal(t, defaults, cfg)
		})
	}
}

func TestResolveRejectsOutOfRangeNumbers(t *testing.T) {
	for _, value := range []any{1e19, -1e19, math.Inf(1)} {
		_, err := Resolve(Default(), map[string]any{KeySlideSpeed: value})

		var cfgErr *domain.ConfigurationError
		require.True(t, errors.As(err, &cfgErr), "value %v", value)
		assert.Equal(t, "out of range", cfgErr.Reason)
	}

	_, err := Parse([]byte("slide_delay = 1e19"))
	var cfgErr *domain.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, KeySlideDelay, cfgErr.Option)
	assert.Equal(t, "out of range", cfgErr.Reason)
}

func TestParseTOML(t *testing.T) {
	cfg, err := Parse([]byte(`
slide_speed = 250
slide_delay = 1000
loop = true
items_per_viewport = 2
debug = true
theme = "dark"
`))
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.SlideSpeedMs)
	assert.Equal(t, 1000, cfg.SlideDelayMs)
	assert.True(t, cfg.Loop)
	assert.Equal(t, 2, cfg.ItemsPerViewport)
	assert.True(t, cfg.Debug)
}

func TestParseInvalidTOML(t *testing.T) {
	_, err := Parse([]byte("slide_speed = = 3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, ".listslider.toml")
	require.NoError(t, os.WriteFile(path, []byte("auto_slide = true\nslide_delay = 50\n"), 0644))

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.AutoSlide)
	assert.Equal(t, 50, cfg.SlideDelayMs)
}
