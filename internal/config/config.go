package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"listslider/internal/domain"
)

// Option keys recognized by Resolve
const (
	KeySlideSpeed       = "slide_speed"
	KeySlideDelay       = "slide_delay"
	KeyLoop             = "loop"
	KeyItemsPerViewport = "items_per_viewport"
	KeyAutoSlide        = "auto_slide"
	KeyNoCSS            = "no_css"
	KeyDebug            = "debug"
)

// Config represents the slider configuration. It is treated as read-only
// once a slider has been built from it.
type Config struct {
	SlideSpeedMs     int  `toml:"slide_speed"`
	SlideDelayMs     int  `toml:"slide_delay"`
	Loop             bool `toml:"loop"`
	ItemsPerViewport int  `toml:"items_per_viewport"`
	AutoSlide        bool `toml:"auto_slide"`
	NoStyling        bool `toml:"no_css"`
	Debug            bool `toml:"debug"`
}

// Default returns the documented defaults
func Default() Config {
	return Config{
		SlideSpeedMs:     500,
		SlideDelayMs:     3000,
		Loop:             false,
		ItemsPerViewport: 1,
		AutoSlide:        false,
		NoStyling:        false,
		Debug:            false,
	}
}

// SlideSpeed returns the animation duration of one transition
func (c Config) SlideSpeed() time.Duration {
	return time.Duration(c.SlideSpeedMs) * time.Millisecond
}

// SlideDelay returns the autoplay delay between two transitions
func (c Config) SlideDelay() time.Duration {
	return time.Duration(c.SlideDelayMs) * time.Millisecond
}

// Validate checks that every value is usable by the slider
func (c Config) Validate() error {
	if c.ItemsPerViewport <= 0 {
		return &domain.ConfigurationError{Option: KeyItemsPerViewport, Value: c.ItemsPerViewport, Reason: "must be at least 1"}
	}
	if c.SlideSpeedMs < 0 {
		return &domain.ConfigurationError{Option: KeySlideSpeed, Value: c.SlideSpeedMs, Reason: "must not be negative"}
	}
	if c.SlideDelayMs < 0 {
		return &domain.ConfigurationError{Option: KeySlideDelay, Value: c.SlideDelayMs, Reason: "must not be negative"}
	}
	return nil
}

// Resolve merges user options over defaults. Unrecognized keys are ignored.
// The defaults are not modified.
func Resolve(defaults Config, options map[string]any) (Config, error) {
	cfg := defaults
	for key, value := range options {
		var err error
		switch key {
		case KeySlideSpeed:
			cfg.SlideSpeedMs, err = toInt(key, value)
		case KeySlideDelay:
			cfg.SlideDelayMs, err = toInt(key, value)
		case KeyItemsPerViewport:
			cfg.ItemsPerViewport, err = toInt(key, value)
		case KeyLoop:
			cfg.Loop, err = toBool(key, value)
		case KeyAutoSlide:
			cfg.AutoSlide, err = toBool(key, value)
		case KeyNoCSS:
			cfg.NoStyling, err = toBool(key, value)
		case KeyDebug:
			cfg.Debug, err = toBool(key, value)
		}
		if err != nil {
			return defaults, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return defaults, err
	}
	return cfg, nil
}

// Load reads options from a TOML file and resolves them over the defaults.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse resolves TOML encoded options over the defaults
func Parse(data []byte) (Config, error) {
	options := make(map[string]any)
	if err := toml.Unmarshal(data, &options); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	return Resolve(Default(), options)
}

func toInt(key string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		if v < math.MinInt || v > math.MaxInt {
			return 0, outOfRange(key, value)
		}
		return int(v), nil
	case int32:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			break
		}
		if v < math.MinInt || v >= -float64(math.MinInt) {
			return 0, outOfRange(key, value)
		}
		return int(v), nil
	}
	return 0, &domain.ConfigurationError{Option: key, Value: value, Reason: "expected an integer"}
}

func outOfRange(key string, value any) error {
	return &domain.ConfigurationError{Option: key, Value: value, Reason: "out of range"}
}

func toBool(key string, value any) (bool, error) {
	if v, ok := value.(bool); ok {
		return v, nil
	}
	return false, &domain.ConfigurationError{Option: key, Value: value, Reason: "expected a boolean"}
}
