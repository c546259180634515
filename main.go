package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"listslider/internal/config"
	"listslider/internal/ui"
)

var sampleItems = []string{
	"Sunrise over the harbour",
	"Market street at noon",
	"Old lighthouse",
	"Fishing boats",
	"Evening tide",
	"Night skyline",
}

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", ".listslider.toml", "Options file")
	flag.StringVar(&configPath, "c", ".listslider.toml", "Options file (shorthand)")
	flag.Int(config.KeySlideSpeed, 0, "Slide animation duration in ms")
	flag.Int(config.KeySlideDelay, 0, "Delay between automatic slides in ms")
	flag.Int(config.KeyItemsPerViewport, 0, "Number of visible items")
	flag.Bool(config.KeyLoop, false, "Wrap around at both ends")
	flag.Bool(config.KeyAutoSlide, false, "Advance automatically")
	flag.Bool(config.KeyNoCSS, false, "Do not draw card borders or the viewport frame")
	flag.Bool(config.KeyDebug, false, "Write debug diagnostics to the log file")
	flag.Parse()

	items := flag.Args()
	if len(items) == 0 {
		items = sampleItems
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Printf("Error loading options: %v\n", err)
		os.Exit(1)
	}

	// Set up logging; the terminal belongs to the UI
	logger, err := newLogger("listslider.log", cfg.Debug)
	if err != nil {
		fmt.Printf("Could not open log file: %v\n", err)
		logger = zap.NewNop()
	}
	defer logger.Sync()

	model, err := ui.NewModel(items, cfg, logger)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", zap.Int("items", len(items)), zap.Any("config", cfg))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", zap.Error(err))
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the options file and applies the flags given explicitly
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	overrides := make(map[string]any)
	flag.Visit(func(f *flag.Flag) {
		if getter, ok := f.Value.(flag.Getter); ok {
			overrides[f.Name] = getter.Get()
		}
	})
	return config.Resolve(cfg, overrides)
}

func newLogger(path string, debug bool) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}
