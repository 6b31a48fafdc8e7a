package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"undercroft/pkg/engine/terminal"
	"undercroft/pkg/game/devtools"
	"undercroft/pkg/game/generator"
	"undercroft/pkg/game/renderer"
	"undercroft/pkg/game/rooms"
)

func initGettext(localesDir, lang string) {
	gotext.Configure(localesDir, lang, "default")
}

// newLogger builds a zap logger writing to stderr. format is "console" or
// "json"; unknown levels fall back to warn.
func newLogger(level, format string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.WarnLevel
	}

	var config zap.Config
	if format == "json" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}

// templateSource picks the catalog file when one is given
func templateSource(path string) rooms.Source {
	if path == "" {
		return rooms.DefaultCatalog()
	}
	return rooms.CatalogFile(path)
}

// options are the parsed command line flags
type options struct {
	seed          int64
	configPath    string
	templatesPath string
	roomCount     int
	cellSize      int
	retries       int
	dumpPath      string
	htmlPath      string
	width         int
}

func main() {
	var opts options
	flag.Int64Var(&opts.seed, "seed", 0, "level seed (0 picks one from the clock)")
	flag.StringVar(&opts.configPath, "config", "", "YAML generation config")
	flag.StringVar(&opts.templatesPath, "templates", "", "YAML room template catalog (default: bundled catalog)")
	flag.IntVar(&opts.roomCount, "rooms", 0, "number of rooms, overrides the config")
	flag.IntVar(&opts.cellSize, "cell-size", 0, "hallway cell size, overrides the config")
	flag.IntVar(&opts.retries, "retries", 5, "seeds to try when a level cannot be carved")
	flag.StringVar(&opts.dumpPath, "dump", "", "write a text dump of the level to this file")
	flag.StringVar(&opts.htmlPath, "html", "", "write an HTML preview of the level to this file")
	flag.IntVar(&opts.width, "width", 0, "preview width in columns (default: terminal width)")
	noColor := flag.Bool("no-color", false, "disable colored output")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "console", "log format: console or json")
	lang := flag.String("lang", "en_GB", "language for preview labels")
	localesDir := flag.String("locales", "locales", "directory holding translations")
	flag.Parse()

	initGettext(*localesDir, *lang)
	if *noColor || !terminal.IsTerminal() {
		color.Disable()
	}

	log, err := newLogger(*logLevel, *logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, opts, log)
	stop()
	_ = log.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run generates one level and writes the preview and any requested files
func run(ctx context.Context, opts options, log *zap.Logger) error {
	cfg := generator.DefaultConfig()
	if opts.configPath != "" {
		var err error
		cfg, err = generator.LoadConfig(opts.configPath)
		if err != nil {
			return fmt.Errorf("cannot load config %s: %w", opts.configPath, err)
		}
	}
	if opts.roomCount > 0 {
		cfg.RoomCount = opts.roomCount
	}
	if opts.cellSize > 0 {
		cfg.CellSize = opts.cellSize
	}
	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}

	gen, err := generator.New(cfg, templateSource(opts.templatesPath), log)
	if err != nil {
		return fmt.Errorf("cannot create generator: %w", err)
	}

	lvl, err := gen.GenerateWithRetry(ctx, opts.seed, opts.retries)
	if err != nil {
		return errors.New(gotext.Get("generation failed: %v", err))
	}
	log.Info("level generated",
		zap.String("generator", gen.Name()),
		zap.String("level_id", lvl.ID.String()),
		zap.Int64("seed", lvl.Seed),
		zap.Int("rooms", lvl.Rooms.Len()),
		zap.Int("hallways", len(lvl.Corridors)))

	if err := renderer.New(opts.width).Render(os.Stdout, lvl); err != nil {
		return fmt.Errorf("cannot render level: %w", err)
	}

	if opts.dumpPath != "" {
		path, err := devtools.DumpLevelToFile(lvl, opts.dumpPath)
		if err != nil {
			return fmt.Errorf("cannot write dump: %w", err)
		}
		fmt.Println(gotext.Get("level written to %s", path))
	}
	if opts.htmlPath != "" {
		path, err := devtools.SaveLevelHTML(lvl, opts.htmlPath)
		if err != nil {
			return fmt.Errorf("cannot write HTML preview: %w", err)
		}
		fmt.Println(gotext.Get("level written to %s", path))
	}
	return nil
}
