package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/platformer/internal/application/game"
	"github.com/younwookim/platformer/internal/application/scene/playing"
	"github.com/younwookim/platformer/internal/infrastructure/config"
	"github.com/younwookim/platformer/internal/infrastructure/logger"
)

// worldName is the embedded world file under configs/
const worldName = "world"

type options struct {
	configPath  string
	writeConfig string
	record      string
	replay      string
	debug       bool
	logLevel    string
	logFile     string
}

func parseFlags(args []string) (options, error) {
	var opts options
	fset := flag.NewFlagSet("platformer", flag.ContinueOnError)
	fset.StringVar(&opts.configPath, "config", "", "YAML file overriding the embedded world (e.g., -config my_world.yaml)")
	fset.StringVar(&opts.writeConfig, "write-config", "", "Write the effective world config to file and exit")
	fset.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json)")
	fset.StringVar(&opts.replay, "replay", "", "Run a recorded replay headlessly and exit")
	fset.BoolVar(&opts.debug, "debug", false, "Show the debug overlay")
	fset.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	fset.StringVar(&opts.logFile, "log-file", "", "Also write logs to this file, rotated")
	if err := fset.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

// loadConfig reads the embedded world and applies the optional override file
func loadConfig(path string) (*config.WorldConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("config subfs: %w", err)
	}
	cfg, err := config.NewFSLoader(fsys).LoadWorld(worldName)
	if err != nil {
		return nil, fmt.Errorf("load embedded world: %w", err)
	}
	if path != "" {
		if err := config.Overlay(cfg, path); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func run(opts options) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logFile := cfg.Logging.File
	if opts.logFile != "" {
		logFile = opts.logFile
	}
	if err := logger.Init(level, logFile); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	if opts.configPath != "" {
		logger.Info("config overlay applied", zap.String("path", opts.configPath))
	}

	if opts.writeConfig != "" {
		if err := cfg.SaveTo(opts.writeConfig); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		logger.Info("config written", zap.String("path", opts.writeConfig))
		return nil
	}

	if opts.replay != "" {
		result, err := runReplay(cfg, opts.replay, logger.Log)
		if err != nil {
			return err
		}
		logger.Info("replay finished",
			zap.String("stage", result.Stage),
			zap.Int("frames", result.Frames),
			zap.Float64("x", result.Player.X),
			zap.Float64("y", result.Player.Y),
			zap.Float64("dx", result.Player.DX),
			zap.Float64("dy", result.Player.DY),
			zap.Bool("on_ground", result.Player.OnGround))
		return nil
	}

	scene, err := playing.New(cfg, playing.Options{
		Stage:      worldName,
		RecordPath: opts.record,
		Debug:      opts.debug,
		Log:        logger.Log,
	})
	if err != nil {
		return err
	}

	d := cfg.Display
	g := game.New(scene, d.ScreenWidth, d.ScreenHeight, logger.Log)

	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.Framerate)

	logger.Info("starting",
		zap.Int("width", d.ScreenWidth),
		zap.Int("height", d.ScreenHeight),
		zap.Int("tps", d.Framerate))

	runErr := ebiten.RunGame(g)
	// Closing the window does not leave the scene, so flush here
	g.Current().OnExit()
	if runErr != nil {
		return fmt.Errorf("run game: %w", runErr)
	}
	logger.Info("window closed", zap.Uint64("frames", g.Frames()))
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		// Before Init the global logger is a no-op
		fmt.Fprintf(os.Stderr, "platformer: %v\n", err)
		logger.Error("fatal", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
