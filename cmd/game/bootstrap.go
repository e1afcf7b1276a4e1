package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/pflag"
	"github.com/younwookim/finnshooter/internal/application/replay"
	"github.com/younwookim/finnshooter/internal/application/state"
	"github.com/younwookim/finnshooter/internal/domain/entity"
	"github.com/younwookim/finnshooter/internal/infrastructure/clock"
	"github.com/younwookim/finnshooter/internal/infrastructure/config"
)

// frameClockStart is the first timestamp of a frame clock. It is past one
// cooldown period so the first shot of a run is never gated.
const frameClockStart = 10_000

// options are the command line flags
type options struct {
	configDir string
	record    string
	replay    string
	logLevel  string
	logFile   string
	start     string
	clock     string
	seed      int64
}

func parseFlags(args []string) (options, error) {
	var opts options
	fl := pflag.NewFlagSet("finn", pflag.ContinueOnError)
	fl.StringVarP(&opts.configDir, "config", "c", "", "directory holding game.yaml (default: embedded config)")
	fl.StringVar(&opts.record, "record", "", "record input to file (e.g. --record replay.json)")
	fl.StringVar(&opts.replay, "replay", "", "play back a recorded input file")
	fl.StringVar(&opts.logLevel, "log-level", "", "trace, debug, info, warn or error")
	fl.StringVar(&opts.logFile, "log-file", "", "also write logs to this file")
	fl.StringVar(&opts.start, "start", "", "first scene: main_menu, pretty_main_menu, playing or goodbye")
	fl.StringVar(&opts.clock, "clock", "", "simulation clock: wall or frame")
	fl.Int64Var(&opts.seed, "seed", 0, "random seed (default: current time)")

	if err := fl.Parse(args); err != nil {
		return options{}, err
	}
	if opts.record != "" && opts.replay != "" {
		return options{}, errors.New("--record and --replay are mutually exclusive")
	}
	return opts, nil
}

// loadConfig reads the config from --config or the embedded copy, then
// applies flag overrides. The returned string names where it came from.
func loadConfig(opts options) (*config.GameConfig, string, error) {
	var loader *config.Loader
	source := "embedded"
	if opts.configDir != "" {
		loader = config.NewLoader(opts.configDir)
		source = opts.configDir
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, "", fmt.Errorf("failed to get config subfs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, "", err
	}

	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.start != "" {
		cfg.StartScene = opts.start
	}
	if opts.clock != "" {
		cfg.Clock = opts.clock
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, source, nil
}

// plan is what a run needs to know before any window exists
type plan struct {
	seed       int64
	start      state.GameState
	frameClock bool
	replay     *replay.ReplayData
}

// makePlan decides seed, start scene and clock. A replay dictates all three;
// recording forces the frame clock so the recording can be replayed.
func makePlan(cfg *config.GameConfig, opts options, data *replay.ReplayData, now time.Time) (plan, error) {
	if data != nil {
		start, err := state.Parse(data.StartScene)
		if err != nil {
			return plan{}, fmt.Errorf("replay %s: %w", opts.replay, err)
		}
		if data.TPS != 0 && data.TPS != cfg.Display.TPS {
			return plan{}, fmt.Errorf("replay %s was recorded at %d tps, config runs at %d", opts.replay, data.TPS, cfg.Display.TPS)
		}
		return plan{seed: data.Seed, start: start, frameClock: true, replay: data}, nil
	}

	start, err := state.Parse(cfg.StartScene)
	if err != nil {
		return plan{}, err
	}

	seed := opts.seed
	if seed == 0 {
		seed = now.UnixNano()
	}
	return plan{
		seed:       seed,
		start:      start,
		frameClock: cfg.Clock == "frame" || opts.record != "",
	}, nil
}

// simClock is the clock the simulation reads plus, for frame clocks, the
// stepper the engine advances.
func (p plan) simClock(tps int) (entity.Clock, *clock.Frame) {
	if !p.frameClock {
		return clock.Wall{}, nil
	}
	f := clock.NewFrame(frameClockStart, tps)
	return f, f
}
