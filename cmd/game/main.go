// Command game runs Finn.
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/younwookim/finnshooter/internal/application/game"
	"github.com/younwookim/finnshooter/internal/application/replay"
	"github.com/younwookim/finnshooter/internal/application/system"
	"github.com/younwookim/finnshooter/internal/infrastructure/config"
	"github.com/younwookim/finnshooter/internal/infrastructure/logging"
	"github.com/younwookim/finnshooter/internal/infrastructure/render"
)

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, source, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logOpts := logging.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty, Out: os.Stderr}
	if opts.logFile != "" {
		file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = file.Close() }()
		logOpts.File = file
	}
	log := logging.New(logOpts)
	log.Info().Str("config", source).Str("loglevel", log.GetLevel().String()).Msg("Config loaded")

	if err := run(cfg, opts, log); err != nil {
		log.Fatal().Err(err).Msg("Game exited with error")
	}
}

func run(cfg *config.GameConfig, opts options, log zerolog.Logger) error {
	var data *replay.ReplayData
	if opts.replay != "" {
		var err error
		if data, err = replay.LoadReplay(opts.replay); err != nil {
			return err
		}
		log.Info().Str("path", opts.replay).Int("ticks", data.Ticks).Msg("Replaying")
	}

	p, err := makePlan(cfg, opts, data, time.Now())
	if err != nil {
		return err
	}
	simClock, frameClock := p.simClock(cfg.Display.TPS)
	log.Info().
		Int64("seed", p.seed).
		Str("start", p.start.String()).
		Bool("frameClock", p.frameClock).
		Msg("Session planned")

	fonts, err := render.NewFonts()
	if err != nil {
		return err
	}
	sheet := render.NewPlaceholderSheet(render.SheetLayout{
		Frames:      cfg.Sprite.Frames,
		FrameWidth:  cfg.Sprite.FrameWidth,
		FrameHeight: cfg.Sprite.FrameHeight,
		PaddingX:    cfg.Sprite.PaddingX,
		PaddingY:    cfg.Sprite.PaddingY,
	})

	var input system.Source = system.NewInputSystem()
	if p.replay != nil {
		input = replay.NewReplayer(*p.replay)
	}

	var recorder *replay.Recorder
	engineOpts := game.Options{
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		Source: input,
		Fonts:  fonts,
		Logger: log,
	}
	if frameClock != nil {
		engineOpts.Clock = frameClock
	}
	if opts.record != "" {
		recorder = replay.NewRecorder(p.seed, cfg.StartScene, cfg.Display.TPS)
		engineOpts.Recorder = recorder
		log.Info().Str("path", opts.record).Msg("Recording enabled")
	}

	engine := game.New(engineOpts)
	director := game.NewDirector(cfg, simClock, rand.New(rand.NewSource(p.seed)), sheet, log)
	director.Bind(engine)
	engine.SetCurrentScene(director.Build(p.start, nil))

	ebiten.SetWindowSize(cfg.Display.Width*cfg.Display.Scale, cfg.Display.Height*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TPS)

	runErr := ebiten.RunGame(engine)
	log.Info().Int("ticks", engine.Ticks()).Msg("Game loop ended")

	if recorder != nil {
		if err := recorder.Save(opts.record); err != nil {
			log.Error().Err(err).Str("path", opts.record).Msg("Failed to save recording")
		} else {
			log.Info().Str("path", opts.record).Int("ticks", recorder.FrameCount()).Msg("Recording saved")
		}
	}
	return runErr
}
