package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golangdaddy/hillclimber/pkg/config"
	"github.com/golangdaddy/hillclimber/pkg/game"
	"github.com/golangdaddy/hillclimber/pkg/history"
	"github.com/golangdaddy/hillclimber/pkg/logging"
	"github.com/golangdaddy/hillclimber/pkg/metrics"
	"github.com/golangdaddy/hillclimber/pkg/models"
	"github.com/golangdaddy/hillclimber/pkg/sim"
	"github.com/golangdaddy/hillclimber/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	configDir := pflag.String("config-dir", ".", "directory holding "+config.FileName)
	logLevel := pflag.String("log-level", "", "override the configured log level")
	headless := pflag.Bool("headless", false, "run the simulation without a window, driven by the autopilot")
	ticks := pflag.Uint64("ticks", 3600, "tick limit for a headless run (0 runs until the run ends)")
	realtime := pflag.Bool("realtime", false, "pace headless runs at the configured TPS")
	pflag.Parse()

	if err := run(*configDir, *logLevel, *headless, *ticks, *realtime); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configDir, logLevel string, headless bool, ticks uint64, realtime bool) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	var logFile io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logFile = f
	}
	log := logging.New(cfg.LogLevel, os.Stderr, logFile)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", seed).Str("configDir", configDir).Msg("starting hill climber")

	prog := models.NewProgression(vehicle.DefaultCatalog())
	prog.Deposit(cfg.StartingCoins)
	c := sim.NewContext(cfg.Sim, prog, rand.New(rand.NewSource(seed)), log)

	rec, err := metrics.New(nil)
	if err != nil {
		log.Warn().Err(err).Msg("metrics disabled")
		rec = nil
	} else {
		c.AddObserver(rec)
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.Open(cfg.History.DSN, log)
		if err != nil {
			log.Error().Err(err).Msg("run history disabled")
			store = nil
		} else {
			defer store.Close()
			c.AddObserver(history.NewTracker(store, prog.Levels))
		}
	}

	if headless {
		tps := 0
		if realtime {
			tps = cfg.TPS
		}
		return runHeadless(c, tps, ticks, store, log)
	}

	width := int(cfg.Sim.Terrain.ScreenWidth)
	height := int(cfg.Sim.Terrain.ScreenHeight)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	g := game.NewGame(game.Options{
		Width:       width,
		Height:      height,
		Seed:        seed,
		Sim:         c,
		History:     store,
		HistoryKeep: cfg.History.Keep,
		Metrics:     rec,
		Log:         log,
	})
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

// runHeadless drives one run with the autopilot until it ends, the tick limit is
// hit or the process is interrupted
func runHeadless(c *sim.Context, tps int, ticks uint64, store *history.Store, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flip := c.Config().Physics.FlipThreshold
	driver := sim.NewDriver(c, tps, log)
	sum, err := driver.Run(ctx, ticks, func(s sim.Snapshot) {
		driver.Send(sim.Autopilot(s.Vehicle, flip))
	})
	if err != nil && ctx.Err() == nil {
		return err
	}

	log.Info().
		Str("vehicle", string(sum.Vehicle)).
		Str("reason", string(sum.Reason)).
		Int("distance", sum.Distance).
		Int("coins", sum.Coins).
		Int("topSpeed", sum.TopSpeed).
		Int("score", sum.Score).
		Uint64("ticks", sum.Ticks).
		Int("balance", c.Progression.Balance()).
		Msg("headless run finished")

	if store != nil {
		if n, err := store.Count(); err == nil {
			log.Debug().Int64("recorded", n).Msg("run history")
		}
	}
	return nil
}
