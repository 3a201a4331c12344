package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/impcton/audio"
	"github.com/lixenwraith/impcton/config"
	"github.com/lixenwraith/impcton/constants"
	"github.com/lixenwraith/impcton/core"
	"github.com/lixenwraith/impcton/engine"
	"github.com/lixenwraith/impcton/game"
	"github.com/lixenwraith/impcton/render"
	"github.com/lixenwraith/impcton/storage"
	"github.com/lixenwraith/impcton/wallet"
	"github.com/rs/zerolog"
)

var (
	configFlag    = flag.String("config", "", "Config file (default impcton.toml if present)")
	debugFlag     = flag.Bool("debug", false, "Write debug logs to logs/impcton.log")
	storeFlag     = flag.String("store", "", "Store backend: file, sqlite, memory")
	storePathFlag = flag.String("store-path", "", "Store location (default under ~/.impcton)")
	cooldownFlag  = flag.Duration("cooldown", 0, "Time between spins")
	noAudioFlag   = flag.Bool("no-audio", false, "Disable sound effects")
	walletFlag    = flag.String("wallet", "", "Wallet JSON-RPC endpoint")
	seedFlag      = flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
)

func main() {
	// Panic recovery: terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "impcton: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	core.RegisterLogger(log)

	storePath := cfg.ResolvedStorePath()
	store, err := storage.Open(cfg.StoreBackend, storePath)
	if err != nil {
		return errors.Wrap(err, "open store")
	}
	log.Info().Str("backend", cfg.StoreBackend).Str("path", storePath).Msg("store opened")

	screen, err := tcell.NewScreen()
	if err != nil {
		store.Close()
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		store.Close()
		return errors.Wrap(err, "init screen")
	}
	core.RegisterTerminal(screen)
	defer func() {
		core.RegisterTerminal(nil)
		screen.Fini()
	}()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground).Foreground(render.RgbText))
	screen.HideCursor()

	clock := engine.NewMonotonicTimeProvider()

	sounds := newSounds(cfg, clock, log)

	app, err := game.New(cfg, game.Deps{
		Display: screen,
		Store:   store,
		Clock:   clock,
		Wallet:  wallet.NewRPCProvider(cfg.WalletEndpoint, nil, log.With().Str("component", "wallet").Logger()),
		Sound:   sounds,
		Logger:  log,
	})
	if err != nil {
		sounds.Cleanup()
		store.Close()
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn().Err(err).Msg("shutdown")
		}
	}()

	events := make(chan tcell.Event, constants.EventChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, events)
}

// loadConfig layers flags that were set on top of file and environment
func loadConfig() (config.Config, error) {
	path, required := *configFlag, true
	if path == "" {
		path, required = config.DefaultFile, false
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return config.Config{}, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "store":
			cfg.StoreBackend = *storeFlag
		case "store-path":
			cfg.StorePath = *storePathFlag
		case "cooldown":
			cfg.Cooldown = config.Duration{Duration: *cooldownFlag}
		case "no-audio":
			cfg.AudioEnabled = !*noAudioFlag
		case "wallet":
			cfg.WalletEndpoint = *walletFlag
		case "seed":
			cfg.Seed = *seedFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newSounds opens the speaker; failure leaves a silent manager
func newSounds(cfg config.Config, clock engine.TimeProvider, log zerolog.Logger) *audio.SoundManager {
	acfg := audio.DefaultAudioConfig()
	acfg.Enabled = cfg.AudioEnabled
	acfg.MasterVolume = cfg.MasterVolume

	sounds := audio.NewSoundManager(acfg, clock, log.With().Str("component", "audio").Logger())
	start := time.Now()
	if err := sounds.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	} else {
		log.Debug().Dur("took", time.Since(start)).Bool("enabled", acfg.Enabled).Msg("audio ready")
	}
	return sounds
}
