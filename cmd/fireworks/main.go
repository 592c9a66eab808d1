// Command fireworks renders the fireworks show in a truecolor terminal
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/fireworks/audio"
	"github.com/lixenwraith/fireworks/config"
	"github.com/lixenwraith/fireworks/glyph"
	"github.com/lixenwraith/fireworks/launch"
	"github.com/lixenwraith/fireworks/logging"
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/show"
	"github.com/lixenwraith/fireworks/sim"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	showFlag   = flag.String("show", "", "Path to a YAML show file")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, overrides the config, 0 keeps it")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging to logs/")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	log, closeLog, err := logging.New(cfg.LogParams())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg, log); err != nil {
		log.Error("fireworks failed", zap.Error(err))
		closeLog()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	simCfg, err := cfg.Sim()
	if err != nil {
		return err
	}
	opts, err := cfg.GlyphOptions()
	if err != nil {
		return err
	}
	sampler, err := glyph.New(opts)
	if err != nil {
		return fmt.Errorf("glyph sampler: %w", err)
	}
	defer sampler.Close()

	var sh *show.Show
	if *showFlag != "" {
		if sh, err = show.Load(*showFlag); err != nil {
			return err
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info("starting",
		zap.Uint64("seed", seed),
		zap.Strings("words", cfg.Launch.Words),
		zap.Duration("background_interval", cfg.Launch.BackgroundInterval),
		zap.Duration("text_interval", cfg.Launch.TextInterval),
		zap.Bool("audio", cfg.Audio.Enabled),
	)

	sound := audio.NewSoundManager(cfg.AudioParams())
	if err := sound.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing silent", zap.Error(err))
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Panic Recovery: restore the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nFIREWORKS CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))

	rng := sim.NewRand(seed)
	world := sim.NewWorld(simCfg, rng, 0, 0,
		sim.WithSampler(sampler),
		sim.WithObserver(sim.Observers{logging.RocketEvents{Log: log}, sound}),
	)
	launcher := launch.NewLauncher(world, rng, cfg.LaunchParams())
	scheduler := launch.NewScheduler(launcher, cfg.LaunchParams())
	if sh != nil {
		scheduler.Play(sh)
		log.Info("show loaded", zap.String("name", sh.Name), zap.Int("cues", len(sh.Cues)))
	}

	a := newApp(screen, cfg.Render.UnitsPerDot, world, launcher, scheduler)
	a.showStatus = cfg.Render.ShowStatus

	events := make(chan tcell.Event, 64)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\nEVENT POLLER CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handle(ev) {
				log.Info("quit", zap.Duration("elapsed", scheduler.Elapsed()), zap.Uint64("ticks", world.Ticks()))
				return nil
			}
		case sig := <-signals:
			log.Info("signal", zap.Stringer("signal", sig))
			return nil
		case now := <-ticker.C:
			a.frame(now.Sub(last))
			last = now
		}
	}
}
