// Command fireworks-window renders the fireworks show in a desktop window
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/fireworks/audio"
	"github.com/lixenwraith/fireworks/config"
	"github.com/lixenwraith/fireworks/glyph"
	"github.com/lixenwraith/fireworks/launch"
	"github.com/lixenwraith/fireworks/logging"
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
		log.Error("fireworks-window failed", zap.Error(err))
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

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info("starting window", zap.Uint64("seed", seed), zap.Int("width", cfg.Render.WindowWidth), zap.Int("height", cfg.Render.WindowHeight))

	sound := audio.NewSoundManager(cfg.AudioParams())
	if err := sound.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing silent", zap.Error(err))
	}
	defer sound.Cleanup()

	rng := sim.NewRand(seed)
	world := sim.NewWorld(simCfg, rng,
		float64(cfg.Render.WindowWidth), float64(cfg.Render.WindowHeight),
		sim.WithSampler(sampler),
		sim.WithObserver(sim.Observers{logging.RocketEvents{Log: log}, sound}),
	)
	launcher := launch.NewLauncher(world, rng, cfg.LaunchParams())
	scheduler := launch.NewScheduler(launcher, cfg.LaunchParams())
	if *showFlag != "" {
		sh, err := show.Load(*showFlag)
		if err != nil {
			return err
		}
		scheduler.Play(sh)
		log.Info("show loaded", zap.String("name", sh.Name), zap.Int("cues", len(sh.Cues)))
	}

	game := &Game{
		world:      world,
		launcher:   launcher,
		scheduler:  scheduler,
		showStatus: cfg.Render.ShowStatus,
	}

	ebiten.SetWindowSize(cfg.Render.WindowWidth, cfg.Render.WindowHeight)
	ebiten.SetWindowTitle("Fireworks")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	log.Info("quit", zap.Uint64("ticks", world.Ticks()))
	return nil
}
