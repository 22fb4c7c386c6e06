package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/bubble-popper/audio"
	"github.com/lixenwraith/bubble-popper/config"
	"github.com/lixenwraith/bubble-popper/constants"
	"github.com/lixenwraith/bubble-popper/core"
	"github.com/lixenwraith/bubble-popper/gui"
)

var (
	configPath = flag.String("config", "", "YAML file overlaid on the built-in defaults")
	debugFlag  = flag.Bool("debug", false, "Show the metrics overlay")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	muteFlag   = flag.Bool("mute", false, "Start with sound effects muted")
	watchFlag  = flag.Bool("watch", false, "Reload -config when it changes; applied from the next round")
	scaleFlag  = flag.Float64("scale", 1, "Window size relative to the viewport")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bubble-popper-gui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("seed %d", seed)

	opts := gui.Options{Config: cfg, Seed: seed, Debug: *debugFlag}

	if cfg.Audio.Enabled {
		sound := audio.NewSoundManager(cfg.Audio.Volume, *muteFlag)
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer sound.Cleanup()
			opts.Player = sound
		}
	}

	if *watchFlag && *configPath != "" {
		w, err := config.NewWatcher(*configPath, constants.ConfigReloadDebounce)
		if err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			defer w.Close()
			opts.Reloads = w.Configs
			core.Go(func() {
				for err := range w.Errors {
					log.Printf("config reload: %v", err)
				}
			})
		}
	}

	g := gui.NewGame(opts)
	defer g.Close()

	ebiten.SetWindowTitle(constants.TitleText)
	ebiten.SetWindowSize(int(cfg.Viewport.Width**scaleFlag), int(cfg.Viewport.Height**scaleFlag))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
