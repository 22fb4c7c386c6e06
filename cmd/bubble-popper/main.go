package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bubble-popper/audio"
	"github.com/lixenwraith/bubble-popper/config"
	"github.com/lixenwraith/bubble-popper/constants"
	"github.com/lixenwraith/bubble-popper/core"
	"github.com/lixenwraith/bubble-popper/engine"
	"github.com/lixenwraith/bubble-popper/events"
	"github.com/lixenwraith/bubble-popper/game"
	"github.com/lixenwraith/bubble-popper/render"
	"github.com/lixenwraith/bubble-popper/status"
)

var (
	configPath = flag.String("config", "", "YAML file overlaid on the built-in defaults")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/ and show the metrics overlay")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
	muteFlag   = flag.Bool("mute", false, "Start with sound effects muted")
	watchFlag  = flag.Bool("watch", false, "Reload -config when it changes; applied from the next round")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bubble-popper: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

// fitViewport sizes the world so each terminal cell covers the configured cell size
func fitViewport(cfg *config.Config, screen tcell.Screen) *config.Config {
	next := *cfg
	w, h := screen.Size()
	next.Viewport.Width, next.Viewport.Height = render.ViewportFor(w, h, cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	return &next
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.RegisterTerminal(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
		core.RegisterTerminal(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("seed %d", seed)

	queue := events.NewEventQueue()
	metrics := status.NewRegistry()
	frameMs := metrics.Floats.Get(status.KeyFrameMs)

	ctrl := game.New(fitViewport(cfg, screen), engine.NewMonotonicTimeProvider(),
		rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), queue, metrics)
	defer ctrl.Close()

	router := events.NewRouter[*game.Controller](queue)

	var sound *audio.SoundManager
	if cfg.Audio.Enabled {
		sound = audio.NewSoundManager(cfg.Audio.Volume, *muteFlag)
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
			sound = nil
		} else {
			defer sound.Cleanup()
			router.Register(audio.NewSoundHandler[*game.Controller](sound))
		}
	}

	var (
		reloads    <-chan *config.Config
		reloadErrs <-chan error
	)
	if *watchFlag && *configPath != "" {
		w, err := config.NewWatcher(*configPath, constants.ConfigReloadDebounce)
		if err != nil {
			log.Printf("config watch disabled: %v", err)
		} else {
			defer w.Close()
			reloads, reloadErrs = w.Configs, w.Errors
		}
	}

	renderer := render.NewTerminalRenderer(screen)
	input := NewInputHandler(ctrl, renderer, sound)
	input.onResize = func(int, int) {
		screen.Sync()
		ctrl.ApplyConfig(fitViewport(ctrl.Config(), screen))
	}

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !input.HandleEvent(ev) {
				return nil
			}

		case next, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			ctrl.ApplyConfig(fitViewport(next, screen))

		case err, ok := <-reloadErrs:
			if !ok {
				reloadErrs = nil
				continue
			}
			log.Printf("config reload: %v", err)

		case <-frameTicker.C:
			start := time.Now()
			ctrl.Advance()
			router.DispatchAll(ctrl)

			snap := ctrl.Snapshot()
			var debug []string
			if *debugFlag {
				debug = metrics.Lines()
			}
			renderer.RenderFrame(&snap, debug)
			frameMs.Set(float64(time.Since(start).Microseconds()) / 1000)
		}
	}
}
