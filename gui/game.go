package gui

import (
	"fmt"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/bubble-popper/audio"
	"github.com/lixenwraith/bubble-popper/config"
	"github.com/lixenwraith/bubble-popper/engine"
	"github.com/lixenwraith/bubble-popper/events"
	"github.com/lixenwraith/bubble-popper/game"
	"github.com/lixenwraith/bubble-popper/status"
)

// Options configures a window or mobile game
type Options struct {
	Config *config.Config
	Seed   uint64
	Player audio.Player // Optional sound output
	Debug  bool         // Show the metrics overlay

	// Reloads delivers configs applied from the next round, nil disables reloading
	Reloads <-chan *config.Config
}

// Game adapts the controller to ebiten's Update/Draw loop
// The logical screen is the world viewport; ebiten scales it to the window
type Game struct {
	ctrl    *game.Controller
	router  *events.Router[*game.Controller]
	metrics *status.Registry
	debug   bool
	reloads <-chan *config.Config

	face     ebtext.Face
	overlays *overlays // Built on the first Update, once the graphics driver is up

	touchIDs []ebiten.TouchID
	quit     bool
}

// NewGame creates a game in the NotStarted phase
func NewGame(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	queue := events.NewEventQueue()
	metrics := status.NewRegistry()
	ctrl := game.New(cfg, engine.NewMonotonicTimeProvider(),
		rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)), queue, metrics)

	router := events.NewRouter[*game.Controller](queue)
	if opts.Player != nil {
		router.Register(audio.NewSoundHandler[*game.Controller](opts.Player))
	}

	return &Game{
		ctrl:    ctrl,
		router:  router,
		metrics: metrics,
		debug:   opts.Debug,
		reloads: opts.Reloads,
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

// Controller exposes the game state machine
func (g *Game) Controller() *game.Controller {
	return g.ctrl
}

// Close stops every timer of the current run
func (g *Game) Close() {
	g.ctrl.Close()
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	if g.overlays == nil {
		g.overlays = newOverlays(g.face, g.ctrl.Start, g.ctrl.PlayAgain, func() { g.ctrl.Resume() })
	}

	g.drainReloads()
	g.ctrl.Advance()
	g.handleKeys()

	if ov := g.activeOverlay(); ov != nil {
		if g.ctrl.Phase() == game.PhaseEnded {
			ov.detail.Label = fmt.Sprintf("Score: %d", g.ctrl.Score())
		}
		ov.ui.Update()
	} else {
		g.handlePointer()
	}

	g.router.DispatchAll(g.ctrl)
	return nil
}

// drainReloads stages every pending config without blocking the frame
func (g *Game) drainReloads() {
	for {
		select {
		case cfg, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				return
			}
			g.ctrl.ApplyConfig(cfg)
		default:
			return
		}
	}
}

// activeOverlay returns the panel shown for the current phase, nil during play
func (g *Game) activeOverlay() *overlay {
	switch {
	case g.overlays == nil:
		return nil
	case g.ctrl.Phase() == game.PhaseNotStarted:
		return g.overlays.start
	case g.ctrl.Phase() == game.PhaseEnded:
		return g.overlays.gameOver
	case g.ctrl.Paused():
		return g.overlays.paused
	default:
		return nil
	}
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.quit = true
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.ctrl.Fire()
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		g.ctrl.NudgeLeft()
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		g.ctrl.NudgeRight()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.ctrl.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.ctrl.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.press()
	}
}

// press activates the button of the current overlay from the keyboard
func (g *Game) press() {
	switch g.ctrl.Phase() {
	case game.PhaseNotStarted:
		g.ctrl.Start()
	case game.PhaseEnded:
		g.ctrl.PlayAgain()
	default:
		g.ctrl.Resume()
	}
}

// handlePointer turns fresh mouse clicks and touches into taps in world coordinates
func (g *Game) handlePointer() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.tap(x, y)
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.tap(x, y)
	}
}

func (g *Game) tap(x, y int) {
	g.ctrl.Tap(float64(x), float64(y))
}

func (g *Game) Layout(_, _ int) (int, int) {
	snap := g.ctrl.Snapshot()
	return int(snap.Width), int(snap.Height)
}
