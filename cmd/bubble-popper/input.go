package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bubble-popper/audio"
	"github.com/lixenwraith/bubble-popper/game"
	"github.com/lixenwraith/bubble-popper/render"
)

// InputHandler translates terminal events into controller operations
type InputHandler struct {
	ctrl     *game.Controller
	renderer *render.TerminalRenderer
	sound    *audio.SoundManager // nil when audio is off

	// Mouse buttons held in the previous event, for press edge detection
	lastButtons tcell.ButtonMask

	// onResize is called with the new terminal size
	onResize func(w, h int)
}

// NewInputHandler creates an input handler; sound may be nil
func NewInputHandler(ctrl *game.Controller, renderer *render.TerminalRenderer, sound *audio.SoundManager) *InputHandler {
	return &InputHandler{
		ctrl:     ctrl,
		renderer: renderer,
		sound:    sound,
	}
}

// HandleEvent processes one terminal event, returns false when the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		if h.onResize != nil {
			h.onResize(ev.Size())
		}
	}
	return true
}

func (h *InputHandler) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		h.activate()
	case tcell.KeyLeft:
		h.ctrl.NudgeLeft()
	case tcell.KeyRight:
		h.ctrl.NudgeRight()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			h.ctrl.Fire()
		case 'h':
			h.ctrl.NudgeLeft()
		case 'l':
			h.ctrl.NudgeRight()
		case 'p':
			h.ctrl.TogglePause()
		case 'r':
			h.ctrl.Reset()
		case 'm':
			if h.sound != nil {
				log.Printf("muted: %v", h.sound.ToggleMute())
			}
		}
	}
	return true
}

// activate presses the overlay button of the current phase
func (h *InputHandler) activate() {
	switch h.ctrl.Phase() {
	case game.PhaseNotStarted:
		h.ctrl.Start()
	case game.PhaseEnded:
		h.ctrl.PlayAgain()
	}
}

func (h *InputHandler) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && h.lastButtons&tcell.Button1 == 0
	h.lastButtons = buttons
	if !pressed {
		return
	}

	if h.ctrl.Phase() != game.PhaseRunning {
		h.activate()
		return
	}

	col, row := ev.Position()
	layout := h.renderer.Layout()
	if !layout.InPlayArea(col, row) {
		return
	}
	x, y := layout.ToWorld(col, row)
	h.ctrl.Tap(x, y)
}
