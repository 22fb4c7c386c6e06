// Package mobile binds the game for gomobile/ebitenmobile builds
package mobile

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/lixenwraith/bubble-popper/gui"
)

func init() {
	// Sound is left to the host app; speaker output is desktop only
	mobile.SetGame(gui.NewGame(gui.Options{Seed: uint64(time.Now().UnixNano())}))
}

// Dummy forces gomobile to export the package
func Dummy() {}
