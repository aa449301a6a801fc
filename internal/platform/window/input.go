package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyEnter, core.ActionRestart},
	{ebiten.KeyM, core.ActionMute},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeyQ, core.ActionQuit},
}

// pollInput fills in with the keys, clicks and touches that began this frame.
func pollInput(in *core.InputFrame, touches []ebiten.TouchID) []ebiten.TouchID {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			in.Set(b.action)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Press(float64(x), float64(y))
	}

	touches = inpututil.AppendJustPressedTouchIDs(touches[:0])
	for _, id := range touches {
		x, y := ebiten.TouchPosition(id)
		in.Press(float64(x), float64(y))
	}
	return touches
}
