package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

var (
	hudPanel    = core.Black.WithAlpha(0.7)
	hudDim      = core.Black.WithAlpha(0.45)
	hudText     = core.White
	hudMuted    = core.Hex("#BDBDBD")
	hudGold     = core.Hex("#FFD700")
	hudTitle    = core.Hex("#FFA500")
	hudGameOver = core.Hex("#FF5722")
	hudButton   = core.Hex("#2ECC71")
)

// hudLayout holds the interactive regions. Step uses it for hit testing and
// drawHUD for drawing, so both always agree.
type hudLayout struct {
	Score     core.Rect
	Mute      core.Rect
	Panel     core.Rect
	PlayAgain core.Rect
}

func layoutHUD(f Playfield) hudLayout {
	const margin = 20
	panelW := math.Min(360, f.Width-2*margin)
	panelH := math.Min(320, f.Height-2*margin)
	panel := core.RectCentered(f.Width/2, f.Height/2, panelW, panelH)

	return hudLayout{
		Score:     core.NewRect(margin, margin, 140, 100),
		Mute:      core.NewRect(f.Width-margin-60, margin, 60, 40),
		Panel:     panel,
		PlayAgain: core.RectCentered(f.Width/2, panel.Bottom()-50, math.Min(200, panelW-20), 40),
	}
}

func (g *Game) drawHUD(dst core.Surface, f Playfield) {
	ui := layoutHUD(f)
	st := g.State()

	switch st.Phase {
	case PhaseReady:
		g.drawMenu(dst, f)
	case PhasePlaying:
		dst.FillRect(ui.Score, hudPanel)
		drawText(dst, ui.Score.X+20, ui.Score.Y+10, "Score", hudMuted)
		drawText(dst, ui.Score.X+20, ui.Score.Y+40, fmt.Sprintf("%d", st.Score), hudText)
		drawText(dst, ui.Score.X+20, ui.Score.Y+70, fmt.Sprintf("Best: %d", st.HighScore), hudMuted)

		dst.FillRect(ui.Mute, hudPanel)
		icon := "♪"
		if st.Muted {
			icon = "×"
		}
		centerText(dst, ui.Mute, icon, hudText)

		if st.Paused {
			dst.FillRect(core.NewRect(0, 0, f.Width, f.Height), hudDim)
			centerTextAt(dst, f.Width/2, f.Height/2-20, "PAUSED", hudText)
			centerTextAt(dst, f.Width/2, f.Height/2+20, "Press P to resume", hudMuted)
		}
	case PhaseEnded:
		g.drawGameOver(dst, f, ui, st)
	}
}

func (g *Game) drawMenu(dst core.Surface, f Playfield) {
	dst.FillRect(core.NewRect(0, 0, f.Width, f.Height), hudDim)
	cx, cy := f.Width/2, f.Height/2
	centerTextAt(dst, cx, cy-80, "FLAPPY BIRD", hudTitle)
	centerTextAt(dst, cx, cy-20, "Tap or Press Space to Fly", hudText)
	centerTextAt(dst, cx, cy+40, fmt.Sprintf("Best: %d", g.session.Score.High()), hudGold)
}

func (g *Game) drawGameOver(dst core.Surface, f Playfield, ui hudLayout, st GameState) {
	dst.FillRect(core.NewRect(0, 0, f.Width, f.Height), hudDim)
	dst.FillRect(ui.Panel, hudPanel)

	cx := ui.Panel.X + ui.Panel.W/2
	y := ui.Panel.Y + 20
	centerTextAt(dst, cx, y, "Game Over", hudGameOver)
	y += 40
	if st.NewHighScore {
		centerTextAt(dst, cx, y, "New High Score!", hudGold)
	}
	y += 40
	centerTextAt(dst, cx, y, "Your Score", hudMuted)
	centerTextAt(dst, cx, y+20, fmt.Sprintf("%d", st.Score), hudText)
	y += 60
	centerTextAt(dst, cx, y, "High Score", hudMuted)
	centerTextAt(dst, cx, y+20, fmt.Sprintf("%d", st.HighScore), hudGold)

	dst.FillRect(ui.PlayAgain, hudButton)
	centerText(dst, ui.PlayAgain, "Play Again", hudText)
	centerTextAt(dst, cx, ui.Panel.Bottom()+10, "Press R or click Play Again", hudMuted)
}

// rotate turns the local offset (x, y) by deg degrees and moves it to (ox, oy).
func rotate(x, y, deg, ox, oy float64) (float64, float64) {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return ox + x*cos - y*sin, oy + x*sin + y*cos
}

func drawText(dst core.Surface, x, y float64, s string, c core.Color) {
	dst.DrawText(x, y, s, c)
}

// centerTextAt draws s horizontally centered on cx with its top at y.
func centerTextAt(dst core.Surface, cx, y float64, s string, c core.Color) {
	w, _ := dst.MeasureText(s)
	dst.DrawText(cx-w/2, y, s, c)
}

// centerText draws s centered inside r.
func centerText(dst core.Surface, r core.Rect, s string, c core.Color) {
	w, h := dst.MeasureText(s)
	dst.DrawText(r.X+(r.W-w)/2, r.Y+(r.H-h)/2, s, c)
}
