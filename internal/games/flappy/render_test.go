package flappy

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// recordingSurface logs the kind of every draw call.
type recordingSurface struct {
	w, h  float64
	calls []string
	texts []string
}

func (r *recordingSurface) Size() (float64, float64) { return r.w, r.h }
func (r *recordingSurface) FillRect(core.Rect, core.Color) {
	r.calls = append(r.calls, "rect")
}
func (r *recordingSurface) StrokeRect(core.Rect, float64, core.Color) {
	r.calls = append(r.calls, "stroke")
}
func (r *recordingSurface) FillVerticalGradient(core.Rect, core.Color, core.Color) {
	r.calls = append(r.calls, "gradient")
}
func (r *recordingSurface) FillCircle(float64, float64, float64, core.Color) {
	r.calls = append(r.calls, "circle")
}
func (r *recordingSurface) FillEllipse(float64, float64, float64, float64, float64, core.Color) {
	r.calls = append(r.calls, "ellipse")
}
func (r *recordingSurface) FillPolygon([]core.Point, core.Color) {
	r.calls = append(r.calls, "polygon")
}
func (r *recordingSurface) MeasureText(s string) (float64, float64) {
	return float64(len(s)) * 8, 16
}
func (r *recordingSurface) DrawText(_, _ float64, s string, _ core.Color) {
	r.calls = append(r.calls, "text")
	r.texts = append(r.texts, s)
}

func indexOf(calls []string, kind string) int {
	for i, c := range calls {
		if c == kind {
			return i
		}
	}
	return -1
}

func TestRenderLayerOrder(t *testing.T) {
	g := startedGame(t, nil)
	g.session.Pipes.pipes = append(g.session.Pipes.pipes, Pipe{X: 400, GapTop: 200})

	rec := &recordingSurface{w: 800, h: 600}
	g.Render(rec)

	if rec.calls[0] != "gradient" {
		t.Fatalf("first call = %s, expected the sky gradient", rec.calls[0])
	}
	pipe := indexOf(rec.calls, "rect")
	ground := indexOf(rec.calls[1:], "gradient") + 1
	bird := indexOf(rec.calls, "ellipse")
	beak := indexOf(rec.calls, "polygon")
	text := indexOf(rec.calls, "text")

	if !(pipe < ground && ground < bird && bird < beak && beak < text) {
		t.Errorf("draw order pipe=%d ground=%d bird=%d beak=%d text=%d, expected ascending",
			pipe, ground, bird, beak, text)
	}
}

func TestRenderReadsSurfaceSize(t *testing.T) {
	g := startedGame(t, nil)

	rec := &recordingSurface{w: 300, h: 200}
	g.Render(rec)
	if g.Field().Width != 800 {
		t.Error("Render must not resize the game")
	}
	if len(rec.calls) == 0 {
		t.Fatal("nothing drawn")
	}
}

func newCanvasScreen() (*core.Screen, *core.Canvas) {
	screen := core.NewScreen(80, 30)
	return screen, core.NewCanvas(screen, 10, 20)
}

func draw(g *Game, screen *core.Screen, canvas *core.Canvas) string {
	canvas.Begin()
	g.Render(canvas)
	canvas.Flush()
	return screen.String()
}

func TestRenderOnCanvas(t *testing.T) {
	g := startedGame(t, nil)
	screen, canvas := newCanvasScreen()
	draw(g, screen, canvas)

	// Upper pixel of this cell sits inside the bird body at (150, 300)
	if c := screen.GetCell(15, 15); c.Fg != birdBody {
		t.Errorf("bird cell fg = %v, expected %v", c.Fg, birdBody)
	}
	if c := screen.GetCell(40, 0); c.Fg.B <= c.Fg.R {
		t.Errorf("sky cell fg = %v, expected bluish", c.Fg)
	}
	if c := screen.GetCell(40, 28); c.Fg.R <= c.Fg.B {
		t.Errorf("ground cell fg = %v, expected brownish", c.Fg)
	}
}

func TestRenderMenuText(t *testing.T) {
	g := newTestGame(t, &memStore{high: 42})
	screen, canvas := newCanvasScreen()
	out := draw(g, screen, canvas)

	for _, want := range []string{"FLAPPY BIRD", "Tap or Press Space to Fly", "Best: 42"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q", want)
		}
	}
}

func TestRenderGameOverText(t *testing.T) {
	g := startedGame(t, &memStore{high: 1})
	g.session.Score.Add(3)
	crash(t, g)

	screen, canvas := newCanvasScreen()
	out := draw(g, screen, canvas)

	for _, want := range []string{"Game Over", "New High Score!", "Your Score", "High Score", "Play Again"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}

func TestRenderPausedText(t *testing.T) {
	g := startedGame(t, nil)
	g.Step(input(core.ActionPause))

	screen, canvas := newCanvasScreen()
	out := draw(g, screen, canvas)
	if !strings.Contains(out, "PAUSED") {
		t.Error("paused overlay missing")
	}
}
