package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/particles"
)

// Palette
var (
	skyTop      = core.Hex("#4EC0CA")
	skyBottom   = core.Hex("#87CEEB")
	pipeFill    = core.Hex("#2ECC71")
	pipeStroke  = core.Hex("#27AE60")
	pipeCap     = core.Hex("#239B56")
	groundTop   = core.Hex("#8B4513")
	groundBase  = core.Hex("#654321")
	groundLine  = core.Hex("#3E2723")
	birdBody    = core.Hex("#FF9800")
	birdOutline = core.Hex("#F57C00")
	birdBeak    = core.Hex("#FF5722")
)

const (
	pipeStrokeWidth = 3
	groundLineWidth = 4
)

// Render draws the current frame. The surface size is read every call.
func (g *Game) Render(dst core.Surface) {
	w, h := dst.Size()
	field := g.field
	field.Width, field.Height = w, h

	g.drawBackground(dst, field)
	for _, p := range g.session.Pipes.Pipes() {
		g.drawPipe(dst, p, field)
	}
	g.drawGround(dst, field)
	g.drawBird(dst, g.session.Bird)
	particles.Render(dst, g.session.Particles)
	g.drawHUD(dst, field)
}

func (g *Game) drawBackground(dst core.Surface, f Playfield) {
	dst.FillVerticalGradient(core.NewRect(0, 0, f.Width, f.Height), skyTop, skyBottom)
}

// drawPipe renders the pipe bodies with a darker outline and a wider cap at
// the mouth of each half.
func (g *Game) drawPipe(dst core.Surface, p Pipe, f Playfield) {
	w := g.session.Pipes.Width()
	gap := g.session.Pipes.Gap()
	top := p.TopRect(w)
	bottom := p.BottomRect(w, gap, f.GroundY())

	dst.FillRect(top, pipeFill)
	dst.StrokeRect(top, pipeStrokeWidth, pipeStroke)
	dst.FillRect(bottom, pipeFill)
	dst.StrokeRect(bottom, pipeStrokeWidth, pipeStroke)

	capH := g.cfg.Obstacles.CapHeight
	over := g.cfg.Obstacles.CapOverhang
	dst.FillRect(core.NewRect(p.X-over, p.GapTop-capH, w+2*over, capH), pipeCap)
	dst.FillRect(core.NewRect(p.X-over, p.GapTop+gap, w+2*over, capH), pipeCap)
}

func (g *Game) drawGround(dst core.Surface, f Playfield) {
	groundY := f.GroundY()
	dst.FillVerticalGradient(core.NewRect(0, groundY, f.Width, f.GroundHeight), groundTop, groundBase)
	dst.FillRect(core.NewRect(0, groundY-groundLineWidth/2, f.Width, groundLineWidth), groundLine)
}

// drawBird renders an oval body tilted by the bird's rotation, an eye and a
// beak. Feature offsets are rotated with the body.
func (g *Game) drawBird(dst core.Surface, b Bird) {
	size := g.cfg.Bird.Size
	rx, ry := size/2, size*0.4

	dst.FillEllipse(b.X, b.Y, rx+1, ry+1, b.Rotation, birdOutline)
	dst.FillEllipse(b.X, b.Y, rx, ry, b.Rotation, birdBody)

	local := func(x, y float64) (float64, float64) {
		return rotate(x, y, b.Rotation, b.X, b.Y)
	}

	ex, ey := local(-size/5, -size/5)
	dst.FillCircle(ex, ey, size/5, core.White)
	px, py := local(-size*0.15, -size/5)
	dst.FillCircle(px, py, size/10, core.Black)

	ax, ay := local(size/3, 0)
	bx, by := local(size/2+5, -3)
	cx, cy := local(size/2+5, 3)
	dst.FillPolygon([]core.Point{{X: ax, Y: ay}, {X: bx, Y: by}, {X: cx, Y: cy}}, birdBeak)
}
