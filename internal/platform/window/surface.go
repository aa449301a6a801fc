// Package window runs the game in a desktop or browser window through
// Ebitengine.
package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Debug font glyph size.
const (
	glyphW = 6
	glyphH = 16
)

const ellipseSegments = 32

// whitePixel is the source texture for DrawTriangles. Vertex colours tint it.
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// Surface draws onto an Ebitengine image.
type Surface struct {
	dst  *ebiten.Image
	text map[string]*ebiten.Image
}

// NewSurface creates a surface. Call Target before each frame.
func NewSurface() *Surface {
	return &Surface{text: make(map[string]*ebiten.Image)}
}

// Target sets the image the next frame is drawn on.
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Size() (w, h float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) FillRect(r core.Rect, c core.Color) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, true)
}

func (s *Surface) StrokeRect(r core.Rect, width float64, c core.Color) {
	vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), c, true)
}

// FillVerticalGradient draws one quad; the GPU interpolates vertex colours.
func (s *Surface) FillVerticalGradient(r core.Rect, top, bottom core.Color) {
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.Right()), float32(r.Bottom())
	vs := []ebiten.Vertex{
		vertex(x0, y0, top),
		vertex(x1, y0, top),
		vertex(x0, y1, bottom),
		vertex(x1, y1, bottom),
	}
	s.dst.DrawTriangles(vs, []uint16{0, 1, 2, 1, 3, 2}, whitePixel, &ebiten.DrawTrianglesOptions{})
}

func (s *Surface) FillCircle(cx, cy, radius float64, c core.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), c, true)
}

func (s *Surface) FillEllipse(cx, cy, rx, ry, angle float64, c core.Color) {
	s.FillPolygon(core.EllipsePolygon(cx, cy, rx, ry, angle, ellipseSegments), c)
}

func (s *Surface) FillPolygon(pts []core.Point, c core.Color) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i] = vertex(vs[i].DstX, vs[i].DstY, c)
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(vs, is, whitePixel, op)
}

func (s *Surface) MeasureText(text string) (w, h float64) {
	return float64(len([]rune(text)) * glyphW), glyphH
}

// DrawText prints with the debug font, which is white; the glyphs are
// rendered once per string and tinted on every draw.
func (s *Surface) DrawText(x, y float64, text string, c core.Color) {
	if text == "" {
		return
	}
	img, ok := s.text[text]
	if !ok {
		w, h := s.MeasureText(text)
		img = ebiten.NewImage(int(w), int(h))
		ebitenutil.DebugPrintAt(img, text, 0, 0)
		s.text[text] = img
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	s.dst.DrawImage(img, op)
}

// Release disposes cached text images.
func (s *Surface) Release() {
	for k, img := range s.text {
		img.Deallocate()
		delete(s.text, k)
	}
}

// trim flushes the text cache once it holds more than limit strings; score
// text changes with every pipe.
func (s *Surface) trim(limit int) {
	if len(s.text) > limit {
		s.Release()
	}
}

func vertex(x, y float32, c core.Color) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 255,
		ColorG: float32(c.G) / 255,
		ColorB: float32(c.B) / 255,
		ColorA: float32(c.A) / 255,
	}
}

var _ core.Surface = (*Surface)(nil)
