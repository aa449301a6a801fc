package core

import "math"

// Canvas implements Surface on top of a Screen. Every terminal cell is split
// into two square-ish pixels drawn with the upper half block, so vertical
// resolution is doubled. Text is kept in a separate glyph layer that opaque
// paint erases.
type Canvas struct {
	screen *Screen
	cellW  float64 // world pixels per cell column
	cellH  float64 // world pixels per cell row

	cols, rows int // pixel grid (rows is twice the screen height)
	px         []Color
	glyphs     []glyph
}

type glyph struct {
	ch  rune
	fg  Color
	set bool
}

const halfBlock = '▀'

// NewCanvas creates a canvas drawing into screen where one cell covers
// cellW x cellH world pixels.
func NewCanvas(screen *Screen, cellW, cellH float64) *Canvas {
	if cellW <= 0 {
		cellW = 10
	}
	if cellH <= 0 {
		cellH = 20
	}
	c := &Canvas{screen: screen, cellW: cellW, cellH: cellH}
	c.Begin()
	return c
}

// CellSize returns the world size of one terminal cell.
func (c *Canvas) CellSize() (w, h float64) {
	return c.cellW, c.cellH
}

// WorldSize returns the world extent of a cols x rows terminal.
func WorldSize(cols, rows int, cellW, cellH float64) (w, h float64) {
	return float64(cols) * cellW, float64(rows) * cellH
}

// CellToWorld returns the world position of the center of a terminal cell.
func (c *Canvas) CellToWorld(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * c.cellW, (float64(row) + 0.5) * c.cellH
}

// Begin prepares a new frame: the pixel grid follows the screen size and is
// cleared to black.
func (c *Canvas) Begin() {
	c.cols = c.screen.Width()
	c.rows = c.screen.Height() * 2
	n := c.cols * c.rows
	if cap(c.px) < n {
		c.px = make([]Color, n)
		c.glyphs = make([]glyph, c.cols*c.screen.Height())
	}
	c.px = c.px[:n]
	c.glyphs = c.glyphs[:c.cols*c.screen.Height()]
	for i := range c.px {
		c.px[i] = Black
	}
	for i := range c.glyphs {
		c.glyphs[i] = glyph{}
	}
}

// Flush writes the frame into the screen.
func (c *Canvas) Flush() {
	h := c.screen.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < c.cols; x++ {
			top := c.px[(2*y)*c.cols+x]
			bottom := c.px[(2*y+1)*c.cols+x]
			if g := c.glyphs[y*c.cols+x]; g.set {
				c.screen.SetCell(x, y, Cell{Ch: g.ch, Fg: g.fg, Bg: Mix(top, bottom, 0.5)})
				continue
			}
			c.screen.SetCell(x, y, Cell{Ch: halfBlock, Fg: top, Bg: bottom})
		}
	}
}

// Size returns the drawable area in world pixels.
func (c *Canvas) Size() (w, h float64) {
	return WorldSize(c.cols, c.rows/2, c.cellW, c.cellH)
}

func (c *Canvas) pixelW() float64 { return c.cellW }
func (c *Canvas) pixelH() float64 { return c.cellH / 2 }

// span returns the pixel indices whose centers fall in [lo, hi). A non-empty
// interval thinner than a pixel still covers the pixel holding its midpoint.
func span(lo, hi, step float64, n int) (int, int) {
	if hi <= lo {
		return 0, 0
	}
	a := int(math.Ceil(lo/step - 0.5))
	b := int(math.Ceil(hi/step - 0.5))
	if a >= b {
		a = int(math.Floor((lo + hi) / 2 / step))
		b = a + 1
	}
	return Clamp(a, 0, n), Clamp(b, 0, n)
}

func (c *Canvas) plot(i, j int, col Color) {
	if i < 0 || i >= c.cols || j < 0 || j >= c.rows {
		return
	}
	idx := j*c.cols + i
	c.px[idx] = Over(c.px[idx], col)
	if col.A == 255 {
		c.glyphs[(j/2)*c.cols+i].set = false
	}
}

// plotAt plots the pixel containing world point (x, y).
func (c *Canvas) plotAt(x, y float64, col Color) {
	c.plot(int(math.Floor(x/c.pixelW())), int(math.Floor(y/c.pixelH())), col)
}

func (c *Canvas) center(i, j int) (float64, float64) {
	return (float64(i) + 0.5) * c.pixelW(), (float64(j) + 0.5) * c.pixelH()
}

func (c *Canvas) FillRect(r Rect, col Color) {
	x0, x1 := span(r.X, r.Right(), c.pixelW(), c.cols)
	y0, y1 := span(r.Y, r.Bottom(), c.pixelH(), c.rows)
	for j := y0; j < y1; j++ {
		for i := x0; i < x1; i++ {
			c.plot(i, j, col)
		}
	}
}

func (c *Canvas) StrokeRect(r Rect, width float64, col Color) {
	if width <= 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	width = math.Min(width, math.Min(r.W, r.H)/2)
	c.FillRect(NewRect(r.X, r.Y, r.W, width), col)
	c.FillRect(NewRect(r.X, r.Bottom()-width, r.W, width), col)
	c.FillRect(NewRect(r.X, r.Y+width, width, r.H-2*width), col)
	c.FillRect(NewRect(r.Right()-width, r.Y+width, width, r.H-2*width), col)
}

func (c *Canvas) FillVerticalGradient(r Rect, top, bottom Color) {
	if r.H <= 0 {
		return
	}
	x0, x1 := span(r.X, r.Right(), c.pixelW(), c.cols)
	y0, y1 := span(r.Y, r.Bottom(), c.pixelH(), c.rows)
	for j := y0; j < y1; j++ {
		_, cy := c.center(0, j)
		col := Mix(top, bottom, (cy-r.Y)/r.H)
		for i := x0; i < x1; i++ {
			c.plot(i, j, col)
		}
	}
}

// fillShape plots every pixel in the bounding box whose center satisfies
// inside. Shapes smaller than a pixel still mark the pixel under (cx, cy).
func (c *Canvas) fillShape(bounds Rect, cx, cy float64, col Color, inside func(x, y float64) bool) {
	x0, x1 := span(bounds.X, bounds.Right(), c.pixelW(), c.cols)
	y0, y1 := span(bounds.Y, bounds.Bottom(), c.pixelH(), c.rows)
	painted := false
	for j := y0; j < y1; j++ {
		for i := x0; i < x1; i++ {
			x, y := c.center(i, j)
			if inside(x, y) {
				c.plot(i, j, col)
				painted = true
			}
		}
	}
	if !painted {
		c.plotAt(cx, cy, col)
	}
}

func (c *Canvas) FillCircle(cx, cy, radius float64, col Color) {
	if radius <= 0 {
		return
	}
	r2 := radius * radius
	c.fillShape(RectCentered(cx, cy, 2*radius, 2*radius), cx, cy, col, func(x, y float64) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= r2
	})
}

func (c *Canvas) FillEllipse(cx, cy, rx, ry, angle float64, col Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	sin, cos := math.Sincos(angle * math.Pi / 180)
	ext := 2 * math.Max(rx, ry)
	c.fillShape(RectCentered(cx, cy, ext, ext), cx, cy, col, func(x, y float64) bool {
		dx, dy := x-cx, y-cy
		lx := (dx*cos + dy*sin) / rx
		ly := (-dx*sin + dy*cos) / ry
		return lx*lx+ly*ly <= 1
	})
}

func (c *Canvas) FillPolygon(pts []Point, col Color) {
	if len(pts) < 3 {
		return
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	var sx, sy float64
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	c.fillShape(NewRect(minX, minY, maxX-minX, maxY-minY), sx/n, sy/n, col, func(x, y float64) bool {
		return pointInPolygon(pts, x, y)
	})
}

// pointInPolygon applies the even-odd rule.
func pointInPolygon(pts []Point, x, y float64) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func (c *Canvas) MeasureText(text string) (w, h float64) {
	n := 0
	for range text {
		n++
	}
	return float64(n) * c.cellW, c.cellH
}

func (c *Canvas) DrawText(x, y float64, text string, col Color) {
	row := int(math.Floor((y + c.cellH/2) / c.cellH))
	col0 := int(math.Floor((x + c.cellW/2) / c.cellW))
	h := c.rows / 2
	if row < 0 || row >= h {
		return
	}
	fg := Color{R: col.R, G: col.G, B: col.B, A: 255}
	i := 0
	for _, r := range text {
		if cx := col0 + i; cx >= 0 && cx < c.cols {
			c.glyphs[row*c.cols+cx] = glyph{ch: r, fg: fg, set: true}
		}
		i++
	}
}
