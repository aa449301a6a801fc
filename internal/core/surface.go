package core

// Surface is a 2D drawing target addressed in world pixels.
// The simulation renders through it without knowing whether the frame ends
// up in terminal cells or a GPU-backed window.
type Surface interface {
	// Size returns the current drawable area in world pixels.
	Size() (w, h float64)
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, width float64, c Color)
	// FillVerticalGradient fills r blending from top to bottom.
	FillVerticalGradient(r Rect, top, bottom Color)
	FillCircle(cx, cy, radius float64, c Color)
	// FillEllipse fills an ellipse centered on (cx, cy) rotated by angle degrees
	// clockwise (y points down).
	FillEllipse(cx, cy, rx, ry, angle float64, c Color)
	FillPolygon(pts []Point, c Color)
	// MeasureText returns the extent DrawText would cover.
	MeasureText(text string) (w, h float64)
	// DrawText draws text with its top-left corner at (x, y).
	DrawText(x, y float64, text string, c Color)
}
