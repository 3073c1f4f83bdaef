package core

import "math"

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2.0

// Viewport maps world coordinates onto a rectangle of terminal cells.
type Viewport struct {
	World Bounds
	Area  Rect
}

// FitViewport returns the largest viewport that shows the whole world at its
// true aspect ratio inside a cols x rows terminal, centered.
func FitViewport(world Bounds, cols, rows int) Viewport {
	vp := Viewport{World: world}
	if cols <= 0 || rows <= 0 || world.W <= 0 || world.H <= 0 {
		return vp
	}

	// Width/height ratio of the world expressed in cells
	ratio := world.W / world.H * CellAspect

	w, h := cols, rows
	if float64(cols)/float64(rows) > ratio {
		w = int(math.Round(float64(rows) * ratio))
	} else {
		h = int(math.Round(float64(cols) / ratio))
	}
	w = Clamp(w, 1, cols)
	h = Clamp(h, 1, rows)

	vp.Area = NewRect((cols-w)/2, (rows-h)/2, w, h)
	return vp
}

// ScaleX returns cells per world unit horizontally.
func (v Viewport) ScaleX() float64 {
	if v.World.W <= 0 {
		return 0
	}
	return float64(v.Area.W) / v.World.W
}

// ScaleY returns cells per world unit vertically.
func (v Viewport) ScaleY() float64 {
	if v.World.H <= 0 {
		return 0
	}
	return float64(v.Area.H) / v.World.H
}

// Project converts a world point to fractional cell coordinates.
func (v Viewport) Project(p Vec2) (float64, float64) {
	return float64(v.Area.X) + p.X*v.ScaleX(), float64(v.Area.Y) + p.Y*v.ScaleY()
}

// Empty reports whether the viewport has no visible cells.
func (v Viewport) Empty() bool {
	return v.Area.W <= 0 || v.Area.H <= 0
}
