package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrDraw is returned when a drawing primitive cannot be rasterized.
var ErrDraw = errors.New("draw failure")

// Cell is a single character cell of the framebuffer.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D cell buffer for rendering the scene.
// It decouples scene rendering from the terminal, allowing the scene to draw
// using simple cell operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	bg     Color
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded since every
// frame is redrawn from scratch.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// SetBackground changes the color used by Clear.
func (s *Screen) SetBackground(c Color) {
	s.bg = c
}

// Background returns the color used by Clear.
func (s *Screen) Background() Color {
	return s.bg
}

// Clear fills the entire screen with blank background cells.
func (s *Screen) Clear() {
	s.Fill(Cell{Rune: ' ', Color: s.bg})
}

// Fill fills the entire screen with the given cell.
func (s *Screen) Fill(c Cell) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns a blank background cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Color: s.bg}
	}
	return s.cells[y][x]
}

// FillEllipse fills every cell whose center lies inside the axis-aligned
// ellipse centered at (cx, cy) with radii (rx, ry), all in cell units.
// The cell containing the center is always filled so tiny circles stay
// visible. Parts outside the buffer are clipped.
func (s *Screen) FillEllipse(cx, cy, rx, ry float64, c Cell) error {
	for _, v := range []float64{cx, cy, rx, ry} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("screen: ellipse at (%v, %v) radii (%v, %v): %w", cx, cy, rx, ry, ErrDraw)
		}
	}
	if rx < 0 || ry < 0 {
		return fmt.Errorf("screen: negative radius (%v, %v): %w", rx, ry, ErrDraw)
	}

	x0 := clampToCells(math.Floor(cx-rx), s.width)
	x1 := clampToCells(math.Ceil(cx+rx), s.width)
	y0 := clampToCells(math.Floor(cy-ry), s.height)
	y1 := clampToCells(math.Ceil(cy+ry), s.height)

	if rx > 0 && ry > 0 {
		for y := y0; y < y1; y++ {
			dy := (float64(y) + 0.5 - cy) / ry
			for x := x0; x < x1; x++ {
				dx := (float64(x) + 0.5 - cx) / rx
				if dx*dx+dy*dy <= 1 {
					s.cells[y][x] = c
				}
			}
		}
	}

	if cx >= 0 && cx < float64(s.width) && cy >= 0 && cy < float64(s.height) {
		s.cells[int(cy)][int(cx)] = c
	}
	return nil
}

// clampToCells converts a float coordinate to a loop bound within [0, n].
func clampToCells(v float64, n int) int {
	if v < 0 {
		return 0
	}
	if v > float64(n) {
		return n
	}
	return int(v)
}
