package dodge

import (
	"fmt"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Render clears dst to the background color and draws the player followed
// by every hazard in order, projected through a viewport fitted to dst.
func (s *Scene) Render(dst *core.Screen) error {
	dst.SetBackground(s.params.Palette.Background)
	dst.Clear()

	vp := core.FitViewport(s.bounds, dst.Width(), dst.Height())
	if vp.Empty() {
		return nil
	}

	playerCell := core.Cell{Rune: FillChar, Color: s.params.Palette.Player}
	if err := fillCircle(dst, vp, s.player.Circle(), playerCell); err != nil {
		return fmt.Errorf("dodge: draw player: %w", err)
	}

	hazardCell := core.Cell{Rune: FillChar, Color: s.params.Palette.Hazard}
	for i := range s.hazards {
		if err := fillCircle(dst, vp, s.hazards[i].Circle(), hazardCell); err != nil {
			return fmt.Errorf("dodge: draw hazard %d: %w", i, err)
		}
	}
	return nil
}

// fillCircle projects a world circle into cell space. The result is an
// ellipse because cells are taller than they are wide.
func fillCircle(dst *core.Screen, vp core.Viewport, c core.Circle, cell core.Cell) error {
	cx, cy := vp.Project(c.Center)
	return dst.FillEllipse(cx, cy, c.Radius*vp.ScaleX(), c.Radius*vp.ScaleY(), cell)
}
