package dodge

import "github.com/vovakirdan/tui-dodge/internal/core"

// Player is the circle steered by the keyboard.
type Player struct {
	Pos    core.Vec2
	Radius float64
	Speed  float64 // World units per frame per intent unit
}

// Circle returns the player's collision shape.
func (p Player) Circle() core.Circle {
	return core.Circle{Center: p.Pos, Radius: p.Radius}
}

// Update moves the player by intent*speed and clamps it fully inside b.
// Diagonal intent is not normalized, so diagonals cover more ground.
func (p *Player) Update(in core.Intent, b core.Bounds) {
	p.Pos = p.Pos.Add(in.Vec().Scale(p.Speed))
	p.Pos.X = core.ClampAxis(p.Pos.X, p.Radius, b.W)
	p.Pos.Y = core.ClampAxis(p.Pos.Y, p.Radius, b.H)
}

// Hazard is an autonomously bouncing circle.
type Hazard struct {
	Pos    core.Vec2
	Vel    core.Vec2 // World units per frame
	Radius float64
}

// Circle returns the hazard's collision shape.
func (h Hazard) Circle() core.Circle {
	return core.Circle{Center: h.Pos, Radius: h.Radius}
}

// Update advances the hazard by its velocity, then flips each velocity
// component whose axis edge the circle now crosses. Position is not
// corrected, so a hazard may overshoot an edge by one frame of travel.
func (h *Hazard) Update(b core.Bounds) {
	h.Pos = h.Pos.Add(h.Vel)
	if core.Crosses(h.Pos.X, h.Radius, b.W) {
		h.Vel.X = -h.Vel.X
	}
	if core.Crosses(h.Pos.Y, h.Radius, b.H) {
		h.Vel.Y = -h.Vel.Y
	}
}

// Collides reports whether two circles overlap: the distance between
// centers is strictly less than the sum of radii.
func Collides(a, b core.Circle) bool {
	return a.Overlaps(b)
}
