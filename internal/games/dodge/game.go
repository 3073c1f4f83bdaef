// Package dodge implements the circle-dodging scene.
// The player steers a circle with WASD while hazards bounce around the
// world; touching any hazard sends the player back to the center.
package dodge

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Visual characters for rendering
const (
	FillChar = '█'
)

// Default scene settings
const (
	DefaultPlayerRadius = 10.0
	DefaultPlayerSpeed  = 5.0
	DefaultHazardCount  = 10
	DefaultHazardRadius = 15.0
	DefaultHazardSpeed  = 3.0
)

// Params holds the tunable scene settings.
type Params struct {
	Title        string
	PlayerRadius float64
	PlayerSpeed  float64
	HazardCount  int
	HazardRadius float64
	HazardSpeed  float64
	Palette      config.Palette
}

// DefaultParams returns the stock scene settings.
func DefaultParams() Params {
	return Params{
		Title:        "Game",
		PlayerRadius: DefaultPlayerRadius,
		PlayerSpeed:  DefaultPlayerSpeed,
		HazardCount:  DefaultHazardCount,
		HazardRadius: DefaultHazardRadius,
		HazardSpeed:  DefaultHazardSpeed,
		Palette: config.Palette{
			Background: core.ColorBlack,
			Player:     core.ColorRed,
			Hazard:     core.ColorBlue,
		},
	}
}

// ParamsFromConfig converts a validated configuration into scene settings.
func ParamsFromConfig(cfg config.DodgeConfig) (Params, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return Params{}, fmt.Errorf("dodge: %w", err)
	}
	return Params{
		Title:        cfg.Window.Title,
		PlayerRadius: cfg.Player.Radius,
		PlayerSpeed:  cfg.Player.Speed,
		HazardCount:  cfg.Hazards.Count,
		HazardRadius: cfg.Hazards.Radius,
		HazardSpeed:  cfg.Hazards.Speed,
		Palette:      palette,
	}, nil
}

// Scene owns all simulation state: one player and an ordered set of hazards.
type Scene struct {
	params  Params
	bounds  core.Bounds
	player  Player
	hazards []Hazard
	frame   uint64
	rng     *rand.Rand
}

// New creates a scene with the given settings. Call Reset before stepping.
func New(params Params) *Scene {
	return &Scene{params: params}
}

// Title returns the window title for this scene.
func (s *Scene) Title() string {
	return s.params.Title
}

// Reset places the player at the world center and spawns the hazards at
// random positions drawn from the runtime seed.
func (s *Scene) Reset(runtime core.RuntimeConfig) {
	s.bounds = runtime.Bounds()
	s.rng = rand.New(rand.NewSource(runtime.Seed))
	s.frame = 0

	s.player = Player{
		Pos:    s.bounds.Center(),
		Radius: s.params.PlayerRadius,
		Speed:  s.params.PlayerSpeed,
	}

	s.hazards = make([]Hazard, s.params.HazardCount)
	for i := range s.hazards {
		r := s.params.HazardRadius
		s.hazards[i] = Hazard{
			Pos: core.Vec2{
				X: s.spawnAxis(r, s.bounds.W),
				Y: s.spawnAxis(r, s.bounds.H),
			},
			Vel:    core.Vec2{X: s.params.HazardSpeed, Y: s.params.HazardSpeed},
			Radius: r,
		}
	}
}

// spawnAxis picks a coordinate that keeps a circle of radius r inside [0, bound].
func (s *Scene) spawnAxis(r, bound float64) float64 {
	span := bound - 2*r
	if span <= 0 {
		return bound / 2
	}
	return r + s.rng.Float64()*span
}

// Step advances the scene by one frame: move the player, move every hazard,
// then resolve collisions against the player's post-move position.
func (s *Scene) Step(in core.Intent) core.StepResult {
	s.frame++

	s.player.Update(in, s.bounds)
	for i := range s.hazards {
		s.hazards[i].Update(s.bounds)
	}

	hits := s.ResolveCollisions()
	return core.StepResult{
		Frame: s.frame,
		Hits:  hits,
		Reset: hits > 0,
	}
}

// ResolveCollisions tests every hazard against a single snapshot of the
// player and, if any overlap, moves the player to the world center once.
// Returns the number of overlapping hazards. Hazards are never modified.
func (s *Scene) ResolveCollisions() int {
	snapshot := s.player.Circle()

	hits := 0
	for i := range s.hazards {
		if Collides(snapshot, s.hazards[i].Circle()) {
			hits++
		}
	}

	if hits > 0 {
		s.player.Pos = s.bounds.Center()
	}
	return hits
}

// Player returns a copy of the player state.
func (s *Scene) Player() Player {
	return s.player
}

// Hazards returns a copy of the hazards in spawn order.
func (s *Scene) Hazards() []Hazard {
	out := make([]Hazard, len(s.hazards))
	copy(out, s.hazards)
	return out
}

// Frame returns the number of frames simulated since Reset.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// Bounds returns the world rectangle.
func (s *Scene) Bounds() core.Bounds {
	return s.bounds
}
