package dodge

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func newTestScene(t *testing.T, params Params, seed int64) *Scene {
	t.Helper()
	s := New(params)
	s.Reset(testConfig(seed))
	return s
}

func TestSceneReset(t *testing.T) {
	s := newTestScene(t, DefaultParams(), 42)

	p := s.Player()
	if p.Pos != (core.Vec2{X: 400, Y: 300}) {
		t.Errorf("Player should start centered, got %v", p.Pos)
	}
	if p.Radius != 10 || p.Speed != 5 {
		t.Errorf("Player radius/speed = %f/%f, expected 10/5", p.Radius, p.Speed)
	}

	hazards := s.Hazards()
	if len(hazards) != DefaultHazardCount {
		t.Fatalf("len(Hazards()) = %d, expected %d", len(hazards), DefaultHazardCount)
	}
	for i, h := range hazards {
		if h.Radius != 15 || h.Vel != (core.Vec2{X: 3, Y: 3}) {
			t.Errorf("hazard %d: radius %f vel %v, expected 15 and {3 3}", i, h.Radius, h.Vel)
		}
		if h.Pos.X < h.Radius || h.Pos.X > 800-h.Radius || h.Pos.Y < h.Radius || h.Pos.Y > 600-h.Radius {
			t.Errorf("hazard %d spawned straddling an edge at %v", i, h.Pos)
		}
	}
	if s.Frame() != 0 {
		t.Errorf("Frame() = %d after reset, expected 0", s.Frame())
	}
}

func TestSceneDeterminism(t *testing.T) {
	s1 := newTestScene(t, DefaultParams(), 12345)
	s2 := newTestScene(t, DefaultParams(), 12345)

	inputs := []core.Intent{{DX: 1}, {DY: -1}, {DX: -1, DY: 1}, {}}
	for i := 0; i < 300; i++ {
		in := inputs[i%len(inputs)]
		r1 := s1.Step(in)
		r2 := s2.Step(in)
		if r1 != r2 {
			t.Fatalf("frame %d: results differ %+v vs %+v", i, r1, r2)
		}
	}

	if s1.Player() != s2.Player() {
		t.Errorf("Determinism failed: players differ %v vs %v", s1.Player(), s2.Player())
	}
	h1, h2 := s1.Hazards(), s2.Hazards()
	for i := range h1 {
		if h1[i] != h2[i] {
			t.Errorf("Determinism failed: hazard %d differs %v vs %v", i, h1[i], h2[i])
		}
	}
}

func TestSceneSeedsDiffer(t *testing.T) {
	h1 := newTestScene(t, DefaultParams(), 1).Hazards()
	h2 := newTestScene(t, DefaultParams(), 2).Hazards()

	same := true
	for i := range h1 {
		if h1[i].Pos != h2[i].Pos {
			same = false
			break
		}
	}
	if same {
		t.Error("Different seeds should spawn hazards differently")
	}
}

func TestSceneStepMovesEverything(t *testing.T) {
	params := DefaultParams()
	params.HazardCount = 0
	s := newTestScene(t, params, 1)
	s.hazards = []Hazard{{Pos: core.Vec2{X: 100, Y: 100}, Vel: core.Vec2{X: 3, Y: 3}, Radius: 15}}

	result := s.Step(core.Intent{DX: 0, DY: -1})

	if result.Frame != 1 {
		t.Errorf("Frame = %d, expected 1", result.Frame)
	}
	if result.Hits != 0 || result.Reset {
		t.Errorf("Unexpected collision: %+v", result)
	}
	if p := s.Player().Pos; p != (core.Vec2{X: 400, Y: 295}) {
		t.Errorf("Player pos = %v, expected {400 295}", p)
	}
	if h := s.Hazards()[0].Pos; h != (core.Vec2{X: 103, Y: 103}) {
		t.Errorf("Hazard pos = %v, expected {103 103}", h)
	}
}

func TestResolveCollisionsResetsToCenter(t *testing.T) {
	params := DefaultParams()
	params.HazardCount = 0
	s := newTestScene(t, params, 1)

	s.player.Pos = core.Vec2{X: 410, Y: 300}
	s.hazards = []Hazard{{Pos: core.Vec2{X: 400, Y: 300}, Vel: core.Vec2{X: 3, Y: 3}, Radius: 15}}

	hits := s.ResolveCollisions()
	if hits != 1 {
		t.Errorf("ResolveCollisions() = %d, expected 1", hits)
	}
	if p := s.Player().Pos; p != (core.Vec2{X: 400, Y: 300}) {
		t.Errorf("Player should reset to center, got %v", p)
	}

	// Hazard is untouched
	h := s.Hazards()[0]
	if h.Pos != (core.Vec2{X: 400, Y: 300}) || h.Vel != (core.Vec2{X: 3, Y: 3}) {
		t.Errorf("Hazard should not be altered by a collision, got %+v", h)
	}
}

func TestResolveCollisionsUsesSnapshot(t *testing.T) {
	params := DefaultParams()
	params.HazardCount = 0
	s := newTestScene(t, params, 1)

	// One hazard overlaps the player, another sits on the center. Only the
	// first counts: the reset position is never re-tested this frame.
	s.player.Pos = core.Vec2{X: 100, Y: 100}
	s.hazards = []Hazard{
		{Pos: core.Vec2{X: 400, Y: 300}, Radius: 15},
		{Pos: core.Vec2{X: 105, Y: 100}, Radius: 15},
	}

	if hits := s.ResolveCollisions(); hits != 1 {
		t.Errorf("ResolveCollisions() = %d, expected 1", hits)
	}
	if p := s.Player().Pos; p != (core.Vec2{X: 400, Y: 300}) {
		t.Errorf("Player should reset to center, got %v", p)
	}
}

func TestResolveCollisionsOrderIndependent(t *testing.T) {
	params := DefaultParams()
	params.HazardCount = 0

	hazards := []Hazard{
		{Pos: core.Vec2{X: 205, Y: 200}, Radius: 15},
		{Pos: core.Vec2{X: 200, Y: 210}, Radius: 15},
		{Pos: core.Vec2{X: 700, Y: 500}, Radius: 15},
		{Pos: core.Vec2{X: 190, Y: 195}, Radius: 15},
	}

	forward := newTestScene(t, params, 1)
	forward.player.Pos = core.Vec2{X: 200, Y: 200}
	forward.hazards = append([]Hazard(nil), hazards...)

	reversed := newTestScene(t, params, 1)
	reversed.player.Pos = core.Vec2{X: 200, Y: 200}
	for i := len(hazards) - 1; i >= 0; i-- {
		reversed.hazards = append(reversed.hazards, hazards[i])
	}

	hf := forward.ResolveCollisions()
	hr := reversed.ResolveCollisions()
	if hf != 3 || hr != 3 {
		t.Errorf("hits = %d/%d, expected 3/3", hf, hr)
	}
	if forward.Player() != reversed.Player() {
		t.Errorf("Order changed the outcome: %v vs %v", forward.Player(), reversed.Player())
	}
}

func TestStepReportsSingleReset(t *testing.T) {
	params := DefaultParams()
	params.HazardCount = 0
	s := newTestScene(t, params, 1)

	s.player.Pos = core.Vec2{X: 600, Y: 450}
	s.hazards = []Hazard{
		{Pos: core.Vec2{X: 600, Y: 450}, Radius: 15},
		{Pos: core.Vec2{X: 610, Y: 450}, Radius: 15},
	}

	result := s.Step(core.Intent{})
	if result.Hits != 2 || !result.Reset {
		t.Errorf("Step() = %+v, expected 2 hits and a reset", result)
	}
	if p := s.Player().Pos; p != (core.Vec2{X: 400, Y: 300}) {
		t.Errorf("Player should be at center after reset, got %v", p)
	}
}

func TestHazardsReturnsCopy(t *testing.T) {
	s := newTestScene(t, DefaultParams(), 3)
	h := s.Hazards()
	h[0].Pos = core.Vec2{X: -1000, Y: -1000}

	if s.Hazards()[0].Pos == h[0].Pos {
		t.Error("Hazards() should return a copy")
	}
}

func TestRenderDrawsPlayerAndHazards(t *testing.T) {
	params := DefaultParams()
	params.HazardCount = 0
	s := newTestScene(t, params, 1)
	s.hazards = []Hazard{{Pos: core.Vec2{X: 100, Y: 100}, Radius: 15}}

	screen := core.NewScreen(80, 24)
	if err := s.Render(screen); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// 80x24 fits the world in a 64x24 area starting at column 8
	if c := screen.GetCell(40, 12); c.Rune != FillChar || c.Color != core.ColorRed {
		t.Errorf("Player cell = %+v, expected red fill", c)
	}
	if c := screen.GetCell(16, 4); c.Rune != FillChar || c.Color != core.ColorBlue {
		t.Errorf("Hazard cell = %+v, expected blue fill", c)
	}
	if c := screen.GetCell(0, 0); c.Rune != ' ' || c.Color != core.ColorBlack {
		t.Errorf("Background cell = %+v, expected black space", c)
	}
}

func TestRenderDrawOrder(t *testing.T) {
	params := DefaultParams()
	params.HazardCount = 0
	s := newTestScene(t, params, 1)
	s.hazards = []Hazard{{Pos: s.Player().Pos, Radius: 15}}

	screen := core.NewScreen(80, 24)
	if err := s.Render(screen); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if c := screen.GetCell(40, 12); c.Color != core.ColorBlue {
		t.Errorf("Hazard drawn after player should be on top, got %+v", c)
	}
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	params := DefaultParams()
	params.HazardCount = 0
	s := newTestScene(t, params, 1)

	screen := core.NewScreen(80, 24)
	screen.Fill(core.Cell{Rune: 'x', Color: core.ColorGreen})
	if err := s.Render(screen); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if c := screen.GetCell(2, 2); c.Rune != ' ' || c.Color != core.ColorBlack {
		t.Errorf("Render should clear stale cells, got %+v", c)
	}
}

func TestRenderDrawFailure(t *testing.T) {
	s := newTestScene(t, DefaultParams(), 1)
	s.player.Pos.X = math.NaN()

	err := s.Render(core.NewScreen(80, 24))
	if !errors.Is(err, core.ErrDraw) {
		t.Errorf("Render() error = %v, expected ErrDraw", err)
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	s := newTestScene(t, DefaultParams(), 1)
	if err := s.Render(core.NewScreen(0, 0)); err != nil {
		t.Errorf("Render() on empty screen error = %v", err)
	}
}
