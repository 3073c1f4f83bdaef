package core

// Direction is one of the four movement keys, abstracted from physical keys.
type Direction int

const (
	DirUp    Direction = iota // W
	DirLeft                   // A
	DirDown                   // S
	DirRight                  // D
	numDirections
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirLeft:
		return "Left"
	case DirDown:
		return "Down"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Intent is the per-frame movement request for the player.
// Each component is in {-1, 0, +1}.
type Intent struct {
	DX, DY float64
}

// Vec returns the intent as a direction vector (not normalized).
func (i Intent) Vec() Vec2 {
	return Vec2{X: i.DX, Y: i.DY}
}

// IntentFrom builds an intent from the four held flags.
// Opposing keys each contribute and cancel out; neither is suppressed.
func IntentFrom(up, left, down, right bool) Intent {
	var in Intent
	if up {
		in.DY--
	}
	if left {
		in.DX--
	}
	if down {
		in.DY++
	}
	if right {
		in.DX++
	}
	return in
}

// KeyState approximates level-triggered key state from edge-triggered
// key events. Terminals report presses and auto-repeats but no releases,
// so a key counts as held for holdFrames frames after its last press.
type KeyState struct {
	holdFrames uint64
	lastSeen   [numDirections]uint64
	seen       [numDirections]bool
}

// NewKeyState creates a key state that holds each press for holdFrames frames.
// A hold of zero is treated as one frame.
func NewKeyState(holdFrames int) *KeyState {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &KeyState{holdFrames: uint64(holdFrames)}
}

// Press records a press or auto-repeat of d observed before frame is sampled.
func (k *KeyState) Press(d Direction, frame uint64) {
	if d < 0 || d >= numDirections {
		return
	}
	k.lastSeen[d] = frame
	k.seen[d] = true
}

// Held reports whether d is considered down at the given frame.
func (k *KeyState) Held(d Direction, frame uint64) bool {
	if d < 0 || d >= numDirections || !k.seen[d] {
		return false
	}
	return frame < k.lastSeen[d]+k.holdFrames
}

// Intent samples the held keys at frame.
func (k *KeyState) Intent(frame uint64) Intent {
	return IntentFrom(
		k.Held(DirUp, frame),
		k.Held(DirLeft, frame),
		k.Held(DirDown, frame),
		k.Held(DirRight, frame),
	)
}

// Release forgets all held keys.
func (k *KeyState) Release() {
	k.seen = [numDirections]bool{}
}
