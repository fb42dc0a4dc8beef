package camera

import "github.com/Carmen-Shannon/oxy-cam/common"

// Direction is a logical movement direction understood by the CameraController.
type Direction int

const (
	// DirectionForward moves the eye toward the target.
	DirectionForward Direction = iota
	// DirectionBackward moves the eye away from the target.
	DirectionBackward
	// DirectionLeft orbits the eye around the target.
	DirectionLeft
	// DirectionRight orbits the eye around the target, mirrored from DirectionLeft.
	DirectionRight

	directionCount // must be last
)

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	return d >= DirectionForward && d < directionCount
}

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection resolves a direction name ("forward", "backward", "left", "right").
//
// Parameters:
//   - name: the direction name
//
// Returns:
//   - Direction: the matching direction
//   - bool: false if the name is unknown
func ParseDirection(name string) (Direction, bool) {
	for d := DirectionForward; d < directionCount; d++ {
		if d.String() == name {
			return d, true
		}
	}
	return 0, false
}

// KeyState is the edge carried by an input event.
type KeyState int

const (
	// KeyPressed reports that a key went down (or is auto-repeating).
	KeyPressed KeyState = iota
	// KeyReleased reports that a key went up.
	KeyReleased
)

// InputEvent is a single discrete keyboard event delivered by the window collaborator.
type InputEvent struct {
	// Key is the virtual key code (see common.Key*).
	Key uint32
	// State is whether the key was pressed or released.
	State KeyState
}

// Intents is a snapshot of the controller's held-direction flags.
type Intents struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// DefaultBindings returns the default key bindings: W/S for forward/backward and A/D for left/right.
//
// Returns:
//   - map[uint32]Direction: key code to direction
func DefaultBindings() map[uint32]Direction {
	return map[uint32]Direction{
		common.KeyW: DirectionForward,
		common.KeyS: DirectionBackward,
		common.KeyA: DirectionLeft,
		common.KeyD: DirectionRight,
	}
}
