package camera

// CameraController converts held-key input into camera motion.
// Input events only toggle persistent intent flags; motion is applied once per
// tick by Update, whether or not any input arrived that tick.
type CameraController interface {
	// ProcessInput applies a key event to the intent flags.
	// A press on a bound key sets its direction, a release clears it.
	//
	// Parameters:
	//   - event: the input event
	//
	// Returns:
	//   - bool: true if the key is bound and the event was consumed
	ProcessInput(event InputEvent) bool

	// Update moves the camera's eye according to the held directions.
	// Forward/backward along the view axis is resolved first, then strafing
	// orbits the eye around the target at constant radius.
	//
	// Parameters:
	//   - cam: the camera to move
	Update(cam Camera)

	// Intents returns the current held-direction flags.
	//
	// Returns:
	//   - Intents: the flag snapshot
	Intents() Intents

	// Speed returns the distance moved per tick in world units.
	//
	// Returns:
	//   - float32: world units per tick
	Speed() float32

	// SetSpeed sets the distance moved per tick in world units.
	//
	// Parameters:
	//   - speed: world units per tick (must be > 0)
	SetSpeed(speed float32)

	// Bindings returns a copy of the key-to-direction bindings.
	//
	// Returns:
	//   - map[uint32]Direction: key code to direction
	Bindings() map[uint32]Direction

	// SetBindings replaces the key-to-direction bindings and clears every held flag,
	// since a release for a key that is no longer bound would never arrive.
	//
	// Parameters:
	//   - bindings: key code to direction
	SetBindings(bindings map[uint32]Direction)
}
