package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithSpeed sets the movement speed.
//
// Parameters:
//   - speed: world units per tick
//
// Returns:
//   - CameraControllerOption: functional option to set the speed
func WithSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.speed = speed
	}
}

// WithBinding binds a key to a direction, replacing any previous binding for that key.
// An unknown direction is ignored.
//
// Parameters:
//   - key: the virtual key code
//   - direction: the direction the key drives
//
// Returns:
//   - CameraControllerOption: functional option to add the binding
func WithBinding(key uint32, direction Direction) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if direction.Valid() {
			cc.bindings[key] = direction
		}
	}
}

// WithBindings replaces the default bindings entirely. Entries with an unknown direction are dropped.
//
// Parameters:
//   - bindings: key code to direction
//
// Returns:
//   - CameraControllerOption: functional option to set the bindings
func WithBindings(bindings map[uint32]Direction) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bindings = make(map[uint32]Direction, len(bindings))
		for k, d := range bindings {
			if d.Valid() {
				cc.bindings[k] = d
			}
		}
	}
}
