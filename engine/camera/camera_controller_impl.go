package camera

import "github.com/go-gl/mathgl/mgl32"

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	speed float32

	// pressed holds one held flag per Direction.
	pressed [directionCount]bool

	bindings map[uint32]Direction
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller bound to the default WASD keys
// with a speed of 0.2 world units per tick.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		speed:    0.2,
		bindings: DefaultBindings(),
	}

	for _, option := range options {
		option(cc)
	}

	return cc
}

func (cc *cameraControllerImpl) ProcessInput(event InputEvent) bool {
	direction, ok := cc.bindings[event.Key]
	if !ok {
		return false
	}
	switch event.State {
	case KeyPressed:
		cc.pressed[direction] = true
	case KeyReleased:
		cc.pressed[direction] = false
	default:
		return false
	}
	return true
}

func (cc *cameraControllerImpl) Update(cam Camera) {
	eye := cam.Eye()
	target := cam.Target()

	forward := target.Sub(eye)
	forwardDir := forward.Normalize()
	forwardLen := forward.Len()

	// The guard keeps the eye from reaching or passing the target.
	if cc.pressed[DirectionForward] && forwardLen > cc.speed {
		eye = eye.Add(forwardDir.Mul(cc.speed))
	}
	if cc.pressed[DirectionBackward] {
		eye = eye.Sub(forwardDir.Mul(cc.speed))
	}

	// right uses the direction from before the dolly; forward is re-measured after it.
	right := forwardDir.Cross(cam.Up())
	forward = target.Sub(eye)
	forwardLen = forward.Len()

	if cc.pressed[DirectionRight] {
		eye = orbit(target, forward.Add(right.Mul(cc.speed)), forwardLen)
	}
	if cc.pressed[DirectionLeft] {
		eye = orbit(target, forward.Sub(right.Mul(cc.speed)), forwardLen)
	}

	cam.SetEye(eye)
}

// orbit places the eye at radius from target, looking along dir.
func orbit(target, dir mgl32.Vec3, radius float32) mgl32.Vec3 {
	return target.Sub(dir.Normalize().Mul(radius))
}

func (cc *cameraControllerImpl) Intents() Intents {
	return Intents{
		Forward:  cc.pressed[DirectionForward],
		Backward: cc.pressed[DirectionBackward],
		Left:     cc.pressed[DirectionLeft],
		Right:    cc.pressed[DirectionRight],
	}
}

func (cc *cameraControllerImpl) Speed() float32 {
	return cc.speed
}

func (cc *cameraControllerImpl) SetSpeed(speed float32) {
	cc.speed = speed
}

func (cc *cameraControllerImpl) Bindings() map[uint32]Direction {
	out := make(map[uint32]Direction, len(cc.bindings))
	for k, d := range cc.bindings {
		out[k] = d
	}
	return out
}

func (cc *cameraControllerImpl) SetBindings(bindings map[uint32]Direction) {
	WithBindings(bindings)(cc)
	cc.pressed = [directionCount]bool{}
}
