package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-cam/common"
)

func press(cc CameraController, key uint32) {
	cc.ProcessInput(InputEvent{Key: key, State: KeyPressed})
}

func release(cc CameraController, key uint32) {
	cc.ProcessInput(InputEvent{Key: key, State: KeyReleased})
}

func TestNewCameraControllerDefaults(t *testing.T) {
	cc := NewCameraController()

	assert.Equal(t, float32(0.2), cc.Speed())
	assert.Equal(t, Intents{}, cc.Intents())
	assert.Equal(t, DefaultBindings(), cc.Bindings())
}

func TestProcessInputConsumesBoundKeys(t *testing.T) {
	cc := NewCameraController()

	assert.True(t, cc.ProcessInput(InputEvent{Key: common.KeyW, State: KeyPressed}))
	assert.True(t, cc.Intents().Forward)

	assert.True(t, cc.ProcessInput(InputEvent{Key: common.KeyW, State: KeyReleased}))
	assert.False(t, cc.Intents().Forward)

	assert.False(t, cc.ProcessInput(InputEvent{Key: common.KeyQ, State: KeyPressed}))
	assert.False(t, cc.ProcessInput(InputEvent{Key: common.KeyW, State: KeyState(7)}))
	assert.Equal(t, Intents{}, cc.Intents())
}

func TestProcessInputTracksEachDirection(t *testing.T) {
	cc := NewCameraController()

	press(cc, common.KeyW)
	press(cc, common.KeyS)
	press(cc, common.KeyA)
	press(cc, common.KeyD)
	assert.Equal(t, Intents{Forward: true, Backward: true, Left: true, Right: true}, cc.Intents())

	release(cc, common.KeyS)
	release(cc, common.KeyA)
	assert.Equal(t, Intents{Forward: true, Right: true}, cc.Intents())
}

func TestRepeatedPressIsIdempotent(t *testing.T) {
	cc := NewCameraController()

	press(cc, common.KeyD)
	press(cc, common.KeyD)
	press(cc, common.KeyD)
	release(cc, common.KeyD)

	assert.False(t, cc.Intents().Right)
}

func TestUpdateWithNoIntentLeavesEye(t *testing.T) {
	cam := NewCamera(WithEye(1, 2, 3))
	cc := NewCameraController()

	cc.Update(cam)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cam.Eye())
}

func TestPressThenReleaseBeforeTickDoesNotMove(t *testing.T) {
	cam := NewCamera(WithEye(0, 0, 5))
	cc := NewCameraController()

	press(cc, common.KeyW)
	release(cc, common.KeyW)
	press(cc, common.KeyD)
	release(cc, common.KeyD)
	cc.Update(cam)

	assert.Equal(t, mgl32.Vec3{0, 0, 5}, cam.Eye())
}

func TestForwardStopsAtSpeedFromTarget(t *testing.T) {
	cam := NewCamera(WithEye(0, 0, 10))
	cc := NewCameraController(WithSpeed(2))
	press(cc, common.KeyW)

	for i := 0; i < 20; i++ {
		cc.Update(cam)
	}

	assert.Equal(t, mgl32.Vec3{0, 0, 2}, cam.Eye())
	assert.Equal(t, float32(2), cam.Target().Sub(cam.Eye()).Len())
}

func TestForwardApproachesWithoutCrossingTarget(t *testing.T) {
	cam := NewCamera(WithEye(0, 0, 1))
	cc := NewCameraController(WithSpeed(0.2))
	press(cc, common.KeyW)

	for i := 0; i < 3; i++ {
		cc.Update(cam)
	}
	assert.InDelta(t, 0.4, cam.Eye().Z(), 1e-5)
	assert.Equal(t, float32(0), cam.Eye().X())
	assert.Equal(t, float32(0), cam.Eye().Y())

	for i := 0; i < 50; i++ {
		cc.Update(cam)
	}
	settled := cam.Eye()
	require.Greater(t, settled.Z(), float32(0))
	assert.LessOrEqual(t, settled.Z(), float32(0.2)+1e-5)

	cc.Update(cam)
	assert.Equal(t, settled, cam.Eye())
}

func TestBackwardIsUnconditional(t *testing.T) {
	cam := NewCamera(WithEye(0, 0, 0.1))
	cc := NewCameraController(WithSpeed(0.5))
	press(cc, common.KeyS)

	cc.Update(cam)
	assert.InDelta(t, 0.6, cam.Eye().Z(), 1e-6)

	for i := 0; i < 10; i++ {
		cc.Update(cam)
	}
	assert.InDelta(t, 5.6, cam.Eye().Z(), 1e-4)
}

func TestForwardAndBackwardCancel(t *testing.T) {
	cam := NewCamera(WithEye(0, 0, 5))
	cc := NewCameraController(WithSpeed(1))
	press(cc, common.KeyW)
	press(cc, common.KeyS)

	cc.Update(cam)
	assert.InDelta(t, 5, cam.Eye().Z(), 1e-6)
}

func TestStrafeRightOrbitsTarget(t *testing.T) {
	cam := NewCamera(WithEye(0, 0, 5))
	cc := NewCameraController(WithSpeed(1))
	press(cc, common.KeyD)

	cc.Update(cam)

	root26 := float32(math.Sqrt(26))
	eye := cam.Eye()
	assert.InDelta(t, -5/root26, eye.X(), 1e-5)
	assert.InDelta(t, 0, eye.Y(), 1e-6)
	assert.InDelta(t, 25/root26, eye.Z(), 1e-5)
	assert.InDelta(t, 5, eye.Len(), 1e-5)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, cam.Target())
}

func TestStrafeLeftMirrorsRight(t *testing.T) {
	cam := NewCamera(WithEye(0, 0, 5))
	cc := NewCameraController(WithSpeed(1))
	press(cc, common.KeyA)

	cc.Update(cam)

	root26 := float32(math.Sqrt(26))
	eye := cam.Eye()
	assert.InDelta(t, 5/root26, eye.X(), 1e-5)
	assert.InDelta(t, 25/root26, eye.Z(), 1e-5)
	assert.InDelta(t, 5, eye.Len(), 1e-5)
}

func TestForwardResolvesBeforeStrafe(t *testing.T) {
	cam := NewCamera(WithEye(0, 0, 5))
	cc := NewCameraController(WithSpeed(1))
	press(cc, common.KeyW)
	press(cc, common.KeyD)

	cc.Update(cam)

	// The dolly brings the radius to 4, then the orbit keeps it there.
	root17 := float32(math.Sqrt(17))
	eye := cam.Eye()
	assert.InDelta(t, 4, eye.Len(), 1e-5)
	assert.InDelta(t, -4/root17, eye.X(), 1e-5)
	assert.InDelta(t, 0, eye.Y(), 1e-6)
	assert.InDelta(t, 16/root17, eye.Z(), 1e-5)
}

func TestStrafePreservesRadius(t *testing.T) {
	for _, key := range []uint32{common.KeyA, common.KeyD} {
		cam := NewCamera(WithEye(3, 2, 4), WithTarget(1, 0, -1))
		cc := NewCameraController(WithSpeed(0.3))
		press(cc, key)

		radius := cam.Target().Sub(cam.Eye()).Len()
		for i := 0; i < 100; i++ {
			cc.Update(cam)
			assert.InDelta(t, radius, cam.Target().Sub(cam.Eye()).Len(), 1e-3)
		}
	}
}

func TestCustomBindings(t *testing.T) {
	cc := NewCameraController(
		WithBindings(map[uint32]Direction{common.KeyUp: DirectionForward}),
		WithBinding(common.KeyDown, DirectionBackward),
	)

	assert.False(t, cc.ProcessInput(InputEvent{Key: common.KeyW, State: KeyPressed}))
	assert.True(t, cc.ProcessInput(InputEvent{Key: common.KeyUp, State: KeyPressed}))
	assert.True(t, cc.ProcessInput(InputEvent{Key: common.KeyDown, State: KeyPressed}))
	assert.Equal(t, Intents{Forward: true, Backward: true}, cc.Intents())
}

func TestUnknownDirectionBindingsAreDropped(t *testing.T) {
	cc := NewCameraController(
		WithBinding(common.KeyQ, Direction(9)),
		WithBinding(common.KeyE, Direction(-1)),
	)

	assert.False(t, cc.ProcessInput(InputEvent{Key: common.KeyQ, State: KeyPressed}))
	assert.False(t, cc.ProcessInput(InputEvent{Key: common.KeyE, State: KeyPressed}))
	assert.Equal(t, DefaultBindings(), cc.Bindings())

	cc.SetBindings(map[uint32]Direction{common.KeyUp: DirectionForward, common.KeyQ: directionCount})
	assert.Equal(t, map[uint32]Direction{common.KeyUp: DirectionForward}, cc.Bindings())
	assert.False(t, cc.ProcessInput(InputEvent{Key: common.KeyQ, State: KeyPressed}))
}

func TestBindingsReturnsCopy(t *testing.T) {
	cc := NewCameraController()

	b := cc.Bindings()
	b[common.KeyQ] = DirectionLeft

	assert.False(t, cc.ProcessInput(InputEvent{Key: common.KeyQ, State: KeyPressed}))
	assert.Len(t, cc.Bindings(), 4)
}

func TestSetBindingsReplacesAndClearsHeld(t *testing.T) {
	cc := NewCameraController()
	press(cc, common.KeyW)
	require.True(t, cc.Intents().Forward)

	cc.SetBindings(map[uint32]Direction{common.KeyUp: DirectionForward})

	assert.Equal(t, Intents{}, cc.Intents())
	assert.False(t, cc.ProcessInput(InputEvent{Key: common.KeyW, State: KeyPressed}))
	assert.True(t, cc.ProcessInput(InputEvent{Key: common.KeyUp, State: KeyPressed}))
	assert.Equal(t, map[uint32]Direction{common.KeyUp: DirectionForward}, cc.Bindings())
}

func TestSetSpeed(t *testing.T) {
	cam := NewCamera(WithEye(0, 0, 5))
	cc := NewCameraController()
	cc.SetSpeed(1)
	press(cc, common.KeyW)

	cc.Update(cam)
	assert.Equal(t, float32(1), cc.Speed())
	assert.Equal(t, mgl32.Vec3{0, 0, 4}, cam.Eye())
}

func TestParseDirection(t *testing.T) {
	for d := DirectionForward; d < directionCount; d++ {
		got, ok := ParseDirection(d.String())
		require.True(t, ok)
		assert.Equal(t, d, got)
	}

	_, ok := ParseDirection("up")
	assert.False(t, ok)
}
