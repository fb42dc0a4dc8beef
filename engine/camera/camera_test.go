package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-cam/common"
)

func newSceneACamera(options ...CameraBuilderOption) Camera {
	opts := []CameraBuilderOption{
		WithEye(0, 0, 5),
		WithTarget(0, 0, 0),
		WithUp(0, 1, 0),
		WithFovy(mgl32.DegToRad(45)),
		WithAspect(1.0),
		WithNear(0.1),
		WithFar(100),
	}
	return NewCamera(append(opts, options...)...)
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	assert.Equal(t, mgl32.Vec3{0, 1, 2}, c.Eye())
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, c.Target())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, c.Up())
	assert.InDelta(t, math.Pi/4, c.Fovy(), 1e-6)
	assert.Equal(t, float32(1), c.Aspect())
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(100), c.Far())
	assert.Equal(t, ClipSpaceWebGPU.Matrix(), c.ClipCorrection())
	assert.NotNil(t, c.BindGroupProvider())
}

func TestCameraBindGroupProviderLabelsAreUnique(t *testing.T) {
	a := NewCamera()
	b := NewCamera()
	assert.NotEqual(t, a.BindGroupProvider().Label(), b.BindGroupProvider().Label())
}

func TestBuildViewProjectionMatrixIsPure(t *testing.T) {
	c := newSceneACamera()
	eye := c.Eye()

	first := c.BuildViewProjectionMatrix()
	second := c.BuildViewProjectionMatrix()

	assert.Equal(t, first, second)
	assert.Equal(t, eye, c.Eye())
}

func TestBuildViewProjectionMatrixComposition(t *testing.T) {
	c := newSceneACamera()

	want := c.ClipCorrection().Mul4(c.ProjectionMatrix()).Mul4(c.ViewMatrix())
	assert.Equal(t, want, c.BuildViewProjectionMatrix())
}

func TestSceneAProducesFinitePerspective(t *testing.T) {
	c := newSceneACamera()

	vp := c.BuildViewProjectionMatrix()
	assert.False(t, common.HasNaN(vp[:]))

	proj := c.ProjectionMatrix()
	// Right-handed perspective: w' = -z_eye.
	assert.Equal(t, float32(-1), proj.At(3, 2))
	assert.Equal(t, float32(0), proj.At(3, 3))
	assert.Equal(t, float32(0), proj.At(3, 0))
	assert.Equal(t, float32(0), proj.At(3, 1))

	f := float32(1 / math.Tan(float64(mgl32.DegToRad(45))/2))
	assert.InDelta(t, f, proj.At(0, 0), 1e-5)
	assert.InDelta(t, f, proj.At(1, 1), 1e-5)
}

func TestSceneATargetProjectsToScreenCenter(t *testing.T) {
	c := newSceneACamera()

	clip := c.BuildViewProjectionMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	require.Greater(t, clip.W(), float32(0))
	assert.InDelta(t, 0, clip.X()/clip.W(), 1e-6)
	assert.InDelta(t, 0, clip.Y()/clip.W(), 1e-6)

	depth := clip.Z() / clip.W()
	assert.Greater(t, depth, float32(0))
	assert.Less(t, depth, float32(1))
}

func TestClipCorrectionMapsDepthRange(t *testing.T) {
	c := newSceneACamera()

	// Points on the view axis at the near and far planes (eye at z=5 looking down -Z).
	near := mgl32.Vec4{0, 0, 5 - c.Near(), 1}
	far := mgl32.Vec4{0, 0, 5 - c.Far(), 1}

	vp := c.BuildViewProjectionMatrix()
	n := vp.Mul4x1(near)
	f := vp.Mul4x1(far)
	assert.InDelta(t, 0, n.Z()/n.W(), 1e-4)
	assert.InDelta(t, 1, f.Z()/f.W(), 1e-4)

	c.SetClipCorrection(ClipSpaceOpenGL.Matrix())
	vp = c.BuildViewProjectionMatrix()
	n = vp.Mul4x1(near)
	f = vp.Mul4x1(far)
	assert.InDelta(t, -1, n.Z()/n.W(), 1e-4)
	assert.InDelta(t, 1, f.Z()/f.W(), 1e-4)
}

func TestSetAspectChangesOnlyProjection(t *testing.T) {
	c := newSceneACamera()

	view := c.ViewMatrix()
	proj := c.ProjectionMatrix()
	eye, target, up := c.Eye(), c.Target(), c.Up()

	c.SetAspect(16.0 / 9.0)

	assert.Equal(t, view, c.ViewMatrix())
	assert.NotEqual(t, proj, c.ProjectionMatrix())
	assert.Equal(t, eye, c.Eye())
	assert.Equal(t, target, c.Target())
	assert.Equal(t, up, c.Up())

	want := c.ClipCorrection().Mul4(ProjectionMatrix(c.Fovy(), 16.0/9.0, c.Near(), c.Far())).Mul4(view)
	assert.Equal(t, want, c.BuildViewProjectionMatrix())

	// Only the horizontal scale depends on aspect.
	got := c.ProjectionMatrix()
	for i := range got {
		if i == 0 {
			continue
		}
		assert.Equal(t, proj[i], got[i], "element %d", i)
	}
}

func TestDegenerateEyeProducesNaN(t *testing.T) {
	c := NewCamera(WithEye(1, 1, 1), WithTarget(1, 1, 1))

	vp := c.BuildViewProjectionMatrix()
	assert.True(t, common.HasNaN(vp[:]))
}

func TestSettersUpdateState(t *testing.T) {
	c := NewCamera()

	c.SetEye(mgl32.Vec3{1, 2, 3})
	c.SetTarget(mgl32.Vec3{4, 5, 6})
	c.SetUp(mgl32.Vec3{0, 0, 1})
	c.SetFovy(1)
	c.SetNear(0.5)
	c.SetFar(50)

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, c.Eye())
	assert.Equal(t, mgl32.Vec3{4, 5, 6}, c.Target())
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, c.Up())
	assert.Equal(t, float32(1), c.Fovy())
	assert.Equal(t, float32(0.5), c.Near())
	assert.Equal(t, float32(50), c.Far())
}
