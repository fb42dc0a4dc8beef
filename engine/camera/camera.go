package camera

import (
	"math"
	"strconv"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-cam/engine/renderer/bind_group_provider"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraCount is an atomic counter used to generate unique bind group provider names for each camera instance.
var cameraCount atomic.Uint64

// cameraImpl holds the viewpoint geometry. It is owned by a single frame loop and is not synchronized.
type cameraImpl struct {
	eye    mgl32.Vec3
	target mgl32.Vec3
	up     mgl32.Vec3

	aspect float32
	fovy   float32
	znear  float32
	zfar   float32

	clipCorrection mgl32.Mat4

	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Camera defines the interface for the camera model.
// The camera holds eye/target/up and perspective settings and derives the
// view-projection matrix on demand. It performs no validation: eye == target,
// fovy outside (0, π), znear >= zfar or a non-positive aspect are caller
// preconditions and produce NaN or singular matrices when violated.
type Camera interface {
	// Eye returns the camera position in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Eye() mgl32.Vec3

	// Target returns the look-at point in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the target position
	Target() mgl32.Vec3

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Fovy returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fovy() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ClipCorrection returns the backend clip-space correction applied after projection.
	//
	// Returns:
	//   - mgl32.Mat4: the correction matrix
	ClipCorrection() mgl32.Mat4

	// ViewMatrix returns the right-handed look-at matrix for the current eye, target and up.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the right-handed perspective matrix for the current projection parameters.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix (column-major)
	ProjectionMatrix() mgl32.Mat4

	// BuildViewProjectionMatrix computes clipCorrection * projection * view.
	// Pure: repeated calls on unchanged state return bit-identical results.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix (column-major)
	BuildViewProjectionMatrix() mgl32.Mat4

	// Frustum returns the world-space view volume for the current state.
	// It does not depend on the clip-space correction.
	//
	// Returns:
	//   - Frustum: the six frustum planes
	Frustum() Frustum

	// BindGroupProvider returns the camera's bind group provider for GPU resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the bind group provider or nil
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetEye moves the camera to a new world-space position.
	//
	// Parameters:
	//   - eye: the new eye position
	SetEye(eye mgl32.Vec3)

	// SetTarget sets the look-at point.
	//
	// Parameters:
	//   - target: the new target position
	SetTarget(target mgl32.Vec3)

	// SetUp sets the camera's up vector.
	//
	// Parameters:
	//   - up: the new up vector
	SetUp(up mgl32.Vec3)

	// SetAspect sets the aspect ratio (width / height). Driven by window resize notifications.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetFovy sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fovy: field of view in radians
	SetFovy(fovy float32)

	// SetNear sets the near clipping plane distance.
	//
	// Parameters:
	//   - znear: near plane distance
	SetNear(znear float32)

	// SetFar sets the far clipping plane distance.
	//
	// Parameters:
	//   - zfar: far plane distance
	SetFar(zfar float32)

	// SetClipCorrection replaces the clip-space correction matrix.
	//
	// Parameters:
	//   - m: the new correction matrix
	SetClipCorrection(m mgl32.Mat4)

	// SetBindGroupProvider sets the camera's bind group provider.
	//
	// Parameters:
	//   - provider: the bind group provider to set
	SetBindGroupProvider(provider bind_group_provider.BindGroupProvider)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera. Defaults place the eye at (0, 1, 2) looking at the
// origin with +Y up, a 45 degree field of view, a [0.1, 100] depth range and the
// WebGPU clip-space correction.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	label := "camera_" + strconv.FormatUint(cameraCount.Add(1)-1, 10)
	c := &cameraImpl{
		eye:            mgl32.Vec3{0, 1, 2},
		target:         mgl32.Vec3{0, 0, 0},
		up:             mgl32.Vec3{0, 1, 0},
		aspect:         1.0,
		fovy:           45.0 * (math.Pi / 180.0), // radians
		znear:          0.1,
		zfar:           100.0,
		clipCorrection: ClipSpaceWebGPU.Matrix(),
		bindGroupProvider: bind_group_provider.NewBindGroupProvider(
			label,
			bind_group_provider.WithLayoutDescriptor(CameraBindGroupLayoutDescriptor(label+" Layout")),
		),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Eye() mgl32.Vec3 {
	return c.eye
}

func (c *cameraImpl) Target() mgl32.Vec3 {
	return c.target
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) Fovy() float32 {
	return c.fovy
}

func (c *cameraImpl) Near() float32 {
	return c.znear
}

func (c *cameraImpl) Far() float32 {
	return c.zfar
}

func (c *cameraImpl) ClipCorrection() mgl32.Mat4 {
	return c.clipCorrection
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	return ViewMatrix(c.eye, c.target, c.up)
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	return ProjectionMatrix(c.fovy, c.aspect, c.znear, c.zfar)
}

func (c *cameraImpl) BuildViewProjectionMatrix() mgl32.Mat4 {
	return ViewProjectionMatrix(c.clipCorrection, c.ProjectionMatrix(), c.ViewMatrix())
}

func (c *cameraImpl) Frustum() Frustum {
	return NewFrustum(c.ProjectionMatrix().Mul4(c.ViewMatrix()))
}

func (c *cameraImpl) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return c.bindGroupProvider
}

func (c *cameraImpl) SetEye(eye mgl32.Vec3) {
	c.eye = eye
}

func (c *cameraImpl) SetTarget(target mgl32.Vec3) {
	c.target = target
}

func (c *cameraImpl) SetUp(up mgl32.Vec3) {
	c.up = up
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.aspect = aspect
}

func (c *cameraImpl) SetFovy(fovy float32) {
	c.fovy = fovy
}

func (c *cameraImpl) SetNear(znear float32) {
	c.znear = znear
}

func (c *cameraImpl) SetFar(zfar float32) {
	c.zfar = zfar
}

func (c *cameraImpl) SetClipCorrection(m mgl32.Mat4) {
	c.clipCorrection = m
}

func (c *cameraImpl) SetBindGroupProvider(provider bind_group_provider.BindGroupProvider) {
	c.bindGroupProvider = provider
}
