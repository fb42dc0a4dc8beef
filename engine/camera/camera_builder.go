package camera

import (
	"github.com/Carmen-Shannon/oxy-cam/engine/renderer/bind_group_provider"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithEye sets the camera's world-space position.
//
// Parameters:
//   - x, y, z: eye position components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's eye
func WithEye(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.eye = mgl32.Vec3{x, y, z}
	}
}

// WithTarget sets the look-at point.
//
// Parameters:
//   - x, y, z: target position components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's target
func WithTarget(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.target = mgl32.Vec3{x, y, z}
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up vector
func WithUp(x, y, z float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = mgl32.Vec3{x, y, z}
	}
}

// WithFovy sets the camera's vertical field of view in radians.
//
// Parameters:
//   - fovy: field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFovy(fovy float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fovy = fovy
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithNear sets the near clipping plane distance.
//
// Parameters:
//   - znear: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNear(znear float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.znear = znear
	}
}

// WithFar sets the far clipping plane distance.
//
// Parameters:
//   - zfar: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFar(zfar float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zfar = zfar
	}
}

// WithClipSpace selects the clip-space correction for a known backend convention.
//
// Parameters:
//   - space: the backend clip space
//
// Returns:
//   - CameraBuilderOption: functional option to set the clip correction
func WithClipSpace(space ClipSpace) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.clipCorrection = space.Matrix()
	}
}

// WithClipCorrection sets an arbitrary clip-space correction matrix, for backends
// not covered by ClipSpace.
//
// Parameters:
//   - m: the column-major correction matrix
//
// Returns:
//   - CameraBuilderOption: functional option to set the clip correction
func WithClipCorrection(m mgl32.Mat4) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.clipCorrection = m
	}
}

// WithBindGroupProvider attaches a bind group provider to the camera.
// The provider holds the GPU uniform buffer the CameraUniform bytes are written to.
//
// Parameters:
//   - provider: the bind group provider to attach
//
// Returns:
//   - CameraBuilderOption: functional option to set the bind group provider
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.bindGroupProvider = provider
	}
}
