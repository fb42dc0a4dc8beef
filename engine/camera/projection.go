package camera

import "github.com/go-gl/mathgl/mgl32"

// ViewMatrix builds a right-handed look-at matrix transforming world space into eye space.
// The result holds NaN when eye equals target or up is parallel to the view direction.
//
// Parameters:
//   - eye: camera position in world space
//   - target: the point the camera looks at
//   - up: the up direction defining roll
//
// Returns:
//   - mgl32.Mat4: the column-major view matrix
func ViewMatrix(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, target, up)
}

// ProjectionMatrix builds a right-handed perspective matrix with OpenGL depth range [-1, 1].
// No validation is performed; fovy outside (0, π) or znear >= zfar yields a singular or inverted matrix.
//
// Parameters:
//   - fovy: vertical field of view in radians
//   - aspect: viewport aspect ratio (width / height)
//   - znear: near clip distance
//   - zfar: far clip distance
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func ProjectionMatrix(fovy, aspect, znear, zfar float32) mgl32.Mat4 {
	return mgl32.Perspective(fovy, aspect, znear, zfar)
}

// ViewProjectionMatrix composes clip * projection * view, so view is applied first to a column vector.
//
// Parameters:
//   - clip: the backend clip-space correction
//   - projection: the projection matrix
//   - view: the view matrix
//
// Returns:
//   - mgl32.Mat4: the combined matrix
func ViewProjectionMatrix(clip, projection, view mgl32.Mat4) mgl32.Mat4 {
	return clip.Mul4(projection).Mul4(view)
}
