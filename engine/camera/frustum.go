package camera

import "github.com/go-gl/mathgl/mgl32"

// Plane is the set of points p with Normal·p + Distance = 0.
// Points with a positive signed distance lie on the inside.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// SignedDistance returns the distance of p from the plane, positive on the inside.
func (p Plane) SignedDistance(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// Frustum planes, in the order they are stored.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// Frustum is the view volume of a camera as six inward-facing planes.
type Frustum struct {
	Planes [6]Plane
}

// NewFrustum extracts the frustum planes from a projection * view matrix with
// OpenGL depth range [-1, 1] (Gribb/Hartmann). Pass the matrix without any
// clip-space correction applied; Camera.Frustum does this.
//
// Parameters:
//   - viewProj: the column-major projection * view matrix
//
// Returns:
//   - Frustum: the frustum with unit-length plane normals
func NewFrustum(viewProj mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := viewProj.Row(0), viewProj.Row(1), viewProj.Row(2), viewProj.Row(3)

	var f Frustum
	f.Planes[FrustumLeft] = planeFromRow(r3.Add(r0))
	f.Planes[FrustumRight] = planeFromRow(r3.Sub(r0))
	f.Planes[FrustumBottom] = planeFromRow(r3.Add(r1))
	f.Planes[FrustumTop] = planeFromRow(r3.Sub(r1))
	f.Planes[FrustumNear] = planeFromRow(r3.Add(r2))
	f.Planes[FrustumFar] = planeFromRow(r3.Sub(r2))
	return f
}

func planeFromRow(row mgl32.Vec4) Plane {
	p := Plane{Normal: row.Vec3(), Distance: row.W()}
	if l := p.Normal.Len(); l > 0 {
		p.Normal = p.Normal.Mul(1 / l)
		p.Distance /= l
	}
	return p
}

// ContainsPoint reports whether point lies inside or on every plane.
func (f Frustum) ContainsPoint(point mgl32.Vec3) bool {
	return f.IntersectsSphere(point, 0)
}

// IntersectsSphere reports whether a sphere is at least partly inside the frustum.
// The test is conservative near the frustum's edges and may report spheres that
// sit just outside a corner.
//
// Parameters:
//   - center: sphere center in world space
//   - radius: sphere radius
//
// Returns:
//   - bool: false only if the sphere is entirely outside one plane
func (f Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, p := range f.Planes {
		if p.SignedDistance(center) < -radius {
			return false
		}
	}
	return true
}
