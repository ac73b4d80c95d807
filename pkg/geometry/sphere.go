package geometry

import "termray/pkg/core"

// Sphere is a solid sphere with a flat surface color
type Sphere struct {
	Center core.Vec3
	Radius float64
	Color  core.Color
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Color) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// Distance returns the signed distance from p to the sphere's surface.
// This is exact, so the sphere-tracing safety invariant holds with
// equality.
func (s *Sphere) Distance(p core.Vec3) float64 {
	return p.Subtract(s.Center).Length() - s.Radius
}

// Shade computes ambient plus Lambertian shading at hit point p
func (s *Sphere) Shade(p core.Vec3, lights []core.Light) core.Color {
	return shadeLambert(p, s.normalAt(p), s.Color, lights)
}

// normalAt returns the outward unit normal at a point on the surface.
// Undefined at the exact center (zero-length normal); hit points found
// by marching stop at the hit threshold, outside the center.
func (s *Sphere) normalAt(p core.Vec3) core.Vec3 {
	return p.Subtract(s.Center).Normalize()
}
