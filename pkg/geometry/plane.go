package geometry

import "termray/pkg/core"

// Plane is an infinite plane through Point with unit Normal. Points on
// the normal side are outside, points behind are inside, so a plane
// behaves as a half space under the signed distance query.
type Plane struct {
	Point  core.Vec3
	Normal core.Vec3
	Color  core.Color
}

// NewPlane creates a new plane. The normal is normalized here so the
// distance query stays a plain dot product; it must not be zero-length.
func NewPlane(point, normal core.Vec3, color core.Color) *Plane {
	return &Plane{
		Point:  point,
		Normal: normal.Normalize(),
		Color:  color,
	}
}

// Distance returns the signed distance from p to the plane
func (pl *Plane) Distance(p core.Vec3) float64 {
	return pl.Normal.Dot(p.Subtract(pl.Point))
}

// Shade computes ambient plus Lambertian shading at hit point p
func (pl *Plane) Shade(p core.Vec3, lights []core.Light) core.Color {
	return shadeLambert(p, pl.Normal, pl.Color, lights)
}
