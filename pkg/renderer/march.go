package renderer

import (
	"termray/pkg/core"
	"termray/pkg/geometry"
)

// MarchConfig contains the sphere-tracing tunables
type MarchConfig struct {
	MaxSteps     int     // March iterations per ray before giving up
	HitThreshold float64 // Distance below which a step counts as a hit, in world units
}

// DefaultMarchConfig returns sensible default values
func DefaultMarchConfig() MarchConfig {
	return MarchConfig{
		MaxSteps:     10,
		HitThreshold: 0.1,
	}
}

// march advances a point from the ray origin along its direction until
// it lands within HitThreshold of a surface, and returns that surface
// and the hit point. Each step advances by the distance to the nearest
// surface, which is safe because no surface can be closer than its own
// signed distance. Exhausting the step budget means the ray hit
// nothing.
func (r *Renderer) march(ray core.Ray) (geometry.Surface, core.Vec3, bool) {
	point := ray.Origin
	invMagnitude := 1.0 / ray.Direction.Length()
	for step := 0; step < r.config.MaxSteps; step++ {
		surf, dist, ok := r.scene.Nearest(point)
		if !ok {
			return nil, core.Vec3{}, false
		}
		if dist < r.config.HitThreshold {
			return surf, point, true
		}
		point = point.Add(ray.Direction.Multiply(dist * invMagnitude))
	}
	return nil, core.Vec3{}, false
}
