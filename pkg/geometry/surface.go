package geometry

import "termray/pkg/core"

// Shading coefficients shared by all surfaces: every surface keeps 30%
// of its own color as ambient light and receives half of each light's
// aligned contribution.
const (
	ambientFactor = 0.3
	diffuseFactor = 0.5
)

// Surface is implemented by anything the renderer can march a ray
// against: a signed distance query plus a shading rule.
type Surface interface {
	// Distance returns the signed distance from p to the surface:
	// positive outside, zero on the surface, negative inside. For the
	// march loop to be safe the result must never exceed the true
	// Euclidean distance from p to the surface.
	Distance(p core.Vec3) float64

	// Shade computes the color at hit point p under the given lights.
	Shade(p core.Vec3, lights []core.Light) core.Color
}

// shadeLambert computes ambient plus Lambertian diffuse shading for a
// hit at point p with unit surface normal n. Lights behind the surface
// contribute nothing; multiple lights accumulate without clamping.
func shadeLambert(p, n core.Vec3, surfaceColor core.Color, lights []core.Light) core.Color {
	color := surfaceColor.Scale(ambientFactor)
	for _, light := range lights {
		lambert := clamp(light.Position.Subtract(p).Normalize().Dot(n), 0, 1)
		color = color.Add(light.Color.Scale(lambert * diffuseFactor))
	}
	return color
}

func clamp(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
