package core

// Light is a point light source. Lights illuminate every surface they
// face regardless of distance or occluding geometry: there is no
// attenuation and no shadow testing.
type Light struct {
	Position Vec3
	Color    Color
}

// NewLight creates a new point light
func NewLight(position Vec3, color Color) Light {
	return Light{Position: position, Color: color}
}
