package scene

import (
	"termray/pkg/core"
	"termray/pkg/geometry"
)

// Scene contains all the elements needed for rendering. It is built
// once at startup and read-only afterwards: a frame render never
// mutates it.
type Scene struct {
	Surfaces []geometry.Surface
	Lights   []core.Light
}

// Nearest returns the surface closest to point p and its signed
// distance. Ties go to the earlier surface in the list: only a strictly
// smaller distance replaces the current minimum, so the result is
// deterministic across calls. The second sphere of two coincident ones
// never wins.
//
// An empty scene has no nearest surface; ok is false.
func (s *Scene) Nearest(p core.Vec3) (nearest geometry.Surface, dist float64, ok bool) {
	if len(s.Surfaces) == 0 {
		return nil, 0, false
	}
	nearest = s.Surfaces[0]
	dist = nearest.Distance(p)
	for _, surf := range s.Surfaces[1:] {
		if d := surf.Distance(p); d < dist {
			nearest, dist = surf, d
		}
	}
	return nearest, dist, true
}
