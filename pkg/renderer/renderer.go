package renderer

import (
	"errors"

	"termray/pkg/scene"
)

// Display receives the glyphs of a rendered frame. Implementations
// need only accept writes for the cells of the camera's grid; the
// renderer never writes outside [0,height) x [0,width).
type Display interface {
	SetGlyph(row, col int, glyph rune)
}

// ErrEmptyScene is returned when a renderer is built over a scene with
// no surfaces: the nearest-surface query has no defined result there,
// so rendering is refused up front instead of failing per pixel.
var ErrEmptyScene = errors.New("renderer: scene has no surfaces")

// Renderer draws a scene through a camera onto a display, one full
// frame per call. It is strictly single-threaded: the frame for the
// current camera state is computed in one pass with no partial or
// incremental updates.
type Renderer struct {
	scene  *scene.Scene
	config MarchConfig
}

// New creates a renderer for the given scene
func New(s *scene.Scene) (*Renderer, error) {
	if len(s.Surfaces) == 0 {
		return nil, ErrEmptyScene
	}
	return &Renderer{
		scene:  s,
		config: DefaultMarchConfig(),
	}, nil
}

// SetMarchConfig updates the sphere-tracing configuration
func (r *Renderer) SetMarchConfig(config MarchConfig) {
	r.config = config
}

// RenderFrame computes every cell of the camera's grid and writes the
// resulting glyphs to the display, row-major. Cells are independent;
// the same scene and camera state always produce the identical frame.
func (r *Renderer) RenderFrame(camera *Camera, display Display) {
	for row := 0; row < camera.Height(); row++ {
		for col := 0; col < camera.Width(); col++ {
			glyph := Background
			if surf, point, ok := r.march(camera.Ray(col, row)); ok {
				glyph = Glyph(surf.Shade(point, r.scene.Lights))
			}
			display.SetGlyph(row, col, glyph)
		}
	}
}
