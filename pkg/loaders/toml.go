package loaders

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"termray/pkg/core"
	"termray/pkg/geometry"
	"termray/pkg/renderer"
	"termray/pkg/scene"
)

// sceneFile is the on-disk TOML layout of a scene description
type sceneFile struct {
	FOV     float64       `toml:"fov"`
	March   *marchBlock   `toml:"march"`
	Spheres []sphereBlock `toml:"spheres"`
	Planes  []planeBlock  `toml:"planes"`
	Lights  []lightBlock  `toml:"lights"`
}

type marchBlock struct {
	MaxSteps     int     `toml:"max-steps"`
	HitThreshold float64 `toml:"hit-threshold"`
}

type sphereBlock struct {
	Center [3]float64 `toml:"center"`
	Radius float64    `toml:"radius"`
	Color  string     `toml:"color"`
}

type planeBlock struct {
	Point  [3]float64 `toml:"point"`
	Normal [3]float64 `toml:"normal"`
	Color  string     `toml:"color"`
}

type lightBlock struct {
	Position [3]float64 `toml:"position"`
	Color    string     `toml:"color"`
}

// Options carries the renderer settings a scene file may override.
// Zero-valued fields mean the file left them unset.
type Options struct {
	FOV   float64               // Horizontal field of view in degrees, 0 if unset
	March *renderer.MarchConfig // Sphere-tracing tunables, nil if unset
}

// LoadScene reads a TOML scene description from path. The file must
// define at least one surface; lights are optional (an unlit scene
// renders in ambient light only). Colors are hex strings like
// "#ff0000".
func LoadScene(path string) (*scene.Scene, *Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading scene file: %w", err)
	}
	return parseScene(data)
}

func parseScene(data []byte) (*scene.Scene, *Options, error) {
	var file sceneFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parsing scene file: %w", err)
	}

	s := &scene.Scene{}

	for i, block := range file.Spheres {
		if block.Radius <= 0 {
			return nil, nil, fmt.Errorf("sphere %d: radius must be positive, got %g", i, block.Radius)
		}
		color, err := parseColor(block.Color)
		if err != nil {
			return nil, nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		s.Surfaces = append(s.Surfaces, geometry.NewSphere(vec(block.Center), block.Radius, color))
	}

	for i, block := range file.Planes {
		normal := vec(block.Normal)
		if normal.Length() == 0 {
			return nil, nil, fmt.Errorf("plane %d: normal must be non-zero", i)
		}
		color, err := parseColor(block.Color)
		if err != nil {
			return nil, nil, fmt.Errorf("plane %d: %w", i, err)
		}
		s.Surfaces = append(s.Surfaces, geometry.NewPlane(vec(block.Point), normal, color))
	}

	if len(s.Surfaces) == 0 {
		return nil, nil, fmt.Errorf("scene file defines no surfaces")
	}

	for i, block := range file.Lights {
		color, err := parseColor(block.Color)
		if err != nil {
			return nil, nil, fmt.Errorf("light %d: %w", i, err)
		}
		s.Lights = append(s.Lights, core.NewLight(vec(block.Position), color))
	}

	options := &Options{FOV: file.FOV}
	if file.March != nil {
		march := renderer.DefaultMarchConfig()
		if file.March.MaxSteps != 0 {
			march.MaxSteps = file.March.MaxSteps
		}
		if file.March.HitThreshold != 0 {
			march.HitThreshold = file.March.HitThreshold
		}
		options.March = &march
	}

	return s, options, nil
}

func parseColor(hex string) (core.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.Color{}, fmt.Errorf("parsing color %q: %w", hex, err)
	}
	return core.NewColor(c.R, c.G, c.B), nil
}

func vec(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
