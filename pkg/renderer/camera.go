package renderer

import (
	"math"

	"termray/pkg/core"
)

// CameraConfig describes a camera viewing the scene through a
// character grid
type CameraConfig struct {
	Width  int     // Grid width in columns
	Height int     // Grid height in rows
	FOV    float64 // Horizontal field of view in degrees
}

// Camera generates one ray per character cell. Width, height and field
// of view are fixed when the camera is built (from the terminal size at
// startup, or rebuilt wholesale on a terminal resize); the position is
// the only field that changes at runtime, one unit per movement
// command between frames.
type Camera struct {
	width     int
	height    int
	position  core.Vec3
	planeDist float64
}

// NewCamera creates a camera at the given position
func NewCamera(config CameraConfig, position core.Vec3) *Camera {
	return &Camera{
		width:     config.Width,
		height:    config.Height,
		position:  position,
		planeDist: planeDistance(config.Width, config.FOV),
	}
}

// planeDistance is the projection plane distance implied by the field
// of view and the horizontal resolution: the plane on which a cell is
// one world unit wide.
func planeDistance(width int, fovDegrees float64) float64 {
	return (float64(width) / 2.0) / math.Tan(fovDegrees/180.0*math.Pi/2.0)
}

// Ray generates the ray for cell (col, row). The direction is the
// uncentered projection vector (col-w/2, row-h/2, planeDist); it is
// deliberately left unnormalized, and its Z component is always
// non-zero so the direction can never be the zero vector.
func (c *Camera) Ray(col, row int) core.Ray {
	direction := core.NewVec3(
		float64(col)-float64(c.width)/2.0,
		float64(row)-float64(c.height)/2.0,
		c.planeDist,
	)
	return core.NewRay(c.position, direction)
}

// Width returns the grid width in columns
func (c *Camera) Width() int { return c.width }

// Height returns the grid height in rows
func (c *Camera) Height() int { return c.height }

// Position returns the camera's current world position
func (c *Camera) Position() core.Vec3 { return c.position }

// Apply moves the camera by one world unit for a movement command.
// Unknown commands (including NoCommand) leave the camera untouched.
func (c *Camera) Apply(cmd Command) {
	switch cmd {
	case MoveUp:
		c.position.Y -= 1
	case MoveDown:
		c.position.Y += 1
	case MoveLeft:
		c.position.X -= 1
	case MoveRight:
		c.position.X += 1
	case MoveForward:
		c.position.Z += 1
	case MoveBack:
		c.position.Z -= 1
	}
}
