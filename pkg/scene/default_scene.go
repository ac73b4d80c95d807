package scene

import (
	"termray/pkg/core"
	"termray/pkg/geometry"
)

// NewDefaultScene creates the built-in scene used when no scene file is
// given: a large red sphere straight ahead, a small one off to the
// left, and a single white light below and to the left of the camera's
// starting position.
func NewDefaultScene() *Scene {
	return &Scene{
		Surfaces: []geometry.Surface{
			geometry.NewSphere(core.NewVec3(0, 0, 50), 5, core.Red),
			geometry.NewSphere(core.NewVec3(-20, 0, 30), 2, core.Red),
		},
		Lights: []core.Light{
			core.NewLight(core.NewVec3(-5, -20, 10), core.White),
		},
	}
}
