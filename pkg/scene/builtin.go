package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewBasicScene creates three matte spheres lit by an ambient, a point and a
// directional light
func NewBasicScene() *Scene {
	s := NewScene("basic", core.NewColor(0, 0, 0))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, 4), 1.0, matte(core.NewColor(255, 0, 0))),
		geometry.NewSphere(core.NewVec3(-2, -1, 8), 1.5, matte(core.NewColor(0, 255, 0))),
		geometry.NewSphere(core.NewVec3(2, -1, 8), 1.5, matte(core.NewColor(0, 0, 255))),
	)
	s.AddLight(
		lights.NewAmbientLight(0.2),
		lights.NewPointLight(0.6, core.NewVec3(0, 0, 0)),
		lights.NewDirectionalLight(0.2, core.NewVec3(1, 4, 4)),
	)
	return s
}

// NewDefaultScene creates four shiny, partly reflective spheres. The yellow
// one is large enough to act as the floor.
func NewDefaultScene() *Scene {
	s := NewScene("default", core.NewColor(0, 0, 0))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1, 3), 1, shiny(core.NewColor(255, 0, 0), 500, 0.2)),
		geometry.NewSphere(core.NewVec3(2, 0, 4), 1, shiny(core.NewColor(0, 0, 255), 500, 0.3)),
		geometry.NewSphere(core.NewVec3(-2, 0, 4), 1, shiny(core.NewColor(0, 255, 0), 10, 0.4)),
		geometry.NewSphere(core.NewVec3(0, -5001, 0), 5000, shiny(core.NewColor(255, 255, 0), 1000, 0.5)),
	)
	s.AddLight(
		lights.NewAmbientLight(0.2),
		lights.NewPointLight(0.6, core.NewVec3(2, 1, 0)),
		lights.NewDirectionalLight(0.2, core.NewVec3(1, 4, 4)),
	)
	return s
}

// NewPlaneScene creates spheres resting on a reflective ground plane under a sky-colored background
func NewPlaneScene() *Scene {
	s := NewScene("plane", core.NewColor(135, 185, 235))

	s.Add(
		geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), shiny(core.NewColor(180, 180, 180), 50, 0.3)),
		geometry.NewSphere(core.NewVec3(0, 0, 5), 1, shiny(core.NewColor(220, 40, 40), 200, 0.1)),
		geometry.NewSphere(core.NewVec3(-2.2, -0.4, 6), 0.6, matte(core.NewColor(40, 200, 60))),
		geometry.NewSphere(core.NewVec3(2.2, -0.25, 6.5), 0.75, shiny(core.NewColor(230, 230, 230), 1000, 0.8)),
	)
	s.AddLight(
		lights.NewAmbientLight(0.15),
		lights.NewPointLight(0.55, core.NewVec3(-3, 4, 1)),
		lights.NewDirectionalLight(0.3, core.NewVec3(1, 3, -2)),
	)
	s.Config.ViewportWidth = 1.6
	s.Config.Width = 640
	s.Config.Height = 400
	return s
}

// NewMirrorsScene creates a sphere between two facing mirrors, producing a
// corridor of reflections cut off by the recursion depth
func NewMirrorsScene() *Scene {
	s := NewScene("mirrors", core.NewColor(20, 20, 30))

	s.Add(
		geometry.NewPlane(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1), shiny(core.NewColor(200, 200, 220), geometry.NoHighlight, 0.85)),
		geometry.NewPlane(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), shiny(core.NewColor(200, 200, 220), geometry.NoHighlight, 0.85)),
		geometry.NewPlane(core.NewVec3(0, -1.5, 0), core.NewVec3(0, 1, 0), matte(core.NewColor(90, 70, 50))),
		geometry.NewSphere(core.NewVec3(0.8, -0.5, 6), 1, shiny(core.NewColor(255, 140, 0), 300, 0.15)),
	)
	s.AddLight(
		lights.NewAmbientLight(0.25),
		lights.NewPointLight(0.6, core.NewVec3(-1, 2, 3)),
	)
	s.Config.Eye = core.NewVec3(-0.5, 0, 0)
	return s
}

// builtins maps scene IDs to their constructors
var builtins = map[string]func() *Scene{
	"basic":   NewBasicScene,
	"default": NewDefaultScene,
	"plane":   NewPlaneScene,
	"mirrors": NewMirrorsScene,
}
