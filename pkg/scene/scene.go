package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	Shapes []geometry.Shape // Objects in the scene, the background first
	Lights []lights.Light   // Lights in the scene
	Config renderer.Config  // Recommended camera and sampling configuration
}

// NewScene creates an empty scene with the given clear color and the default render config
func NewScene(name string, background core.Color) *Scene {
	return &Scene{
		Name:   name,
		Shapes: []geometry.Shape{geometry.NewBackground(background)},
		Lights: make([]lights.Light, 0),
		Config: renderer.DefaultConfig(),
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLight appends lights to the scene
func (s *Scene) AddLight(ls ...lights.Light) {
	s.Lights = append(s.Lights, ls...)
}

// GetShapes returns every shape including the background
func (s *Scene) GetShapes() []geometry.Shape {
	return s.Shapes
}

// GetLights returns the scene lights
func (s *Scene) GetLights() []lights.Light {
	return s.Lights
}

// GetPrimitiveCount returns the number of shapes other than the background
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.Shapes {
		if _, ok := shape.(*geometry.Background); !ok {
			count++
		}
	}
	return count
}

// shiny builds a surface with a highlight and a reflection weight
func shiny(color core.Color, exponent int, reflective float64) geometry.Surface {
	return geometry.Surface{Color: color, ReflectionExponent: exponent, SpecularWeight: reflective}
}

// matte builds a surface without highlight or reflection
func matte(color core.Color) geometry.Surface {
	return geometry.Surface{Color: color, ReflectionExponent: geometry.NoHighlight}
}
