package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// LightType identifies one of the supported light variants
type LightType int

const (
	Ambient LightType = iota
	Point
	Directional
)

// String returns the lowercase name of the light type
func (t LightType) String() string {
	switch t {
	case Ambient:
		return "ambient"
	case Point:
		return "point"
	case Directional:
		return "directional"
	default:
		return fmt.Sprintf("LightType(%d)", int(t))
	}
}

// ParseLightType converts a name produced by String back to a LightType
func ParseLightType(name string) (LightType, error) {
	switch name {
	case "ambient":
		return Ambient, nil
	case "point":
		return Point, nil
	case "directional":
		return Directional, nil
	default:
		return 0, fmt.Errorf("unknown light type %q", name)
	}
}

// Light is a light source. Intensities of all lights are summed, never
// normalized; keeping the total sane is up to the scene author.
type Light struct {
	Type      LightType
	Intensity float64
	Position  core.Vec3 // Point lights only
	Direction core.Vec3 // Directional lights only, points from the surface toward the light
}

// NewAmbientLight creates a light that contributes everywhere, regardless of geometry
func NewAmbientLight(intensity float64) Light {
	return Light{Type: Ambient, Intensity: intensity}
}

// NewPointLight creates a light emitting from a single position
func NewPointLight(intensity float64, position core.Vec3) Light {
	return Light{Type: Point, Intensity: intensity, Position: position}
}

// NewDirectionalLight creates a light infinitely far away along direction
func NewDirectionalLight(intensity float64, direction core.Vec3) Light {
	return Light{Type: Directional, Intensity: intensity, Direction: direction}
}

// ToLight returns the un-normalized vector from point to the light and the
// ray parameter bounding shadow tests along it. For point lights the vector
// spans exactly the distance to the light, so the bound is 1. Ambient lights
// have no direction and return ok=false.
func (l Light) ToLight(point core.Vec3) (dir core.Vec3, tMax float64, ok bool) {
	switch l.Type {
	case Point:
		return l.Position.Subtract(point), 1.0, true
	case Directional:
		return l.Direction, math.Inf(1), true
	default:
		return core.Vec3{}, 0, false
	}
}

// TotalIntensity sums the intensity of every light
func TotalIntensity(lights []Light) float64 {
	sum := 0.0
	for _, l := range lights {
		sum += l.Intensity
	}
	return sum
}
