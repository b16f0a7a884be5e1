package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// NoHighlight is the reflection exponent of surfaces without a specular highlight
const NoHighlight = -1

// planeParallelEpsilon rejects rays almost parallel to a plane
const planeParallelEpsilon = 1e-4

// Surface holds the shading parameters shared by every shape
type Surface struct {
	Color              core.Color // Base color scaled by the computed light intensity
	ReflectionExponent int        // Phong highlight sharpness, NoHighlight disables it
	SpecularWeight     float64    // Fraction of the final color taken from the mirror reflection, in [0,1]
}

// HasHighlight reports whether the surface produces a specular highlight
func (s Surface) HasHighlight() bool {
	return s.ReflectionExponent >= 0
}

// Shape is implemented by every intersectable primitive: Sphere, Plane and Background.
// The set is closed; the unexported method keeps other packages from adding variants.
type Shape interface {
	// Hit returns the nearest ray parameter in the open interval (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (float64, bool)
	// NormalAt returns the surface normal at a point on the shape
	NormalAt(point core.Vec3) core.Vec3
	// Surface returns the shading parameters of the shape
	Surface() Surface

	closed()
}

// inWindow reports whether t lies strictly inside (tMin, tMax)
func inWindow(t, tMin, tMax float64) bool {
	return t > tMin && t < tMax
}
