package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center  core.Vec3
	Radius  float64
	Shading Surface
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, surface Surface) *Sphere {
	return &Sphere{
		Center:  center,
		Radius:  radius,
		Shading: surface,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (float64, bool) {
	t1, t2, ok := s.Roots(ray)
	if !ok {
		return 0, false
	}

	// Try the closer intersection point first, then the farther one
	if inWindow(t1, tMin, tMax) {
		return t1, true
	}
	if inWindow(t2, tMin, tMax) {
		return t2, true
	}
	return 0, false
}

// Roots solves the ray/sphere quadratic and returns both roots with t1 <= t2.
// ok is false when the discriminant is negative.
func (s *Sphere) Roots(ray core.Ray) (t1, t2 float64, ok bool) {
	oc := ray.Origin.Subtract(s.Center)

	// k1*t² + k2*t + k3 = 0
	k1 := ray.Direction.Dot(ray.Direction)
	k2 := 2 * oc.Dot(ray.Direction)
	k3 := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := k2*k2 - 4*k1*k3
	if discriminant < 0 || k1 == 0 {
		return 0, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t1 = (-k2 - sqrtD) / (2 * k1)
	t2 = (-k2 + sqrtD) / (2 * k1)
	return t1, t2, true
}

// NormalAt returns the outward unit normal at point
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Surface returns the shading parameters of the sphere
func (s *Sphere) Surface() Surface { return s.Shading }

func (*Sphere) closed() {}
