package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point   core.Vec3 // A point on the plane
	Normal  core.Vec3 // Unit normal vector
	Shading Surface
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, surface Surface) *Plane {
	return &Plane{
		Point:   point,
		Normal:  normal.Normalize(), // Ensure normal is normalized
		Shading: surface,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (float64, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Nearly parallel rays would divide by almost zero
	if math.Abs(denominator) <= planeParallelEpsilon {
		return 0, false
	}

	// t = (point_on_plane - ray_origin) · normal / (normal · ray_direction)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !inWindow(t, tMin, tMax) {
		return 0, false
	}
	return t, true
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(core.Vec3) core.Vec3 {
	return p.Normal
}

// Surface returns the shading parameters of the plane
func (p *Plane) Surface() Surface { return p.Shading }

func (*Plane) closed() {}
