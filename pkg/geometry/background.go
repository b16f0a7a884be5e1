package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Background is the far-field sentinel. It never reports a hit and only
// supplies the clear color when nothing else is in front of the ray.
type Background struct {
	Color core.Color
}

// NewBackground creates a background with the given clear color
func NewBackground(color core.Color) *Background {
	return &Background{Color: color}
}

// Hit always misses
func (*Background) Hit(core.Ray, float64, float64) (float64, bool) {
	return 0, false
}

// NormalAt returns the zero vector; the background has no geometry
func (*Background) NormalAt(core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Surface returns the clear color with reflection and highlight disabled
func (b *Background) Surface() Surface {
	return Surface{Color: b.Color, ReflectionExponent: 0, SpecularWeight: 0}
}

func (*Background) closed() {}
