package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// ComputeLighting returns the total light intensity arriving at the hit
// point, as seen along ray. The result is not clamped.
func (rt *Raytracer) ComputeLighting(ray core.Ray, hit Hit) float64 {
	point := ray.At(hit.T)
	normal := hit.Shape.NormalAt(point)
	return rt.lightingAt(point, normal, ray.Direction.Negate(), hit.Shape.Surface())
}

// lightingAt sums ambient, diffuse and specular contributions of every light.
// view points from the surface back toward the viewer.
func (rt *Raytracer) lightingAt(point, normal, view core.Vec3, surface geometry.Surface) float64 {
	sum := 0.0

	for _, light := range rt.lights {
		if light.Type == lights.Ambient {
			sum += light.Intensity
			continue
		}

		toLight, tMax, ok := light.ToLight(point)
		if !ok {
			continue
		}

		// Lights behind the surface contribute nothing
		nDotL := normal.Dot(toLight)
		if nDotL <= 0 {
			continue
		}

		if rt.occluded(point, toLight, tMax) {
			continue
		}

		// Diffuse
		sum += light.Intensity * nDotL / (normal.Length() * toLight.Length())

		// Specular
		if surface.HasHighlight() {
			reflected := toLight.Reflect(normal)
			rDotV := reflected.Dot(view)
			if rDotV > 0 {
				cos := rDotV / (reflected.Length() * view.Length())
				sum += light.Intensity * math.Pow(cos, float64(surface.ReflectionExponent))
			}
		}
	}

	return sum
}

// occluded reports whether any shape blocks the segment from point along
// toLight within (Epsilon, tMax). toLight must not be normalized for point
// lights: tMax = 1 marks the light position.
func (rt *Raytracer) occluded(point, toLight core.Vec3, tMax float64) bool {
	shadowRay := core.NewRay(point, toLight)
	for _, shape := range rt.shapes {
		if _, isHit := shape.Hit(shadowRay, Epsilon, tMax); isHit {
			return true
		}
	}
	return false
}
