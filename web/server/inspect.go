package server

import (
	"fmt"
	"math"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit                bool       `json:"hit"`
	GeometryType       string     `json:"geometryType"`
	Point              [3]float64 `json:"point"`
	Normal             [3]float64 `json:"normal"`
	Distance           float64    `json:"distance"`
	Color              string     `json:"color"`
	ReflectionExponent int        `json:"reflectionExponent"`
	SpecularWeight     float64    `json:"specularWeight"`
	Lighting           float64    `json:"lighting"` // Summed light intensity at the hit point
}

// geometryType names the concrete shape type
func geometryType(shape geometry.Shape) string {
	switch shape.(type) {
	case *geometry.Sphere:
		return "sphere"
	case *geometry.Plane:
		return "plane"
	case *geometry.Background:
		return "background"
	default:
		return "unknown"
	}
}

// inspectPixel casts a ray through the center of pixel (x, y) and describes
// the first object hit
func inspectPixel(rt *renderer.Raytracer, x, y int) InspectResponse {
	config := rt.Config()
	ray := renderer.NewCamera(config).GetRay(x, y, renderer.Offset{X: 0.5, Y: 0.5})
	hit := rt.ClosestHit(ray, config.NearPlane, math.Inf(1))

	surface := hit.Shape.Surface()
	resp := InspectResponse{
		Hit:                hit.Found,
		GeometryType:       geometryType(hit.Shape),
		Color:              fmt.Sprintf("#%02x%02x%02x", surface.Color.R, surface.Color.G, surface.Color.B),
		ReflectionExponent: surface.ReflectionExponent,
		SpecularWeight:     surface.SpecularWeight,
	}
	if !hit.Found {
		return resp
	}

	point := ray.At(hit.T)
	normal := hit.Shape.NormalAt(point)
	resp.Point = [3]float64{point.X, point.Y, point.Z}
	resp.Normal = [3]float64{normal.X, normal.Y, normal.Z}
	resp.Distance = point.Subtract(ray.Origin).Length()
	resp.Lighting = rt.ComputeLighting(ray, hit)
	return resp
}

// handleInspect reports what the camera sees through one pixel
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	rt, err := s.newRaytracer(req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	config := rt.Config()
	query := r.URL.Query()
	x, err := parseIntParam(query, "x", config.Width/2, 0, config.Width-1)
	if err != nil {
		s.writeError(w, err)
		return
	}
	y, err := parseIntParam(query, "y", config.Height/2, 0, config.Height-1)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(rt, x, y))
}
