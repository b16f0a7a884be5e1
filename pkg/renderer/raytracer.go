package renderer

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"math"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetShapes() []geometry.Shape
	GetLights() []lights.Light
}

// Hit records the closest shape found along a ray and the ray parameter of
// the intersection. When Found is false, Shape is the background and T is 0.
type Hit struct {
	Shape geometry.Shape
	T     float64
	Found bool
}

// ProgressFunc is called after each completed row with the number of
// rendered pixels and the total pixel count
type ProgressFunc func(done, total int)

// Raytracer renders a scene with recursive Whitted-style ray tracing. It
// holds no mutable state while rendering; RenderPixel may be called for any
// pixel in any order.
type Raytracer struct {
	shapes     []geometry.Shape
	lights     []lights.Light
	background *geometry.Background
	camera     *Camera
	config     Config
	progress   ProgressFunc
}

// NewRaytracer creates a raytracer for scene. The scene must contain at least
// one shape, one of which is a *geometry.Background.
func NewRaytracer(scene Scene, config Config) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	shapes := scene.GetShapes()
	if len(shapes) == 0 {
		return nil, ErrEmptyScene
	}

	var background *geometry.Background
	for _, shape := range shapes {
		if bg, ok := shape.(*geometry.Background); ok {
			background = bg
			break
		}
	}
	if background == nil {
		return nil, ErrNoBackground
	}

	return &Raytracer{
		shapes:     shapes,
		lights:     scene.GetLights(),
		background: background,
		camera:     NewCamera(config),
		config:     config,
	}, nil
}

// Config returns the configuration the raytracer was created with
func (rt *Raytracer) Config() Config {
	return rt.config
}

// SetProgressCallback registers fn to be called as rows complete
func (rt *Raytracer) SetProgressCallback(fn ProgressFunc) {
	rt.progress = fn
}

// ClosestHit scans every shape for the nearest intersection in (tMin, tMax)
func (rt *Raytracer) ClosestHit(ray core.Ray, tMin, tMax float64) Hit {
	closest := Hit{Shape: rt.background}
	closestSoFar := tMax

	for _, shape := range rt.shapes {
		if t, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closest = Hit{Shape: shape, T: t, Found: true}
			closestSoFar = t
		}
	}

	return closest
}

// TraceRay returns the color seen along ray. Reflective surfaces spawn a
// mirror ray until depth reaches zero.
func (rt *Raytracer) TraceRay(ray core.Ray, tMin float64, depth int) core.Color {
	// A miss shades the background, whose zero normal leaves only ambient light
	hit := rt.ClosestHit(ray, tMin, math.Inf(1))

	surface := hit.Shape.Surface()
	point := ray.At(hit.T)
	normal := hit.Shape.NormalAt(point)
	view := ray.Direction.Negate()

	local := surface.Color.Scale(rt.lightingAt(point, normal, view, surface))
	if surface.SpecularWeight <= 0 || depth <= 0 {
		return local
	}

	mirror := core.NewRay(point, view.Reflect(normal))
	reflected := rt.TraceRay(mirror, Epsilon, depth-1)

	return local.Blend(reflected, surface.SpecularWeight)
}

// RenderPixel traces every jitter sample of pixel (x, y) and averages them
func (rt *Raytracer) RenderPixel(x, y int) core.Color {
	var samples [SamplesPerPixel]core.Color
	for i, offset := range rt.config.Jitter {
		ray := rt.camera.GetRay(x, y, offset)
		samples[i] = rt.TraceRay(ray, rt.config.NearPlane, rt.config.RecursionDepth)
	}
	return AverageColors(samples[:])
}

// AverageColors sums each channel as an unsigned integer and divides by the
// sample count, rounding down
func AverageColors(samples []core.Color) core.Color {
	if len(samples) == 0 {
		return core.Black
	}

	var r, g, b uint
	for _, c := range samples {
		r += uint(c.R)
		g += uint(c.G)
		b += uint(c.B)
	}

	n := uint(len(samples))
	return core.Color{
		R: clampUint(r / n),
		G: clampUint(g / n),
		B: clampUint(b / n),
	}
}

func clampUint(v uint) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// RenderBounds renders the pixels within bounds into img
func (rt *Raytracer) RenderBounds(img *image.RGBA, bounds image.Rectangle) RenderStats {
	bounds = bounds.Intersect(img.Bounds())
	stats := newRenderStats(bounds, SamplesPerPixel)

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			img.SetRGBA(i, j, rt.RenderPixel(i, j).ToRGBA())
		}
	}

	return stats
}

// Render renders the whole image one row at a time. The context is checked
// between rows; a cancelled render returns the partial image with the error.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	width, height := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stats := RenderStats{SamplesPerPixel: SamplesPerPixel}
	total := width * height

	log := Logger()
	log.Debug("render started",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Int("shapes", len(rt.shapes)),
		slog.Int("lights", len(rt.lights)),
		slog.Float64("lightIntensity", lights.TotalIntensity(rt.lights)),
		slog.Int("depth", rt.config.RecursionDepth))

	start := time.Now()
	lastPercent := 0
	for y := 0; y < height; y++ {
		if err := ctx.Err(); err != nil {
			log.Warn("render cancelled", slog.Int("row", y), slog.Any("error", err))
			stats.Elapsed = time.Since(start)
			return img, stats, fmt.Errorf("render cancelled at row %d: %w", y, err)
		}

		stats.merge(rt.RenderBounds(img, image.Rect(0, y, width, y+1)))

		done := (y + 1) * width
		if rt.progress != nil {
			rt.progress(done, total)
		}
		if percent := done * 100 / total; percent/10 > lastPercent/10 {
			log.Debug("render progress", slog.Int("percent", percent))
			lastPercent = percent
		}
	}

	stats.Elapsed = time.Since(start)
	log.Debug("render finished",
		slog.Duration("elapsed", stats.Elapsed),
		slog.Int("primaryRays", stats.PrimaryRays))

	return img, stats, nil
}
