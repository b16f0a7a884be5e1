package renderer

import (
	"errors"
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Epsilon is the minimum ray parameter for secondary rays (shadow and
// reflection), keeping a surface from shadowing or reflecting itself.
const Epsilon = 0.001

// DefaultRecursionDepth is the number of mirror bounces traced per camera ray
const DefaultRecursionDepth = 4

// SamplesPerPixel is the number of jittered camera rays averaged per pixel
const SamplesPerPixel = 4

var (
	// ErrInvalidConfig is wrapped by every Config validation failure
	ErrInvalidConfig = errors.New("invalid render config")
	// ErrEmptyScene is returned when a scene has no shapes
	ErrEmptyScene = errors.New("scene has no shapes")
	// ErrNoBackground is returned when a scene has no background sentinel
	ErrNoBackground = errors.New("scene has no background")
)

// Offset is a sub-pixel sample position, measured in pixels from the pixel's top-left corner
type Offset struct {
	X, Y float64
}

// RotatedGrid is the fixed 4-sample rotated-grid jitter pattern
var RotatedGrid = [SamplesPerPixel]Offset{
	{X: 0.375, Y: 0.125},
	{X: 0.875, Y: 0.375},
	{X: 0.125, Y: 0.625},
	{X: 0.625, Y: 0.875},
}

// Config contains the camera and sampling configuration of a render
type Config struct {
	Width            int                     // Image width in pixels
	Height           int                     // Image height in pixels
	ViewportWidth    float64                 // Viewport width in scene units
	ViewportHeight   float64                 // Viewport height in scene units
	ViewportDistance float64                 // Distance from the eye to the viewport
	Eye              core.Vec3               // Camera position
	NearPlane        float64                 // Minimum ray parameter for camera rays
	RecursionDepth   int                     // Maximum number of reflection bounces
	Jitter           [SamplesPerPixel]Offset // Sub-pixel sample positions
}

// DefaultConfig returns the reference configuration: a 500x500 image looking
// down +Z through a 1x1 viewport one unit in front of the origin.
func DefaultConfig() Config {
	return Config{
		Width:            500,
		Height:           500,
		ViewportWidth:    1.0,
		ViewportHeight:   1.0,
		ViewportDistance: 1.0,
		Eye:              core.NewVec3(0, 0, 0),
		NearPlane:        1.0,
		RecursionDepth:   DefaultRecursionDepth,
		Jitter:           RotatedGrid,
	}
}

// Validate checks the configuration for values the renderer cannot work with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return fmt.Errorf("%w: viewport %gx%g must be positive", ErrInvalidConfig, c.ViewportWidth, c.ViewportHeight)
	}
	if c.ViewportDistance <= 0 {
		return fmt.Errorf("%w: viewport distance %g must be positive", ErrInvalidConfig, c.ViewportDistance)
	}
	if c.NearPlane < 0 {
		return fmt.Errorf("%w: near plane %g must not be negative", ErrInvalidConfig, c.NearPlane)
	}
	if c.RecursionDepth < 0 {
		return fmt.Errorf("%w: recursion depth %d must not be negative", ErrInvalidConfig, c.RecursionDepth)
	}
	for i, o := range c.Jitter {
		if o.X < 0 || o.X >= 1 || o.Y < 0 || o.Y >= 1 {
			return fmt.Errorf("%w: jitter offset %d (%g, %g) outside the pixel", ErrInvalidConfig, i, o.X, o.Y)
		}
	}
	return nil
}
