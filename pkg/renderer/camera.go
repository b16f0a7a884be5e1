package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera maps pixel coordinates to rays through a viewport in front of the eye
type Camera struct {
	eye            core.Vec3
	width, height  float64
	viewportWidth  float64
	viewportHeight float64
	distance       float64
}

// NewCamera creates a camera from the viewport part of a render config
func NewCamera(config Config) *Camera {
	return &Camera{
		eye:            config.Eye,
		width:          float64(config.Width),
		height:         float64(config.Height),
		viewportWidth:  config.ViewportWidth,
		viewportHeight: config.ViewportHeight,
		distance:       config.ViewportDistance,
	}
}

// GetRay returns the camera ray through pixel (x, y) at the given sub-pixel
// offset. Image rows grow downward while scene Y grows upward. The direction
// ends on the viewport, so t=1 is the viewport plane.
func (c *Camera) GetRay(x, y int, offset Offset) core.Ray {
	// Canvas coordinates with the origin at the image center
	cx := float64(x) + offset.X - c.width/2
	cy := c.height/2 - (float64(y) + offset.Y)

	direction := core.NewVec3(
		cx*c.viewportWidth/c.width,
		cy*c.viewportHeight/c.height,
		c.distance,
	)
	return core.NewRay(c.eye, direction)
}
