package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	PrimaryRays     int           // Camera rays traced, one per jitter sample
	SamplesPerPixel int           // Jitter samples per pixel
	Elapsed         time.Duration // Wall time of the render
}

func newRenderStats(bounds image.Rectangle, samplesPerPixel int) RenderStats {
	pixels := bounds.Dx() * bounds.Dy()
	return RenderStats{
		TotalPixels:     pixels,
		PrimaryRays:     pixels * samplesPerPixel,
		SamplesPerPixel: samplesPerPixel,
	}
}

// merge adds the pixel and ray counts of other
func (s *RenderStats) merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.PrimaryRays += other.PrimaryRays
}

// RaysPerSecond returns the camera ray throughput, or 0 before timing is known
func (s RenderStats) RaysPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.PrimaryRays) / s.Elapsed.Seconds()
}
