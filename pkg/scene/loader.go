package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

var (
	// ErrInvalidScene is wrapped by every scene file validation failure
	ErrInvalidScene = errors.New("invalid scene")
	// ErrUnknownScene is returned when a scene name matches no built-in or file
	ErrUnknownScene = errors.New("unknown scene")
)

// Vec is a JSON [x, y, z] triple
type Vec [3]float64

func (v Vec) toVec3() core.Vec3 { return core.NewVec3(v[0], v[1], v[2]) }

// RGB is a JSON [r, g, b] triple with 8-bit channels
type RGB [3]uint8

func (c RGB) toColor() core.Color { return core.NewColor(c[0], c[1], c[2]) }

// SurfaceCfg holds the shading parameters of a shape. A missing exponent
// means no highlight.
type SurfaceCfg struct {
	Color    RGB      `json:"color"`
	Exponent *int     `json:"exponent,omitempty"`
	Reflect  *float64 `json:"reflect,omitempty"`
}

type SphereCfg struct {
	Center Vec     `json:"center"`
	Radius float64 `json:"radius"`
	SurfaceCfg
}

type PlaneCfg struct {
	Point  Vec `json:"point"`
	Normal Vec `json:"normal"`
	SurfaceCfg
}

type LightCfg struct {
	Type      string  `json:"type"` // ambient, point or directional
	Intensity float64 `json:"intensity"`
	Position  Vec     `json:"position"`
	Direction Vec     `json:"direction"`
}

// CameraCfg overrides parts of the default render config. Zero values keep the default.
type CameraCfg struct {
	Width            int      `json:"width,omitempty"`
	Height           int      `json:"height,omitempty"`
	ViewportWidth    float64  `json:"viewportWidth,omitempty"`
	ViewportHeight   float64  `json:"viewportHeight,omitempty"`
	ViewportDistance float64  `json:"viewportDistance,omitempty"`
	Eye              *Vec     `json:"eye,omitempty"`
	NearPlane        *float64 `json:"nearPlane,omitempty"`
	Depth            *int     `json:"depth,omitempty"`
}

// File is the JSON representation of a scene
type File struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Background  RGB         `json:"background"`
	Camera      CameraCfg   `json:"camera"`
	Spheres     []SphereCfg `json:"spheres,omitempty"`
	Planes      []PlaneCfg  `json:"planes,omitempty"`
	Lights      []LightCfg  `json:"lights"`
}

// LoadFile reads a JSON scene from path
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes and validates a JSON scene
func Parse(r io.Reader) (*Scene, error) {
	var file File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	return file.Build()
}

// Build validates the file and converts it into a Scene
func (f *File) Build() (*Scene, error) {
	s := NewScene(f.Name, f.Background.toColor())

	for i, sc := range f.Spheres {
		if sc.Radius <= 0 {
			return nil, fmt.Errorf("%w: sphere %d radius %g must be positive", ErrInvalidScene, i, sc.Radius)
		}
		surface, err := sc.SurfaceCfg.build()
		if err != nil {
			return nil, fmt.Errorf("%w: sphere %d: %v", ErrInvalidScene, i, err)
		}
		s.Add(geometry.NewSphere(sc.Center.toVec3(), sc.Radius, surface))
	}

	for i, pc := range f.Planes {
		if pc.Normal.toVec3().Length() == 0 {
			return nil, fmt.Errorf("%w: plane %d normal must not be zero", ErrInvalidScene, i)
		}
		surface, err := pc.SurfaceCfg.build()
		if err != nil {
			return nil, fmt.Errorf("%w: plane %d: %v", ErrInvalidScene, i, err)
		}
		s.Add(geometry.NewPlane(pc.Point.toVec3(), pc.Normal.toVec3(), surface))
	}

	for i, lc := range f.Lights {
		light, err := lc.build()
		if err != nil {
			return nil, fmt.Errorf("%w: light %d: %v", ErrInvalidScene, i, err)
		}
		s.AddLight(light)
	}

	f.Camera.apply(s)
	if err := s.Config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: camera: %v", ErrInvalidScene, err)
	}
	return s, nil
}

func (sc SurfaceCfg) build() (geometry.Surface, error) {
	surface := geometry.Surface{Color: sc.Color.toColor(), ReflectionExponent: geometry.NoHighlight}
	if sc.Exponent != nil {
		if *sc.Exponent < geometry.NoHighlight {
			return surface, fmt.Errorf("exponent %d must be -1 or greater", *sc.Exponent)
		}
		surface.ReflectionExponent = *sc.Exponent
	}
	if sc.Reflect != nil {
		if *sc.Reflect < 0 || *sc.Reflect > 1 {
			return surface, fmt.Errorf("reflect %g must be within [0, 1]", *sc.Reflect)
		}
		surface.SpecularWeight = *sc.Reflect
	}
	return surface, nil
}

func (lc LightCfg) build() (lights.Light, error) {
	lightType, err := lights.ParseLightType(lc.Type)
	if err != nil {
		return lights.Light{}, err
	}
	if lc.Intensity < 0 {
		return lights.Light{}, fmt.Errorf("intensity %g must not be negative", lc.Intensity)
	}

	switch lightType {
	case lights.Point:
		return lights.NewPointLight(lc.Intensity, lc.Position.toVec3()), nil
	case lights.Directional:
		if lc.Direction.toVec3().Length() == 0 {
			return lights.Light{}, errors.New("directional light needs a non-zero direction")
		}
		return lights.NewDirectionalLight(lc.Intensity, lc.Direction.toVec3()), nil
	default:
		return lights.NewAmbientLight(lc.Intensity), nil
	}
}

func (cc CameraCfg) apply(s *Scene) {
	if cc.Width > 0 {
		s.Config.Width = cc.Width
	}
	if cc.Height > 0 {
		s.Config.Height = cc.Height
	}
	if cc.ViewportWidth > 0 {
		s.Config.ViewportWidth = cc.ViewportWidth
	}
	if cc.ViewportHeight > 0 {
		s.Config.ViewportHeight = cc.ViewportHeight
	}
	if cc.ViewportDistance > 0 {
		s.Config.ViewportDistance = cc.ViewportDistance
	}
	if cc.Eye != nil {
		s.Config.Eye = cc.Eye.toVec3()
	}
	if cc.NearPlane != nil {
		s.Config.NearPlane = *cc.NearPlane
	}
	if cc.Depth != nil {
		s.Config.RecursionDepth = *cc.Depth
	}
}
