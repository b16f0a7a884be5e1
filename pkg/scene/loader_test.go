package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

const corridorJSON = `{
	"name": "Corridor",
	"description": "Two mirrors and a ball",
	"background": [10, 20, 30],
	"camera": {"width": 64, "height": 48, "eye": [0, 1, 0], "depth": 2},
	"spheres": [
		{"center": [0, 0, 5], "radius": 1, "color": [255, 0, 0], "exponent": 500, "reflect": 0.2}
	],
	"planes": [
		{"point": [0, -1, 0], "normal": [0, 2, 0], "color": [200, 200, 200]}
	],
	"lights": [
		{"type": "ambient", "intensity": 0.2},
		{"type": "point", "intensity": 0.6, "position": [2, 1, 0]},
		{"type": "directional", "intensity": 0.2, "direction": [1, 4, 4]}
	]
}`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(corridorJSON))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if s.Name != "Corridor" {
		t.Errorf("Expected name Corridor, got %q", s.Name)
	}
	if len(s.Shapes) != 3 {
		t.Fatalf("Expected background, sphere and plane, got %d shapes", len(s.Shapes))
	}

	bg, ok := s.Shapes[0].(*geometry.Background)
	if !ok || bg.Color != core.NewColor(10, 20, 30) {
		t.Errorf("Unexpected background %#v", s.Shapes[0])
	}

	sphere, ok := s.Shapes[1].(*geometry.Sphere)
	if !ok {
		t.Fatalf("Expected sphere, got %T", s.Shapes[1])
	}
	if sphere.Radius != 1 || sphere.Shading.ReflectionExponent != 500 || sphere.Shading.SpecularWeight != 0.2 {
		t.Errorf("Unexpected sphere %+v", sphere)
	}

	plane, ok := s.Shapes[2].(*geometry.Plane)
	if !ok {
		t.Fatalf("Expected plane, got %T", s.Shapes[2])
	}
	if plane.Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected normalized plane normal, got %v", plane.Normal)
	}
	if plane.Shading.HasHighlight() || plane.Shading.SpecularWeight != 0 {
		t.Errorf("Expected matte plane by default, got %+v", plane.Shading)
	}

	if len(s.Lights) != 3 || s.Lights[1].Type != lights.Point || s.Lights[2].Type != lights.Directional {
		t.Errorf("Unexpected lights %+v", s.Lights)
	}

	if s.Config.Width != 64 || s.Config.Height != 48 || s.Config.RecursionDepth != 2 {
		t.Errorf("Camera overrides not applied: %+v", s.Config)
	}
	if s.Config.Eye != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected eye (0,1,0), got %v", s.Config.Eye)
	}
	if s.Config.ViewportDistance != 1 {
		t.Errorf("Expected default viewport distance, got %f", s.Config.ViewportDistance)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		invalid   bool // wraps ErrInvalidScene rather than a decode error
		errSubstr string
	}{
		{"malformed JSON", `{"spheres": [`, false, "decode"},
		{"unknown field", `{"cones": []}`, false, "decode"},
		{"channel out of range", `{"background": [300, 0, 0]}`, false, "decode"},
		{"negative radius", `{"spheres": [{"center": [0,0,0], "radius": -1}]}`, true, "radius"},
		{"reflect above one", `{"spheres": [{"center": [0,0,0], "radius": 1, "reflect": 1.5}]}`, true, "reflect"},
		{"exponent below sentinel", `{"spheres": [{"center": [0,0,0], "radius": 1, "exponent": -2}]}`, true, "exponent"},
		{"zero plane normal", `{"planes": [{"point": [0,0,0], "normal": [0,0,0]}]}`, true, "normal"},
		{"unknown light", `{"lights": [{"type": "spot", "intensity": 1}]}`, true, "spot"},
		{"negative intensity", `{"lights": [{"type": "ambient", "intensity": -1}]}`, true, "intensity"},
		{"zero direction", `{"lights": [{"type": "directional", "intensity": 1}]}`, true, "direction"},
		{"bad camera", `{"camera": {"depth": -1}}`, true, "depth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(strings.NewReader(tt.input))
			if err == nil {
				t.Fatalf("Expected error, got scene %+v", s)
			}
			if errors.Is(err, ErrInvalidScene) != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidScene) = %t, want %t (err: %v)", !tt.invalid, tt.invalid, err)
			}
			if !strings.Contains(err.Error(), tt.errSubstr) {
				t.Errorf("Expected error mentioning %q, got %v", tt.errSubstr, err)
			}
		})
	}
}

func TestLoadFile_NameFallsBackToFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lonely-ball.json")
	content := `{"spheres": [{"center": [0,0,4], "radius": 1, "color": [0,0,255]}], "lights": [{"type": "ambient", "intensity": 1}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if s.Name != "lonely-ball" {
		t.Errorf("Expected name from file, got %q", s.Name)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
