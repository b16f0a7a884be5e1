package main

import (
	"bytes"
	"errors"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"basic scene", "basic", false},
		{"default scene", "default", false},
		{"mirrors scene", "mirrors", false},
		{"plane scene", "plane", false},

		// JSON scenes (by name)
		{"corridor JSON", "corridor", false},
		{"sunset JSON", "sunset", false},

		// JSON scenes (by path)
		{"direct JSON path", "scenes/corridor.json", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid JSON path", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType, "scenes")

			if tt.expectError {
				if !errors.Is(err, scene.ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene for scene type '%s', got %v", tt.sceneType, err)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, s)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s.Config.Width <= 0 || s.Config.Height <= 0 {
				t.Errorf("Scene size should be positive, got %dx%d", s.Config.Width, s.Config.Height)
			}
			if _, err := renderer.NewRaytracer(s, s.Config); err != nil {
				t.Errorf("Scene '%s' is not renderable: %v", tt.sceneType, err)
			}
		})
	}
}

func TestCreateOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	tests := []struct {
		name      string
		sceneName string
		expected  string
	}{
		{"built-in", "basic", filepath.Join("output", "basic", "render_20240309_140507.png")},
		{"display name", "Mirror Corridor", filepath.Join("output", "Mirror Corridor", "render_20240309_140507.png")},
		{"file name", "scenes/my-scene.json", filepath.Join("output", "my-scene", "render_20240309_140507.png")},
		{"empty", "", filepath.Join("output", "scene", "render_20240309_140507.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := createOutputPath(tt.sceneName, now); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	base := renderer.DefaultConfig()

	got := applyOverrides(base, &options{depth: -1})
	if got != base {
		t.Errorf("Expected unchanged config, got %+v", got)
	}

	got = applyOverrides(base, &options{width: 32, height: 16, depth: 0})
	if got.Width != 32 || got.Height != 16 || got.RecursionDepth != 0 {
		t.Errorf("Overrides not applied: %+v", got)
	}
}

func TestProgressLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	progress := progressLogger(logger)

	for row := 1; row <= 40; row++ {
		progress(row, 40)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 11 {
		t.Fatalf("Expected 11 progress lines (0%% to 100%% in steps of ten), got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[len(lines)-1], "percent=100") {
		t.Errorf("Expected final line at 100%%, got %q", lines[len(lines)-1])
	}
}

func TestRun_RendersToFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "basic.bmp")
	var stdout bytes.Buffer

	err := run([]string{"-scene", "basic", "-width", "12", "-height", "8", "-scale", "2", "-caption", "-out", out}, &stdout)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	file, err := os.Open(out)
	if err != nil {
		t.Fatalf("Failed to open render: %v", err)
	}
	defer file.Close()
	img, format, err := image.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode render: %v", err)
	}
	if format != "bmp" {
		t.Errorf("Expected a BMP file, got %s", format)
	}
	if img.Bounds().Dx() != 24 || img.Bounds().Dy() != 16+output.CaptionHeight() {
		t.Errorf("Unexpected output size %v", img.Bounds().Size())
	}
	if !strings.Contains(stdout.String(), "Render saved as") {
		t.Errorf("Expected save message, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "camera rays: 384") {
		t.Errorf("Expected 12*8*4 camera rays in %q", stdout.String())
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"-scene", "nonexistent", "-scenes", dir}},
		{"bad format", []string{"-width", "4", "-height", "4", "-out", filepath.Join(dir, "x.gif")}},
		{"bad scale", []string{"-width", "4", "-height", "4", "-scale", "0", "-out", filepath.Join(dir, "x.png")}},
		{"bad flag", []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			if err := run(tt.args, &stdout); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}

	if _, err := os.Stat(filepath.Join(dir, "x.png")); !os.IsNotExist(err) {
		t.Errorf("Expected no file for a failed render, stat returned %v", err)
	}
}

func TestRun_ListAndHelp(t *testing.T) {
	var stdout bytes.Buffer
	if err := run([]string{"-list"}, &stdout); err != nil {
		t.Fatalf("run -list failed: %v", err)
	}
	for _, id := range []string{"basic", "default", "mirrors", "plane", "corridor", "sunset"} {
		if !strings.Contains(stdout.String(), id) {
			t.Errorf("Expected scene %q in listing:\n%s", id, stdout.String())
		}
	}

	stdout.Reset()
	if err := run([]string{"-help"}, &stdout); err != nil {
		t.Fatalf("run -help failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "-scene") {
		t.Errorf("Expected flag defaults in help output:\n%s", stdout.String())
	}
}
