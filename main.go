package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	scene     string
	scenesDir string
	width     int
	height    int
	depth     int
	out       string
	scale     float64
	caption   bool
	list      bool
	verbose   bool
	help      bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stdout io.Writer) (*options, *flag.FlagSet, error) {
	opts := &options{}
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.StringVar(&opts.scene, "scene", "basic", "Built-in scene name, JSON scene name in -scenes, or path to a .json file")
	fs.StringVar(&opts.scenesDir, "scenes", "scenes", "Directory searched for JSON scenes")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 uses the scene's value)")
	fs.IntVar(&opts.height, "height", 0, "Image height in pixels (0 uses the scene's value)")
	fs.IntVar(&opts.depth, "depth", -1, "Reflection recursion depth (-1 uses the scene's value)")
	fs.StringVar(&opts.out, "out", "", "Output file (.png, .bmp, .tif); default output/<scene>/render_<timestamp>.png")
	fs.Float64Var(&opts.scale, "scale", 1, "Resize factor applied to the rendered image")
	fs.BoolVar(&opts.caption, "caption", false, "Append a caption with render statistics")
	fs.BoolVar(&opts.list, "list", false, "List available scenes and exit")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose (debug) logging")
	fs.BoolVar(&opts.help, "help", false, "Show help information")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return opts, fs, nil
}

func run(args []string, stdout io.Writer) error {
	opts, fs, err := parseFlags(args, stdout)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if opts.help {
		fmt.Fprintln(stdout, "Whitted Raytracer")
		fmt.Fprintln(stdout, "Usage: raytracer [options]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Run with -list to see the available scenes.")
		return nil
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	renderer.SetLogger(logger)
	defer renderer.SetLogger(nil)

	if opts.list {
		return listScenes(stdout, opts.scenesDir)
	}

	selected, err := createScene(opts.scene, opts.scenesDir)
	if err != nil {
		return err
	}
	config := applyOverrides(selected.Config, opts)

	rt, err := renderer.NewRaytracer(selected, config)
	if err != nil {
		return fmt.Errorf("scene %q: %w", selected.Name, err)
	}
	rt.SetProgressCallback(progressLogger(logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("rendering", "scene", selected.Name, "width", config.Width, "height", config.Height, "depth", config.RecursionDepth)
	img, stats, err := rt.Render(ctx)
	if err != nil {
		return err
	}

	final := img
	if opts.scale != 1 {
		if final, err = output.Scale(final, opts.scale); err != nil {
			return err
		}
	}
	if opts.caption {
		final = output.Caption(final, captionText(selected.Name, config, stats))
	}

	filename := opts.out
	if filename == "" {
		filename = createOutputPath(selected.Name, time.Now())
	}
	if err := output.Save(filename, final); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(stdout, "Render completed in %v\n", stats.Elapsed.Round(time.Millisecond))
	p.Fprintf(stdout, "Pixels: %d, camera rays: %d (%.0f rays/s)\n", stats.TotalPixels, stats.PrimaryRays, stats.RaysPerSecond())
	fmt.Fprintf(stdout, "Render saved as %s\n", filename)
	return nil
}

// createScene resolves a scene name to a built-in or JSON scene
func createScene(name, dir string) (*scene.Scene, error) {
	s, err := scene.Create(name, dir)
	if errors.Is(err, scene.ErrUnknownScene) {
		return nil, fmt.Errorf("%w (run with -list to see the available scenes)", err)
	}
	return s, err
}

// applyOverrides replaces scene config values with the ones given on the command line
func applyOverrides(config renderer.Config, opts *options) renderer.Config {
	if opts.width > 0 {
		config.Width = opts.width
	}
	if opts.height > 0 {
		config.Height = opts.height
	}
	if opts.depth >= 0 {
		config.RecursionDepth = opts.depth
	}
	return config
}

// createOutputPath returns output/<scene>/render_<timestamp>.png
func createOutputPath(sceneName string, now time.Time) string {
	base := strings.TrimSuffix(filepath.Base(sceneName), filepath.Ext(sceneName))
	if base == "" || base == "." {
		base = "scene"
	}
	return filepath.Join("output", base, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

// progressLogger logs every tenth of the frame
func progressLogger(logger *slog.Logger) renderer.ProgressFunc {
	lastStep := -1
	return func(done, total int) {
		percent := done * 100 / total
		if step := percent / 10; step != lastStep {
			logger.Info("progress", "percent", percent)
			lastStep = step
		}
	}
}

func captionText(name string, config renderer.Config, stats renderer.RenderStats) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%s %dx%d depth %d, %d rays in %v",
		name, config.Width, config.Height, config.RecursionDepth, stats.PrimaryRays, stats.Elapsed.Round(time.Millisecond))
}

func listScenes(w io.Writer, dir string) error {
	scenes, err := scene.ListScenes(dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Available scenes:")
	for _, s := range scenes {
		fmt.Fprintf(w, "  %-12s %-8s %s\n", s.ID, s.Type, s.Description)
	}
	return nil
}
