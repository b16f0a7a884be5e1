package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	scenesDir := flag.String("scenes", "scenes", "Directory searched for JSON scenes")
	verbose := flag.Bool("v", false, "Verbose (debug) logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	renderer.SetLogger(logger)

	// Create and start web server
	webServer := server.NewServer(*port, *scenesDir, logger)

	logger.Info("Whitted Raytracer Web Server", "port", *port)

	if err := webServer.Start(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
