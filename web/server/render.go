package server

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// defaultRenderTimeout bounds a render started from the web
const defaultRenderTimeout = 2 * time.Minute

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string  // Scene name or JSON scene ID
	Width  int     // Image width, 0 keeps the scene's value
	Height int     // Image height, 0 keeps the scene's value
	Depth  int     // Reflection depth, -1 keeps the scene's value
	Scale  float64 // Resize factor applied after rendering
}

// key identifies requests that produce the same image
func (req *RenderRequest) key() string {
	return fmt.Sprintf("%s|%d|%d|%d|%g", req.Scene, req.Width, req.Height, req.Depth, req.Scale)
}

// renderResult is the encoded image shared by collapsed requests
type renderResult struct {
	png   []byte
	stats renderer.RenderStats
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "basic"
	}
	if !validSceneName(req.Scene) {
		return nil, fmt.Errorf("%w: invalid scene name %q", errBadRequest, req.Scene)
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", -1, 0, 16); err != nil {
		return nil, err
	}
	if req.Scale, err = parseFloatParam(query, "scale", 1, 0.1, 4); err != nil {
		return nil, err
	}
	return req, nil
}

// newRaytracer creates the scene for req and applies the request overrides
func (s *Server) newRaytracer(req *RenderRequest) (*renderer.Raytracer, error) {
	sceneObj, err := scene.Create(req.Scene, s.scenesDir)
	if err != nil {
		return nil, err
	}

	config := sceneObj.Config
	if req.Width > 0 {
		config.Width = req.Width
	}
	if req.Height > 0 {
		config.Height = req.Height
	}
	if req.Depth >= 0 {
		config.RecursionDepth = req.Depth
	}
	return renderer.NewRaytracer(sceneObj, config)
}

// render traces the requested image and encodes it as PNG
func (s *Server) render(ctx context.Context, req *RenderRequest) (*renderResult, error) {
	rt, err := s.newRaytracer(req)
	if err != nil {
		return nil, err
	}

	img, stats, err := rt.Render(ctx)
	if err != nil {
		return nil, err
	}

	final := img
	if req.Scale != 1 {
		if final, err = output.Scale(img, req.Scale); err != nil {
			return nil, fmt.Errorf("%w: %v", errBadRequest, err)
		}
	}

	var buf bytes.Buffer
	if err := output.Encode(&buf, final, output.PNG); err != nil {
		return nil, err
	}

	s.logger.Info("render complete", "scene", req.Scene, "pixels", stats.TotalPixels, "elapsed", stats.Elapsed)
	return &renderResult{png: buf.Bytes(), stats: stats}, nil
}

// handleRender renders a scene and responds with a PNG. Identical requests
// arriving while a render is in flight share its result. The shared render
// runs on the context of the request that started it.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.renderTimeout)
	defer cancel()

	ch := s.renders.DoChan(req.key(), func() (any, error) {
		return s.render(ctx, req)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		if r.Context().Err() != nil {
			s.logger.Warn("render abandoned by client", "scene", req.Scene)
			return
		}
		s.logger.Warn("render timed out", "scene", req.Scene, "timeout", s.renderTimeout)
		s.writeError(w, ctx.Err())
		return
	case res = <-ch:
	}

	if res.Err != nil {
		s.writeError(w, res.Err)
		return
	}
	result := res.Val.(*renderResult)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Render-Elapsed-Ms", strconv.FormatInt(result.stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Render-Rays", strconv.Itoa(result.stats.PrimaryRays))
	w.Header().Set("X-Render-Shared", strconv.FormatBool(res.Shared))
	w.WriteHeader(http.StatusOK)
	w.Write(result.png)
}
