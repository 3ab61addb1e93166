// Package server serves the rendered map over HTTP.
//
// The map data is static, so the page, the SVG and the PNG are rendered once
// in New and served from memory.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"go-hexmap-atlas/internal/config"
	"go-hexmap-atlas/internal/page"
	"go-hexmap-atlas/pkg/hexmap"
	"go-hexmap-atlas/pkg/render"
	"go-hexmap-atlas/pkg/render/raster"
	"go-hexmap-atlas/pkg/render/svg"
)

const shutdownTimeout = 5 * time.Second

// Server holds the rendered artifacts of one map.
type Server struct {
	cfg   config.Config
	cells *hexmap.Collection
	scene render.Scene

	html []byte
	svg  []byte
	png  []byte
}

// New renders the collection with cfg.
func New(cfg config.Config, cells *hexmap.Collection) (*Server, error) {
	s := &Server{
		cfg:   cfg,
		cells: cells,
		scene: render.RenderGrid(cells, cfg.RenderOptions()),
	}

	var buf bytes.Buffer
	if err := page.Render(&buf, page.Page{Title: cfg.Title, Heading: cfg.Heading, Scene: s.scene}); err != nil {
		return nil, err
	}
	s.html = bytes.Clone(buf.Bytes())

	buf.Reset()
	if err := svg.Encode(&buf, s.scene, svg.DefaultOptions()); err != nil {
		return nil, err
	}
	s.svg = bytes.Clone(buf.Bytes())

	buf.Reset()
	switch err := raster.EncodePNG(&buf, s.scene, raster.DefaultOptions()); {
	case errors.Is(err, raster.ErrEmptyScene):
		log.Println("map is empty, /map.png disabled")
	case err != nil:
		return nil, err
	default:
		s.png = bytes.Clone(buf.Bytes())
	}

	return s, nil
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/map.svg", s.handleSVG)
	r.Get("/map.png", s.handlePNG)
	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/cells", s.handleCells)
		r.Get("/cells/{q}/{r}", s.handleCell)
		r.Get("/layout", s.handleLayout)
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Serving hex map on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	log.Println("Server stopped")
	return nil
}
