// Package server serves an exported map over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"regionmap/internal/region"
	"regionmap/internal/svg"
)

// RegionInfo is one entry of GET /regions.
type RegionInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Paths    int    `json:"paths"`
	Polygons int    `json:"polygons"`
}

// Server holds the pre-rendered page, image and region list. The renderer
// is only read while the server is built.
type Server struct {
	page    []byte
	image   []byte
	regions []byte
	logger  *log.Logger
}

// New renders r once and returns a server for the result. r must draw on an
// svg.Surface.
func New(r *region.Renderer, title string, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}
	var page, image bytes.Buffer
	if err := svg.WriteHTML(&page, r, title); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	if err := svg.WriteSVG(&image, r); err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}

	regs := r.Regions()
	infos := make([]RegionInfo, 0, len(regs))
	for _, reg := range regs {
		infos = append(infos, RegionInfo{
			ID:       reg.ID,
			Name:     reg.Name,
			Paths:    len(reg.Paths),
			Polygons: len(reg.Polygons),
		})
	}
	list, err := json.Marshal(infos)
	if err != nil {
		return nil, fmt.Errorf("encode regions: %w", err)
	}
	return &Server{page: page.Bytes(), image: image.Bytes(), regions: list, logger: logger}, nil
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.serve("text/html; charset=utf-8", s.page))
	r.Get("/map.svg", s.serve("image/svg+xml", s.image))
	r.Get("/regions", s.serve("application/json", s.regions))
	return r
}

func (s *Server) serve(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		if _, err := w.Write(body); err != nil {
			s.logger.Warn("write response", "path", r.URL.Path, "err", err)
		}
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "bytes", ww.BytesWritten(), "took", time.Since(start).Round(time.Microsecond))
	})
}
