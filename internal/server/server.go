// Package server exposes level generation over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/samdwyer/levelforge/internal/layout"
	"github.com/samdwyer/levelforge/internal/presets"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// MaxBatch bounds the number of configs in one batch request.
const MaxBatch = 16

// MaxCells bounds width*height of a level requested over HTTP.
const MaxCells = 512 * 512

// Handler serves the level API.
type Handler struct {
	director *layout.Director
	registry *presets.Registry
}

// NewHandler creates a new Handler.
func NewHandler(director *layout.Director, registry *presets.Registry) *Handler {
	return &Handler{director: director, registry: registry}
}

// Routes configures all routes and returns the router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": layout.Version})
		})

		r.Get("/archetypes", h.ListArchetypes)
		r.Get("/archetypes/{id}", h.GetArchetype)

		r.Post("/levels", h.CreateLevel)
		r.Post("/levels/batch", h.CreateBatch)
	})

	return r
}

// statusFor maps generation errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, layout.ErrInvalidDimensions),
		errors.Is(err, layout.ErrUnknownArchetype),
		errors.Is(err, layout.ErrInvalidParams):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// checkSize rejects levels larger than MaxCells. Other dimension errors are
// left to the director.
func checkSize(cfg layout.Config) error {
	w, h := cfg.Dimensions.Width, cfg.Dimensions.Height
	if w <= 0 || h <= 0 {
		return nil
	}
	if w > MaxCells || h > MaxCells || w*h > MaxCells {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", layout.ErrInvalidDimensions, w, h, MaxCells)
	}
	return nil
}

// readBody reads a bounded request body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
