package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/samdwyer/levelforge/internal/layout"
	"github.com/samdwyer/levelforge/internal/presets"
)

type archetypeResponse struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Recipe presets.Recipe `json:"recipe"`
	Hooks  []string       `json:"hooks"`
	Params presets.Params `json:"params"`
}

func (h *Handler) describe(def *presets.ArchetypeDef) archetypeResponse {
	return archetypeResponse{
		ID:     def.ID,
		Name:   def.Name,
		Recipe: def.Recipe,
		Hooks:  h.director.Hooks(layout.Archetype(def.ID)),
		Params: def.Params,
	}
}

// ListArchetypes handles GET /api/archetypes
func (h *Handler) ListArchetypes(w http.ResponseWriter, r *http.Request) {
	ids := h.registry.IDs()
	out := make([]archetypeResponse, 0, len(ids))
	for _, id := range ids {
		out = append(out, h.describe(h.registry.GetByID(id)))
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"version":    h.registry.Version(),
		"archetypes": out,
	})
}

// GetArchetype handles GET /api/archetypes/{id}
func (h *Handler) GetArchetype(w http.ResponseWriter, r *http.Request) {
	def := h.registry.GetByID(chi.URLParam(r, "id"))
	if def == nil {
		respondError(w, http.StatusNotFound, "Unknown archetype")
		return
	}
	respondJSON(w, http.StatusOK, h.describe(def))
}
