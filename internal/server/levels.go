package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/samdwyer/levelforge/internal/layout"
	"github.com/samdwyer/levelforge/internal/presets"
	"github.com/samdwyer/levelforge/internal/ui"
)

// levelResponse is a result plus its text rendering.
type levelResponse struct {
	*layout.Result
	Rows []string `json:"rows,omitempty"`
}

func newLevelResponse(result *layout.Result, registry *presets.Registry, rows bool) levelResponse {
	resp := levelResponse{Result: result}
	if rows {
		resp.Rows = ui.Rows(result.Grid, registry, string(result.LevelType))
	}
	return resp
}

// wantRows reports whether the client asked for the text rendering, which is
// on unless ?rows=false.
func wantRows(r *http.Request) bool {
	return r.URL.Query().Get("rows") != "false"
}

// CreateLevel handles POST /api/levels
func (h *Handler) CreateLevel(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cfg, err := layout.ParseConfig(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := checkSize(cfg); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.director.Generate(r.Context(), cfg, nil)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, newLevelResponse(result, h.registry, wantRows(r)))
}

// CreateBatch handles POST /api/levels/batch
func (h *Handler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		respondError(w, http.StatusBadRequest, "Expected a JSON array of level configs")
		return
	}
	if len(raw) == 0 || len(raw) > MaxBatch {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Batch must hold 1 to %d configs", MaxBatch))
		return
	}

	cfgs := make([]layout.Config, len(raw))
	for i, msg := range raw {
		cfg, err := layout.ParseConfig(msg)
		if err == nil {
			err = checkSize(cfg)
		}
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("config %d: %v", i, err))
			return
		}
		cfgs[i] = cfg
	}

	results, err := h.director.GenerateBatch(r.Context(), cfgs)
	if err != nil {
		respondError(w, statusFor(err), err.Error())
		return
	}

	rows := wantRows(r)
	out := make([]levelResponse, len(results))
	for i, result := range results {
		out[i] = newLevelResponse(result, h.registry, rows)
	}
	respondJSON(w, http.StatusCreated, out)
}
