// Package api exposes the normalization core as JSON tool endpoints for an
// external orchestrating agent.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/FernBytes/sheetnorm-cli/internal/normalize"
	"github.com/FernBytes/sheetnorm-cli/internal/relate"
)

// Handler wraps one processing session. A server process hosts one session;
// embedding hosts that need isolation run one server (or one Session) per
// file.
type Handler struct {
	Session *normalize.Session
}

func NewHandler(s *normalize.Session) *Handler {
	return &Handler{Session: s}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Post("/api/analyze", h.Analyze)
	r.Post("/api/mappings", h.CreateMapping)
	r.Post("/api/transform", h.Transform)
	r.Post("/api/validate", h.Validate)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

type tableRequest struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req tableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w, "analyze", err)
		return
	}
	an, err := h.Session.Analyze(req.Headers, req.Rows)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, an)
}

type createMappingRequest struct {
	Selections    map[string]string `json:"selections"`
	Relationships *relate.Result    `json:"relationships,omitempty"`
}

func (h *Handler) CreateMapping(w http.ResponseWriter, r *http.Request) {
	var req createMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w, "create_mapping", err)
		return
	}
	id, err := h.Session.CreateMapping(req.Selections, req.Relationships)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]string{"mapping_id": id})
}

type transformRequest struct {
	MappingID string     `json:"mapping_id"`
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
}

func (h *Handler) Transform(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w, "transform", err)
		return
	}
	rows, err := h.Session.Transform(req.MappingID, req.Headers, req.Rows)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]any{"rows": rows})
}

type validateRequest struct {
	Rows [][]string `json:"rows"`
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w, "validate", err)
		return
	}
	rep, err := h.Session.Validate(req.Rows)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, rep)
}

type errorBody struct {
	Kind    normalize.Kind `json:"kind"`
	Op      string         `json:"op"`
	Message string         `json:"message"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeBadJSON(w http.ResponseWriter, op string, err error) {
	writeErrorBody(w, http.StatusBadRequest, errorBody{
		Kind:    normalize.KindInvalidInput,
		Op:      op,
		Message: "invalid JSON body: " + err.Error(),
	})
}

func writeError(w http.ResponseWriter, err error) {
	var e *normalize.Error
	if !errors.As(err, &e) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	status := http.StatusBadRequest
	if e.Kind == normalize.KindMappingNotFound {
		status = http.StatusNotFound
	}
	writeErrorBody(w, status, errorBody{Kind: e.Kind, Op: e.Op, Message: e.Message})
}

func writeErrorBody(w http.ResponseWriter, status int, body errorBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]errorBody{"error": body})
}
