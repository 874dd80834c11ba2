package network

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Vec-io/RAGs.FYI/internal/domain/errors"
	"github.com/Vec-io/RAGs.FYI/internal/engine"
	"github.com/Vec-io/RAGs.FYI/internal/query/filter"
	"github.com/Vec-io/RAGs.FYI/internal/query/pipeline"
	"github.com/Vec-io/RAGs.FYI/internal/query/projection"
	"github.com/Vec-io/RAGs.FYI/internal/render"
)

// ViewHandler exposes engine sessions over HTTP
type ViewHandler struct {
	engine *engine.Engine
}

func NewViewHandler(eng *engine.Engine) *ViewHandler {
	return &ViewHandler{engine: eng}
}

func (h *ViewHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/columns", h.SearchColumns)
	r.Post("/api/sessions", h.OpenSession)
	r.Route("/api/sessions/{id}", func(r chi.Router) {
		r.Delete("/", h.CloseSession)
		r.Get("/view", h.GetView)
		r.Get("/draft", h.GetDraft)
		r.Put("/draft/filters/{column}", h.SetFilter)
		r.Delete("/draft/filters/{column}", h.RemoveFilter)
		r.Delete("/draft/filters", h.ClearFilters)
		r.Post("/draft/commit", h.CommitFilters)
		r.Post("/draft/discard", h.DiscardDraft)
		r.Post("/sort", h.SetSort)
		r.Put("/columns", h.SetColumns)
		r.Post("/columns/{column}/toggle", h.ToggleColumn)
		r.Post("/reset", h.Reset)
	})
}

type SessionResponse struct {
	ID   string         `json:"id"`
	View render.Payload `json:"view"`
}

type FilterRequest struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type DraftResponse struct {
	Editing bool            `json:"editing"`
	Dirty   bool            `json:"dirty"`
	Filters []filter.Filter `json:"filters"`
}

type SortRequest struct {
	Column string `json:"column"`
}

type ColumnsRequest struct {
	Keys []string `json:"keys"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *ViewHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	s := h.engine.NewSession()
	writeJSON(w, http.StatusCreated, SessionResponse{ID: s.ID, View: payload(s, s.View())})
}

func (h *ViewHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	if !h.engine.CloseSession(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, errSessionNotFound(chi.URLParam(r, "id")))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ViewHandler) GetView(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, payload(s, s.View()))
}

func (h *ViewHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, draft(s))
}

func (h *ViewHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	kind, err := filter.ParseKind(req.Kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.SetFilter(chi.URLParam(r, "column"), kind, req.Value); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, draft(s))
}

func (h *ViewHandler) RemoveFilter(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := s.RemoveFilter(chi.URLParam(r, "column")); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, draft(s))
}

func (h *ViewHandler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.ClearFilters()
	writeJSON(w, http.StatusOK, draft(s))
}

func (h *ViewHandler) CommitFilters(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, payload(s, s.CommitFilters()))
}

func (h *ViewHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.DiscardDraft()
	writeJSON(w, http.StatusOK, draft(s))
}

func (h *ViewHandler) SetSort(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req SortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := s.SetSort(req.Column); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, payload(s, s.View()))
}

func (h *ViewHandler) SetColumns(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req ColumnsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := s.SetColumnSelection(req.Keys); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, payload(s, s.View()))
}

func (h *ViewHandler) ToggleColumn(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := s.ToggleColumn(chi.URLParam(r, "column")); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, payload(s, s.View()))
}

func (h *ViewHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Reset()
	writeJSON(w, http.StatusOK, payload(s, s.View()))
}

func (h *ViewHandler) SearchColumns(w http.ResponseWriter, r *http.Request) {
	matches := projection.SearchColumns(h.engine.Table().Schema.Columns, r.URL.Query().Get("q"))
	if matches == nil {
		writeJSON(w, http.StatusOK, []struct{}{})
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

func (h *ViewHandler) session(w http.ResponseWriter, r *http.Request) (*engine.Session, bool) {
	id := chi.URLParam(r, "id")
	s, ok := h.engine.Session(id)
	if !ok {
		writeError(w, http.StatusNotFound, errSessionNotFound(id))
	}
	return s, ok
}

func payload(s *engine.Session, result pipeline.Result) render.Payload {
	state := s.State()
	return render.NewPayload(result, state.Sort, state.Active)
}

func draft(s *engine.Session) DraftResponse {
	state := s.State()
	filters := state.DraftFilters().Filters()
	if filters == nil {
		filters = []filter.Filter{}
	}
	return DraftResponse{Editing: state.Editing(), Dirty: state.Dirty(), Filters: filters}
}

func errSessionNotFound(id string) error {
	return fmt.Errorf("session %q not found", id)
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	var notFound *errors.ColumnNotFoundError
	var invalid *errors.InvalidInputError
	if stderrors.As(err, &notFound) || stderrors.As(err, &invalid) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, statusCode int, err error) {
	writeJSON(w, statusCode, ErrorResponse{Error: err.Error()})
}
