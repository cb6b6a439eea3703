package viewsync

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"roadtrip-viewer/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the session endpoints using go-chi.
type Handler struct {
	svc     *Service
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewHandler returns a Handler that uses the given Service, Logger, and optional Metrics.
// Metrics may be nil to disable metric recording (e.g. in tests).
func NewHandler(svc *Service, log *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{svc: svc, log: log, metrics: m}
}

// Routes mounts the map settings and session endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/map", h.GetMapSettings)
	r.Post("/sessions", h.CreateSession)
	r.Get("/sessions/{session_id}", h.GetSession)
	r.Post("/sessions/{session_id}/events", h.PostEvents)
	r.Delete("/sessions/{session_id}", h.EndSession)
}

type sessionResponse struct {
	SessionID SessionID `json:"session_id"`
	State     State     `json:"state"`
	Commands  []Command `json:"commands"`
}

type eventsResponse struct {
	Commands []Command `json:"commands"`
	State    State     `json:"state"`
}

// decodeEvents accepts {"events":[...]} or a single bare event.
func decodeEvents(body []byte) ([]Event, error) {
	var batch struct {
		Events []Event `json:"events"`
	}
	if err := json.Unmarshal(body, &batch); err != nil {
		return nil, err
	}
	if len(batch.Events) > 0 {
		return batch.Events, nil
	}
	var single Event
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, err
	}
	if single.Type == "" {
		return nil, nil
	}
	return []Event{single}, nil
}

// GetMapSettings handles GET /map.
func (h *Handler) GetMapSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.MapSettings())
}

// CreateSession handles POST /sessions.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, state, cmds, err := h.svc.CreateSession()
	if err != nil {
		h.log.Error("create session failed", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	h.log.Info("session created", slog.String("session_id", string(id)))
	if h.metrics != nil {
		h.metrics.IncSessionsCreated()
	}
	writeJSON(w, http.StatusCreated, sessionResponse{SessionID: id, State: state, Commands: nonNil(cmds)})
}

// GetSession handles GET /sessions/{session_id}.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := SessionID(chi.URLParam(r, "session_id"))
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	state, err := h.svc.Snapshot(id)
	if err != nil {
		h.writeError(w, id, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]State{"state": state})
}

// PostEvents handles POST /sessions/{session_id}/events.
// Body: { "events": [ { "type": "zoom_settled", "zoom": 7 } ] } or one event.
func (h *Handler) PostEvents(w http.ResponseWriter, r *http.Request) {
	id := SessionID(chi.URLParam(r, "session_id"))
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		h.log.Debug("invalid events body", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	events, err := decodeEvents(raw)
	if err != nil {
		h.log.Debug("invalid events body", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if len(events) == 0 {
		h.log.Debug("empty events body", slog.String("session_id", string(id)))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	cmds, state, err := h.svc.Dispatch(id, events)
	if err != nil {
		h.writeError(w, id, err)
		return
	}

	h.log.Debug("events applied",
		slog.String("session_id", string(id)),
		slog.Int("events", len(events)),
		slog.Int("commands", len(cmds)))
	h.record(events, cmds)
	writeJSON(w, http.StatusOK, eventsResponse{Commands: nonNil(cmds), State: state})
}

// EndSession handles DELETE /sessions/{session_id}.
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	id := SessionID(chi.URLParam(r, "session_id"))
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.svc.EndSession(id); err != nil {
		h.writeError(w, id, err)
		return
	}

	h.log.Info("session ended", slog.String("session_id", string(id)))
	w.WriteHeader(http.StatusNoContent)
	if h.metrics != nil {
		h.metrics.IncSessionsEnded()
	}
}

func (h *Handler) writeError(w http.ResponseWriter, id SessionID, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, ErrUnknownEvent), errors.Is(err, ErrInvalidEvent):
		h.log.Info("events rejected",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		h.log.Error("session request failed",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *Handler) record(events []Event, cmds []Command) {
	if h.metrics == nil {
		return
	}
	for _, ev := range events {
		h.metrics.IncEvent(string(ev.Type))
	}
	for _, c := range cmds {
		if c.Type == CommandFlyTo {
			h.metrics.IncFlights()
		}
	}
}

func nonNil(cmds []Command) []Command {
	if cmds == nil {
		return []Command{}
	}
	return cmds
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
