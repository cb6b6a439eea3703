package viewsync

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	h := NewHandler(newTestService(t), testLogger(), nil)
	r := chi.NewRouter()
	h.Routes(r)
	return r
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func createSession(t *testing.T, r http.Handler) sessionResponse {
	t.Helper()
	rec := do(r, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp
}

func TestHandler_GetMapSettings(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, http.MethodGet, "/map", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var settings MapSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &settings))
	assert.Equal(t, DefaultOptions().Settings(), settings)
}

func TestHandler_CreateSession(t *testing.T) {
	r := newTestRouter(t)

	resp := createSession(t, r)
	assert.Equal(t, Selection{NoSelection, NoSelection, NoSelection}, resp.State.Selection)
	assert.Equal(t, []CommandType{CommandSetLayers, CommandSetLayout}, commandTypes(resp.Commands))
}

func TestHandler_PostEvents_single_event(t *testing.T) {
	r := newTestRouter(t)
	sess := createSession(t, r)

	rec := do(r, http.MethodPost, "/sessions/"+string(sess.SessionID)+"/events",
		Event{Type: EventFlyRequested, PhotoID: "nyc-1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp eventsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Commands)
	fly := resp.Commands[len(resp.Commands)-1]
	assert.Equal(t, CommandFlyTo, fly.Type)
	assert.Equal(t, &FlyTo{Latitude: 40.0, Longitude: -74.0, Zoom: DefaultFlyZoom}, fly.FlyTo)
	assert.True(t, resp.State.Viewport.Flying)
}

func TestHandler_PostEvents_batch(t *testing.T) {
	r := newTestRouter(t)
	sess := createSession(t, r)

	rec := do(r, http.MethodPost, "/sessions/"+string(sess.SessionID)+"/events", map[string]any{
		"events": []Event{
			{Type: EventThumbnailClicked, Location: "New_York", Index: 1},
			{Type: EventViewerClosed},
			{Type: EventViewerClosed},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp eventsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []CommandType{CommandOpenViewer, CommandCloseViewer}, commandTypes(resp.Commands))
	assert.Equal(t, Selection{NoSelection, NoSelection, NoSelection}, resp.State.Selection)
}

func TestHandler_PostEvents_no_commands_is_empty_list(t *testing.T) {
	r := newTestRouter(t)
	sess := createSession(t, r)

	rec := do(r, http.MethodPost, "/sessions/"+string(sess.SessionID)+"/events", Event{Type: EventDocumentClicked})
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	assert.JSONEq(t, `[]`, string(raw["commands"]))
}

func TestHandler_PostEvents_errors(t *testing.T) {
	r := newTestRouter(t)
	sess := createSession(t, r)
	path := "/sessions/" + string(sess.SessionID) + "/events"

	tests := []struct {
		name string
		path string
		body any
		want int
	}{
		{"bad json", path, "not json", http.StatusBadRequest},
		{"empty body", path, map[string]any{}, http.StatusBadRequest},
		{"unknown type", path, Event{Type: "pinch"}, http.StatusBadRequest},
		{"index out of range", path, Event{Type: EventThumbnailClicked, Location: "Philly", Index: 3}, http.StatusBadRequest},
		{"drag without zoom", path, `{"type":"drag_started"}`, http.StatusBadRequest},
		{"negative zoom", path, `{"type":"zoom_settled","zoom":-3}`, http.StatusBadRequest},
		{"thumbnail without index", path, `{"type":"thumbnail_clicked","location":"Philly"}`, http.StatusBadRequest},
		{"batch event without index", path, `{"events":[{"type":"thumbnail_clicked","location":"Philly"}]}`, http.StatusBadRequest},
		{"events not a list", path, `{"events":"zoom"}`, http.StatusBadRequest},
		{"unknown session", "/sessions/nope/events", Event{Type: EventDocumentClicked}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(r, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandler_PostEvents_rejected_zoom_keeps_state(t *testing.T) {
	r := newTestRouter(t)
	sess := createSession(t, r)
	path := "/sessions/" + string(sess.SessionID)

	rec := do(r, http.MethodPost, path+"/events", `{"type":"zoom_settled","zoom":12}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(r, http.MethodPost, path+"/events", `{"type":"drag_started"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		State State `json:"state"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.State.Viewport.Zoom)
	assert.Equal(t, ModeClusteredPhotos, resp.State.Layers.Mode)
}

func TestHandler_GetSession(t *testing.T) {
	r := newTestRouter(t)
	sess := createSession(t, r)

	do(r, http.MethodPost, "/sessions/"+string(sess.SessionID)+"/events", Event{Type: EventZoomSettled, Zoom: 7})

	rec := do(r, http.MethodGet, "/sessions/"+string(sess.SessionID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		State State `json:"state"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.State.Viewport.Zoom)
	assert.Equal(t, ModeHeadingMarkers, resp.State.Layers.Mode)

	rec = do(r, http.MethodGet, "/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_EndSession(t *testing.T) {
	r := newTestRouter(t)
	sess := createSession(t, r)
	path := "/sessions/" + string(sess.SessionID)

	rec := do(r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
