package tour

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const geoJSONContentType = "application/geo+json"

// Handler exposes the read-only tour endpoints using go-chi.
type Handler struct {
	tour *Tour
	log  *slog.Logger
}

// NewHandler returns a Handler serving t.
func NewHandler(t *Tour, log *slog.Logger) *Handler {
	return &Handler{tour: t, log: log}
}

// Routes mounts the tour endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/locations", h.ListLocations)
	r.Get("/locations/{location}/gallery", h.GetGallery)
	r.Get("/route.geojson", h.GetRoute)
	r.Get("/photos.geojson", h.GetPhotoMarkers)
}

// ListLocations handles GET /locations.
func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, "application/json", map[string]any{
		"locations": h.tour.Locations(),
	})
}

// GetGallery handles GET /locations/{location}/gallery?width=&height=.
// The optional viewport size selects the thumbnail row height.
func (h *Handler) GetGallery(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "location")
	if name == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	layout := DefaultLayout()
	if r.URL.Query().Has("width") || r.URL.Query().Has("height") {
		width, errW := strconv.Atoi(r.URL.Query().Get("width"))
		height, errH := strconv.Atoi(r.URL.Query().Get("height"))
		if errW != nil || errH != nil {
			h.log.Debug("invalid viewport size",
				slog.String("width", r.URL.Query().Get("width")),
				slog.String("height", r.URL.Query().Get("height")))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		layout = LayoutFor(width, height)
	}

	view, ok := h.tour.Gallery(name, layout)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, "application/json", view)
}

// GetRoute handles GET /route.geojson.
func (h *Handler) GetRoute(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, geoJSONContentType, h.tour.RouteFeatures())
}

// GetPhotoMarkers handles GET /photos.geojson?enlarged={photo_id}.
func (h *Handler) GetPhotoMarkers(w http.ResponseWriter, r *http.Request) {
	enlarged := r.URL.Query().Get("enlarged")
	if enlarged != "" {
		if _, _, ok := h.tour.Photo(enlarged); !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
	}
	writeJSON(w, http.StatusOK, geoJSONContentType, h.tour.PhotoFeatures(enlarged))
}

func writeJSON(w http.ResponseWriter, status int, contentType string, v any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
