package viewsync

import "fmt"

// Mode is the zoom-keyed presentation of the map overlays.
type Mode string

const (
	ModeRouteLine       Mode = "route_line"
	ModeHeadingMarkers  Mode = "heading_markers"
	ModeClusteredPhotos Mode = "clustered_photos"
)

// Zoom thresholds tuned for the reference dataset's geography.
const (
	DefaultRouteLineMaxZoom   = 9
	DefaultHeadingMinZoom     = 6
	DefaultPhotoMarkerMinZoom = 8
)

// Thresholds configure the mode boundaries.
type Thresholds struct {
	RouteLineMaxZoom   int `json:"route_line_max_zoom"`
	HeadingMinZoom     int `json:"heading_min_zoom"`
	PhotoMarkerMinZoom int `json:"photo_marker_min_zoom"`
}

// DefaultThresholds returns 9 / 6 / 8.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RouteLineMaxZoom:   DefaultRouteLineMaxZoom,
		HeadingMinZoom:     DefaultHeadingMinZoom,
		PhotoMarkerMinZoom: DefaultPhotoMarkerMinZoom,
	}
}

// Warnings describes threshold combinations that leave a mode or a zoom range
// without overlays. An empty result means every mode is reachable.
func (t Thresholds) Warnings() []string {
	var out []string
	if t.HeadingMinZoom >= t.PhotoMarkerMinZoom {
		out = append(out, fmt.Sprintf("heading markers unreachable: heading min zoom %d >= photo marker min zoom %d",
			t.HeadingMinZoom, t.PhotoMarkerMinZoom))
	}
	if t.RouteLineMaxZoom+1 < t.HeadingMinZoom && t.RouteLineMaxZoom+1 < t.PhotoMarkerMinZoom {
		out = append(out, fmt.Sprintf("no overlays between zoom %d and %d: route line max zoom is below both marker modes",
			t.RouteLineMaxZoom+1, min(t.HeadingMinZoom, t.PhotoMarkerMinZoom)-1))
	}
	return out
}

// ModeFor returns the primary mode at zoom.
func (t Thresholds) ModeFor(zoom int) Mode {
	switch {
	case zoom >= t.PhotoMarkerMinZoom:
		return ModeClusteredPhotos
	case zoom >= t.HeadingMinZoom:
		return ModeHeadingMarkers
	default:
		return ModeRouteLine
	}
}

// LayerSet is the set of overlays the map surface should display.
type LayerSet struct {
	Mode           Mode `json:"mode"`
	RouteLine      bool `json:"route_line"`
	HeadingMarkers bool `json:"heading_markers"`
	PhotoMarkers   bool `json:"photo_markers"`
}

// Viewport is the map camera state the selector tracks.
type Viewport struct {
	Zoom   int  `json:"zoom"`
	Flying bool `json:"flying"`
}

// ModeSelector is the state machine over (zoom, flying). Zoom only changes
// through SettleZoom and DragStarted, both of which end a flight, so the mode
// in effect when a flight starts is kept until it ends.
type ModeSelector struct {
	thresholds  Thresholds
	directional bool // route has at least two clusters
	viewport    Viewport
	mode        Mode
	layers      LayerSet
}

// NewModeSelector starts at zoom, not flying. directional reports whether
// heading markers can be drawn.
func NewModeSelector(t Thresholds, zoom int, directional bool) *ModeSelector {
	s := &ModeSelector{thresholds: t, directional: directional, viewport: Viewport{Zoom: zoom}}
	s.evaluate()
	return s
}

// Mode returns the primary mode.
func (s *ModeSelector) Mode() Mode { return s.mode }

// Layers returns the current layer set.
func (s *ModeSelector) Layers() LayerSet { return s.layers }

// Viewport returns the tracked camera state.
func (s *ModeSelector) Viewport() Viewport { return s.viewport }

// StartFlight raises the flying flag. It returns the new layer set and
// whether it changed.
func (s *ModeSelector) StartFlight() (LayerSet, bool) {
	s.viewport.Flying = true
	return s.evaluate()
}

// SettleZoom applies a settled zoom level and ends any flight.
func (s *ModeSelector) SettleZoom(zoom int) (LayerSet, bool) {
	s.viewport.Zoom = zoom
	s.viewport.Flying = false
	return s.evaluate()
}

// DragStarted ends a flight at the current zoom. Outside a flight it only
// syncs the zoom level.
func (s *ModeSelector) DragStarted(zoom int) (LayerSet, bool) {
	s.viewport.Zoom = zoom
	s.viewport.Flying = false
	return s.evaluate()
}

func (s *ModeSelector) evaluate() (LayerSet, bool) {
	if !s.viewport.Flying {
		s.mode = s.thresholds.ModeFor(s.viewport.Zoom)
	}

	zoom, flying := s.viewport.Zoom, s.viewport.Flying
	next := LayerSet{
		Mode:           s.mode,
		RouteLine:      zoom <= s.thresholds.RouteLineMaxZoom && !flying,
		HeadingMarkers: s.mode == ModeHeadingMarkers && !flying && s.directional,
		PhotoMarkers:   zoom >= s.thresholds.PhotoMarkerMinZoom,
	}

	changed := next != s.layers
	s.layers = next
	return next, changed
}
