package viewsync

import (
	"encoding/json"

	"roadtrip-viewer/internal/tour"
)

// EventType names an input the host UI reports to a Controller.
type EventType string

const (
	EventThumbnailClicked       EventType = "thumbnail_clicked"
	EventViewerClosed           EventType = "viewer_closed"
	EventFlyRequested           EventType = "fly_requested"
	EventDragStarted            EventType = "drag_started"
	EventZoomSettled            EventType = "zoom_settled"
	EventRouteMarkerClicked     EventType = "route_marker_clicked"
	EventPhotoMarkerClicked     EventType = "photo_marker_clicked"
	EventDocumentClicked        EventType = "document_clicked"
	EventMarkerHoverStarted     EventType = "marker_hover_started"
	EventMarkerHoverEnded       EventType = "marker_hover_ended"
	EventViewportResized        EventType = "viewport_resized"
	EventScrollTargetRegistered EventType = "scroll_target_registered"
)

// Event is one typed UI event. Only the fields relevant to Type are read.
type Event struct {
	Type     EventType `json:"type"`
	Location string    `json:"location,omitempty"`
	Index    int       `json:"index"`
	PhotoID  string    `json:"photo_id,omitempty"`
	Zoom     int       `json:"zoom,omitempty"`
	Width    int       `json:"width,omitempty"`
	Height   int       `json:"height,omitempty"`
	Target   string    `json:"target,omitempty"`
}

// UnmarshalJSON decodes an event, leaving Index at NoSelection when the
// payload has no index.
func (e *Event) UnmarshalJSON(b []byte) error {
	type plain Event
	p := plain{Index: NoSelection}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*e = Event(p)
	return nil
}

// CommandType names an instruction the host UI replays on its widgets.
type CommandType string

const (
	CommandOpenViewer     CommandType = "open_viewer"
	CommandCloseViewer    CommandType = "close_viewer"
	CommandFlyTo          CommandType = "fly_to"
	CommandScrollIntoView CommandType = "scroll_into_view"
	CommandSetLayers      CommandType = "set_layers"
	CommandSetMarkerIcon  CommandType = "set_marker_icon"
	CommandOpenPopup      CommandType = "open_popup"
	CommandClosePopup     CommandType = "close_popup"
	CommandSetLayout      CommandType = "set_layout"
)

// Command is one instruction for a collaborator. Exactly one payload field is
// set, matching Type.
type Command struct {
	Type CommandType `json:"type"`

	Viewer     *Viewer         `json:"viewer,omitempty"`
	FlyTo      *FlyTo          `json:"fly_to,omitempty"`
	Scroll     *ScrollIntoView `json:"scroll,omitempty"`
	Layers     *LayerSet       `json:"layers,omitempty"`
	MarkerIcon *MarkerIcon     `json:"marker_icon,omitempty"`
	Popup      *Popup          `json:"popup,omitempty"`
	Layout     *tour.Layout    `json:"layout,omitempty"`
}

// Viewer is the slide viewer input: open flag, active slide and sequence.
type Viewer struct {
	Open     bool         `json:"open"`
	Location string       `json:"location"`
	Index    int          `json:"index"`
	Slides   []tour.Slide `json:"slides,omitempty"`
}

// FlyTo is a scripted camera move.
type FlyTo struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

// Scroll behaviour requested from the gallery panel.
const (
	ScrollBehaviorSmooth = "smooth"
	ScrollBlockStart     = "start"
)

// ScrollIntoView asks the gallery panel to bring a location heading into view.
type ScrollIntoView struct {
	Location string `json:"location"`
	Target   string `json:"target"`
	Behavior string `json:"behavior"`
	Block    string `json:"block"`
}

// MarkerIcon swaps the icon of one photo marker.
type MarkerIcon struct {
	PhotoID  string `json:"photo_id"`
	Icon     string `json:"icon"`
	Enlarged bool   `json:"enlarged"`
}

// Popup targets the label popup of a heading marker.
type Popup struct {
	Location string `json:"location"`
	Label    string `json:"label,omitempty"`
}

func setLayersCommand(l LayerSet) Command {
	return Command{Type: CommandSetLayers, Layers: &l}
}

func setLayoutCommand(l tour.Layout) Command {
	return Command{Type: CommandSetLayout, Layout: &l}
}
