package viewsync

import (
	"errors"
	"fmt"
	"log/slog"

	"roadtrip-viewer/internal/photo"
	"roadtrip-viewer/internal/tour"
)

// ErrUnknownEvent is returned for an event type no handler is registered for.
var ErrUnknownEvent = errors.New("unknown event type")

type eventHandler func(Event) []Command

// Controller owns the cross-view state of one viewer: the slide viewer
// selection, the map viewport and mode, the enlarged photo marker, the open
// hover popup and the layout. It is not safe for concurrent use; callers
// serialize access through a Repository.
type Controller struct {
	tour    *tour.Tour
	log     *slog.Logger
	flyZoom int

	selection Selection
	modes     *ModeSelector
	enlarged  string // photo id, or empty
	popup     string // location, or empty
	layout    tour.Layout
	targets   *ScrollTargets

	handlers map[EventType]eventHandler
}

// NewController returns a Controller over t with nothing selected, the map at
// opts.InitialZoom and the default layout.
func NewController(t *tour.Tour, opts Options, log *slog.Logger) *Controller {
	c := &Controller{
		tour:      t,
		log:       log,
		flyZoom:   opts.FlyZoom,
		selection: NewSelection(t.Len()),
		modes:     NewModeSelector(opts.Thresholds, opts.InitialZoom, t.HasDirection()),
		layout:    tour.DefaultLayout(),
		targets:   NewScrollTargets(),
	}
	c.handlers = map[EventType]eventHandler{
		EventThumbnailClicked:       c.thumbnailClicked,
		EventViewerClosed:           c.viewerClosed,
		EventFlyRequested:           c.flyRequested,
		EventDragStarted:            c.dragStarted,
		EventZoomSettled:            c.zoomSettled,
		EventRouteMarkerClicked:     c.routeMarkerClicked,
		EventPhotoMarkerClicked:     c.photoMarkerClicked,
		EventDocumentClicked:        c.documentClicked,
		EventMarkerHoverStarted:     c.markerHoverStarted,
		EventMarkerHoverEnded:       c.markerHoverEnded,
		EventViewportResized:        c.viewportResized,
		EventScrollTargetRegistered: c.scrollTargetRegistered,
	}
	return c
}

// Handles reports whether typ has a handler.
func (c *Controller) Handles(typ EventType) bool {
	_, ok := c.handlers[typ]
	return ok
}

// Start returns the commands that bring a fresh map and gallery in line with
// the controller's initial state.
func (c *Controller) Start() []Command {
	return []Command{
		setLayersCommand(c.modes.Layers()),
		setLayoutCommand(c.layout),
	}
}

// Handle applies ev and returns the commands for the collaborators.
func (c *Controller) Handle(ev Event) ([]Command, error) {
	h, ok := c.handlers[ev.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}
	return h(ev), nil
}

// Selection returns a copy of the selection state.
func (c *Controller) Selection() Selection {
	return c.selection.Clone()
}

// Viewport returns the map camera state.
func (c *Controller) Viewport() Viewport {
	return c.modes.Viewport()
}

// Mode returns the primary render mode.
func (c *Controller) Mode() Mode {
	return c.modes.Mode()
}

// ActiveLocation returns the display name shown by the overlay label, or ""
// when the slide viewer is closed.
func (c *Controller) ActiveLocation() string {
	ci, _, ok := c.selection.Active()
	if !ok {
		return ""
	}
	cl, _ := c.tour.Cluster(ci)
	return cl.DisplayName()
}

func (c *Controller) thumbnailClicked(ev Event) []Command {
	ci, ok := c.tour.ClusterIndex(ev.Location)
	if !ok {
		c.log.Warn("thumbnail click for unknown location", slog.String("location", ev.Location))
		return nil
	}
	if n := c.tour.PhotoCount(ci); ev.Index < 0 || ev.Index >= n {
		c.log.Warn("selection index out of range",
			slog.String("location", ev.Location),
			slog.Int("index", ev.Index),
			slog.Int("photo_count", n))
	}

	c.selection.Select(ci, ev.Index)
	return []Command{{
		Type: CommandOpenViewer,
		Viewer: &Viewer{
			Open:     true,
			Location: ev.Location,
			Index:    ev.Index,
			Slides:   c.tour.Slides(ci),
		},
	}}
}

func (c *Controller) viewerClosed(Event) []Command {
	ci, _, open := c.selection.Active()
	if !open {
		return nil
	}
	cl, _ := c.tour.Cluster(ci)
	c.selection.Clear()
	return []Command{{
		Type:   CommandCloseViewer,
		Viewer: &Viewer{Open: false, Location: cl.Name, Index: NoSelection},
	}}
}

func (c *Controller) flyRequested(ev Event) []Command {
	p, _, ok := c.tour.Photo(ev.PhotoID)
	if !ok {
		c.log.Warn("fly requested for unknown photo", slog.String("photo_id", ev.PhotoID))
		return nil
	}

	cmds := c.layersIfChanged(c.modes.StartFlight())
	return append(cmds, Command{
		Type:  CommandFlyTo,
		FlyTo: &FlyTo{Latitude: p.Latitude, Longitude: p.Longitude, Zoom: c.flyZoom},
	})
}

func (c *Controller) dragStarted(ev Event) []Command {
	return c.layersIfChanged(c.modes.DragStarted(ev.Zoom))
}

func (c *Controller) zoomSettled(ev Event) []Command {
	return c.layersIfChanged(c.modes.SettleZoom(ev.Zoom))
}

// layersIfChanged emits the new layer set and drops the popup or enlarged
// icon of markers the set no longer shows.
func (c *Controller) layersIfChanged(layers LayerSet, changed bool) []Command {
	if !changed {
		return nil
	}
	cmds := []Command{setLayersCommand(layers)}
	if !layers.HeadingMarkers && c.popup != "" {
		cmds = append(cmds, Command{Type: CommandClosePopup, Popup: &Popup{Location: c.popup}})
		c.popup = ""
	}
	if !layers.PhotoMarkers {
		cmds = append(cmds, c.shrinkEnlarged()...)
	}
	return cmds
}

func (c *Controller) routeMarkerClicked(ev Event) []Command {
	if _, ok := c.tour.ClusterIndex(ev.Location); !ok {
		c.log.Warn("route marker click for unknown location", slog.String("location", ev.Location))
		return nil
	}
	return []Command{c.scrollTo(ev.Location)}
}

func (c *Controller) photoMarkerClicked(ev Event) []Command {
	p, _, ok := c.tour.Photo(ev.PhotoID)
	if !ok {
		c.log.Warn("photo marker click for unknown photo", slog.String("photo_id", ev.PhotoID))
		return nil
	}
	if !c.modes.Layers().PhotoMarkers {
		c.log.Debug("photo marker click while photo markers hidden",
			slog.String("photo_id", ev.PhotoID),
			slog.Int("zoom", c.modes.Viewport().Zoom))
		return nil
	}

	// A second click on the enlarged marker shrinks it back.
	toggledOff := c.enlarged == p.ID
	cmds := c.shrinkEnlarged()
	if !toggledOff {
		c.enlarged = p.ID
		cmds = append(cmds, markerIconCommand(p, true))
	}
	return append(cmds, c.scrollTo(p.Location))
}

func (c *Controller) documentClicked(Event) []Command {
	return c.shrinkEnlarged()
}

// shrinkEnlarged restores the small icon of the enlarged marker, if any.
func (c *Controller) shrinkEnlarged() []Command {
	if c.enlarged == "" {
		return nil
	}
	p, _, ok := c.tour.Photo(c.enlarged)
	c.enlarged = ""
	if !ok {
		return nil
	}
	return []Command{markerIconCommand(p, false)}
}

func markerIconCommand(p photo.Record, enlarged bool) Command {
	return Command{
		Type: CommandSetMarkerIcon,
		MarkerIcon: &MarkerIcon{
			PhotoID:  p.ID,
			Icon:     photo.MarkerIconURL(p, enlarged),
			Enlarged: enlarged,
		},
	}
}

func (c *Controller) markerHoverStarted(ev Event) []Command {
	ci, ok := c.tour.ClusterIndex(ev.Location)
	if !ok {
		c.log.Warn("hover on unknown location", slog.String("location", ev.Location))
		return nil
	}
	if !c.modes.Layers().HeadingMarkers {
		c.log.Debug("hover while heading markers hidden",
			slog.String("location", ev.Location),
			slog.String("mode", string(c.modes.Mode())))
		return nil
	}
	if c.popup == ev.Location {
		return nil
	}

	var cmds []Command
	if c.popup != "" {
		cmds = append(cmds, Command{Type: CommandClosePopup, Popup: &Popup{Location: c.popup}})
	}
	cl, _ := c.tour.Cluster(ci)
	c.popup = ev.Location
	return append(cmds, Command{
		Type:  CommandOpenPopup,
		Popup: &Popup{Location: ev.Location, Label: cl.DisplayName()},
	})
}

func (c *Controller) markerHoverEnded(ev Event) []Command {
	if c.popup == "" || c.popup != ev.Location {
		return nil
	}
	c.popup = ""
	return []Command{{Type: CommandClosePopup, Popup: &Popup{Location: ev.Location}}}
}

func (c *Controller) viewportResized(ev Event) []Command {
	next := tour.LayoutFor(ev.Width, ev.Height)
	if next == c.layout {
		return nil
	}
	c.layout = next
	return []Command{setLayoutCommand(next)}
}

func (c *Controller) scrollTargetRegistered(ev Event) []Command {
	if ev.Location == "" || ev.Target == "" {
		c.log.Warn("scroll target registration missing fields",
			slog.String("location", ev.Location),
			slog.String("target", ev.Target))
		return nil
	}
	c.targets.Register(ev.Location, ev.Target)
	return nil
}

func (c *Controller) scrollTo(location string) Command {
	return Command{
		Type: CommandScrollIntoView,
		Scroll: &ScrollIntoView{
			Location: location,
			Target:   c.targets.Lookup(location),
			Behavior: ScrollBehaviorSmooth,
			Block:    ScrollBlockStart,
		},
	}
}
