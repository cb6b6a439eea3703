package viewsync

import (
	"roadtrip-viewer/internal/tour"
)

// State is a point-in-time copy of a Controller's state.
type State struct {
	Selection      Selection   `json:"selection"`
	ActiveLocation string      `json:"active_location,omitempty"`
	ActiveIndex    int         `json:"active_index"`
	OverlayLabel   string      `json:"overlay_label,omitempty"`
	Viewport       Viewport    `json:"viewport"`
	Layers         LayerSet    `json:"layers"`
	Enlarged       string      `json:"enlarged_photo,omitempty"`
	Popup          string      `json:"popup,omitempty"`
	Layout         tour.Layout `json:"layout"`
}

// Snapshot copies the controller state.
func (c *Controller) Snapshot() State {
	st := State{
		Selection:    c.selection.Clone(),
		ActiveIndex:  NoSelection,
		OverlayLabel: c.ActiveLocation(),
		Viewport:     c.modes.Viewport(),
		Layers:       c.modes.Layers(),
		Enlarged:     c.enlarged,
		Popup:        c.popup,
		Layout:       c.layout,
	}
	if ci, idx, ok := c.selection.Active(); ok {
		cl, _ := c.tour.Cluster(ci)
		st.ActiveLocation = cl.Name
		st.ActiveIndex = idx
	}
	return st
}
