package viewsync

// ScrollTargets maps a location to the opaque handle the gallery panel uses
// to find that location's heading element.
type ScrollTargets struct {
	handles map[string]string
}

// NewScrollTargets returns an empty table.
func NewScrollTargets() *ScrollTargets {
	return &ScrollTargets{handles: make(map[string]string)}
}

// Register overrides the handle of location.
func (t *ScrollTargets) Register(location, handle string) {
	t.handles[location] = handle
}

// Lookup returns the registered handle, or "location-<name>".
func (t *ScrollTargets) Lookup(location string) string {
	if h, ok := t.handles[location]; ok {
		return h
	}
	return "location-" + location
}
