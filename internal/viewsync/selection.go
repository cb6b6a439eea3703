package viewsync

// NoSelection marks a cluster with no photo open in the slide viewer.
const NoSelection = -1

// Selection holds one selected photo index per cluster. At most one entry is
// not NoSelection; Select and Clear are the only mutators and keep it so.
type Selection []int

// NewSelection returns a selection of n clusters with nothing selected.
func NewSelection(n int) Selection {
	s := make(Selection, n)
	s.Clear()
	return s
}

// Select makes index the selected photo of cluster and resets every other
// cluster. index is not checked against the cluster size.
func (s Selection) Select(cluster, index int) {
	for i := range s {
		s[i] = NoSelection
	}
	s[cluster] = index
}

// Clear resets every cluster and reports whether anything was selected.
func (s Selection) Clear() bool {
	had := false
	for i := range s {
		if s[i] != NoSelection {
			had = true
		}
		s[i] = NoSelection
	}
	return had
}

// Active returns the selected cluster and photo index.
func (s Selection) Active() (cluster, index int, ok bool) {
	for i, v := range s {
		if v != NoSelection {
			return i, v, true
		}
	}
	return NoSelection, NoSelection, false
}

// Clone returns a copy safe to hand out.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	copy(out, s)
	return out
}
