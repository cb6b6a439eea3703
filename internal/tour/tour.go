package tour

import (
	"fmt"
	"math"

	"roadtrip-viewer/internal/location"
	"roadtrip-viewer/internal/photo"
)

// PhotoRef locates a photo inside the cluster list.
type PhotoRef struct {
	Cluster int // cluster index
	Index   int // position within the cluster's gallery
}

// Tour is the read-only model shared by every viewer: the raw photos, the
// location clusters built from them and one heading per cluster. It is
// built once at startup.
type Tour struct {
	photos   []photo.Record
	clusters []location.Cluster
	headings []float64

	byName  map[string]int
	byPhoto map[string]PhotoRef
}

// New aggregates records into clusters (first-encounter order when order is
// empty, canonical route order otherwise) and computes headings.
func New(records []photo.Record, order []string) (*Tour, error) {
	clusters, err := location.Build(records, order)
	if err != nil {
		return nil, fmt.Errorf("build clusters: %w", err)
	}

	t := &Tour{
		photos:   records,
		clusters: clusters,
		headings: location.Headings(clusters),
		byName:   make(map[string]int, len(clusters)),
		byPhoto:  make(map[string]PhotoRef, len(records)),
	}
	for ci, c := range clusters {
		t.byName[c.Name] = ci
		for pi, p := range c.Photos {
			t.byPhoto[p.ID] = PhotoRef{Cluster: ci, Index: pi}
		}
	}
	return t, nil
}

// Len returns the number of clusters.
func (t *Tour) Len() int {
	return len(t.clusters)
}

// Clusters returns the clusters in route order. Callers must not modify them.
func (t *Tour) Clusters() []location.Cluster {
	return t.clusters
}

// Photos returns every routed photo in dataset order.
func (t *Tour) Photos() []photo.Record {
	out := make([]photo.Record, 0, len(t.byPhoto))
	for _, p := range t.photos {
		if _, ok := t.byPhoto[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Cluster returns the cluster at index i.
func (t *Tour) Cluster(i int) (location.Cluster, bool) {
	if i < 0 || i >= len(t.clusters) {
		return location.Cluster{}, false
	}
	return t.clusters[i], true
}

// ClusterIndex looks a cluster up by its location label.
func (t *Tour) ClusterIndex(name string) (int, bool) {
	i, ok := t.byName[name]
	return i, ok
}

// PhotoCount returns the number of photos in cluster i, or 0.
func (t *Tour) PhotoCount(i int) int {
	c, ok := t.Cluster(i)
	if !ok {
		return 0
	}
	return len(c.Photos)
}

// Photo looks a routed photo up by id.
func (t *Tour) Photo(id string) (photo.Record, PhotoRef, bool) {
	ref, ok := t.byPhoto[id]
	if !ok {
		return photo.Record{}, PhotoRef{}, false
	}
	return t.clusters[ref.Cluster].Photos[ref.Index], ref, true
}

// Heading returns the heading of cluster i and whether it has a direction.
// A single-cluster route has none.
func (t *Tour) Heading(i int) (float64, bool) {
	if i < 0 || i >= len(t.headings) || math.IsNaN(t.headings[i]) {
		return 0, false
	}
	return t.headings[i], true
}

// HasDirection reports whether heading markers can be drawn at all.
func (t *Tour) HasDirection() bool {
	return len(t.clusters) > 1
}
