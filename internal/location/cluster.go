package location

import (
	"errors"
	"fmt"
	"time"

	"roadtrip-viewer/internal/photo"

	"github.com/paulmach/orb"
)

// DisplayDateLayout is the short human date shown next to a location heading.
const DisplayDateLayout = "Jan 2, 2006"

// timestampLayouts are tried in order when formatting a cluster timestamp.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02",
}

var (
	// ErrEmptyLocationGroup is returned when a routed location has no photos.
	// Use errors.Is; the concrete error is *EmptyLocationGroupError.
	ErrEmptyLocationGroup = errors.New("empty location group")

	// ErrDuplicateRouteLabel is returned when a route order lists a label twice.
	ErrDuplicateRouteLabel = errors.New("duplicate label in route order")
)

// EmptyLocationGroupError names the routed location that matched no photos.
type EmptyLocationGroupError struct {
	Label string
}

func (e *EmptyLocationGroupError) Error() string {
	return fmt.Sprintf("%s: location %q has no photos", ErrEmptyLocationGroup, e.Label)
}

// Is makes errors.Is(err, ErrEmptyLocationGroup) match.
func (e *EmptyLocationGroupError) Is(target error) bool {
	return target == ErrEmptyLocationGroup
}

// Cluster is a named stop on the route aggregating every photo tagged with
// that location. Clusters are built once and never mutated.
type Cluster struct {
	Name      string  `json:"name"`
	Index     int     `json:"index"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Earliest  string  `json:"earliest"`  // raw minimum member timestamp
	Timestamp string  `json:"timestamp"` // Earliest formatted with DisplayDateLayout

	// Photos holds the member records in input order.
	Photos []photo.Record `json:"-"`
}

// Point returns the centroid as an orb point (lon, lat).
func (c Cluster) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// DisplayName is the cluster label as shown to users.
func (c Cluster) DisplayName() string {
	return photo.DisplayName(c.Name)
}

// Aggregate groups records by exact location label. Clusters are ordered by
// the first appearance of their label in records.
func Aggregate(records []photo.Record) []Cluster {
	order := make([]string, 0)
	groups := make(map[string][]photo.Record)
	for _, rec := range records {
		if _, ok := groups[rec.Location]; !ok {
			order = append(order, rec.Location)
		}
		groups[rec.Location] = append(groups[rec.Location], rec)
	}

	clusters := make([]Cluster, 0, len(order))
	for i, name := range order {
		// Every label in order has at least one member.
		c, _ := newCluster(name, i, groups[name])
		clusters = append(clusters, c)
	}
	return clusters
}

// AggregateInRouteOrder builds one cluster per entry of order, in that order.
// Records whose label is not routed are ignored. A routed label without
// photos yields an *EmptyLocationGroupError.
func AggregateInRouteOrder(records []photo.Record, order []string) ([]Cluster, error) {
	groups := make(map[string][]photo.Record, len(order))
	for _, name := range order {
		if _, dup := groups[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateRouteLabel, name)
		}
		groups[name] = nil
	}

	for _, rec := range records {
		if members, ok := groups[rec.Location]; ok {
			groups[rec.Location] = append(members, rec)
		}
	}

	clusters := make([]Cluster, 0, len(order))
	for i, name := range order {
		c, err := newCluster(name, i, groups[name])
		if err != nil {
			return nil, err
		}
		clusters = append(clusters, c)
	}
	return clusters, nil
}

// UnroutedLabels returns labels present in records but missing from order,
// in first-appearance order.
func UnroutedLabels(records []photo.Record, order []string) []string {
	routed := make(map[string]struct{}, len(order))
	for _, name := range order {
		routed[name] = struct{}{}
	}

	var out []string
	for _, rec := range records {
		if _, ok := routed[rec.Location]; ok {
			continue
		}
		routed[rec.Location] = struct{}{}
		out = append(out, rec.Location)
	}
	return out
}

func newCluster(name string, index int, members []photo.Record) (Cluster, error) {
	if len(members) == 0 {
		return Cluster{}, &EmptyLocationGroupError{Label: name}
	}

	var latSum, lonSum float64
	earliest := members[0].Timestamp
	for _, m := range members {
		latSum += m.Latitude
		lonSum += m.Longitude
		// ISO-8601 strings order lexically in time order.
		if m.Timestamp < earliest {
			earliest = m.Timestamp
		}
	}
	n := float64(len(members))

	return Cluster{
		Name:      name,
		Index:     index,
		Latitude:  latSum / n,
		Longitude: lonSum / n,
		Earliest:  earliest,
		Timestamp: FormatDisplayDate(earliest),
		Photos:    members,
	}, nil
}

// FormatDisplayDate renders an ISO timestamp as DisplayDateLayout. Strings
// that do not parse are returned unchanged.
func FormatDisplayDate(ts string) string {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format(DisplayDateLayout)
		}
	}
	return ts
}
