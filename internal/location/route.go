package location

import (
	"fmt"
	"os"

	"roadtrip-viewer/internal/photo"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"
)

// RouteOrder is the canonical list of stops, read from a YAML file:
//
//	locations:
//	  - Entering_Detroit
//	  - Ann_Arbor
type RouteOrder struct {
	Locations []string `yaml:"locations"`
}

// LoadRouteOrder reads a route order file. An empty path returns nil, which
// callers treat as "use first-encounter order".
func LoadRouteOrder(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read route order file: %w", err)
	}

	var ro RouteOrder
	if err := yaml.Unmarshal(data, &ro); err != nil {
		return nil, fmt.Errorf("failed to parse route order file: %w", err)
	}
	if len(ro.Locations) == 0 {
		return nil, fmt.Errorf("route order file %s lists no locations", path)
	}
	return ro.Locations, nil
}

// Build aggregates records with the given policy: first-encounter order when
// order is empty, canonical route order otherwise.
func Build(records []photo.Record, order []string) ([]Cluster, error) {
	if len(order) == 0 {
		return Aggregate(records), nil
	}
	return AggregateInRouteOrder(records, order)
}

// RouteLine connects cluster centroids in route order.
func RouteLine(clusters []Cluster) orb.LineString {
	ls := make(orb.LineString, 0, len(clusters))
	for _, c := range clusters {
		ls = append(ls, c.Point())
	}
	return ls
}

// RouteBound is the bounding box of all centroids.
func RouteBound(clusters []Cluster) orb.Bound {
	return RouteLine(clusters).Bound()
}
