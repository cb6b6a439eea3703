package tour

import (
	"roadtrip-viewer/internal/location"
	"roadtrip-viewer/internal/photo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Stroke is a polyline style understood by the map surface.
type Stroke struct {
	Color     string  `json:"color"`
	Weight    int     `json:"weight"`
	Opacity   float64 `json:"opacity"`
	DashArray string  `json:"dash_array,omitempty"`
}

// The route is drawn twice: a wide solid under-stroke for contrast and a
// thin dashed over-stroke.
var (
	RouteUnderStroke = Stroke{Color: "black", Weight: 10, Opacity: 0.8}
	RouteOverStroke  = Stroke{Color: "yellow", Weight: 3, Opacity: 0.8, DashArray: "10, 10"}
)

// PhotoClusterRadius is the max cluster radius, in pixels, for the photo
// marker cluster group. Only markers that practically overlap are merged.
const PhotoClusterRadius = 1

// Feature kinds, stored in the "kind" property.
const (
	KindRouteLine     = "route_line"
	KindHeadingMarker = "heading_marker"
	KindPhotoMarker   = "photo_marker"
)

// RouteFeatures returns the route polyline and one heading marker per
// cluster. Heading markers are omitted when the route has no direction.
func (t *Tour) RouteFeatures() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if len(t.clusters) == 0 {
		return fc
	}

	line := geojson.NewFeature(location.RouteLine(t.clusters))
	line.Properties["kind"] = KindRouteLine
	line.Properties["strokes"] = []Stroke{RouteUnderStroke, RouteOverStroke}
	line.BBox = geojson.NewBBox(location.RouteBound(t.clusters))
	fc.Append(line)

	for i, c := range t.clusters {
		h, ok := t.Heading(i)
		if !ok {
			continue
		}
		f := geojson.NewFeature(c.Point())
		f.ID = c.Name
		f.Properties["kind"] = KindHeadingMarker
		f.Properties["location"] = c.Name
		f.Properties["label"] = c.DisplayName()
		f.Properties["heading"] = h
		fc.Append(f)
	}
	return fc
}

// PhotoFeatures returns one marker per routed photo. The photo whose id is
// enlarged gets the large icon.
func (t *Tour) PhotoFeatures(enlarged string) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range t.clusters {
		for _, p := range c.Photos {
			fc.Append(photoFeature(p, p.ID == enlarged))
		}
	}
	return fc
}

func photoFeature(p photo.Record, enlarged bool) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{p.Longitude, p.Latitude})
	f.ID = p.ID
	f.Properties["kind"] = KindPhotoMarker
	f.Properties["location"] = p.Location
	f.Properties["icon"] = photo.MarkerIconURL(p, enlarged)
	f.Properties["enlarged"] = enlarged
	f.Properties["cluster_radius"] = PhotoClusterRadius
	return f
}
