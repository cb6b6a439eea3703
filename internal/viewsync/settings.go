package viewsync

import (
	"roadtrip-viewer/internal/tour"
)

// Map defaults of the viewer page: a view of the contiguous United States.
const (
	DefaultZoom    = 4
	DefaultMinZoom = 4
	DefaultFlyZoom = 15
)

var (
	DefaultCenter    = tour.Coordinate{Latitude: 35, Longitude: -100}
	DefaultSouthWest = tour.Coordinate{Latitude: 24.396308, Longitude: -125.0}
	DefaultNorthEast = tour.Coordinate{Latitude: 49.384358, Longitude: -66.93457}
)

// Options configure every Controller of a service.
type Options struct {
	Thresholds  Thresholds
	FlyZoom     int // zoom of the fly control
	InitialZoom int
	MinZoom     int
}

// DefaultOptions returns the defaults of the viewer page.
func DefaultOptions() Options {
	return Options{
		Thresholds:  DefaultThresholds(),
		FlyZoom:     DefaultFlyZoom,
		InitialZoom: DefaultZoom,
		MinZoom:     DefaultMinZoom,
	}
}

// Bounds is the panning limit of the map.
type Bounds struct {
	SouthWest tour.Coordinate `json:"south_west"`
	NorthEast tour.Coordinate `json:"north_east"`
}

// MapSettings is what the map surface needs before the first event.
type MapSettings struct {
	Center     tour.Coordinate `json:"center"`
	Zoom       int             `json:"zoom"`
	MinZoom    int             `json:"min_zoom"`
	MaxBounds  Bounds          `json:"max_bounds"`
	FlyZoom    int             `json:"fly_zoom"`
	Thresholds Thresholds      `json:"thresholds"`
}

// Settings returns the map settings matching o.
func (o Options) Settings() MapSettings {
	return MapSettings{
		Center:     DefaultCenter,
		Zoom:       o.InitialZoom,
		MinZoom:    o.MinZoom,
		MaxBounds:  Bounds{SouthWest: DefaultSouthWest, NorthEast: DefaultNorthEast},
		FlyZoom:    o.FlyZoom,
		Thresholds: o.Thresholds,
	}
}
