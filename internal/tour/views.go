package tour

import (
	"roadtrip-viewer/internal/photo"
)

// LocationView is one entry of the gallery list.
type LocationView struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Index       int      `json:"index"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Timestamp   string   `json:"timestamp"`
	PhotoCount  int      `json:"photo_count"`
	Heading     *float64 `json:"heading,omitempty"` // radians; absent when the route has no direction
}

// Coordinate is a plain lat/lon pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Thumbnail is one tile of a location's thumbnail grid. FlyTarget is where
// the tile's fly control sends the map.
type Thumbnail struct {
	PhotoID   string     `json:"photo_id"`
	Index     int        `json:"index"`
	Src       string     `json:"src"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	FlyTarget Coordinate `json:"fly_target"`
}

// Slide is one entry of the slide viewer's sequence for a location.
type Slide struct {
	Src     string `json:"src"`
	Caption string `json:"caption"`
}

// GalleryView is everything the gallery panel needs to render one location.
type GalleryView struct {
	Location    string      `json:"location"`
	DisplayName string      `json:"display_name"`
	Timestamp   string      `json:"timestamp"`
	Layout      Layout      `json:"layout"`
	Thumbnails  []Thumbnail `json:"thumbnails"`
	Slides      []Slide     `json:"slides"`
}

// Locations lists every cluster with its heading.
func (t *Tour) Locations() []LocationView {
	out := make([]LocationView, 0, len(t.clusters))
	for i, c := range t.clusters {
		v := LocationView{
			Name:        c.Name,
			DisplayName: c.DisplayName(),
			Index:       c.Index,
			Latitude:    c.Latitude,
			Longitude:   c.Longitude,
			Timestamp:   c.Timestamp,
			PhotoCount:  len(c.Photos),
		}
		if h, ok := t.Heading(i); ok {
			v.Heading = &h
		}
		out = append(out, v)
	}
	return out
}

// Gallery builds the thumbnail grid and slide sequence of a location.
func (t *Tour) Gallery(name string, layout Layout) (GalleryView, bool) {
	ci, ok := t.ClusterIndex(name)
	if !ok {
		return GalleryView{}, false
	}
	c := t.clusters[ci]

	thumbs := make([]Thumbnail, 0, len(c.Photos))
	for i, p := range c.Photos {
		w, h := photo.ThumbnailSize(p)
		thumbs = append(thumbs, Thumbnail{
			PhotoID:   p.ID,
			Index:     i,
			Src:       photo.ThumbnailURL(p),
			Width:     w,
			Height:    h,
			FlyTarget: Coordinate{Latitude: p.Latitude, Longitude: p.Longitude},
		})
	}

	return GalleryView{
		Location:    c.Name,
		DisplayName: c.DisplayName(),
		Timestamp:   c.Timestamp,
		Layout:      layout,
		Thumbnails:  thumbs,
		Slides:      t.Slides(ci),
	}, true
}

// Slides returns the slide viewer sequence of cluster i.
func (t *Tour) Slides(i int) []Slide {
	c, ok := t.Cluster(i)
	if !ok {
		return nil
	}
	slides := make([]Slide, 0, len(c.Photos))
	for _, p := range c.Photos {
		slides = append(slides, Slide{Src: photo.SlideURL(p), Caption: p.Description})
	}
	return slides
}
