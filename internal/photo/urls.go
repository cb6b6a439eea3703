package photo

// Transformations understood by the image host. They are inserted between
// the root URL and the file name and must not be changed here.
const (
	TransformThumbnail      = "w_200,q_80/"
	TransformMarker         = "w_40,h_40,c_fill,q_80/"
	TransformMarkerEnlarged = "w_200,c_fill,q_80/"
)

// ThumbnailDisplayWidth is the nominal width handed to the thumbnail grid;
// the grid scales rows itself.
const ThumbnailDisplayWidth = 100

// ImageURL builds <root><transform><id>.jpg.
func ImageURL(rec Record, transform string) string {
	return rec.RootURL + transform + rec.ID + ".jpg"
}

// ThumbnailURL is the gallery thumbnail source.
func ThumbnailURL(rec Record) string {
	return ImageURL(rec, TransformThumbnail)
}

// SlideURL is the full-size image shown by the slide viewer.
func SlideURL(rec Record) string {
	return ImageURL(rec, "")
}

// MarkerIconURL returns the photo marker icon, enlarged or not.
func MarkerIconURL(rec Record, enlarged bool) string {
	if enlarged {
		return ImageURL(rec, TransformMarkerEnlarged)
	}
	return ImageURL(rec, TransformMarker)
}

// ThumbnailSize keeps the photo's aspect ratio at ThumbnailDisplayWidth.
func ThumbnailSize(rec Record) (width, height float64) {
	if rec.Width <= 0 {
		return ThumbnailDisplayWidth, ThumbnailDisplayWidth
	}
	return ThumbnailDisplayWidth, ThumbnailDisplayWidth * float64(rec.Height) / float64(rec.Width)
}
