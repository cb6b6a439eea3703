package tour

// Orientation of the split between the gallery list and the map.
type Orientation string

const (
	Landscape Orientation = "landscape" // gallery left, map right
	Portrait  Orientation = "portrait"  // map on top, gallery below
)

const (
	narrowViewportWidth = 768
	narrowRowHeight     = 100
	wideRowHeight       = 200
	rowHeightPerMargin  = 33.33333
)

// Layout is the viewport-dependent presentation of the two panes.
type Layout struct {
	Orientation Orientation `json:"orientation"`
	RowHeight   int         `json:"row_height"`
	Margin      float64     `json:"margin"`
}

// DefaultLayout is used before the host reports a viewport size.
func DefaultLayout() Layout {
	return layoutWithRowHeight(Landscape, wideRowHeight)
}

// LayoutFor derives the layout from a viewport size in CSS pixels.
// Non-positive sizes yield DefaultLayout.
func LayoutFor(width, height int) Layout {
	if width <= 0 || height <= 0 {
		return DefaultLayout()
	}

	orientation := Landscape
	if height > width {
		orientation = Portrait
	}

	rowHeight := wideRowHeight
	if width < narrowViewportWidth {
		rowHeight = narrowRowHeight
	}
	return layoutWithRowHeight(orientation, rowHeight)
}

func layoutWithRowHeight(o Orientation, rowHeight int) Layout {
	return Layout{
		Orientation: o,
		RowHeight:   rowHeight,
		Margin:      float64(rowHeight) / rowHeightPerMargin,
	}
}
