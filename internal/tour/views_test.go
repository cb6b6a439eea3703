package tour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocations(t *testing.T) {
	tr := newTestTour(t)

	views := tr.Locations()
	require.Len(t, views, 3)

	nash := views[0]
	assert.Equal(t, "Nashville", nash.Name)
	assert.Equal(t, "Nashville", nash.DisplayName)
	assert.Equal(t, 2, nash.PhotoCount)
	assert.InDelta(t, 36.17, nash.Latitude, 1e-9)
	assert.Equal(t, "May 10, 2023", nash.Timestamp)
	require.NotNil(t, nash.Heading)

	assert.Equal(t, "Mammoth Cave", views[1].DisplayName)
}

func TestLocations_single_cluster_has_no_heading(t *testing.T) {
	tr, err := New(testRecords()[:2], nil)
	require.NoError(t, err)

	views := tr.Locations()
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Heading)
}

func TestGallery(t *testing.T) {
	tr := newTestTour(t)

	view, ok := tr.Gallery("Nashville", LayoutFor(1200, 800))
	require.True(t, ok)

	assert.Equal(t, "Nashville", view.Location)
	assert.Equal(t, 200, view.Layout.RowHeight)
	require.Len(t, view.Thumbnails, 2)
	require.Len(t, view.Slides, 2)

	th := view.Thumbnails[1]
	assert.Equal(t, "nash-2", th.PhotoID)
	assert.Equal(t, 1, th.Index)
	assert.Equal(t, testRoot+"w_200,q_80/nash-2.jpg", th.Src)
	assert.Equal(t, 100.0, th.Width)
	assert.Equal(t, 75.0, th.Height)
	assert.Equal(t, Coordinate{Latitude: 36.18, Longitude: -86.76}, th.FlyTarget)

	assert.Equal(t, Slide{Src: testRoot + "nash-2.jpg", Caption: "photo nash-2"}, view.Slides[1])
}

func TestGallery_unknown_location(t *testing.T) {
	tr := newTestTour(t)
	_, ok := tr.Gallery("Nowhere", DefaultLayout())
	assert.False(t, ok)
	assert.Nil(t, tr.Slides(42))
}
