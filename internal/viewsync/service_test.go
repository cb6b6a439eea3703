package viewsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewInMemoryRepository(), testTour(t), Options{}, testLogger())
}

func TestNewService_default_options(t *testing.T) {
	svc := newTestService(t)

	settings := svc.MapSettings()
	assert.Equal(t, DefaultThresholds(), settings.Thresholds)
	assert.Equal(t, DefaultFlyZoom, settings.FlyZoom)
	assert.Equal(t, DefaultZoom, settings.Zoom)
	assert.Equal(t, DefaultMinZoom, settings.MinZoom)
	assert.Equal(t, DefaultCenter, settings.Center)
	assert.Equal(t, Bounds{SouthWest: DefaultSouthWest, NorthEast: DefaultNorthEast}, settings.MaxBounds)
}

func TestService_CreateSession(t *testing.T) {
	svc := newTestService(t)

	id, state, cmds, err := svc.CreateSession()
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Len(t, state.Selection, 3)
	assert.Equal(t, []CommandType{CommandSetLayers, CommandSetLayout}, commandTypes(cmds))

	other, _, _, err := svc.CreateSession()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestService_CreateSession_id_collision(t *testing.T) {
	svc := newTestService(t)
	svc.newID = func() SessionID { return "fixed" }

	_, _, _, err := svc.CreateSession()
	require.NoError(t, err)
	_, _, _, err = svc.CreateSession()
	assert.ErrorIs(t, err, ErrSessionExists)
}

func TestService_Dispatch(t *testing.T) {
	svc := newTestService(t)
	id, _, _, err := svc.CreateSession()
	require.NoError(t, err)

	cmds, state, err := svc.Dispatch(id, []Event{
		{Type: EventThumbnailClicked, Location: "Philly", Index: 0},
		{Type: EventZoomSettled, Zoom: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, []CommandType{CommandOpenViewer, CommandSetLayers}, commandTypes(cmds))
	assert.Equal(t, "Philly", state.ActiveLocation)
	assert.Equal(t, 10, state.Viewport.Zoom)

	snap, err := svc.Snapshot(id)
	require.NoError(t, err)
	assert.Equal(t, state, snap)
}

func TestService_Dispatch_rejects_whole_batch(t *testing.T) {
	svc := newTestService(t)
	id, before, _, err := svc.CreateSession()
	require.NoError(t, err)

	tests := []struct {
		name   string
		events []Event
		want   error
	}{
		{"index out of range", []Event{{Type: EventThumbnailClicked, Location: "Philly", Index: 1}}, ErrInvalidEvent},
		{"negative index", []Event{{Type: EventThumbnailClicked, Location: "Philly", Index: -1}}, ErrInvalidEvent},
		{"unknown location", []Event{{Type: EventRouteMarkerClicked, Location: "Boston"}}, ErrInvalidEvent},
		{"unknown photo", []Event{{Type: EventFlyRequested, PhotoID: "missing"}}, ErrInvalidEvent},
		{"unknown type", []Event{{Type: "pinch"}}, ErrUnknownEvent},
		{"drag without zoom", []Event{{Type: EventDragStarted}}, ErrInvalidEvent},
		{"negative zoom", []Event{{Type: EventZoomSettled, Zoom: -3}}, ErrInvalidEvent},
		{"zoom below minimum", []Event{{Type: EventZoomSettled, Zoom: DefaultMinZoom - 1}}, ErrInvalidEvent},
		{"valid then invalid", []Event{
			{Type: EventZoomSettled, Zoom: 12},
			{Type: EventPhotoMarkerClicked, PhotoID: "missing"},
		}, ErrInvalidEvent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Dispatch(id, tt.events)
			assert.ErrorIs(t, err, tt.want)

			after, err := svc.Snapshot(id)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestService_Dispatch_drag_without_zoom_keeps_viewport(t *testing.T) {
	svc := newTestService(t)
	id, _, _, err := svc.CreateSession()
	require.NoError(t, err)

	_, before, err := svc.Dispatch(id, []Event{{Type: EventZoomSettled, Zoom: 12}})
	require.NoError(t, err)
	require.Equal(t, ModeClusteredPhotos, before.Layers.Mode)

	_, _, err = svc.Dispatch(id, []Event{{Type: EventDragStarted}})
	assert.ErrorIs(t, err, ErrInvalidEvent)

	after, err := svc.Snapshot(id)
	require.NoError(t, err)
	assert.Equal(t, 12, after.Viewport.Zoom)
	assert.Equal(t, before.Layers, after.Layers)
}

func TestService_EndSession(t *testing.T) {
	svc := newTestService(t)
	id, _, _, err := svc.CreateSession()
	require.NoError(t, err)

	require.NoError(t, svc.EndSession(id))

	_, err = svc.Snapshot(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, _, err = svc.Dispatch(id, []Event{{Type: EventDocumentClicked}})
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, svc.EndSession(id), ErrSessionNotFound)
}
