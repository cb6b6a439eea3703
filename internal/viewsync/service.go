package viewsync

import (
	"errors"
	"fmt"
	"log/slog"

	"roadtrip-viewer/internal/tour"

	"github.com/google/uuid"
)

// ErrInvalidEvent is returned when an event refers to a location, photo or
// photo index the tour does not have, or reports a zoom the map cannot reach.
var ErrInvalidEvent = errors.New("invalid event")

// Service creates viewer sessions and feeds them events. It validates events
// against the tour before they reach a Controller.
type Service struct {
	repo  Repository
	tour  *tour.Tour
	opts  Options
	log   *slog.Logger
	newID func() SessionID
}

// NewService returns a Service storing sessions in repo. Zero option fields
// fall back to DefaultOptions.
func NewService(repo Repository, t *tour.Tour, opts Options, log *slog.Logger) *Service {
	def := DefaultOptions()
	if opts.Thresholds == (Thresholds{}) {
		opts.Thresholds = def.Thresholds
	}
	if opts.FlyZoom <= 0 {
		opts.FlyZoom = def.FlyZoom
	}
	if opts.InitialZoom <= 0 {
		opts.InitialZoom = def.InitialZoom
	}
	if opts.MinZoom <= 0 {
		opts.MinZoom = def.MinZoom
	}
	return &Service{
		repo: repo,
		tour: t,
		opts: opts,
		log:  log,
		newID: func() SessionID {
			return SessionID(uuid.NewString())
		},
	}
}

// MapSettings returns the settings every session's map starts from.
func (s *Service) MapSettings() MapSettings {
	return s.opts.Settings()
}

// CreateSession starts a session and returns its initial state and the
// commands that set up the map layers and layout.
func (s *Service) CreateSession() (SessionID, State, []Command, error) {
	ctrl := NewController(s.tour, s.opts, s.log)
	sess := &Session{ID: s.newID(), Controller: ctrl}
	if err := s.repo.CreateSession(sess); err != nil {
		return "", State{}, nil, fmt.Errorf("create session: %w", err)
	}
	return sess.ID, ctrl.Snapshot(), ctrl.Start(), nil
}

// Dispatch applies events to the session in order and returns the commands
// they produced plus the resulting state. The batch is validated first; an
// invalid event rejects the whole batch.
func (s *Service) Dispatch(id SessionID, events []Event) ([]Command, State, error) {
	var (
		cmds  []Command
		state State
	)
	err := s.repo.Update(id, func(c *Controller) error {
		for i, ev := range events {
			if !c.Handles(ev.Type) {
				return fmt.Errorf("event %d: %w: %q", i, ErrUnknownEvent, ev.Type)
			}
			if err := s.validate(ev); err != nil {
				return fmt.Errorf("event %d: %w", i, err)
			}
		}
		for _, ev := range events {
			out, err := c.Handle(ev)
			if err != nil {
				return err
			}
			cmds = append(cmds, out...)
		}
		state = c.Snapshot()
		return nil
	})
	if err != nil {
		return nil, State{}, err
	}
	return cmds, state, nil
}

// Snapshot returns the session's current state.
func (s *Service) Snapshot(id SessionID) (State, error) {
	var state State
	err := s.repo.View(id, func(c *Controller) {
		state = c.Snapshot()
	})
	return state, err
}

// EndSession deletes the session.
func (s *Service) EndSession(id SessionID) error {
	return s.repo.DeleteSession(id)
}

// validate checks the ids and zoom an event carries. A thumbnail click
// without an index decodes to NoSelection and fails the range check.
func (s *Service) validate(ev Event) error {
	switch ev.Type {
	case EventThumbnailClicked:
		ci, ok := s.tour.ClusterIndex(ev.Location)
		if !ok {
			return fmt.Errorf("%w: unknown location %q", ErrInvalidEvent, ev.Location)
		}
		if n := s.tour.PhotoCount(ci); ev.Index < 0 || ev.Index >= n {
			return fmt.Errorf("%w: index %d out of range [0,%d) for %q", ErrInvalidEvent, ev.Index, n, ev.Location)
		}
	case EventRouteMarkerClicked, EventMarkerHoverStarted, EventMarkerHoverEnded, EventScrollTargetRegistered:
		if _, ok := s.tour.ClusterIndex(ev.Location); !ok {
			return fmt.Errorf("%w: unknown location %q", ErrInvalidEvent, ev.Location)
		}
	case EventFlyRequested, EventPhotoMarkerClicked:
		if _, _, ok := s.tour.Photo(ev.PhotoID); !ok {
			return fmt.Errorf("%w: unknown photo %q", ErrInvalidEvent, ev.PhotoID)
		}
	case EventDragStarted, EventZoomSettled:
		if ev.Zoom < s.opts.MinZoom {
			return fmt.Errorf("%w: zoom %d below minimum %d", ErrInvalidEvent, ev.Zoom, s.opts.MinZoom)
		}
	}
	return nil
}
