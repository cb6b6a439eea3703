package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roadtrip-viewer/internal/location"
	"roadtrip-viewer/internal/photo"
	"roadtrip-viewer/internal/platform/config"
	"roadtrip-viewer/internal/platform/logger"
	"roadtrip-viewer/internal/platform/metrics"
	"roadtrip-viewer/internal/tour"
	"roadtrip-viewer/internal/viewsync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = config.Load()
	cfg := config.FromEnv()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	t, err := loadTour(cfg, log)
	if err != nil {
		log.Error("load tour", "error", err)
		os.Exit(1)
	}

	opts := viewsync.Options{
		Thresholds: viewsync.Thresholds{
			RouteLineMaxZoom:   cfg.RouteLineMaxZoom,
			HeadingMinZoom:     cfg.HeadingMinZoom,
			PhotoMarkerMinZoom: cfg.PhotoMarkerMinZoom,
		},
		FlyZoom:     cfg.FlyZoom,
		InitialZoom: viewsync.DefaultZoom,
	}
	for _, w := range opts.Thresholds.Warnings() {
		log.Warn("zoom thresholds", "warning", w)
	}

	repo := viewsync.NewInMemoryRepository()
	svc := viewsync.NewService(repo, t, opts, log)
	met := metrics.New()
	sessions := viewsync.NewHandler(svc, log, met)
	reads := tour.NewHandler(t, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(logger.RequestLogger(log))
	r.Use(metrics.RequestMiddleware(met))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		met.Handler(func() { met.SetActiveSessions(repo.ActiveSessionCount()) }).ServeHTTP(w, r)
	})
	reads.Routes(r)
	sessions.Routes(r)

	addr := ":" + cfg.Port
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("server starting",
		"port", cfg.Port,
		"locations", t.Len(),
		"photos", len(t.Photos()),
		"route_line_max_zoom", opts.Thresholds.RouteLineMaxZoom,
		"heading_min_zoom", opts.Thresholds.HeadingMinZoom,
		"photo_marker_min_zoom", opts.Thresholds.PhotoMarkerMinZoom,
		"log_level", cfg.LogLevel,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, draining connections")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

// loadTour reads the dataset and optional route order and builds the read
// model. Unrouted labels are dropped with a warning, or rejected when
// cfg.StrictRoute is set.
func loadTour(cfg config.Config, log *slog.Logger) (*tour.Tour, error) {
	records, err := photo.LoadFile(cfg.DatasetPath)
	if err != nil {
		return nil, err
	}

	order, err := location.LoadRouteOrder(cfg.RouteOrderPath)
	if err != nil {
		return nil, err
	}

	if len(order) > 0 {
		if unrouted := location.UnroutedLabels(records, order); len(unrouted) > 0 {
			if cfg.StrictRoute {
				return nil, fmt.Errorf("%d locations missing from route order: %v", len(unrouted), unrouted)
			}
			log.Warn("photos with unrouted locations are hidden", "locations", unrouted)
		}
	}

	return tour.New(records, order)
}
