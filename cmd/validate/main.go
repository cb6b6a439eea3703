// Command validate checks a photo dataset and route order before they are
// served. It prints one line per location and exits non-zero when the data
// cannot be rendered.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"roadtrip-viewer/internal/location"
	"roadtrip-viewer/internal/photo"
	"roadtrip-viewer/internal/platform/config"
	"roadtrip-viewer/internal/platform/logger"
	"roadtrip-viewer/internal/tour"
)

func main() {
	_ = config.Load()
	cfg := config.FromEnv()

	dataset := flag.String("dataset", cfg.DatasetPath, "photo dataset (JSON array)")
	route := flag.String("route", cfg.RouteOrderPath, "route order file (YAML); empty for first-encounter order")
	strict := flag.Bool("strict", cfg.StrictRoute, "fail when photos carry labels missing from the route order")
	flag.Parse()

	log := logger.NewWithWriter(os.Stderr, cfg.LogLevel, "text")

	records, err := photo.LoadFile(*dataset)
	if err != nil {
		log.Error("invalid dataset", "error", err)
		os.Exit(1)
	}

	order, err := location.LoadRouteOrder(*route)
	if err != nil {
		log.Error("invalid route order", "error", err)
		os.Exit(1)
	}

	t, err := tour.New(records, order)
	if err != nil {
		var empty *location.EmptyLocationGroupError
		if errors.As(err, &empty) {
			log.Error("routed location has no photos", "location", empty.Label)
		} else {
			log.Error("build tour", "error", err)
		}
		os.Exit(1)
	}

	for _, v := range t.Locations() {
		heading := "-"
		if v.Heading != nil {
			heading = fmt.Sprintf("%.3f", *v.Heading)
		}
		fmt.Printf("%3d  %-30s %3d photos  %-13s heading %s\n", v.Index, v.DisplayName, v.PhotoCount, v.Timestamp, heading)
	}

	if len(order) == 0 {
		return
	}
	unrouted := location.UnroutedLabels(records, order)
	for _, label := range unrouted {
		log.Warn("location missing from route order", "location", label)
	}
	if *strict && len(unrouted) > 0 {
		os.Exit(1)
	}
}
