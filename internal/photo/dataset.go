package photo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrMissingID is returned when a record has an empty id.
	ErrMissingID = errors.New("photo id is empty")

	// ErrDuplicateID is returned when two records share an id.
	ErrDuplicateID = errors.New("duplicate photo id")

	// ErrMissingLocation is returned when a record has an empty location label.
	ErrMissingLocation = errors.New("photo location is empty")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("photo dimensions must be positive")

	// ErrInvalidCoordinates is returned when latitude or longitude is out of range.
	ErrInvalidCoordinates = errors.New("photo coordinates out of range")
)

// LoadFile reads and validates the dataset at path.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return records, nil
}

// Decode parses a JSON array of records and validates every entry.
// The returned slice keeps the input order.
func Decode(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode photo records: %w", err)
	}
	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// Validate checks the fields the core relies on. Timestamps are not parsed
// here; a malformed timestamp only affects display.
func Validate(records []Record) error {
	seen := make(map[string]struct{}, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			return fmt.Errorf("record %d: %w", i, ErrMissingID)
		}
		if _, dup := seen[rec.ID]; dup {
			return fmt.Errorf("record %d (%s): %w", i, rec.ID, ErrDuplicateID)
		}
		seen[rec.ID] = struct{}{}

		if rec.Location == "" {
			return fmt.Errorf("record %d (%s): %w", i, rec.ID, ErrMissingLocation)
		}
		if rec.Width <= 0 || rec.Height <= 0 {
			return fmt.Errorf("record %d (%s): %w", i, rec.ID, ErrInvalidDimensions)
		}
		if rec.Latitude < -90 || rec.Latitude > 90 || rec.Longitude < -180 || rec.Longitude > 180 {
			return fmt.Errorf("record %d (%s): %w", i, rec.ID, ErrInvalidCoordinates)
		}
	}
	return nil
}
