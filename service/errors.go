package services

import "errors"

var (
	// ErrHotspotNotFound is returned when a hotspot name is not in the catalog.
	ErrHotspotNotFound = errors.New("hotspot not found")
	// ErrInvalidArgument marks caller input the service rejects.
	ErrInvalidArgument = errors.New("invalid argument")
)
