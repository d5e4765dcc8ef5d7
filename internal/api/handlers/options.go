package handlers

import "time"

// Options carries the cross-handler knobs pulled from config at wiring time.
type Options struct {
	CacheTTL time.Duration
	SiteURL  string
}

// Per-endpoint TTLs for the season tracker reads. These mirror how often
// each slice of the tracker document actually changes.
const (
	seasonTTL    = 5 * time.Minute
	rotationsTTL = 10 * time.Minute
	statsTTL     = 1 * time.Minute
	eventsTTL    = 30 * time.Minute
)
