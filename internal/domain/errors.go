package domain

import "errors"

// Season tracker errors
var (
	ErrSeasonNotFound    = errors.New("season not found in history")
	ErrNoCurrentSeason   = errors.New("no current season found")
	ErrTrackerUnreadable = errors.New("unable to load season tracking data")
)

// Content errors
var (
	ErrPostNotFound = errors.New("post not found")
)
