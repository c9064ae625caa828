package models

import (
	"time"
)

// ReelResult is the resolved outcome for a single reel within a spin
type ReelResult struct {
	// Reel is the zero-based reel index
	Reel int

	// Position is the winning item's display offset
	Position int

	// Symbol is the winning item's display label
	Symbol string

	// StopDelay is how long after dispatch the reel stops
	StopDelay time.Duration
}

// Spin represents one resolved play across all reels
type Spin struct {
	// ID is the unique identifier for the spin
	ID string

	// Results holds one entry per reel, in reel order
	Results []ReelResult

	// CreatedAt is when the spin was dispatched
	CreatedAt time.Time
}
