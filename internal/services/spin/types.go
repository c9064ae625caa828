package spin

import (
	"time"

	"github.com/reelcraft/spindle/internal/common/clock"
	"github.com/reelcraft/spindle/internal/common/timer"
	"github.com/reelcraft/spindle/internal/common/uuid"
	"github.com/reelcraft/spindle/internal/models"
	"github.com/reelcraft/spindle/internal/random"
	"github.com/reelcraft/spindle/internal/renderer"
	"github.com/reelcraft/spindle/internal/repositories/spin_history"
)

// Config holds the configuration for the spin service
type Config struct {
	// ReelHeight is the strip height in pixels
	ReelHeight int

	// ReelWidth is the strip width in pixels
	ReelWidth int

	// SegmentCount is how many repeated tiles make up each strip
	SegmentCount int

	// StopDelayUnit is the length of one stop-delay time unit
	StopDelayUnit time.Duration

	// Reels describes the machine's strips; at least one is required
	Reels []models.ReelConfig

	// Renderer receives every display update; required
	Renderer renderer.Renderer

	// Source drives selection and stop timing; defaults to a
	// uniform generator
	Source random.Source

	// Clock for spin timestamps
	Clock clock.Clock

	// Scheduler for stop timers
	Scheduler timer.Scheduler

	// UUID for spin IDs
	UUID uuid.UUID

	// HistoryRepo is optional; when nil, spins are not recorded
	HistoryRepo spin_history.Repository
}

type PlayInput struct {
}

type PlayOutput struct {
	// Dispatched is false when the call was dropped because a spin
	// was already in flight
	Dispatched bool

	// SpinID identifies the recorded spin
	SpinID string

	// Results holds the winning item and stop delay per reel
	Results []models.ReelResult
}
