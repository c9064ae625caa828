package spin

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/reelcraft/spindle/internal/common/clock"
	"github.com/reelcraft/spindle/internal/common/timer"
	"github.com/reelcraft/spindle/internal/common/uuid"
	"github.com/reelcraft/spindle/internal/machine"
	"github.com/reelcraft/spindle/internal/models"
	"github.com/reelcraft/spindle/internal/random"
	"github.com/reelcraft/spindle/internal/renderer"
	"github.com/reelcraft/spindle/internal/repositories/spin_history"
)

const (
	defaultReelHeight   = 1320
	defaultReelWidth    = 200
	defaultSegmentCount = 8

	// Stop delays are whole units in [min, max); 1, 2 or 3
	minStopDelayUnits = 1
	maxStopDelayUnits = 4
)

// service implements the Service interface
type service struct {
	config        *Config
	renderer      renderer.Renderer
	source        random.Source
	clock         clock.Clock
	scheduler     timer.Scheduler
	uuider        uuid.UUID
	historyRepo   spin_history.Repository
	handles       []renderer.Handle
	segmentHeight int

	// Guards the dispatch gate and outstanding stop timers
	mu           sync.Mutex
	animating    bool
	pendingStops int
	stopTimers   []timer.Timer
}

// New creates a new spin service and attaches one strip per reel
// through the renderer
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if len(cfg.Reels) == 0 {
		return nil, ErrNoReels
	}

	if cfg.Renderer == nil {
		return nil, ErrNilRenderer
	}

	// Set default values if not provided
	if cfg.ReelHeight == 0 {
		cfg.ReelHeight = defaultReelHeight
	}
	if cfg.ReelWidth == 0 {
		cfg.ReelWidth = defaultReelWidth
	}
	if cfg.SegmentCount == 0 {
		cfg.SegmentCount = defaultSegmentCount
	}
	if cfg.StopDelayUnit == 0 {
		cfg.StopDelayUnit = time.Second
	}
	if cfg.Source == nil {
		cfg.Source = random.New(nil)
	}
	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = &timer.DefaultScheduler{}
	}
	if cfg.UUID == nil {
		cfg.UUID = uuid.New()
	}

	// Fail fast on strips that can never be sampled
	for i, reel := range cfg.Reels {
		if err := machine.ValidateItems(reel.Items); err != nil {
			return nil, fmt.Errorf("reel %d: %w", i, err)
		}
	}

	s := &service{
		config:        cfg,
		renderer:      cfg.Renderer,
		source:        cfg.Source,
		clock:         cfg.Clock,
		scheduler:     cfg.Scheduler,
		uuider:        cfg.UUID,
		historyRepo:   cfg.HistoryRepo,
		segmentHeight: cfg.ReelHeight / cfg.SegmentCount,
	}

	for _, reel := range cfg.Reels {
		symbols := make([]string, 0, len(reel.Items))
		positions := make([]int, 0, len(reel.Items))
		for _, item := range reel.Items {
			symbols = append(symbols, item.Symbol)
			positions = append(positions, item.Position)
		}

		handle, err := s.renderer.CreateStrip(renderer.StripConfig{
			ImageURL:     reel.ImageURL,
			Width:        cfg.ReelWidth,
			Height:       cfg.ReelHeight,
			SegmentCount: cfg.SegmentCount,
			Symbols:      symbols,
			Positions:    positions,
		}, reel.Items[0].Position)
		if err != nil {
			return nil, fmt.Errorf("failed to create strip: %w", err)
		}

		s.handles = append(s.handles, handle)
	}

	return s, nil
}

// Play resolves and dispatches one spin across all reels
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	// Dispatch gate: one spin in flight across the whole machine
	s.mu.Lock()
	if s.animating {
		s.mu.Unlock()
		return &PlayOutput{Dispatched: false}, nil
	}
	s.animating = true
	s.mu.Unlock()

	output, err := s.play(ctx)
	if err != nil {
		// A failed dispatch releases the gate
		s.cancelPending()
		s.mu.Lock()
		s.animating = false
		s.mu.Unlock()
		return nil, err
	}

	return output, nil
}

// Close cancels outstanding stop timers and releases the dispatch gate
func (s *service) Close() {
	s.cancelPending()

	s.mu.Lock()
	s.animating = false
	s.mu.Unlock()
}

func (s *service) play(ctx context.Context) (*PlayOutput, error) {
	// Resolve every reel up front so a bad strip fails the play
	// before any animation starts
	results := make([]models.ReelResult, 0, len(s.config.Reels))
	for i, reel := range s.config.Reels {
		item, err := machine.SelectWeighted(reel.Items, s.source)
		if err != nil {
			return nil, fmt.Errorf("reel %d: %w", i, err)
		}

		units := int(s.source.Float64()*float64(maxStopDelayUnits-minStopDelayUnits)) + minStopDelayUnits

		results = append(results, models.ReelResult{
			Reel:      i,
			Position:  item.Position,
			Symbol:    item.Symbol,
			StopDelay: time.Duration(units) * s.config.StopDelayUnit,
		})
	}

	spin := &models.Spin{
		ID:        s.uuider.NewUUID(),
		Results:   results,
		CreatedAt: s.clock.Now(),
	}

	if s.historyRepo != nil {
		err := s.historyRepo.SaveSpin(ctx, &spin_history.SaveSpinInput{
			Spin: spin,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to save spin: %w", err)
		}
	}

	s.mu.Lock()
	s.pendingStops = len(results)
	s.stopTimers = nil
	s.mu.Unlock()

	for i, result := range results {
		handle := s.handles[i]

		if err := s.renderer.SetSpinState(handle); err != nil {
			return nil, fmt.Errorf("reel %d: %w", i, err)
		}

		// Pre-position every segment so the final resting frame
		// shows the winning item
		for segment := 0; segment < s.config.SegmentCount; segment++ {
			offset := segment*s.segmentHeight - result.Position
			if err := s.renderer.SetSegmentOffset(handle, segment, offset); err != nil {
				return nil, fmt.Errorf("reel %d segment %d: %w", i, segment, err)
			}
		}

		t := s.scheduler.Schedule(result.StopDelay, func() {
			s.stopReel(handle)
		})

		s.mu.Lock()
		s.stopTimers = append(s.stopTimers, t)
		s.mu.Unlock()
	}

	return &PlayOutput{
		Dispatched: true,
		SpinID:     spin.ID,
		Results:    results,
	}, nil
}

// stopReel runs on a timer goroutine when one reel's stop delay elapses
func (s *service) stopReel(handle renderer.Handle) {
	if err := s.renderer.SetStopState(handle); err != nil {
		log.Printf("failed to stop reel: %v", err)
	}

	// The gate clears only once the last reel has stopped
	s.mu.Lock()
	if s.pendingStops > 0 {
		s.pendingStops--
		if s.pendingStops == 0 {
			s.animating = false
			s.stopTimers = nil
		}
	}
	s.mu.Unlock()
}

func (s *service) cancelPending() {
	s.mu.Lock()
	timers := s.stopTimers
	s.stopTimers = nil
	s.pendingStops = 0
	s.mu.Unlock()

	for _, t := range timers {
		t.Stop()
	}
}
