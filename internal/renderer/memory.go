package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/reelcraft/spindle/internal/models"
)

// ErrUnknownHandle is returned when a handle does not belong to this renderer
var ErrUnknownHandle = errors.New("unknown strip handle")

// StripView is a snapshot of one strip's display state
type StripView struct {
	Config   StripConfig
	State    models.ReelState
	Position int
	Offsets  []int
}

// Memory implements the Renderer interface by tracking display state
// in process. It backs headless frontends and tests.
type Memory struct {
	mu     sync.Mutex
	strips []*StripView
}

// NewMemory creates a new in-memory renderer
func NewMemory() *Memory {
	return &Memory{}
}

// CreateStrip attaches a new strip resting at startPosition
func (m *Memory) CreateStrip(cfg StripConfig, startPosition int) (Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	segments := cfg.SegmentCount
	if segments < 1 {
		return nil, fmt.Errorf("strip needs at least one segment, got %d", segments)
	}

	m.strips = append(m.strips, &StripView{
		Config:   cfg,
		State:    models.ReelStateIdle,
		Position: startPosition,
		Offsets:  make([]int, segments),
	})

	return len(m.strips) - 1, nil
}

// SetSpinState marks the strip as spinning
func (m *Memory) SetSpinState(h Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	strip, err := m.strip(h)
	if err != nil {
		return err
	}

	strip.State = models.ReelStateSpinning
	return nil
}

// SetStopState settles the strip
func (m *Memory) SetStopState(h Handle) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	strip, err := m.strip(h)
	if err != nil {
		return err
	}

	strip.State = models.ReelStateStopped
	return nil
}

// SetSegmentOffset records the resting offset for one segment
func (m *Memory) SetSegmentOffset(h Handle, segment int, offsetPixels int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	strip, err := m.strip(h)
	if err != nil {
		return err
	}

	if segment < 0 || segment >= len(strip.Offsets) {
		return fmt.Errorf("segment %d out of range for %d-segment strip", segment, len(strip.Offsets))
	}

	strip.Offsets[segment] = offsetPixels
	return nil
}

// Strips returns a snapshot of every strip's display state
func (m *Memory) Strips() []StripView {
	m.mu.Lock()
	defer m.mu.Unlock()

	views := make([]StripView, 0, len(m.strips))
	for _, strip := range m.strips {
		view := *strip
		view.Offsets = append([]int(nil), strip.Offsets...)
		views = append(views, view)
	}
	return views
}

// strip resolves a handle; callers must hold the lock
func (m *Memory) strip(h Handle) (*StripView, error) {
	index, ok := h.(int)
	if !ok || index < 0 || index >= len(m.strips) {
		return nil, ErrUnknownHandle
	}
	return m.strips[index], nil
}
