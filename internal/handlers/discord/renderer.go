package discord

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/reelcraft/spindle/internal/models"
	"github.com/reelcraft/spindle/internal/renderer"
)

const spinningFrame = "🎰"

// stripState tracks one reel's display state for the machine message
type stripState struct {
	config  renderer.StripConfig
	state   models.ReelState
	resting int
}

// Renderer implements the renderer interface by keeping a single
// machine message edited in a Discord channel
type Renderer struct {
	session   *discordgo.Session
	channelID string

	mu        sync.Mutex
	messageID string
	strips    []*stripState
}

// NewRenderer creates a renderer that draws the machine into channelID
func NewRenderer(session *discordgo.Session, channelID string) (*Renderer, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if channelID == "" {
		return nil, errors.New("channel ID cannot be empty")
	}

	return &Renderer{
		session:   session,
		channelID: channelID,
	}, nil
}

// CreateStrip registers one reel strip resting at startPosition. The
// machine message itself is posted lazily on the first state change.
func (r *Renderer) CreateStrip(cfg renderer.StripConfig, startPosition int) (renderer.Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.strips = append(r.strips, &stripState{
		config:  cfg,
		state:   models.ReelStateIdle,
		resting: startPosition,
	})

	return len(r.strips) - 1, nil
}

// SetSpinState marks the reel as spinning and redraws the machine
func (r *Renderer) SetSpinState(h renderer.Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	strip, err := r.strip(h)
	if err != nil {
		return err
	}

	strip.state = models.ReelStateSpinning
	return r.redraw()
}

// SetStopState settles the reel and redraws the machine
func (r *Renderer) SetStopState(h renderer.Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	strip, err := r.strip(h)
	if err != nil {
		return err
	}

	strip.state = models.ReelStateStopped
	return r.redraw()
}

// SetSegmentOffset records the resting position implied by the first
// segment's offset; Discord has no per-segment pixels to move
func (r *Renderer) SetSegmentOffset(h renderer.Handle, segment int, offsetPixels int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	strip, err := r.strip(h)
	if err != nil {
		return err
	}

	if segment == 0 {
		strip.resting = -offsetPixels
	}
	return nil
}

// strip resolves a handle; callers must hold the lock
func (r *Renderer) strip(h renderer.Handle) (*stripState, error) {
	index, ok := h.(int)
	if !ok || index < 0 || index >= len(r.strips) {
		return nil, renderer.ErrUnknownHandle
	}
	return r.strips[index], nil
}

// redraw posts or edits the machine message; callers must hold the lock
func (r *Renderer) redraw() error {
	frames := make([]string, 0, len(r.strips))
	for _, strip := range r.strips {
		frames = append(frames, r.frame(strip))
	}

	content := "▕ " + strings.Join(frames, " ┃ ") + " ▏"

	if r.messageID == "" {
		msg, err := r.session.ChannelMessageSend(r.channelID, content)
		if err != nil {
			return fmt.Errorf("failed to post machine message: %w", err)
		}
		r.messageID = msg.ID
		return nil
	}

	if _, err := r.session.ChannelMessageEdit(r.channelID, r.messageID, content); err != nil {
		return fmt.Errorf("failed to edit machine message: %w", err)
	}
	return nil
}

// frame picks the display symbol for one reel
func (r *Renderer) frame(strip *stripState) string {
	if strip.state.IsSpinning() {
		return spinningFrame
	}

	for i, position := range strip.config.Positions {
		if position == strip.resting && i < len(strip.config.Symbols) {
			if strip.config.Symbols[i] != "" {
				return strip.config.Symbols[i]
			}
			break
		}
	}

	return fmt.Sprintf("pos %d", strip.resting)
}
