package spin

import "context"

// Service defines the interface for spin operations
type Service interface {
	// Play resolves and dispatches one spin across all reels; a call
	// made while a spin is in flight is dropped, not queued
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)

	// Close cancels any outstanding stop timers and releases the
	// dispatch gate
	Close()
}
