package spin

import "errors"

// Define errors
var (
	ErrNilConfig   = errors.New("config cannot be nil")
	ErrNoReels     = errors.New("machine requires at least one reel")
	ErrNilRenderer = errors.New("renderer cannot be nil")
)
