package models

// ReelState represents the visual state of a single reel
type ReelState string

const (
	// ReelStateIdle indicates a reel that has never spun
	ReelStateIdle ReelState = "idle"

	// ReelStateSpinning indicates a reel that is currently animating
	ReelStateSpinning ReelState = "spinning"

	// ReelStateStopped indicates a reel that has settled on its winning item
	ReelStateStopped ReelState = "stopped"
)

// IsSpinning returns true if the reel is currently animating
func (s ReelState) IsSpinning() bool {
	return s == ReelStateSpinning
}

// IsStopped returns true if the reel has settled
func (s ReelState) IsStopped() bool {
	return s == ReelStateStopped
}

// Item is a selectable outcome on a reel strip
type Item struct {
	// Position is the display offset of the item on the strip, in pixels
	Position int

	// Weight is the item's relative probability mass; must not be negative
	Weight int

	// Symbol is an optional display label used by text frontends
	Symbol string
}

// ReelConfig describes one reel strip
type ReelConfig struct {
	// ImageURL is the strip artwork used by graphical renderers
	ImageURL string

	// Items is the ordered strip; the first item's position is the
	// initial display state
	Items []Item
}
