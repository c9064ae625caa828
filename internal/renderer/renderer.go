package renderer

//go:generate mockgen -package=mocks -destination=mocks/mock_renderer.go github.com/reelcraft/spindle/internal/renderer Renderer

// StripConfig describes the visual strip for one reel
type StripConfig struct {
	// ImageURL is the strip artwork, where the medium supports it
	ImageURL string

	// Width and Height are the strip dimensions in pixels
	Width  int
	Height int

	// SegmentCount is how many repeated tiles make up the strip
	SegmentCount int

	// Symbols holds the display labels of the strip's items, in
	// strip order, for text media
	Symbols []string

	// Positions holds the display offset of each item, parallel to
	// Symbols, so text media can map a resting offset back to an item
	Positions []int
}

// Handle is an opaque reference to a rendered reel strip. Renderers
// hand one out per strip and accept it back on every display update.
type Handle any

// Renderer is the display collaborator driven by the spin service
type Renderer interface {
	// CreateStrip builds and attaches one reel strip, resting at
	// startPosition
	CreateStrip(cfg StripConfig, startPosition int) (Handle, error)

	// SetSpinState puts the strip into its spinning visual state
	SetSpinState(h Handle) error

	// SetStopState settles the strip out of its spinning state
	SetStopState(h Handle) error

	// SetSegmentOffset pre-positions one strip segment so the final
	// resting frame shows the winning item
	SetSegmentOffset(h Handle, segment int, offsetPixels int) error
}
