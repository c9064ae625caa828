package spin_history

import "github.com/reelcraft/spindle/internal/models"

type SaveSpinInput struct {
	Spin *models.Spin
}

type GetSpinInput struct {
	SpinID string
}

type GetRecentSpinsInput struct {
	// Limit caps how many spins are returned; zero means the
	// repository default
	Limit int
}

type GetRecentSpinsOutput struct {
	Spins []*models.Spin
}
