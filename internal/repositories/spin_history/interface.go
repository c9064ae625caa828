package spin_history

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/reelcraft/spindle/internal/repositories/spin_history Repository

import (
	"context"

	"github.com/reelcraft/spindle/internal/models"
)

// Repository defines the interface for spin history persistence
type Repository interface {
	// SaveSpin persists a resolved spin
	SaveSpin(ctx context.Context, input *SaveSpinInput) error

	// GetSpin retrieves a spin by ID
	GetSpin(ctx context.Context, input *GetSpinInput) (*models.Spin, error)

	// GetRecentSpins retrieves the most recent spins, newest first
	GetRecentSpins(ctx context.Context, input *GetRecentSpinsInput) (*GetRecentSpinsOutput, error)
}
