package random

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/reelcraft/spindle/internal/random Source

// Source provides uniform random numbers in [0, 1)
type Source interface {
	Float64() float64
}

// Config for the default source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultSource implements the Source interface using math/rand
type DefaultSource struct {
	random *rand.Rand
}

// New creates a new uniform random source
func New(cfg *Config) *DefaultSource {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &DefaultSource{
		random: random,
	}
}

// Float64 returns the next value in [0, 1)
func (s *DefaultSource) Float64() float64 {
	return s.random.Float64()
}
