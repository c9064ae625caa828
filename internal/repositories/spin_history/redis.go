package spin_history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/reelcraft/spindle/internal/models"
)

const (
	// Key prefixes for Redis
	spinKeyPrefix  = "spin:"
	recentSpinsKey = "recent_spins"

	// defaultRecentLimit bounds GetRecentSpins when no limit is given
	defaultRecentLimit = 20
)

// ErrSpinNotFound is returned when a spin is not found
var ErrSpinNotFound = errors.New("spin not found")

// Config holds configuration for the Redis spin history repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed spin history repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSpin persists a spin to Redis
func (r *redisRepository) SaveSpin(ctx context.Context, input *SaveSpinInput) error {
	if input == nil || input.Spin == nil {
		return errors.New("input and spin cannot be nil")
	}

	if input.Spin.ID == "" {
		return errors.New("spin ID cannot be empty")
	}

	// Marshal the spin to JSON
	spinJSON, err := json.Marshal(input.Spin)
	if err != nil {
		return fmt.Errorf("failed to marshal spin: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the spin
	spinKey := fmt.Sprintf("%s%s", spinKeyPrefix, input.Spin.ID)
	pipe.Set(ctx, spinKey, spinJSON, 0) // No expiration for now

	// Index the spin by dispatch time for recency queries
	pipe.ZAdd(ctx, recentSpinsKey, redis.Z{
		Score:  float64(input.Spin.CreatedAt.UnixNano()),
		Member: input.Spin.ID,
	})

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save spin: %w", err)
	}

	return nil
}

// GetSpin retrieves a spin by ID from Redis
func (r *redisRepository) GetSpin(ctx context.Context, input *GetSpinInput) (*models.Spin, error) {
	if input == nil || input.SpinID == "" {
		return nil, errors.New("input and spin ID cannot be empty")
	}

	spinKey := fmt.Sprintf("%s%s", spinKeyPrefix, input.SpinID)
	spinJSON, err := r.client.Get(ctx, spinKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSpinNotFound
		}
		return nil, fmt.Errorf("failed to get spin: %w", err)
	}

	var spin models.Spin
	if err := json.Unmarshal([]byte(spinJSON), &spin); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spin: %w", err)
	}

	return &spin, nil
}

// GetRecentSpins retrieves the most recent spins, newest first
func (r *redisRepository) GetRecentSpins(ctx context.Context, input *GetRecentSpinsInput) (*GetRecentSpinsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	// Newest first from the recency index
	spinIDs, err := r.client.ZRevRange(ctx, recentSpinsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent spins: %w", err)
	}

	spins := make([]*models.Spin, 0, len(spinIDs))
	for _, spinID := range spinIDs {
		spin, err := r.GetSpin(ctx, &GetSpinInput{SpinID: spinID})
		if err != nil {
			// The index can briefly outlive a deleted spin record
			if errors.Is(err, ErrSpinNotFound) {
				continue
			}
			return nil, err
		}
		spins = append(spins, spin)
	}

	return &GetRecentSpinsOutput{
		Spins: spins,
	}, nil
}
