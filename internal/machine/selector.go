package machine

import (
	"errors"

	"github.com/reelcraft/spindle/internal/models"
	"github.com/reelcraft/spindle/internal/random"
)

// Define errors
var (
	ErrNoItems         = errors.New("reel has no items")
	ErrInvalidWeight   = errors.New("item weight cannot be negative")
	ErrZeroTotalWeight = errors.New("total item weight must be positive")
)

// ValidateItems checks that a strip can be sampled: at least one item,
// no negative weights, and a positive total weight.
func ValidateItems(items []models.Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	totalWeight := 0
	for _, item := range items {
		if item.Weight < 0 {
			return ErrInvalidWeight
		}
		totalWeight += item.Weight
	}

	if totalWeight <= 0 {
		return ErrZeroTotalWeight
	}

	return nil
}

// SelectWeighted picks one item from the strip with probability
// proportional to its weight. The scan walks the strip in order,
// so bucket boundaries follow strip order.
func SelectWeighted(items []models.Item, src random.Source) (models.Item, error) {
	if err := ValidateItems(items); err != nil {
		return models.Item{}, err
	}

	totalWeight := 0
	for _, item := range items {
		totalWeight += item.Weight
	}

	r := src.Float64() * float64(totalWeight)
	for _, item := range items {
		if r < float64(item.Weight) {
			return item, nil
		}
		r -= float64(item.Weight)
	}

	// Float drift can exhaust the scan without a hit; settle on the
	// last item carrying any weight.
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Weight > 0 {
			return items[i], nil
		}
	}

	return items[len(items)-1], nil
}
