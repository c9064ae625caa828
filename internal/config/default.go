package config

import (
	"time"

	"github.com/reelcraft/spindle/internal/models"
)

// DefaultMachine returns the built-in classic fruit layout used when
// no YAML layout is supplied. Positions step by one segment height
// (1320 / 8 = 165).
func DefaultMachine() *Machine {
	strip := func(symbols []string, weights []int) []models.Item {
		items := make([]models.Item, 0, len(symbols))
		for i, symbol := range symbols {
			items = append(items, models.Item{
				Position: i * 165,
				Weight:   weights[i],
				Symbol:   symbol,
			})
		}
		return items
	}

	symbols := []string{"🍒", "🍋", "🍊", "🍇", "🔔", "⭐", "💎", "🎰"}

	return &Machine{
		ReelHeight:    1320,
		ReelWidth:     200,
		SegmentCount:  8,
		StopDelayUnit: time.Second,
		Reels: []models.ReelConfig{
			{Items: strip(symbols, []int{10, 10, 8, 8, 5, 4, 2, 1})},
			{Items: strip(symbols, []int{10, 8, 10, 8, 4, 5, 2, 1})},
			{Items: strip(symbols, []int{8, 10, 10, 8, 5, 4, 2, 1})},
		},
	}
}
