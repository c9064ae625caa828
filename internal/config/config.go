package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/reelcraft/spindle/internal/machine"
	"github.com/reelcraft/spindle/internal/models"
)

// Machine is the parsed machine layout
type Machine struct {
	ReelHeight    int
	ReelWidth     int
	SegmentCount  int
	StopDelayUnit time.Duration
	Reels         []models.ReelConfig
}

type machineYAML struct {
	Machine struct {
		ReelHeight    int    `yaml:"reel_height"`
		ReelWidth     int    `yaml:"reel_width"`
		SegmentCount  int    `yaml:"segment_count"`
		StopDelayUnit string `yaml:"stop_delay_unit"`
		Reels         []struct {
			ImageURL string `yaml:"image_url"`
			Items    []struct {
				Position int    `yaml:"position"`
				Weight   int    `yaml:"weight"`
				Symbol   string `yaml:"symbol"`
			} `yaml:"items"`
		} `yaml:"reels"`
	} `yaml:"machine"`
}

// LoadMachine reads and validates a machine layout from a YAML file
func LoadMachine(path string) (*Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine config: %w", err)
	}

	var raw machineYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse machine config: %w", err)
	}

	if len(raw.Machine.Reels) == 0 {
		return nil, errors.New("machine config has no reels")
	}

	cfg := &Machine{
		ReelHeight:   raw.Machine.ReelHeight,
		ReelWidth:    raw.Machine.ReelWidth,
		SegmentCount: raw.Machine.SegmentCount,
	}

	if raw.Machine.StopDelayUnit != "" {
		unit, err := time.ParseDuration(raw.Machine.StopDelayUnit)
		if err != nil {
			return nil, fmt.Errorf("invalid stop delay unit: %w", err)
		}
		cfg.StopDelayUnit = unit
	}

	for i, reel := range raw.Machine.Reels {
		items := make([]models.Item, 0, len(reel.Items))
		for _, item := range reel.Items {
			items = append(items, models.Item{
				Position: item.Position,
				Weight:   item.Weight,
				Symbol:   item.Symbol,
			})
		}

		if err := machine.ValidateItems(items); err != nil {
			return nil, fmt.Errorf("reel %d: %w", i, err)
		}

		cfg.Reels = append(cfg.Reels, models.ReelConfig{
			ImageURL: reel.ImageURL,
			Items:    items,
		})
	}

	return cfg, nil
}
