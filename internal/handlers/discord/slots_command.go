package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/reelcraft/spindle/internal/repositories/spin_history"
	"github.com/reelcraft/spindle/internal/services/spin"
)

// SlotsCommand handles the /slots command
type SlotsCommand struct {
	BaseCommand
	spinService spin.Service
	historyRepo spin_history.Repository
}

// NewSlotsCommand creates a new slots command handler
func NewSlotsCommand(spinService spin.Service, historyRepo spin_history.Repository) *SlotsCommand {
	return &SlotsCommand{
		BaseCommand: BaseCommand{
			Name:        "slots",
			Description: "Slot machine commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "spin",
					Description: "Spin the reels",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show recent spins",
				},
			},
		},
		spinService: spinService,
		historyRepo: historyRepo,
	}
}

// Handle processes a Discord interaction for the slots command
func (c *SlotsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	// Handle the appropriate subcommand
	var err error
	switch data.Options[0].Name {
	case "spin":
		err = c.handleSpin(s, i)
	case "history":
		err = c.handleHistory(s, i)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// handleSpin handles the spin subcommand
func (c *SlotsCommand) handleSpin(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.spinService.Play(ctx, &spin.PlayInput{})
	if err != nil {
		log.Printf("Error dispatching spin: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to spin: %v", err))
	}

	// A play made while the reels are moving is dropped, not queued
	if !output.Dispatched {
		return RespondWithEphemeralMessage(s, i, "The reels are already spinning. Wait for them to stop.")
	}

	return renderSpinResponse(s, i, output)
}

// handleHistory handles the history subcommand
func (c *SlotsCommand) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if c.historyRepo == nil {
		return RespondWithEphemeralMessage(s, i, "Spin history is not enabled.")
	}

	ctx := context.Background()

	output, err := c.historyRepo.GetRecentSpins(ctx, &spin_history.GetRecentSpinsInput{
		Limit: 5,
	})
	if err != nil {
		log.Printf("Error getting spin history: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to get spin history: %v", err))
	}

	return renderHistoryResponse(s, i, output.Spins)
}
