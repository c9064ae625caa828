package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/reelcraft/spindle/internal/models"
	"github.com/reelcraft/spindle/internal/services/spin"
)

// renderSpinResponse renders the response for a dispatched spin
func renderSpinResponse(s *discordgo.Session, i *discordgo.InteractionCreate, output *spin.PlayOutput) error {
	// One field per reel showing when it will settle
	fields := make([]*discordgo.MessageEmbedField, 0, len(output.Results))
	for _, result := range output.Results {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("Reel %d", result.Reel+1),
			Value:  fmt.Sprintf("stopping in %s", result.StopDelay),
			Inline: true,
		})
	}

	spinButton := discordgo.Button{
		Label:    "Spin Again",
		Style:    discordgo.PrimaryButton,
		CustomID: ButtonSpinAgain,
		Emoji: &discordgo.ComponentEmoji{
			Name: "🎰",
		},
	}

	return RespondWithEmbedAndButtons(s, i,
		"🎰 Reels are spinning!",
		fmt.Sprintf("Spin `%s` dispatched. Watch the machine settle.", output.SpinID),
		fields,
		[]discordgo.MessageComponent{spinButton},
	)
}

// renderHistoryResponse renders the recent spin history
func renderHistoryResponse(s *discordgo.Session, i *discordgo.InteractionCreate, spins []*models.Spin) error {
	if len(spins) == 0 {
		return RespondWithEphemeralMessage(s, i, "No spins yet. Try `/slots spin`.")
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(spins))
	for _, record := range spins {
		symbols := make([]string, 0, len(record.Results))
		for _, result := range record.Results {
			symbol := result.Symbol
			if symbol == "" {
				symbol = fmt.Sprintf("pos %d", result.Position)
			}
			symbols = append(symbols, symbol)
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   record.CreatedAt.Format("Jan 2 15:04:05"),
			Value:  strings.Join(symbols, " | "),
			Inline: false,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Recent Spins",
		Description: fmt.Sprintf("Last %d spins, newest first", len(spins)),
		Color:       0x00ff00, // Green color
		Fields:      fields,
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}
