package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"drugcheck/internal/domain/entities"
)

const (
	ColorError   = 0xED4245 // rouge
	ColorWarning = 0x57F287 // vert
	ColorSuccess = 0x3498DB // bleu

	// Discord rejects embed descriptions longer than this.
	maxDescription = 4096
)

// StatusColor maps a status to the embed color convention.
func StatusColor(s entities.Status) int {
	switch s {
	case entities.StatusWarning:
		return ColorWarning
	case entities.StatusSuccess:
		return ColorSuccess
	default:
		return ColorError
	}
}

// BuildResultEmbed renders a payload as a single embed.
func BuildResultEmbed(title string, payload entities.ResultPayload, drugs []string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: truncateRunes(payload.Text, maxDescription),
		Color:       StatusColor(payload.Status),
	}
	if len(drugs) > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: joinDrugs(drugs)}
	}
	return embed
}

func joinDrugs(drugs []string) string {
	return truncateRunes(strings.Join(drugs, " • "), 2048)
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
