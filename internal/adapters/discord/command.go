package discord

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "drugcheck/pkg/discord"
)

const (
	commandName  = "interactions"
	optionPrefix = "medicament_"
	maxDrugs     = 10

	// Interaction tokens expire after 15 minutes; past that the edit fails.
	interactionTTL = 14 * time.Minute
)

func (h *Handler) buildCommand() *discordgo.ApplicationCommand {
	options := make([]*discordgo.ApplicationCommandOption, 0, maxDrugs)
	for i := 1; i <= maxDrugs; i++ {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        fmt.Sprintf("%s%d", optionPrefix, i),
			Description: h.messages.T(h.locale, "option_description", map[string]any{"Index": i}),
			Required:    i == 1,
		})
	}
	return &discordgo.ApplicationCommand{
		Name:        commandName,
		Description: h.messages.T(h.locale, "command_description", nil),
		Options:     options,
	}
}

// HandleCommand runs the lookup for /interactions. The reply is deferred
// because the registry calls can outlast Discord's acknowledgement window.
func (h *Handler) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		h.log.Error(err, "discord: deferred response failed")
		return
	}

	names := drugNamesFromOptions(i.ApplicationCommandData().Options)
	h.log.WithFields(map[string]any{"user": requesterName(i), "drugs": len(names)}).Info("commande /interactions")

	ctx, cancel := context.WithTimeout(context.Background(), interactionTTL)
	defer cancel()
	payload := h.useCase.FindInteractions(ctx, names)

	embeds := []*discordgo.MessageEmbed{
		pkgdiscord.BuildResultEmbed(h.messages.T(h.locale, "result_title", nil), payload, names),
	}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Embeds: &embeds}); err != nil {
		h.log.Error(err, "discord: response edit failed")
	}
}

// drugNamesFromOptions returns option values ordered by their index suffix,
// whatever order Discord delivered them in.
func drugNamesFromOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) []string {
	type indexed struct {
		index int
		value string
	}
	var picked []indexed
	for _, opt := range opts {
		if opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimPrefix(opt.Name, optionPrefix))
		if err != nil || !strings.HasPrefix(opt.Name, optionPrefix) {
			continue
		}
		picked = append(picked, indexed{index: idx, value: opt.StringValue()})
	}
	sort.Slice(picked, func(a, b int) bool { return picked[a].index < picked[b].index })

	names := make([]string, 0, len(picked))
	for _, p := range picked {
		names = append(names, p.value)
	}
	return names
}
