package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Nick > GlobalName > Username. In DMs only i.User is set.
func requesterName(i *discordgo.InteractionCreate) string {
	if i == nil || i.Interaction == nil {
		return ""
	}
	if member := i.Member; member != nil && member.User != nil {
		if member.Nick != "" {
			return member.Nick
		}
		return displayName(member.User)
	}
	return displayName(i.User)
}

func displayName(u *discordgo.User) string {
	if u == nil {
		return ""
	}
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}
