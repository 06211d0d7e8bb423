package discord

import "github.com/bwmarrin/discordgo"

// Game embed colors.
const (
	ColorPlaying = 0x71368A
	ColorWin     = 0x2ECC71
	ColorLoss    = 0xE74C3C
)

// BuildGameEmbed assembles a game embed from pre-localized strings.
// fields are name/value pairs rendered inline, in order.
func BuildGameEmbed(title, description, footer, authorName, authorIcon string, color int, fields [][2]string) *discordgo.MessageEmbed {
	embedFields := make([]*discordgo.MessageEmbedField, 0, len(fields))
	for _, f := range fields {
		embedFields = append(embedFields, &discordgo.MessageEmbedField{Name: f[0], Value: f[1], Inline: true})
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Fields:      embedFields,
		Author:      &discordgo.MessageEmbedAuthor{Name: authorName, IconURL: authorIcon},
		Footer:      &discordgo.MessageEmbedFooter{Text: footer},
	}
}
