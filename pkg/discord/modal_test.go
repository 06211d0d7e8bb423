package discord_test

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	pkgdiscord "charbot/pkg/discord"
)

func TestExtractFirstInput(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: "shrugman_guess_modal_123",
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					&discordgo.TextInput{CustomID: "letter", Value: "e"},
				},
			},
		},
	}

	assert.Equal(t, "e", pkgdiscord.ExtractFirstInput(data))
}

func TestExtractFirstInputUnexpectedLayout(t *testing.T) {
	tests := []struct {
		name string
		data discordgo.ModalSubmitInteractionData
	}{
		{"no components", discordgo.ModalSubmitInteractionData{}},
		{
			"empty row",
			discordgo.ModalSubmitInteractionData{
				Components: []discordgo.MessageComponent{&discordgo.ActionsRow{}},
			},
		},
		{
			"not a text input",
			discordgo.ModalSubmitInteractionData{
				Components: []discordgo.MessageComponent{
					&discordgo.ActionsRow{
						Components: []discordgo.MessageComponent{
							&discordgo.Button{CustomID: "nope"},
						},
					},
				},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Empty(t, pkgdiscord.ExtractFirstInput(tc.data))
		})
	}
}
