package discord

import "github.com/bwmarrin/discordgo"

// ExtractFirstInput returns the value of the first text input in a modal
// submit, or "" when the layout is not the expected single-input row.
func ExtractFirstInput(data discordgo.ModalSubmitInteractionData) string {
	if len(data.Components) == 0 {
		return ""
	}
	row, ok := data.Components[0].(*discordgo.ActionsRow)
	if !ok || len(row.Components) == 0 {
		return ""
	}
	input, ok := row.Components[0].(*discordgo.TextInput)
	if !ok {
		return ""
	}
	return input.Value
}
