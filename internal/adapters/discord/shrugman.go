package discord

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"charbot/internal/application"
	"charbot/internal/domain"
	"charbot/internal/domain/entities"
	pkgdiscord "charbot/pkg/discord"
)

const guessModalPrefix = "shrugman_guess_modal_"

// HandleShrugman starts a new round and posts the game embed.
func (h *Handler) HandleShrugman(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := h.localeFor(i)
	user := interactionUser(i)
	if user == nil {
		return
	}

	game, err := h.gameUseCase.StartGame(ctx, user.ID, resolveDisplayName(i))
	if err != nil {
		if errors.Is(err, domain.ErrGameInProgress) {
			respondEphemeral(s, i.Interaction, h.t(locale, "shrugman.already_playing", nil))
			return
		}
		log.Printf("❌ start game (user=%s): %v", user.ID, err)
		respondEphemeral(s, i.Interaction, h.t(locale, "shrugman.start_failed", nil))
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{h.buildGameEmbed(locale, game, user.AvatarURL(""))},
			Components: h.gameButtons(locale, false),
		},
	})
	if err != nil {
		log.Printf("❌ post game message: %v", err)
		h.gameUseCase.DiscardGame(game)
		return
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil || msg == nil {
		log.Printf("❌ fetch game message: %v", err)
		h.gameUseCase.DiscardGame(game)
		return
	}
	h.gameUseCase.AttachMessage(game, msg.ID)
}

// HandleGuessButton opens the single-letter guess modal.
func (h *Handler) HandleGuessButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := h.localeFor(i)
	game, err := h.gameUseCase.Game(i.Message.ID)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.t(locale, "shrugman.expired", nil))
		return
	}
	user := interactionUser(i)
	if user == nil || game.PlayerID != user.ID {
		respondEphemeral(s, i.Interaction, h.t(locale, "shrugman.only_invoker", nil))
		return
	}

	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: guessModalPrefix + i.Message.ID,
			Title:    h.t(locale, "shrugman.guess.title", nil),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  "letter",
						Label:     h.t(locale, "shrugman.guess.label", nil),
						Style:     discordgo.TextInputShort,
						Required:  true,
						MinLength: 1,
						MaxLength: 1,
					},
				}},
			},
		},
	})
}

// HandleGuessModalSubmit plays the submitted letter and refreshes the game
// message. When the round ends, the payout is reported in an ephemeral
// follow-up.
func (h *Handler) HandleGuessModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := h.localeFor(i)
	data := i.ModalSubmitData()
	messageID := strings.TrimPrefix(data.CustomID, guessModalPrefix)
	letter := strings.ToLower(strings.TrimSpace(pkgdiscord.ExtractFirstInput(data)))
	user := interactionUser(i)
	if user == nil {
		return
	}

	game, player, err := h.gameUseCase.Guess(ctx, messageID, user.ID, letter)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.t(locale, pkgdiscord.MessageKey(err), map[string]any{"letter": letter}))
		return
	}

	embeds := []*discordgo.MessageEmbed{h.buildGameEmbed(locale, game, user.AvatarURL(""))}
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     embeds,
			Components: h.gameButtons(locale, game.Over()),
		},
	}); err != nil {
		log.Printf("❌ update game message: %v", err)
		return
	}

	if player != nil {
		earned := application.LossPoints
		if game.Won {
			earned = application.WinPoints
		}
		content := h.t(locale, "shrugman.points", map[string]any{"count": earned}) +
			" " + h.t(locale, "shrugman.total", map[string]any{"count": player.Points})
		if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		}); err != nil {
			log.Printf("⚠️ send payout follow-up: %v", err)
		}
	}
}

// HandleStopButton cancels the round and reveals the word.
func (h *Handler) HandleStopButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := h.localeFor(i)
	user := interactionUser(i)
	if user == nil {
		return
	}

	game, err := h.gameUseCase.StopGame(ctx, i.Message.ID, user.ID)
	if err != nil {
		respondEphemeral(s, i.Interaction, h.t(locale, pkgdiscord.MessageKey(err), nil))
		return
	}

	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{h.buildGameEmbed(locale, game, user.AvatarURL(""))},
			Components: h.gameButtons(locale, true),
		},
	})
}

func (h *Handler) gameButtons(locale string, disabled bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: h.t(locale, "shrugman.button.guess", nil), Style: discordgo.SuccessButton, CustomID: "btn_shrugman_guess", Disabled: disabled},
			discordgo.Button{Label: h.t(locale, "shrugman.button.stop", nil), Style: discordgo.DangerButton, CustomID: "btn_shrugman_stop", Disabled: disabled},
		}},
	}
}

func (h *Handler) buildGameEmbed(locale string, game *entities.Game, authorIcon string) *discordgo.MessageEmbed {
	var title, description string
	footerKey := "shrugman.footer"
	color := pkgdiscord.ColorPlaying
	switch {
	case game.Won:
		title = h.t(locale, "shrugman.title.won", map[string]any{"name": game.PlayerName})
		description = h.t(locale, "shrugman.congrats", map[string]any{"word": game.Word})
		footerKey = "shrugman.footer.again"
		color = pkgdiscord.ColorWin
	case game.Dead:
		title = h.t(locale, "shrugman.title.lost", nil)
		description = h.t(locale, "shrugman.reveal", map[string]any{"word": game.Word})
		footerKey = "shrugman.footer.again"
		color = pkgdiscord.ColorLoss
	case game.Stopped:
		title = h.t(locale, "shrugman.title.cancelled", nil)
		description = h.t(locale, "shrugman.prompt", map[string]any{"word": game.Mask()})
	default:
		title = h.t(locale, "shrugman.title", nil)
		description = h.t(locale, "shrugman.prompt", map[string]any{"word": game.Mask()})
	}

	fields := [][2]string{
		{h.t(locale, "shrugman.field.state", nil), game.FailState()},
		{h.t(locale, "shrugman.field.guesses", nil), strconv.Itoa(len(game.Guesses))},
		{h.t(locale, "shrugman.field.mistakes", nil), strconv.Itoa(game.Mistakes)},
	}
	if game.Over() {
		fields = append(fields, [2]string{h.t(locale, "shrugman.field.word", nil), game.Word})
	}
	guessed := strings.Join(game.Guesses, ", ")
	if guessed == "" {
		guessed = h.t(locale, "shrugman.none", nil)
	}
	fields = append(fields, [2]string{h.t(locale, "shrugman.field.guessed", nil), guessed})

	return pkgdiscord.BuildGameEmbed(title, description, h.t(locale, footerKey, nil), game.PlayerName, authorIcon, color, fields)
}
