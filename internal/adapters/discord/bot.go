package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"charbot/internal/application"
	"charbot/internal/config"
	"charbot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot and wires ports: output adapters -> application (use cases) -> handler.
func NewBot(
	cfg *config.Config,
	translator output.Translator,
	playerRepo output.PlayerRepository,
	guildLocaleRepo output.GuildLocaleRepository,
) (*Bot, error) {
	gameUC := application.NewGameService(playerRepo)
	localeUC := application.NewLocaleService(guildLocaleRepo, translator, cfg.DefaultLocale)

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(gameUC, localeUC, translator),
	}
	bot.session.AddHandler(bot.handleInteraction)
	return bot, nil
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "shrugman":
			b.handler.HandleShrugman(s, i)
		case "language":
			b.handler.HandleLanguage(s, i)
		}
	case discordgo.InteractionModalSubmit:
		if strings.HasPrefix(i.ModalSubmitData().CustomID, guessModalPrefix) {
			b.handler.HandleGuessModalSubmit(s, i)
		}
	case discordgo.InteractionMessageComponent:
		switch i.MessageComponentData().CustomID {
		case "btn_shrugman_guess":
			b.handler.HandleGuessButton(s, i)
		case "btn_shrugman_stop":
			b.handler.HandleStopButton(s, i)
		}
	}
}

func (b *Bot) commands() []*discordgo.ApplicationCommand {
	locales := b.handler.translator.SupportedLocales()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(locales))
	for _, locale := range locales {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: locale, Value: locale})
	}
	return []*discordgo.ApplicationCommand{
		{Name: "shrugman", Description: "Play a game of shrugman"},
		{Name: "language", Description: "Show or set the language used for this server", Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "locale",
				Description: "Language to use for this server",
				Choices:     choices,
			},
		}},
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer b.session.Close()

	// An empty GuildID registers the commands globally.
	for _, cmd := range b.commands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			log.Printf("⚠️ register command %s: %v", cmd.Name, err)
		}
	}

	fmt.Println("🤖 Bot is online! Press CTRL+C to exit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
