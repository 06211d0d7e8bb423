package main

import (
	"context"
	"log"
	"os"

	"charbot/internal/adapters/discord"
	"charbot/internal/config"
	"charbot/internal/infrastructure/database"
	"charbot/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ config: %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ migrations: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ database: %v", err)
	}
	defer pool.Close()

	translator, err := i18n.NewTranslator()
	if err != nil {
		log.Fatalf("❌ i18n: %v", err)
	}
	if _, ok := i18n.ParseLocale(cfg.DefaultLocale); !ok {
		log.Printf("⚠️ DEFAULT_LOCALE %q is not supported, using %s", cfg.DefaultLocale, i18n.DefaultLocale)
		cfg.DefaultLocale = string(i18n.DefaultLocale)
	}

	playerRepo := database.NewPlayerRepository(pool)
	guildLocaleRepo := database.NewGuildLocaleRepository(pool)

	bot, err := discord.NewBot(cfg, translator, playerRepo, guildLocaleRepo)
	if err != nil {
		log.Fatalf("❌ discord: %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ bot stopped: %v", err)
		os.Exit(1)
	}
}
