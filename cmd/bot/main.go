package main

import (
	"time"

	"currency-bot/internal/bot"
	"currency-bot/internal/clients_api/frankfurter"
	"currency-bot/internal/features/currency"
	"currency-bot/internal/infra/config"
	logging "currency-bot/internal/infra/log"
	"currency-bot/internal/server"

	"go.uber.org/zap"
)

// main starts the Discord currency bot and the liveness endpoint.
func main() {
	// Load configuration from env, flags and files via unified interface
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.LogError("Failed to load config", zap.Error(err))
		logging.Logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Frankfurter exchange-rate API client.
	client := frankfurter.NewClient(cfg.Frankfurter.BaseURL,
		time.Duration(cfg.Frankfurter.RequestTimeout)*time.Second)

	registry := currency.NewRegistry(client)
	prefs := bot.NewGuildPrefs()

	dispatcher := &bot.Dispatcher{
		Prefix:       cfg.Discord.CommandPrefix,
		SuperAdminID: cfg.Discord.SuperAdminID,
		Registry:     registry,
		Prefs:        prefs,
		Rates:        client,
	}

	b, err := bot.NewBot(cfg.Discord.Token, dispatcher)
	if err != nil {
		logging.LogError("Failed to create bot", zap.Error(err))
		logging.Logger.Fatal("Failed to create bot", zap.Error(err))
	}

	// Liveness endpoint for uptime pingers, independent of the gateway.
	go func() {
		if err := server.RunLiveness(cfg.Server.Port); err != nil {
			logging.LogError("Liveness server failed", zap.Error(err))
		}
	}()

	if err := b.Start(); err != nil {
		logging.LogError("Failed to connect to Discord", zap.Error(err))
		logging.Logger.Fatal("Failed to connect to Discord", zap.Error(err))
	}

	logging.LogSuccess("Bot is running")

	select {}
}
