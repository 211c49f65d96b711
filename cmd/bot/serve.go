package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/boxbox/internal/common/uuid"
	"github.com/KirkDiggler/boxbox/internal/handlers/discord"
	"github.com/KirkDiggler/boxbox/internal/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd connects to Discord and answers slash commands until interrupted
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Discord bot",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	svcs, err := newServices(cfg, logger)
	if err != nil {
		return err
	}

	var commands []discord.CommandHandler
	for _, kind := range []models.StandingsKind{models.StandingsKindDrivers, models.StandingsKindConstructors} {
		command, err := discord.NewStandingsCommand(&discord.StandingsCommandConfig{
			Kind:             kind,
			StandingsService: svcs.standings,
			FormatterService: svcs.formatter,
			UUID:             uuid.New(),
			Logger:           logger.Named("command"),
		})
		if err != nil {
			return fmt.Errorf("failed to create %s command: %w", kind, err)
		}
		commands = append(commands, command)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:          cfg.DiscordToken,
		ApplicationID:  cfg.ApplicationID,
		GuildID:        cfg.GuildID,
		Commands:       commands,
		CommandTimeout: cfg.CommandTimeout,
		Logger:         logger.Named("bot"),
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}

	logger.Info("Bot started",
		zap.String("ergast_base_url", cfg.ErgastBaseURL),
		zap.Bool("charts_enabled", cfg.ChartsEnabled),
		zap.String("guild_id", cfg.GuildID))

	// Wait for interrupt signal to gracefully shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()
	<-ctx.Done()

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		logger.Error("Error stopping bot", zap.Error(err))
	}

	logger.Info("Bot has been shut down")
	return nil
}
