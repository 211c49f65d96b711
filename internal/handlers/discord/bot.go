package discord

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	// DefaultCommandTimeout bounds one command invocation
	DefaultCommandTimeout = 30 * time.Second

	// Status shown under the bot's name
	watchStatus = "F1 races 🏎️"
)

// Bot represents the Discord bot instance
type Bot struct {
	session        *discordgo.Session
	mu             sync.RWMutex
	commands       map[string]CommandHandler
	commandIDs     map[string]string // Maps command name to command ID
	handlers       []CommandHandler
	config         *Config
	commandTimeout time.Duration
	logger         *zap.Logger

	// ctx is the parent of every invocation, cancelled by Stop
	ctx    context.Context
	cancel context.CancelFunc
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Commands registered on Start
	Commands []CommandHandler

	// CommandTimeout bounds each invocation, defaults to DefaultCommandTimeout
	CommandTimeout time.Duration

	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if len(cfg.Commands) == 0 {
		return nil, errors.New("at least one command is required")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	bot := newBot(cfg)
	bot.session = session

	// Register the event handlers
	session.AddHandler(bot.handleReady)
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

func newBot(cfg *Config) *Bot {
	timeout := cfg.CommandTimeout
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Bot{
		commands:       make(map[string]CommandHandler),
		commandIDs:     make(map[string]string),
		handlers:       cfg.Commands,
		config:         cfg,
		commandTimeout: timeout,
		logger:         logger,
		ctx:            ctx,
		cancel:         cancel,
	}
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range b.handlers {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	b.logger.Info("Bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// In-flight invocations see their context cancelled
	b.cancel()

	appID := b.appID()

	b.mu.Lock()
	defer b.mu.Unlock()

	// Remove all commands
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("Failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err))
		} else {
			b.logger.Info("Deleted command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID))
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.appID()

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := b.config.GuildID
	if guildID != "" {
		b.logger.Info("Registering command for guild",
			zap.String("command", cmd.GetName()),
			zap.String("guild_id", guildID))
	} else {
		b.logger.Info("Registering command globally", zap.String("command", cmd.GetName()))
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.addCommand(cmd, createdCmd.ID)
	b.logger.Info("Registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID))

	return nil
}

func (b *Bot) addCommand(cmd CommandHandler, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = id
}

func (b *Bot) command(name string) (CommandHandler, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	h, ok := b.commands[name]
	return h, ok
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleReady sets the presence once the gateway session is up
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("Connected to Discord",
		zap.String("user", r.User.Username),
		zap.Int("guilds", len(r.Guilds)))

	if err := s.UpdateWatchStatus(0, watchStatus); err != nil {
		b.logger.Warn("Failed to set presence", zap.Error(err))
	}
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.dispatch(s, i)
}

// dispatch routes a slash command to its handler with a context bounded by the command timeout
func (b *Bot) dispatch(s Responder, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	h, ok := b.command(name)
	if !ok {
		b.logger.Warn("Unknown command", zap.String("command", name))
		if err := RespondWithEphemeralError(s, i, fmt.Sprintf("Unknown command: %s", name)); err != nil {
			b.logger.Error("Failed to respond to unknown command", zap.Error(err))
		}
		return
	}

	ctx, cancel := context.WithTimeout(b.ctx, b.commandTimeout)
	defer cancel()

	if err := h.Handle(ctx, s, i); err != nil {
		b.logger.Error("Error handling command",
			zap.String("command", name),
			zap.Error(err))
	}
}
