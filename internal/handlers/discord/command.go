package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Embed colours
const (
	ColorError = 0xff0000
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction and sends its reply through s
	Handle(ctx context.Context, s Responder, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// ErrorEmbed builds the embed used for every error reply
func ErrorEmbed(errorMessage string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Error",
		Description: errorMessage,
		Color:       ColorError,
	}
}

// RespondWithEphemeralError sends an error only the invoking user can see
func RespondWithEphemeralError(s Responder, i *discordgo.InteractionCreate, errorMessage string) error {
	return newReply(s, i.Interaction).Send(&Message{
		Embeds:    []*discordgo.MessageEmbed{ErrorEmbed(errorMessage)},
		Ephemeral: true,
	})
}

// interactionUserID returns the invoking user for guild and DM interactions
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
