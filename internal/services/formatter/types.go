package formatter

import (
	"github.com/KirkDiggler/boxbox/internal/chart"
	"github.com/KirkDiggler/boxbox/internal/models"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	// AccentColor is the embed colour of every standings reply
	AccentColor = 0xE10600

	// DefaultMaxRows is how many entries the embed table lists
	DefaultMaxRows = 25

	// Footer credits the data provider
	Footer = "Data provided by Ergast API"
)

// Config holds configuration for the formatter service
type Config struct {
	// Renderer draws the points chart. Nil disables charts.
	Renderer chart.Renderer

	// MaxRows in the standings table, defaults to DefaultMaxRows
	MaxRows int

	// Logger, defaults to a no-op logger
	Logger *zap.Logger
}

// FormatStandingsInput contains parameters for formatting standings
type FormatStandingsInput struct {
	List *models.StandingsList
}

// FormatStandingsOutput contains the formatted reply
type FormatStandingsOutput struct {
	// Embed to send
	Embed *discordgo.MessageEmbed

	// Chart referenced by the embed image, nil when no chart was drawn
	Chart *Attachment
}

// Attachment is a file sent alongside the embed
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}
