package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/boxbox/internal/common/uuid"
	"github.com/KirkDiggler/boxbox/internal/models"
	"github.com/KirkDiggler/boxbox/internal/services/formatter"
	"github.com/KirkDiggler/boxbox/internal/services/standings"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Command names
const (
	CommandDriverStandings = "f1_standings_drivers"
	CommandTeamStandings   = "f1_standings_teams"

	optionYear = "year"
)

// Reply texts
const (
	MessageInvalidYear   = "Please provide a valid 4-digit year, for example 2023."
	MessageGenericError  = "Something went wrong while fetching the standings. Please try again later."
	MessageNothingToShow = "There are no standings to show for %d yet."
)

// StandingsCommandConfig holds configuration for a standings command
type StandingsCommandConfig struct {
	// Kind of standings the command shows
	Kind models.StandingsKind

	StandingsService standings.Service
	FormatterService formatter.Service

	// UUID generates request ids for log correlation
	UUID uuid.UUID

	Logger *zap.Logger
}

// StandingsCommand answers one slash command with the standings of one kind
type StandingsCommand struct {
	BaseCommand
	kind             models.StandingsKind
	standingsService standings.Service
	formatterService formatter.Service
	uuid             uuid.UUID
	logger           *zap.Logger
}

// NewStandingsCommand creates the command for the configured kind
func NewStandingsCommand(cfg *StandingsCommandConfig) (*StandingsCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.StandingsService == nil {
		return nil, errors.New("standings service cannot be nil")
	}

	if cfg.FormatterService == nil {
		return nil, errors.New("formatter service cannot be nil")
	}

	var name, description string
	switch cfg.Kind {
	case models.StandingsKindDrivers:
		name = CommandDriverStandings
		description = "Get F1 driver standings for a specific year"
	case models.StandingsKindConstructors:
		name = CommandTeamStandings
		description = "Get F1 constructor standings for a specific year"
	default:
		return nil, fmt.Errorf("unknown standings kind %q", cfg.Kind)
	}

	uuidGen := cfg.UUID
	if uuidGen == nil {
		uuidGen = uuid.New()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &StandingsCommand{
		BaseCommand: BaseCommand{
			Name:        name,
			Description: description,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        optionYear,
					Description: "Season year (e.g. 2023)",
					Required:    true,
				},
			},
		},
		kind:             cfg.Kind,
		standingsService: cfg.StandingsService,
		formatterService: cfg.FormatterService,
		uuid:             uuidGen,
		logger:           logger,
	}, nil
}

// Handle fetches, formats and sends the standings. Every invocation gets exactly one reply.
func (c *StandingsCommand) Handle(ctx context.Context, s Responder, i *discordgo.InteractionCreate) (err error) {
	r := newReply(s, i.Interaction)

	logger := c.logger.With(
		zap.String("request_id", c.uuid.NewUUID()),
		zap.String("command", c.Name),
	)

	defer func() {
		if p := recover(); p != nil {
			logger.Error("Recovered from panic while handling command",
				zap.Any("panic", p),
				zap.Stack("stack"))
			if !r.Sent() {
				if sendErr := r.Send(errorMessage(MessageGenericError)); sendErr != nil {
					logger.Error("Failed to send error reply", zap.Error(sendErr))
				}
			}
			err = fmt.Errorf("panic handling %s: %v", c.Name, p)
		}
	}()

	req, err := c.parseRequest(i)
	logger = logger.With(
		zap.String("guild_id", req.GuildID),
		zap.String("user_id", req.UserID),
	)
	if err != nil {
		logger.Info("Rejected invalid year", zap.Error(err))
		msg := errorMessage(MessageInvalidYear)
		msg.Ephemeral = true
		return r.Send(msg)
	}
	year := req.Year
	logger = logger.With(zap.Int("year", year))

	// Fetching can outlast the three seconds Discord allows before the first response
	if err := r.Defer(); err != nil {
		// Nothing went out yet, so the reply is still an immediate response
		logger.Error("Failed to acknowledge interaction", zap.Error(err))
		if sendErr := r.Send(errorMessage(MessageGenericError)); sendErr != nil {
			return fmt.Errorf("failed to acknowledge interaction: %w", errors.Join(err, sendErr))
		}
		return nil
	}

	standingsOutput, err := c.standingsService.GetStandings(ctx, &standings.GetStandingsInput{
		Kind: req.Kind,
		Year: req.Year,
	})
	if err != nil {
		return c.sendStandingsError(r, logger, year, err)
	}

	formatOutput, err := c.formatterService.FormatStandings(&formatter.FormatStandingsInput{
		List: standingsOutput.List,
	})
	if err != nil {
		if errors.Is(err, formatter.ErrEmptyStandings) {
			logger.Info("No standings to show")
			return r.Send(errorMessage(fmt.Sprintf(MessageNothingToShow, year)))
		}
		logger.Error("Failed to format standings", zap.Error(err))
		return r.Send(errorMessage(MessageGenericError))
	}

	msg := &Message{
		Embeds: []*discordgo.MessageEmbed{formatOutput.Embed},
	}
	if chart := formatOutput.Chart; chart != nil {
		msg.Files = append(msg.Files, &discordgo.File{
			Name:        chart.Name,
			ContentType: chart.ContentType,
			Reader:      bytes.NewReader(chart.Data),
		})
	}

	if err := r.Send(msg); err != nil {
		return fmt.Errorf("failed to send standings: %w", err)
	}

	logger.Info("Sent standings",
		zap.Int("entries", len(standingsOutput.List.Entries)),
		zap.Bool("chart", formatOutput.Chart != nil))

	return nil
}

// sendStandingsError turns a service error into the user's reply
func (c *StandingsCommand) sendStandingsError(r *reply, logger *zap.Logger, year int, err error) error {
	switch {
	case errors.Is(err, standings.ErrInvalidYear):
		logger.Info("Service rejected year", zap.Error(err))
		return r.Send(errorMessage(MessageInvalidYear))
	case errors.Is(err, standings.ErrDataUnavailable):
		logger.Info("No standings data", zap.Error(err))
		return r.Send(errorMessage(c.noDataText(year)))
	default:
		logger.Error("Failed to get standings", zap.Error(err))
		return r.Send(errorMessage(MessageGenericError))
	}
}

func (c *StandingsCommand) noDataText(year int) string {
	text := fmt.Sprintf("No %s standings data is available for %d.", strings.ToLower(c.kind.DisplayName()), year)

	seasons, err := c.standingsService.SupportedRange(&standings.SupportedRangeInput{Kind: c.kind})
	if err != nil {
		return text
	}

	return fmt.Sprintf("%s Try a season between %d and %d.", text, seasons.FirstSeason, seasons.LastSeason)
}

// parseRequest reads the invocation into a request. The request is returned even
// when the year is invalid so the caller can still log who asked.
func (c *StandingsCommand) parseRequest(i *discordgo.InteractionCreate) (*models.CommandRequest, error) {
	req := &models.CommandRequest{
		Kind:    c.kind,
		GuildID: i.GuildID,
		UserID:  interactionUserID(i),
	}

	year, err := parseYear(i.ApplicationCommandData().Options)
	if err != nil {
		return req, err
	}
	req.Year = year

	return req, nil
}

func errorMessage(text string) *Message {
	return &Message{
		Embeds: []*discordgo.MessageEmbed{ErrorEmbed(text)},
	}
}

// parseYear reads the year option. Option values are decoded from JSON, so integers
// arrive as float64. Older registrations may still deliver a string.
func parseYear(options []*discordgo.ApplicationCommandInteractionDataOption) (int, error) {
	for _, opt := range options {
		if opt == nil || opt.Name != optionYear {
			continue
		}

		var year int
		switch v := opt.Value.(type) {
		case float64:
			if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
				return 0, fmt.Errorf("%w: %v", standings.ErrInvalidYear, v)
			}
			year = int(v)
		case string:
			parsed, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return 0, fmt.Errorf("%w: %q", standings.ErrInvalidYear, v)
			}
			year = parsed
		default:
			return 0, fmt.Errorf("%w: unexpected option type %T", standings.ErrInvalidYear, opt.Value)
		}

		if year < 1000 || year > 9999 {
			return 0, fmt.Errorf("%w: %d", standings.ErrInvalidYear, year)
		}

		return year, nil
	}

	return 0, fmt.Errorf("%w: missing %s option", standings.ErrInvalidYear, optionYear)
}
