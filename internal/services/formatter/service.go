package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/boxbox/internal/chart"
	"github.com/KirkDiggler/boxbox/internal/models"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

var medals = []string{"🥇", "🥈", "🥉"}

// service implements the Service interface
type service struct {
	renderer chart.Renderer
	maxRows  int
	logger   *zap.Logger
}

// New creates a new formatter service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	maxRows := cfg.MaxRows
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		renderer: cfg.Renderer,
		maxRows:  maxRows,
		logger:   logger,
	}, nil
}

// FormatStandings builds the reply for a standings list. The list is not modified.
func (s *service) FormatStandings(input *FormatStandingsInput) (*FormatStandingsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	list := input.List
	if list.IsEmpty() {
		return nil, ErrEmptyStandings
	}

	embed := &discordgo.MessageEmbed{
		Title:       Title(list),
		Description: s.description(list),
		Color:       AccentColor,
		Fields:      podiumFields(list),
		Footer: &discordgo.MessageEmbedFooter{
			Text: Footer,
		},
	}

	if !list.FetchedAt.IsZero() {
		embed.Timestamp = list.FetchedAt.UTC().Format(time.RFC3339)
	}

	output := &FormatStandingsOutput{
		Embed: embed,
	}

	if s.renderer == nil {
		return output, nil
	}

	data, err := s.renderer.Render(list)
	if err != nil {
		// The table already carries everything, send it without the picture
		s.logger.Warn("Failed to render standings chart",
			zap.String("kind", string(list.Kind)),
			zap.Int("season", list.Season),
			zap.Error(err))
		return output, nil
	}

	name := chartFileName(list.Kind)
	output.Chart = &Attachment{
		Name:        name,
		ContentType: "image/png",
		Data:        data,
	}
	embed.Image = &discordgo.MessageEmbedImage{
		URL: "attachment://" + name,
	}

	return output, nil
}

// Title names the kind and season of a standings list
func Title(list *models.StandingsList) string {
	icon := "🏎️"
	if list.Kind == models.StandingsKindConstructors {
		icon = "🏁"
	}
	return fmt.Sprintf("%s %d Formula 1 %s Standings", icon, list.Season, list.Kind.DisplayName())
}

func (s *service) description(list *models.StandingsList) string {
	var b strings.Builder

	if list.Round > 0 {
		fmt.Fprintf(&b, "Points standings after round %d of the %d season\n", list.Round, list.Season)
	} else {
		fmt.Fprintf(&b, "Points standings for the %d season\n", list.Season)
	}

	b.WriteString("```\n")
	b.WriteString(RenderTable(list, s.maxRows))
	b.WriteString("\n```")

	if hidden := len(list.Entries) - s.maxRows; hidden > 0 {
		fmt.Fprintf(&b, "\n…and %d more", hidden)
	}

	return b.String()
}

// podiumFields highlights the top three like a podium ceremony
func podiumFields(list *models.StandingsList) []*discordgo.MessageEmbedField {
	top := list.Top(len(medals))
	fields := make([]*discordgo.MessageEmbedField, 0, len(top))

	for i, entry := range top {
		value := fmt.Sprintf("**%s points**", FormatPoints(entry.Points))
		if entry.Team != "" {
			value += fmt.Sprintf(" (%s)", entry.Team)
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s #%d %s", medals[i], entry.Position, entry.Name),
			Value:  value,
			Inline: true,
		})
	}

	return fields
}

// FormatPoints prints points without trailing zeros, 25 or 0.5
func FormatPoints(points float64) string {
	return strconv.FormatFloat(points, 'f', -1, 64)
}

func chartFileName(kind models.StandingsKind) string {
	if kind == models.StandingsKindConstructors {
		return "team_standings.png"
	}
	return "driver_standings.png"
}
