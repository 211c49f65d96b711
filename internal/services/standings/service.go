package standings

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/boxbox/internal/common/clock"
	"github.com/KirkDiggler/boxbox/internal/models"
	standingsRepo "github.com/KirkDiggler/boxbox/internal/repositories/standings"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	repository standingsRepo.Repository
	clock      clock.Clock
	logger     *zap.Logger
}

// New creates a new standings service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		repository: cfg.Repository,
		clock:      cfg.Clock,
		logger:     logger,
	}, nil
}

// GetStandings validates the request, fetches the season and stamps the fetch time
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !input.Kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, input.Kind)
	}

	if input.Year < minYear || input.Year > maxYear {
		return nil, fmt.Errorf("%w: %d", ErrInvalidYear, input.Year)
	}

	// Seasons outside the championship's history have no data, skip the round trip
	seasons := s.supportedRange(input.Kind)
	if input.Year < seasons.FirstSeason || input.Year > seasons.LastSeason {
		s.logger.Debug("Season outside supported range",
			zap.String("kind", string(input.Kind)),
			zap.Int("year", input.Year),
			zap.Int("first_season", seasons.FirstSeason),
			zap.Int("last_season", seasons.LastSeason))
		return nil, fmt.Errorf("%w: %d is outside %d-%d", ErrDataUnavailable, input.Year, seasons.FirstSeason, seasons.LastSeason)
	}

	list, err := s.repository.GetStandings(ctx, &standingsRepo.GetStandingsInput{
		Kind: input.Kind,
		Year: input.Year,
	})
	if err != nil {
		if errors.Is(err, standingsRepo.ErrDataUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
		}
		return nil, fmt.Errorf("failed to get %s standings for %d: %w", input.Kind, input.Year, err)
	}

	if list.IsEmpty() {
		return nil, fmt.Errorf("%w: %d", ErrDataUnavailable, input.Year)
	}

	// Re-establish the ordering invariants whatever the repository returned
	normalized := models.NewStandingsList(input.Kind, input.Year, list.Round, list.Entries)
	normalized.FetchedAt = s.clock.Now()

	return &GetStandingsOutput{
		List: normalized,
	}, nil
}

// SupportedRange returns the seasons available for a kind
func (s *service) SupportedRange(input *SupportedRangeInput) (*SupportedRangeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !input.Kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, input.Kind)
	}

	return s.supportedRange(input.Kind), nil
}

func (s *service) supportedRange(kind models.StandingsKind) *SupportedRangeOutput {
	first := FirstDriversSeason
	if kind == models.StandingsKindConstructors {
		first = FirstConstructorsSeason
	}

	return &SupportedRangeOutput{
		FirstSeason: first,
		LastSeason:  s.clock.Now().Year(),
	}
}
