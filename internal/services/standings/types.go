package standings

import (
	"github.com/KirkDiggler/boxbox/internal/common/clock"
	"github.com/KirkDiggler/boxbox/internal/models"
	standingsRepo "github.com/KirkDiggler/boxbox/internal/repositories/standings"
	"go.uber.org/zap"
)

const (
	// FirstDriversSeason is the first season of the drivers' championship
	FirstDriversSeason = 1950

	// FirstConstructorsSeason is the first season of the constructors' championship
	FirstConstructorsSeason = 1958

	// minYear and maxYear bound a well formed four digit year
	minYear = 1000
	maxYear = 9999
)

// Config holds configuration for the standings service
type Config struct {
	// Repository dependencies
	Repository standingsRepo.Repository

	// Service dependencies
	Clock clock.Clock

	// Logger, defaults to a no-op logger
	Logger *zap.Logger
}

// GetStandingsInput contains parameters for getting standings
type GetStandingsInput struct {
	Kind models.StandingsKind
	Year int
}

// GetStandingsOutput contains the result of getting standings
type GetStandingsOutput struct {
	List *models.StandingsList
}

// SupportedRangeInput contains parameters for getting the supported season range
type SupportedRangeInput struct {
	Kind models.StandingsKind
}

// SupportedRangeOutput contains the supported season range, both ends inclusive
type SupportedRangeOutput struct {
	FirstSeason int
	LastSeason  int
}
