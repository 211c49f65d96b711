package standings

import (
	"context"

	"github.com/KirkDiggler/boxbox/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/boxbox/internal/repositories/standings Repository

// Repository defines the interface for reading season standings from a data provider
type Repository interface {
	// GetStandings fetches the standings of one kind for one season
	GetStandings(ctx context.Context, input *GetStandingsInput) (*models.StandingsList, error)
}
