package standings

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/boxbox/internal/services/standings Service

// Service defines the interface for standings operations
type Service interface {
	// GetStandings returns the standings of one kind for one season
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)

	// SupportedRange returns the first and last season the service can serve for a kind
	SupportedRange(input *SupportedRangeInput) (*SupportedRangeOutput, error)
}
