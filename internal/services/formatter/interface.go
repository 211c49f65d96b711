package formatter

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/boxbox/internal/services/formatter Service

// Service turns standings into chat replies
type Service interface {
	// FormatStandings builds the embed and optional chart for a standings list
	FormatStandings(input *FormatStandingsInput) (*FormatStandingsOutput, error)
}
