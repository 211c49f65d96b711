package standings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/KirkDiggler/boxbox/internal/models"
	"go.uber.org/zap"
)

const (
	// pageLimit is the largest page the API serves
	pageLimit = 100

	// maxBodyBytes guards against a misbehaving provider
	maxBodyBytes = 4 << 20
)

// ErrDataUnavailable is returned when the provider cannot supply standings for a season
var ErrDataUnavailable = errors.New("standings data unavailable")

// Config holds configuration for the Ergast standings repository
type Config struct {
	// BaseURL of the Ergast compatible API, e.g. https://api.jolpi.ca/ergast/f1
	BaseURL string

	// HTTPClient used for requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Logger for request diagnostics
	Logger *zap.Logger
}

// ergastRepository implements the Repository interface over the Ergast HTTP API
type ergastRepository struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewErgast creates a new Ergast-backed standings repository
func NewErgast(cfg *Config) (*ergastRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ergastRepository{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  client,
		logger:  logger,
	}, nil
}

// GetStandings fetches the standings for a season with a single GET request
func (r *ergastRepository) GetStandings(ctx context.Context, input *GetStandingsInput) (*models.StandingsList, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	url, err := r.standingsURL(input)
	if err != nil {
		return nil, err
	}

	resp, err := r.get(ctx, url)
	if err != nil {
		return nil, err
	}

	tables := resp.MRData.StandingsTable.StandingsLists
	if len(tables) == 0 {
		return nil, fmt.Errorf("%w: no standings for %d", ErrDataUnavailable, input.Year)
	}
	table := tables[0]

	var entries []*models.StandingsEntry
	switch input.Kind {
	case models.StandingsKindDrivers:
		entries, err = driverEntries(table.DriverStandings)
	case models.StandingsKindConstructors:
		entries, err = constructorEntries(table.ConstructorStandings)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: empty %s standings for %d", ErrDataUnavailable, input.Kind, input.Year)
	}

	season := input.Year
	if parsed, err := strconv.Atoi(table.Season); err == nil {
		season = parsed
	}

	// Round is informational, a missing value is not worth failing over
	round, _ := strconv.Atoi(table.Round)

	return models.NewStandingsList(input.Kind, season, round, entries), nil
}

// standingsURL builds the endpoint for the requested kind and season
func (r *ergastRepository) standingsURL(input *GetStandingsInput) (string, error) {
	var resource string
	switch input.Kind {
	case models.StandingsKindDrivers:
		resource = "driverStandings"
	case models.StandingsKindConstructors:
		resource = "constructorStandings"
	default:
		return "", fmt.Errorf("unknown standings kind %q", input.Kind)
	}

	return fmt.Sprintf("%s/%d/%s.json?limit=%d", r.baseURL, input.Year, resource, pageLimit), nil
}

// get performs the request and decodes the response envelope
func (r *ergastRepository) get(ctx context.Context, url string) (*ergastResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	r.logger.Debug("Requesting standings", zap.String("url", url))

	res, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", ErrDataUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: provider returned status %d", ErrDataUnavailable, res.StatusCode)
	}

	var resp ergastResponse
	if err := json.NewDecoder(io.LimitReader(res.Body, maxBodyBytes)).Decode(&resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrDataUnavailable, err)
	}

	r.logger.Debug("Received standings",
		zap.String("url", url),
		zap.Int("status", res.StatusCode),
		zap.Int("lists", len(resp.MRData.StandingsTable.StandingsLists)))

	return &resp, nil
}

// driverEntries converts the provider's driver standings
func driverEntries(standings []ergastDriverStanding) ([]*models.StandingsEntry, error) {
	entries := make([]*models.StandingsEntry, 0, len(standings))
	for i, standing := range standings {
		points, err := parsePoints(standing.Points)
		if err != nil {
			return nil, fmt.Errorf("driver %s: %w", standing.Driver.DriverID, err)
		}

		name := strings.TrimSpace(standing.Driver.GivenName + " " + standing.Driver.FamilyName)
		if name == "" {
			name = standing.Driver.DriverID
		}

		// A driver can race for several teams in a season, the last one is where they finished
		team := ""
		if n := len(standing.Constructors); n > 0 {
			team = standing.Constructors[n-1].Name
		}

		entries = append(entries, &models.StandingsEntry{
			Position:    i + 1,
			ID:          standing.Driver.DriverID,
			Name:        name,
			Code:        standing.Driver.Code,
			Nationality: standing.Driver.Nationality,
			Team:        team,
			Points:      points,
			Wins:        parseWins(standing.Wins),
		})
	}

	return entries, nil
}

// constructorEntries converts the provider's constructor standings
func constructorEntries(standings []ergastConstructorStanding) ([]*models.StandingsEntry, error) {
	entries := make([]*models.StandingsEntry, 0, len(standings))
	for i, standing := range standings {
		points, err := parsePoints(standing.Points)
		if err != nil {
			return nil, fmt.Errorf("constructor %s: %w", standing.Constructor.ConstructorID, err)
		}

		name := standing.Constructor.Name
		if name == "" {
			name = standing.Constructor.ConstructorID
		}

		entries = append(entries, &models.StandingsEntry{
			Position:    i + 1,
			ID:          standing.Constructor.ConstructorID,
			Name:        name,
			Nationality: standing.Constructor.Nationality,
			Points:      points,
			Wins:        parseWins(standing.Wins),
		})
	}

	return entries, nil
}

func parsePoints(value string) (float64, error) {
	points, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid points %q", value)
	}
	if points < 0 {
		return 0, fmt.Errorf("negative points %q", value)
	}
	return points, nil
}

func parseWins(value string) int {
	wins, err := strconv.Atoi(value)
	if err != nil || wins < 0 {
		return 0
	}
	return wins
}
