package standings

import "github.com/KirkDiggler/boxbox/internal/models"

// GetStandingsInput contains parameters for fetching standings
type GetStandingsInput struct {
	Kind models.StandingsKind
	Year int
}

// ergastResponse is the envelope of every Ergast API response
type ergastResponse struct {
	MRData struct {
		Series         string `json:"series"`
		Total          string `json:"total"`
		StandingsTable struct {
			Season         string               `json:"season"`
			StandingsLists []ergastStandingsList `json:"StandingsLists"`
		} `json:"StandingsTable"`
	} `json:"MRData"`
}

type ergastStandingsList struct {
	Season               string                      `json:"season"`
	Round                string                      `json:"round"`
	DriverStandings      []ergastDriverStanding      `json:"DriverStandings"`
	ConstructorStandings []ergastConstructorStanding `json:"ConstructorStandings"`
}

type ergastDriverStanding struct {
	Position     string              `json:"position"`
	PositionText string              `json:"positionText"`
	Points       string              `json:"points"`
	Wins         string              `json:"wins"`
	Driver       ergastDriver        `json:"Driver"`
	Constructors []ergastConstructor `json:"Constructors"`
}

type ergastConstructorStanding struct {
	Position     string            `json:"position"`
	PositionText string            `json:"positionText"`
	Points       string            `json:"points"`
	Wins         string            `json:"wins"`
	Constructor  ergastConstructor `json:"Constructor"`
}

type ergastDriver struct {
	DriverID        string `json:"driverId"`
	PermanentNumber string `json:"permanentNumber"`
	Code            string `json:"code"`
	GivenName       string `json:"givenName"`
	FamilyName      string `json:"familyName"`
	Nationality     string `json:"nationality"`
}

type ergastConstructor struct {
	ConstructorID string `json:"constructorId"`
	Name          string `json:"name"`
	Nationality   string `json:"nationality"`
}
