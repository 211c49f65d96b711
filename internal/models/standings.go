package models

import (
	"sort"
	"time"
)

// StandingsKind identifies which championship a standings list belongs to
type StandingsKind string

const (
	// StandingsKindDrivers is the drivers' championship
	StandingsKindDrivers StandingsKind = "drivers"

	// StandingsKindConstructors is the constructors' championship
	StandingsKindConstructors StandingsKind = "constructors"
)

// IsValid reports whether the kind is one we know how to fetch
func (k StandingsKind) IsValid() bool {
	return k == StandingsKindDrivers || k == StandingsKindConstructors
}

// DisplayName returns the singular label used in titles
func (k StandingsKind) DisplayName() string {
	switch k {
	case StandingsKindDrivers:
		return "Driver"
	case StandingsKindConstructors:
		return "Constructor"
	default:
		return "Unknown"
	}
}

// StandingsEntry is one ranked participant in a season
type StandingsEntry struct {
	// Position is the rank, starting at 1
	Position int

	// ID is the provider identifier (driverId or constructorId)
	ID string

	// Name is the driver's full name or the constructor name
	Name string

	// Code is the three letter driver abbreviation, if the provider has one
	Code string

	// Nationality of the driver or constructor
	Nationality string

	// Team is the constructor a driver finished the season with. Empty for constructors.
	Team string

	// Points scored in the season
	Points float64

	// Wins in the season
	Wins int
}

// StandingsList is an ordered set of entries for one season and kind
type StandingsList struct {
	// Kind of championship
	Kind StandingsKind

	// Season year
	Season int

	// Round is the last round included in the standings
	Round int

	// FetchedAt is when the data was received from the provider
	FetchedAt time.Time

	// Entries ordered by position
	Entries []*StandingsEntry
}

// NewStandingsList builds a list whose positions run 1..N with non-increasing points.
// Entries with equal points keep the order they were given in.
func NewStandingsList(kind StandingsKind, season, round int, entries []*StandingsEntry) *StandingsList {
	sorted := make([]*StandingsEntry, 0, len(entries))
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		copied := *entry
		sorted = append(sorted, &copied)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points > sorted[j].Points
	})

	for i, entry := range sorted {
		entry.Position = i + 1
	}

	return &StandingsList{
		Kind:    kind,
		Season:  season,
		Round:   round,
		Entries: sorted,
	}
}

// IsEmpty reports whether the list has nothing to show
func (l *StandingsList) IsEmpty() bool {
	return l == nil || len(l.Entries) == 0
}

// Leader returns the first entry or nil
func (l *StandingsList) Leader() *StandingsEntry {
	if l.IsEmpty() {
		return nil
	}
	return l.Entries[0]
}

// Top returns at most n entries from the top of the list
func (l *StandingsList) Top(n int) []*StandingsEntry {
	if l.IsEmpty() || n <= 0 {
		return nil
	}
	if n > len(l.Entries) {
		n = len(l.Entries)
	}
	return l.Entries[:n]
}
