package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type StandingsListTestSuite struct {
	suite.Suite
}

func TestStandingsListTestSuite(t *testing.T) {
	suite.Run(t, new(StandingsListTestSuite))
}

func (s *StandingsListTestSuite) TestNewStandingsListRenumbersPositions() {
	entries := []*StandingsEntry{
		{Position: 1, Name: "Max Verstappen", Points: 575},
		{Position: 2, Name: "Sergio Pérez", Points: 285},
		{Position: 3, Name: "Lewis Hamilton", Points: 234},
	}

	list := NewStandingsList(StandingsKindDrivers, 2023, 22, entries)

	s.Require().Len(list.Entries, 3)
	for i, entry := range list.Entries {
		s.Equal(i+1, entry.Position)
	}
	s.Equal(2023, list.Season)
	s.Equal(22, list.Round)
	s.Equal(StandingsKindDrivers, list.Kind)
}

func (s *StandingsListTestSuite) TestNewStandingsListSortsOutOfOrderPoints() {
	// Disqualified drivers are listed last by the provider regardless of points
	entries := []*StandingsEntry{
		{Name: "Jacques Villeneuve", Points: 81},
		{Name: "Heinz-Harald Frentzen", Points: 42},
		{Name: "Michael Schumacher", Points: 78},
	}

	list := NewStandingsList(StandingsKindDrivers, 1997, 17, entries)

	s.Equal("Jacques Villeneuve", list.Entries[0].Name)
	s.Equal("Michael Schumacher", list.Entries[1].Name)
	s.Equal("Heinz-Harald Frentzen", list.Entries[2].Name)
	for i := 1; i < len(list.Entries); i++ {
		s.GreaterOrEqual(list.Entries[i-1].Points, list.Entries[i].Points)
	}
}

func (s *StandingsListTestSuite) TestNewStandingsListKeepsProviderOrderForTies() {
	entries := []*StandingsEntry{
		{Name: "A", Points: 10},
		{Name: "B", Points: 0},
		{Name: "C", Points: 0},
		{Name: "D", Points: 0},
	}

	list := NewStandingsList(StandingsKindConstructors, 1958, 11, entries)

	s.Equal([]string{"A", "B", "C", "D"}, names(list))
	s.Equal(4, list.Entries[3].Position)
}

func (s *StandingsListTestSuite) TestNewStandingsListDoesNotMutateInput() {
	entries := []*StandingsEntry{
		{Position: 7, Name: "B", Points: 1},
		{Position: 9, Name: "A", Points: 2},
	}

	list := NewStandingsList(StandingsKindDrivers, 2000, 1, entries)

	s.Equal(7, entries[0].Position)
	s.Equal(9, entries[1].Position)
	s.Equal([]string{"A", "B"}, names(list))
}

func (s *StandingsListTestSuite) TestNewStandingsListSkipsNilEntries() {
	list := NewStandingsList(StandingsKindDrivers, 2000, 1, []*StandingsEntry{nil, {Name: "A", Points: 1}})

	s.Require().Len(list.Entries, 1)
	s.Equal(1, list.Entries[0].Position)
}

func (s *StandingsListTestSuite) TestTopAndLeader() {
	list := NewStandingsList(StandingsKindDrivers, 2021, 22, []*StandingsEntry{
		{Name: "Max Verstappen", Points: 395.5},
		{Name: "Lewis Hamilton", Points: 387.5},
	})

	s.Equal("Max Verstappen", list.Leader().Name)
	s.Len(list.Top(1), 1)
	s.Len(list.Top(10), 2)
	s.Nil(list.Top(0))

	var empty *StandingsList
	s.True(empty.IsEmpty())
	s.Nil(empty.Leader())
	s.Nil(empty.Top(3))
}

func (s *StandingsListTestSuite) TestKind() {
	s.True(StandingsKindDrivers.IsValid())
	s.True(StandingsKindConstructors.IsValid())
	s.False(StandingsKind("teams").IsValid())
	s.Equal("Driver", StandingsKindDrivers.DisplayName())
	s.Equal("Constructor", StandingsKindConstructors.DisplayName())
}

func names(list *StandingsList) []string {
	out := make([]string, 0, len(list.Entries))
	for _, entry := range list.Entries {
		out = append(out, entry.Name)
	}
	return out
}
