package standings

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/boxbox/internal/common/clock/mocks"
	"github.com/KirkDiggler/boxbox/internal/models"
	standingsRepo "github.com/KirkDiggler/boxbox/internal/repositories/standings"
	repoMocks "github.com/KirkDiggler/boxbox/internal/repositories/standings/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StandingsServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRepo  *repoMocks.MockRepository
	mockClock *mocks.MockClock
	service   Service
	ctx       context.Context

	// Test data
	testTime    time.Time
	driversList *models.StandingsList
}

func TestStandingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StandingsServiceTestSuite))
}

func (s *StandingsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2024, 7, 21, 15, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.driversList = &models.StandingsList{
		Kind:   models.StandingsKindDrivers,
		Season: 2023,
		Round:  22,
		Entries: []*models.StandingsEntry{
			{Position: 1, Name: "Max Verstappen", Team: "Red Bull", Points: 575},
			{Position: 2, Name: "Sergio Pérez", Team: "Red Bull", Points: 285},
			{Position: 3, Name: "Lewis Hamilton", Team: "Mercedes", Points: 234},
		},
	}

	svc, err := New(&Config{
		Repository: s.mockRepo,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *StandingsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *StandingsServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock})
	s.ErrorIs(err, ErrNilRepository)

	_, err = New(&Config{Repository: s.mockRepo})
	s.ErrorIs(err, ErrNilClock)
}

func (s *StandingsServiceTestSuite) TestGetStandingsSuccess() {
	s.mockRepo.EXPECT().
		GetStandings(gomock.Any(), &standingsRepo.GetStandingsInput{
			Kind: models.StandingsKindDrivers,
			Year: 2023,
		}).
		Return(s.driversList, nil).
		Times(1)

	output, err := s.service.GetStandings(s.ctx, &GetStandingsInput{
		Kind: models.StandingsKindDrivers,
		Year: 2023,
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.List)

	list := output.List
	s.Equal(models.StandingsKindDrivers, list.Kind)
	s.Equal(2023, list.Season)
	s.Equal(22, list.Round)
	s.Equal(s.testTime, list.FetchedAt)
	s.Require().Len(list.Entries, 3)
	for i, entry := range list.Entries {
		s.Equal(i+1, entry.Position)
		if i > 0 {
			s.GreaterOrEqual(list.Entries[i-1].Points, entry.Points)
		}
	}
}

func (s *StandingsServiceTestSuite) TestGetStandingsNormalizesRepositoryOrder() {
	s.mockRepo.EXPECT().
		GetStandings(gomock.Any(), gomock.Any()).
		Return(&models.StandingsList{
			Kind:   models.StandingsKindDrivers,
			Season: 1997,
			Entries: []*models.StandingsEntry{
				{Position: 1, Name: "Jacques Villeneuve", Points: 81},
				{Position: 2, Name: "Heinz-Harald Frentzen", Points: 42},
				{Position: 3, Name: "Michael Schumacher", Points: 78},
			},
		}, nil)

	output, err := s.service.GetStandings(s.ctx, &GetStandingsInput{
		Kind: models.StandingsKindDrivers,
		Year: 1997,
	})
	s.Require().NoError(err)
	s.Equal("Michael Schumacher", output.List.Entries[1].Name)
	s.Equal(2, output.List.Entries[1].Position)
}

func (s *StandingsServiceTestSuite) TestGetStandingsInvalidYear() {
	for _, year := range []int{0, -2023, 999, 10000, 20231} {
		s.Run(fmt.Sprintf("year %d", year), func() {
			_, err := s.service.GetStandings(s.ctx, &GetStandingsInput{
				Kind: models.StandingsKindDrivers,
				Year: year,
			})
			s.ErrorIs(err, ErrInvalidYear)
		})
	}
}

func (s *StandingsServiceTestSuite) TestGetStandingsInvalidKind() {
	_, err := s.service.GetStandings(s.ctx, &GetStandingsInput{
		Kind: "teams",
		Year: 2023,
	})
	s.ErrorIs(err, ErrInvalidKind)
}

func (s *StandingsServiceTestSuite) TestGetStandingsBeforeChampionshipMakesNoCall() {
	// No repository expectations: gomock fails the test on any call
	_, err := s.service.GetStandings(s.ctx, &GetStandingsInput{
		Kind: models.StandingsKindConstructors,
		Year: 1899,
	})
	s.ErrorIs(err, ErrDataUnavailable)

	_, err = s.service.GetStandings(s.ctx, &GetStandingsInput{
		Kind: models.StandingsKindConstructors,
		Year: 1957,
	})
	s.ErrorIs(err, ErrDataUnavailable)

	_, err = s.service.GetStandings(s.ctx, &GetStandingsInput{
		Kind: models.StandingsKindDrivers,
		Year: 1949,
	})
	s.ErrorIs(err, ErrDataUnavailable)
}

func (s *StandingsServiceTestSuite) TestGetStandingsFutureSeasonMakesNoCall() {
	_, err := s.service.GetStandings(s.ctx, &GetStandingsInput{
		Kind: models.StandingsKindDrivers,
		Year: 2025,
	})
	s.ErrorIs(err, ErrDataUnavailable)
}

func (s *StandingsServiceTestSuite) TestGetStandingsFirstSeasons() {
	s.mockRepo.EXPECT().
		GetStandings(gomock.Any(), &standingsRepo.GetStandingsInput{Kind: models.StandingsKindDrivers, Year: 1950}).
		Return(s.driversList, nil)
	s.mockRepo.EXPECT().
		GetStandings(gomock.Any(), &standingsRepo.GetStandingsInput{Kind: models.StandingsKindConstructors, Year: 1958}).
		Return(&models.StandingsList{Entries: []*models.StandingsEntry{{Name: "Vanwall", Points: 48}}}, nil)

	_, err := s.service.GetStandings(s.ctx, &GetStandingsInput{Kind: models.StandingsKindDrivers, Year: 1950})
	s.NoError(err)

	output, err := s.service.GetStandings(s.ctx, &GetStandingsInput{Kind: models.StandingsKindConstructors, Year: 1958})
	s.Require().NoError(err)
	s.Equal(models.StandingsKindConstructors, output.List.Kind)
	s.Equal(1958, output.List.Season)
}

func (s *StandingsServiceTestSuite) TestGetStandingsRepositoryUnavailable() {
	s.mockRepo.EXPECT().
		GetStandings(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: provider returned status 404", standingsRepo.ErrDataUnavailable))

	_, err := s.service.GetStandings(s.ctx, &GetStandingsInput{
		Kind: models.StandingsKindDrivers,
		Year: 2024,
	})
	s.ErrorIs(err, ErrDataUnavailable)
	s.Contains(err.Error(), "404")
}

func (s *StandingsServiceTestSuite) TestGetStandingsRepositoryEmptyList() {
	s.mockRepo.EXPECT().
		GetStandings(gomock.Any(), gomock.Any()).
		Return(&models.StandingsList{}, nil)

	_, err := s.service.GetStandings(s.ctx, &GetStandingsInput{
		Kind: models.StandingsKindDrivers,
		Year: 2024,
	})
	s.ErrorIs(err, ErrDataUnavailable)
}

func (s *StandingsServiceTestSuite) TestGetStandingsUnexpectedError() {
	boom := errors.New("boom")
	s.mockRepo.EXPECT().
		GetStandings(gomock.Any(), gomock.Any()).
		Return(nil, boom)

	_, err := s.service.GetStandings(s.ctx, &GetStandingsInput{
		Kind: models.StandingsKindDrivers,
		Year: 2023,
	})
	s.ErrorIs(err, boom)
	s.NotErrorIs(err, ErrDataUnavailable)
}

func (s *StandingsServiceTestSuite) TestGetStandingsPassesContext() {
	type ctxKey struct{}
	ctx := context.WithValue(s.ctx, ctxKey{}, "invocation")

	s.mockRepo.EXPECT().
		GetStandings(gomock.Any(), gomock.Any()).
		DoAndReturn(func(got context.Context, _ *standingsRepo.GetStandingsInput) (*models.StandingsList, error) {
			s.Equal("invocation", got.Value(ctxKey{}))
			return s.driversList, nil
		})

	_, err := s.service.GetStandings(ctx, &GetStandingsInput{Kind: models.StandingsKindDrivers, Year: 2023})
	s.NoError(err)
}

func (s *StandingsServiceTestSuite) TestSupportedRange() {
	drivers, err := s.service.SupportedRange(&SupportedRangeInput{Kind: models.StandingsKindDrivers})
	s.Require().NoError(err)
	s.Equal(FirstDriversSeason, drivers.FirstSeason)
	s.Equal(2024, drivers.LastSeason)

	constructors, err := s.service.SupportedRange(&SupportedRangeInput{Kind: models.StandingsKindConstructors})
	s.Require().NoError(err)
	s.Equal(FirstConstructorsSeason, constructors.FirstSeason)
	s.Equal(2024, constructors.LastSeason)

	_, err = s.service.SupportedRange(&SupportedRangeInput{Kind: "teams"})
	s.ErrorIs(err, ErrInvalidKind)
}
