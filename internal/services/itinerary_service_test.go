package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"roamio/internal/engine"
	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/pkg/utils"
)

type stubItineraryRepo struct {
	created   *db_models.Itinerary
	createErr error
	detail    *db_models.Itinerary
	detailErr error
	list      []db_models.Itinerary
	deleteErr error
}

func (s *stubItineraryRepo) CreateItinerary(_ context.Context, itinerary *db_models.Itinerary) (uuid.UUID, error) {
	if s.createErr != nil {
		return uuid.Nil, s.createErr
	}
	itinerary.ID = uuid.New()
	s.created = itinerary
	return itinerary.ID, nil
}

func (s *stubItineraryRepo) GetDetailsOfItineraryById(_ context.Context, _ string) (*db_models.Itinerary, error) {
	return s.detail, s.detailErr
}

func (s *stubItineraryRepo) GetListOfItinerariesByAccountId(_ context.Context, _, _ int, _ string) ([]db_models.Itinerary, error) {
	return s.list, nil
}

func (s *stubItineraryRepo) DeleteItinerary(_ context.Context, _ string, _ string) error {
	return s.deleteErr
}

type stubGeoProvider struct {
	geo    *engine.GeoContext
	err    error
	called bool
}

func (s *stubGeoProvider) BuildGeoContext(_ context.Context, _, _ string, _ []string) (*engine.GeoContext, error) {
	s.called = true
	return s.geo, s.err
}

func newTestService(repo *stubItineraryRepo, geo GeoContextProvider) ItineraryService {
	return NewItineraryService(repo, engine.NewGenerator(engine.LoadDefaultCatalog()), geo, zap.NewNop())
}

func validRequest() request_models.GenerateItineraryRequest {
	return request_models.GenerateItineraryRequest{
		Destination: "Jaipur",
		StartDate:   "2026-11-10",
		EndDate:     "2026-11-11",
		Travelers:   "2",
		Budget:      "40000",
		Interests:   []string{"history"},
	}
}

func TestCreateItineraryRejectsBadInput(t *testing.T) {
	svc := newTestService(&stubItineraryRepo{}, nil)
	accountID := uuid.New().String()

	req := validRequest()
	req.Destination = "   "
	_, err := svc.CreateItinerary(context.Background(), accountID, req)
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	req = validRequest()
	req.StartDate = "not-a-date"
	_, err = svc.CreateItinerary(context.Background(), accountID, req)
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	req = validRequest()
	req.StartDate = "2026-11-12"
	req.EndDate = "2026-11-10"
	_, err = svc.CreateItinerary(context.Background(), accountID, req)
	require.ErrorIs(t, err, utils.ErrInvalidDateRange)

	req = validRequest()
	req.StartDate = "2026-11-01"
	req.EndDate = "2026-12-05"
	_, err = svc.CreateItinerary(context.Background(), accountID, req)
	require.ErrorIs(t, err, utils.ErrTripTooLong)

	_, err = svc.CreateItinerary(context.Background(), "not-a-uuid", validRequest())
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestCreateItineraryPersistsGeneratedDays(t *testing.T) {
	repo := &stubItineraryRepo{}
	svc := newTestService(repo, nil)

	resp, err := svc.CreateItinerary(context.Background(), uuid.New().String(), validRequest())
	require.NoError(t, err)
	require.Len(t, resp.Days, 2)
	require.Equal(t, "2026-11-10", resp.StartDate)
	require.Equal(t, "2026-11-11", resp.EndDate)
	require.Equal(t, 2, resp.Travelers)

	require.NotNil(t, repo.created)
	require.Len(t, repo.created.Days, 2)
	require.Equal(t, resp.ID, repo.created.ID.String())
	for i, day := range repo.created.Days {
		require.Equal(t, i+1, day.DayNumber)
		require.Len(t, day.Activities, len(resp.Days[i].Activities))
	}
}

func TestCreateItineraryToleratesEnrichmentFailure(t *testing.T) {
	repo := &stubItineraryRepo{}
	geo := &stubGeoProvider{err: utils.ErrEnrichmentUnavailable}
	svc := newTestService(repo, geo)

	resp, err := svc.CreateItinerary(context.Background(), uuid.New().String(), validRequest())
	require.NoError(t, err)
	require.True(t, geo.called)
	require.Empty(t, resp.Summary)
	require.NotEmpty(t, resp.Days)
}

func TestCreateItineraryAttachesEnrichmentSummary(t *testing.T) {
	repo := &stubItineraryRepo{}
	geo := &stubGeoProvider{geo: &engine.GeoContext{
		Destination: "Jaipur",
		Summary:     "Visit between October and March.",
	}}
	svc := newTestService(repo, geo)

	resp, err := svc.CreateItinerary(context.Background(), uuid.New().String(), validRequest())
	require.NoError(t, err)
	require.Equal(t, "Visit between October and March.", resp.Summary)
	require.Equal(t, "Visit between October and March.", repo.created.Summary)
}

func TestCreateItinerarySkipEnrichment(t *testing.T) {
	geo := &stubGeoProvider{geo: &engine.GeoContext{Summary: "should not appear"}}
	svc := newTestService(&stubItineraryRepo{}, geo)

	req := validRequest()
	req.SkipEnrichment = true
	resp, err := svc.CreateItinerary(context.Background(), uuid.New().String(), req)
	require.NoError(t, err)
	require.False(t, geo.called)
	require.Empty(t, resp.Summary)
}

func TestCreateItineraryMapsRepositoryFailure(t *testing.T) {
	repo := &stubItineraryRepo{createErr: gorm.ErrInvalidDB}
	svc := newTestService(repo, nil)

	_, err := svc.CreateItinerary(context.Background(), uuid.New().String(), validRequest())
	require.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestGetItineraryEnforcesOwnership(t *testing.T) {
	owner := uuid.New()
	record := &db_models.Itinerary{
		AccountID:   owner,
		Destination: "Goa",
		Interests:   []byte(`["beach"]`),
	}
	record.ID = uuid.New()
	repo := &stubItineraryRepo{detail: record}
	svc := newTestService(repo, nil)

	resp, err := svc.GetItineraryById(context.Background(), owner.String(), record.ID.String())
	require.NoError(t, err)
	require.Equal(t, "Goa", resp.Destination)
	require.Equal(t, []string{"beach"}, resp.Interests)

	_, err = svc.GetItineraryById(context.Background(), uuid.New().String(), record.ID.String())
	require.ErrorIs(t, err, utils.ErrItineraryNotFound)
}

func TestGetItineraryNotFound(t *testing.T) {
	svc := newTestService(&stubItineraryRepo{}, nil)

	_, err := svc.GetItineraryById(context.Background(), uuid.New().String(), uuid.New().String())
	require.ErrorIs(t, err, utils.ErrItineraryNotFound)

	_, err = svc.GetItineraryById(context.Background(), uuid.New().String(), "garbage")
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGetItinerariesByAccountValidatesPaging(t *testing.T) {
	svc := newTestService(&stubItineraryRepo{}, nil)
	accountID := uuid.New().String()

	_, err := svc.GetItinerariesByAccount(context.Background(), accountID, 0, 10)
	require.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = svc.GetItinerariesByAccount(context.Background(), accountID, 1, 0)
	require.ErrorIs(t, err, utils.ErrInvalidPageSize)

	_, err = svc.GetItinerariesByAccount(context.Background(), accountID, 1, 101)
	require.ErrorIs(t, err, utils.ErrInvalidPageSize)
}

func TestGetItinerariesByAccountMapsListItems(t *testing.T) {
	record := db_models.Itinerary{
		Destination: "Kerala",
		StartDate:   1762732800, // 2025-11-10 UTC
		EndDate:     1762905600,
		Budget:      30000,
		Days:        []db_models.ItineraryDayRecord{{DayNumber: 1}, {DayNumber: 2}, {DayNumber: 3}},
	}
	record.ID = uuid.New()
	svc := newTestService(&stubItineraryRepo{list: []db_models.Itinerary{record}}, nil)

	items, err := svc.GetItinerariesByAccount(context.Background(), uuid.New().String(), 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Kerala", items[0].Destination)
	require.Equal(t, "2025-11-10", items[0].StartDate)
	require.Equal(t, 3, items[0].DayCount)
}

func TestDeleteItinerary(t *testing.T) {
	svc := newTestService(&stubItineraryRepo{}, nil)
	require.NoError(t, svc.DeleteItinerary(context.Background(), uuid.New().String(), uuid.New().String()))

	svc = newTestService(&stubItineraryRepo{deleteErr: gorm.ErrRecordNotFound}, nil)
	err := svc.DeleteItinerary(context.Background(), uuid.New().String(), uuid.New().String())
	require.ErrorIs(t, err, utils.ErrItineraryNotFound)

	err = svc.DeleteItinerary(context.Background(), uuid.New().String(), "garbage")
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}
