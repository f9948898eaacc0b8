package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"roamio/internal/engine"
	"roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

const (
	maxTripDays = 30
	maxPageSize = 100
	isoDate     = "2006-01-02"
)

type ItineraryService interface {
	CreateItinerary(ctx context.Context, accountID string, req request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error)
	GetItineraryById(ctx context.Context, accountID string, itineraryID string) (*response_models.ItineraryResponse, error)
	GetItinerariesByAccount(ctx context.Context, accountID string, page, pageSize int) ([]response_models.ItineraryListItem, error)
	DeleteItinerary(ctx context.Context, accountID string, itineraryID string) error
}

type itineraryService struct {
	repo      repositories.ItineraryRepository
	generator *engine.Generator
	geo       GeoContextProvider
	logger    *zap.Logger
}

func NewItineraryService(
	repo repositories.ItineraryRepository,
	generator *engine.Generator,
	geo GeoContextProvider,
	logger *zap.Logger,
) ItineraryService {
	return &itineraryService{
		repo:      repo,
		generator: generator,
		geo:       geo,
		logger:    logger,
	}
}

// CreateItinerary validates the raw request, optionally enriches it with
// real venue data, runs the generator and persists the result. Enrichment
// failures degrade to catalog-only generation.
func (s *itineraryService) CreateItinerary(ctx context.Context, accountID string, req request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error) {
	trip, err := buildTripRequest(req)
	if err != nil {
		return nil, err
	}

	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	var geo *engine.GeoContext
	if s.geo != nil && !req.SkipEnrichment {
		geo, err = s.geo.BuildGeoContext(ctx, trip.Destination, trip.Prompt, trip.Interests)
		if err != nil {
			s.logger.Warn("geo enrichment unavailable, generating from catalog only",
				zap.String("destination", trip.Destination),
				zap.Error(err))
			geo = nil
		}
	}

	generated := s.generator.Generate(trip, geo)

	record, err := toItineraryRecord(accountUUID, generated)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.CreateItinerary(ctx, record); err != nil {
		s.logger.Error("failed to persist itinerary",
			zap.String("account_id", accountID),
			zap.String("destination", trip.Destination),
			zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	s.logger.Info("itinerary generated",
		zap.String("itinerary_id", record.ID.String()),
		zap.String("destination", trip.Destination),
		zap.Int("days", len(generated.Days)))

	resp := toItineraryResponse(record, generated)
	return &resp, nil
}

func (s *itineraryService) GetItineraryById(ctx context.Context, accountID string, itineraryID string) (*response_models.ItineraryResponse, error) {
	if _, err := uuid.Parse(itineraryID); err != nil {
		return nil, utils.ErrInvalidInput
	}

	record, err := s.repo.GetDetailsOfItineraryById(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil || record.AccountID.String() != accountID {
		return nil, utils.ErrItineraryNotFound
	}

	resp := recordToResponse(record)
	return &resp, nil
}

func (s *itineraryService) GetItinerariesByAccount(ctx context.Context, accountID string, page, pageSize int) ([]response_models.ItineraryListItem, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return nil, utils.ErrInvalidPageSize
	}

	records, err := s.repo.GetListOfItinerariesByAccountId(ctx, page, pageSize, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	items := make([]response_models.ItineraryListItem, 0, len(records))
	for _, r := range records {
		items = append(items, response_models.ItineraryListItem{
			ID:          r.ID.String(),
			Destination: r.Destination,
			StartDate:   time.Unix(r.StartDate, 0).UTC().Format(isoDate),
			EndDate:     time.Unix(r.EndDate, 0).UTC().Format(isoDate),
			Budget:      r.Budget,
			DayCount:    len(r.Days),
		})
	}
	return items, nil
}

func (s *itineraryService) DeleteItinerary(ctx context.Context, accountID string, itineraryID string) error {
	if _, err := uuid.Parse(itineraryID); err != nil {
		return utils.ErrInvalidInput
	}

	err := s.repo.DeleteItinerary(ctx, itineraryID, accountID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrItineraryNotFound
	}
	if err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func buildTripRequest(req request_models.GenerateItineraryRequest) (engine.TripRequest, error) {
	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		return engine.TripRequest{}, utils.ErrInvalidInput
	}

	start, err := utils.ParseISODate(req.StartDate)
	if err != nil {
		return engine.TripRequest{}, utils.ErrInvalidInput
	}
	end, err := utils.ParseISODate(req.EndDate)
	if err != nil {
		return engine.TripRequest{}, utils.ErrInvalidInput
	}
	if end.Before(start) {
		return engine.TripRequest{}, utils.ErrInvalidDateRange
	}
	if int(end.Sub(start).Hours()/24)+1 > maxTripDays {
		return engine.TripRequest{}, utils.ErrTripTooLong
	}

	return engine.TripRequest{
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		Travelers:   utils.ParseIntOrDefault(req.Travelers, 0),
		Budget:      utils.ParseFloatOrDefault(req.Budget, 0),
		Interests:   req.Interests,
		Prompt:      req.Prompt,
		StayArea:    req.StayArea,
	}, nil
}

func toItineraryRecord(accountID uuid.UUID, generated engine.GeneratedItinerary) (*db_models.Itinerary, error) {
	interests, err := json.Marshal(generated.Interests)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	record := &db_models.Itinerary{
		AccountID:   accountID,
		Destination: generated.Destination,
		StartDate:   generated.StartDate.Unix(),
		EndDate:     generated.EndDate.Unix(),
		Budget:      generated.Budget,
		Travelers:   generated.Travelers,
		Interests:   interests,
		Summary:     generated.Summary,
	}
	for _, day := range generated.Days {
		dayRecord := db_models.ItineraryDayRecord{
			DayNumber: day.Day,
			Date:      day.Date,
			Title:     day.Title,
			Stay:      day.Stay,
		}
		for _, a := range day.Activities {
			dayRecord.Activities = append(dayRecord.Activities, db_models.ItineraryActivityRecord{
				Name:        a.Name,
				Description: a.Description,
				Category:    string(a.Category),
				Cost:        a.Cost,
				Duration:    a.Duration,
				StartTime:   a.StartTime,
				EndTime:     a.EndTime,
				Position:    a.Order,
				ImageURL:    a.ImageURL,
				Location:    a.Location,
				GeoSpecific: a.GeoSpecific,
			})
		}
		record.Days = append(record.Days, dayRecord)
	}
	return record, nil
}

// toItineraryResponse builds the create response straight from the
// generator output, sparing a read-back of what was just written.
func toItineraryResponse(record *db_models.Itinerary, generated engine.GeneratedItinerary) response_models.ItineraryResponse {
	resp := response_models.ItineraryResponse{
		ID:          record.ID.String(),
		Destination: generated.Destination,
		StartDate:   generated.StartDate.Format(isoDate),
		EndDate:     generated.EndDate.Format(isoDate),
		Budget:      generated.Budget,
		Travelers:   generated.Travelers,
		Interests:   generated.Interests,
		Summary:     generated.Summary,
	}
	for _, day := range generated.Days {
		dayResp := response_models.ItineraryDayResponse{
			Day:        day.Day,
			Date:       day.Date.Format(isoDate),
			Title:      day.Title,
			Stay:       day.Stay,
			Activities: make([]response_models.ScheduledActivityResponse, 0, len(day.Activities)),
		}
		for _, a := range day.Activities {
			dayResp.Activities = append(dayResp.Activities, response_models.ScheduledActivityResponse{
				Name:        a.Name,
				Description: a.Description,
				Category:    string(a.Category),
				Cost:        a.Cost,
				Duration:    a.Duration,
				StartTime:   a.StartTime,
				EndTime:     a.EndTime,
				Order:       a.Order,
				ImageURL:    a.ImageURL,
				Location:    a.Location,
				GeoSpecific: a.GeoSpecific,
			})
		}
		resp.Days = append(resp.Days, dayResp)
	}
	return resp
}

func recordToResponse(record *db_models.Itinerary) response_models.ItineraryResponse {
	var interests []string
	_ = json.Unmarshal(record.Interests, &interests)

	resp := response_models.ItineraryResponse{
		ID:          record.ID.String(),
		Destination: record.Destination,
		StartDate:   time.Unix(record.StartDate, 0).UTC().Format(isoDate),
		EndDate:     time.Unix(record.EndDate, 0).UTC().Format(isoDate),
		Budget:      record.Budget,
		Travelers:   record.Travelers,
		Interests:   interests,
		Summary:     record.Summary,
	}
	for _, day := range record.Days {
		dayResp := response_models.ItineraryDayResponse{
			Day:        day.DayNumber,
			Date:       day.Date.Format(isoDate),
			Title:      day.Title,
			Stay:       day.Stay,
			Activities: make([]response_models.ScheduledActivityResponse, 0, len(day.Activities)),
		}
		for _, a := range day.Activities {
			dayResp.Activities = append(dayResp.Activities, response_models.ScheduledActivityResponse{
				Name:        a.Name,
				Description: a.Description,
				Category:    a.Category,
				Cost:        a.Cost,
				Duration:    a.Duration,
				StartTime:   a.StartTime,
				EndTime:     a.EndTime,
				Order:       a.Position,
				ImageURL:    a.ImageURL,
				Location:    a.Location,
				GeoSpecific: a.GeoSpecific,
			})
		}
		resp.Days = append(resp.Days, dayResp)
	}
	return resp
}
