package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"roamio/internal/engine"
	"roamio/internal/models/db_models"
	"roamio/internal/repositories"
	"roamio/pkg/memcache"
	"roamio/pkg/utils"
)

const (
	venueSearchLimit = 12
	geoContextTTL    = 15 * time.Minute
)

// GeoContextProvider turns a trip request into real-place enrichment for
// the generator. Implementations may fail; callers treat a failure as
// "no enrichment" rather than aborting generation.
type GeoContextProvider interface {
	BuildGeoContext(ctx context.Context, destination, prompt string, interests []string) (*engine.GeoContext, error)
}

type geoContextService struct {
	venueRepo       repositories.VenueRepository
	embeddingClient utils.EmbeddingClientInterface
	insightClient   utils.InsightClientInterface
	cache           memcache.Store
	logger          *zap.Logger
}

func NewGeoContextService(
	venueRepo repositories.VenueRepository,
	embeddingClient utils.EmbeddingClientInterface,
	insightClient utils.InsightClientInterface,
	cache memcache.Store,
	logger *zap.Logger,
) GeoContextProvider {
	return &geoContextService{
		venueRepo:       venueRepo,
		embeddingClient: embeddingClient,
		insightClient:   insightClient,
		cache:           cache,
		logger:          logger,
	}
}

func (s *geoContextService) BuildGeoContext(ctx context.Context, destination, prompt string, interests []string) (*engine.GeoContext, error) {
	query := searchText(destination, prompt, interests)
	if s.cache != nil {
		if cached, ok := s.cache.Get(query); ok {
			if geo, ok := cached.(*engine.GeoContext); ok {
				return geo, nil
			}
		}
	}

	venues, err := s.matchVenues(ctx, destination, query)
	if err != nil {
		return nil, err
	}
	if len(venues) == 0 {
		return nil, utils.ErrEnrichmentUnavailable
	}

	geo := &engine.GeoContext{Destination: destination}
	for _, v := range venues {
		switch v.Kind {
		case db_models.VenueKindRestaurant:
			geo.Restaurants = append(geo.Restaurants, engine.GeoRestaurant{
				Name:    v.Name,
				Cuisine: v.Cuisine,
				Cost:    v.Cost,
				BestFor: v.BestFor,
				Timing:  v.Timing,
				Area:    v.Area,
			})
		case db_models.VenueKindExperience:
			geo.Experiences = append(geo.Experiences, engine.GeoExperience{
				Name:     v.Name,
				Operator: v.Operator,
				Cost:     v.Cost,
				Duration: v.DurationHrs,
				Area:     v.Area,
			})
		case db_models.VenueKindAttraction:
			geo.Attractions = append(geo.Attractions, engine.GeoAttraction{
				Name:         v.Name,
				EntryFee:     v.EntryFee,
				AvgVisitTime: v.AvgVisitTime,
				Description:  v.Description,
				Area:         v.Area,
			})
		}
	}

	if s.insightClient != nil {
		summary, err := s.insightClient.DestinationSummary(ctx, destination, interests)
		if err != nil {
			// Insight text is decoration; the venues alone are worth keeping.
			s.logger.Warn("destination summary failed",
				zap.String("destination", destination),
				zap.Error(err))
		} else {
			geo.Summary = summary
		}
	}

	// Failed lookups are never cached.
	if s.cache != nil {
		s.cache.Set(query, geo, geoContextTTL)
	}
	return geo, nil
}

// matchVenues runs a semantic search over the venue embeddings, falling
// back to a plain destination lookup when embeddings are unavailable or
// nothing clears the similarity bar.
func (s *geoContextService) matchVenues(ctx context.Context, destination, query string) ([]db_models.Venue, error) {
	if s.embeddingClient != nil {
		vector, err := s.embeddingClient.GetEmbedding(ctx, query)
		if err != nil {
			s.logger.Warn("embedding lookup failed, falling back to destination match",
				zap.String("destination", destination),
				zap.Error(err))
		} else {
			venues, err := s.venueRepo.SearchVenuesByVector(ctx, vector, venueSearchLimit)
			if err != nil {
				return nil, fmt.Errorf("venue vector search: %w", err)
			}
			if len(venues) > 0 {
				return venues, nil
			}
		}
	}
	return s.venueRepo.ListVenuesByDestination(ctx, destination, venueSearchLimit)
}

func searchText(destination, prompt string, interests []string) string {
	var b strings.Builder
	b.WriteString("Trip to ")
	b.WriteString(destination)
	if len(interests) > 0 {
		b.WriteString(". Interests: ")
		b.WriteString(strings.Join(interests, ", "))
	}
	if strings.TrimSpace(prompt) != "" {
		b.WriteString(". ")
		b.WriteString(strings.TrimSpace(prompt))
	}
	return b.String()
}
