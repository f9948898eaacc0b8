package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"roamio/internal/api/controllers"
	"roamio/internal/engine"
	"roamio/internal/repositories"
	"roamio/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo, provideItineraryService, provideItineraryController)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	generator *engine.Generator,
	geoProvider services.GeoContextProvider,
	logger *zap.Logger,
) services.ItineraryService {
	return services.NewItineraryService(itineraryRepo, generator, geoProvider, logger)
}

func provideItineraryController(itineraryService services.ItineraryService, logger *zap.Logger) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService, logger)
}
