package geo_fx

import (
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"roamio/internal/repositories"
	"roamio/internal/services"
	"roamio/pkg/memcache"
	"roamio/pkg/utils"
)

var Module = fx.Provide(
	ProvideEmbeddingClient,
	ProvideInsightClient,
	provideVenueRepo,
	provideGeoCache,
	provideGeoContextService)

// EmbeddingConfig holds configuration for embedding clients.
type EmbeddingConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideEmbeddingClient builds an embedding client from environment
// variables. A missing API key yields a nil client: enrichment then falls
// back to plain destination matching instead of blocking startup.
func ProvideEmbeddingClient(logger *zap.Logger) utils.EmbeddingClientInterface {
	config := getEmbeddingConfig()
	if config.APIKey == "" {
		logger.Warn("no embedding API key configured, semantic venue search disabled",
			zap.String("provider", config.Provider))
		return nil
	}

	logger.Info("initializing embedding client",
		zap.String("provider", config.Provider),
		zap.String("model", config.Model))

	client, err := utils.NewEmbeddingClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		logger.Warn("embedding client init failed, semantic venue search disabled", zap.Error(err))
		return nil
	}
	return client
}

// ProvideInsightClient builds the destination-summary client. Optional:
// without a Gemini key itineraries simply ship without a summary.
func ProvideInsightClient(logger *zap.Logger) utils.InsightClientInterface {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY not set, destination summaries disabled")
		return nil
	}

	client, err := utils.NewGeminiInsightClient(apiKey, getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash"))
	if err != nil {
		logger.Warn("insight client init failed, destination summaries disabled", zap.Error(err))
		return nil
	}
	return client
}

func provideVenueRepo(db *gorm.DB) repositories.VenueRepository {
	return repositories.NewVenueRepository(db)
}

func provideGeoCache() memcache.Store {
	return memcache.NewTTLStore()
}

func provideGeoContextService(
	venueRepo repositories.VenueRepository,
	embeddingClient utils.EmbeddingClientInterface,
	insightClient utils.InsightClientInterface,
	cache memcache.Store,
	logger *zap.Logger,
) services.GeoContextProvider {
	return services.NewGeoContextService(venueRepo, embeddingClient, insightClient, cache, logger)
}

func getEmbeddingConfig() EmbeddingConfig {
	provider := getEnvWithDefault("EMBEDDING_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "text-embedding-3-small")
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "text-embedding-004")
	}

	return EmbeddingConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
