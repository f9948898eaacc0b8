package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"roamio/cmd/fx/account_fx"
	"roamio/cmd/fx/catalog_fx"
	"roamio/cmd/fx/db_fx"
	"roamio/cmd/fx/geo_fx"
	"roamio/cmd/fx/itinerary_fx"
	"roamio/internal/api/controllers"
	"roamio/internal/infra"
	"roamio/pkg/logger"
	"roamio/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading config from environment")
	}

	app := fx.New(
		fx.Provide(logger.New),
		db_fx.Module,
		catalog_fx.Module,
		geo_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, zlog *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				zlog.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					zlog.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			zlog.Info("stopping HTTP server")
			infra.ClosePostgresql(db, zlog)
			return zlog.Sync()
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	itinerariesGroup := r.Group("/itineraries")
	itinerariesGroup.Use(middleware.JWTAuthMiddleware())
	itinerariesGroup.POST("/generate", itineraryController.GenerateItinerary)
	itinerariesGroup.GET("", itineraryController.ListItineraries)
	itinerariesGroup.GET("/:itineraryId", itineraryController.GetItinerary)
	itinerariesGroup.DELETE("/:itineraryId", itineraryController.DeleteItinerary)
}
