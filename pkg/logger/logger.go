package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the process logger. Development mode gives human-readable
// output when APP_ENV=dev; everything else runs the production encoder.
func New() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
