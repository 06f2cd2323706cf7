// Package logger builds the structured zap logger used across the service.
package logger

import (
	"os"

	"go.uber.org/zap"
)

// New returns a production logger, or a development logger when APP_ENV
// is set to "development".
func New() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
