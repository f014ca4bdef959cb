package logging

import "go.uber.org/zap"

// New creates a zap logger for the given environment. "production" gets the
// JSON production logger, "development" the console logger, anything else the
// example logger used for local runs and tests.
func New(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "development":
		return zap.NewDevelopment()
	default:
		return zap.NewExample(), nil
	}
}
