package log

import "go.uber.org/zap"

var Logger *zap.Logger

func EnsureLogger(env string) {
	if env == "production" || env == "prod" {
		Logger, _ = zap.NewProduction()
	} else {
		Logger, _ = zap.NewDevelopment()
	}
	defer Logger.Sync()
}
