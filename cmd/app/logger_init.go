package main

import (
	"github.com/lkacz/PersonalFreedom-sub001/internal/config"
	"github.com/lkacz/PersonalFreedom-sub001/internal/logger"
)

// Version is set at build time via -ldflags
var Version = "dev"

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info only in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		Version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
