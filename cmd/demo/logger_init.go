package main

import (
	"os"

	"github.com/osse101/itemforge/internal/config"
	"github.com/osse101/itemforge/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)

	// Logs go to stderr so stdout carries only the demo transcript
	logger.InitLoggerWithWriter(loggerConfig, os.Stderr)
}
