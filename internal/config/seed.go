// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type SeedConfig struct {
	loggerConfig   LoggerConfig
	databaseConfig DatabaseConfig
}

func (c *SeedConfig) LoggerConfig() LoggerConfig {
	return c.loggerConfig
}

func (c *SeedConfig) DatabaseConfig() DatabaseConfig {
	return c.databaseConfig
}

// NewSeedConfig only requires DATABASE_URL, the remaining logger variables
// fall back to development defaults.
func NewSeedConfig(logger *slog.Logger, envPath string) SeedConfig {
	if err := godotenv.Load(envPath); err != nil {
		logger.Warn("Error loading .env file", "path", envPath)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		logger.Error("DATABASE_URL is not set")
		panic("DATABASE_URL is not set")
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "storeapps"
	}

	return SeedConfig{
		loggerConfig:   NewLoggerConfig(strings.ToLower(os.Getenv("DEBUG")) == "true", env, serviceName+"-seed"),
		databaseConfig: NewDatabaseConfig(databaseURL),
	}
}
