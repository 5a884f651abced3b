// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/tugascript/devlogs/storeapps/internal/config"
	"github.com/tugascript/devlogs/storeapps/internal/providers/database"
	"github.com/tugascript/devlogs/storeapps/internal/seed"
	"github.com/tugascript/devlogs/storeapps/internal/server"
	"github.com/tugascript/devlogs/storeapps/internal/server/validations"
)

func main() {
	filePath := flag.String("file", "./storeapps.csv", "path to the store apps csv export")
	envPath := flag.String("env", "./.env", "path to the .env file")
	reset := flag.Bool("reset", false, "delete every store app before importing")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := server.DefaultLogger()
	logger.InfoContext(ctx, "Loading configuration...")
	cfg := config.NewSeedConfig(logger, *envPath)
	logger = server.ConfigLogger(cfg.LoggerConfig())

	logger.InfoContext(ctx, "Building database connection pool...")
	db, err := database.Open(ctx, cfg.DatabaseConfig())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to migrate database", "error", err)
		os.Exit(1)
	}

	file, err := os.Open(*filePath)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open csv file", "file", *filePath, "error", err)
		os.Exit(1)
	}
	defer file.Close()

	seeder := seed.NewSeeder(logger, db, validations.NewValidator(logger))
	result, err := seeder.Import(ctx, file, seed.ImportOptions{Reset: *reset})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to import store apps", "file", *filePath, "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Seed complete",
		"file", *filePath,
		"deleted", result.Deleted,
		"inserted", result.Inserted,
		"skipped", result.Skipped,
	)
}
