// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/tugascript/devlogs/storeapps/internal/config"
	"github.com/tugascript/devlogs/storeapps/internal/controllers"
	"github.com/tugascript/devlogs/storeapps/internal/providers/cache"
	"github.com/tugascript/devlogs/storeapps/internal/providers/database"
	"github.com/tugascript/devlogs/storeapps/internal/server/routes"
	"github.com/tugascript/devlogs/storeapps/internal/server/validations"
	"github.com/tugascript/devlogs/storeapps/internal/services"
)

type FiberServer struct {
	*fiber.App
	routes   *routes.Routes
	database *database.Database
	cache    *cache.Cache
}

func New(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.Config,
) *FiberServer {
	var cc *cache.Cache
	if redisURL := cfg.RedisURL(); redisURL != "" {
		logger.InfoContext(ctx, "Building redis storage...")
		cc = cache.NewRedisCache(logger, redisURL)
		logger.InfoContext(ctx, "Finished building redis storage")
	} else {
		logger.InfoContext(ctx, "REDIS_URL not set, using in-memory rate limiter storage")
	}

	logger.InfoContext(ctx, "Building database connection pool...")
	db, err := database.Open(ctx, cfg.DatabaseConfig())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to connect to database", "error", err)
		panic(err)
	}
	logger.InfoContext(ctx, "Finished building database connection pool", "dialect", db.Dialect())

	logger.InfoContext(ctx, "Migrating database...")
	if err := db.Migrate(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to migrate database", "error", err)
		panic(err)
	}
	logger.InfoContext(ctx, "Finished migrating database")

	return NewFiberServer(ctx, logger, cfg, db, cc)
}

// NewFiberServer wires an already opened database and an optional cache into
// the fiber app.
func NewFiberServer(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.Config,
	db *database.Database,
	cc *cache.Cache,
) *FiberServer {
	logger.InfoContext(ctx, "Building services...")
	newServices := services.NewServices(logger, db, cc)
	logger.InfoContext(ctx, "Finished building services")

	logger.InfoContext(ctx, "Loading validators...")
	vld := validations.NewValidator(logger)
	logger.InfoContext(ctx, "Finished loading validators")

	server := &FiberServer{
		App: fiber.New(fiber.Config{
			ServerHeader: cfg.ServiceName(),
			AppName:      cfg.ServiceName(),
		}),
		routes:   routes.NewRoutes(controllers.NewControllers(logger, newServices, vld)),
		database: db,
		cache:    cc,
	}

	logger.InfoContext(ctx, "Loading middleware...")
	server.Use(recover.New())
	server.Use(helmet.New())
	server.Use(requestid.New(requestid.Config{
		Header: fiber.HeaderXRequestID,
		Generator: func() string {
			return uuid.NewString()
		},
	}))

	rateLimitCfg := cfg.RateLimiterConfig()
	limiterCfg := limiter.Config{
		Max:               int(rateLimitCfg.Max()),
		Expiration:        time.Duration(rateLimitCfg.ExpSec()) * time.Second,
		LimiterMiddleware: limiter.SlidingWindow{},
	}
	if cc != nil {
		limiterCfg.Storage = cc.Storage()
	}
	server.Use(limiter.New(limiterCfg))

	server.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,DELETE,OPTIONS,HEAD",
		AllowHeaders:     "Accept,Content-Type",
		AllowCredentials: false,
		MaxAge:           300,
	}))
	logger.InfoContext(ctx, "Finished loading common middlewares")

	return server
}

// CloseProviders releases the database pool and the redis connection.
func (s *FiberServer) CloseProviders() error {
	var errs []error
	if err := s.database.Close(); err != nil {
		errs = append(errs, err)
	}
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
