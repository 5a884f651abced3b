// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cache

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	fiberRedis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"

	"github.com/tugascript/devlogs/storeapps/internal/utils"
)

const logLayer string = utils.ProvidersLogLayer + "/cache"

type Cache struct {
	logger  *slog.Logger
	storage *fiberRedis.Storage
}

func NewCache(logger *slog.Logger, storage *fiberRedis.Storage) *Cache {
	return &Cache{
		logger:  logger.With(utils.BaseLayer, logLayer),
		storage: storage,
	}
}

// NewRedisCache connects to redis, fiber's storage panics when the server is unreachable.
func NewRedisCache(logger *slog.Logger, url string) *Cache {
	return NewCache(logger, fiberRedis.New(fiberRedis.Config{
		URL: url,
	}))
}

// Storage is shared with the rate limiter middleware.
func (c *Cache) Storage() fiber.Storage {
	return c.storage
}

func (c *Cache) Client() redis.UniversalClient {
	return c.storage.Conn()
}

func (c *Cache) Ping(ctx context.Context) error {
	c.logger.DebugContext(ctx, "Pinging redis...")
	return c.Client().Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.storage.Close()
}
