// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package services

import (
	"log/slog"

	"github.com/tugascript/devlogs/storeapps/internal/providers/cache"
	"github.com/tugascript/devlogs/storeapps/internal/providers/database"
	"github.com/tugascript/devlogs/storeapps/internal/utils"
)

type Services struct {
	logger   *slog.Logger
	database *database.Database
	cache    *cache.Cache
}

// NewServices accepts a nil cache when redis is not configured.
func NewServices(
	logger *slog.Logger,
	database *database.Database,
	cache *cache.Cache,
) *Services {
	return &Services{
		logger:   logger.With(utils.BaseLayer, utils.ServicesLogLayer),
		database: database,
		cache:    cache,
	}
}
