// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package database

import (
	"context"
	"fmt"
)

const sqliteStoreAppsSchema string = `CREATE TABLE IF NOT EXISTS "store_apps" (
	"id"       INTEGER PRIMARY KEY AUTOINCREMENT,
	"name"     TEXT NOT NULL,
	"rating"   REAL NOT NULL DEFAULT 0,
	"people"   INTEGER NOT NULL DEFAULT 0,
	"category" TEXT NOT NULL,
	"date"     TEXT NOT NULL,
	"price"    TEXT NOT NULL
)`

const postgresStoreAppsSchema string = `CREATE TABLE IF NOT EXISTS "store_apps" (
	"id"       SERIAL PRIMARY KEY,
	"name"     VARCHAR(100) NOT NULL,
	"rating"   DOUBLE PRECISION NOT NULL DEFAULT 0,
	"people"   INTEGER NOT NULL DEFAULT 0,
	"category" VARCHAR(100) NOT NULL,
	"date"     VARCHAR(50) NOT NULL,
	"price"    VARCHAR(50) NOT NULL
)`

// Migrate creates the store_apps table when it does not exist yet.
func (d *Database) Migrate(ctx context.Context) error {
	schema := sqliteStoreAppsSchema
	if d.dialect == DialectPostgres {
		schema = postgresStoreAppsSchema
	}

	if _, err := d.connPool.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create store_apps table: %w", err)
	}

	return nil
}
