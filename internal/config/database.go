// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import "strings"

type DatabaseDriver = string

const (
	DatabaseDriverSQLite   DatabaseDriver = "sqlite"
	DatabaseDriverPostgres DatabaseDriver = "pgx"
)

type DatabaseConfig struct {
	driver DatabaseDriver
	dsn    string
}

// NewDatabaseConfig picks the driver from the URL scheme. Postgres URLs go to
// pgx, everything else is treated as a SQLite file path.
func NewDatabaseConfig(url string) DatabaseConfig {
	lowered := strings.ToLower(url)
	if strings.HasPrefix(lowered, "postgres://") || strings.HasPrefix(lowered, "postgresql://") {
		return DatabaseConfig{
			driver: DatabaseDriverPostgres,
			dsn:    url,
		}
	}

	return DatabaseConfig{
		driver: DatabaseDriverSQLite,
		dsn:    strings.TrimPrefix(url, "sqlite://"),
	}
}

func (d *DatabaseConfig) Driver() DatabaseDriver {
	return d.driver
}

func (d *DatabaseConfig) DSN() string {
	return d.dsn
}
