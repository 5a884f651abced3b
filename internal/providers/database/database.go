// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/tugascript/devlogs/storeapps/internal/config"
)

const sqlitePragmas string = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

type Database struct {
	connPool *sql.DB
	*Queries
}

func NewDatabase(connPool *sql.DB, dialect Dialect) *Database {
	return &Database{
		connPool: connPool,
		Queries:  New(connPool, dialect),
	}
}

func buildSQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + sqlitePragmas
	}

	return dsn + "?" + sqlitePragmas
}

// Open connects to the database described by the config and pings it.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Database, error) {
	var connPool *sql.DB
	var dialect Dialect
	var err error

	switch cfg.Driver() {
	case config.DatabaseDriverPostgres:
		connPool, err = sql.Open(config.DatabaseDriverPostgres, cfg.DSN())
		dialect = DialectPostgres
	case config.DatabaseDriverSQLite:
		connPool, err = sql.Open(config.DatabaseDriverSQLite, buildSQLiteDSN(cfg.DSN()))
		dialect = DialectSQLite
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := connPool.PingContext(ctx); err != nil {
		connPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewDatabase(connPool, dialect), nil
}

func (d *Database) Dialect() Dialect {
	return d.dialect
}

func (d *Database) BeginTx(ctx context.Context) (*Queries, *sql.Tx, error) {
	txn, err := d.connPool.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelDefault,
	})
	if err != nil {
		return nil, nil, err
	}

	return d.WithTx(txn), txn, nil
}

// FinalizeTx commits when err is nil and rolls back otherwise.
func (d *Database) FinalizeTx(txn *sql.Tx, err error) error {
	if err != nil {
		if rbErr := txn.Rollback(); rbErr != nil {
			return fmt.Errorf("failed to rollback transaction: %w", rbErr)
		}
		return err
	}

	return txn.Commit()
}

func (d *Database) Ping(ctx context.Context) error {
	return d.connPool.PingContext(ctx)
}

func (d *Database) Close() error {
	return d.connPool.Close()
}
