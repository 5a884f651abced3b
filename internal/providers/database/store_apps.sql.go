// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package database

import (
	"context"
	"database/sql"
	"errors"
)

const storeAppColumns string = `"id", "name", "rating", "people", "category", "date", "price"`

type StoreAppColumn string

const (
	StoreAppColumnID       StoreAppColumn = "id"
	StoreAppColumnName     StoreAppColumn = "name"
	StoreAppColumnRating   StoreAppColumn = "rating"
	StoreAppColumnPeople   StoreAppColumn = "people"
	StoreAppColumnCategory StoreAppColumn = "category"
	StoreAppColumnDate     StoreAppColumn = "date"
	StoreAppColumnPrice    StoreAppColumn = "price"
)

var storeAppSortableColumns = map[StoreAppColumn]bool{
	StoreAppColumnID:       true,
	StoreAppColumnName:     true,
	StoreAppColumnRating:   true,
	StoreAppColumnPeople:   true,
	StoreAppColumnCategory: true,
	StoreAppColumnDate:     true,
	StoreAppColumnPrice:    true,
}

var ErrUnknownStoreAppColumn = errors.New("unknown store app column")

func (c StoreAppColumn) IsValid() bool {
	return storeAppSortableColumns[c]
}

func scanStoreApp(row interface{ Scan(...interface{}) error }) (StoreApp, error) {
	var i StoreApp
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Rating,
		&i.People,
		&i.Category,
		&i.Date,
		&i.Price,
	)
	return i, err
}

func scanStoreApps(rows *sql.Rows) ([]StoreApp, error) {
	defer rows.Close()
	items := []StoreApp{}
	for rows.Next() {
		i, err := scanStoreApp(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findAllStoreApps string = `SELECT ` + storeAppColumns + ` FROM "store_apps" ORDER BY "id" ASC`

func (q *Queries) FindAllStoreApps(ctx context.Context) ([]StoreApp, error) {
	rows, err := q.db.QueryContext(ctx, findAllStoreApps)
	if err != nil {
		return nil, err
	}
	return scanStoreApps(rows)
}

func (q *Queries) FindStoreAppByID(ctx context.Context, id int32) (StoreApp, error) {
	query := `SELECT ` + storeAppColumns + ` FROM "store_apps" WHERE "id" = ` + q.dialect.Placeholder(1) + ` LIMIT 1`
	return scanStoreApp(q.db.QueryRowContext(ctx, query, id))
}

func (q *Queries) FindFirstStoreApps(ctx context.Context, limit int32) ([]StoreApp, error) {
	query := `SELECT ` + storeAppColumns + ` FROM "store_apps" ORDER BY "id" ASC LIMIT ` + q.dialect.Placeholder(1)
	rows, err := q.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return scanStoreApps(rows)
}

type FindPaginatedStoreAppsParams struct {
	Offset int64
	Limit  int64
}

func (q *Queries) FindPaginatedStoreApps(ctx context.Context, arg FindPaginatedStoreAppsParams) ([]StoreApp, error) {
	query := `SELECT ` + storeAppColumns + ` FROM "store_apps" ORDER BY "id" ASC LIMIT ` +
		q.dialect.Placeholder(1) + ` OFFSET ` + q.dialect.Placeholder(2)
	rows, err := q.db.QueryContext(ctx, query, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	return scanStoreApps(rows)
}

const countStoreApps string = `SELECT COUNT("id") FROM "store_apps"`

func (q *Queries) CountStoreApps(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countStoreApps)
	var count int64
	err := row.Scan(&count)
	return count, err
}

// FindStoreAppsOrderedByDesc only interpolates whitelisted column names.
func (q *Queries) FindStoreAppsOrderedByDesc(ctx context.Context, column StoreAppColumn) ([]StoreApp, error) {
	if !column.IsValid() {
		return nil, ErrUnknownStoreAppColumn
	}

	query := `SELECT ` + storeAppColumns + ` FROM "store_apps" ORDER BY "` + string(column) + `" DESC, "id" ASC`
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanStoreApps(rows)
}

func (q *Queries) DeleteStoreAppByID(ctx context.Context, id int32) (int64, error) {
	query := `DELETE FROM "store_apps" WHERE "id" = ` + q.dialect.Placeholder(1)
	result, err := q.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteAllStoreApps string = `DELETE FROM "store_apps"`

func (q *Queries) DeleteAllStoreApps(ctx context.Context) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteAllStoreApps)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type InsertStoreAppParams struct {
	Name     string
	Rating   float64
	People   int32
	Category string
	Date     string
	Price    string
}

func (q *Queries) InsertStoreApp(ctx context.Context, arg InsertStoreAppParams) (StoreApp, error) {
	query := `INSERT INTO "store_apps" ("name", "rating", "people", "category", "date", "price") VALUES (` +
		q.dialect.Placeholder(1) + `, ` +
		q.dialect.Placeholder(2) + `, ` +
		q.dialect.Placeholder(3) + `, ` +
		q.dialect.Placeholder(4) + `, ` +
		q.dialect.Placeholder(5) + `, ` +
		q.dialect.Placeholder(6) + `) RETURNING ` + storeAppColumns
	row := q.db.QueryRowContext(ctx, query,
		arg.Name,
		arg.Rating,
		arg.People,
		arg.Category,
		arg.Date,
		arg.Price,
	)
	return scanStoreApp(row)
}
