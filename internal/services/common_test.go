// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"

	"github.com/tugascript/devlogs/storeapps/internal/config"
	"github.com/tugascript/devlogs/storeapps/internal/providers/database"
)

func newTestServices(t *testing.T) (*Services, *database.Database) {
	ctx := context.Background()
	db, err := database.Open(ctx, config.NewDatabaseConfig(filepath.Join(t.TempDir(), "storeapps.db")))
	if err != nil {
		t.Fatal("Failed to open database", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Error("Failed to close database", err)
		}
	})
	if err := db.Migrate(ctx); err != nil {
		t.Fatal("Failed to migrate database", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServices(logger, db, nil), db
}

type fakeStoreAppData struct {
	Name     string `faker:"name"`
	Category string `faker:"oneof: Books, Business, Developer Tools, Music, Health and Fitness"`
	Date     string `faker:"date"`
}

// seedTestStoreApps inserts count rows whose rating and people are derived
// from the insertion index so ordering assertions stay deterministic.
func seedTestStoreApps(t *testing.T, db *database.Database, count int) []database.StoreApp {
	ctx := context.Background()
	storeApps := make([]database.StoreApp, 0, count)

	for i := 0; i < count; i++ {
		fakeData := fakeStoreAppData{}
		if err := faker.FakeData(&fakeData); err != nil {
			t.Fatal("Failed to generate fake data", err)
		}

		storeApp, err := db.InsertStoreApp(ctx, database.InsertStoreAppParams{
			Name:     fakeData.Name,
			Rating:   float64((i*7)%50) / 10,
			People:   int32((i * 13) % 97),
			Category: fakeData.Category,
			Date:     fakeData.Date,
			Price:    fmt.Sprintf("%d", (i*3)%20),
		})
		if err != nil {
			t.Fatal("Failed to insert store app", err)
		}
		storeApps = append(storeApps, storeApp)
	}

	return storeApps
}

func newRequestID() string {
	return uuid.NewString()
}

func AssertEqual[V comparable](t *testing.T, actual, expected V) {
	t.Helper()
	if expected != actual {
		t.Fatalf("Actual: %v, Expected: %v", actual, expected)
	}
}
