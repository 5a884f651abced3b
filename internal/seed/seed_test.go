// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package seed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tugascript/devlogs/storeapps/internal/config"
	"github.com/tugascript/devlogs/storeapps/internal/providers/database"
	"github.com/tugascript/devlogs/storeapps/internal/server/validations"
)

const csvHeader string = "Name,Rating,No of people Rated,Category,Date,Price\n"

func newTestSeeder(t *testing.T) (*Seeder, *database.Database) {
	ctx := context.Background()
	db, err := database.Open(ctx, config.NewDatabaseConfig(filepath.Join(t.TempDir(), "seed.db")))
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
	return NewSeeder(logger, db, validations.NewValidator(logger)), db
}

func AssertEqual[V comparable](t *testing.T, actual, expected V) {
	t.Helper()
	if expected != actual {
		t.Fatalf("Actual: %v, Expected: %v", actual, expected)
	}
}

func TestNormalizePrice(t *testing.T) {
	testCases := map[string]string{
		"Free":      "0",
		" free ":    "0",
		"399":       "399",
		"$ 4.99":    "4.99",
		"$1,099.00": "1099.00",
		"abc":       "abc",
	}

	for input, expected := range testCases {
		AssertEqual(t, NormalizePrice(input), expected)
	}
	AssertEqual(t, NormalizePrice("\u20b9 399"), "399")
}

func TestParseRecord(t *testing.T) {
	t.Run("Should parse a valid record", func(t *testing.T) {
		row, err := ParseRecord([]string{" Dynamic Reader ", "3.5", "268", "Books", "07-01-2014", "Free"})
		if err != nil {
			t.Fatal("Failed to parse record", err)
		}

		AssertEqual(t, row.Name, "Dynamic Reader")
		AssertEqual(t, row.Rating, 3.5)
		AssertEqual(t, row.People, int32(268))
		AssertEqual(t, row.Category, "Books")
		AssertEqual(t, row.Date, "07-01-2014")
		AssertEqual(t, row.Price, "0")
	})

	t.Run("Should fail on a non numeric rating", func(t *testing.T) {
		if _, err := ParseRecord([]string{"Reader", "abc", "1", "Books", "07-01-2014", "Free"}); err == nil {
			t.Fatal("Expected an error")
		}
	})

	t.Run("Should fail on a non numeric number of people", func(t *testing.T) {
		if _, err := ParseRecord([]string{"Reader", "4", "many", "Books", "07-01-2014", "Free"}); err == nil {
			t.Fatal("Expected an error")
		}
	})

	t.Run("Should fail on a wrong column count", func(t *testing.T) {
		if _, err := ParseRecord([]string{"Reader", "4"}); err == nil {
			t.Fatal("Expected an error")
		}
	})
}

func TestImport(t *testing.T) {
	ctx := context.Background()

	t.Run("Should insert valid rows and skip invalid ones", func(t *testing.T) {
		seeder, db := newTestSeeder(t)
		input := csvHeader +
			"Dynamic Reader,3.5,268,Books,07-01-2014,Free\n" +
			"\"Chemistry, Organic\",4,627,Books,08-01-2014,\"₹ 1,099.00\"\n" +
			"ab,4,10,Books,08-01-2014,Free\n" +
			"Broken Rating,x,10,Books,08-01-2014,Free\n" +
			"Missing Columns,4,10\n" +
			"No Category,4,10,,08-01-2014,Free\n" +
			"Bad Price,4,10,Music,08-01-2014,N/A\n"

		result, err := seeder.Import(ctx, strings.NewReader(input), ImportOptions{})
		if err != nil {
			t.Fatal("Failed to import", err)
		}
		AssertEqual(t, result.Inserted, 2)
		AssertEqual(t, result.Skipped, 5)

		storeApps, err := db.FindAllStoreApps(ctx)
		if err != nil {
			t.Fatal("Failed to find store apps", err)
		}
		AssertEqual(t, len(storeApps), 2)
		AssertEqual(t, storeApps[0].Name, "Dynamic Reader")
		AssertEqual(t, storeApps[0].Price, "0")
		AssertEqual(t, storeApps[1].Name, "Chemistry, Organic")
		AssertEqual(t, storeApps[1].Price, "1099.00")
	})

	t.Run("Should replace existing rows on reset", func(t *testing.T) {
		seeder, db := newTestSeeder(t)
		input := csvHeader + "Dynamic Reader,3.5,268,Books,07-01-2014,Free\n"

		if _, err := seeder.Import(ctx, strings.NewReader(input), ImportOptions{}); err != nil {
			t.Fatal("Failed to import", err)
		}
		result, err := seeder.Import(ctx, strings.NewReader(input), ImportOptions{Reset: true})
		if err != nil {
			t.Fatal("Failed to import", err)
		}
		AssertEqual(t, result.Deleted, int64(1))
		AssertEqual(t, result.Inserted, 1)

		count, err := db.CountStoreApps(ctx)
		if err != nil {
			t.Fatal("Failed to count store apps", err)
		}
		AssertEqual(t, count, int64(1))
	})

	t.Run("Should reject an unexpected header", func(t *testing.T) {
		seeder, _ := newTestSeeder(t)
		_, err := seeder.Import(ctx, strings.NewReader("Title,Stars\nReader,4\n"), ImportOptions{})
		if !errors.Is(err, ErrInvalidHeader) {
			t.Fatalf("Expected ErrInvalidHeader, got %v", err)
		}
	})

	t.Run("Should reject an empty file", func(t *testing.T) {
		seeder, _ := newTestSeeder(t)
		_, err := seeder.Import(ctx, strings.NewReader(""), ImportOptions{})
		if !errors.Is(err, ErrInvalidHeader) {
			t.Fatalf("Expected ErrInvalidHeader, got %v", err)
		}
	})
}
