// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/gofiber/fiber/v2"

	"github.com/tugascript/devlogs/storeapps/internal/config"
	"github.com/tugascript/devlogs/storeapps/internal/providers/database"
)

type testEnv struct {
	server   *FiberServer
	database *database.Database
}

func newTestEnv(t *testing.T) testEnv {
	dbPath := filepath.Join(t.TempDir(), "storeapps.db")
	t.Setenv("PORT", "5000")
	t.Setenv("ENV", "test")
	t.Setenv("DEBUG", "false")
	t.Setenv("SERVICE_NAME", "storeapps")
	t.Setenv("MAX_PROCS", "1")
	t.Setenv("DATABASE_URL", dbPath)
	t.Setenv("RATE_LIMITER_MAX", "10000")
	t.Setenv("RATE_LIMITER_EXP_SEC", "60")
	t.Setenv("REDIS_URL", "")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.NewConfig(logger, filepath.Join(t.TempDir(), ".env"))
	srv := New(context.Background(), logger, cfg)
	srv.RegisterFiberRoutes()
	t.Cleanup(func() {
		if err := srv.CloseProviders(); err != nil {
			t.Error("Failed to close providers", err)
		}
	})

	return testEnv{
		server:   srv,
		database: srv.database,
	}
}

type fakeStoreAppData struct {
	Name     string `faker:"name"`
	Category string `faker:"oneof: Books, Business, Developer Tools, Music"`
	Date     string `faker:"date"`
}

func seedTestStoreApps(t *testing.T, db *database.Database, count int) []database.StoreApp {
	storeApps := make([]database.StoreApp, 0, count)

	for i := 0; i < count; i++ {
		fakeData := fakeStoreAppData{}
		if err := faker.FakeData(&fakeData); err != nil {
			t.Fatal("Failed to generate fake data", err)
		}

		storeApp, err := db.InsertStoreApp(context.Background(), database.InsertStoreAppParams{
			Name:     fakeData.Name,
			Rating:   float64(i%5) + 0.5,
			People:   int32(i * 11 % 37),
			Category: fakeData.Category,
			Date:     fakeData.Date,
			Price:    fmt.Sprintf("%d", i%9),
		})
		if err != nil {
			t.Fatal("Failed to insert store app", err)
		}
		storeApps = append(storeApps, storeApp)
	}

	return storeApps
}

func PerformTestRequest(t *testing.T, app *fiber.App, method, path string) *http.Response {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Accept", "application/json")

	resp, err := app.Test(req, 2000)
	if err != nil {
		t.Fatal("Failed to perform request", err)
	}
	t.Cleanup(func() {
		if err := resp.Body.Close(); err != nil {
			t.Error(err)
		}
	})

	return resp
}

func AssertTestStatusCode(t *testing.T, resp *http.Response, expectedStatusCode int) {
	t.Helper()
	if resp.StatusCode != expectedStatusCode {
		t.Logf("Status Code: %d", resp.StatusCode)
		t.Fatal("Failed to assert status code")
	}
}

func AssertTestResponseBody[V interface{}](t *testing.T, resp *http.Response, expectedBody V) V {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal("Failed to read response body", err)
	}

	if err := json.Unmarshal(body, &expectedBody); err != nil {
		t.Logf("Body: %s", body)
		t.Fatal("Failed to unmarshal response body")
	}
	return expectedBody
}

func AssertTestEmptyBody(t *testing.T, resp *http.Response) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal("Failed to read response body", err)
	}
	if len(body) != 0 {
		t.Fatalf("Expected empty body, got %s", body)
	}
}

func AssertEqual[V comparable](t *testing.T, actual, expected V) {
	t.Helper()
	if expected != actual {
		t.Fatalf("Actual: %v, Expected: %v", actual, expected)
	}
}
