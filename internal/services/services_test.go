// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package services

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestServicesLoggerLayer(t *testing.T) {
	_, db := newTestServices(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	serv := NewServices(logger, db, nil)

	requestID := newRequestID()
	if serviceErr := serv.HealthCheck(context.Background(), requestID); serviceErr != nil {
		t.Fatal("Failed health check", serviceErr)
	}

	output := buf.String()
	for _, expected := range []string{
		`"layer":"services"`,
		`"location":"health"`,
		`"requestId":"` + requestID + `"`,
	} {
		if !strings.Contains(output, expected) {
			t.Fatalf("Expected %s in log output %s", expected, output)
		}
	}
}
