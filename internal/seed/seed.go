// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/tugascript/devlogs/storeapps/internal/providers/database"
)

type Seeder struct {
	logger   *slog.Logger
	database *database.Database
	validate *validator.Validate
}

func NewSeeder(logger *slog.Logger, db *database.Database, validate *validator.Validate) *Seeder {
	return &Seeder{
		logger:   logger.With("location", "seed"),
		database: db,
		validate: validate,
	}
}

type ImportOptions struct {
	Reset bool
}

type ImportResult struct {
	Deleted  int64
	Inserted int
	Skipped  int
}

// Import reads the csv in a single transaction, invalid rows are skipped and
// any database error rolls back the whole import.
func (s *Seeder) Import(ctx context.Context, r io.Reader, opts ImportOptions) (result ImportResult, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return result, fmt.Errorf("%w: empty file", ErrInvalidHeader)
		}
		return result, fmt.Errorf("failed to read header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return result, err
	}
	reader.FieldsPerRecord = columnCount

	qrs, txn, err := s.database.BeginTx(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to start transaction", "error", err)
		return result, err
	}
	defer func() {
		err = s.database.FinalizeTx(txn, err)
	}()

	if opts.Reset {
		result.Deleted, err = qrs.DeleteAllStoreApps(ctx)
		if err != nil {
			s.logger.ErrorContext(ctx, "Failed to delete store apps", "error", err)
			return result, err
		}
		s.logger.InfoContext(ctx, "Deleted existing store apps", "count", result.Deleted)
	}

	recordNum := 1
	for {
		record, readErr := reader.Read()
		recordNum++
		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			if errors.Is(readErr, csv.ErrFieldCount) {
				s.logger.WarnContext(ctx, "Skipping row with wrong column count", "record", recordNum)
				result.Skipped++
				continue
			}

			err = fmt.Errorf("failed to read row: %w", readErr)
			return result, err
		}

		row, parseErr := ParseRecord(record)
		if parseErr != nil {
			s.logger.WarnContext(ctx, "Skipping unparsable row", "record", recordNum, "error", parseErr)
			result.Skipped++
			continue
		}
		if vErr := s.validate.StructCtx(ctx, &row); vErr != nil {
			s.logger.WarnContext(ctx, "Skipping invalid row", "record", recordNum, "error", vErr)
			result.Skipped++
			continue
		}

		if _, err = qrs.InsertStoreApp(ctx, row.toInsertParams()); err != nil {
			s.logger.ErrorContext(ctx, "Failed to insert store app", "record", recordNum, "error", err)
			return result, err
		}
		result.Inserted++
	}

	s.logger.InfoContext(ctx, "Finished importing store apps",
		"inserted", result.Inserted,
		"skipped", result.Skipped,
	)
	return result, nil
}
