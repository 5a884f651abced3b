// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package seed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/tugascript/devlogs/storeapps/internal/providers/database"
	"github.com/tugascript/devlogs/storeapps/internal/utils"
)

const columnCount int = 6

var expectedHeader = [columnCount]string{
	"name",
	"rating",
	"no of people rated",
	"category",
	"date",
	"price",
}

var ErrInvalidHeader = errors.New("invalid store apps csv header")

type StoreAppRow struct {
	Name     string  `validate:"required,min=3,max=100"`
	Rating   float64 `validate:"gte=0,lte=5"`
	People   int32   `validate:"gte=0"`
	Category string  `validate:"required,max=100"`
	Date     string  `validate:"required,max=50"`
	Price    string  `validate:"required,price"`
}

func (r *StoreAppRow) toInsertParams() database.InsertStoreAppParams {
	return database.InsertStoreAppParams{
		Name:     r.Name,
		Rating:   r.Rating,
		People:   r.People,
		Category: r.Category,
		Date:     r.Date,
		Price:    r.Price,
	}
}

func validateHeader(header []string) error {
	if len(header) != columnCount {
		return fmt.Errorf("%w: expected %d columns, got %d", ErrInvalidHeader, columnCount, len(header))
	}

	for i, name := range header {
		// Excel exports prefix the first cell with a BOM
		name = strings.TrimPrefix(name, "\ufeff")
		if utils.Lowered(strings.TrimSpace(name)) != expectedHeader[i] {
			return fmt.Errorf("%w: unexpected column %q at position %d", ErrInvalidHeader, name, i+1)
		}
	}

	return nil
}

// NormalizePrice strips currency symbols and thousand separators, "Free" is
// stored as "0".
func NormalizePrice(price string) string {
	price = strings.TrimSpace(price)
	if utils.Lowered(price) == "free" {
		return "0"
	}

	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '.' {
			return r
		}
		if r == ',' || unicode.IsSpace(r) || unicode.Is(unicode.Sc, r) {
			return -1
		}
		return r
	}, price)
}

// ParseRecord converts a csv record into a row, validation happens later.
func ParseRecord(record []string) (StoreAppRow, error) {
	if len(record) != columnCount {
		return StoreAppRow{}, fmt.Errorf("expected %d columns, got %d", columnCount, len(record))
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return StoreAppRow{}, fmt.Errorf("invalid rating %q: %w", record[1], err)
	}

	people, err := strconv.ParseInt(strings.ReplaceAll(strings.TrimSpace(record[2]), ",", ""), 10, 32)
	if err != nil {
		return StoreAppRow{}, fmt.Errorf("invalid number of people %q: %w", record[2], err)
	}

	return StoreAppRow{
		Name:     strings.TrimSpace(record[0]),
		Rating:   rating,
		People:   int32(people),
		Category: strings.TrimSpace(record[3]),
		Date:     strings.TrimSpace(record[4]),
		Price:    NormalizePrice(record[5]),
	}, nil
}
