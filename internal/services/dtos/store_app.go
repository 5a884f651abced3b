// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package dtos

import (
	"github.com/tugascript/devlogs/storeapps/internal/providers/database"
)

type StoreAppDTO struct {
	ID       int32   `json:"id"`
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	People   int32   `json:"people"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Price    string  `json:"price"`
}

func MapStoreAppToDTO(storeApp *database.StoreApp) StoreAppDTO {
	return StoreAppDTO{
		ID:       storeApp.ID,
		Name:     storeApp.Name,
		Rating:   storeApp.Rating,
		People:   storeApp.People,
		Category: storeApp.Category,
		Date:     storeApp.Date,
		Price:    storeApp.Price,
	}
}
