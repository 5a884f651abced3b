// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package params

type StoreAppURLParams struct {
	ID int `validate:"required,gte=1,lte=2147483647"`
}

type SortStoreAppsQueryParams struct {
	Column string `validate:"max=100"`
}
