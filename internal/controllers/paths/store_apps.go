// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package paths

const (
	StoreAppsBase string = "/api/StoreApps"

	StoreAppsSingle     string = "/:id"
	StoreAppsFirstTen   string = "/FirstTen"
	StoreAppsTwentyFive string = "/TwentyFive/:pageNum"
	StoreAppsSortDesc   string = "/Sort/dsc"
)
