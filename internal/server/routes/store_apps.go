// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tugascript/devlogs/storeapps/internal/controllers/paths"
)

func (r *Routes) StoreAppsRoutes(app *fiber.App) {
	router := app.Group(paths.StoreAppsBase)

	// literal segments must be registered before the :id catch-all
	router.Get(paths.StoreAppsFirstTen, r.controllers.ListFirstTenStoreApps)
	router.Get(paths.StoreAppsTwentyFive, r.controllers.GetStoreAppsPage)
	router.Get(paths.StoreAppsSortDesc, r.controllers.ListSortedStoreApps)

	router.Get(paths.Base, r.controllers.ListStoreApps)
	router.Get(paths.StoreAppsSingle, r.controllers.GetStoreApp)
	router.Delete(paths.StoreAppsSingle, r.controllers.DeleteStoreApp)
}
