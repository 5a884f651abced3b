// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tugascript/devlogs/storeapps/internal/controllers/params"
	"github.com/tugascript/devlogs/storeapps/internal/services"
)

const storeAppsLocation string = "store_apps"

func (c *Controllers) ListStoreApps(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, storeAppsLocation, "ListStoreApps")
	logRequest(logger, ctx)

	storeApps, serviceErr := c.services.ListStoreApps(ctx.UserContext(), services.ListStoreAppsOptions{
		RequestID: requestID,
	})
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return ctx.Status(fiber.StatusOK).JSON(&storeApps)
}

func (c *Controllers) GetStoreApp(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, storeAppsLocation, "GetStoreApp")
	logRequest(logger, ctx)

	id, err := ctx.ParamsInt("id")
	if err != nil {
		return validateURLParamsErrorResponse(logger, ctx, err)
	}

	urlParams := params.StoreAppURLParams{ID: id}
	if err := c.validate.StructCtx(ctx.UserContext(), &urlParams); err != nil {
		return validateURLParamsErrorResponse(logger, ctx, err)
	}

	storeAppDTO, serviceErr := c.services.GetStoreApp(ctx.UserContext(), services.GetStoreAppOptions{
		RequestID: requestID,
		ID:        int32(urlParams.ID),
	})
	if serviceErr != nil {
		return emptyNotFoundErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return ctx.Status(fiber.StatusOK).JSON(&storeAppDTO)
}

func (c *Controllers) ListFirstTenStoreApps(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, storeAppsLocation, "ListFirstTenStoreApps")
	logRequest(logger, ctx)

	storeApps, serviceErr := c.services.ListFirstTenStoreApps(ctx.UserContext(), services.ListFirstTenStoreAppsOptions{
		RequestID: requestID,
	})
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return ctx.Status(fiber.StatusOK).JSON(&storeApps)
}

func (c *Controllers) GetStoreAppsPage(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, storeAppsLocation, "GetStoreAppsPage")
	logRequest(logger, ctx)

	pageNum, err := ctx.ParamsInt("pageNum")
	if err != nil {
		return validateURLParamsErrorResponse(logger, ctx, err)
	}

	storeDetailDTO, serviceErr := c.services.GetStoreAppsPage(ctx.UserContext(), services.GetStoreAppsPageOptions{
		RequestID: requestID,
		PageNum:   int64(pageNum),
	})
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return ctx.Status(fiber.StatusOK).JSON(&storeDetailDTO)
}

func (c *Controllers) ListSortedStoreApps(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, storeAppsLocation, "ListSortedStoreApps")
	logRequest(logger, ctx)

	queryParams := params.SortStoreAppsQueryParams{
		Column: ctx.Query("column"),
	}
	if err := c.validate.StructCtx(ctx.UserContext(), &queryParams); err != nil {
		return validateQueryParamsErrorResponse(logger, ctx, err)
	}

	storeApps, serviceErr := c.services.ListSortedStoreApps(ctx.UserContext(), services.ListSortedStoreAppsOptions{
		RequestID: requestID,
		Column:    queryParams.Column,
	})
	if serviceErr != nil {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusOK)
	return ctx.Status(fiber.StatusOK).JSON(&storeApps)
}

func (c *Controllers) DeleteStoreApp(ctx *fiber.Ctx) error {
	requestID := getRequestID(ctx)
	logger := c.buildLogger(requestID, storeAppsLocation, "DeleteStoreApp")
	logRequest(logger, ctx)

	id, err := ctx.ParamsInt("id")
	if err != nil {
		return validateURLParamsErrorResponse(logger, ctx, err)
	}

	urlParams := params.StoreAppURLParams{ID: id}
	if err := c.validate.StructCtx(ctx.UserContext(), &urlParams); err != nil {
		return validateURLParamsErrorResponse(logger, ctx, err)
	}

	serviceErr := c.services.DeleteStoreApp(ctx.UserContext(), services.DeleteStoreAppOptions{
		RequestID: requestID,
		ID:        int32(urlParams.ID),
	})
	if serviceErr != nil {
		return emptyNotFoundErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusNoContent)
	return ctx.SendStatus(fiber.StatusNoContent)
}
