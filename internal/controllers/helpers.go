// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package controllers

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tugascript/devlogs/storeapps/internal/exceptions"
	"github.com/tugascript/devlogs/storeapps/internal/utils"
)

const requestIDLocalsKey string = "requestid"

func (c *Controllers) buildLogger(
	requestID,
	location,
	method string,
) *slog.Logger {
	return utils.BuildLogger(c.logger, utils.LoggerOptions{
		Location:  location,
		Method:    method,
		RequestID: requestID,
	})
}

func logRequest(logger *slog.Logger, ctx *fiber.Ctx) {
	logger.InfoContext(
		ctx.UserContext(),
		fmt.Sprintf("Request: %s %s", ctx.Method(), ctx.Path()),
	)
}

func getRequestID(ctx *fiber.Ctx) string {
	if requestID, ok := ctx.Locals(requestIDLocalsKey).(string); ok && requestID != "" {
		return requestID
	}

	return ctx.Get(fiber.HeaderXRequestID, uuid.NewString())
}

func logResponse(logger *slog.Logger, ctx *fiber.Ctx, status int) {
	logger.InfoContext(
		ctx.UserContext(),
		fmt.Sprintf("Response: %s %s", ctx.Method(), ctx.Path()),
		"status", status,
	)
}

func validateErrorResponse(logger *slog.Logger, ctx *fiber.Ctx, location string, err error) error {
	logger.WarnContext(ctx.UserContext(), "Failed to validate request", "error", err)
	logResponse(logger, ctx, fiber.StatusBadRequest)

	var errs validator.ValidationErrors
	ok := errors.As(err, &errs)
	if !ok {
		return ctx.
			Status(fiber.StatusBadRequest).
			JSON(exceptions.NewEmptyValidationErrorResponse(location))
	}

	return ctx.
		Status(fiber.StatusBadRequest).
		JSON(exceptions.ValidationErrorResponseFromErr(&errs, location))
}

func validateURLParamsErrorResponse(logger *slog.Logger, ctx *fiber.Ctx, err error) error {
	return validateErrorResponse(logger, ctx, exceptions.ValidationResponseLocationParams, err)
}

func validateQueryParamsErrorResponse(logger *slog.Logger, ctx *fiber.Ctx, err error) error {
	return validateErrorResponse(logger, ctx, exceptions.ValidationResponseLocationQuery, err)
}

func serviceErrorResponse(logger *slog.Logger, ctx *fiber.Ctx, serviceErr *exceptions.ServiceError) error {
	status := exceptions.NewRequestErrorStatus(serviceErr.Code)
	resErr := exceptions.NewErrorResponse(serviceErr)
	logResponse(logger, ctx, status)
	return ctx.Status(status).JSON(&resErr)
}

// emptyNotFoundErrorResponse answers lookups by primary key that missed with a
// bodiless 404, other service errors keep their JSON body.
func emptyNotFoundErrorResponse(logger *slog.Logger, ctx *fiber.Ctx, serviceErr *exceptions.ServiceError) error {
	if serviceErr.Code != exceptions.CodeNotFound {
		return serviceErrorResponse(logger, ctx, serviceErr)
	}

	logResponse(logger, ctx, fiber.StatusNotFound)
	ctx.Status(fiber.StatusNotFound)
	return nil
}
