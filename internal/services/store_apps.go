// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package services

import (
	"context"
	"math"

	"github.com/tugascript/devlogs/storeapps/internal/exceptions"
	"github.com/tugascript/devlogs/storeapps/internal/providers/database"
	"github.com/tugascript/devlogs/storeapps/internal/services/dtos"
	"github.com/tugascript/devlogs/storeapps/internal/utils"
)

const (
	storeAppsLocation string = "store_apps"

	StoreAppsPageSize  int64 = 25
	StoreAppsFirstSize int32 = 10

	maxStoreAppsPageNum int64 = math.MaxInt64/StoreAppsPageSize + 1
)

// TotalPageCount is ceil(count / StoreAppsPageSize).
func TotalPageCount(count int64) int64 {
	if count <= 0 {
		return 0
	}

	return (count + StoreAppsPageSize - 1) / StoreAppsPageSize
}

// PageOffset converts a 1-based page number into a row offset. Non positive
// pages clamp to the first row and pages past the int64 range to the last.
func PageOffset(pageNum int64) int64 {
	if pageNum < 1 {
		return 0
	}
	if pageNum > maxStoreAppsPageNum {
		return math.MaxInt64
	}

	return (pageNum - 1) * StoreAppsPageSize
}

type ListStoreAppsOptions struct {
	RequestID string
}

func (s *Services) ListStoreApps(
	ctx context.Context,
	opts ListStoreAppsOptions,
) ([]dtos.StoreAppDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, storeAppsLocation, "ListStoreApps")
	logger.InfoContext(ctx, "Listing store apps...")

	storeApps, err := s.database.FindAllStoreApps(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list store apps", "error", err)
		return nil, exceptions.FromDBError(err)
	}

	logger.InfoContext(ctx, "Store apps listed successfully", "count", len(storeApps))
	return utils.MapSlice(storeApps, dtos.MapStoreAppToDTO), nil
}

type GetStoreAppOptions struct {
	RequestID string
	ID        int32
}

func (s *Services) GetStoreApp(
	ctx context.Context,
	opts GetStoreAppOptions,
) (dtos.StoreAppDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, storeAppsLocation, "GetStoreApp").With(
		"storeAppId", opts.ID,
	)
	logger.InfoContext(ctx, "Getting store app by id...")

	storeApp, err := s.database.FindStoreAppByID(ctx, opts.ID)
	if err != nil {
		serviceErr := exceptions.FromDBError(err)
		if serviceErr.Code == exceptions.CodeNotFound {
			logger.InfoContext(ctx, "Store app not found", "error", err)
			return dtos.StoreAppDTO{}, serviceErr
		}

		logger.ErrorContext(ctx, "Failed to get store app", "error", err)
		return dtos.StoreAppDTO{}, serviceErr
	}

	logger.InfoContext(ctx, "Store app found successfully")
	return dtos.MapStoreAppToDTO(&storeApp), nil
}

type ListFirstTenStoreAppsOptions struct {
	RequestID string
}

func (s *Services) ListFirstTenStoreApps(
	ctx context.Context,
	opts ListFirstTenStoreAppsOptions,
) ([]dtos.StoreAppDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, storeAppsLocation, "ListFirstTenStoreApps")
	logger.InfoContext(ctx, "Listing first ten store apps...")

	storeApps, err := s.database.FindFirstStoreApps(ctx, StoreAppsFirstSize)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list first ten store apps", "error", err)
		return nil, exceptions.FromDBError(err)
	}

	logger.InfoContext(ctx, "First ten store apps listed successfully", "count", len(storeApps))
	return utils.MapSlice(storeApps, dtos.MapStoreAppToDTO), nil
}

type GetStoreAppsPageOptions struct {
	RequestID string
	PageNum   int64
}

func (s *Services) GetStoreAppsPage(
	ctx context.Context,
	opts GetStoreAppsPageOptions,
) (dtos.StoreDetailDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, storeAppsLocation, "GetStoreAppsPage").With(
		"pageNum", opts.PageNum,
	)
	logger.InfoContext(ctx, "Getting store apps page...")

	if opts.PageNum < 1 {
		logger.WarnContext(ctx, "Non positive page number, falling back to the first rows")
	}

	storeApps, err := s.database.FindPaginatedStoreApps(ctx, database.FindPaginatedStoreAppsParams{
		Offset: PageOffset(opts.PageNum),
		Limit:  StoreAppsPageSize,
	})
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get store apps page", "error", err)
		return dtos.StoreDetailDTO{}, exceptions.FromDBError(err)
	}

	count, err := s.database.CountStoreApps(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to count store apps", "error", err)
		return dtos.StoreDetailDTO{}, exceptions.FromDBError(err)
	}

	logger.InfoContext(ctx, "Store apps page retrieved successfully", "count", len(storeApps), "total", count)
	return dtos.NewStoreDetailDTO(
		utils.MapSlice(storeApps, dtos.MapStoreAppToDTO),
		TotalPageCount(count),
	), nil
}

type ListSortedStoreAppsOptions struct {
	RequestID string
	Column    string
}

// ListSortedStoreApps returns an empty list, not an error, for unknown columns.
func (s *Services) ListSortedStoreApps(
	ctx context.Context,
	opts ListSortedStoreAppsOptions,
) ([]dtos.StoreAppDTO, *exceptions.ServiceError) {
	logger := s.buildLogger(opts.RequestID, storeAppsLocation, "ListSortedStoreApps").With(
		"column", opts.Column,
	)
	logger.InfoContext(ctx, "Listing store apps sorted descending...")

	column := database.StoreAppColumn(utils.Lowered(opts.Column))
	if !column.IsValid() {
		logger.WarnContext(ctx, "Unknown sort column, returning empty list")
		return make([]dtos.StoreAppDTO, 0), nil
	}

	storeApps, err := s.database.FindStoreAppsOrderedByDesc(ctx, column)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list sorted store apps", "error", err)
		return nil, exceptions.FromDBError(err)
	}

	logger.InfoContext(ctx, "Sorted store apps listed successfully", "count", len(storeApps))
	return utils.MapSlice(storeApps, dtos.MapStoreAppToDTO), nil
}

type DeleteStoreAppOptions struct {
	RequestID string
	ID        int32
}

func (s *Services) DeleteStoreApp(ctx context.Context, opts DeleteStoreAppOptions) *exceptions.ServiceError {
	logger := s.buildLogger(opts.RequestID, storeAppsLocation, "DeleteStoreApp").With(
		"storeAppId", opts.ID,
	)
	logger.InfoContext(ctx, "Deleting store app...")

	storeApp, serviceErr := s.GetStoreApp(ctx, GetStoreAppOptions(opts))
	if serviceErr != nil {
		return serviceErr
	}

	affected, err := s.database.DeleteStoreAppByID(ctx, storeApp.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to delete store app", "error", err)
		return exceptions.FromDBError(err)
	}
	if affected == 0 {
		logger.InfoContext(ctx, "Store app was already deleted")
		return exceptions.NewNotFoundError()
	}

	logger.InfoContext(ctx, "Store app deleted successfully")
	return nil
}
