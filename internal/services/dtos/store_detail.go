// Copyright (c) 2025 Afonso Barracha
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package dtos

// StoreDetailDTO pairs one page of store apps with the total number of pages.
type StoreDetailDTO struct {
	AppList        []StoreAppDTO `json:"appList"`
	TotalPageCount int64         `json:"totalPageCount"`
}

func NewStoreDetailDTO(appList []StoreAppDTO, totalPageCount int64) StoreDetailDTO {
	return StoreDetailDTO{
		AppList:        appList,
		TotalPageCount: totalPageCount,
	}
}
