// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Location is a geographic area referenced by projects and units.
type Location struct {
	ID     int64  `json:"locationID"`
	DescAR string `json:"locationDescAR"`
	DescEN string `json:"locationDescEN"`
}
