// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Finishing is a unit finishing status (core and shell, fully finished, ...).
type Finishing struct {
	ID     int64  `json:"finishingID"`
	DescAR string `json:"finishingDescAR"`
	DescEN string `json:"finishingDescEN"`
}
