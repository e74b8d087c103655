// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Category is a unit category (apartment, villa, ...). The backend joins
// the dependent units into the list payload; the dashboard only shows
// their count, as an informational warning before delete.
type Category struct {
	ID     int64  `json:"categoryID"`
	DescAR string `json:"categoryDescAR"`
	DescEN string `json:"categoryDescEN"`
	Units  []Unit `json:"units"`
}

// UnitCount returns the number of units attached to the category.
func (c Category) UnitCount() int { return len(c.Units) }
