// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Developer is a real-estate development company. Dependent projects are
// joined into the list payload for the count shown on delete.
type Developer struct {
	ID       int64     `json:"developerID"`
	DescAR   string    `json:"developerDescAR"`
	DescEN   string    `json:"developerDescEN"`
	Projects []Project `json:"projects"`
}

// ProjectCount returns the number of projects attached to the developer.
func (d Developer) ProjectCount() int { return len(d.Projects) }
