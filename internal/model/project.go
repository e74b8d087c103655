// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Project is a development project. The backend denormalizes the location
// and developer display names into the list payload. The inconsistent
// casing of the description tags (Ar/En vs AR/EN elsewhere) is the
// backend's, preserved for wire compatibility.
type Project struct {
	ID                int64   `json:"projectID"`
	DescAR            string  `json:"projectDescAr"`
	DescEN            string  `json:"projectDescEn"`
	ImagePath         string  `json:"projectImagePath"`
	HotDeal           bool    `json:"flag"`
	InstallmentPeriod int     `json:"installmentPeriod"`
	DownPayment       float64 `json:"downPayment"`
	MapLink           string  `json:"actualLocation"`
	LocationID        int64   `json:"locationId"`
	DeveloperID       int64   `json:"developerId"`
	LocationNameAR    string  `json:"locationNameAR"`
	LocationNameEN    string  `json:"locationNameEN"`
	DeveloperNameAR   string  `json:"developerNameAR"`
	DeveloperNameEN   string  `json:"developerNameEN"`
}
