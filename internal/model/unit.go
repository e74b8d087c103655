// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Unit is a sellable unit inside a project. DeliveryYears is the number
// of years until delivery, not a date, despite the backend's field name.
type Unit struct {
	ID              int64   `json:"unitId"`
	DescAR          string  `json:"unitDescriptionAR"`
	DescEN          string  `json:"unitDescriptionEN"`
	ImagePath       string  `json:"unitImagePath"`
	Bedrooms        int     `json:"numberOfBedrooms"`
	StartingPrice   float64 `json:"startingPrice"`
	DeliveryYears   int     `json:"deliveryDate"`
	ProjectID       int64   `json:"projectId"`
	CategoryID      int64   `json:"categoryId"`
	LocationID      int64   `json:"locationId"`
	FinishingID     int64   `json:"finishingStatusId"`
	ProjectDescAR   string  `json:"projectDescAR"`
	ProjectDescEN   string  `json:"projectDescEN"`
	CategoryDescAR  string  `json:"categoryDescAR"`
	CategoryDescEN  string  `json:"categoryDescEN"`
	LocationDescAR  string  `json:"locationDescAR"`
	LocationDescEN  string  `json:"locationDescEN"`
	FinishingDescAR string  `json:"finishingStatusDescAR"`
	FinishingDescEN string  `json:"finishingStatusDescEN"`
}
