// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the wire models of the listing backend's REST API.
// Field tags follow the backend's JSON casing exactly; the backend is the
// single source of truth for all of these records.
package model

// Admin roles understood by the backend.
const (
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "SuperAdmin"
)

// ValidRoles contains all assignable admin roles.
var ValidRoles = []string{RoleAdmin, RoleSuperAdmin}

// Admin is a dashboard user account. The password is write-only: it is
// sent on create and reset-password calls and never returned by the
// backend.
type Admin struct {
	ID          int64  `json:"userId"`
	Name        string `json:"userName"`
	Description string `json:"userDescription"`
	Role        string `json:"userRole"`
}
