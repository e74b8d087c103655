// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package version holds the build identity injected via ldflags:
//
//	-X github.com/olegiv/aqardesk/internal/version.Version=v1.2.3
package version

import "fmt"

var (
	// Version is the semantic version from git tags.
	Version = "dev"

	// Commit is the short git commit hash.
	Commit = "unknown"

	// BuildTime is the build timestamp in RFC3339 format.
	BuildTime = "unknown"
)

// String renders the build identity for the -version flag and startup log.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
