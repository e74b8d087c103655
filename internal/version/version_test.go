// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	got := String()

	// Defaults apply until ldflags overwrite them.
	for _, part := range []string{Version, "commit: " + Commit, "built: " + BuildTime} {
		if !strings.Contains(got, part) {
			t.Errorf("String() = %q, missing %q", got, part)
		}
	}
}
