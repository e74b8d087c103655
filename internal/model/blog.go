// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Blog is a published article. Content is an HTML fragment and is only
// present in the GetBlogByID payload, not in the list payload; it must be
// sanitized before rendering.
type Blog struct {
	ID          int64     `json:"blogID"`
	Title       string    `json:"blogTitle"`
	Content     string    `json:"blogContent"`
	ImagePath   string    `json:"blogImagePath"`
	CreatedBy   string    `json:"blogCreatedBy"`
	CreatedDate time.Time `json:"blogCreatedDate"`
}

// createdDateLayouts covers the backend's timestamp spellings. It emits
// DateTime values without a UTC offset, which strict RFC3339 parsing
// rejects.
var createdDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON decodes a blog, accepting offset-less created dates.
func (b *Blog) UnmarshalJSON(data []byte) error {
	type alias Blog
	aux := struct {
		*alias
		CreatedDate string `json:"blogCreatedDate"`
	}{alias: (*alias)(b)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	// One bad date must not fail the whole list decode; it degrades to
	// the zero time instead.
	b.CreatedDate = time.Time{}
	raw := strings.TrimSpace(aux.CreatedDate)
	for _, layout := range createdDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			b.CreatedDate = t
			break
		}
	}
	return nil
}
