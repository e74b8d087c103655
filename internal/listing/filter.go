// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package listing

import (
	"strconv"
	"strings"
	"time"
)

// Filter decides whether an item matches one filter value. An empty value
// never reaches a Filter: controllers treat it as "inactive" and skip the
// predicate. Values are passed through verbatim, including surrounding
// whitespace, to match what the user actually typed.
type Filter[T any] func(item T, value string) bool

// Text matches when the field contains the value as a case-insensitive
// substring. Used for Latin-script fields.
func Text[T any](get func(T) string) Filter[T] {
	return func(item T, value string) bool {
		return strings.Contains(strings.ToLower(get(item)), strings.ToLower(value))
	}
}

// Literal matches when the field contains the value as a plain substring,
// without case folding. Arabic script has no case, so Arabic fields use
// this form.
func Literal[T any](get func(T) string) Filter[T] {
	return func(item T, value string) bool {
		return strings.Contains(get(item), value)
	}
}

// Equals matches when the field equals the value exactly. Select-style
// filters (foreign keys, bedroom counts, hot-deal state) use this form.
func Equals[T any](get func(T) string) Filter[T] {
	return func(item T, value string) bool {
		return get(item) == value
	}
}

// EqualsID is Equals over a numeric identifier.
func EqualsID[T any](get func(T) int64) Filter[T] {
	return Equals(func(item T) string {
		return strconv.FormatInt(get(item), 10)
	})
}

// Min matches when the numeric field is at least the value. Unparsable
// values match everything, mirroring a cleared input.
func Min[T any](get func(T) float64) Filter[T] {
	return func(item T, value string) bool {
		bound, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return true
		}
		return get(item) >= bound
	}
}

// Max matches when the numeric field is at most the value.
func Max[T any](get func(T) float64) Filter[T] {
	return func(item T, value string) bool {
		bound, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return true
		}
		return get(item) <= bound
	}
}

// dateLayout is the wire format of date filter inputs (HTML date fields).
const dateLayout = "2006-01-02"

// DateFrom matches when the time field falls on or after the value's day.
func DateFrom[T any](get func(T) time.Time) Filter[T] {
	return func(item T, value string) bool {
		from, err := time.Parse(dateLayout, value)
		if err != nil {
			return true
		}
		return !get(item).Before(from)
	}
}

// DateTo matches when the time field falls on or before the end of the
// value's day.
func DateTo[T any](get func(T) time.Time) Filter[T] {
	return func(item T, value string) bool {
		to, err := time.Parse(dateLayout, value)
		if err != nil {
			return true
		}
		return get(item).Before(to.AddDate(0, 0, 1))
	}
}

// Any combines filters with OR. The global search filter is an Any over
// the entity's configured searchable fields, which is then AND'd with
// every other active filter by the controller.
func Any[T any](filters ...Filter[T]) Filter[T] {
	return func(item T, value string) bool {
		for _, f := range filters {
			if f(item, value) {
				return true
			}
		}
		return false
	}
}
