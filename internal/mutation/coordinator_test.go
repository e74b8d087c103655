// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package mutation

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/olegiv/aqardesk/internal/api"
)

type fakeInvalidator struct {
	key   string
	calls int
	err   error
}

func (f *fakeInvalidator) Invalidate(context.Context) error {
	f.calls++
	return f.err
}

func (f *fakeInvalidator) Key() string { return f.key }

func TestDo_SuccessInvalidates(t *testing.T) {
	c := NewCoordinator(nil)
	inv := &fakeInvalidator{key: "categories"}

	res := c.Do(context.Background(), "categories", inv, func(context.Context) error {
		return nil
	})

	if !res.OK() {
		t.Fatalf("expected success, got %+v", res)
	}
	if inv.calls != 1 {
		t.Errorf("expected 1 invalidation, got %d", inv.calls)
	}
}

func TestDo_FailureSkipsInvalidation(t *testing.T) {
	c := NewCoordinator(nil)
	inv := &fakeInvalidator{key: "units"}

	res := c.Do(context.Background(), "units", inv, func(context.Context) error {
		return &api.Error{StatusCode: http.StatusBadRequest, Message: "price must be positive"}
	})

	if res.OK() {
		t.Fatal("expected failure")
	}
	if inv.calls != 0 {
		t.Errorf("cache invalidated despite failed mutation: %d calls", inv.calls)
	}
}

func TestDo_Classification(t *testing.T) {
	c := NewCoordinator(nil)

	tests := []struct {
		name    string
		err     error
		outcome Outcome
		message string
	}{
		{
			name:    "unauthorized means session expired",
			err:     &api.Error{StatusCode: http.StatusUnauthorized},
			outcome: OutcomeSessionExpired,
		},
		{
			name:    "forbidden keeps session",
			err:     &api.Error{StatusCode: http.StatusForbidden},
			outcome: OutcomeForbidden,
		},
		{
			name:    "backend message surfaces",
			err:     &api.Error{StatusCode: http.StatusUnprocessableEntity, Message: "name already exists"},
			outcome: OutcomeFailed,
			message: "name already exists",
		},
		{
			name:    "server error without message gets fallback",
			err:     &api.Error{StatusCode: http.StatusBadGateway},
			outcome: OutcomeFailed,
			message: "Something went wrong. Please try again.",
		},
		{
			name:    "network error is failed, not session expired",
			err:     errors.New("dial tcp: connection refused"),
			outcome: OutcomeFailed,
			message: "Something went wrong. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Do(context.Background(), "projects", nil, func(context.Context) error {
				return tt.err
			})
			if res.Outcome != tt.outcome {
				t.Errorf("outcome = %v, want %v", res.Outcome, tt.outcome)
			}
			if tt.message != "" && res.Message != tt.message {
				t.Errorf("message = %q, want %q", res.Message, tt.message)
			}
			if res.Err == nil {
				t.Error("expected Err to carry the cause")
			}
		})
	}
}

func TestDo_InvalidationErrorStillSucceeds(t *testing.T) {
	c := NewCoordinator(nil)
	inv := &fakeInvalidator{key: "blogs", err: errors.New("redis down")}

	res := c.Do(context.Background(), "blogs", inv, func(context.Context) error {
		return nil
	})

	if !res.OK() {
		t.Fatalf("backend accepted the mutation, expected success, got %+v", res)
	}
}

func TestDo_NilInvalidator(t *testing.T) {
	c := NewCoordinator(nil)

	res := c.Do(context.Background(), "admins", nil, func(context.Context) error {
		return nil
	})
	if !res.OK() {
		t.Fatalf("expected success, got %+v", res)
	}
}
