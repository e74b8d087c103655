// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/olegiv/aqardesk/internal/model"
	"github.com/olegiv/aqardesk/internal/render"
)

// eventLogLimit caps the event log page. The log is pruned on a
// schedule; this just bounds one page render.
const eventLogLimit = 200

// EventLogData is the template payload of the event log page.
type EventLogData struct {
	Events []model.Event
}

// EventLog handles GET /events: the local audit trail, newest first.
func (h *Handler) EventLog(w http.ResponseWriter, r *http.Request) {
	var events []model.Event
	if h.events != nil {
		var err error
		events, err = h.events.Recent(r.Context(), eventLogLimit)
		if err != nil {
			h.serverError(w, "loading event log", err)
			return
		}
	}

	if err := h.renderer.Render(w, r, "admin/events", render.TemplateData{
		Title:  "Event Log",
		Active: "events",
		Data:   EventLogData{Events: events},
	}); err != nil {
		h.serverError(w, "rendering event log", err)
	}
}
