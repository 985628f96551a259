package httpadapter

import (
	"net/http"
	"time"

	"mesa-fund/internal/core/port"
)

const (
	defaultEventLimit = 100
	maxEventLimit     = 1000
)

// handleEvents pages through the ledger event log. `after` is the last seq
// the client has seen and `limit` bounds the page size.
func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	q, ok := eventQuery(r)
	if !ok {
		badRequest(w, "invalid after or limit")
		return
	}
	h.writeEvents(w, r, q)
}

// handleCampaignEvents is handleEvents restricted to one campaign.
func (h *Handler) handleCampaignEvents(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		badRequest(w, "invalid campaign id")
		return
	}
	q, ok := eventQuery(r)
	if !ok {
		badRequest(w, "invalid after or limit")
		return
	}
	q.CampaignID = &id
	h.writeEvents(w, r, q)
}

func (h *Handler) writeEvents(w http.ResponseWriter, r *http.Request, q port.EventQuery) {
	events, err := h.svc.Events(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponses(events))
}

// handleTime returns the ledger clock so clients can render deadlines
// against the same notion of now.
func (h *Handler) handleTime(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]time.Time{"now": h.svc.Now()})
}

func eventQuery(r *http.Request) (port.EventQuery, bool) {
	after, ok := intQuery(r, "after")
	if !ok {
		return port.EventQuery{}, false
	}
	limit, ok := intQuery(r, "limit")
	if !ok {
		return port.EventQuery{}, false
	}
	if limit == 0 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}
	return port.EventQuery{After: after, Limit: int(limit)}, true
}
