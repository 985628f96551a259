package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"mesa-fund/internal/core/domain"
)

type contributeRequest struct {
	Amount int64 `json:"amount"`
}

type contributeResponse struct {
	CampaignID  int64  `json:"campaign_id"`
	Contributor string `json:"contributor"`
	Total       int64  `json:"total"`
}

// handleContribute records a contribution from the caller and returns the
// caller's cumulative amount for the campaign.
func (h *Handler) handleContribute(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		badRequest(w, "invalid campaign id")
		return
	}
	var req contributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	caller, _ := callerFrom(r.Context())
	total, err := h.svc.Contribute(r.Context(), id, caller, req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contributeResponse{CampaignID: id, Contributor: string(caller), Total: total})
}

// handleContributionOf returns the cumulative amount of one contributor.
// Contributors without an entry get zero.
func (h *Handler) handleContributionOf(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		badRequest(w, "invalid campaign id")
		return
	}
	contributor := domain.Identity(chi.URLParam(r, "contributor"))
	amount, err := h.svc.ContributionOf(r.Context(), id, contributor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contributionResponse{CampaignID: id, Contributor: string(contributor), Amount: amount})
}

// handleContributionsOf lists a contributor's entries across campaigns.
func (h *Handler) handleContributionsOf(w http.ResponseWriter, r *http.Request) {
	contributor := domain.Identity(chi.URLParam(r, "contributor"))
	entries, err := h.svc.ContributionsOf(r.Context(), contributor)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]contributionResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, contributionResponse{
			CampaignID:  e.CampaignID,
			Contributor: string(e.Contributor),
			Amount:      e.Amount,
			Refunded:    e.Refunded,
		})
	}
	writeJSON(w, http.StatusOK, out)
}
