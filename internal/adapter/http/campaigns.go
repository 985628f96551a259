package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"mesa-fund/internal/core/domain"
	"mesa-fund/internal/core/port"
)

type createCampaignRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	MediaRef    string    `json:"media_ref"`
	Goal        int64     `json:"goal"`
	Deadline    time.Time `json:"deadline"`
}

// handleCreateCampaign registers a campaign owned by the caller. The body
// carries title, description, media_ref, goal (smallest unit) and an
// RFC3339 deadline. It returns 201 with the new id.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON")
		return
	}
	caller, _ := callerFrom(r.Context())
	id, err := h.svc.CreateCampaign(r.Context(), caller, domain.CampaignInput{
		Title:       req.Title,
		Description: req.Description,
		MediaRef:    req.MediaRef,
		Goal:        req.Goal,
		Deadline:    req.Deadline,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

// handleGetCampaign returns one campaign with its current status.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		badRequest(w, "invalid campaign id")
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(*c))
}

// handleListCampaigns returns all campaigns oldest first. Optional owner
// and status query parameters narrow the result.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := port.CampaignFilter{Owner: domain.Identity(q.Get("owner"))}
	if s := q.Get("status"); s != "" {
		st, ok := domain.ParseStatus(s)
		if !ok {
			badRequest(w, "invalid status")
			return
		}
		filter.Status = st
	}
	campaigns, err := h.svc.ListCampaigns(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponses(campaigns))
}

// handleLatestCampaigns returns the most recent campaigns. The optional n
// query parameter sets the window size.
func (h *Handler) handleLatestCampaigns(w http.ResponseWriter, r *http.Request) {
	n, ok := intQuery(r, "n")
	if !ok {
		badRequest(w, "invalid n")
		return
	}
	campaigns, err := h.svc.ListLatestCampaigns(r.Context(), int(n))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponses(campaigns))
}
