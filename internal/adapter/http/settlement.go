package httpadapter

import "net/http"

// handleCancel closes the caller's campaign. Responds 204 on success.
func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		badRequest(w, "invalid campaign id")
		return
	}
	caller, _ := callerFrom(r.Context())
	if err := h.svc.Cancel(r.Context(), id, caller); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleWithdraw releases a successful campaign's funds to its owner.
func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		badRequest(w, "invalid campaign id")
		return
	}
	caller, _ := callerFrom(r.Context())
	amount, err := h.svc.Withdraw(r.Context(), id, caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, amountResponse{CampaignID: id, Amount: amount})
}

// handleClaimRefund returns the caller's contribution from a cancelled or
// expired campaign.
func (h *Handler) handleClaimRefund(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		badRequest(w, "invalid campaign id")
		return
	}
	caller, _ := callerFrom(r.Context())
	amount, err := h.svc.ClaimRefund(r.Context(), id, caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, amountResponse{CampaignID: id, Amount: amount})
}
