package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"mesa-fund/internal/core/domain"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type campaignResponse struct {
	ID            int64     `json:"id"`
	Owner         string    `json:"owner"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	MediaRef      string    `json:"media_ref"`
	Goal          int64     `json:"goal"`
	CreatedAt     time.Time `json:"created_at"`
	Deadline      time.Time `json:"deadline"`
	Status        string    `json:"status"`
	TotalRaised   int64     `json:"total_raised"`
	TotalRefunded int64     `json:"total_refunded"`
	Withdrawn     bool      `json:"withdrawn"`
}

type contributionResponse struct {
	CampaignID  int64  `json:"campaign_id"`
	Contributor string `json:"contributor"`
	Amount      int64  `json:"amount"`
	Refunded    bool   `json:"refunded"`
}

type eventResponse struct {
	Seq        int64     `json:"seq"`
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	CampaignID int64     `json:"campaign_id"`
	Actor      string    `json:"actor"`
	Amount     int64     `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}

type amountResponse struct {
	CampaignID int64 `json:"campaign_id"`
	Amount     int64 `json:"amount"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:            c.ID,
		Owner:         string(c.Owner),
		Title:         c.Title,
		Description:   c.Description,
		MediaRef:      c.MediaRef,
		Goal:          c.Goal,
		CreatedAt:     c.CreatedAt,
		Deadline:      c.Deadline,
		Status:        string(c.Status),
		TotalRaised:   c.TotalRaised,
		TotalRefunded: c.TotalRefunded,
		Withdrawn:     c.Withdrawn,
	}
}

func toCampaignResponses(cs []domain.Campaign) []campaignResponse {
	out := make([]campaignResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCampaignResponse(c))
	}
	return out
}

func toEventResponses(events []domain.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, eventResponse{
			Seq:        ev.Seq,
			ID:         ev.ID.String(),
			Kind:       string(ev.Kind),
			CampaignID: ev.CampaignID,
			Actor:      string(ev.Actor),
			Amount:     ev.Amount,
			OccurredAt: ev.OccurredAt,
		})
	}
	return out
}

// statusFor maps ledger error codes to HTTP status codes. Codes that are
// not listed are lifecycle conflicts.
var statusFor = map[string]int{
	domain.ErrInvalidInput.Code:  http.StatusBadRequest,
	domain.ErrInvalidAmount.Code: http.StatusBadRequest,
	domain.ErrNotFound.Code:      http.StatusNotFound,
	domain.ErrNotOwner.Code:      http.StatusForbidden,
}

// writeError reports err to the client. Ledger errors keep their code and
// message; anything else is logged and hidden behind a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		h.logger.ErrorContext(r.Context(), "ledger error", slog.String("path", r.URL.Path), slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Code: "INTERNAL", Message: "internal error"})
		return
	}
	status, ok := statusFor[de.Code]
	if !ok {
		status = http.StatusConflict
	}
	writeJSON(w, status, errorResponse{Code: de.Code, Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Code: domain.ErrInvalidInput.Code, Message: msg})
}

// campaignID parses the {id} path parameter.
func campaignID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// intQuery parses an optional non-negative integer query parameter.
func intQuery(r *http.Request, key string) (int64, bool) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, true
	}
	n, err := strconv.ParseInt(v, 10, 64)
	return n, err == nil && n >= 0
}
