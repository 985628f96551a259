package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names a ledger event. Values double as message routing keys.
type EventKind string

const (
	EventCampaignCreated      EventKind = "campaign.created"
	EventContributionRecorded EventKind = "contribution.recorded"
	EventCampaignCancelled    EventKind = "campaign.cancelled"
	EventFundsWithdrawn       EventKind = "funds.withdrawn"
	EventRefundClaimed        EventKind = "refund.claimed"
)

// Event is an entry of the append-only ledger log. Seq is assigned by
// storage when the event is committed and increases with commit order.
// The log is secondary to campaign state and only used by observers.
type Event struct {
	Seq        int64
	ID         uuid.UUID
	Kind       EventKind
	CampaignID int64
	Actor      Identity
	Amount     int64
	OccurredAt time.Time
}

// NewEvent returns an uncommitted event with a fresh ID.
func NewEvent(kind EventKind, campaignID int64, actor Identity, amount int64, now time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Kind:       kind,
		CampaignID: campaignID,
		Actor:      actor,
		Amount:     amount,
		OccurredAt: now,
	}
}
