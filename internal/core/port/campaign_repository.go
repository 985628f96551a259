package port

import (
	"context"
	"errors"

	"mesa-fund/internal/core/domain"
)

// ErrStorage marks infrastructure failures of the persistence layer. It is
// opaque and never one of the domain errors; implementations wrap the
// driver error alongside it.
var ErrStorage = errors.New("storage unavailable")

// CampaignRepository defines the persistence layer for the ledger. It is an
// outbound port in hexagonal architecture. Implementations must serialize
// mutations per campaign and never expose partially applied updates to
// readers.
type CampaignRepository interface {
	// CreateCampaign stores c, assigning the next campaign id to c.ID, and
	// appends ev to the event log in the same unit. ev.CampaignID and
	// ev.Seq are filled in.
	CreateCampaign(ctx context.Context, c *domain.Campaign, ev *domain.Event) error
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// ListCampaigns returns campaigns oldest first by id.
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	// ListLatestCampaigns returns the n most recently created campaigns,
	// oldest of the window first.
	ListLatestCampaigns(ctx context.Context, n int) ([]domain.Campaign, error)
	// GetContribution returns the entry of contributor for a campaign, or
	// nil when none exists.
	GetContribution(ctx context.Context, campaignID int64, contributor domain.Identity) (*domain.Contribution, error)
	// ListContributionsByContributor returns all entries of contributor
	// ordered by campaign id.
	ListContributionsByContributor(ctx context.Context, contributor domain.Identity) ([]domain.Contribution, error)
	// UpdateCampaign runs fn with exclusive access to the campaign and its
	// entries. When fn returns nil every change staged through tx commits
	// atomically and the committed events are returned; otherwise nothing
	// is applied and fn's error is returned unchanged. Unknown ids yield
	// domain.ErrNotFound.
	UpdateCampaign(ctx context.Context, id int64, fn func(tx CampaignTx) error) ([]domain.Event, error)
	// ListEvents reads the append-only event log.
	ListEvents(ctx context.Context, q EventQuery) ([]domain.Event, error)
}

// CampaignTx is the view of one campaign inside UpdateCampaign.
type CampaignTx interface {
	// Campaign returns the locked campaign. Mutations made through the
	// pointer are persisted on commit.
	Campaign() *domain.Campaign
	// Contribution returns the current entry of contributor, or a zero
	// entry when none exists yet. The result is a copy; use
	// PutContribution to stage changes.
	Contribution(contributor domain.Identity) (*domain.Contribution, error)
	// PutContribution stages an entry write.
	PutContribution(entry domain.Contribution)
	// Emit stages an event for the log.
	Emit(ev domain.Event)
}

// CampaignFilter narrows ListCampaigns. Zero values match everything.
// Status is matched against the effective status and is applied by the
// use case, not by storage.
type CampaignFilter struct {
	Owner  domain.Identity
	Status domain.Status
}

// EventQuery selects events with Seq greater than After, optionally for
// one campaign, up to Limit entries.
type EventQuery struct {
	CampaignID *int64
	After      int64
	Limit      int
}
