package port

import (
	"context"
	"time"

	"mesa-fund/internal/core/domain"
)

// LedgerUseCase defines the business operations exposed by the campaign
// ledger. This interface represents the primary port into the application
// domain. Every mutating operation is atomic: it either commits all of its
// changes and events or none.
type LedgerUseCase interface {
	// CreateCampaign registers a new Active campaign owned by owner and
	// returns its id.
	CreateCampaign(ctx context.Context, owner domain.Identity, in domain.CampaignInput) (int64, error)

	// GetCampaign returns a campaign with its status resolved at the
	// current time.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// ListCampaigns returns every campaign matching filter, oldest first.
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)

	// ListLatestCampaigns returns the last n created campaigns, oldest of
	// the window first. Non-positive n selects the configured default.
	ListLatestCampaigns(ctx context.Context, n int) ([]domain.Campaign, error)

	// Contribute records amount from contributor and returns the
	// contributor's new cumulative amount for the campaign.
	Contribute(ctx context.Context, id int64, contributor domain.Identity, amount int64) (int64, error)

	// ContributionOf returns the cumulative amount of contributor, zero
	// when they never contributed.
	ContributionOf(ctx context.Context, id int64, contributor domain.Identity) (int64, error)

	// ContributionsOf lists every entry of contributor across campaigns.
	ContributionsOf(ctx context.Context, contributor domain.Identity) ([]domain.Contribution, error)

	// Cancel closes an Active campaign on behalf of its owner.
	Cancel(ctx context.Context, id int64, caller domain.Identity) error

	// Withdraw releases a Successful campaign's funds to its owner once
	// and returns the released amount.
	Withdraw(ctx context.Context, id int64, caller domain.Identity) (int64, error)

	// ClaimRefund hands a contributor's entry back from a Cancelled or
	// Expired campaign and returns the refunded amount.
	ClaimRefund(ctx context.Context, id int64, caller domain.Identity) (int64, error)

	// Events reads the append-only event log.
	Events(ctx context.Context, q EventQuery) ([]domain.Event, error)

	// Now returns the ledger's current time.
	Now() time.Time
}
