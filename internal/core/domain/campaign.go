package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Status is the lifecycle state of a campaign. Active is the only
// non-terminal state.
type Status string

const (
	StatusActive     Status = "active"
	StatusCancelled  Status = "cancelled"
	StatusSuccessful Status = "successful"
	StatusExpired    Status = "expired"
)

// ParseStatus converts the textual form of a status. The second return
// value is false for unknown values.
func ParseStatus(s string) (Status, bool) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusActive, StatusCancelled, StatusSuccessful, StatusExpired:
		return st, true
	default:
		return "", false
	}
}

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s != StatusActive
}

// TextLimits bounds the free-form text fields of a campaign, in bytes.
type TextLimits struct {
	Title       int
	Description int
	MediaRef    int
}

// DefaultTextLimits are used when no limits are configured.
var DefaultTextLimits = TextLimits{Title: 200, Description: 5000, MediaRef: 2048}

// CampaignInput carries the caller-supplied fields of a new campaign.
type CampaignInput struct {
	Title       string
	Description string
	MediaRef    string
	Goal        int64
	Deadline    time.Time
}

// Campaign is one fundraising effort. Amounts are stored in the smallest
// monetary unit. TotalRaised is frozen once the campaign is terminal;
// refunds are tracked separately in TotalRefunded so that
// TotalRaised-TotalRefunded always equals the sum of open contributions.
type Campaign struct {
	ID            int64
	Owner         Identity
	Title         string
	Description   string
	MediaRef      string
	Goal          int64
	CreatedAt     time.Time
	Deadline      time.Time
	Status        Status
	TotalRaised   int64
	TotalRefunded int64
	Withdrawn     bool
	UpdatedAt     time.Time
}

// NewCampaign validates in and returns an Active campaign owned by owner.
// The ID is left zero; storage assigns it.
func NewCampaign(owner Identity, in CampaignInput, now time.Time, limits TextLimits) (Campaign, error) {
	title := strings.TrimSpace(in.Title)
	switch {
	case !owner.Valid():
		return Campaign{}, fmt.Errorf("%w: owner identity is required", ErrInvalidInput)
	case title == "":
		return Campaign{}, fmt.Errorf("%w: title is empty", ErrInvalidInput)
	case limits.Title > 0 && len(title) > limits.Title:
		return Campaign{}, fmt.Errorf("%w: title exceeds %d bytes", ErrInvalidInput, limits.Title)
	case limits.Description > 0 && len(in.Description) > limits.Description:
		return Campaign{}, fmt.Errorf("%w: description exceeds %d bytes", ErrInvalidInput, limits.Description)
	case limits.MediaRef > 0 && len(in.MediaRef) > limits.MediaRef:
		return Campaign{}, fmt.Errorf("%w: media reference exceeds %d bytes", ErrInvalidInput, limits.MediaRef)
	case in.Goal <= 0:
		return Campaign{}, fmt.Errorf("%w: goal must be positive", ErrInvalidInput)
	case !in.Deadline.After(now):
		return Campaign{}, fmt.Errorf("%w: deadline must be in the future", ErrInvalidInput)
	}
	return Campaign{
		Owner:       owner,
		Title:       title,
		Description: in.Description,
		MediaRef:    strings.TrimSpace(in.MediaRef),
		Goal:        in.Goal,
		CreatedAt:   now,
		Deadline:    in.Deadline,
		Status:      StatusActive,
		UpdatedAt:   now,
	}, nil
}

// GoalReached reports whether contributions cover the goal.
func (c *Campaign) GoalReached() bool {
	return c.TotalRaised >= c.Goal
}

// EffectiveStatus derives the status at now. An Active campaign whose
// deadline has passed without reaching its goal is Expired even if the
// stored status has not been updated yet.
func (c *Campaign) EffectiveStatus(now time.Time) Status {
	if c.Status == StatusActive && !c.GoalReached() && !now.Before(c.Deadline) {
		return StatusExpired
	}
	return c.Status
}

// Resolve applies the lazy expiry transition in place.
func (c *Campaign) Resolve(now time.Time) {
	if st := c.EffectiveStatus(now); st != c.Status {
		c.Status = st
		c.UpdatedAt = now
	}
}

// At returns a copy of c as observed at now, without mutating c.
func (c Campaign) At(now time.Time) Campaign {
	c.Status = c.EffectiveStatus(now)
	return c
}

// RefundEligible reports whether contributors may reclaim their funds.
func (c *Campaign) RefundEligible(now time.Time) bool {
	switch c.EffectiveStatus(now) {
	case StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// Available returns the escrowed balance still held for the campaign.
func (c *Campaign) Available() int64 {
	if c.Withdrawn {
		return 0
	}
	return c.TotalRaised - c.TotalRefunded
}

// Contribute adds amount to the campaign total. The deadline check runs
// before the status check, and a contribution that reaches the goal moves
// the campaign to Successful within the same call.
func (c *Campaign) Contribute(amount int64, now time.Time) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if !now.Before(c.Deadline) {
		return ErrDeadlinePassed
	}
	c.Resolve(now)
	if c.Status != StatusActive {
		return ErrCampaignNotActive
	}
	if c.TotalRaised > math.MaxInt64-amount {
		return fmt.Errorf("%w: total would overflow", ErrInvalidAmount)
	}
	c.TotalRaised += amount
	if c.GoalReached() {
		c.Status = StatusSuccessful
	}
	c.UpdatedAt = now
	return nil
}

// Cancel closes an Active campaign on behalf of its owner and makes it
// refund-eligible.
func (c *Campaign) Cancel(caller Identity, now time.Time) error {
	if caller != c.Owner {
		return ErrNotOwner
	}
	c.Resolve(now)
	if c.Status != StatusActive {
		return ErrAlreadyTerminal
	}
	c.Status = StatusCancelled
	c.UpdatedAt = now
	return nil
}

// Withdraw releases the raised funds to the owner exactly once and returns
// the released amount.
func (c *Campaign) Withdraw(caller Identity, now time.Time) (int64, error) {
	if caller != c.Owner {
		return 0, ErrNotOwner
	}
	c.Resolve(now)
	if c.Status != StatusSuccessful {
		return 0, ErrNotSuccessful
	}
	if c.Withdrawn {
		return 0, ErrAlreadyWithdrawn
	}
	c.Withdrawn = true
	c.UpdatedAt = now
	return c.TotalRaised, nil
}

// BeginRefund checks refund eligibility and persists a pending expiry.
func (c *Campaign) BeginRefund(now time.Time) error {
	c.Resolve(now)
	if !c.RefundEligible(now) {
		return ErrNotRefundEligible
	}
	return nil
}

// RecordRefund accounts for amount returned to a contributor. It refuses
// to refund more than was raised.
func (c *Campaign) RecordRefund(amount int64, now time.Time) error {
	if amount <= 0 {
		return ErrNothingToRefund
	}
	if c.TotalRefunded+amount > c.TotalRaised {
		return fmt.Errorf("refund of %d exceeds escrow of campaign %d", amount, c.ID)
	}
	c.TotalRefunded += amount
	c.UpdatedAt = now
	return nil
}
