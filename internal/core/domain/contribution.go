package domain

import "time"

// Contribution is the cumulative amount one contributor sent to one
// campaign. Refunded marks an entry that was settled back to the
// contributor; its Amount is zero from then on.
type Contribution struct {
	CampaignID  int64
	Contributor Identity
	Amount      int64
	Refunded    bool
	UpdatedAt   time.Time
}

// Add increments the entry and returns the new cumulative amount.
func (e *Contribution) Add(amount int64, now time.Time) int64 {
	e.Amount += amount
	e.UpdatedAt = now
	return e.Amount
}

// Settle zeroes the entry and returns the amount to hand back.
func (e *Contribution) Settle(now time.Time) (int64, error) {
	if e.Amount <= 0 {
		return 0, ErrNothingToRefund
	}
	amount := e.Amount
	e.Amount = 0
	e.Refunded = true
	e.UpdatedAt = now
	return amount, nil
}
