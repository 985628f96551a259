package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func activeCampaign(goal int64, ttl time.Duration) Campaign {
	c, err := NewCampaign("alice", CampaignInput{Title: "Solar roof", Goal: goal, Deadline: t0.Add(ttl)}, t0, DefaultTextLimits)
	if err != nil {
		panic(err)
	}
	c.ID = 1
	return c
}

func TestNewCampaignValidation(t *testing.T) {
	limits := TextLimits{Title: 10, Description: 20, MediaRef: 5}
	valid := CampaignInput{Title: "Roof", Description: "solar", Goal: 10, Deadline: t0.Add(time.Hour)}

	tests := []struct {
		name  string
		owner Identity
		edit  func(in *CampaignInput)
	}{
		{"empty owner", "  ", func(*CampaignInput) {}},
		{"empty title", "alice", func(in *CampaignInput) { in.Title = "   " }},
		{"long title", "alice", func(in *CampaignInput) { in.Title = strings.Repeat("x", 11) }},
		{"long description", "alice", func(in *CampaignInput) { in.Description = strings.Repeat("x", 21) }},
		{"long media", "alice", func(in *CampaignInput) { in.MediaRef = "ipfs://abc" }},
		{"zero goal", "alice", func(in *CampaignInput) { in.Goal = 0 }},
		{"negative goal", "alice", func(in *CampaignInput) { in.Goal = -5 }},
		{"deadline now", "alice", func(in *CampaignInput) { in.Deadline = t0 }},
		{"deadline past", "alice", func(in *CampaignInput) { in.Deadline = t0.Add(-time.Second) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.edit(&in)
			_, err := NewCampaign(tt.owner, in, t0, limits)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	c, err := NewCampaign("alice", valid, t0, limits)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, c.Status)
	assert.Equal(t, t0, c.CreatedAt)
	assert.Zero(t, c.TotalRaised)
	assert.Zero(t, c.ID)
}

func TestContributeReachesGoal(t *testing.T) {
	c := activeCampaign(10, 24*time.Hour)

	require.NoError(t, c.Contribute(3, t0.Add(time.Minute)))
	assert.Equal(t, StatusActive, c.Status)
	require.NoError(t, c.Contribute(7, t0.Add(2*time.Minute)))
	assert.Equal(t, StatusSuccessful, c.Status)
	assert.Equal(t, int64(10), c.TotalRaised)

	assert.ErrorIs(t, c.Contribute(1, t0.Add(3*time.Minute)), ErrCampaignNotActive)
	assert.Equal(t, int64(10), c.TotalRaised)
}

func TestContributeCheckOrder(t *testing.T) {
	c := activeCampaign(10, time.Second)

	assert.ErrorIs(t, c.Contribute(0, t0), ErrInvalidAmount)
	assert.ErrorIs(t, c.Contribute(-1, t0), ErrInvalidAmount)

	// past deadline wins over the status check, even while still stored Active
	assert.ErrorIs(t, c.Contribute(1, t0.Add(time.Second)), ErrDeadlinePassed)
	assert.Equal(t, StatusActive, c.Status)

	cancelled := activeCampaign(10, time.Hour)
	require.NoError(t, cancelled.Cancel("alice", t0))
	assert.ErrorIs(t, cancelled.Contribute(1, t0), ErrCampaignNotActive)
}

func TestContributeOverflow(t *testing.T) {
	c := activeCampaign(1<<62, time.Hour)
	c.TotalRaised = 1<<63 - 10
	err := c.Contribute(20, t0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, int64(1<<63-10), c.TotalRaised)
}

func TestEffectiveStatus(t *testing.T) {
	c := activeCampaign(10, time.Hour)
	deadline := c.Deadline

	assert.Equal(t, StatusActive, c.EffectiveStatus(deadline.Add(-time.Nanosecond)))
	assert.Equal(t, StatusExpired, c.EffectiveStatus(deadline))

	// At derives without mutating the stored status.
	view := c.At(deadline.Add(time.Hour))
	assert.Equal(t, StatusExpired, view.Status)
	assert.Equal(t, StatusActive, c.Status)

	// goal reached takes precedence over the deadline
	require.NoError(t, c.Contribute(10, deadline.Add(-time.Second)))
	assert.Equal(t, StatusSuccessful, c.EffectiveStatus(deadline.Add(time.Hour)))
}

func TestCancel(t *testing.T) {
	c := activeCampaign(10, time.Hour)

	assert.ErrorIs(t, c.Cancel("mallory", t0), ErrNotOwner)
	require.NoError(t, c.Cancel("alice", t0))
	assert.Equal(t, StatusCancelled, c.Status)
	assert.ErrorIs(t, c.Cancel("alice", t0), ErrAlreadyTerminal)

	expired := activeCampaign(10, time.Hour)
	assert.ErrorIs(t, expired.Cancel("alice", t0.Add(2*time.Hour)), ErrAlreadyTerminal)
	assert.Equal(t, StatusExpired, expired.Status)
}

func TestWithdraw(t *testing.T) {
	c := activeCampaign(10, time.Hour)

	_, err := c.Withdraw("alice", t0)
	assert.ErrorIs(t, err, ErrNotSuccessful)

	require.NoError(t, c.Contribute(12, t0))
	_, err = c.Withdraw("bob", t0)
	assert.ErrorIs(t, err, ErrNotOwner)

	amount, err := c.Withdraw("alice", t0)
	require.NoError(t, err)
	assert.Equal(t, int64(12), amount)
	assert.True(t, c.Withdrawn)
	assert.Zero(t, c.Available())

	_, err = c.Withdraw("alice", t0)
	assert.ErrorIs(t, err, ErrAlreadyWithdrawn)
}

func TestRefundFlow(t *testing.T) {
	c := activeCampaign(10, time.Hour)
	require.NoError(t, c.Contribute(4, t0))

	assert.ErrorIs(t, c.BeginRefund(t0), ErrNotRefundEligible)

	// expiry is applied by the refund check itself
	later := t0.Add(2 * time.Hour)
	require.NoError(t, c.BeginRefund(later))
	assert.Equal(t, StatusExpired, c.Status)

	entry := Contribution{CampaignID: c.ID, Contributor: "bob", Amount: 4}
	amount, err := entry.Settle(later)
	require.NoError(t, err)
	require.NoError(t, c.RecordRefund(amount, later))
	assert.Equal(t, int64(4), c.TotalRaised)
	assert.Equal(t, int64(4), c.TotalRefunded)
	assert.Zero(t, c.Available())

	_, err = entry.Settle(later)
	assert.ErrorIs(t, err, ErrNothingToRefund)
	assert.True(t, entry.Refunded)

	err = c.RecordRefund(1, later)
	require.Error(t, err)
	var de *Error
	assert.False(t, errors.As(err, &de))
}

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus(" Expired ")
	assert.True(t, ok)
	assert.Equal(t, StatusExpired, st)

	_, ok = ParseStatus("pending")
	assert.False(t, ok)

	assert.False(t, StatusActive.Terminal())
	assert.True(t, StatusSuccessful.Terminal())
}

func TestErrorWrapping(t *testing.T) {
	_, err := NewCampaign("alice", CampaignInput{Title: "x", Goal: 0, Deadline: t0.Add(time.Hour)}, t0, DefaultTextLimits)
	var de *Error
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "INVALID_INPUT", de.Code)
	assert.Contains(t, err.Error(), "goal must be positive")
}
