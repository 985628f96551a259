package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-fund/internal/adapter/memory"
	"mesa-fund/internal/core/domain"
	"mesa-fund/internal/core/port"
	"mesa-fund/internal/core/port/mocks"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type countingMetrics struct {
	mu       sync.Mutex
	outcomes map[string]int
	funds    map[string]int64
}

func (m *countingMetrics) RecordOperation(op, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcomes == nil {
		m.outcomes = make(map[string]int)
	}
	m.outcomes[op+"/"+outcome]++
}

func (m *countingMetrics) RecordFunds(flow string, amount int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.funds == nil {
		m.funds = make(map[string]int64)
	}
	m.funds[flow] += amount
}

func newLedger(t *testing.T) (*LedgerUseCase, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	return NewLedgerUseCase(memory.NewCampaignRepository(), WithClock(clock)), clock
}

func create(t *testing.T, svc *LedgerUseCase, owner domain.Identity, goal int64, ttl time.Duration) int64 {
	t.Helper()
	id, err := svc.CreateCampaign(context.Background(), owner, domain.CampaignInput{
		Title:    "Community garden",
		Goal:     goal,
		Deadline: svc.Now().Add(ttl),
	})
	require.NoError(t, err)
	return id
}

// TestGoalReached creates a campaign and reaches its goal in two contributions.
func TestGoalReached(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLedger(t)
	id := create(t, svc, "owner", 10, 24*time.Hour)

	total, err := svc.Contribute(ctx, id, "bob", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	c, err := svc.GetCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, c.Status)

	_, err = svc.Contribute(ctx, id, "carol", 7)
	require.NoError(t, err)

	c, err = svc.GetCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccessful, c.Status)
	assert.Equal(t, int64(10), c.TotalRaised)
}

// TestCancelAndRefund cancels a campaign and refunds its only contributor.
func TestCancelAndRefund(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLedger(t)
	id := create(t, svc, "owner", 10, 24*time.Hour)

	_, err := svc.Contribute(ctx, id, "bob", 4)
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, id, "owner"))

	c, err := svc.GetCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, c.Status)

	amount, err := svc.ClaimRefund(ctx, id, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(4), amount)

	_, err = svc.ClaimRefund(ctx, id, "bob")
	assert.ErrorIs(t, err, domain.ErrNothingToRefund)

	_, err = svc.ClaimRefund(ctx, id, "stranger")
	assert.ErrorIs(t, err, domain.ErrNothingToRefund)

	left, err := svc.ContributionOf(ctx, id, "bob")
	require.NoError(t, err)
	assert.Zero(t, left)

	assert.ErrorIs(t, svc.Cancel(ctx, id, "owner"), domain.ErrAlreadyTerminal)
}

// TestDeadlinePassed rejects late contributions and observes the expiry on read.
func TestDeadlinePassed(t *testing.T) {
	ctx := context.Background()
	svc, clock := newLedger(t)
	id := create(t, svc, "owner", 10, time.Second)

	clock.Advance(2 * time.Second)
	_, err := svc.Contribute(ctx, id, "bob", 1)
	assert.ErrorIs(t, err, domain.ErrDeadlinePassed)

	c, err := svc.GetCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, c.Status)

	expired, err := svc.ListCampaigns(ctx, port.CampaignFilter{Status: domain.StatusExpired})
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, id, expired[0].ID)

	assert.ErrorIs(t, svc.Cancel(ctx, id, "owner"), domain.ErrAlreadyTerminal)
}

// TestWithdrawOnce releases the funds to the owner exactly once.
func TestWithdrawOnce(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLedger(t)
	id := create(t, svc, "owner", 10, time.Hour)

	_, err := svc.Contribute(ctx, id, "bob", 10)
	require.NoError(t, err)

	_, err = svc.Withdraw(ctx, id, "bob")
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	amount, err := svc.Withdraw(ctx, id, "owner")
	require.NoError(t, err)
	assert.Equal(t, int64(10), amount)

	_, err = svc.Withdraw(ctx, id, "owner")
	assert.ErrorIs(t, err, domain.ErrAlreadyWithdrawn)

	c, err := svc.GetCampaign(ctx, id)
	require.NoError(t, err)
	assert.True(t, c.Withdrawn)
	assert.Equal(t, int64(10), c.TotalRaised)
	assert.Zero(t, c.Available())

	_, err = svc.ClaimRefund(ctx, id, "bob")
	assert.ErrorIs(t, err, domain.ErrNotRefundEligible)
}

func TestExpiredRefund(t *testing.T) {
	ctx := context.Background()
	svc, clock := newLedger(t)
	id := create(t, svc, "owner", 100, time.Hour)

	_, err := svc.Contribute(ctx, id, "bob", 30)
	require.NoError(t, err)
	_, err = svc.Contribute(ctx, id, "bob", 20)
	require.NoError(t, err)

	_, err = svc.ClaimRefund(ctx, id, "bob")
	assert.ErrorIs(t, err, domain.ErrNotRefundEligible)

	clock.Advance(time.Hour)
	amount, err := svc.ClaimRefund(ctx, id, "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(50), amount)

	c, err := svc.GetCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, c.Status)
	assert.Equal(t, int64(50), c.TotalRaised)
	assert.Equal(t, int64(50), c.TotalRefunded)

	_, err = svc.Withdraw(ctx, id, "owner")
	assert.ErrorIs(t, err, domain.ErrNotSuccessful)
}

func TestContributeValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLedger(t)
	id := create(t, svc, "owner", 10, time.Hour)

	_, err := svc.Contribute(ctx, id, "", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.Contribute(ctx, id, "bob", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = svc.Contribute(ctx, 99, "bob", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetCampaign(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.ContributionOf(ctx, 99, "bob")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	none, err := svc.ContributionOf(ctx, id, "bob")
	require.NoError(t, err)
	assert.Zero(t, none)
}

func TestListings(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLedger(t)
	for i := 0; i < 6; i++ {
		owner := domain.Identity("alice")
		if i%2 == 1 {
			owner = "bob"
		}
		create(t, svc, owner, 10, time.Hour)
	}

	all, err := svc.ListCampaigns(ctx, port.CampaignFilter{})
	require.NoError(t, err)
	require.Len(t, all, 6)
	for i, c := range all {
		assert.Equal(t, int64(i+1), c.ID)
	}

	bobs, err := svc.ListCampaigns(ctx, port.CampaignFilter{Owner: "bob"})
	require.NoError(t, err)
	require.Len(t, bobs, 3)
	assert.Equal(t, int64(2), bobs[0].ID)

	latest, err := svc.ListLatestCampaigns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, latest, 4)
	assert.Equal(t, int64(3), latest[0].ID)
	assert.Equal(t, int64(6), latest[3].ID)

	latest, err = svc.ListLatestCampaigns(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, latest, 6)

	_, err = svc.Contribute(ctx, 1, "carol", 2)
	require.NoError(t, err)
	_, err = svc.Contribute(ctx, 4, "carol", 5)
	require.NoError(t, err)
	entries, err := svc.ContributionsOf(ctx, "carol")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(1), entries[0].CampaignID)
	assert.Equal(t, int64(5), entries[1].Amount)
}

func TestEventLog(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLedger(t)
	a := create(t, svc, "owner", 5, time.Hour)
	b := create(t, svc, "owner", 5, time.Hour)

	_, err := svc.Contribute(ctx, a, "bob", 5)
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(ctx, b, "owner"))
	_, err = svc.Withdraw(ctx, a, "owner")
	require.NoError(t, err)

	events, err := svc.Events(ctx, port.EventQuery{})
	require.NoError(t, err)
	kinds := make([]domain.EventKind, 0, len(events))
	for i, ev := range events {
		assert.Equal(t, int64(i+1), ev.Seq)
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []domain.EventKind{
		domain.EventCampaignCreated,
		domain.EventCampaignCreated,
		domain.EventContributionRecorded,
		domain.EventCampaignCancelled,
		domain.EventFundsWithdrawn,
	}, kinds)
	assert.Equal(t, b, events[1].CampaignID)
	assert.Equal(t, int64(5), events[4].Amount)

	forA, err := svc.Events(ctx, port.EventQuery{CampaignID: &a, After: 1})
	require.NoError(t, err)
	require.Len(t, forA, 2)
	assert.Equal(t, domain.EventContributionRecorded, forA[0].Kind)

	missing := int64(42)
	_, err = svc.Events(ctx, port.EventQuery{CampaignID: &missing})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// rejected operations leave no trace in the log
	_, err = svc.Withdraw(ctx, a, "owner")
	require.Error(t, err)
	again, err := svc.Events(ctx, port.EventQuery{After: 5})
	require.NoError(t, err)
	assert.Empty(t, again)
}

// TestConcurrentContributions ensures totals match the sum of entries under contention.
func TestConcurrentContributions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLedger(t)
	id := create(t, svc, "owner", 1_000_000, time.Hour)

	const workers, perWorker = 16, 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			who := domain.Identity(fmt.Sprintf("c%d", w%4))
			for i := 0; i < perWorker; i++ {
				_, err := svc.Contribute(ctx, id, who, 3)
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	c, err := svc.GetCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker*3), c.TotalRaised)

	var sum int64
	for i := 0; i < 4; i++ {
		amount, err := svc.ContributionOf(ctx, id, domain.Identity(fmt.Sprintf("c%d", i)))
		require.NoError(t, err)
		sum += amount
	}
	assert.Equal(t, c.TotalRaised, sum)
}

// TestConcurrentWithdraw ensures racing withdrawals release the funds once.
func TestConcurrentWithdraw(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLedger(t)
	id := create(t, svc, "owner", 10, time.Hour)
	_, err := svc.Contribute(ctx, id, "bob", 10)
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		released  atomic.Int64
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			amount, err := svc.Withdraw(ctx, id, "owner")
			if err == nil {
				succeeded.Add(1)
				released.Add(amount)
				return
			}
			assert.ErrorIs(t, err, domain.ErrAlreadyWithdrawn)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int64(10), released.Load())
}

// TestContributionJustBeforeGoalAndDeadline checks that reaching the goal
// in the last instant before the deadline wins over expiry.
func TestContributionJustBeforeGoalAndDeadline(t *testing.T) {
	ctx := context.Background()
	svc, clock := newLedger(t)
	id := create(t, svc, "owner", 10, time.Minute)

	clock.Advance(time.Minute - time.Nanosecond)
	_, err := svc.Contribute(ctx, id, "bob", 10)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	c, err := svc.GetCampaign(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccessful, c.Status)
}

func TestMetricsOutcomes(t *testing.T) {
	ctx := context.Background()
	m := &countingMetrics{}
	clock := newFakeClock()
	svc := NewLedgerUseCase(memory.NewCampaignRepository(), WithClock(clock), WithMetrics(m))
	id := create(t, svc, "owner", 10, time.Hour)

	_, err := svc.Contribute(ctx, id, "bob", 10)
	require.NoError(t, err)
	_, err = svc.Contribute(ctx, id, "bob", 1)
	require.Error(t, err)
	_, err = svc.Withdraw(ctx, id, "owner")
	require.NoError(t, err)

	assert.Equal(t, 1, m.outcomes["create/ok"])
	assert.Equal(t, 1, m.outcomes["contribute/ok"])
	assert.Equal(t, 1, m.outcomes["contribute/CAMPAIGN_NOT_ACTIVE"])
	assert.Equal(t, 1, m.outcomes["withdraw/ok"])
	assert.Equal(t, int64(10), m.funds["contribute"])
	assert.Equal(t, int64(10), m.funds["withdraw"])
}

// TestStorageFailure surfaces infrastructure errors without mapping them to domain errors.
func TestStorageFailure(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	m := &countingMetrics{}
	storageErr := fmt.Errorf("%w: connection refused", port.ErrStorage)

	repo.EXPECT().
		UpdateCampaign(mock.Anything, int64(7), mock.Anything).
		Return(nil, storageErr)

	svc := NewLedgerUseCase(repo, WithMetrics(m))
	_, err := svc.Contribute(context.Background(), 7, "bob", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrStorage)

	var de *domain.Error
	assert.False(t, errors.As(err, &de))
	assert.Equal(t, 1, m.outcomes["contribute/storage"])
}

// TestPublishAfterCommit ensures events reach the publisher only on success
// and that publish failures do not fail the operation.
func TestPublishAfterCommit(t *testing.T) {
	ctx := context.Background()
	pub := mocks.NewMockEventPublisher(t)
	clock := newFakeClock()
	svc := NewLedgerUseCase(memory.NewCampaignRepository(), WithClock(clock), WithPublisher(pub))

	pub.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(evs []domain.Event) bool {
			return len(evs) == 1 && evs[0].Kind == domain.EventCampaignCreated && evs[0].CampaignID == 1
		})).
		Return(nil).
		Once()
	id := create(t, svc, "owner", 10, time.Hour)

	pub.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(evs []domain.Event) bool {
			return len(evs) == 1 && evs[0].Kind == domain.EventContributionRecorded && evs[0].Seq == 2
		})).
		Return(errors.New("broker down")).
		Once()
	total, err := svc.Contribute(ctx, id, "bob", 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	// rejected: nothing published
	_, err = svc.Withdraw(ctx, id, "owner")
	assert.ErrorIs(t, err, domain.ErrNotSuccessful)
}

func TestCancelRejectsNonOwner(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	clock := newFakeClock()
	campaign := domain.Campaign{
		ID: 3, Owner: "owner", Goal: 10, Status: domain.StatusActive,
		CreatedAt: clock.Now(), Deadline: clock.Now().Add(time.Hour),
	}

	repo.EXPECT().
		UpdateCampaign(mock.Anything, int64(3), mock.Anything).
		RunAndReturn(func(_ context.Context, _ int64, fn func(port.CampaignTx) error) ([]domain.Event, error) {
			tx := &stubTx{campaign: campaign}
			if err := fn(tx); err != nil {
				return nil, err
			}
			return tx.events, nil
		})

	svc := NewLedgerUseCase(repo, WithClock(clock))
	assert.ErrorIs(t, svc.Cancel(context.Background(), 3, "intruder"), domain.ErrNotOwner)
}

type stubTx struct {
	campaign domain.Campaign
	events   []domain.Event
}

func (s *stubTx) Campaign() *domain.Campaign { return &s.campaign }

func (s *stubTx) Contribution(who domain.Identity) (*domain.Contribution, error) {
	return &domain.Contribution{CampaignID: s.campaign.ID, Contributor: who}, nil
}

func (s *stubTx) PutContribution(domain.Contribution) {}

func (s *stubTx) Emit(ev domain.Event) { s.events = append(s.events, ev) }
