package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mesa-fund/internal/core/domain"
	"mesa-fund/internal/core/port"
)

// Operation names used for logging and metrics labels.
const (
	opCreate     = "create"
	opContribute = "contribute"
	opCancel     = "cancel"
	opWithdraw   = "withdraw"
	opRefund     = "claim_refund"
)

// LedgerUseCase provides the campaign lifecycle, contribution accounting
// and fund release rules. It orchestrates the domain and the repository to
// implement port.LedgerUseCase. All state changes of an operation run
// inside a single repository update so they commit or fail together.
type LedgerUseCase struct {
	repo      port.CampaignRepository
	publisher port.EventPublisher
	metrics   port.Metrics
	clock     port.Clock
	logger    *slog.Logger

	limits        domain.TextLimits
	latestDefault int
	latestMax     int
}

// Option configures a LedgerUseCase.
type Option func(*LedgerUseCase)

// WithClock overrides the wall clock.
func WithClock(c port.Clock) Option {
	return func(u *LedgerUseCase) { u.clock = c }
}

// WithPublisher forwards committed events to p.
func WithPublisher(p port.EventPublisher) Option {
	return func(u *LedgerUseCase) { u.publisher = p }
}

// WithMetrics records operation outcomes to m.
func WithMetrics(m port.Metrics) Option {
	return func(u *LedgerUseCase) { u.metrics = m }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(u *LedgerUseCase) { u.logger = l }
}

// WithTextLimits bounds campaign text fields.
func WithTextLimits(l domain.TextLimits) Option {
	return func(u *LedgerUseCase) { u.limits = l }
}

// WithLatestWindow sets the default and maximum size of the latest view.
func WithLatestWindow(def, max int) Option {
	return func(u *LedgerUseCase) {
		if def > 0 {
			u.latestDefault = def
		}
		if max > 0 {
			u.latestMax = max
		}
	}
}

// NewLedgerUseCase creates a new usecase with the provided repository.
// Without options it uses the system clock, discards events and metrics
// and logs to slog.Default.
func NewLedgerUseCase(repo port.CampaignRepository, opts ...Option) *LedgerUseCase {
	u := &LedgerUseCase{
		repo:          repo,
		publisher:     discardPublisher{},
		metrics:       discardMetrics{},
		clock:         port.SystemClock{},
		logger:        slog.Default(),
		limits:        domain.DefaultTextLimits,
		latestDefault: 4,
		latestMax:     100,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Now returns the ledger's current time.
func (u *LedgerUseCase) Now() time.Time {
	return u.clock.Now()
}

// CreateCampaign validates the input and registers a new Active campaign.
func (u *LedgerUseCase) CreateCampaign(ctx context.Context, owner domain.Identity, in domain.CampaignInput) (int64, error) {
	now := u.clock.Now()
	c, err := domain.NewCampaign(owner, in, now, u.limits)
	if err != nil {
		return 0, u.finish(ctx, opCreate, 0, nil, err)
	}
	ev := domain.NewEvent(domain.EventCampaignCreated, 0, owner, 0, now)
	if err = u.repo.CreateCampaign(ctx, &c, &ev); err != nil {
		return 0, u.finish(ctx, opCreate, 0, nil, err)
	}
	return c.ID, u.finish(ctx, opCreate, 0, []domain.Event{ev}, nil, slog.Int64("campaign_id", c.ID))
}

// GetCampaign returns a campaign as observed now.
func (u *LedgerUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	view := c.At(u.clock.Now())
	return &view, nil
}

// ListCampaigns returns all campaigns oldest first, filtered by owner and
// by effective status.
func (u *LedgerUseCase) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	campaigns, err := u.repo.ListCampaigns(ctx, port.CampaignFilter{Owner: filter.Owner})
	if err != nil {
		return nil, err
	}
	now := u.clock.Now()
	out := campaigns[:0]
	for _, c := range campaigns {
		c = c.At(now)
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

// ListLatestCampaigns returns the most recent n campaigns, oldest first.
func (u *LedgerUseCase) ListLatestCampaigns(ctx context.Context, n int) ([]domain.Campaign, error) {
	if n <= 0 {
		n = u.latestDefault
	}
	if n > u.latestMax {
		n = u.latestMax
	}
	campaigns, err := u.repo.ListLatestCampaigns(ctx, n)
	if err != nil {
		return nil, err
	}
	now := u.clock.Now()
	for i := range campaigns {
		campaigns[i] = campaigns[i].At(now)
	}
	return campaigns, nil
}

// Contribute records a contribution and moves the campaign to Successful
// when the goal is reached.
func (u *LedgerUseCase) Contribute(ctx context.Context, id int64, contributor domain.Identity, amount int64) (int64, error) {
	if !contributor.Valid() {
		return 0, u.finish(ctx, opContribute, 0, nil, fmt.Errorf("%w: contributor identity is required", domain.ErrInvalidInput))
	}
	if amount <= 0 {
		return 0, u.finish(ctx, opContribute, 0, nil, domain.ErrInvalidAmount)
	}
	var total int64
	events, err := u.repo.UpdateCampaign(ctx, id, func(tx port.CampaignTx) error {
		now := u.clock.Now()
		c := tx.Campaign()
		if err := c.Contribute(amount, now); err != nil {
			return err
		}
		entry, err := tx.Contribution(contributor)
		if err != nil {
			return err
		}
		total = entry.Add(amount, now)
		tx.PutContribution(*entry)
		tx.Emit(domain.NewEvent(domain.EventContributionRecorded, c.ID, contributor, amount, now))
		return nil
	})
	if err != nil {
		return 0, u.finish(ctx, opContribute, 0, nil, err, slog.Int64("campaign_id", id))
	}
	return total, u.finish(ctx, opContribute, amount, events, nil,
		slog.Int64("campaign_id", id), slog.String("contributor", contributor.String()), slog.Int64("amount", amount))
}

// ContributionOf returns the cumulative contribution of contributor.
func (u *LedgerUseCase) ContributionOf(ctx context.Context, id int64, contributor domain.Identity) (int64, error) {
	e, err := u.repo.GetContribution(ctx, id, contributor)
	if err != nil {
		return 0, err
	}
	if e != nil {
		return e.Amount, nil
	}
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return 0, err
	}
	if c == nil {
		return 0, domain.ErrNotFound
	}
	return 0, nil
}

// ContributionsOf lists entries of contributor across campaigns.
func (u *LedgerUseCase) ContributionsOf(ctx context.Context, contributor domain.Identity) ([]domain.Contribution, error) {
	return u.repo.ListContributionsByContributor(ctx, contributor)
}

// Cancel closes an Active campaign. Cancelled campaigns are refund-eligible.
func (u *LedgerUseCase) Cancel(ctx context.Context, id int64, caller domain.Identity) error {
	events, err := u.repo.UpdateCampaign(ctx, id, func(tx port.CampaignTx) error {
		now := u.clock.Now()
		c := tx.Campaign()
		if err := c.Cancel(caller, now); err != nil {
			return err
		}
		tx.Emit(domain.NewEvent(domain.EventCampaignCancelled, c.ID, caller, 0, now))
		return nil
	})
	return u.finish(ctx, opCancel, 0, events, err, slog.Int64("campaign_id", id))
}

// Withdraw releases a Successful campaign's balance to its owner. The
// withdrawn marker is set in the same update, so a second call fails with
// domain.ErrAlreadyWithdrawn.
func (u *LedgerUseCase) Withdraw(ctx context.Context, id int64, caller domain.Identity) (int64, error) {
	var amount int64
	events, err := u.repo.UpdateCampaign(ctx, id, func(tx port.CampaignTx) error {
		now := u.clock.Now()
		c := tx.Campaign()
		var err error
		if amount, err = c.Withdraw(caller, now); err != nil {
			return err
		}
		tx.Emit(domain.NewEvent(domain.EventFundsWithdrawn, c.ID, caller, amount, now))
		return nil
	})
	if err != nil {
		return 0, u.finish(ctx, opWithdraw, 0, nil, err, slog.Int64("campaign_id", id))
	}
	return amount, u.finish(ctx, opWithdraw, amount, events, nil,
		slog.Int64("campaign_id", id), slog.Int64("amount", amount))
}

// ClaimRefund settles the caller's entry of a Cancelled or Expired
// campaign and returns the refunded amount.
func (u *LedgerUseCase) ClaimRefund(ctx context.Context, id int64, caller domain.Identity) (int64, error) {
	var amount int64
	events, err := u.repo.UpdateCampaign(ctx, id, func(tx port.CampaignTx) error {
		now := u.clock.Now()
		c := tx.Campaign()
		if err := c.BeginRefund(now); err != nil {
			return err
		}
		entry, err := tx.Contribution(caller)
		if err != nil {
			return err
		}
		if amount, err = entry.Settle(now); err != nil {
			return err
		}
		if err = c.RecordRefund(amount, now); err != nil {
			return err
		}
		tx.PutContribution(*entry)
		tx.Emit(domain.NewEvent(domain.EventRefundClaimed, c.ID, caller, amount, now))
		return nil
	})
	if err != nil {
		return 0, u.finish(ctx, opRefund, 0, nil, err, slog.Int64("campaign_id", id))
	}
	return amount, u.finish(ctx, opRefund, amount, events, nil,
		slog.Int64("campaign_id", id), slog.String("contributor", caller.String()), slog.Int64("amount", amount))
}

// Events reads the event log.
func (u *LedgerUseCase) Events(ctx context.Context, q port.EventQuery) ([]domain.Event, error) {
	if q.CampaignID != nil {
		c, err := u.repo.GetCampaign(ctx, *q.CampaignID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, domain.ErrNotFound
		}
	}
	return u.repo.ListEvents(ctx, q)
}

// finish records the outcome of a mutating operation, publishes committed
// events and returns err unchanged. Publishing failures are logged only:
// the operation has already committed.
func (u *LedgerUseCase) finish(ctx context.Context, op string, amount int64, events []domain.Event, err error, attrs ...slog.Attr) error {
	if err != nil {
		outcome := "storage"
		var de *domain.Error
		if errors.As(err, &de) {
			outcome = de.Code
		}
		u.metrics.RecordOperation(op, outcome)
		if outcome == "storage" {
			u.logger.LogAttrs(ctx, slog.LevelError, "ledger operation failed",
				append(attrs, slog.String("op", op), slog.Any("error", err))...)
		} else {
			u.logger.LogAttrs(ctx, slog.LevelDebug, "ledger operation rejected",
				append(attrs, slog.String("op", op), slog.String("code", outcome))...)
		}
		return err
	}

	u.metrics.RecordOperation(op, "ok")
	if amount > 0 {
		u.metrics.RecordFunds(op, amount)
	}
	u.logger.LogAttrs(ctx, slog.LevelInfo, "ledger operation committed", append(attrs, slog.String("op", op))...)

	if len(events) > 0 {
		if perr := u.publisher.Publish(ctx, events); perr != nil {
			u.logger.LogAttrs(ctx, slog.LevelWarn, "event publish failed",
				slog.String("op", op), slog.Int("events", len(events)), slog.Any("error", perr))
		}
	}
	return nil
}

type discardPublisher struct{}

func (discardPublisher) Publish(context.Context, []domain.Event) error { return nil }

type discardMetrics struct{}

func (discardMetrics) RecordOperation(string, string) {}
func (discardMetrics) RecordFunds(string, int64)      {}
