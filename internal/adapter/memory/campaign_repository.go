package memory

import (
	"context"
	"fmt"
	"sync"

	"mesa-fund/internal/core/domain"
	"mesa-fund/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository in process memory.
// Each campaign lives in its own slot with a dedicated lock so mutations of
// different campaigns never contend. The registry lock is held only to
// allocate ids and to take the slot list.
//
// Lock order: registry, slot, events.
type CampaignRepository struct {
	mu    sync.RWMutex
	slots []*slot // slots[i] holds campaign id i+1

	eventsMu sync.RWMutex
	events   []domain.Event
}

type slot struct {
	mu       sync.RWMutex
	campaign domain.Campaign
	entries  map[domain.Identity]domain.Contribution
}

// NewCampaignRepository returns an empty repository.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{}
}

// CreateCampaign stores c under the next id and logs ev.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign, ev *domain.Event) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", port.ErrStorage, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = int64(len(r.slots)) + 1
	r.slots = append(r.slots, &slot{
		campaign: *c,
		entries:  make(map[domain.Identity]domain.Contribution),
	})
	ev.CampaignID = c.ID
	committed := r.appendEvents([]domain.Event{*ev})
	*ev = committed[0]
	return nil
}

// GetCampaign returns a copy of the campaign, or nil when unknown.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrStorage, err)
	}
	s := r.slot(id)
	if s == nil {
		return nil, nil
	}
	s.mu.RLock()
	c := s.campaign
	s.mu.RUnlock()
	return &c, nil
}

// ListCampaigns returns copies of all campaigns matching the owner filter.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrStorage, err)
	}
	return r.snapshot(r.allSlots(), filter.Owner), nil
}

// ListLatestCampaigns returns the last n campaigns, oldest first.
func (r *CampaignRepository) ListLatestCampaigns(ctx context.Context, n int) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrStorage, err)
	}
	slots := r.allSlots()
	if n < 0 {
		n = 0
	}
	if n < len(slots) {
		slots = slots[len(slots)-n:]
	}
	return r.snapshot(slots, ""), nil
}

// GetContribution returns a copy of an entry, or nil when absent.
func (r *CampaignRepository) GetContribution(ctx context.Context, campaignID int64, contributor domain.Identity) (*domain.Contribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrStorage, err)
	}
	s := r.slot(campaignID)
	if s == nil {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[contributor]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// ListContributionsByContributor scans every campaign for entries of
// contributor.
func (r *CampaignRepository) ListContributionsByContributor(ctx context.Context, contributor domain.Identity) ([]domain.Contribution, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrStorage, err)
	}
	var out []domain.Contribution
	for _, s := range r.allSlots() {
		s.mu.RLock()
		if e, ok := s.entries[contributor]; ok {
			out = append(out, e)
		}
		s.mu.RUnlock()
	}
	return out, nil
}

// UpdateCampaign runs fn under the campaign's exclusive lock. Staged
// changes are applied before the lock is released, so readers observe
// either none or all of them.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, id int64, fn func(tx port.CampaignTx) error) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrStorage, err)
	}
	s := r.slot(id)
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &campaignTx{
		campaign: s.campaign,
		base:     s.entries,
		staged:   make(map[domain.Identity]domain.Contribution),
	}
	if err := fn(tx); err != nil {
		return nil, err
	}

	s.campaign = tx.campaign
	for k, v := range tx.staged {
		s.entries[k] = v
	}
	return r.appendEvents(tx.events), nil
}

// ListEvents returns events after q.After in sequence order.
func (r *CampaignRepository) ListEvents(ctx context.Context, q port.EventQuery) ([]domain.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrStorage, err)
	}
	r.eventsMu.RLock()
	defer r.eventsMu.RUnlock()

	// Seq is the 1-based position in the log.
	start := int(q.After)
	if start < 0 {
		start = 0
	}
	out := make([]domain.Event, 0)
	for i := start; i < len(r.events); i++ {
		ev := r.events[i]
		if q.CampaignID != nil && ev.CampaignID != *q.CampaignID {
			continue
		}
		out = append(out, ev)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

func (r *CampaignRepository) appendEvents(events []domain.Event) []domain.Event {
	if len(events) == 0 {
		return nil
	}
	r.eventsMu.Lock()
	defer r.eventsMu.Unlock()
	committed := make([]domain.Event, len(events))
	for i, ev := range events {
		ev.Seq = int64(len(r.events)) + 1
		r.events = append(r.events, ev)
		committed[i] = ev
	}
	return committed
}

func (r *CampaignRepository) slot(id int64) *slot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 1 || id > int64(len(r.slots)) {
		return nil
	}
	return r.slots[id-1]
}

func (r *CampaignRepository) allSlots() []*slot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*slot(nil), r.slots...)
}

func (r *CampaignRepository) snapshot(slots []*slot, owner domain.Identity) []domain.Campaign {
	out := make([]domain.Campaign, 0, len(slots))
	for _, s := range slots {
		s.mu.RLock()
		c := s.campaign
		s.mu.RUnlock()
		if owner != "" && c.Owner != owner {
			continue
		}
		out = append(out, c)
	}
	return out
}

// campaignTx stages changes against a private copy of the campaign.
type campaignTx struct {
	campaign domain.Campaign
	base     map[domain.Identity]domain.Contribution
	staged   map[domain.Identity]domain.Contribution
	events   []domain.Event
}

func (t *campaignTx) Campaign() *domain.Campaign {
	return &t.campaign
}

func (t *campaignTx) Contribution(contributor domain.Identity) (*domain.Contribution, error) {
	if e, ok := t.staged[contributor]; ok {
		return &e, nil
	}
	if e, ok := t.base[contributor]; ok {
		return &e, nil
	}
	return &domain.Contribution{CampaignID: t.campaign.ID, Contributor: contributor}, nil
}

func (t *campaignTx) PutContribution(entry domain.Contribution) {
	t.staged[entry.Contributor] = entry
}

func (t *campaignTx) Emit(ev domain.Event) {
	t.events = append(t.events, ev)
}
