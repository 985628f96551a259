package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-fund/internal/core/domain"
	"mesa-fund/internal/core/port"
)

// eventLogLockKey is the advisory lock taken right before events are
// inserted. Holding it until commit makes seq order equal commit order, so
// observers paging by seq never skip an event.
const eventLogLockKey = 7_240_311

const campaignColumns = `id, owner, title, description, media_ref, goal, created_at, deadline,
	status, total_raised, total_refunded, withdrawn, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// CreateCampaign inserts the campaign and its creation event in one
// transaction.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign, ev *domain.Event) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return storageErr(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `INSERT INTO campaigns
    (owner, title, description, media_ref, goal, created_at, deadline, status,
     total_raised, total_refunded, withdrawn, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) RETURNING id`,
		string(c.Owner), c.Title, c.Description, c.MediaRef, c.Goal, c.CreatedAt, c.Deadline,
		string(c.Status), c.TotalRaised, c.TotalRefunded, c.Withdrawn, c.UpdatedAt).Scan(&c.ID)
	if err != nil {
		return storageErr(err)
	}

	ev.CampaignID = c.ID
	committed, err := insertEvents(ctx, tx, []domain.Event{*ev})
	if err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return storageErr(err)
	}
	*ev = committed[0]
	return nil
}

// GetCampaign returns a campaign by id.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return c, nil
}

// ListCampaigns returns campaigns ordered by id, optionally for one owner.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	var args []any
	if filter.Owner != "" {
		query += ` WHERE owner = $1`
		args = append(args, string(filter.Owner))
	}
	query += ` ORDER BY id`
	return r.queryCampaigns(ctx, query, args...)
}

// ListLatestCampaigns returns the last n campaigns, oldest of the window
// first.
func (r *CampaignRepository) ListLatestCampaigns(ctx context.Context, n int) ([]domain.Campaign, error) {
	if n < 0 {
		n = 0
	}
	return r.queryCampaigns(ctx, `SELECT * FROM (
    SELECT `+campaignColumns+` FROM campaigns ORDER BY id DESC LIMIT $1
) latest ORDER BY id`, n)
}

// GetContribution returns the entry of contributor for a campaign.
func (r *CampaignRepository) GetContribution(ctx context.Context, campaignID int64, contributor domain.Identity) (*domain.Contribution, error) {
	e, err := scanContribution(r.pool.QueryRow(ctx,
		`SELECT campaign_id, contributor, amount, refunded, updated_at FROM contributions WHERE campaign_id = $1 AND contributor = $2`,
		campaignID, string(contributor)))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return e, nil
}

// ListContributionsByContributor returns the entries of contributor
// ordered by campaign id.
func (r *CampaignRepository) ListContributionsByContributor(ctx context.Context, contributor domain.Identity) ([]domain.Contribution, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT campaign_id, contributor, amount, refunded, updated_at FROM contributions WHERE contributor = $1 ORDER BY campaign_id`,
		string(contributor))
	if err != nil {
		return nil, storageErr(err)
	}
	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Contribution, error) {
		e, err := scanContribution(row)
		if err != nil {
			return domain.Contribution{}, err
		}
		return *e, nil
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return entries, nil
}

// UpdateCampaign locks the campaign row for the duration of fn and writes
// the campaign, staged entries and events in the same transaction.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, id int64, fn func(tx port.CampaignTx) error) (events []domain.Event, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, storageErr(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// lock campaign
	c, err := scanCampaign(tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, storageErr(err)
	}

	stx := &campaignTx{ctx: ctx, tx: tx, campaign: *c, staged: make(map[domain.Identity]domain.Contribution)}
	if err = fn(stx); err != nil {
		return nil, err
	}

	u := stx.campaign
	_, err = tx.Exec(ctx, `UPDATE campaigns SET status = $1, total_raised = $2, total_refunded = $3,
    withdrawn = $4, updated_at = $5 WHERE id = $6`,
		string(u.Status), u.TotalRaised, u.TotalRefunded, u.Withdrawn, u.UpdatedAt, u.ID)
	if err != nil {
		return nil, storageErr(err)
	}
	for _, e := range stx.staged {
		_, err = tx.Exec(ctx, `INSERT INTO contributions (campaign_id, contributor, amount, refunded, updated_at)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (campaign_id, contributor) DO UPDATE
SET amount = EXCLUDED.amount, refunded = EXCLUDED.refunded, updated_at = EXCLUDED.updated_at`,
			e.CampaignID, string(e.Contributor), e.Amount, e.Refunded, e.UpdatedAt)
		if err != nil {
			return nil, storageErr(err)
		}
	}
	if events, err = insertEvents(ctx, tx, stx.events); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, storageErr(err)
	}
	return events, nil
}

// ListEvents returns events after q.After ordered by seq.
func (r *CampaignRepository) ListEvents(ctx context.Context, q port.EventQuery) ([]domain.Event, error) {
	query := `SELECT seq, id::text, kind, campaign_id, actor, amount, occurred_at FROM ledger_events WHERE seq > $1`
	args := []any{q.After}
	if q.CampaignID != nil {
		args = append(args, *q.CampaignID)
		query += fmt.Sprintf(` AND campaign_id = $%d`, len(args))
	}
	query += ` ORDER BY seq`
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storageErr(err)
	}
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		var (
			ev    domain.Event
			id    string
			kind  string
			actor string
		)
		if err := row.Scan(&ev.Seq, &id, &kind, &ev.CampaignID, &actor, &ev.Amount, &ev.OccurredAt); err != nil {
			return ev, err
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return ev, err
		}
		ev.ID, ev.Kind, ev.Actor = parsed, domain.EventKind(kind), domain.Identity(actor)
		return ev, nil
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return events, nil
}

func (r *CampaignRepository) queryCampaigns(ctx context.Context, query string, args ...any) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storageErr(err)
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return campaigns, nil
}

// campaignTx reads entries through the open transaction. Writes are
// staged and flushed by UpdateCampaign after fn returns.
type campaignTx struct {
	ctx      context.Context
	tx       pgx.Tx
	campaign domain.Campaign
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
	e, err := scanContribution(t.tx.QueryRow(t.ctx,
		`SELECT campaign_id, contributor, amount, refunded, updated_at FROM contributions WHERE campaign_id = $1 AND contributor = $2`,
		t.campaign.ID, string(contributor)))
	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.Contribution{CampaignID: t.campaign.ID, Contributor: contributor}, nil
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return e, nil
}

func (t *campaignTx) PutContribution(entry domain.Contribution) {
	t.staged[entry.Contributor] = entry
}

func (t *campaignTx) Emit(ev domain.Event) {
	t.events = append(t.events, ev)
}

func insertEvents(ctx context.Context, tx pgx.Tx, events []domain.Event) ([]domain.Event, error) {
	if len(events) == 0 {
		return nil, nil
	}
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, eventLogLockKey); err != nil {
		return nil, storageErr(err)
	}
	committed := make([]domain.Event, len(events))
	for i, ev := range events {
		err := tx.QueryRow(ctx, `INSERT INTO ledger_events (id, kind, campaign_id, actor, amount, occurred_at)
VALUES ($1::uuid,$2,$3,$4,$5,$6) RETURNING seq`,
			ev.ID.String(), string(ev.Kind), ev.CampaignID, string(ev.Actor), ev.Amount, ev.OccurredAt).Scan(&ev.Seq)
		if err != nil {
			return nil, storageErr(err)
		}
		committed[i] = ev
	}
	return committed, nil
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c      domain.Campaign
		owner  string
		status string
	)
	err := row.Scan(&c.ID, &owner, &c.Title, &c.Description, &c.MediaRef, &c.Goal, &c.CreatedAt, &c.Deadline,
		&status, &c.TotalRaised, &c.TotalRefunded, &c.Withdrawn, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Owner, c.Status = domain.Identity(owner), domain.Status(status)
	c.CreatedAt, c.Deadline, c.UpdatedAt = utc(c.CreatedAt), utc(c.Deadline), utc(c.UpdatedAt)
	return &c, nil
}

func scanContribution(row pgx.Row) (*domain.Contribution, error) {
	var (
		e           domain.Contribution
		contributor string
	)
	if err := row.Scan(&e.CampaignID, &contributor, &e.Amount, &e.Refunded, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.Contributor, e.UpdatedAt = domain.Identity(contributor), utc(e.UpdatedAt)
	return &e, nil
}

func utc(t time.Time) time.Time {
	return t.UTC()
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %w", port.ErrStorage, err)
}
