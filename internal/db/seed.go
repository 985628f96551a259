package db

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"mesa-fund/internal/core/domain"
	"mesa-fund/internal/core/port"
)

// Seed creates n demo campaigns through the ledger, each with a handful of
// contributions from random identities. Some campaigns reach their goal.
// It goes through the use case so every seeded change is logged as an
// event like any other.
func Seed(ctx context.Context, svc port.LedgerUseCase, n int) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := svc.Now()

	for i := 1; i <= n; i++ {
		owner := domain.Identity("0x" + uuid.NewString()[:8])
		goal := int64(1000 * (r.Intn(10) + 1))
		id, err := svc.CreateCampaign(ctx, owner, domain.CampaignInput{
			Title:       fmt.Sprintf("Campaign %d", i),
			Description: fmt.Sprintf("Demo campaign %d", i),
			MediaRef:    fmt.Sprintf("https://example.com/media/%d.png", i),
			Goal:        goal,
			Deadline:    now.AddDate(0, 0, 7+r.Intn(30)),
		})
		if err != nil {
			return err
		}

		contributions := 1 + r.Intn(5)
		for j := 0; j < contributions; j++ {
			contributor := domain.Identity("0x" + uuid.NewString()[:8])
			amount := int64(100 * (r.Intn(8) + 1))
			if _, err = svc.Contribute(ctx, id, contributor, amount); err != nil {
				// stop contributing once the goal is reached
				if errors.Is(err, domain.ErrCampaignNotActive) {
					break
				}
				return err
			}
		}
	}
	return nil
}
