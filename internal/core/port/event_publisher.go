package port

import (
	"context"

	"mesa-fund/internal/core/domain"
)

// EventPublisher forwards committed ledger events to external observers.
// Publishing happens after commit and is best effort: the event log in
// storage remains the source of truth.
type EventPublisher interface {
	Publish(ctx context.Context, events []domain.Event) error
}

// Metrics records operation outcomes and fund movements.
type Metrics interface {
	RecordOperation(op, outcome string)
	RecordFunds(flow string, amount int64)
}
