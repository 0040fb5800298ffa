package transaction

import (
	"context"

	"creditledger/internal/models"
)

// Service applies signed amounts to user balances and appends the
// matching ledger rows, all-or-nothing.
type Service interface {
	// Process applies amount to the user's balance and records the
	// transaction inside a single atomic unit. On failure, persisted
	// state is unchanged.
	Process(ctx context.Context, userID uint, amount float64) (*models.Transaction, error)

	// InvalidateReportCaches purges every cached report aggregate.
	InvalidateReportCaches(ctx context.Context) error
}

// Cache is the slice of the aggregate cache the coordinator needs:
// purging entries tied to a write.
type Cache interface {
	Delete(ctx context.Context, keys ...string) error
	DeleteMatching(ctx context.Context, pattern string) error
}
