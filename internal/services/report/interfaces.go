package report

import (
	"context"
	"time"

	"creditledger/internal/models"
)

// Service answers daily aggregate questions over the ledger. It only
// ever reads; writes happen in the transaction coordinator.
type Service interface {
	GetUserDailyReport(ctx context.Context, userID uint, date time.Time) (*UserDailyReport, error)
	GetSystemDailyReport(ctx context.Context, date time.Time) (*SystemDailyReport, error)
	ListTransactionsByDate(ctx context.Context, date time.Time) ([]TransactionRecord, error)
}

// Store is the read-side slice of the ledger repository.
type Store interface {
	FindTransactionsByUserAndDate(ctx context.Context, userID uint, date time.Time) ([]models.Transaction, error)
	FindTransactionsByDate(ctx context.Context, date time.Time) ([]models.Transaction, error)
	SumAmountByDate(ctx context.Context, date time.Time) (float64, error)
	CountByDate(ctx context.Context, date time.Time) (int64, error)
}

// Cache is the cache-aside surface used by report reads. Get must
// report presence explicitly so a cached zero is served as a hit.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}
