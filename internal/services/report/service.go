package report

import (
	"context"
	"time"

	"creditledger/internal/repositories/cache"

	"github.com/sirupsen/logrus"
)

type service struct {
	store Store
	cache Cache
	log   logrus.FieldLogger
}

// NewService creates the report aggregator.
func NewService(store Store, cacheSvc Cache, log logrus.FieldLogger) Service {
	if store == nil {
		panic("store is required")
	}
	if cacheSvc == nil {
		panic("cache is required")
	}
	if log == nil {
		panic("logger is required")
	}

	return &service{
		store: store,
		cache: cacheSvc,
		log:   log,
	}
}

// GetUserDailyReport reads the user's transactions for the day
// straight from the store and sums them. Per-user reports are not
// cached; only the system-wide aggregates are.
func (s *service) GetUserDailyReport(ctx context.Context, userID uint, date time.Time) (*UserDailyReport, error) {
	txns, err := s.store.FindTransactionsByUserAndDate(ctx, userID, date)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"userId": userID,
			"date":   date.UTC().Format(dayFormat),
			"error":  err.Error(),
		}).Error("failed to load user daily report")
		return nil, err
	}

	var total float64
	for _, txn := range txns {
		total += txn.Amount
	}

	return &UserDailyReport{
		UserID:       userID,
		Date:         date.UTC().Format(dayFormat),
		TotalAmount:  total,
		Transactions: txns,
	}, nil
}

// GetSystemDailyReport serves the day's totals cache-aside. A cache
// failure falls through to the store; a failed repopulation only
// costs the next reader a recompute.
func (s *service) GetSystemDailyReport(ctx context.Context, date time.Time) (*SystemDailyReport, error) {
	total, err := s.totalAmount(ctx, date)
	if err != nil {
		return nil, err
	}

	count, err := s.transactionCount(ctx, date)
	if err != nil {
		return nil, err
	}

	return &SystemDailyReport{
		Date:                  date.UTC().Format(dayFormat),
		TotalAmount:           total,
		TotalTransactionCount: count,
	}, nil
}

func (s *service) totalAmount(ctx context.Context, date time.Time) (float64, error) {
	key := cache.DailyAmountKey(date)

	var cached float64
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("cache read failed, falling back to store")
	} else if found {
		s.log.WithFields(logrus.Fields{
			"date":  date.UTC().Format(dayFormat),
			"total": cached,
		}).Debug("retrieved daily amount from cache")
		return cached, nil
	}

	total, err := s.store.SumAmountByDate(ctx, date)
	if err != nil {
		return 0, err
	}

	if err := s.cache.SetWithTTL(ctx, key, total, AmountCacheTTL); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("failed to cache daily amount")
	}
	return total, nil
}

func (s *service) transactionCount(ctx context.Context, date time.Time) (int64, error) {
	key := cache.DailyCountKey(date)

	var cached int64
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("cache read failed, falling back to store")
	} else if found {
		s.log.WithFields(logrus.Fields{
			"date":  date.UTC().Format(dayFormat),
			"count": cached,
		}).Debug("retrieved transaction count from cache")
		return cached, nil
	}

	count, err := s.store.CountByDate(ctx, date)
	if err != nil {
		return 0, err
	}

	if err := s.cache.SetWithTTL(ctx, key, count, CountCacheTTL); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("failed to cache transaction count")
	}
	return count, nil
}

// ListTransactionsByDate serves the day's full transaction list
// cache-aside, stored as compact records.
func (s *service) ListTransactionsByDate(ctx context.Context, date time.Time) ([]TransactionRecord, error) {
	key := cache.DailyTransactionsKey(date)

	var cached []TransactionRecord
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("cache read failed, falling back to store")
	} else if found {
		return cached, nil
	}

	txns, err := s.store.FindTransactionsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	records := make([]TransactionRecord, len(txns))
	for i, txn := range txns {
		records[i] = toRecord(txn)
	}

	if err := s.cache.SetWithTTL(ctx, key, records, TransactionsCacheTTL); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("failed to cache transaction list")
	}

	s.log.WithFields(logrus.Fields{
		"date":  date.UTC().Format(dayFormat),
		"count": len(records),
	}).Info("retrieved transactions from store")

	return records, nil
}
