package transaction

import (
	"context"
	"time"

	"creditledger/internal/models"
	"creditledger/internal/repositories"
	"creditledger/internal/repositories/cache"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type service struct {
	repo   repositories.LedgerRepository
	cache  Cache
	config Config
	log    logrus.FieldLogger
	now    func() time.Time
}

// NewService creates the transaction coordinator.
func NewService(repo repositories.LedgerRepository, cacheSvc Cache, cfg Config, log logrus.FieldLogger) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cacheSvc == nil {
		panic("cache is required")
	}
	if log == nil {
		panic("logger is required")
	}

	return &service{
		repo:   repo,
		cache:  cacheSvc,
		config: cfg,
		log:    log,
		now:    time.Now,
	}
}

// Process runs the atomic unit: lock and load the user, apply the
// amount, append the ledger row, purge the day's cached aggregates,
// commit. Any failure rolls the whole unit back before the error is
// returned, so balance and ledger never diverge.
func (s *service) Process(ctx context.Context, userID uint, amount float64) (*models.Transaction, error) {
	var saved *models.Transaction

	err := s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		user, err := tx.FindUserByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		if s.config.EnforceNonNegativeBalance && amount < 0 && -amount > user.Credit {
			return ErrInsufficientCredit
		}

		txn := &models.Transaction{
			Amount:          amount,
			UserID:          user.ID,
			Reference:       uuid.NewString(),
			TransactionDate: s.now().UTC(),
		}

		user.UpdateCredit(amount)
		if _, err := tx.SaveUser(ctx, user); err != nil {
			return err
		}

		saved, err = tx.SaveTransaction(ctx, txn)
		if err != nil {
			return err
		}

		// Purge the day's aggregates before commit so no reader can
		// observe the new row alongside a stale cached total.
		if err := s.cache.Delete(ctx, cache.DailyKeys(txn.TransactionDate)...); err != nil {
			if s.config.StrictCacheInvalidation {
				return err
			}
			s.log.WithFields(logrus.Fields{
				"date":  txn.Day().Format("2006-01-02"),
				"error": err.Error(),
			}).Warn("cache invalidation failed, reports may be stale until TTL expiry")
		}

		return nil
	})

	if err != nil {
		s.log.WithFields(logrus.Fields{
			"userId": userID,
			"amount": amount,
			"error":  err.Error(),
		}).Error("transaction failed")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"transactionId": saved.ID,
		"userId":        userID,
		"amount":        amount,
	}).Info("transaction processed successfully")

	return saved, nil
}

// InvalidateReportCaches drops every cached report aggregate across
// all dates. Reports recompute from the ledger on their next read.
func (s *service) InvalidateReportCaches(ctx context.Context) error {
	if err := s.cache.DeleteMatching(ctx, cache.ReportKeyPattern); err != nil {
		s.log.WithError(err).Error("failed to flush report caches")
		return err
	}
	s.log.Info("report caches flushed")
	return nil
}
