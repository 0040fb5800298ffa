package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"creditledger/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ledgerRepository struct {
	db  *gorm.DB
	log logrus.FieldLogger
}

// NewLedgerRepository creates a gorm-backed ledger repository.
func NewLedgerRepository(db *gorm.DB, log logrus.FieldLogger) LedgerRepository {
	return &ledgerRepository{db: db, log: log}
}

func (r *ledgerRepository) SaveUser(ctx context.Context, user *models.User) (*models.User, error) {
	if !user.Persisted() {
		if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
			return nil, fmt.Errorf("%w: create user: %v", ErrStorage, err)
		}
		return user, nil
	}

	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, fmt.Errorf("%w: update user %d: %v", ErrStorage, user.ID, err)
	}
	return user, nil
}

func (r *ledgerRepository) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: find user %d: %v", ErrStorage, id, err)
	}
	return &user, nil
}

func (r *ledgerRepository) FindUserByIDForUpdate(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: lock user %d: %v", ErrStorage, id, err)
	}
	return &user, nil
}

func (r *ledgerRepository) FindAllUsers(ctx context.Context, page, limit int) ([]models.User, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var users []models.User
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %v", ErrStorage, err)
	}
	return users, nil
}

func (r *ledgerRepository) SaveTransaction(ctx context.Context, txn *models.Transaction) (*models.Transaction, error) {
	// Transactions are append-only, always an insert.
	if err := r.db.WithContext(ctx).Create(txn).Error; err != nil {
		return nil, fmt.Errorf("%w: create transaction for user %d: %v", ErrStorage, txn.UserID, err)
	}
	return txn, nil
}

func (r *ledgerRepository) FindTransactionsByUserAndDate(ctx context.Context, userID uint, date time.Time) ([]models.Transaction, error) {
	start, end := dayRange(date)

	var txns []models.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND transaction_date >= ? AND transaction_date < ?", userID, start, end).
		Order("transaction_date").
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("%w: find transactions for user %d: %v", ErrStorage, userID, err)
	}
	return txns, nil
}

func (r *ledgerRepository) FindTransactionsByDate(ctx context.Context, date time.Time) ([]models.Transaction, error) {
	start, end := dayRange(date)

	var txns []models.Transaction
	err := r.db.WithContext(ctx).
		Where("transaction_date >= ? AND transaction_date < ?", start, end).
		Order("created_at DESC").
		Find(&txns).Error
	if err != nil {
		return nil, fmt.Errorf("%w: find transactions for %s: %v", ErrStorage, start.Format("2006-01-02"), err)
	}
	return txns, nil
}

func (r *ledgerRepository) SumAmountByDate(ctx context.Context, date time.Time) (float64, error) {
	start, end := dayRange(date)

	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("transaction_date >= ? AND transaction_date < ?", start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("%w: sum amounts for %s: %v", ErrStorage, start.Format("2006-01-02"), err)
	}
	return total, nil
}

func (r *ledgerRepository) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	start, end := dayRange(date)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("transaction_date >= ? AND transaction_date < ?", start, end).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: count transactions for %s: %v", ErrStorage, start.Format("2006-01-02"), err)
	}
	return count, nil
}

func (r *ledgerRepository) ExecuteInTransaction(fn func(tx LedgerRepository) error) error {
	uow := NewUnitOfWork(r.db, r.log)
	if err := uow.Begin(); err != nil {
		return err
	}
	defer uow.Close()

	if err := fn(uow.Ledger()); err != nil {
		if rbErr := uow.Rollback(); rbErr != nil {
			r.log.WithError(rbErr).Error("rollback failed after unit error")
		}
		return err
	}

	return uow.Commit()
}

// dayRange is the half-open [start, end) window covering the UTC
// calendar day of date. Bucketing compares the day, not time-of-day.
func dayRange(date time.Time) (time.Time, time.Time) {
	start := models.DayOf(date)
	return start, start.Add(24 * time.Hour)
}
