package repositories

import (
	"context"
	"time"

	"creditledger/internal/models"
)

// LedgerRepository is durable CRUD over users and transactions plus
// the day-bucketed aggregate queries the report layer reads through.
// ExecuteInTransaction runs fn against a repository bound to a single
// atomic unit of work; any error from fn rolls the whole unit back.
type LedgerRepository interface {
	SaveUser(ctx context.Context, user *models.User) (*models.User, error)
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	// FindUserByIDForUpdate takes a row lock on the user for the
	// duration of the enclosing unit, serializing concurrent balance
	// updates to the same row.
	FindUserByIDForUpdate(ctx context.Context, id uint) (*models.User, error)
	FindAllUsers(ctx context.Context, page, limit int) ([]models.User, error)

	SaveTransaction(ctx context.Context, txn *models.Transaction) (*models.Transaction, error)
	FindTransactionsByUserAndDate(ctx context.Context, userID uint, date time.Time) ([]models.Transaction, error)
	FindTransactionsByDate(ctx context.Context, date time.Time) ([]models.Transaction, error)
	SumAmountByDate(ctx context.Context, date time.Time) (float64, error)
	CountByDate(ctx context.Context, date time.Time) (int64, error)

	ExecuteInTransaction(fn func(tx LedgerRepository) error) error
}
