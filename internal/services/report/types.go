package report

import (
	"time"

	"creditledger/internal/models"
)

// UserDailyReport is the per-user view of a calendar day: the summed
// amount plus the full transaction list behind it.
type UserDailyReport struct {
	UserID       uint                 `json:"user_id"`
	Date         string               `json:"date"`
	TotalAmount  float64              `json:"total_amount"`
	Transactions []models.Transaction `json:"transactions"`
}

// SystemDailyReport is the system-wide view of a calendar day.
type SystemDailyReport struct {
	Date                  string  `json:"date"`
	TotalAmount           float64 `json:"total_amount"`
	TotalTransactionCount int64   `json:"total_transactions"`
}

// TransactionRecord is the compact shape stored in the cache for
// per-day transaction lists. It deliberately carries plain fields
// only, decoupling the cache payload from the gorm model.
type TransactionRecord struct {
	ID     uint    `json:"id"`
	UserID uint    `json:"user_id"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

func toRecord(txn models.Transaction) TransactionRecord {
	return TransactionRecord{
		ID:     txn.ID,
		UserID: txn.UserID,
		Amount: txn.Amount,
		Date:   txn.TransactionDate.UTC().Format(time.RFC3339),
	}
}
