package models

import "time"

// Transaction is a single immutable ledger entry. Positive amounts are
// credits, negative amounts are debits. Rows are inserted once and
// never updated or deleted.
type Transaction struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Amount          float64   `gorm:"not null" json:"amount"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	Reference       string    `gorm:"uniqueIndex" json:"reference"` // external reference ID
	TransactionDate time.Time `gorm:"not null;index" json:"transaction_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// Day returns the calendar day the transaction is bucketed under for
// aggregate reporting, truncated in UTC.
func (t *Transaction) Day() time.Time {
	return DayOf(t.TransactionDate)
}

// DayOf truncates ts to the start of its UTC calendar day.
func DayOf(ts time.Time) time.Time {
	ts = ts.UTC()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}
