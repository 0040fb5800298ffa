package models

import "time"

// User is an account holder with a running credit balance. The balance
// is mutated only through UpdateCredit so that every change flows
// through the same code path as the ledger insert.
type User struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	Credit    float64 `gorm:"not null;default:0" json:"credit"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Persisted reports whether the user has been assigned an identifier
// by the store.
func (u *User) Persisted() bool {
	return u.ID != 0
}

// UpdateCredit adds amount to the running balance. Negative amounts
// debit the account.
func (u *User) UpdateCredit(amount float64) {
	u.Credit += amount
}
