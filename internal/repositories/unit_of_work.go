package repositories

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// UnitOfWork groups storage operations into a single atomic unit with
// begin/commit/rollback semantics. Beginning while a unit is already
// open, or committing/rolling back with none open, is a logged no-op
// rather than an error so callers compose without tracking nesting.
// True nesting and savepoints are not supported.
type UnitOfWork struct {
	db  *gorm.DB
	tx  *gorm.DB
	log logrus.FieldLogger
}

// NewUnitOfWork creates a unit of work over the given connection.
func NewUnitOfWork(db *gorm.DB, log logrus.FieldLogger) *UnitOfWork {
	return &UnitOfWork{db: db, log: log}
}

// Active reports whether a unit is currently open.
func (u *UnitOfWork) Active() bool {
	return u.tx != nil
}

// Begin opens a new atomic unit.
func (u *UnitOfWork) Begin() error {
	if u.tx != nil {
		u.log.Warn("begin requested while a unit is already active")
		return nil
	}

	tx := u.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("%w: begin: %v", ErrStorage, tx.Error)
	}
	u.tx = tx
	u.log.Debug("unit of work began")
	return nil
}

// Commit makes the open unit durable.
func (u *UnitOfWork) Commit() error {
	if u.tx == nil {
		u.log.Warn("commit requested with no active unit")
		return nil
	}

	err := u.tx.Commit().Error
	u.tx = nil
	if err != nil {
		return fmt.Errorf("%w: commit: %v", ErrStorage, err)
	}
	u.log.Debug("unit of work committed")
	return nil
}

// Rollback undoes the open unit.
func (u *UnitOfWork) Rollback() error {
	if u.tx == nil {
		u.log.Warn("rollback requested with no active unit")
		return nil
	}

	err := u.tx.Rollback().Error
	u.tx = nil
	if err != nil {
		return fmt.Errorf("%w: rollback: %v", ErrStorage, err)
	}
	u.log.Debug("unit of work rolled back")
	return nil
}

// Close rolls back a unit left open by a caller that returned early
// without committing. Intended for use with defer.
func (u *UnitOfWork) Close() {
	if u.tx == nil {
		return
	}
	u.log.Warn("open unit detected on close, rolling back")
	if err := u.Rollback(); err != nil {
		u.log.WithError(err).Error("failed to roll back leaked unit")
	}
}

// Ledger returns a repository bound to the open unit, or to the plain
// connection when no unit is active.
func (u *UnitOfWork) Ledger() LedgerRepository {
	if u.tx != nil {
		return &ledgerRepository{db: u.tx, log: u.log}
	}
	return &ledgerRepository{db: u.db, log: u.log}
}
