/*
Package transaction coordinates balance mutation against the ledger.

Processing a transaction is a single atomic unit of work: the user row
is locked and loaded, the amount applied to the balance, the immutable
ledger row inserted, and the day's cached report aggregates purged, all
before commit. If any step fails the unit rolls back and persisted
state is untouched.

Usage:

	svc := transaction.NewService(repo, cache, transaction.LoadConfig(), log)

	txn, err := svc.Process(ctx, userID, amount)

Policies:

  - Config.EnforceNonNegativeBalance rejects debits past zero with
    ErrInsufficientCredit. Off by default.
  - Config.StrictCacheInvalidation makes a failed cache purge roll the
    unit back instead of committing with a warning. Off by default.
*/
package transaction
