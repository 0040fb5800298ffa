package cache

import (
	"fmt"
	"time"
)

// Report cache keys are versioned by prefix so the stored format can
// evolve without serving stale shapes to older readers.
const (
	reportKeyPrefix = "report:v1"

	// ReportKeyPattern matches every report aggregate key.
	ReportKeyPattern = reportKeyPrefix + ":*"
)

const dayFormat = "2006-01-02"

// DailyAmountKey is the cache key for the system-wide amount total of
// a calendar day.
func DailyAmountKey(date time.Time) string {
	return fmt.Sprintf("%s:amount:%s", reportKeyPrefix, date.UTC().Format(dayFormat))
}

// DailyCountKey is the cache key for the system-wide transaction count
// of a calendar day.
func DailyCountKey(date time.Time) string {
	return fmt.Sprintf("%s:count:%s", reportKeyPrefix, date.UTC().Format(dayFormat))
}

// DailyTransactionsKey is the cache key for the cached transaction
// list of a calendar day.
func DailyTransactionsKey(date time.Time) string {
	return fmt.Sprintf("%s:transactions:%s", reportKeyPrefix, date.UTC().Format(dayFormat))
}

// DailyKeys returns every aggregate key scoped to the given day, in
// the order amount, count, transactions. Writers purge all of them
// inside the same unit that inserts the ledger row.
func DailyKeys(date time.Time) []string {
	return []string{
		DailyAmountKey(date),
		DailyCountKey(date),
		DailyTransactionsKey(date),
	}
}
