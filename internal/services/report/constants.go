package report

import "time"

// Cache expiries per aggregate. The daily amount changes rarely once
// the day is over, so it gets the long TTL; the count and the raw
// list turn over faster.
const (
	AmountCacheTTL       = 24 * time.Hour
	CountCacheTTL        = time.Hour
	TransactionsCacheTTL = time.Hour
)

const dayFormat = "2006-01-02"
