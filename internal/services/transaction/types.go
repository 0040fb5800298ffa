package transaction

import "creditledger/internal/config"

// Config holds the coordinator's policy switches. Both default to the
// permissive behavior of the legacy system.
type Config struct {
	// EnforceNonNegativeBalance rejects debits that would take the
	// balance below zero. Note the user service's credit-adjustment
	// helper enforces the floor unconditionally; only this flag
	// governs the coordinator path.
	EnforceNonNegativeBalance bool

	// StrictCacheInvalidation treats a failed cache purge as fatal,
	// rolling the unit back. When off, the unit commits and the
	// stale entries age out at their TTL.
	StrictCacheInvalidation bool
}

// LoadConfig reads the coordinator policy from the environment.
func LoadConfig() Config {
	return Config{
		EnforceNonNegativeBalance: config.GetBoolEnv("ENFORCE_NON_NEGATIVE_BALANCE", false),
		StrictCacheInvalidation:   config.GetBoolEnv("STRICT_CACHE_INVALIDATION", false),
	}
}
