// Package constants declares the public-input slot table of the outer
// circuit and the library-wide defaults.
package constants

import "time"

// Public-input slot indices. The ordering is fixed by the outer circuit's
// public-input layout and must not drift independently of the circuit side.
const (
	// PubInputCertificateRegistryRoot is the Merkle root over accepted
	// certificate authorities the proof was built against.
	PubInputCertificateRegistryRoot = 0
	// PubInputCircuitRegistryRoot is the Merkle root over the accepted
	// sub-circuit verification keys.
	PubInputCircuitRegistryRoot = 1
	// PubInputCurrentDate is the prover's current date as a Unix timestamp
	// truncated to a day boundary.
	PubInputCurrentDate = 2
	// PubInputServiceScope is the field element binding the proof to the
	// relying party's domain.
	PubInputServiceScope = 3
	// PubInputServiceSubscope optionally narrows the scope within one
	// relying party (zero when unused).
	PubInputServiceSubscope = 4
	// PubInputScopedNullifier is the precomputed scoped nullifier.
	PubInputScopedNullifier = 5

	// MinPublicInputs is the minimum number of public-input slots a proof
	// must carry for this library to interpret it.
	MinPublicInputs = 6
)

const (
	// DefaultMaxFreshnessWindowDays bounds the caller-supplied freshness
	// window. Callers asking for a wider window are rejected structurally.
	DefaultMaxFreshnessWindowDays uint32 = 180

	// DefaultCacheMaxSize is the default entry cap for resolver caches.
	DefaultCacheMaxSize int64 = 10_000
)

// RootCacheOptions holds the default TTLs for on-chain registry root
// resolution. Latest roots are re-checked more often than replaced
// (historical) ones, which are immutable once superseded.
var RootCacheOptions = CacheTTLOptions{
	LatestTTL:   5 * time.Minute,
	ReplacedTTL: time.Hour,
}

// CacheTTLOptions defines the TTL options for resolver cache entries.
type CacheTTLOptions struct {
	LatestTTL   time.Duration
	ReplacedTTL time.Duration
}
