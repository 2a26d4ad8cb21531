package zkpassport

import (
	"time"

	"github.com/zkpassport/go-zkpassport/anchors"
	"github.com/zkpassport/go-zkpassport/constants"
	"github.com/zkpassport/go-zkpassport/nullifier"
)

var defaultVerifyConfig = VerifyConfig{
	MaxFreshnessWindowDays:      constants.DefaultMaxFreshnessWindowDays,
	AcceptedRootTransitionDelay: time.Hour,
	Clock:                       time.Now,
}

// VerifyOpt sets options.
type VerifyOpt func(v *VerifyConfig)

// VerifyConfig holds the verifier options.
type VerifyConfig struct {
	// MaxFreshnessWindowDays bounds the per-call freshness window.
	MaxFreshnessWindowDays uint32
	// AcceptedRootTransitionDelay is the period a replaced registry root
	// remains acceptable after its on-chain replacement.
	AcceptedRootTransitionDelay time.Duration
	// Clock supplies the observation time for freshness checks.
	Clock func() time.Time
	// Scope, when set, must match the proof's embedded scope binding.
	Scope *nullifier.ScopeContext
	// TrustAnchors, when set, is checked for the proof's certificate
	// registry root.
	TrustAnchors *anchors.Set
	// RootResolver, when set, additionally resolves the root on-chain.
	RootResolver *anchors.CachedResolver
}

// WithMaxFreshnessWindow bounds the freshness window callers may request.
func WithMaxFreshnessWindow(days uint32) VerifyOpt {
	return func(v *VerifyConfig) {
		v.MaxFreshnessWindowDays = days
	}
}

// WithAcceptedRootTransitionDelay sets how long a replaced registry root
// stays acceptable.
func WithAcceptedRootTransitionDelay(duration time.Duration) VerifyOpt {
	return func(v *VerifyConfig) {
		v.AcceptedRootTransitionDelay = duration
	}
}

// WithClock injects the observation clock, mainly for tests.
func WithClock(clock func() time.Time) VerifyOpt {
	return func(v *VerifyConfig) {
		v.Clock = clock
	}
}

// WithScope binds the verifier to a relying party scope. Proofs generated
// for any other scope are rejected after the cryptographic check.
func WithScope(domain, subscope string) VerifyOpt {
	return func(v *VerifyConfig) {
		v.Scope = &nullifier.ScopeContext{Domain: domain, Subscope: subscope}
	}
}

// WithTrustAnchors enables the local trust anchor membership check.
func WithTrustAnchors(set *anchors.Set) VerifyOpt {
	return func(v *VerifyConfig) {
		v.TrustAnchors = set
	}
}

// WithRootResolver enables on-chain resolution of the certificate registry
// root.
func WithRootResolver(resolver *anchors.CachedResolver) VerifyOpt {
	return func(v *VerifyConfig) {
		v.RootResolver = resolver
	}
}
