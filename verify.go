// Package zkpassport verifies zero-knowledge passport proofs and extracts
// their scoped nullifiers. Claim extraction from the committed inputs lives
// in the claims package and is deliberately decoupled from verification, so
// a caller decodes only the claims it needs.
package zkpassport

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/zkpassport/go-zkpassport/committed"
	"github.com/zkpassport/go-zkpassport/constants"
	"github.com/zkpassport/go-zkpassport/nullifier"
	"github.com/zkpassport/go-zkpassport/proofs"
	"github.com/zkpassport/go-zkpassport/registry"
	"github.com/zkpassport/go-zkpassport/types"
)

// ErrUntrustedAnchor is returned when the proof's certificate registry root
// is not in the configured trust anchor set or cannot be accepted on-chain.
var ErrUntrustedAnchor = errors.New("untrusted certificate registry root")

// ErrStaleProof is returned when the proof's embedded current date falls
// outside the caller's freshness window. Rejected before the cryptographic
// check.
var ErrStaleProof = errors.New("proof current date is outside the freshness window")

// ProofBundle carries everything one verification call needs.
type ProofBundle struct {
	// VKeyID names the circuit + proving-backend combination.
	VKeyID types.VerificationKeyID
	// Proof is the encoded proof, in whatever format the registered
	// backend expects.
	Proof []byte
	// PublicInputs are the proof's public inputs, ordered per the outer
	// circuit's slot table (see the constants package).
	PublicInputs []*big.Int
	// CommittedInputs is the concatenation of the committed input segments.
	CommittedInputs []byte
	// SegmentLengths delimits CommittedInputs, one entry per segment.
	SegmentLengths []int
}

// Verifier is the verification orchestrator for one relying party. It is
// stateless per call; the only shared state it touches is the registry and
// the trust anchor set, both of which are safe for concurrent reads.
type Verifier struct {
	registry *registry.Registry
	cfg      VerifyConfig
}

// NewVerifier creates a Verifier over the given registry.
func NewVerifier(reg *registry.Registry, opts ...VerifyOpt) (*Verifier, error) {
	if reg == nil {
		return nil, errors.New("registry must not be nil")
	}
	cfg := defaultVerifyConfig
	for _, o := range opts {
		o(&cfg)
	}
	return &Verifier{registry: reg, cfg: cfg}, nil
}

// VerifyProof runs the per-call state machine:
//
//	StructuralCheck -> CryptoVerify -> ExtractNullifier
//
// Structural, registry and anchor failures abort with a typed error before
// the expensive cryptographic check runs. A cryptographically rejected proof
// is not an error: the result carries Verified=false and the zero nullifier.
// A nullifier is never derived from unverified inputs.
func (v *Verifier) VerifyProof(ctx context.Context, bundle ProofBundle, freshnessWindowDays uint32) (*types.VerificationResult, error) {
	verifier, err := v.structuralCheck(ctx, bundle, freshnessWindowDays)
	if err != nil {
		return nil, err
	}

	// The only computationally expensive step, and the only one that can
	// classify a well-formed but false proof.
	if err := verifier.Verify(bundle.Proof, bundle.PublicInputs); err != nil {
		if errors.Is(err, proofs.ErrInvalidProof) {
			return &types.VerificationResult{Verified: false}, nil
		}
		return nil, err
	}

	n, err := nullifier.Derive(bundle.PublicInputs, v.cfg.Scope)
	if err != nil {
		return nil, err
	}
	return &types.VerificationResult{Verified: true, Nullifier: n}, nil
}

func (v *Verifier) structuralCheck(ctx context.Context, bundle ProofBundle, freshnessWindowDays uint32) (proofs.ProofVerifier, error) {
	if err := committed.ValidateLayout(bundle.CommittedInputs, bundle.SegmentLengths); err != nil {
		return nil, err
	}
	if len(bundle.PublicInputs) < constants.MinPublicInputs {
		return nil, errors.WithMessagef(committed.ErrStructural,
			"%d public inputs, at least %d required", len(bundle.PublicInputs), constants.MinPublicInputs)
	}
	for i, in := range bundle.PublicInputs {
		if in == nil {
			return nil, errors.WithMessagef(committed.ErrStructural, "public input %d is nil", i)
		}
	}
	if freshnessWindowDays > v.cfg.MaxFreshnessWindowDays {
		return nil, errors.WithMessagef(committed.ErrStructural,
			"freshness window of %d days exceeds the configured bound of %d",
			freshnessWindowDays, v.cfg.MaxFreshnessWindowDays)
	}

	verifier, err := v.registry.Lookup(bundle.VKeyID)
	if err != nil {
		return nil, err
	}

	if err := v.checkFreshness(bundle.PublicInputs[constants.PubInputCurrentDate], freshnessWindowDays); err != nil {
		return nil, err
	}
	if err := v.checkAnchor(ctx, bundle.PublicInputs[constants.PubInputCertificateRegistryRoot]); err != nil {
		return nil, err
	}
	return verifier, nil
}

// checkFreshness is a data check against the injected clock, not a timeout:
// the embedded current date must not sit in the future and must not be older
// than the requested window.
func (v *Verifier) checkFreshness(currentDate *big.Int, freshnessWindowDays uint32) error {
	if !currentDate.IsInt64() {
		return errors.WithMessage(committed.ErrStructural, "current date slot is not a timestamp")
	}
	embedded := time.Unix(currentDate.Int64(), 0).UTC()
	now := v.cfg.Clock().UTC()

	// A prover just across a date line may be up to one day ahead.
	if embedded.After(now.Add(24 * time.Hour)) {
		return errors.WithMessagef(ErrStaleProof, "current date %s is in the future", embedded.Format(time.RFC3339))
	}
	window := time.Duration(freshnessWindowDays) * 24 * time.Hour
	if now.Sub(embedded) > window {
		return errors.WithMessagef(ErrStaleProof, "current date %s is older than %d days", embedded.Format(time.RFC3339), freshnessWindowDays)
	}
	return nil
}

// checkAnchor applies the off-circuit trust anchor checks that are
// configured. The circuit constrains the root as well; this layer does not
// assume that makes the local checks redundant.
func (v *Verifier) checkAnchor(ctx context.Context, root *big.Int) error {
	if v.cfg.TrustAnchors != nil {
		if !v.cfg.TrustAnchors.Contains(common.BigToHash(root)) {
			return errors.WithMessagef(ErrUntrustedAnchor, "root %s", common.BigToHash(root).Hex())
		}
	}
	if v.cfg.RootResolver != nil {
		resolved, err := v.cfg.RootResolver.Resolve(ctx, root)
		if err != nil {
			return errors.WithMessage(ErrUntrustedAnchor, err.Error())
		}
		if !resolved.Latest {
			replacedAt := time.Unix(resolved.ReplacedAtTimestamp, 0)
			if v.cfg.Clock().Sub(replacedAt) > v.cfg.AcceptedRootTransitionDelay {
				return errors.WithMessagef(ErrUntrustedAnchor,
					"root %s was replaced at %s", resolved.Root, replacedAt.UTC().Format(time.RFC3339))
			}
		}
	}
	return nil
}
