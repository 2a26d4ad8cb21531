// Package nullifier extracts the scoped nullifier from a proof's public
// inputs.
//
// The nullifier is precomputed inside the circuit as a deterministic
// function of the document and the relying party's scope; this package only
// reads it out of its designated slot. It never re-hashes or otherwise
// transforms the value: any deviation here would break consistency across
// verification calls, which is exactly what the nullifier exists to provide.
package nullifier

import (
	"math/big"

	"github.com/iden3/go-iden3-crypto/poseidon"
	"github.com/pkg/errors"

	"github.com/zkpassport/go-zkpassport/constants"
	"github.com/zkpassport/go-zkpassport/types"
)

// ErrScopeMismatch is returned when the proof was generated for a different
// relying party scope than the one verifying it.
var ErrScopeMismatch = errors.New("proof is bound to a different scope")

// ErrMalformedPublicInputs is returned when the public inputs do not carry
// the slots the outer circuit defines.
var ErrMalformedPublicInputs = errors.New("malformed public inputs")

// ScopeContext identifies the relying application asking for verification.
// Proofs bound to one scope yield nullifiers unlinkable to the same
// document's nullifiers under any other scope.
type ScopeContext struct {
	// Domain is the relying party's domain, e.g. "app.example.com".
	Domain string
	// Subscope optionally separates nullifier spaces within one domain.
	Subscope string
}

// ScopeHash returns the field element the circuit derives from the domain.
func (s ScopeContext) ScopeHash() (*big.Int, error) {
	return hashToField(s.Domain)
}

// SubscopeHash returns the field element for the subscope, zero when unset.
func (s ScopeContext) SubscopeHash() (*big.Int, error) {
	if s.Subscope == "" {
		return big.NewInt(0), nil
	}
	return hashToField(s.Subscope)
}

// hashToField maps a scope string into the scalar field the same way the
// circuit does, with a Poseidon sponge over the raw bytes.
func hashToField(s string) (*big.Int, error) {
	h, err := poseidon.HashBytes([]byte(s))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to hash scope %q", s)
	}
	return h, nil
}

// Derive extracts the scoped nullifier from the public inputs. When a scope
// context is given, the proof's embedded scope and subscope must match it;
// a mismatch means the proof was generated for someone else and its
// nullifier must not be used.
func Derive(publicInputs []*big.Int, scope *ScopeContext) (types.Nullifier, error) {
	var out types.Nullifier
	if len(publicInputs) < constants.MinPublicInputs {
		return out, errors.WithMessagef(ErrMalformedPublicInputs,
			"%d public inputs, at least %d required", len(publicInputs), constants.MinPublicInputs)
	}
	for i, in := range publicInputs[:constants.MinPublicInputs] {
		if in == nil {
			return out, errors.WithMessagef(ErrMalformedPublicInputs, "slot %d is nil", i)
		}
	}

	if scope != nil {
		expectedScope, err := scope.ScopeHash()
		if err != nil {
			return out, err
		}
		if publicInputs[constants.PubInputServiceScope].Cmp(expectedScope) != 0 {
			return out, errors.WithMessagef(ErrScopeMismatch, "domain %q", scope.Domain)
		}
		expectedSubscope, err := scope.SubscopeHash()
		if err != nil {
			return out, err
		}
		if publicInputs[constants.PubInputServiceSubscope].Cmp(expectedSubscope) != 0 {
			return out, errors.WithMessagef(ErrScopeMismatch, "subscope %q", scope.Subscope)
		}
	}

	raw := publicInputs[constants.PubInputScopedNullifier]
	if raw.Sign() < 0 || raw.BitLen() > types.NullifierLength*8 {
		return out, errors.WithMessage(ErrMalformedPublicInputs, "nullifier slot is not a 32-byte value")
	}
	raw.FillBytes(out[:])
	return out, nil
}
