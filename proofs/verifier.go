// Package proofs defines the boundary to the external proof-verification
// oracle and the Groth16 backends implementing it.
package proofs

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/pkg/errors"
)

// ErrInvalidProof is returned by a backend when the proof does not attest
// what it claims. It is the cryptographic rejection outcome: the caller must
// branch on it, not treat it as a fault.
var ErrInvalidProof = errors.New("invalid proof")

// ProofVerifier is the capability handle to the proof-verification oracle
// for one circuit + proving-backend combination. Treated as correct and
// expensive; it is injected into the orchestrator and never inlined there.
type ProofVerifier interface {
	// Verify checks the encoded proof against the public inputs. A nil
	// return means the proof is cryptographically valid; ErrInvalidProof
	// means it is not; any other error is a malformed-artifact failure.
	Verify(proof []byte, publicInputs []*big.Int) error
}

// checkFieldMembership rejects public inputs outside the BN254 scalar field
// before they reach the pairing check.
func checkFieldMembership(publicInputs []*big.Int) error {
	modulus := fr.Modulus()
	for i, in := range publicInputs {
		if in == nil {
			return errors.Errorf("public input %d is nil", i)
		}
		if in.Sign() < 0 || in.Cmp(modulus) >= 0 {
			return errors.Errorf("public input %d is not a field element", i)
		}
	}
	return nil
}
