package proofs

import (
	"encoding/json"
	"math/big"

	rapidsnarkTypes "github.com/iden3/go-rapidsnark/types"
	rapidsnark "github.com/iden3/go-rapidsnark/verifier"
	"github.com/pkg/errors"
)

// Groth16Verifier verifies snarkjs-format Groth16 proofs against a JSON
// verification key using the rapidsnark verifier.
type Groth16Verifier struct {
	verificationKey []byte
}

// NewGroth16Verifier wraps a snarkjs JSON verification key. The key is
// validated lazily on the first Verify call.
func NewGroth16Verifier(verificationKey []byte) (*Groth16Verifier, error) {
	if len(verificationKey) == 0 {
		return nil, errors.New("verification key is empty")
	}
	return &Groth16Verifier{verificationKey: verificationKey}, nil
}

// Verify decodes the proof from its snarkjs JSON form and delegates the
// pairing check to rapidsnark.
func (v *Groth16Verifier) Verify(proof []byte, publicInputs []*big.Int) error {
	var proofData rapidsnarkTypes.ProofData
	if err := json.Unmarshal(proof, &proofData); err != nil {
		return errors.Wrap(err, "failed to parse groth16 proof")
	}
	if err := checkFieldMembership(publicInputs); err != nil {
		return err
	}

	signals := make([]string, len(publicInputs))
	for i, in := range publicInputs {
		signals[i] = in.String()
	}

	err := rapidsnark.VerifyGroth16(rapidsnarkTypes.ZKProof{
		Proof:      &proofData,
		PubSignals: signals,
	}, v.verificationKey)
	if err != nil {
		return errors.WithMessage(ErrInvalidProof, err.Error())
	}
	return nil
}
