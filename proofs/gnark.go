package proofs

import (
	"bytes"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/pkg/errors"
)

// GnarkVerifier verifies Groth16 proofs produced by the gnark toolchain on
// BN254. Proof bytes and the verifying key use gnark's binary encoding.
type GnarkVerifier struct {
	vk groth16.VerifyingKey
}

// NewGnarkVerifier parses a gnark binary verifying key once; the resulting
// verifier is safe for concurrent use.
func NewGnarkVerifier(verifyingKey []byte) (*GnarkVerifier, error) {
	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewReader(verifyingKey)); err != nil {
		return nil, errors.Wrap(err, "failed to parse gnark verifying key")
	}
	return &GnarkVerifier{vk: vk}, nil
}

// Verify decodes the proof from gnark's binary form, fills a public witness
// from the inputs and runs the pairing check.
func (v *GnarkVerifier) Verify(proof []byte, publicInputs []*big.Int) error {
	p := groth16.NewProof(ecc.BN254)
	if _, err := p.ReadFrom(bytes.NewReader(proof)); err != nil {
		return errors.Wrap(err, "failed to parse gnark proof")
	}
	if err := checkFieldMembership(publicInputs); err != nil {
		return err
	}

	publicWitness, err := witness.New(ecc.BN254.ScalarField())
	if err != nil {
		return errors.Wrap(err, "failed to allocate witness")
	}
	values := make(chan any, len(publicInputs))
	for _, in := range publicInputs {
		values <- new(big.Int).Set(in)
	}
	close(values)
	if err := publicWitness.Fill(len(publicInputs), 0, values); err != nil {
		return errors.Wrap(err, "failed to fill public witness")
	}

	if err := groth16.Verify(p, v.vk, publicWitness); err != nil {
		return errors.WithMessage(ErrInvalidProof, err.Error())
	}
	return nil
}
