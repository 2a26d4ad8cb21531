package proofs_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkpassport/go-zkpassport/loaders"
	"github.com/zkpassport/go-zkpassport/proofs"
	"github.com/zkpassport/go-zkpassport/types"
)

func embeddedKey(t *testing.T) []byte {
	t.Helper()
	id, err := types.VerificationKeyIDFromHex("c3a9b872d1f04e5a8b6c7d9e0f1a2b3c4d5e6f708192a3b4c5d6e7f809112233")
	require.NoError(t, err)
	key, err := loaders.NewEmbeddedKeyLoader().Load(id)
	require.NoError(t, err)
	return key
}

func inFieldInputs(n int) []*big.Int {
	inputs := make([]*big.Int, n)
	for i := range inputs {
		inputs[i] = big.NewInt(int64(i + 1))
	}
	return inputs
}

func TestNewGroth16VerifierRejectsEmptyKey(t *testing.T) {
	_, err := proofs.NewGroth16Verifier(nil)
	require.Error(t, err)
}

func TestGroth16VerifierRejectsGarbageProof(t *testing.T) {
	v, err := proofs.NewGroth16Verifier(embeddedKey(t))
	require.NoError(t, err)

	err = v.Verify([]byte("not json"), inFieldInputs(6))
	require.Error(t, err)
	// a malformed artifact is a fault, not a cryptographic rejection
	assert.NotErrorIs(t, err, proofs.ErrInvalidProof)
}

func TestGroth16VerifierRejectsOutOfFieldInputs(t *testing.T) {
	v, err := proofs.NewGroth16Verifier(embeddedKey(t))
	require.NoError(t, err)

	inputs := inFieldInputs(6)
	inputs[3] = fr.Modulus()
	err = v.Verify([]byte(`{}`), inputs)
	require.ErrorContains(t, err, "not a field element")

	inputs[3] = big.NewInt(-1)
	err = v.Verify([]byte(`{}`), inputs)
	require.ErrorContains(t, err, "not a field element")

	inputs[3] = nil
	err = v.Verify([]byte(`{}`), inputs)
	require.ErrorContains(t, err, "nil")
}

func TestGroth16VerifierClassifiesCryptoRejection(t *testing.T) {
	v, err := proofs.NewGroth16Verifier(embeddedKey(t))
	require.NoError(t, err)

	// well-formed JSON with no proof points clears decoding and fails the
	// cryptographic check
	err = v.Verify([]byte(`{}`), inFieldInputs(6))
	require.ErrorIs(t, err, proofs.ErrInvalidProof)
}

func TestNewGnarkVerifierRejectsGarbageKey(t *testing.T) {
	_, err := proofs.NewGnarkVerifier([]byte("definitely not a gnark key"))
	require.Error(t, err)
}
