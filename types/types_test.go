package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkpassport/go-zkpassport/types"
)

func TestVerificationKeyIDFromHex(t *testing.T) {
	const hex = "0xc3a9b872d1f04e5a8b6c7d9e0f1a2b3c4d5e6f708192a3b4c5d6e7f809112233"

	id, err := types.VerificationKeyIDFromHex(hex)
	require.NoError(t, err)
	assert.Equal(t, hex, id.Hex())

	// the 0x prefix is optional
	bare, err := types.VerificationKeyIDFromHex(hex[2:])
	require.NoError(t, err)
	assert.Equal(t, id, bare)

	_, err = types.VerificationKeyIDFromHex("c3a9")
	require.Error(t, err)
	_, err = types.VerificationKeyIDFromHex("zz")
	require.Error(t, err)
}

func TestNullifierZeroSentinel(t *testing.T) {
	var n types.Nullifier
	assert.True(t, n.IsZero())

	n[31] = 1
	assert.False(t, n.IsZero())
	assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000001", n.Hex())
}
