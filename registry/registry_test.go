package registry_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkpassport/go-zkpassport/registry"
	"github.com/zkpassport/go-zkpassport/types"
)

type stubVerifier struct {
	name string
}

func (s *stubVerifier) Verify(_ []byte, _ []*big.Int) error { return nil }

func vkeyID(b byte) types.VerificationKeyID {
	var id types.VerificationKeyID
	for i := range id {
		id[i] = b
	}
	return id
}

func TestRegisterAndLookup(t *testing.T) {
	r := registry.New()
	want := &stubVerifier{name: "outer-evm"}

	require.NoError(t, r.Register(vkeyID(0x01), want))
	require.Equal(t, 1, r.Len())

	got, err := r.Lookup(vkeyID(0x01))
	require.NoError(t, err)
	assert.Same(t, want, got.(*stubVerifier))
}

func TestDuplicateRegistrationFailsLoudly(t *testing.T) {
	r := registry.New()
	require.NoError(t, r.Register(vkeyID(0x01), &stubVerifier{name: "original"}))

	err := r.Register(vkeyID(0x01), &stubVerifier{name: "swapped"})
	require.ErrorIs(t, err, registry.ErrDuplicateVerifier)

	// the original stays active
	got, err := r.Lookup(vkeyID(0x01))
	require.NoError(t, err)
	assert.Equal(t, "original", got.(*stubVerifier).name)
}

func TestLookupUnknownKey(t *testing.T) {
	r := registry.New()

	_, err := r.Lookup(vkeyID(0xff))
	require.ErrorIs(t, err, registry.ErrUnknownVerificationKey)
}

func TestRegisterNilVerifier(t *testing.T) {
	r := registry.New()
	require.Error(t, r.Register(vkeyID(0x01), nil))
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := registry.New()
	b := registry.New()
	require.NoError(t, a.Register(vkeyID(0x01), &stubVerifier{}))

	_, err := b.Lookup(vkeyID(0x01))
	require.ErrorIs(t, err, registry.ErrUnknownVerificationKey)
}
