package anchors_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkpassport/go-zkpassport/anchors"
)

func TestSetAddAndContains(t *testing.T) {
	s := anchors.NewSet()
	root := common.HexToHash("0x5f1e8a3b7c9d2e4f6a8b0c1d3e5f7a9b1c2d3e4f5a6b7c8d9e0f1a2b3c4d5e6f")

	assert.False(t, s.Contains(root))
	s.Add(root)
	assert.True(t, s.Contains(root))
	assert.Equal(t, 1, s.Len())

	// re-adding is a no-op, never an error
	s.Add(root)
	assert.Equal(t, 1, s.Len())
}

func TestSetRootsSnapshot(t *testing.T) {
	s := anchors.NewSet()
	a := common.HexToHash("0x01")
	b := common.HexToHash("0x02")
	s.Add(a)
	s.Add(b)

	roots := s.Roots()
	require.Len(t, roots, 2)
	assert.ElementsMatch(t, []common.Hash{a, b}, roots)
}
