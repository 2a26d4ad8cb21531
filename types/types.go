// Package types holds the primitive identifiers shared across the library.
package types

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// VerificationKeyIDLength is the byte length of a verification key identifier.
const VerificationKeyIDLength = 32

// NullifierLength is the byte length of a scoped nullifier.
const NullifierLength = 32

// VerificationKeyID is an opaque 32-byte identifier naming a specific
// circuit + proving-backend combination. Immutable once registered.
type VerificationKeyID [VerificationKeyIDLength]byte

// VerificationKeyIDFromHex parses a hex string (with or without 0x prefix)
// into a VerificationKeyID.
func VerificationKeyIDFromHex(s string) (VerificationKeyID, error) {
	var id VerificationKeyID
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, errors.Wrap(err, "invalid verification key id")
	}
	if len(b) != VerificationKeyIDLength {
		return id, errors.Errorf("verification key id must be %d bytes, got %d", VerificationKeyIDLength, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// Hex returns the 0x-prefixed hex form of the identifier.
func (id VerificationKeyID) Hex() string {
	return "0x" + hex.EncodeToString(id[:])
}

func (id VerificationKeyID) String() string {
	return id.Hex()
}

// Nullifier is the scoped pseudonymous identifier extracted from a verified
// proof. The zero value is the sentinel returned for rejected proofs.
type Nullifier [NullifierLength]byte

// IsZero reports whether the nullifier is the rejection sentinel.
func (n Nullifier) IsZero() bool {
	return n == Nullifier{}
}

// Hex returns the 0x-prefixed hex form of the nullifier.
func (n Nullifier) Hex() string {
	return "0x" + hex.EncodeToString(n[:])
}

func (n Nullifier) String() string {
	return n.Hex()
}

// VerificationResult is the outcome of a single proof verification call.
// Nullifier is only meaningful when Verified is true; for rejected proofs it
// is always the zero sentinel.
type VerificationResult struct {
	Verified  bool      `json:"verified"`
	Nullifier Nullifier `json:"nullifier"`
}
