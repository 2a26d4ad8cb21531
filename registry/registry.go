// Package registry maps verification key identifiers to proof-verification
// capabilities.
package registry

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/zkpassport/go-zkpassport/proofs"
	"github.com/zkpassport/go-zkpassport/types"
)

// ErrUnknownVerificationKey is returned by Lookup when no verifier has been
// registered under the requested identifier. The orchestrator aborts the
// whole verification on it; there is no fallback verifier.
var ErrUnknownVerificationKey = errors.New("unknown verification key")

// ErrDuplicateVerifier is returned when a verifier is already registered
// under the identifier. Duplicate registration fails loudly instead of
// overwriting, to rule out a verifier swap.
var ErrDuplicateVerifier = errors.New("verifier already registered")

// Registry holds the active verifier per verification key identifier.
// Instances are independent; tests and multi-tenant callers can hold
// several without interference.
type Registry struct {
	mu        sync.RWMutex
	verifiers map[types.VerificationKeyID]proofs.ProofVerifier
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		verifiers: make(map[types.VerificationKeyID]proofs.ProofVerifier),
	}
}

// Register binds a verifier to a verification key identifier. At most one
// active verifier per identifier: re-registration returns
// ErrDuplicateVerifier.
func (r *Registry) Register(vkeyID types.VerificationKeyID, verifier proofs.ProofVerifier) error {
	if verifier == nil {
		return errors.New("verifier must not be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.verifiers[vkeyID]; exists {
		return errors.WithMessage(ErrDuplicateVerifier, vkeyID.Hex())
	}
	r.verifiers[vkeyID] = verifier
	return nil
}

// Lookup returns the verifier registered under the identifier.
func (r *Registry) Lookup(vkeyID types.VerificationKeyID) (proofs.ProofVerifier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	verifier, ok := r.verifiers[vkeyID]
	if !ok {
		return nil, errors.WithMessage(ErrUnknownVerificationKey, vkeyID.Hex())
	}
	return verifier, nil
}

// Len returns the number of registered verifiers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.verifiers)
}
