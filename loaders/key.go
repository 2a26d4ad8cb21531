// Package loaders provides verification-key loading for registry setup.
package loaders

import (
	"fmt"
	"os"

	"github.com/zkpassport/go-zkpassport/types"
)

// KeyLoader loads verification key bytes for a specific verification key
// identifier.
type KeyLoader interface {
	Load(id types.VerificationKeyID) ([]byte, error)
}

// FSKeyLoader reads keys from the filesystem. Files are named by the
// identifier's hex form without the 0x prefix, with a .json extension.
type FSKeyLoader struct {
	Dir string
}

// Load reads the key file for the identifier from Dir.
func (m FSKeyLoader) Load(id types.VerificationKeyID) ([]byte, error) {
	return os.ReadFile(fmt.Sprintf("%s/%x.json", m.Dir, id[:]))
}
