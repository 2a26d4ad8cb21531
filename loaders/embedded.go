package loaders

import (
	"embed"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/zkpassport/go-zkpassport/types"
)

//go:embed verification_keys/*.json
var defaultKeys embed.FS

// ErrKeyNotFound is returned when a verification key is not found.
var ErrKeyNotFound = errors.New("key not found")

// EmbeddedKeyLoader loads keys from the embedded FS or a custom loader.
// The custom loader has priority when specified; embedded keys are the
// fallback only when it reports ErrKeyNotFound.
type EmbeddedKeyLoader struct {
	keyLoader KeyLoader
	cache     map[types.VerificationKeyID][]byte
	cacheMu   sync.RWMutex
	useCache  bool
}

// NewEmbeddedKeyLoader creates a loader over the keys shipped with the
// library, with caching enabled. Use WithKeyLoader to front it with a
// filesystem loader and WithCacheDisabled to turn caching off.
func NewEmbeddedKeyLoader(opts ...Option) *EmbeddedKeyLoader {
	loader := &EmbeddedKeyLoader{
		useCache: true,
		cache:    make(map[types.VerificationKeyID][]byte),
	}
	for _, opt := range opts {
		opt(loader)
	}
	return loader
}

// Option defines a functional option for configuring EmbeddedKeyLoader.
type Option func(*EmbeddedKeyLoader)

// WithKeyLoader sets a custom primary loader tried before the embedded keys.
func WithKeyLoader(loader KeyLoader) Option {
	return func(e *EmbeddedKeyLoader) {
		e.keyLoader = loader
	}
}

// WithCacheDisabled disables caching of loaded keys.
func WithCacheDisabled() Option {
	return func(e *EmbeddedKeyLoader) {
		e.useCache = false
		e.cache = nil
	}
}

// Load attempts the cache, then the custom loader, then the embedded keys.
func (e *EmbeddedKeyLoader) Load(id types.VerificationKeyID) ([]byte, error) {
	if e.useCache {
		if key := e.getFromCache(id); key != nil {
			return key, nil
		}
	}

	if e.keyLoader != nil {
		key, err := e.keyLoader.Load(id)
		if err == nil {
			e.storeInCache(id, key)
			return key, nil
		}
		if !errors.Is(err, ErrKeyNotFound) {
			return nil, err
		}
		// fall through to embedded keys
	}

	key, err := defaultKeys.ReadFile(fmt.Sprintf("verification_keys/%x.json", id[:]))
	if err != nil {
		return nil, errors.WithMessage(ErrKeyNotFound, id.Hex())
	}
	e.storeInCache(id, key)
	return key, nil
}

func (e *EmbeddedKeyLoader) getFromCache(id types.VerificationKeyID) []byte {
	e.cacheMu.RLock()
	defer e.cacheMu.RUnlock()
	return e.cache[id]
}

func (e *EmbeddedKeyLoader) storeInCache(id types.VerificationKeyID, key []byte) {
	if !e.useCache {
		return
	}
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()
	e.cache[id] = key
}
