package anchors

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/pkg/errors"

	"github.com/zkpassport/go-zkpassport/cache"
	"github.com/zkpassport/go-zkpassport/constants"
)

var zero = big.NewInt(0)

// RootInfo is the raw registry root record as the on-chain registry
// contract returns it.
type RootInfo struct {
	Root                *big.Int
	CreatedAtTimestamp  *big.Int
	ReplacedByRoot      *big.Int
	ReplacedAtTimestamp *big.Int
}

// RootGetter reads a registry root record from the on-chain registry.
//
//go:generate mockgen -destination=mock/RootGetterMock.go . RootGetter
type RootGetter interface {
	GetRootInfo(opts *bind.CallOpts, root *big.Int) (RootInfo, error)
}

// ResolvedRoot is the outcome of resolving a registry root on-chain.
type ResolvedRoot struct {
	Root                string `json:"root"`
	Latest              bool   `json:"latest"`
	ReplacedAtTimestamp int64  `json:"replaced_at_timestamp"`
}

// Resolve checks a registry root against the on-chain registry and reports
// whether it is the latest root or a replaced, historical one.
func Resolve(ctx context.Context, getter RootGetter, root *big.Int) (*ResolvedRoot, error) {
	info, err := getter.GetRootInfo(&bind.CallOpts{Context: ctx}, root)
	if err != nil {
		return nil, err
	}

	if info.CreatedAtTimestamp == nil || info.CreatedAtTimestamp.Cmp(zero) == 0 {
		return nil, errors.New("registry root is not registered in the smart contract")
	}
	if info.Root == nil || info.Root.Cmp(root) != 0 {
		return nil, errors.New("registry root info contains an invalid root")
	}
	if info.ReplacedByRoot != nil && info.ReplacedByRoot.Cmp(zero) != 0 {
		return &ResolvedRoot{
			Root:                root.String(),
			Latest:              false,
			ReplacedAtTimestamp: info.ReplacedAtTimestamp.Int64(),
		}, nil
	}
	return &ResolvedRoot{Root: root.String(), Latest: true}, nil
}

// ResolverOptions configures the caching behavior of a CachedResolver.
type ResolverOptions struct {
	// TTL for roots still current on-chain
	LatestTTL time.Duration
	// TTL for replaced (historical) roots
	ReplacedTTL time.Duration
	// Maximum number of cached entries
	MaxSize int64
	// Optional custom cache implementation
	Cache cache.ICache[ResolvedRoot]
}

// CachedResolver resolves registry roots through a RootGetter with an
// in-memory cache in front of the contract calls.
type CachedResolver struct {
	getter RootGetter
	opts   ResolverOptions
	cache  cache.ICache[ResolvedRoot]
}

// NewCachedResolver creates a resolver over the given contract getter.
func NewCachedResolver(getter RootGetter, opts *ResolverOptions) *CachedResolver {
	if opts == nil {
		opts = &ResolverOptions{}
	}
	if opts.LatestTTL == 0 {
		opts.LatestTTL = constants.RootCacheOptions.LatestTTL
	}
	if opts.ReplacedTTL == 0 {
		opts.ReplacedTTL = constants.RootCacheOptions.ReplacedTTL
	}
	if opts.MaxSize == 0 {
		opts.MaxSize = constants.DefaultCacheMaxSize
	}
	rootCache := opts.Cache
	if rootCache == nil {
		rootCache = cache.NewInMemoryCache[ResolvedRoot](opts.MaxSize, opts.LatestTTL)
	}
	return &CachedResolver{getter: getter, opts: *opts, cache: rootCache}
}

// Resolve returns the resolved root, from cache when available.
func (r *CachedResolver) Resolve(ctx context.Context, root *big.Int) (*ResolvedRoot, error) {
	key := root.String()
	if cached, ok := r.cache.Get(key); ok {
		return &cached, nil
	}
	resolved, err := Resolve(ctx, r.getter, root)
	if err != nil {
		return nil, err
	}
	ttl := r.opts.LatestTTL
	if !resolved.Latest {
		ttl = r.opts.ReplacedTTL
	}
	r.cache.Set(key, *resolved, ttl)
	return resolved, nil
}
