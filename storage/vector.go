package storage

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rust-nostr/negentropy/types"
)

// Vector is the reference store: an in-memory vector of items, sorted
// and frozen by Seal. It is not safe for concurrent use while open;
// once sealed, any number of goroutines may query it.
type Vector struct {
	idSize  int
	items   []types.Item
	sealed  bool
	fpCache *lru.Cache[[2]int, types.Fingerprint]
}

type vectorOpts struct {
	cacheSize int
}

// VectorOpt configures a Vector.
type VectorOpt func(*vectorOpts)

// WithFingerprintCache keeps up to size computed range fingerprints in
// an LRU cache. Useful when one sealed store reconciles with many
// peers, which keeps recomputing the same large-range digests. The
// store being immutable after seal, cached entries never go stale, and
// the cache is safe for concurrent use.
func WithFingerprintCache(size int) VectorOpt {
	return func(o *vectorOpts) {
		o.cacheSize = size
	}
}

// NewVector creates an empty open store holding ids of the given size.
func NewVector(idSize int, opts ...VectorOpt) (*Vector, error) {
	if err := checkIDSize(idSize); err != nil {
		return nil, err
	}
	var o vectorOpts
	for _, opt := range opts {
		opt(&o)
	}
	v := &Vector{idSize: idSize}
	if o.cacheSize > 0 {
		c, err := lru.New[[2]int, types.Fingerprint](o.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("fingerprint cache: %w", err)
		}
		v.fpCache = c
	}
	return v, nil
}

// IDSize returns the store's fixed identifier size in bytes.
func (v *Vector) IDSize() int {
	return v.idSize
}

// Size returns the number of items. The value is only stable once the
// store is sealed.
func (v *Vector) Size() int {
	return len(v.items)
}

// Sealed reports whether the store has been sealed.
func (v *Vector) Sealed() bool {
	return v.sealed
}

// Insert adds an item in any order. The id is copied. Duplicate
// detection is deferred to Seal.
func (v *Vector) Insert(timestamp uint64, id types.KeyBytes) error {
	if v.sealed {
		return ErrAlreadySealed
	}
	if err := checkInsert(v.idSize, timestamp, id); err != nil {
		return err
	}
	v.items = append(v.items, types.Item{Timestamp: timestamp, ID: id.Clone()})
	return nil
}

// Seal sorts the items and freezes the store. If duplicates are found
// the seal fails and the store stays open.
func (v *Vector) Seal() error {
	if v.sealed {
		return ErrAlreadySealed
	}
	slices.SortFunc(v.items, types.Item.Compare)
	for i := 1; i < len(v.items); i++ {
		if v.items[i-1].Compare(v.items[i]) == 0 {
			return fmt.Errorf("%w: (%d, %s)", ErrDuplicateItem, v.items[i].Timestamp, v.items[i].ID.ShortString())
		}
	}
	v.sealed = true
	return nil
}

// ItemAt returns the item at the given sorted position.
func (v *Vector) ItemAt(index int) (types.Item, error) {
	if !v.sealed {
		return types.Item{}, ErrNotSealed
	}
	return itemAt(v.items, index)
}

// Fingerprint computes the fingerprint over the items in [begin, end).
func (v *Vector) Fingerprint(begin, end int) (types.Fingerprint, error) {
	if !v.sealed {
		return types.Fingerprint{}, ErrNotSealed
	}
	if v.fpCache != nil {
		if fp, ok := v.fpCache.Get([2]int{begin, end}); ok {
			return fp, nil
		}
	}
	fp, err := fingerprintRange(v.items, begin, end)
	if err != nil {
		return types.Fingerprint{}, err
	}
	if v.fpCache != nil {
		v.fpCache.Add([2]int{begin, end}, fp)
	}
	return fp, nil
}
