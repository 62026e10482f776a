package storage

import (
	"fmt"
	"sync/atomic"

	"github.com/zhangyunhao116/skipmap"

	"github.com/rust-nostr/negentropy/types"
)

// SkipList is a store that accepts concurrent inserts while open,
// backed by a lock-free skip list. Duplicates are detected immediately
// at insert. Sealing snapshots the already-ordered list; callers must
// make sure no Insert is in flight when Seal is called. Once sealed it
// serves the same queries as Vector.
type SkipList struct {
	idSize int
	m      *skipmap.FuncMap[types.Item, struct{}]
	sealed atomic.Bool
	items  []types.Item
}

// NewSkipList creates an empty open store holding ids of the given
// size.
func NewSkipList(idSize int) (*SkipList, error) {
	if err := checkIDSize(idSize); err != nil {
		return nil, err
	}
	return &SkipList{
		idSize: idSize,
		m: skipmap.NewFunc[types.Item, struct{}](func(a, b types.Item) bool {
			return a.Compare(b) < 0
		}),
	}, nil
}

// IDSize returns the store's fixed identifier size in bytes.
func (s *SkipList) IDSize() int {
	return s.idSize
}

// Size returns the number of items. The value is only stable once the
// store is sealed.
func (s *SkipList) Size() int {
	if s.sealed.Load() {
		return len(s.items)
	}
	return s.m.Len()
}

// Sealed reports whether the store has been sealed.
func (s *SkipList) Sealed() bool {
	return s.sealed.Load()
}

// Insert adds an item. The id is copied. Safe to call from multiple
// goroutines while the store is open.
func (s *SkipList) Insert(timestamp uint64, id types.KeyBytes) error {
	if s.sealed.Load() {
		return ErrAlreadySealed
	}
	if err := checkInsert(s.idSize, timestamp, id); err != nil {
		return err
	}
	it := types.Item{Timestamp: timestamp, ID: id.Clone()}
	if _, loaded := s.m.LoadOrStore(it, struct{}{}); loaded {
		return fmt.Errorf("%w: (%d, %s)", ErrDuplicateItem, timestamp, id.ShortString())
	}
	return nil
}

// Seal freezes the store and snapshots the items in sorted order.
func (s *SkipList) Seal() error {
	if !s.sealed.CompareAndSwap(false, true) {
		return ErrAlreadySealed
	}
	items := make([]types.Item, 0, s.m.Len())
	s.m.Range(func(it types.Item, _ struct{}) bool {
		items = append(items, it)
		return true
	})
	s.items = items
	return nil
}

// ItemAt returns the item at the given sorted position.
func (s *SkipList) ItemAt(index int) (types.Item, error) {
	if !s.sealed.Load() {
		return types.Item{}, ErrNotSealed
	}
	return itemAt(s.items, index)
}

// Fingerprint computes the fingerprint over the items in [begin, end).
func (s *SkipList) Fingerprint(begin, end int) (types.Fingerprint, error) {
	if !s.sealed.Load() {
		return types.Fingerprint{}, ErrNotSealed
	}
	return fingerprintRange(s.items, begin, end)
}
