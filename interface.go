package negentropy

import "github.com/rust-nostr/negentropy/types"

//go:generate mockgen -typed -package=negentropy_test -destination=./mocks_test.go -source=./interface.go

// Storage is the sealed, ordered item store a Reconciler walks during
// a session. Implementations keep items in ascending (timestamp, id)
// order once sealed and must not mutate afterwards; the storage
// package provides the in-memory ones.
type Storage interface {
	// IDSize returns the store's fixed identifier size in bytes.
	IDSize() int
	// Size returns the number of items in the store.
	Size() int
	// Sealed reports whether the store has been sealed.
	Sealed() bool
	// Insert adds an item to an open store.
	Insert(timestamp uint64, id types.KeyBytes) error
	// Seal sorts the items and freezes the store.
	Seal() error
	// ItemAt returns the item at the given sorted position.
	ItemAt(index int) (types.Item, error)
	// Fingerprint computes the range fingerprint over the items in
	// [begin, end).
	Fingerprint(begin, end int) (types.Fingerprint, error)
}
