// Package storage provides the item stores backing reconciliation
// sessions. A store is populated while open, sealed exactly once, and
// then serves ordered position and fingerprint queries for the rest of
// its life.
package storage

import (
	"errors"
	"fmt"

	"github.com/rust-nostr/negentropy/types"
)

const (
	// MinIDSize is the smallest supported identifier size in bytes.
	MinIDSize = 8
	// MaxIDSize is the largest supported identifier size in bytes.
	MaxIDSize = 32
)

var (
	// ErrAlreadySealed is returned when inserting into or re-sealing a
	// sealed store.
	ErrAlreadySealed = errors.New("store already sealed")
	// ErrNotSealed is returned when querying a store before sealing it.
	ErrNotSealed = errors.New("store not sealed")
	// ErrDuplicateItem is returned when the same (timestamp, id) pair
	// is added twice.
	ErrDuplicateItem = errors.New("duplicate item")
	// ErrIndexOutOfRange is returned for positions or ranges outside
	// the sealed store.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidIDSize is returned when constructing a store with an id
	// size outside [MinIDSize, MaxIDSize].
	ErrInvalidIDSize = errors.New("invalid id size")
	// ErrIDSizeMismatch is returned when an inserted id does not match
	// the store's id size.
	ErrIDSizeMismatch = errors.New("id size mismatch")
	// ErrTimestampOutOfRange is returned when an inserted timestamp
	// exceeds types.MaxTimestamp.
	ErrTimestampOutOfRange = errors.New("timestamp out of range")
)

func checkIDSize(idSize int) error {
	if idSize < MinIDSize || idSize > MaxIDSize {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrInvalidIDSize, idSize, MinIDSize, MaxIDSize)
	}
	return nil
}

func checkInsert(idSize int, timestamp uint64, id types.KeyBytes) error {
	if timestamp > types.MaxTimestamp {
		return fmt.Errorf("%w: %d", ErrTimestampOutOfRange, timestamp)
	}
	if len(id) != idSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrIDSizeMismatch, len(id), idSize)
	}
	return nil
}

func itemAt(items []types.Item, index int) (types.Item, error) {
	if index < 0 || index >= len(items) {
		return types.Item{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(items))
	}
	return items[index], nil
}

func fingerprintRange(items []types.Item, begin, end int) (types.Fingerprint, error) {
	if begin < 0 || end > len(items) || begin > end {
		return types.Fingerprint{}, fmt.Errorf("%w: [%d, %d) of %d", ErrIndexOutOfRange, begin, end, len(items))
	}
	var acc types.Accumulator
	for _, it := range items[begin:end] {
		acc.Add(it.Timestamp, it.ID)
	}
	return acc.Fingerprint(), nil
}
