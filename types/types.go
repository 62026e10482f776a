// Package types defines the core value types of the reconciliation
// protocol: identifiers, items, range bounds and fingerprints.
package types

import (
	"bytes"
	"encoding/hex"
	"math"
	"slices"

	"go.uber.org/zap/zapcore"
)

// MaxTimestamp is the largest timestamp an item may carry. Larger
// values cannot be delta-encoded on the wire and are rejected both at
// insert time and on decode.
const MaxTimestamp = uint64(1<<63 - 2)

// KeyBytes is an item identifier.
type KeyBytes []byte

var _ zapcore.ArrayMarshaler = KeyList(nil)

// String implements fmt.Stringer.
func (k KeyBytes) String() string {
	return hex.EncodeToString(k)
}

// ShortString returns a short string representation of the KeyBytes
// for logging purposes.
func (k KeyBytes) ShortString() string {
	if len(k) < 5 {
		return k.String()
	}
	return hex.EncodeToString(k[:5])
}

// Clone returns a copy of the KeyBytes.
func (k KeyBytes) Clone() KeyBytes {
	return slices.Clone(k)
}

// Compare compares two KeyBytes.
func (k KeyBytes) Compare(other KeyBytes) int {
	return bytes.Compare(k, other)
}

// KeyList is a list of identifiers, abbreviated when logged.
type KeyList []KeyBytes

// MarshalLogArray implements zapcore.ArrayMarshaler.
func (l KeyList) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for i, k := range l {
		if i == 3 {
			enc.AppendString("...")
			break
		}
		enc.AppendString(k.ShortString())
	}
	return nil
}

// Item is a single reconcilable record: a timestamp paired with a
// fixed-length identifier. Items order lexicographically by
// (timestamp, id), timestamps compared numerically and ids bytewise.
type Item struct {
	Timestamp uint64
	ID        KeyBytes
}

var _ zapcore.ObjectMarshaler = Item{}

// Compare compares two items in (timestamp, id) order.
func (it Item) Compare(other Item) int {
	switch {
	case it.Timestamp < other.Timestamp:
		return -1
	case it.Timestamp > other.Timestamp:
		return 1
	}
	return it.ID.Compare(other.ID)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (it Item) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint64("ts", it.Timestamp)
	enc.AddString("id", it.ID.ShortString())
	return nil
}

// Bound marks a position in the (timestamp, id) key space, delimiting
// a contiguous range of items. The prefix may be shorter than a full
// id: comparison is lexicographic, so a bound sorts at or before every
// item whose id it prefixes.
type Bound struct {
	Timestamp uint64
	Prefix    KeyBytes
}

var _ zapcore.ObjectMarshaler = Bound{}

// Infinity is the bound past every item. It closes the final range of
// every non-empty message.
var Infinity = Bound{Timestamp: math.MaxUint64}

// IsInfinity reports whether the bound is the infinity sentinel.
func (b Bound) IsInfinity() bool {
	return b.Timestamp == math.MaxUint64
}

// Compare compares two bounds in (timestamp, prefix) order.
func (b Bound) Compare(other Bound) int {
	switch {
	case b.Timestamp < other.Timestamp:
		return -1
	case b.Timestamp > other.Timestamp:
		return 1
	}
	return bytes.Compare(b.Prefix, other.Prefix)
}

// CompareItem orders the bound relative to an item. A range ending at
// the bound excludes every item for which CompareItem is <= 0.
func (b Bound) CompareItem(it Item) int {
	switch {
	case b.Timestamp < it.Timestamp:
		return -1
	case b.Timestamp > it.Timestamp:
		return 1
	}
	return bytes.Compare(b.Prefix, it.ID)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (b Bound) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if b.IsInfinity() {
		enc.AddBool("inf", true)
		return nil
	}
	enc.AddUint64("ts", b.Timestamp)
	enc.AddString("prefix", b.Prefix.ShortString())
	return nil
}

// BoundFromItem returns the bound sitting exactly at an item. A range
// ending there excludes the item itself.
func BoundFromItem(it Item) Bound {
	return Bound{Timestamp: it.Timestamp, Prefix: it.ID.Clone()}
}

// MinimalBound returns the shortest bound that sorts strictly after
// prev and at or before curr, using only as many id bytes as needed to
// separate the two. prev must sort strictly before curr.
func MinimalBound(prev, curr Item) Bound {
	if prev.Timestamp != curr.Timestamp {
		return Bound{Timestamp: curr.Timestamp}
	}
	shared := 0
	for shared < len(prev.ID) && shared < len(curr.ID) && prev.ID[shared] == curr.ID[shared] {
		shared++
	}
	if shared == len(curr.ID) {
		panic("BUG: minimal bound over out-of-order items")
	}
	return Bound{Timestamp: curr.Timestamp, Prefix: curr.ID[:shared+1].Clone()}
}
