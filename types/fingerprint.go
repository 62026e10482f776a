package types

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"

	"github.com/rust-nostr/negentropy/hash"
)

// FingerprintSize is the size of a finalized range fingerprint in
// bytes.
const FingerprintSize = 16

// Fingerprint is an order-independent digest over a range of items.
// Two peers holding the same items for a range compute the same
// fingerprint regardless of how they enumerate the range.
type Fingerprint [FingerprintSize]byte

// String implements fmt.Stringer.
func (fp Fingerprint) String() string {
	return hex.EncodeToString(fp[:])
}

// Accumulator computes a range fingerprint incrementally. The zero
// value is ready to use and represents the empty range. Each item is
// hashed with the keyed protocol hasher and the digests are summed
// mod 2^256, so accumulation commutes and two accumulators can be
// merged.
type Accumulator struct {
	sum   [4]uint64
	count uint64
}

// Add folds one item into the accumulator.
func (a *Accumulator) Add(timestamp uint64, id KeyBytes) {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], timestamp)

	h := hash.GetHasher()
	h.Write(buf[:n])
	h.Write(id)
	var digest [hash.Size]byte
	h.Sum(digest[:0])
	h.Reset()
	hash.PutHasher(h)

	var carry uint64
	for i := range a.sum {
		a.sum[i], carry = bits.Add64(a.sum[i], binary.LittleEndian.Uint64(digest[i*8:]), carry)
	}
	a.count++
}

// AddAccumulator merges another accumulator into this one. The result
// equals adding the other accumulator's items one by one.
func (a *Accumulator) AddAccumulator(other Accumulator) {
	var carry uint64
	for i := range a.sum {
		a.sum[i], carry = bits.Add64(a.sum[i], other.sum[i], carry)
	}
	a.count += other.count
}

// Count returns the number of items folded in so far.
func (a Accumulator) Count() uint64 {
	return a.count
}

// Fingerprint finalizes the accumulated state by hashing the sum
// together with the item count and truncating the digest. The
// accumulator itself is left unchanged.
func (a Accumulator) Fingerprint() Fingerprint {
	var state [hash.Size + binary.MaxVarintLen64]byte
	for i, limb := range a.sum {
		binary.LittleEndian.PutUint64(state[i*8:], limb)
	}
	n := binary.PutUvarint(state[hash.Size:], a.count)

	h := hash.GetHasher()
	h.Write(state[:hash.Size+n])
	var digest [hash.Size]byte
	h.Sum(digest[:0])
	h.Reset()
	hash.PutHasher(h)

	var fp Fingerprint
	copy(fp[:], digest[:FingerprintSize])
	return fp
}
