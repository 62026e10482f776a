// Package wire implements the binary codec for reconciliation
// messages: varint primitives, delta-encoded bounds and the three
// range descriptor kinds.
package wire

import (
	"fmt"

	"github.com/rust-nostr/negentropy/types"
)

// Mode tags the payload of a range descriptor.
type Mode uint64

const (
	// ModeSkip marks a range the sender has nothing further for.
	ModeSkip Mode = 0
	// ModeFingerprint carries a digest of the sender's items in the
	// range.
	ModeFingerprint Mode = 1
	// ModeIdList carries every identifier the sender holds within the
	// range.
	ModeIdList Mode = 2
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeSkip:
		return "skip"
	case ModeFingerprint:
		return "fingerprint"
	case ModeIdList:
		return "idlist"
	default:
		return fmt.Sprintf("mode(%d)", uint64(m))
	}
}

// Range is one tagged interval of a message. A range carries only its
// upper bound; the lower bound is implicit, being the previous range's
// upper bound, or the start of the key space for the first range.
type Range interface {
	Mode() Mode
	UpperBound() types.Bound
}

// SkipRange says the sender has nothing further for the range.
type SkipRange struct {
	End types.Bound
}

// Mode implements Range.
func (r SkipRange) Mode() Mode { return ModeSkip }

// UpperBound implements Range.
func (r SkipRange) UpperBound() types.Bound { return r.End }

// FingerprintRange carries the fingerprint of the sender's items
// within the range, for cheap equality comparison on the other side.
type FingerprintRange struct {
	End         types.Bound
	Fingerprint types.Fingerprint
}

// Mode implements Range.
func (r FingerprintRange) Mode() Mode { return ModeFingerprint }

// UpperBound implements Range.
func (r FingerprintRange) UpperBound() types.Bound { return r.End }

// IdListRange carries every identifier the sender holds within the
// range, in sorted order.
type IdListRange struct {
	End types.Bound
	IDs []types.KeyBytes
}

// Mode implements Range.
func (r IdListRange) Mode() Mode { return ModeIdList }

// UpperBound implements Range.
func (r IdListRange) UpperBound() types.Bound { return r.End }

// Message is an ordered sequence of ranges exactly tiling the key
// space: bounds strictly increase and the final bound is infinity.
// A zero-length byte string is the empty message, the protocol's
// termination signal.
type Message []Range
