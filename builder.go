package negentropy

import (
	"github.com/rust-nostr/negentropy/types"
	"github.com/rust-nostr/negentropy/wire"
)

// frameReserve is the slack kept below the frame size limit for the
// bound, mode and count bytes of the range being written plus the
// trailing fingerprint range of a deferred message.
const frameReserve = 200

// msgBuilder assembles one outgoing message. Consecutive skips
// coalesce: a skip is only written out when a payload range follows
// it, and trailing skips merge into the final range. Once the frame
// size limit is hit the builder goes full: no further payload may be
// emitted, and the reconciler closes the message with one fingerprint
// range covering everything past deferFrom.
type msgBuilder struct {
	enc          *wire.Encoder
	limit        int
	pendingSkip  *types.Bound
	lastBound    types.Bound
	payloads     int
	full         bool
	deferFrom    int
	deferredWork bool
}

func (b *msgBuilder) overBudget() bool {
	return b.limit > 0 && b.enc.Len() > b.limit-frameReserve
}

// markFull switches the builder to deferral mode. Emitted coverage
// ends where it stands now; local items from index from onward are
// summarized by the trailing fingerprint range instead.
func (b *msgBuilder) markFull(from int) {
	if !b.full {
		b.full = true
		b.deferFrom = from
	}
}

func (b *msgBuilder) skip(upper types.Bound) {
	if b.full {
		return
	}
	ub := upper
	b.pendingSkip = &ub
}

func (b *msgBuilder) flushSkip() {
	if b.pendingSkip != nil {
		b.enc.WriteRange(wire.SkipRange{End: *b.pendingSkip})
		b.lastBound = *b.pendingSkip
		b.pendingSkip = nil
	}
}

func (b *msgBuilder) addFingerprint(end types.Bound, fp types.Fingerprint) {
	b.flushSkip()
	b.enc.WriteRange(wire.FingerprintRange{End: end, Fingerprint: fp})
	b.lastBound = end
	b.payloads++
}

func (b *msgBuilder) addIdList(end types.Bound, ids []types.KeyBytes) {
	b.flushSkip()
	b.enc.WriteRange(wire.IdListRange{End: end, IDs: ids})
	b.lastBound = end
	b.payloads++
}

// idListCapacity returns how many ids fit in an id list emitted now,
// or -1 when there is no limit.
func (b *msgBuilder) idListCapacity(idSize int) int {
	if b.limit == 0 {
		return -1
	}
	avail := b.limit - b.enc.Len() - frameReserve
	if avail < idSize {
		return 0
	}
	return avail / idSize
}
