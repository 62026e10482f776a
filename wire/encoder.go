package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/rust-nostr/negentropy/types"
)

// Encoder serializes one message. Bound timestamps are delta-encoded
// against the previous bound, so an encoder must not be reused across
// messages.
type Encoder struct {
	idSize        int
	buf           bytes.Buffer
	lastTimestamp uint64
}

// NewEncoder returns an encoder for messages carrying ids of the given
// size.
func NewEncoder(idSize int) *Encoder {
	if idSize < 1 {
		panic(fmt.Sprintf("BUG: bad id size %d", idSize))
	}
	return &Encoder{idSize: idSize}
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// Bytes returns the encoded message.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// WriteRange appends one range. Ranges must be written in strictly
// increasing bound order; ids and prefixes must match the encoder's id
// size. Both are programmer errors, not input errors, and panic.
func (e *Encoder) WriteRange(r Range) {
	e.writeBound(r.UpperBound())
	e.writeUvarint(uint64(r.Mode()))
	switch r := r.(type) {
	case SkipRange:
	case FingerprintRange:
		e.buf.Write(r.Fingerprint[:])
	case IdListRange:
		e.writeUvarint(uint64(len(r.IDs)))
		for _, id := range r.IDs {
			if len(id) != e.idSize {
				panic(fmt.Sprintf("BUG: id of %d bytes, id size %d", len(id), e.idSize))
			}
			e.buf.Write(id)
		}
	default:
		panic(fmt.Sprintf("BUG: unknown range type %T", r))
	}
}

func (e *Encoder) writeUvarint(v uint64) {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	e.buf.Write(buf[:n])
}

func (e *Encoder) writeBound(b types.Bound) {
	if b.IsInfinity() {
		e.writeUvarint(0)
		e.lastTimestamp = math.MaxUint64
	} else {
		if b.Timestamp > types.MaxTimestamp {
			panic(fmt.Sprintf("BUG: timestamp %d out of range", b.Timestamp))
		}
		if b.Timestamp < e.lastTimestamp {
			panic("BUG: bound timestamps not monotonic")
		}
		delta := b.Timestamp - e.lastTimestamp
		e.lastTimestamp = b.Timestamp
		e.writeUvarint(delta + 1)
	}
	if len(b.Prefix) > e.idSize {
		panic(fmt.Sprintf("BUG: bound prefix of %d bytes, id size %d", len(b.Prefix), e.idSize))
	}
	e.writeUvarint(uint64(len(b.Prefix)))
	e.buf.Write(b.Prefix)
}

// EncodeMessage serializes a whole message.
func EncodeMessage(msg Message, idSize int) []byte {
	e := NewEncoder(idSize)
	for _, r := range msg {
		e.WriteRange(r)
	}
	return e.Bytes()
}
