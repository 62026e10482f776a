package wire

import (
	"errors"
	"fmt"
	"math"

	"github.com/multiformats/go-varint"

	"github.com/rust-nostr/negentropy/types"
)

// ErrProtocol marks a malformed or self-inconsistent incoming message.
// It is fatal to the session: no partial results are produced and the
// session must be discarded.
var ErrProtocol = errors.New("protocol error")

// DecodeMessage parses a message carrying ids of the given size,
// enforcing the tiling invariant: bounds strictly increase and the
// final bound is infinity. Zero-length input decodes to the empty
// message.
func DecodeMessage(data []byte, idSize int) (Message, error) {
	if idSize < 1 {
		panic(fmt.Sprintf("BUG: bad id size %d", idSize))
	}
	d := decoder{data: data, idSize: idSize}
	var msg Message
	for !d.done() {
		r, err := d.readRange()
		if err != nil {
			return nil, err
		}
		if len(msg) > 0 && r.UpperBound().Compare(msg[len(msg)-1].UpperBound()) <= 0 {
			return nil, fmt.Errorf("%w: bounds out of order", ErrProtocol)
		}
		msg = append(msg, r)
	}
	if len(msg) > 0 && !msg[len(msg)-1].UpperBound().IsInfinity() {
		return nil, fmt.Errorf("%w: message does not end at infinity", ErrProtocol)
	}
	return msg, nil
}

type decoder struct {
	data          []byte
	pos           int
	idSize        int
	lastTimestamp uint64
}

func (d *decoder) done() bool {
	return d.pos >= len(d.data)
}

func (d *decoder) remaining() int {
	return len(d.data) - d.pos
}

func (d *decoder) readUvarint() (uint64, error) {
	v, n, err := varint.FromUvarint(d.data[d.pos:])
	if err != nil {
		return 0, fmt.Errorf("%w: bad varint: %v", ErrProtocol, err)
	}
	d.pos += n
	return v, nil
}

func (d *decoder) readBytes(n int) ([]byte, error) {
	if d.remaining() < n {
		return nil, fmt.Errorf("%w: truncated message", ErrProtocol)
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *decoder) readBound() (types.Bound, error) {
	raw, err := d.readUvarint()
	if err != nil {
		return types.Bound{}, err
	}
	var ts uint64
	if raw == 0 {
		ts = math.MaxUint64
		d.lastTimestamp = math.MaxUint64
	} else {
		// First bound is absolute, later ones are deltas against the
		// running timestamp, offset by one to keep zero free for the
		// infinity sentinel.
		ts = d.lastTimestamp + (raw - 1)
		if ts > types.MaxTimestamp {
			return types.Bound{}, fmt.Errorf("%w: timestamp out of range", ErrProtocol)
		}
		d.lastTimestamp = ts
	}
	prefixLen, err := d.readUvarint()
	if err != nil {
		return types.Bound{}, err
	}
	if prefixLen > uint64(d.idSize) {
		return types.Bound{}, fmt.Errorf("%w: bound prefix of %d bytes, id size %d", ErrProtocol, prefixLen, d.idSize)
	}
	if raw == 0 && prefixLen != 0 {
		return types.Bound{}, fmt.Errorf("%w: infinity bound with prefix", ErrProtocol)
	}
	var prefix types.KeyBytes
	if prefixLen > 0 {
		b, err := d.readBytes(int(prefixLen))
		if err != nil {
			return types.Bound{}, err
		}
		prefix = types.KeyBytes(b).Clone()
	}
	return types.Bound{Timestamp: ts, Prefix: prefix}, nil
}

func (d *decoder) readRange() (Range, error) {
	bound, err := d.readBound()
	if err != nil {
		return nil, err
	}
	mode, err := d.readUvarint()
	if err != nil {
		return nil, err
	}
	switch Mode(mode) {
	case ModeSkip:
		return SkipRange{End: bound}, nil
	case ModeFingerprint:
		b, err := d.readBytes(types.FingerprintSize)
		if err != nil {
			return nil, err
		}
		var fp types.Fingerprint
		copy(fp[:], b)
		return FingerprintRange{End: bound, Fingerprint: fp}, nil
	case ModeIdList:
		count, err := d.readUvarint()
		if err != nil {
			return nil, err
		}
		if count > uint64(d.remaining()/d.idSize) {
			return nil, fmt.Errorf("%w: id list of %d entries exceeds message size", ErrProtocol, count)
		}
		ids := make([]types.KeyBytes, 0, count)
		for i := uint64(0); i < count; i++ {
			b, err := d.readBytes(d.idSize)
			if err != nil {
				return nil, err
			}
			ids = append(ids, types.KeyBytes(b).Clone())
		}
		return IdListRange{End: bound, IDs: ids}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected mode %d", ErrProtocol, mode)
	}
}
