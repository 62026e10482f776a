package negentropy

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/rust-nostr/negentropy/types"
	"github.com/rust-nostr/negentropy/wire"
)

// Role determines which side of a session the engine plays. The
// initiator produces the opening message; after the first round the
// protocol is symmetric.
type Role uint8

const (
	RoleInitiator Role = iota
	RoleResponder
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RoleInitiator:
		return "initiator"
	case RoleResponder:
		return "responder"
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

type sessionState uint8

const (
	stateInitial sessionState = iota
	stateAwaitingPeer
	stateResponding
	stateConverged
)

// String implements fmt.Stringer.
func (s sessionState) String() string {
	switch s {
	case stateInitial:
		return "initial"
	case stateAwaitingPeer:
		return "awaiting peer"
	case stateResponding:
		return "responding"
	case stateConverged:
		return "converged"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

const (
	// DefaultMaxSendRange is the default largest divergent range
	// answered with an id list instead of being split.
	DefaultMaxSendRange = 128
	// DefaultSplitBuckets is the default number of fingerprint
	// sub-ranges a divergent range is split into.
	DefaultSplitBuckets = 16
	// MinFrameSizeLimit is the smallest allowed nonzero frame size
	// limit, in bytes.
	MinFrameSizeLimit = 4096
)

// Reconciler is a single reconciliation session over a sealed store.
// Calls are synchronous; a Reconciler must not be shared between
// goroutines, but distinct sessions may run concurrently against the
// same sealed store.
type Reconciler struct {
	role   Role
	store  Storage
	idSize int
	logger *zap.Logger

	maxSendRange   int
	buckets        int
	frameSizeLimit int

	state      sessionState
	haveIDs    map[string]struct{}
	needIDs    map[string]struct{}
	sentRanges map[string]struct{}
}

// NewReconciler creates a session in the given role over a sealed
// store.
func NewReconciler(role Role, store Storage, opts ...Opt) (*Reconciler, error) {
	if role != RoleInitiator && role != RoleResponder {
		return nil, fmt.Errorf("%w: unknown role %d", ErrInvalidState, uint8(role))
	}
	if !store.Sealed() {
		return nil, fmt.Errorf("%w: store is not sealed", ErrInvalidState)
	}
	r := &Reconciler{
		role:         role,
		store:        store,
		idSize:       store.IDSize(),
		logger:       zap.NewNop(),
		maxSendRange: DefaultMaxSendRange,
		buckets:      DefaultSplitBuckets,
		state:        stateInitial,
		haveIDs:      make(map[string]struct{}),
		needIDs:      make(map[string]struct{}),
		sentRanges:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.idSize < 1 {
		return nil, fmt.Errorf("%w: store reports id size %d", ErrInvalidState, r.idSize)
	}
	if r.buckets < 2 {
		return nil, fmt.Errorf("%w: need at least 2 split buckets, got %d", ErrInvalidState, r.buckets)
	}
	if r.maxSendRange < 2*r.buckets {
		return nil, fmt.Errorf("%w: max send range %d below twice the bucket count %d",
			ErrInvalidState, r.maxSendRange, r.buckets)
	}
	if r.frameSizeLimit != 0 && r.frameSizeLimit < MinFrameSizeLimit {
		return nil, fmt.Errorf("%w: %d < %d", ErrFrameSizeTooSmall, r.frameSizeLimit, MinFrameSizeLimit)
	}
	sessionsStarted.WithLabelValues(role.String()).Inc()
	return r, nil
}

// Converged reports whether the session has terminated.
func (r *Reconciler) Converged() bool {
	return r.state == stateConverged
}

// Initiate produces the opening message covering the whole store. Only
// valid once, in the initiator role.
func (r *Reconciler) Initiate() ([]byte, error) {
	if r.role != RoleInitiator {
		return nil, fmt.Errorf("%w: initiate from %s role", ErrInvalidState, r.role)
	}
	if r.state != stateInitial {
		return nil, fmt.Errorf("%w: initiate in %s state", ErrInvalidState, r.state)
	}
	b := r.newBuilder()
	if err := r.respondToDivergence(b, 0, r.store.Size(), types.Bound{}, types.Infinity); err != nil {
		return nil, err
	}
	out, err := r.finishMessage(b)
	if err != nil {
		return nil, err
	}
	r.state = stateAwaitingPeer
	messagesTotal.WithLabelValues("out").Inc()
	messageBytes.WithLabelValues("out").Add(float64(len(out)))
	r.logger.Debug("initiated session",
		zap.Int("items", r.store.Size()),
		zap.Int("outSize", len(out)),
	)
	return out, nil
}

// Reconcile consumes the peer's message and produces the reply. An
// empty incoming message, or a reply with nothing left to say,
// terminates the session; the returned message is then empty.
func (r *Reconciler) Reconcile(msg []byte) ([]byte, error) {
	return r.reconcile(msg)
}

// ReconcileWithIDs is Reconcile plus draining the accumulated have and
// need sets, for the side that terminates the exchange. Identifiers
// come out sorted bytewise. Once the session has converged it may be
// called again with an empty message to pick up sets left over from
// earlier Reconcile calls; a non-empty message then fails with
// ErrAlreadyConverged.
func (r *Reconciler) ReconcileWithIDs(msg []byte) (out []byte, haveIDs, needIDs []types.KeyBytes, err error) {
	out, err = r.reconcile(msg)
	if err != nil {
		return nil, nil, nil, err
	}
	return out, drainIDSet(r.haveIDs), drainIDSet(r.needIDs), nil
}

func (r *Reconciler) reconcile(data []byte) ([]byte, error) {
	switch r.state {
	case stateConverged:
		if len(data) == 0 {
			return nil, nil
		}
		return nil, ErrAlreadyConverged
	case stateInitial:
		if r.role == RoleInitiator {
			return nil, fmt.Errorf("%w: reconcile before initiate", ErrInvalidState)
		}
		r.state = stateResponding
	case stateAwaitingPeer, stateResponding:
	default:
		panic("BUG: unknown session state")
	}

	messagesTotal.WithLabelValues("in").Inc()
	messageBytes.WithLabelValues("in").Add(float64(len(data)))

	if len(data) == 0 {
		r.state = stateConverged
		r.logger.Debug("peer converged", zap.Stringer("role", r.role))
		return nil, nil
	}

	msg, err := wire.DecodeMessage(data, r.idSize)
	if err != nil {
		protocolErrors.Inc()
		return nil, fmt.Errorf("decode message: %w", err)
	}

	out, err := r.processMessage(msg)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		r.state = stateConverged
	}
	messagesTotal.WithLabelValues("out").Inc()
	messageBytes.WithLabelValues("out").Add(float64(len(out)))
	r.logger.Debug("reconciled message",
		zap.Stringer("role", r.role),
		zap.Int("ranges", len(msg)),
		zap.Int("inSize", len(data)),
		zap.Int("outSize", len(out)),
		zap.Bool("converged", r.Converged()),
	)
	return out, nil
}

// processMessage walks the incoming ranges in lockstep with the local
// store and assembles the reply.
func (r *Reconciler) processMessage(msg wire.Message) ([]byte, error) {
	b := r.newBuilder()
	lower := types.Bound{}
	cursor := 0
	for _, rng := range msg {
		upper := rng.UpperBound()
		hi, err := r.findUpperIndex(cursor, upper)
		if err != nil {
			return nil, err
		}
		rangesProcessed.WithLabelValues(rng.Mode().String()).Inc()
		switch rng := rng.(type) {
		case wire.SkipRange:
			b.skip(upper)
		case wire.FingerprintRange:
			if err := r.processFingerprint(b, rng, cursor, hi, lower); err != nil {
				return nil, err
			}
		case wire.IdListRange:
			if err := r.processIdList(b, rng, cursor, hi, lower); err != nil {
				return nil, err
			}
		default:
			panic(fmt.Sprintf("BUG: unknown range type %T", rng))
		}
		cursor = hi
		lower = upper
	}
	return r.finishMessage(b)
}

func (r *Reconciler) newBuilder() *msgBuilder {
	return &msgBuilder{enc: wire.NewEncoder(r.idSize), limit: r.frameSizeLimit}
}

// finishMessage closes the reply. A deferred builder gets the trailing
// fingerprint range covering everything left over; an all-skip reply
// coalesces to the empty message; any other reply is padded with a
// final skip so that its ranges tile the key space up to infinity.
func (r *Reconciler) finishMessage(b *msgBuilder) ([]byte, error) {
	if b.full && b.deferredWork {
		fp, err := r.store.Fingerprint(b.deferFrom, r.store.Size())
		if err != nil {
			return nil, err
		}
		b.addFingerprint(types.Infinity, fp)
	}
	if b.payloads == 0 {
		return nil, nil
	}
	if !b.lastBound.IsInfinity() {
		b.pendingSkip = nil
		b.enc.WriteRange(wire.SkipRange{End: types.Infinity})
	}
	return b.enc.Bytes(), nil
}

func (r *Reconciler) processFingerprint(b *msgBuilder, rng wire.FingerprintRange, lo, hi int, lower types.Bound) error {
	local, err := r.store.Fingerprint(lo, hi)
	if err != nil {
		return err
	}
	if local == rng.Fingerprint {
		b.skip(rng.End)
		return nil
	}
	r.logger.Debug("fingerprint mismatch",
		zap.Object("lower", lower),
		zap.Object("upper", rng.End),
		zap.Int("count", hi-lo),
	)
	if b.full || b.overBudget() {
		b.markFull(lo)
		b.deferredWork = true
		return nil
	}
	return r.respondToDivergence(b, lo, hi, lower, rng.End)
}

func (r *Reconciler) processIdList(b *msgBuilder, rng wire.IdListRange, lo, hi int, lower types.Bound) error {
	peerHas := make(map[string]struct{}, len(rng.IDs))
	for _, id := range rng.IDs {
		peerHas[string(id)] = struct{}{}
	}

	divergent := false
	local := make(map[string]struct{}, hi-lo)
	for i := lo; i < hi; i++ {
		it, err := r.store.ItemAt(i)
		if err != nil {
			return err
		}
		sid := string(it.ID)
		local[sid] = struct{}{}
		if _, ok := peerHas[sid]; !ok {
			divergent = true
			if _, seen := r.haveIDs[sid]; !seen {
				r.haveIDs[sid] = struct{}{}
				idsDiscovered.WithLabelValues("have").Inc()
			}
		}
	}
	for _, id := range rng.IDs {
		sid := string(id)
		if _, ok := local[sid]; !ok {
			divergent = true
			if _, seen := r.needIDs[sid]; !seen {
				r.needIDs[sid] = struct{}{}
				idsDiscovered.WithLabelValues("need").Inc()
			}
		}
	}

	switch {
	case !divergent:
		b.skip(rng.End)
	case r.alreadySent(lower, rng.End):
		// Both lists for these exact bounds have crossed the wire, so
		// both sides now hold the full diff. Nothing more to learn.
		b.skip(rng.End)
	case b.full || b.overBudget():
		b.markFull(lo)
		b.deferredWork = true
	default:
		return r.sendIdList(b, lo, hi, lower, rng.End)
	}
	return nil
}

// respondToDivergence answers a range whose contents differ from the
// peer's: small ranges go out as id lists, large ones are split into
// fingerprint buckets refined on the next round.
func (r *Reconciler) respondToDivergence(b *msgBuilder, lo, hi int, lower, upper types.Bound) error {
	if hi-lo <= r.maxSendRange {
		return r.sendIdList(b, lo, hi, lower, upper)
	}
	return r.splitRange(b, lo, hi, upper)
}

func (r *Reconciler) sendIdList(b *msgBuilder, lo, hi int, lower, upper types.Bound) error {
	ids := make([]types.KeyBytes, 0, hi-lo)
	for i := lo; i < hi; i++ {
		it, err := r.store.ItemAt(i)
		if err != nil {
			return err
		}
		ids = append(ids, it.ID)
	}
	end := upper
	if c := b.idListCapacity(r.idSize); c >= 0 && len(ids) > c {
		if c == 0 {
			b.markFull(lo)
			b.deferredWork = true
			return nil
		}
		cut, err := r.store.ItemAt(lo + c)
		if err != nil {
			return err
		}
		end = types.BoundFromItem(cut)
		ids = ids[:c]
		b.markFull(lo + c)
		b.deferredWork = true
	}
	b.addIdList(end, ids)
	r.markSent(lower, end)
	r.logger.Debug("sent id list",
		zap.Int("count", len(ids)),
		zap.Object("lower", lower),
		zap.Object("upper", end),
		zap.Array("ids", types.KeyList(ids)),
	)
	return nil
}

func (r *Reconciler) splitRange(b *msgBuilder, lo, hi int, upper types.Bound) error {
	count := hi - lo
	perBucket := count / r.buckets
	extra := count % r.buckets
	curr := lo
	for i := 0; i < r.buckets && curr < hi; i++ {
		if b.overBudget() {
			b.markFull(curr)
			b.deferredWork = true
			return nil
		}
		n := perBucket
		if i < extra {
			n++
		}
		bucketEnd := curr + n
		end := upper
		if bucketEnd < hi {
			prev, err := r.store.ItemAt(bucketEnd - 1)
			if err != nil {
				return err
			}
			next, err := r.store.ItemAt(bucketEnd)
			if err != nil {
				return err
			}
			end = types.MinimalBound(prev, next)
		}
		fp, err := r.store.Fingerprint(curr, bucketEnd)
		if err != nil {
			return err
		}
		b.addFingerprint(end, fp)
		curr = bucketEnd
	}
	return nil
}

// findUpperIndex returns the position of the first item at or past the
// bound, searching from a known floor.
func (r *Reconciler) findUpperIndex(from int, b types.Bound) (int, error) {
	if b.IsInfinity() {
		return r.store.Size(), nil
	}
	lo, hi := from, r.store.Size()
	for lo < hi {
		mid := lo + (hi-lo)/2
		it, err := r.store.ItemAt(mid)
		if err != nil {
			return 0, err
		}
		if b.CompareItem(it) <= 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, nil
}

func rangeKey(lower, upper types.Bound) string {
	return fmt.Sprintf("%d:%x-%d:%x", lower.Timestamp, lower.Prefix, upper.Timestamp, upper.Prefix)
}

func (r *Reconciler) markSent(lower, upper types.Bound) {
	r.sentRanges[rangeKey(lower, upper)] = struct{}{}
}

func (r *Reconciler) alreadySent(lower, upper types.Bound) bool {
	_, ok := r.sentRanges[rangeKey(lower, upper)]
	return ok
}

func drainIDSet(set map[string]struct{}) []types.KeyBytes {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	ids := make([]types.KeyBytes, len(keys))
	for i, k := range keys {
		ids[i] = types.KeyBytes(k)
	}
	clear(set)
	return ids
}
