package negentropy

import "go.uber.org/zap"

// Opt configures a Reconciler.
type Opt func(*Reconciler)

// WithLogger sets the session logger. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Opt {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

// WithMaxSendRange sets how many items a divergent range may hold
// before it is split instead of answered with an id list. Peers need
// not agree on the value: only efficiency is affected, never
// correctness. Must be at least twice the bucket count.
func WithMaxSendRange(n int) Opt {
	return func(r *Reconciler) {
		r.maxSendRange = n
	}
}

// WithSplitBuckets sets how many fingerprint sub-ranges a divergent
// range is split into.
func WithSplitBuckets(n int) Opt {
	return func(r *Reconciler) {
		r.buckets = n
	}
}

// WithFrameSizeLimit caps produced messages at n bytes. Zero, the
// default, means no limit; nonzero values below MinFrameSizeLimit are
// rejected. Work that does not fit is deferred to later rounds behind
// a trailing fingerprint range.
func WithFrameSizeLimit(n int) Opt {
	return func(r *Reconciler) {
		r.frameSizeLimit = n
	}
}
