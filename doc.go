// Package negentropy implements range-based set reconciliation: two
// peers, each holding a set of (timestamp, id) items, exchange a
// handful of compact messages and come away knowing exactly which ids
// the other side is missing.
//
// The protocol works by recursively comparing fingerprints of item
// ranges. Ranges that hash the same are skipped; divergent ranges are
// either split into smaller fingerprinted buckets or, once small
// enough, sent as plain id lists. Item content never crosses the wire,
// only timestamps and ids.
//
// A session is driven by one initiator and one responder, each wrapping
// its own sealed store:
//
//	st, _ := storage.NewVector(32)
//	// st.Insert(...) for each item
//	_ = st.Seal()
//	rec, _ := negentropy.NewReconciler(negentropy.RoleInitiator, st)
//	msg, _ := rec.Initiate()
//
// The opening message goes to the responder, whose replies are fed back
// into Reconcile (or ReconcileWithIDs, to collect the discovered
// differences) until both sides report Converged. What the application
// does with the have/need id sets is up to it; fetching the actual
// content happens outside this package.
package negentropy
