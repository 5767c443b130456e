// Package reviews provides the per-book review ledger.
//
// # Overview
//
// Reviews are owned by exactly one book and keyed by a generated uuid, so
// a review keeps its identity when neighbours are deleted (no positional
// indices). Ownership is enforced on every mutation: only the author of a
// review may update or delete it.
//
// # Policies
//
// How many reviews one user may hold on one book is a single
// construction-time choice:
//
// UpsertOne: at most one; re-submitting overwrites the existing review.
// CappedAppend: up to Cap reviews; further submissions are rejected.
// Unlimited: no cap.
//
// # Concurrency
//
// A single mutex guards the ledger, making the read-modify-write on a
// book's review list linearizable. Data volume is far too small for
// per-book locking to matter.
package reviews
