// Package catalog provides the in-memory book catalog for Bookstand.
//
// # Overview
//
// The catalog is seeded once at construction from a fixed book list and is
// read-only at runtime: books are never created or deleted by request
// handlers. Lookups by ISBN are O(1) through a map; author and title
// searches are case-insensitive substring matches over the seeded set.
//
// # Concurrency
//
// The store guards all access with a single sync.RWMutex. The data set is
// small enough that a per-entity lock would buy nothing.
//
// # Related Packages
//
//   - pkg/reviews: per-book review ledger, validates ISBNs through Store
//   - pkg/api: HTTP handlers over the catalog
package catalog
