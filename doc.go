// Package lru implements a [Cache] with space-accounted,
// least-recently-used eviction.
//
// Unlike a pure entry-count LRU, each entry consumes a caller-defined
// integer "weight" against a single scalar capacity budget, so
// heterogeneous values of very different sizes can share one cache.
// With the default weigher every entry weighs 1 and the cache
// degenerates to an ordinary LRU.
//
// Glossary and invariants:
//
//   - Weight / footprint
//
//     The amount of cache space an entry consumes.
//     Computed by the [Weigher] at insertion and replacement time;
//     values may report their own footprint by implementing [Cacheable].
//
//   - Promotion
//
//     Marking an entry as most recently used.
//     [Cache.Get] hits and [Cache.Put] both promote.
//     Promotion never changes space accounting.
//
//   - Eviction
//
//     Removal of least-recently-used entries to satisfy a space
//     request. Entries are evicted strictly oldest-first.
//
//   - Deletion notification
//
//     A one-shot signal that an entry has left the cache by eviction,
//     removal, or flush (see [WithDeletionNotifier]). In-place value
//     replacement does not notify.
//
//   - The sum of live entry weights always equals [Cache.CurrentSpace],
//     and never exceeds [Cache.SpaceLimit].
//
// An entry whose weight alone exceeds the space limit is never
// admitted: [Cache.Put] returns the value but the cache is left
// unchanged. Callers that need to distinguish this case can compare
// [Cache.CurrentSpace] around the call or probe with [Cache.Get].
//
// The cache performs no I/O and no locking. All operations are
// synchronous pointer and map manipulation; concurrent access,
// including concurrent [Cache.Get] (which mutates recency), must be
// guarded by the caller. Values are stored by reference; a value whose
// externally visible footprint changes after insertion must be re-Put,
// or space accounting will drift.
package lru
