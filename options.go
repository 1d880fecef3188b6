package lru

// Option configures a Cache during creation.
type Option[Key comparable, Value any] func(*Cache[Key, Value])

// WithWeigher sets the function used to weigh values at insertion
// and replacement time. The default weigher returns a value's
// [Cacheable] footprint when implemented, and 1 otherwise.
func WithWeigher[Key comparable, Value any](weigh Weigher[Value]) Option[Key, Value] {
	return func(c *Cache[Key, Value]) {
		if weigh != nil {
			c.weigh = weigh
		}
	}
}

// WithDeletionNotifier registers notify to be called exactly once for
// each entry that leaves the cache, whether by eviction, explicit
// removal, or flush. Replacing a value in place does not notify.
// Collaborators layering a secondary store cascade removals here.
// notify must not call back into the cache.
func WithDeletionNotifier[Key comparable, Value any](notify DeletionNotifier[Key, Value]) Option[Key, Value] {
	return func(c *Cache[Key, Value]) {
		if notify != nil {
			c.onDelete = notify
		}
	}
}
