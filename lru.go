package lru

import (
	"iter"

	"github.com/djdv/go-lru/internal/queue"
)

type (
	entry[Key comparable, Value any] = queue.Node[Key, Value]
	bookkeeping[Key comparable]      = queue.Entry[Key]
	// Cache is a space-accounted cache with
	// least-recently-used eviction.
	// Concurrent access must be guarded by the caller.
	// Constructed by [New].
	Cache[Key comparable, Value any] struct {
		index        map[Key]*entry[Key, Value]
		queue        queue.List[Key, Value]
		weigh        Weigher[Value]
		onDelete     DeletionNotifier[Key, Value]
		currentSpace int
		spaceLimit   int
		stamp        uint64
	}
	// Weigher reports the cache space a value will consume.
	// The result must be at least 1.
	Weigher[Value any] func(Value) int
	// DeletionNotifier observes entries leaving the cache.
	// See [WithDeletionNotifier].
	DeletionNotifier[Key comparable, Value any] func(Key, Value)
)

// Cacheable may be implemented by values to report a
// footprint other than the default weight of 1.
type Cacheable interface {
	// CacheFootprint returns the amount of cache space
	// the value consumes. Must be at least 1.
	CacheFootprint() int
}

const (
	// MinimumSpaceLimit defines the lowest value supported by [New].
	MinimumSpaceLimit = 1
	// DefaultSpaceLimit is a conventional capacity for callers
	// with no better estimate. With the default weigher it is
	// simply an entry count.
	DefaultSpaceLimit = 100
)

// New creates a [Cache] with the given weighted-space limit.
// The limit must be at least [MinimumSpaceLimit].
func New[Key comparable, Value any](
	spaceLimit int, options ...Option[Key, Value],
) (*Cache[Key, Value], error) {
	if spaceLimit < MinimumSpaceLimit {
		return nil, minSpaceLimitError(spaceLimit)
	}
	cache := &Cache[Key, Value]{
		index:      make(map[Key]*entry[Key, Value]),
		spaceLimit: spaceLimit,
		weigh:      defaultWeigher[Value],
	}
	for _, apply := range options {
		apply(cache)
	}
	return cache, nil
}

func defaultWeigher[Value any](value Value) int {
	if cacheable, ok := any(value).(Cacheable); ok {
		return cacheable.CacheFootprint()
	}
	return 1
}

// Get returns the value for key if it is cached,
// and marks it as most recently used;
// otherwise it returns the zero value and false.
func (c *Cache[Key, Value]) Get(key Key) (Value, bool) {
	if entry, ok := c.index[key]; ok {
		c.promote(entry)
		return entry.Value, true
	}
	var zero Value
	return zero, false
}

// Put inserts or updates key with value
// and marks it as most recently used.
// The value is returned unconditionally, even when it was not
// retained: an entry whose weight alone exceeds the space limit
// is dropped without error, and an existing entry it displaced
// stays removed. [Cache.Get] and [Cache.CurrentSpace] reflect
// whether the value actually resides in the cache.
func (c *Cache[Key, Value]) Put(key Key, value Value) Value {
	weight := c.weigh(value)
	if entry, ok := c.index[key]; ok {
		// Replace in place if the new weight still fits,
		// otherwise evict the old entry and re-add.
		newTotal := c.currentSpace - entry.Weight + weight
		if newTotal <= c.spaceLimit {
			entry.Value = value
			entry.Weight = weight
			c.currentSpace = newTotal
			c.promote(entry)
			return value
		}
		c.remove(entry)
	}
	if c.makeSpace(weight) {
		c.add(key, value, weight)
	}
	return value
}

// Remove removes key from the cache and returns its value;
// if key was absent it returns the zero value and false.
func (c *Cache[Key, Value]) Remove(key Key) (Value, bool) {
	if entry, ok := c.index[key]; ok {
		value := entry.Value
		c.remove(entry)
		return value, true
	}
	var zero Value
	return zero, false
}

// FlushKey removes key from the cache,
// doing nothing if key is absent.
func (c *Cache[Key, Value]) FlushKey(key Key) {
	if entry, ok := c.index[key]; ok {
		c.remove(entry)
	}
}

// Flush removes every entry from the cache.
// Deletion notifications are delivered in strict least-recently-used
// order, so layered collaborators observe the same sequence that
// gradual eviction would have produced.
func (c *Cache[Key, Value]) Flush() {
	flushed := make([]*entry[Key, Value], 0, c.queue.Len())
	for entry := range c.queue.Backward() {
		flushed = append(flushed, entry)
	}
	clear(c.index)
	c.queue.Init()
	c.currentSpace = 0
	for _, entry := range flushed {
		c.notifyDeletion(entry)
	}
}

// SetSpaceLimit adjusts the cache capacity.
// Lowering the limit evicts least-recently-used entries until the
// remaining entries fit; raising it never evicts.
// The limit must be positive.
func (c *Cache[Key, Value]) SetSpaceLimit(limit int) {
	if limit < c.spaceLimit {
		c.makeSpace(c.spaceLimit - limit)
	}
	c.spaceLimit = limit
}

// CurrentSpace returns the weighted space
// consumed by cached entries.
func (c *Cache[_, _]) CurrentSpace() int { return c.currentSpace }

// SpaceLimit returns the maximum weighted
// space the cache may consume.
func (c *Cache[_, _]) SpaceLimit() int { return c.spaceLimit }

// Len returns the number of cached entries.
func (c *Cache[_, _]) Len() int { return len(c.index) }

// Clone returns an independent cache with the same space limit,
// collaborators, and entries, preserving relative recency order.
// Mutating either cache never affects the other.
func (c *Cache[Key, Value]) Clone() *Cache[Key, Value] {
	clone := &Cache[Key, Value]{
		index:      make(map[Key]*entry[Key, Value], len(c.index)),
		spaceLimit: c.spaceLimit,
		weigh:      c.weigh,
		onDelete:   c.onDelete,
	}
	// Re-adding from oldest to newest reproduces the
	// source's relative recency under a fresh stamp counter.
	// Recorded weights are copied, not recomputed.
	for entry := range c.queue.Backward() {
		clone.add(entry.Key, entry.Value, entry.Weight)
	}
	return clone
}

// Keys returns an iterator over the (unordered) keys of cached entries.
func (c *Cache[Key, _]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for key := range c.index {
			if !yield(key) {
				return
			}
		}
	}
}

// Entries returns an iterator over the (unordered)
// key/value pairs of cached entries.
func (c *Cache[Key, Value]) Entries() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		for key, entry := range c.index {
			if !yield(key, entry.Value) {
				return
			}
		}
	}
}

// makeSpace ensures the requested amount of weighted space is free,
// evicting least-recently-used entries as necessary. It reports
// whether the space was made available; a request larger than the
// space limit can never be satisfied.
func (c *Cache[Key, Value]) makeSpace(requested int) bool {
	limit := c.spaceLimit
	if c.currentSpace+requested <= limit {
		return true
	}
	if requested > limit {
		return false
	}
	for c.currentSpace+requested > limit && c.queue.Back() != nil {
		c.remove(c.queue.Back())
	}
	return true
}

// promote marks entry as most recently used.
// Space accounting and the index are untouched.
func (c *Cache[Key, Value]) promote(entry *entry[Key, Value]) {
	entry.Stamp = c.nextStamp()
	c.queue.MoveToFront(entry)
}

// add links a new entry at the queue front and into the index.
// Caller must have made space for weight.
func (c *Cache[Key, Value]) add(key Key, value Value, weight int) {
	entry := &entry[Key, Value]{
		Value: value,
		Entry: bookkeeping[Key]{
			Key:    key,
			Weight: weight,
			Stamp:  c.nextStamp(),
		},
	}
	c.queue.PushFront(entry)
	c.index[key] = entry
	c.currentSpace += weight
	if debugging {
		assert(c.currentSpace <= c.spaceLimit,
			"add overflowed the space limit")
	}
}

// remove unlinks entry from both the index and the queue,
// releases its space, and fires the deletion notification.
func (c *Cache[Key, Value]) remove(entry *entry[Key, Value]) {
	delete(c.index, entry.Key)
	c.queue.Remove(entry)
	c.currentSpace -= entry.Weight
	if debugging {
		assert(c.currentSpace >= 0,
			"space accounting went negative")
		assert(len(c.index) == c.queue.Len(),
			"index and queue disagree on the live entry set")
	}
	c.notifyDeletion(entry)
}

func (c *Cache[Key, Value]) notifyDeletion(entry *entry[Key, Value]) {
	if notify := c.onDelete; notify != nil {
		notify(entry.Key, entry.Value)
	}
}

func (c *Cache[_, _]) nextStamp() uint64 {
	stamp := c.stamp
	c.stamp++
	return stamp
}
