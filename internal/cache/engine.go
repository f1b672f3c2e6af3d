// Package cache implements a capacity-bounded, in-memory key/value store
// with approximate-LFU eviction, optional per-entry TTL and synchronous
// lifecycle event notification.
//
// All engine state lives behind a single mutex. Reads take the same
// exclusive lock as writes because a read mutates frequency and bucket
// membership. Events are published while the lock is held, so the event
// stream matches the serial order of the operations that produced it.
package cache

import (
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrInvalidCapacity is returned by New when capacity is less than one.
var ErrInvalidCapacity = errors.New("cache: capacity must be at least 1")

// evictionReason is attached to every ItemEvicted event so observers can
// classify it.
const evictionReason = "LFU: lowest frequency bucket, oldest entry"

// Options controls construction of an Engine.
type Options struct {
	// Clock overrides the engine's time source. Nil means the system clock.
	Clock Clock
}

// Engine is the cache engine. The zero value is not usable; create
// instances with New or NewWithOptions.
type Engine struct {
	mu       sync.Mutex
	capacity int
	items    map[string]*entry
	freq     *frequencyIndex
	clock    Clock
	events   *Notifier
}

// Compile-time check that Engine satisfies the Store contract.
var _ Store = (*Engine)(nil)

// New constructs an engine bounded to capacity entries.
func New(capacity int) (*Engine, error) {
	return NewWithOptions(capacity, Options{})
}

// NewWithOptions constructs an engine with an explicit time source.
func NewWithOptions(capacity int, opts Options) (*Engine, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	clk := opts.Clock
	if clk == nil {
		clk = SystemClock()
	}
	return &Engine{
		capacity: capacity,
		items:    make(map[string]*entry, capacity),
		freq:     newFrequencyIndex(),
		clock:    clk,
		events:   NewNotifier(),
	}, nil
}

// Events returns the notifier that external code subscribes to.
func (c *Engine) Events() *Notifier {
	return c.events
}

// Create inserts a key that never expires.
func (c *Engine) Create(key string, value any) bool {
	return c.create(key, value, false, 0)
}

// CreateWithTTL inserts a key that expires ttlSeconds from now.
// ttlSeconds == 0 sets the expiry to now, so the next access removes the
// entry and reports it expired.
func (c *Engine) CreateWithTTL(key string, value any, ttlSeconds int64) bool {
	return c.create(key, value, true, ttlSeconds)
}

func (c *Engine) create(key string, value any, hasTTL bool, ttlSeconds int64) bool {
	if !validKey(key) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; ok {
		return false
	}

	if len(c.items) == c.capacity {
		victim := c.freq.evictOne()
		delete(c.items, victim.key)
		c.emit(CacheEvent{Type: ItemEvicted, Key: victim.key, Reason: evictionReason})
	}

	now := c.clock.Now()
	e := &entry{key: key, value: value, createdAt: now}
	if hasTTL {
		e.expiresAt = now.Add(time.Duration(ttlSeconds) * time.Second)
	}

	c.freq.insertFresh(e)
	c.items[key] = e
	c.emit(CacheEvent{Type: ItemAdded, Key: key, Value: value})
	return true
}

// Read returns the value stored under key, or nil when the key is invalid,
// absent or expired. A hit bumps the entry's frequency and moves it to the
// next bucket; no event is emitted for a plain read.
func (c *Engine) Read(key string) any {
	if !validKey(key) {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return nil
	}
	if e.expired(c.clock.Now()) {
		c.removeLocked(e)
		c.emit(CacheEvent{Type: ItemExpired, Key: key})
		return nil
	}

	c.freq.promote(e)
	return e.value
}

// Update replaces the value of an existing key, preserving its expiry.
func (c *Engine) Update(key string, value any) bool {
	return c.update(key, value, false, 0)
}

// UpdateWithTTL replaces the value and resets the expiry to ttlSeconds from
// now (0 means the entry expires immediately).
func (c *Engine) UpdateWithTTL(key string, value any, ttlSeconds int64) bool {
	return c.update(key, value, true, ttlSeconds)
}

// update never touches frequency or bucket membership: an update is not an
// access in the eviction order's eyes.
func (c *Engine) update(key string, value any, hasTTL bool, ttlSeconds int64) bool {
	if !validKey(key) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return false
	}
	if e.expired(c.clock.Now()) {
		c.removeLocked(e)
		c.emit(CacheEvent{Type: ItemExpired, Key: key})
		return false
	}

	e.value = value
	if hasTTL {
		e.expiresAt = c.clock.Now().Add(time.Duration(ttlSeconds) * time.Second)
	}
	c.emit(CacheEvent{Type: ItemUpdated, Key: key, Value: value})
	return true
}

// Delete removes a key if present. Deleting an entry that happens to be
// expired still reports ItemRemoved: the caller's intent is removal, and
// the expiration was never observed.
func (c *Engine) Delete(key string) bool {
	if !validKey(key) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		return false
	}

	c.removeLocked(e)
	c.emit(CacheEvent{Type: ItemRemoved, Key: key})
	return true
}

// Len returns the number of items currently stored, including entries whose
// TTL has elapsed but which no access has removed yet.
func (c *Engine) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// removeLocked unlinks an entry from both indexes. Caller holds c.mu.
func (c *Engine) removeLocked(e *entry) {
	c.freq.remove(e)
	delete(c.items, e.key)
}

// emit stamps the event with wall-clock time and publishes it while c.mu is
// still held, which pins the event order to the operation order.
func (c *Engine) emit(ev CacheEvent) {
	ev.Timestamp = time.Now()
	c.events.Publish(ev)
}

// validKey rejects empty and whitespace-only keys. Rejected keys produce no
// event and no state change.
func validKey(key string) bool {
	return strings.TrimSpace(key) != ""
}
