package cache

import (
	"container/list"
	"math"
)

// freqBucket groups the entries that currently share one access count.
// Entries are kept in promotion order: the front is the entry that has been
// at this frequency the longest, which makes it the eviction tie-breaker.
type freqBucket struct {
	frequency uint64
	entries   *list.List // of *entry, oldest at the front
}

// frequencyIndex is the approximate-LFU core: a doubly linked list of
// buckets in strictly ascending frequency order, plus a map from frequency
// to bucket for O(1) lookup. All primitives are O(1); no empty bucket
// survives an operation.
type frequencyIndex struct {
	buckets *list.List // of *freqBucket, ascending by frequency
	byFreq  map[uint64]*list.Element
}

func newFrequencyIndex() *frequencyIndex {
	return &frequencyIndex{
		buckets: list.New(),
		byFreq:  make(map[uint64]*list.Element),
	}
}

// insertFresh places a brand-new entry into bucket 1, creating the bucket at
// the front of the index if needed. Bucket 1 is always the minimum, so the
// front position keeps the ascending order intact.
func (fi *frequencyIndex) insertFresh(e *entry) {
	be, ok := fi.byFreq[1]
	if !ok {
		b := &freqBucket{frequency: 1, entries: list.New()}
		be = fi.buckets.PushFront(b)
		fi.byFreq[1] = be
	}
	e.frequency = 1
	e.bucket = be
	e.elem = be.Value.(*freqBucket).entries.PushBack(e)
}

// promote moves an entry from its bucket at frequency f to the bucket at
// f+1, splicing a new bucket immediately after the current one when needed.
// A saturated entry stays where it is; further reads still succeed.
func (fi *frequencyIndex) promote(e *entry) {
	if e.frequency == math.MaxUint64 {
		return
	}

	cur := e.bucket
	b := cur.Value.(*freqBucket)
	next := e.frequency + 1

	ne, ok := fi.byFreq[next]
	if !ok {
		nb := &freqBucket{frequency: next, entries: list.New()}
		ne = fi.buckets.InsertAfter(nb, cur)
		fi.byFreq[next] = ne
	}

	b.entries.Remove(e.elem)
	e.frequency = next
	e.bucket = ne
	e.elem = ne.Value.(*freqBucket).entries.PushBack(e)

	if b.entries.Len() == 0 {
		fi.buckets.Remove(cur)
		delete(fi.byFreq, b.frequency)
	}
}

// remove unlinks an entry from its bucket and collapses the bucket if it
// became empty.
func (fi *frequencyIndex) remove(e *entry) {
	b := e.bucket.Value.(*freqBucket)
	b.entries.Remove(e.elem)
	if b.entries.Len() == 0 {
		fi.buckets.Remove(e.bucket)
		delete(fi.byFreq, b.frequency)
	}
	e.bucket = nil
	e.elem = nil
}

// evictOne unlinks and returns the oldest entry of the minimum-frequency
// bucket, or nil when the index is empty. The caller triggers this only
// when the cache is full, so a non-empty bucket is guaranteed then.
func (fi *frequencyIndex) evictOne() *entry {
	front := fi.buckets.Front()
	if front == nil {
		return nil
	}
	b := front.Value.(*freqBucket)
	victim := b.entries.Front().Value.(*entry)
	fi.remove(victim)
	return victim
}
