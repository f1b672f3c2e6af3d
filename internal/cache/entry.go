package cache

import (
	"container/list"
	"time"
)

// entry is one cached item. An entry lives in exactly one frequency bucket
// at all times; bucket points at that bucket's element in the index and elem
// at the entry's own position inside the bucket.
type entry struct {
	key       string
	value     any
	createdAt time.Time
	expiresAt time.Time // zero means the entry never expires

	frequency uint64
	bucket    *list.Element // element of frequencyIndex.buckets holding *freqBucket
	elem      *list.Element // element of the bucket's entry list holding *entry
}

// expired reports whether the entry's TTL has elapsed at now.
// An entry created with a zero TTL has expiresAt == createdAt, so it is
// already expired on its next access.
func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}
