package audit

import (
	"testing"
	"time"

	"cache-service-api/internal/cache"
	"cache-service-api/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestRecorder_PersistsEvents(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	r := NewRecorder(db)
	n := cache.NewNotifier()
	id := r.Attach(n)
	require.NotEmpty(t, id)

	n.Publish(cache.CacheEvent{Type: cache.ItemAdded, Key: "a", Value: "v1", Timestamp: time.Now()})
	n.Publish(cache.CacheEvent{Type: cache.ItemEvicted, Key: "a", Reason: "LFU: lowest frequency bucket, oldest entry", Timestamp: time.Now()})

	r.Close()

	records, err := r.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	byType := make(map[string]int)
	for _, rec := range records {
		byType[rec.EventType]++
	}
	require.Equal(t, 1, byType["ItemAdded"])
	require.Equal(t, 1, byType["ItemEvicted"])

	for _, rec := range records {
		if rec.EventType == "ItemAdded" {
			require.Equal(t, `"v1"`, rec.Value)
		}
		if rec.EventType == "ItemEvicted" {
			require.Contains(t, rec.Reason, "LFU")
		}
	}
}

func TestRecorder_CloseIsIdempotent(t *testing.T) {
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	r := NewRecorder(db)
	r.Close()
	r.Close()
}
