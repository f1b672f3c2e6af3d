package metrics

import (
	"testing"

	"cache-service-api/internal/cache"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestAttach_TracksEventsAndSize(t *testing.T) {
	n := cache.NewNotifier()
	Attach(n)

	before := testutil.ToFloat64(ItemsStored)
	added := testutil.ToFloat64(EventsTotal.WithLabelValues("ItemAdded"))

	n.Publish(cache.CacheEvent{Type: cache.ItemAdded, Key: "a"})
	n.Publish(cache.CacheEvent{Type: cache.ItemAdded, Key: "b"})
	n.Publish(cache.CacheEvent{Type: cache.ItemEvicted, Key: "a"})
	n.Publish(cache.CacheEvent{Type: cache.ItemUpdated, Key: "b"})

	require.Equal(t, before+1, testutil.ToFloat64(ItemsStored))
	require.Equal(t, added+2, testutil.ToFloat64(EventsTotal.WithLabelValues("ItemAdded")))
	require.Equal(t, 1.0, testutil.ToFloat64(EventsTotal.WithLabelValues("ItemEvicted")))
}
