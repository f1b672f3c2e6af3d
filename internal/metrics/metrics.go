package metrics

import (
	"cache-service-api/internal/cache"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	EventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_events_total",
		Help: "Total number of cache lifecycle events, by event type.",
	}, []string{"type"})

	ItemsStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cache_items_stored",
		Help: "Current number of items resident in the cache.",
	})
)

// Attach registers a notifier subscriber that keeps the counters and the
// size gauge current. The gauge is tracked from event deltas rather than by
// querying the engine: the callback runs under the engine lock, so calling
// back into the engine would deadlock.
func Attach(n *cache.Notifier) string {
	return n.Subscribe(func(ev cache.CacheEvent) {
		EventsTotal.WithLabelValues(string(ev.Type)).Inc()
		switch ev.Type {
		case cache.ItemAdded:
			ItemsStored.Inc()
		case cache.ItemRemoved, cache.ItemEvicted, cache.ItemExpired:
			ItemsStored.Dec()
		}
	})
}
