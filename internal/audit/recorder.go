// Package audit persists cache lifecycle events to the service's SQLite
// database. It records the event stream, never the cache contents: the
// cache itself stays memory-only.
package audit

import (
	"encoding/json"
	"log"
	"sync"

	"cache-service-api/internal/cache"
	"cache-service-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recorder turns cache events into audit rows. The notifier callback only
// converts and enqueues; the actual insert happens on the recorder's own
// goroutine so no database I/O ever runs under the engine lock.
type Recorder struct {
	db   *gorm.DB
	ch   chan models.CacheEventRecord
	wg   sync.WaitGroup
	once sync.Once
}

// NewRecorder starts a recorder writing to db.
func NewRecorder(db *gorm.DB) *Recorder {
	r := &Recorder{
		db: db,
		ch: make(chan models.CacheEventRecord, 1024),
	}
	r.wg.Add(1)
	go r.writeLoop()
	return r
}

// Attach subscribes the recorder to a cache notifier and returns the
// subscription id. When the buffer is full the event is dropped and logged
// rather than blocking the engine.
func (r *Recorder) Attach(n *cache.Notifier) string {
	return n.Subscribe(func(ev cache.CacheEvent) {
		select {
		case r.ch <- toRecord(ev):
		default:
			log.Printf("audit: buffer full, dropping %s %q", ev.Type, ev.Key)
		}
	})
}

// Close stops the writer after draining buffered events.
// Safe to call multiple times.
func (r *Recorder) Close() {
	r.once.Do(func() {
		close(r.ch)
	})
	r.wg.Wait()
}

// Recent returns the latest events, newest first.
func (r *Recorder) Recent(limit int) ([]models.CacheEventRecord, error) {
	if limit < 1 {
		limit = 50
	}
	var records []models.CacheEventRecord
	err := r.db.Order("emitted_at desc").Limit(limit).Find(&records).Error
	return records, err
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()
	for rec := range r.ch {
		if err := r.db.Create(&rec).Error; err != nil {
			log.Printf("audit: failed to persist %s %q: %v", rec.EventType, rec.Key, err)
		}
	}
}

func toRecord(ev cache.CacheEvent) models.CacheEventRecord {
	rec := models.CacheEventRecord{
		ID:        uuid.NewString(),
		EventType: string(ev.Type),
		Key:       ev.Key,
		Reason:    ev.Reason,
		EmittedAt: ev.Timestamp,
	}
	if ev.Value != nil {
		if payload, err := json.Marshal(ev.Value); err == nil {
			rec.Value = string(payload)
		}
	}
	return rec
}
