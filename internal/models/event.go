package models

import (
	"time"

	"gorm.io/gorm"
)

// CacheEventRecord is one persisted cache lifecycle event.
// Value holds the JSON-encoded payload for added/updated events; Reason is
// set for evictions.
type CacheEventRecord struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	EventType string    `json:"eventType" gorm:"column:event_type;not null;index"`
	Key       string    `json:"key" gorm:"column:cache_key;not null"`
	Value     string    `json:"value,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	EmittedAt time.Time `json:"emittedAt" gorm:"column:emitted_at;index"`
	gorm.Model
}

// TableName specifies the table name for CacheEventRecord Model
func (CacheEventRecord) TableName() string {
	return "cache_events"
}
