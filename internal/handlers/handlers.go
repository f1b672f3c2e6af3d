package handlers

import (
	"cache-service-api/internal/audit"
	"cache-service-api/internal/cache"
	"cache-service-api/internal/config"
	"cache-service-api/internal/processor"
)

var (
	proc     *processor.Processor
	cfg      *config.Config
	recorder *audit.Recorder
)

// Init wires the handler package to its collaborators. recorder may be nil
// when the audit trail is disabled.
func Init(s cache.Store, c *config.Config, r *audit.Recorder) {
	proc = processor.New(s)
	cfg = c
	recorder = r
}
