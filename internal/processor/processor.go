// Package processor maps textual operation envelopes onto cache engine
// calls and wraps the outcomes in success/error responses. It sits between
// the transport layer and the engine so the engine never sees wire shapes.
package processor

import (
	"fmt"

	"cache-service-api/internal/cache"
)

// Operation is the verb of a cache request. Legacy callers send these as
// plain uppercase strings.
type Operation string

const (
	OpCreate Operation = "CREATE"
	OpRead   Operation = "READ"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
)

// ErrInvalidOperation is the error text returned for an unrecognized verb.
const ErrInvalidOperation = "Invalid operation"

// Request is the envelope the processor consumes.
// ExpirationSeconds is optional; nil preserves the engine's default
// (never expire on create, keep the current expiry on update).
type Request struct {
	Operation         Operation `json:"operation"`
	Key               string    `json:"key"`
	Value             any       `json:"value,omitempty"`
	ExpirationSeconds *int64    `json:"expirationSeconds,omitempty"`
}

// Response wraps an engine outcome. An engine call that returns false but
// did not fail abnormally yields Success=false with an empty Error.
type Response struct {
	Success bool   `json:"success"`
	Value   any    `json:"value,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Processor translates requests into engine calls.
type Processor struct {
	store cache.Store
}

func New(store cache.Store) *Processor {
	return &Processor{store: store}
}

// Process executes one request. A panic escaping the engine or a subscriber
// boundary is recovered here and surfaced as the error message, so the
// transport layer always gets a well-formed response.
func (p *Processor) Process(req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = Response{Success: false, Error: fmt.Sprint(r)}
		}
	}()

	switch req.Operation {
	case OpCreate:
		if req.ExpirationSeconds != nil {
			return Response{Success: p.store.CreateWithTTL(req.Key, req.Value, *req.ExpirationSeconds)}
		}
		return Response{Success: p.store.Create(req.Key, req.Value)}

	case OpRead:
		v := p.store.Read(req.Key)
		return Response{Success: v != nil, Value: v}

	case OpUpdate:
		if req.ExpirationSeconds != nil {
			return Response{Success: p.store.UpdateWithTTL(req.Key, req.Value, *req.ExpirationSeconds)}
		}
		return Response{Success: p.store.Update(req.Key, req.Value)}

	case OpDelete:
		return Response{Success: p.store.Delete(req.Key)}

	default:
		return Response{Success: false, Error: ErrInvalidOperation}
	}
}
