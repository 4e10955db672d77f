// Package view implements a materialized-view store for event-sourced
// systems. A Repository consumes ordered batches of domain events for one
// aggregate instance and maintains a persisted projection per (view type,
// instance id) pair, so consumers query derived state directly instead of
// replaying event history.
//
// The core cycle is load → fold → persist:
//
//	repo := view.NewRepository[BalanceView]("balance", store)
//	repo.ApplyEvents(ctx, "acct-1", envelopes)
//	v, ok := repo.Load(ctx, "acct-1")
//
// Projections are plain structs implementing Update; the repository never
// interprets their fields. Missing records are represented by the zero value
// of the view type, and corrupt records are tolerated (reported through the
// registered error handler, then treated as absent). Commit-time failures
// are defects and panic; see Repository for the full policy.
package view

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Envelope is a domain event plus the delivery metadata supplied by the
// upstream event-sourcing framework.
//
// Envelopes are:
//   - Immutable once created
//   - Ordered by the framework; the repository folds them strictly in the
//     order given and performs no reordering or deduplication of its own
//   - Read-only inputs to View.Update; never persisted by this package
type Envelope struct {
	// EventID is a unique identifier for this event, typically a UUID.
	EventID string `json:"event_id"`

	// AggregateID identifies the aggregate instance the event belongs to.
	// It equals the key the instance's view is stored under.
	AggregateID string `json:"aggregate_id"`

	// Seq is the monotonic sequence of the event within its aggregate,
	// as assigned by the upstream framework.
	Seq int64 `json:"seq"`

	// Type categorizes the event for routing inside View.Update.
	Type string `json:"type"`

	// Payload contains the event-specific data as a JSON-serializable value.
	// The structure depends on the event Type.
	Payload any `json:"payload"`

	// Timestamp records when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Metadata carries framework-supplied delivery metadata.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// NewEnvelope fabricates an envelope with a fresh event id and a UTC
// timestamp. Intended for tests and for callers that feed repositories
// outside a framework.
func NewEnvelope(aggregateID, eventType string, seq int64, payload any) Envelope {
	return Envelope{
		EventID:     uuid.NewString(),
		AggregateID: aggregateID,
		Seq:         seq,
		Type:        eventType,
		Payload:     payload,
		Timestamp:   time.Now().UTC(),
	}
}

// View is implemented by projection types. Update applies exactly one event
// to the view, mutating it in place: a single left-fold step.
//
// Update must be a pure fold step with respect to the event sequence:
// applying the same events to the same starting view always yields the same
// serialized bytes. Views must round-trip losslessly through the
// repository's codec; a view that does not is treated as a defect at commit
// time.
type View interface {
	Update(event Envelope)
}

// ViewPtr constrains a type parameter to "pointer to V that implements
// View". Repositories are generic over the concrete view struct V; the
// default value for an instance with no stored record is the zero value
// of V.
type ViewPtr[V any] interface {
	*V
	View
}

// Processor is the dispatch contract invoked by the event-sourcing
// framework: once per committed batch of events for an aggregate instance,
// in event order. Dispatch returns nothing: the framework does not await a
// result, so all failure reporting happens through the repository's error
// handler or the fail-fast panic channel.
type Processor interface {
	Dispatch(ctx context.Context, instanceID string, events []Envelope)
}
