package view

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/wilhg/viewstore/pkg/errmodel"
	"github.com/wilhg/viewstore/pkg/kv"
	"github.com/wilhg/viewstore/pkg/otel"
)

// ErrorHandler receives recoverable errors (storage reads, undecodable
// records) that the repository tolerates on behalf of the caller. Handlers
// run synchronously on the calling goroutine and must not panic; there is no
// recovery path if they do.
type ErrorHandler func(error)

// Repository maintains one persisted view per aggregate instance inside a
// single storage namespace. The namespace name and store handle are fixed at
// construction; a store handle may be shared across many repositories.
//
// Ordering: events within one ApplyEvents call are folded in caller order.
// The repository makes no cross-call atomicity guarantee: two concurrent
// load→fold→commit cycles for the same instance id interleave arbitrarily
// and resolve last-write-wins. Callers needing isolation must serialize
// calls per instance id externally.
//
// Error policy: a missing record is not an error (the zero view is used);
// undecodable stored state and storage read failures are reported to the
// error handler and otherwise swallowed; serialization or write failures at
// commit time are defects and panic with full diagnostic context.
type Repository[V any, P ViewPtr[V]] struct {
	name    string
	store   kv.Store
	codec   Codec
	onError ErrorHandler
	tracer  trace.Tracer
}

// NewRepository binds a repository to one namespace and one store handle.
// No I/O is performed at construction. The codec defaults to JSONCodec and
// the error handler to a no-op.
func NewRepository[V any, P ViewPtr[V]](viewName string, store kv.Store) *Repository[V, P] {
	return &Repository[V, P]{
		name:    viewName,
		store:   store,
		codec:   JSONCodec{},
		onError: func(error) {},
		tracer:  otel.Tracer("view/repository"),
	}
}

// WithErrorHandler registers the handler recoverable errors are reported
// to. At most one handler is active; a later call replaces the earlier
// registration. Passing nil restores the no-op default.
func (r *Repository[V, P]) WithErrorHandler(fn ErrorHandler) *Repository[V, P] {
	if fn == nil {
		fn = func(error) {}
	}
	r.onError = fn
	return r
}

// WithCodec replaces the codec used to serialize and deserialize views.
func (r *Repository[V, P]) WithCodec(c Codec) *Repository[V, P] {
	if c != nil {
		r.codec = c
	}
	return r
}

// ViewName returns the bound namespace name, for diagnostics and testing.
func (r *Repository[V, P]) ViewName() string { return r.name }

// Load reads the stored view for instanceID. The second return is false
// when no record exists: "view not found" is not an error at this
// boundary. A record that exists but cannot be read back (storage failure
// or undecodable bytes) is reported to the error handler and also yields
// false; load never panics.
func (r *Repository[V, P]) Load(ctx context.Context, instanceID string) (*V, bool) {
	ctx, span := r.tracer.Start(ctx, "Repository.Load", trace.WithAttributes(
		attribute.String("view.name", r.name),
		attribute.String("instance.id", instanceID),
	))
	defer span.End()

	data, ok, err := r.read(ctx, instanceID)
	if err != nil {
		span.RecordError(err)
		r.onError(err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	v := new(V)
	if err := r.codec.Unmarshal(data, v); err != nil {
		derr := r.decodeError(instanceID, err)
		span.RecordError(derr)
		r.onError(derr)
		return nil, false
	}
	return v, true
}

// ApplyEvents is the core write path: load the current view (or the zero
// view when no record exists), fold events strictly in the order given, and
// commit the result. If the current view cannot be loaded the error is
// reported to the handler and the call aborts with no partial fold and no
// write. Commit failures panic; see Repository.
func (r *Repository[V, P]) ApplyEvents(ctx context.Context, instanceID string, events []Envelope) {
	ctx, span := r.tracer.Start(ctx, "Repository.ApplyEvents", trace.WithAttributes(
		attribute.String("view.name", r.name),
		attribute.String("instance.id", instanceID),
		attribute.Int("event.count", len(events)),
	))
	defer span.End()

	view, vctx, err := r.loadMut(ctx, instanceID)
	if err != nil {
		span.RecordError(err)
		r.onError(err)
		return
	}
	for _, ev := range events {
		view.Update(ev)
	}
	vctx.commit(ctx, r.store, r.codec, view)
}

// Dispatch satisfies the framework's Processor contract by forwarding to
// ApplyEvents unchanged. It exists purely as an adapter seam.
func (r *Repository[V, P]) Dispatch(ctx context.Context, instanceID string, events []Envelope) {
	r.ApplyEvents(ctx, instanceID, events)
}

// loadMut loads the current view and a fresh context bound to the exact
// (namespace, instance id) the view came from. A missing record yields the
// zero view; an unreadable record is fatal for the calling operation.
func (r *Repository[V, P]) loadMut(ctx context.Context, instanceID string) (P, viewContext, error) {
	vctx := viewContext{viewName: r.name, instanceID: instanceID}
	data, ok, err := r.read(ctx, instanceID)
	if err != nil {
		return nil, vctx, err
	}
	view := P(new(V))
	if !ok {
		return view, vctx, nil
	}
	if err := r.codec.Unmarshal(data, view); err != nil {
		return nil, vctx, r.decodeError(instanceID, err)
	}
	return view, vctx, nil
}

func (r *Repository[V, P]) read(ctx context.Context, instanceID string) ([]byte, bool, error) {
	ns, err := r.store.Namespace(ctx, r.name)
	if err != nil {
		return nil, false, errmodel.Storage("namespace_unavailable",
			fmt.Sprintf("unable to open namespace %q", r.name),
			map[string]any{"view": r.name, "instance_id": instanceID}, err)
	}
	data, ok, err := ns.Get(ctx, instanceID)
	if err != nil {
		return nil, false, errmodel.Storage("read_failed",
			fmt.Sprintf("unable to read view %q with id %q", r.name, instanceID),
			map[string]any{"view": r.name, "instance_id": instanceID}, err)
	}
	return data, ok, nil
}

func (r *Repository[V, P]) decodeError(instanceID string, cause error) error {
	return errmodel.Codec("undecodable_record",
		fmt.Sprintf("stored bytes for view %q with id %q do not decode", r.name, instanceID),
		map[string]any{"view": r.name, "instance_id": instanceID}, cause)
}
