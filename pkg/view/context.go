package view

import (
	"context"
	"fmt"

	"github.com/wilhg/viewstore/pkg/errmodel"
	"github.com/wilhg/viewstore/pkg/kv"
)

// viewContext is the ephemeral handle authorized to commit a view value. It
// is constructed only by the repository's load path and carries the exact
// (namespace, instance id) pair that produced the loaded view, so a commit
// can never land under a stale or mismatched key.
type viewContext struct {
	viewName   string
	instanceID string
}

// commit serializes the view and writes it under the bound key. Failure
// here signals a programming or schema defect (a view that does not
// round-trip, or a storage layer rejecting a well-formed single-key put),
// so commit panics with full diagnostic context instead of reporting
// through the repository's error handler. The process-level fail-fast is
// deliberate; callers run under a storage layer providing durable
// single-key put semantics.
func (c viewContext) commit(ctx context.Context, store kv.Store, codec Codec, v View) {
	payload, err := codec.Marshal(v)
	if err != nil {
		panic(errmodel.Defect("unserializable_view",
			fmt.Sprintf("unable to serialize view %q with id %q", c.viewName, c.instanceID),
			map[string]any{
				"view":        c.viewName,
				"instance_id": c.instanceID,
				"view_dump":   fmt.Sprintf("%+v", v),
			}, err))
	}
	ns, err := store.Namespace(ctx, c.viewName)
	if err != nil {
		panic(errmodel.Defect("namespace_unavailable",
			fmt.Sprintf("unable to open namespace %q to commit id %q", c.viewName, c.instanceID),
			map[string]any{"view": c.viewName, "instance_id": c.instanceID}, err))
	}
	if err := ns.Put(ctx, c.instanceID, payload); err != nil {
		panic(errmodel.Defect("write_rejected",
			fmt.Sprintf("unable to update view %q with id %q", c.viewName, c.instanceID),
			map[string]any{"view": c.viewName, "instance_id": c.instanceID}, err))
	}
}
