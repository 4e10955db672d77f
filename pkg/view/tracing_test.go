package view

import (
	"context"
	"testing"

	"github.com/wilhg/viewstore/pkg/kv/memkv"
	otto "github.com/wilhg/viewstore/pkg/otel"
)

// Smoke test: repository operations run under a real (no-op exporter)
// tracer provider without panicking. Span topology assertions would need an
// in-memory exporter and are not worth the weight here.
func TestTracing_Smoke(t *testing.T) {
	shutdown, err := otto.Init(t.Context(), otto.Config{ServiceName: "viewstore-test", UseStdout: false})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	repo := newBalanceRepo(memkv.New())
	repo.ApplyEvents(t.Context(), "acct-1", []Envelope{deposit(1)})
	if v, ok := repo.Load(t.Context(), "acct-1"); !ok || v.Balance != 1 {
		t.Fatalf("got %+v ok=%v", v, ok)
	}
}
