package memkv

import (
	"bytes"
	"context"
	"testing"
)

func TestGetMissingKey(t *testing.T) {
	ctx := context.Background()
	ns, err := New().Namespace(ctx, "balance")
	if err != nil {
		t.Fatal(err)
	}
	v, ok, err := ns.Get(ctx, "acct-1")
	if err != nil {
		t.Fatal(err)
	}
	if ok || v != nil {
		t.Fatalf("got %q ok=%v, want absent", v, ok)
	}
}

func TestPutOverwritesAndCopies(t *testing.T) {
	ctx := context.Background()
	st := New()
	ns, err := st.Namespace(ctx, "balance")
	if err != nil {
		t.Fatal(err)
	}
	in := []byte(`{"n":1}`)
	if err := ns.Put(ctx, "acct-1", in); err != nil {
		t.Fatal(err)
	}
	in[2] = 'x' // caller mutation must not leak into the store
	if err := ns.Put(ctx, "acct-2", []byte(`{"n":2}`)); err != nil {
		t.Fatal(err)
	}

	got, ok, err := ns.Get(ctx, "acct-1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, []byte(`{"n":1}`)) {
		t.Fatalf("got %q", got)
	}

	if err := ns.Put(ctx, "acct-1", []byte(`{"n":3}`)); err != nil {
		t.Fatal(err)
	}
	got, _, _ = ns.Get(ctx, "acct-1")
	if !bytes.Equal(got, []byte(`{"n":3}`)) {
		t.Fatalf("overwrite failed: got %q", got)
	}
}

func TestNamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	st := New()
	a, _ := st.Namespace(ctx, "a")
	b, _ := st.Namespace(ctx, "b")
	if err := a.Put(ctx, "k", []byte("va")); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := b.Get(ctx, "k"); ok {
		t.Fatal("key from namespace a visible in b")
	}
	// Reopening returns the same backing namespace.
	a2, _ := st.Namespace(ctx, "a")
	if got, ok, _ := a2.Get(ctx, "k"); !ok || !bytes.Equal(got, []byte("va")) {
		t.Fatalf("reopen lost record: %q ok=%v", got, ok)
	}
}
