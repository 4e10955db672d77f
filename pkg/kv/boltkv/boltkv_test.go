package boltkv

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "views.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("want error for empty path")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	ns, err := st.Namespace(ctx, "balance")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, err := ns.Get(ctx, "acct-1"); err != nil || ok {
		t.Fatalf("fresh bucket: ok=%v err=%v", ok, err)
	}
	if err := ns.Put(ctx, "acct-1", []byte(`{"balance":12}`)); err != nil {
		t.Fatal(err)
	}
	got, ok, err := ns.Get(ctx, "acct-1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if !bytes.Equal(got, []byte(`{"balance":12}`)) {
		t.Fatalf("got %q", got)
	}
}

func TestNamespaceOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	ns1, err := st.Namespace(ctx, "balance")
	if err != nil {
		t.Fatal(err)
	}
	if err := ns1.Put(ctx, "acct-1", []byte("v1")); err != nil {
		t.Fatal(err)
	}
	ns2, err := st.Namespace(ctx, "balance")
	if err != nil {
		t.Fatal(err)
	}
	got, ok, err := ns2.Get(ctx, "acct-1")
	if err != nil || !ok || !bytes.Equal(got, []byte("v1")) {
		t.Fatalf("reopen: %q ok=%v err=%v", got, ok, err)
	}
}

func TestNamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	a, _ := st.Namespace(ctx, "balance")
	b, _ := st.Namespace(ctx, "orders")
	if err := a.Put(ctx, "acct-1", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := b.Get(ctx, "acct-1"); ok {
		t.Fatal("record visible across namespaces")
	}
}
