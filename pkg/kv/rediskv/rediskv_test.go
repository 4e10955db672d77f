package rediskv

import (
	"bytes"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	st, err := Open(context.Background(), mr.Addr())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestOpenRejectsBadURL(t *testing.T) {
	if _, err := Open(context.Background(), "redis://[bad"); err == nil {
		t.Fatal("want error for malformed url")
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
		t.Fatalf("fresh namespace: ok=%v err=%v", ok, err)
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

func TestEmptyNamespaceNameRejected(t *testing.T) {
	st := openTestStore(t)
	if _, err := st.Namespace(context.Background(), " "); err == nil {
		t.Fatal("want error for blank namespace name")
	}
}
