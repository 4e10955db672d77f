package entkv

import (
	"bytes"
	"context"
	"testing"
)

func openSQLite(t *testing.T, name string) *Store {
	t.Helper()
	ctx := context.Background()
	st, err := Open(ctx, "sqlite:file:"+name+"?mode=memory&cache=shared&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_fk=1")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}
	return st
}

func TestSQLitePutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := openSQLite(t, "entkv-roundtrip")

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

func TestSQLitePutOverwrites(t *testing.T) {
	ctx := context.Background()
	st := openSQLite(t, "entkv-overwrite")

	ns, err := st.Namespace(ctx, "balance")
	if err != nil {
		t.Fatal(err)
	}
	if err := ns.Put(ctx, "acct-1", []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if err := ns.Put(ctx, "acct-1", []byte("v2")); err != nil {
		t.Fatal(err)
	}
	got, ok, err := ns.Get(ctx, "acct-1")
	if err != nil || !ok || !bytes.Equal(got, []byte("v2")) {
		t.Fatalf("got %q ok=%v err=%v", got, ok, err)
	}
}

func TestSQLiteNamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	st := openSQLite(t, "entkv-isolation")

	a, _ := st.Namespace(ctx, "balance")
	b, _ := st.Namespace(ctx, "orders")
	if err := a.Put(ctx, "acct-1", []byte("v")); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := b.Get(ctx, "acct-1"); ok {
		t.Fatal("record visible across namespaces")
	}
}

func TestOpenRejectsUnknownScheme(t *testing.T) {
	if _, err := Open(context.Background(), "mysql://nope"); err == nil {
		t.Fatal("want error for unsupported scheme")
	}
	if _, err := Open(context.Background(), ""); err == nil {
		t.Fatal("want error for empty dsn")
	}
}
