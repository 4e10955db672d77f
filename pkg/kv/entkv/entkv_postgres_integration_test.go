//go:build integration

package entkv

import (
	"bytes"
	"context"
	"testing"

	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestPostgresRecordFlow(t *testing.T) {
	ctx := context.Background()
	pg, err := tcpostgres.RunContainer(ctx,
		tcpostgres.WithDatabase("viewstore"),
		tcpostgres.WithUsername("viewstore"),
		tcpostgres.WithPassword("viewstore"),
		tcpostgres.WithSQLDriver("pgx"),
	)
	if err != nil {
		t.Skipf("skip: cannot start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}

	st, err := Open(ctx, dsn)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	if err := st.Migrate(ctx); err != nil {
		t.Fatal(err)
	}

	ns, err := st.Namespace(ctx, "balance")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, err := ns.Get(ctx, "acct-1"); err != nil || ok {
		t.Fatalf("fresh namespace: ok=%v err=%v", ok, err)
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
