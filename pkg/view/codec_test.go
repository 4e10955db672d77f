package view

import (
	"context"
	"testing"

	"github.com/wilhg/viewstore/pkg/errmodel"
	"github.com/wilhg/viewstore/pkg/kv/memkv"
)

const balanceSchema = `{
	"type": "object",
	"properties": {
		"balance": {"type": "integer"}
	},
	"required": ["balance"],
	"additionalProperties": false
}`

func TestSchemaCodecAcceptsConformingView(t *testing.T) {
	c, err := NewSchemaCodec([]byte(balanceSchema))
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Marshal(&balanceView{Balance: 12})
	if err != nil {
		t.Fatal(err)
	}
	var back balanceView
	if err := c.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back.Balance != 12 {
		t.Fatalf("balance=%d", back.Balance)
	}
}

func TestSchemaCodecRejectsNonConformingBytes(t *testing.T) {
	c, err := NewSchemaCodec([]byte(balanceSchema))
	if err != nil {
		t.Fatal(err)
	}
	var back balanceView
	err = c.Unmarshal([]byte(`{"balance":"twelve"}`), &back)
	if err == nil {
		t.Fatal("want validation error for string balance")
	}
	if !errmodel.IsCategory(err, errmodel.CategoryValidation) {
		t.Fatalf("error category: %v", err)
	}
	err = c.Unmarshal([]byte(`{"other":1}`), &back)
	if err == nil {
		t.Fatal("want validation error for missing balance")
	}
	if !errmodel.IsCategory(err, errmodel.CategoryValidation) {
		t.Fatalf("error category: %v", err)
	}
}

// driftedView serializes with a field the balance schema forbids.
type driftedView struct {
	Balance int64  `json:"balance"`
	Extra   string `json:"extra"`
}

func TestSchemaCodecRejectsNonConformingViewOnMarshal(t *testing.T) {
	c, err := NewSchemaCodec([]byte(balanceSchema))
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Marshal(&driftedView{Balance: 1, Extra: "x"})
	if err == nil {
		t.Fatal("want validation error for extra field")
	}
	if !errmodel.IsCategory(err, errmodel.CategoryValidation) {
		t.Fatalf("error category: %v", err)
	}
}

func TestSchemaCodecRejectsInvalidSchema(t *testing.T) {
	if _, err := NewSchemaCodec([]byte(`{"type": 5}`)); err == nil {
		t.Fatal("want compile error")
	}
	if _, err := NewSchemaCodec([]byte(`not json`)); err == nil {
		t.Fatal("want parse error")
	}
}

// A repository running with a schema codec treats a stored record that no
// longer matches the schema like any other undecodable record: absent plus
// one handler report.
func TestRepositoryWithSchemaCodec(t *testing.T) {
	ctx := context.Background()
	c, err := NewSchemaCodec([]byte(balanceSchema))
	if err != nil {
		t.Fatal(err)
	}
	store := memkv.New()
	calls := 0
	repo := newBalanceRepo(store).
		WithCodec(c).
		WithErrorHandler(func(error) { calls++ })

	repo.ApplyEvents(ctx, "acct-1", []Envelope{deposit(10), withdraw(3)})
	v, ok := repo.Load(ctx, "acct-1")
	if !ok || v.Balance != 7 {
		t.Fatalf("got %+v ok=%v", v, ok)
	}

	ns, _ := store.Namespace(ctx, "balance")
	if err := ns.Put(ctx, "acct-1", []byte(`{"balance":"drifted"}`)); err != nil {
		t.Fatal(err)
	}
	if _, ok := repo.Load(ctx, "acct-1"); ok {
		t.Fatal("schema-violating record should read as absent")
	}
	if calls != 1 {
		t.Fatalf("handler called %d times, want 1", calls)
	}
}
