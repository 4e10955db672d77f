package view

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/wilhg/viewstore/pkg/errmodel"
	"github.com/wilhg/viewstore/pkg/kv"
	"github.com/wilhg/viewstore/pkg/kv/memkv"
)

// balanceView is a simple integer-counter projection used across the tests:
// "deposited" adds the payload amount, "withdrawn" subtracts it.
type balanceView struct {
	Balance int64 `json:"balance"`
}

func (v *balanceView) Update(ev Envelope) {
	switch ev.Type {
	case "deposited":
		v.Balance += amount(ev)
	case "withdrawn":
		v.Balance -= amount(ev)
	}
}

func amount(ev Envelope) int64 {
	n, _ := ev.Payload.(int64)
	return n
}

func deposit(n int64) Envelope  { return NewEnvelope("acct-1", "deposited", 0, n) }
func withdraw(n int64) Envelope { return NewEnvelope("acct-1", "withdrawn", 0, n) }

func newBalanceRepo(store kv.Store) *Repository[balanceView, *balanceView] {
	return NewRepository[balanceView]("balance", store)
}

func TestLoadMissingReturnsAbsence(t *testing.T) {
	ctx := context.Background()
	calls := 0
	repo := newBalanceRepo(memkv.New()).WithErrorHandler(func(error) { calls++ })

	v, ok := repo.Load(ctx, "never-written")
	if ok || v != nil {
		t.Fatalf("got %v ok=%v, want absence", v, ok)
	}
	if calls != 0 {
		t.Fatalf("handler called %d times for a plain miss", calls)
	}
}

func TestApplyEventsFoldsInOrder(t *testing.T) {
	ctx := context.Background()
	repo := newBalanceRepo(memkv.New())

	repo.ApplyEvents(ctx, "acct-1", []Envelope{deposit(10), deposit(5), withdraw(3)})

	v, ok := repo.Load(ctx, "acct-1")
	if !ok {
		t.Fatal("view missing after apply")
	}
	if v.Balance != 12 {
		t.Fatalf("balance=%d want 12", v.Balance)
	}
	if repo.ViewName() != "balance" {
		t.Fatalf("view name %q", repo.ViewName())
	}
}

func TestSplitCallsEqualSingleCall(t *testing.T) {
	ctx := context.Background()
	e1 := []Envelope{deposit(10), deposit(5)}
	e2 := []Envelope{withdraw(3), deposit(7)}

	split := newBalanceRepo(memkv.New())
	split.ApplyEvents(ctx, "acct-1", e1)
	split.ApplyEvents(ctx, "acct-1", e2)

	single := newBalanceRepo(memkv.New())
	single.ApplyEvents(ctx, "acct-1", append(append([]Envelope{}, e1...), e2...))

	a, ok := split.Load(ctx, "acct-1")
	if !ok {
		t.Fatal("split view missing")
	}
	b, ok := single.Load(ctx, "acct-1")
	if !ok {
		t.Fatal("single view missing")
	}
	if a.Balance != b.Balance {
		t.Fatalf("split=%d single=%d", a.Balance, b.Balance)
	}
}

func TestEmptyApplyRewritesUnchanged(t *testing.T) {
	ctx := context.Background()
	repo := newBalanceRepo(memkv.New())
	repo.ApplyEvents(ctx, "acct-1", []Envelope{deposit(42)})

	for range 3 {
		repo.ApplyEvents(ctx, "acct-1", nil)
	}
	v, ok := repo.Load(ctx, "acct-1")
	if !ok || v.Balance != 42 {
		t.Fatalf("got %+v ok=%v want balance 42", v, ok)
	}
}

func TestEmptyApplyOnMissingInstanceWritesZeroView(t *testing.T) {
	ctx := context.Background()
	repo := newBalanceRepo(memkv.New())

	// The rewrite of the (zero) view is observable: an accepted no-op,
	// not an error.
	repo.ApplyEvents(ctx, "acct-1", nil)
	v, ok := repo.Load(ctx, "acct-1")
	if !ok || v.Balance != 0 {
		t.Fatalf("got %+v ok=%v want zero view", v, ok)
	}
}

func seedCorrupt(t *testing.T, store kv.Store) {
	t.Helper()
	ns, err := store.Namespace(context.Background(), "balance")
	if err != nil {
		t.Fatal(err)
	}
	if err := ns.Put(context.Background(), "acct-1", []byte("{not json")); err != nil {
		t.Fatal(err)
	}
}

func TestLoadCorruptRecordReportsOnce(t *testing.T) {
	ctx := context.Background()
	store := memkv.New()
	seedCorrupt(t, store)

	var got []error
	repo := newBalanceRepo(store).WithErrorHandler(func(err error) { got = append(got, err) })

	v, ok := repo.Load(ctx, "acct-1")
	if ok || v != nil {
		t.Fatalf("got %v ok=%v, want absence for corrupt record", v, ok)
	}
	if len(got) != 1 {
		t.Fatalf("handler called %d times, want 1", len(got))
	}
	if !errmodel.IsCategory(got[0], errmodel.CategoryCodec) {
		t.Fatalf("error category: %v", got[0])
	}
}

func TestApplyAbortsOnCorruptRecord(t *testing.T) {
	ctx := context.Background()
	store := memkv.New()
	seedCorrupt(t, store)

	calls := 0
	repo := newBalanceRepo(store).WithErrorHandler(func(error) { calls++ })
	repo.ApplyEvents(ctx, "acct-1", []Envelope{deposit(10)})

	if calls != 1 {
		t.Fatalf("handler called %d times, want 1", calls)
	}
	// No partial write: the corrupt bytes must still be there.
	ns, _ := store.Namespace(ctx, "balance")
	raw, ok, err := ns.Get(ctx, "acct-1")
	if err != nil || !ok {
		t.Fatalf("record gone: ok=%v err=%v", ok, err)
	}
	if string(raw) != "{not json" {
		t.Fatalf("record rewritten to %q after aborted apply", raw)
	}
}

// errStore simulates a storage layer whose reads fail.
type errStore struct{ err error }

func (s errStore) Namespace(ctx context.Context, name string) (kv.Namespace, error) {
	return errNamespace(s), nil
}

type errNamespace errStore

func (n errNamespace) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, n.err
}

func (n errNamespace) Put(ctx context.Context, key string, value []byte) error { return nil }

func TestLoadReadErrorWithoutHandlerDoesNotHalt(t *testing.T) {
	repo := newBalanceRepo(errStore{err: errors.New("connection reset")})

	// No handler registered: the error is swallowed by explicit policy.
	v, ok := repo.Load(context.Background(), "acct-1")
	if ok || v != nil {
		t.Fatalf("got %v ok=%v, want absence on read error", v, ok)
	}
}

func TestLoadReadErrorReportsStorageCategory(t *testing.T) {
	var got error
	repo := newBalanceRepo(errStore{err: errors.New("connection reset")}).
		WithErrorHandler(func(err error) { got = err })

	if _, ok := repo.Load(context.Background(), "acct-1"); ok {
		t.Fatal("want absence")
	}
	if !errmodel.IsCategory(got, errmodel.CategoryStorage) {
		t.Fatalf("error category: %v", got)
	}
}

func TestWithErrorHandlerReplacesPrevious(t *testing.T) {
	store := memkv.New()
	seedCorrupt(t, store)

	first, second := 0, 0
	repo := newBalanceRepo(store).
		WithErrorHandler(func(error) { first++ }).
		WithErrorHandler(func(error) { second++ })

	repo.Load(context.Background(), "acct-1")
	if first != 0 || second != 1 {
		t.Fatalf("first=%d second=%d, want replacement semantics", first, second)
	}
}

// putFailStore accepts reads but rejects all writes.
type putFailStore struct {
	inner kv.Store
	err   error
}

func (s putFailStore) Namespace(ctx context.Context, name string) (kv.Namespace, error) {
	ns, err := s.inner.Namespace(ctx, name)
	if err != nil {
		return nil, err
	}
	return putFailNamespace{inner: ns, err: s.err}, nil
}

type putFailNamespace struct {
	inner kv.Namespace
	err   error
}

func (n putFailNamespace) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return n.inner.Get(ctx, key)
}

func (n putFailNamespace) Put(ctx context.Context, key string, value []byte) error {
	return n.err
}

func recoverDefect(t *testing.T, fn func()) *errmodel.Error {
	t.Helper()
	var defect *errmodel.Error
	func() {
		defer func() {
			rec := recover()
			if rec == nil {
				t.Fatal("expected panic")
			}
			err, ok := rec.(error)
			if !ok {
				t.Fatalf("panic value %T is not an error", rec)
			}
			defect = errmodel.From(err)
		}()
		fn()
	}()
	return defect
}

// Commit failures take the fail-fast channel rather than the handler: a
// storage layer rejecting a well-formed single-key put is a defect in the
// deployment, not an expected runtime condition. This asymmetry with load
// errors is deliberate, documented behavior.
func TestCommitWriteFailurePanicsWithDefect(t *testing.T) {
	handlerCalls := 0
	repo := newBalanceRepo(putFailStore{inner: memkv.New(), err: errors.New("disk full")}).
		WithErrorHandler(func(error) { handlerCalls++ })

	defect := recoverDefect(t, func() {
		repo.ApplyEvents(context.Background(), "acct-1", []Envelope{deposit(1)})
	})
	if !errmodel.IsCategory(defect, errmodel.CategoryDefect) {
		t.Fatalf("category: %v", defect)
	}
	if defect.Context["view"] != "balance" || defect.Context["instance_id"] != "acct-1" {
		t.Fatalf("missing diagnostic context: %#v", defect.Context)
	}
	if handlerCalls != 0 {
		t.Fatalf("commit failure leaked to the error handler (%d calls)", handlerCalls)
	}
}

// failCodec marshals nothing, simulating a view type that does not
// round-trip.
type failCodec struct{}

func (failCodec) Marshal(v any) ([]byte, error) {
	return nil, fmt.Errorf("view is not serializable")
}

func (failCodec) Unmarshal(data []byte, v any) error {
	return fmt.Errorf("unreachable in this test")
}

func TestCommitSerializationFailurePanicsWithViewDump(t *testing.T) {
	repo := newBalanceRepo(memkv.New()).WithCodec(failCodec{})

	defect := recoverDefect(t, func() {
		repo.ApplyEvents(context.Background(), "acct-1", []Envelope{deposit(9)})
	})
	if defect.Code != "unserializable_view" {
		t.Fatalf("code=%q", defect.Code)
	}
	dump, _ := defect.Context["view_dump"].(string)
	if dump == "" {
		t.Fatalf("no view dump in diagnostic context: %#v", defect.Context)
	}
}

func TestRoundTripLaw(t *testing.T) {
	v := &balanceView{}
	for _, ev := range []Envelope{deposit(10), withdraw(4), deposit(100)} {
		v.Update(ev)
	}
	c := JSONCodec{}
	b, err := c.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	var back balanceView
	if err := c.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != *v {
		t.Fatalf("round trip changed view: %+v != %+v", back, *v)
	}
}

func TestDispatchForwardsToApplyEvents(t *testing.T) {
	ctx := context.Background()
	repo := newBalanceRepo(memkv.New())

	var p Processor = repo
	p.Dispatch(ctx, "acct-1", []Envelope{deposit(10), withdraw(4)})

	v, ok := repo.Load(ctx, "acct-1")
	if !ok || v.Balance != 6 {
		t.Fatalf("got %+v ok=%v want balance 6", v, ok)
	}
}

func TestRepositoriesShareStoreWithoutCollisions(t *testing.T) {
	ctx := context.Background()
	store := memkv.New()
	balances := newBalanceRepo(store)
	audits := NewRepository[balanceView]("audit", store)

	balances.ApplyEvents(ctx, "acct-1", []Envelope{deposit(10)})
	audits.ApplyEvents(ctx, "acct-1", []Envelope{deposit(99)})

	v, ok := balances.Load(ctx, "acct-1")
	if !ok || v.Balance != 10 {
		t.Fatalf("namespace bleed: %+v ok=%v", v, ok)
	}
}
