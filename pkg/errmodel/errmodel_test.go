package errmodel

import (
	"errors"
	"strings"
	"testing"
)

func TestNewAndFrom(t *testing.T) {
	e := Codec("undecodable", "stored bytes do not decode", map[string]any{"view": "balance"}, nil)
	if e.Category != CategoryCodec || e.Code != "undecodable" {
		t.Fatalf("unexpected: %#v", e)
	}
	if got := From(e); got != e {
		t.Fatalf("From should return same error instance")
	}
}

func TestFromUnknownErrorIsDefect(t *testing.T) {
	e := From(errors.New("boom"))
	if e.Category != CategoryDefect || e.Code != "internal" {
		t.Fatalf("unexpected: %#v", e)
	}
}

func TestCauseChain(t *testing.T) {
	root := errors.New("disk full")
	e := Storage("write_failed", "put rejected", map[string]any{"key": "acct-1"}, root)
	if len(e.Causes) != 1 || e.Causes[0].Message != "disk full" {
		t.Fatalf("unexpected causes: %#v", e.Causes)
	}
	if !IsCategory(e, CategoryStorage) {
		t.Fatal("IsCategory storage = false")
	}
	if IsCategory(e, CategoryCodec) {
		t.Fatal("IsCategory codec = true")
	}
}

func TestTruncation(t *testing.T) {
	long := strings.Repeat("x", 1024)
	e := Defect("unserializable", long, map[string]any{"view_dump": long}, nil)
	if len(e.Message) != 512 {
		t.Fatalf("message len=%d want 512", len(e.Message))
	}
	dump, ok := e.Context["view_dump"].(string)
	if !ok || len(dump) != 256 {
		t.Fatalf("context len=%d want 256", len(dump))
	}
}
