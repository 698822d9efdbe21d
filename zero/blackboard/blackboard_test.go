package blackboard

import "testing"

func TestSetGetRoundTrip(t *testing.T) {
	b := New()
	Set(b, "target_id", uint16(42))
	v, ok := Get[uint16](b, "target_id")
	if !ok || v != 42 {
		t.Fatalf("expected (42, true), got (%v, %v)", v, ok)
	}
}

func TestGetWrongTypeMisses(t *testing.T) {
	b := New()
	Set(b, "target_id", uint16(42))
	if _, ok := Get[string](b, "target_id"); ok {
		t.Fatalf("expected a type mismatch to miss")
	}
}

func TestGetOrFallback(t *testing.T) {
	b := New()
	if got := GetOr(b, "missing", 7); got != 7 {
		t.Fatalf("expected fallback 7, got %v", got)
	}
	Set(b, "missing", 99)
	if got := GetOr(b, "missing", 7); got != 99 {
		t.Fatalf("expected stored value 99, got %v", got)
	}
}

func TestHasAndErase(t *testing.T) {
	b := New()
	Set(b, "k", true)
	if !b.Has("k") {
		t.Fatalf("expected Has to report true after Set")
	}
	b.Erase("k")
	if b.Has("k") {
		t.Fatalf("expected Has to report false after Erase")
	}
}

func TestClear(t *testing.T) {
	b := New()
	Set(b, "a", 1)
	Set(b, "b", 2)
	b.Clear()
	if len(b.Keys()) != 0 {
		t.Fatalf("expected no keys after Clear, got %v", b.Keys())
	}
}

func TestOverwriteChangesType(t *testing.T) {
	b := New()
	Set(b, "x", 1)
	Set(b, "x", "now a string")
	if _, ok := Get[int](b, "x"); ok {
		t.Fatalf("expected int lookup to miss after overwrite with a string")
	}
	s, ok := Get[string](b, "x")
	if !ok || s != "now a string" {
		t.Fatalf("expected overwritten string value, got (%v, %v)", s, ok)
	}
}
