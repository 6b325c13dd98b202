package kernel

import "testing"

func TestContextIndexFromValueShadowing(t *testing.T) {
	root := NewContext[string](nil)
	outer := root.Push([]string{"A", "B"})
	inner := outer.Push([]string{"A"})

	idx, ok := inner.IndexFromValue(func(v string) bool { return v == "A" })
	if !ok || idx != 2 {
		t.Fatalf("expected inner shadowing binding A at index 2, got (%d, %v)", idx, ok)
	}

	idx, ok = outer.IndexFromValue(func(v string) bool { return v == "B" })
	if !ok || idx != 1 {
		t.Fatalf("expected B at index 1, got (%d, %v)", idx, ok)
	}

	_, ok = outer.IndexFromValue(func(v string) bool { return v == "missing" })
	if ok {
		t.Fatal("expected no match for an unbound name")
	}
}

func TestContextValueFromIndex(t *testing.T) {
	root := NewContext[string](nil)
	outer := root.Push([]string{"A", "B"})
	inner := outer.Push([]string{"C"})

	if got := inner.ValueFromIndex(0); got != "A" {
		t.Errorf("index 0 = %q, want A", got)
	}
	if got := inner.ValueFromIndex(1); got != "B" {
		t.Errorf("index 1 = %q, want B", got)
	}
	if got := inner.ValueFromIndex(2); got != "C" {
		t.Errorf("index 2 = %q, want C", got)
	}
}

func TestContextSize(t *testing.T) {
	root := NewContext[string](nil)
	if root.Size() != 0 {
		t.Errorf("empty context size = %d, want 0", root.Size())
	}
	outer := root.Push([]string{"A", "B"})
	if outer.Size() != 2 {
		t.Errorf("size = %d, want 2", outer.Size())
	}
	inner := outer.Push([]string{"C"})
	if inner.Size() != 3 {
		t.Errorf("size = %d, want 3", inner.Size())
	}
}
