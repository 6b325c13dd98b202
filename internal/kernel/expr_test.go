package kernel

import "testing"

func TestUniverseLevel(t *testing.T) {
	tests := []struct {
		name  string
		expr  Expr
		level int
		ok    bool
	}{
		{"bare universe", Universe(0), 0, true},
		{"higher universe", Universe(3), 3, true},
		{"local is not a universe", Expr{Head: LocalIdent(0)}, 0, false},
		{"universe with tail is not a universe", Expr{Head: UniverseIdent(0), Tail: []Expr{Universe(0)}}, 0, false},
		{"universe with arrow params is not a universe", Expr{ArrowParams: []Expr{Universe(0)}, Head: UniverseIdent(0)}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, ok := tt.expr.UniverseLevel()
			if ok != tt.ok || (ok && l != tt.level) {
				t.Errorf("UniverseLevel() = (%d, %v), want (%d, %v)", l, ok, tt.level, tt.ok)
			}
		})
	}
}

func TestExprEqual(t *testing.T) {
	a := Expr{ArrowParams: []Expr{Universe(0)}, Head: LocalIdent(0), Tail: []Expr{Universe(1)}}
	b := Expr{ArrowParams: []Expr{Universe(0)}, Head: LocalIdent(0), Tail: []Expr{Universe(1)}}
	c := Expr{ArrowParams: []Expr{Universe(0)}, Head: LocalIdent(0), Tail: []Expr{Universe(2)}}

	if !a.Equal(b) {
		t.Error("expected equal expressions to compare equal")
	}
	if a.Equal(c) {
		t.Error("expected differing tail arguments to compare unequal")
	}
}

func TestExprString(t *testing.T) {
	// (A: U0) -> A -> A, i.e. the identity function's type, using
	// de-Bruijn-indexed rendering (no source binder names survive).
	idType := Expr{
		ArrowParams: []Expr{
			Universe(0),
			{Head: LocalIdent(0)},
		},
		Head: LocalIdent(0),
	}
	if got, want := idType.String(), "U0 -> x0 -> x0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestExprStringGroupsNestedArrow(t *testing.T) {
	// An arrow parameter that is itself a function type must be
	// parenthesized: (U0 -> U0) -> U0.
	higherOrder := Expr{
		ArrowParams: []Expr{
			{ArrowParams: []Expr{Universe(0)}, Head: UniverseIdent(0)},
		},
		Head: UniverseIdent(0),
	}
	if got, want := higherOrder.String(), "(U0 -> U0) -> U0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestExprStringGroupsAppliedTailArg(t *testing.T) {
	// g0 (g1 x0) — the applied argument itself has a tail, so it needs parens.
	applied := Expr{
		Head: GlobalIdent(0),
		Tail: []Expr{
			{Head: GlobalIdent(1), Tail: []Expr{{Head: LocalIdent(0)}}},
		},
	}
	if got, want := applied.String(), "g0 (g1 x0)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestInsert(t *testing.T) {
	e := Expr{Head: GlobalIdent(0), Tail: []Expr{Universe(0), Universe(1)}}
	other := Expr{Head: LocalIdent(5), Tail: []Expr{Universe(2)}}

	// simulate eval() draining the consumed args before inserting
	e.Tail = e.Tail[2:]
	if err := e.Insert(other); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if e.Head != LocalIdent(5) {
		t.Errorf("Head = %v, want %v", e.Head, LocalIdent(5))
	}
	if len(e.Tail) != 1 || !e.Tail[0].Equal(Universe(2)) {
		t.Errorf("Tail = %v, want [U2]", e.Tail)
	}
}

func TestInsertRejectsArrowIntoNonEmptyTail(t *testing.T) {
	e := Expr{Head: GlobalIdent(0), Tail: []Expr{Universe(0)}}
	other := Expr{ArrowParams: []Expr{Universe(0)}, Head: UniverseIdent(0)}
	if err := e.Insert(other); err == nil {
		t.Error("expected error splicing an arrow expression into a non-empty tail")
	}
}

func TestInsertRejectsUniverseIntoNonEmptyTail(t *testing.T) {
	e := Expr{Head: GlobalIdent(0), Tail: []Expr{Universe(0)}}
	other := Universe(3)
	if err := e.Insert(other); err == nil {
		t.Error("expected error splicing a bare universe into a non-empty tail")
	}
}
