package kernel

import "testing"

func TestEvalUnfoldsSaturatedGlobal(t *testing.T) {
	globals := NewGlobals()
	// const0 := \x. U0, arity 1, body ignores its argument.
	globals.Append("const0", Global{
		Ty:  Expr{ArrowParams: []Expr{Universe(5)}, Head: UniverseIdent(0)},
		Def: &GlobalDef{Arity: 1, Body: Universe(0)},
	})

	applied := Expr{Head: GlobalIdent(0), Tail: []Expr{Universe(9)}}
	got, err := Eval(globals, applied, 0)
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}
	if !got.Equal(Universe(0)) {
		t.Errorf("Eval() = %v, want U0", got)
	}
}

func TestEvalLeavesUnsaturatedGlobalAlone(t *testing.T) {
	globals := NewGlobals()
	globals.Append("twoArg", Global{
		Ty:  Expr{ArrowParams: []Expr{Universe(0), Universe(0)}, Head: UniverseIdent(0)},
		Def: &GlobalDef{Arity: 2, Body: Universe(0)},
	})

	partial := Expr{Head: GlobalIdent(0), Tail: []Expr{Universe(9)}}
	got, err := Eval(globals, partial, 0)
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}
	if !got.Equal(partial) {
		t.Errorf("Eval() = %v, want unchanged %v (not enough args to unfold)", got, partial)
	}
}

func TestEvalIdentityOnOpaqueGlobal(t *testing.T) {
	globals := NewGlobals()
	globals.Append("opaque", Global{Ty: Universe(0)}) // no Def: annotation-only

	expr := Expr{Head: GlobalIdent(0)}
	got, err := Eval(globals, expr, 0)
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}
	if !got.Equal(expr) {
		t.Errorf("Eval() = %v, want unchanged %v", got, expr)
	}
}

func TestEvalIsIdempotent(t *testing.T) {
	globals := NewGlobals()
	globals.Append("id0", Global{
		Ty:  Expr{ArrowParams: []Expr{Universe(0)}, Head: UniverseIdent(0)},
		Def: &GlobalDef{Arity: 1, Body: Expr{Head: LocalIdent(0)}},
	})

	expr := Expr{Head: GlobalIdent(0), Tail: []Expr{Universe(3)}}
	once, err := Eval(globals, expr, 0)
	if err != nil {
		t.Fatalf("first Eval() error = %v", err)
	}
	twice, err := Eval(globals, once, 0)
	if err != nil {
		t.Fatalf("second Eval() error = %v", err)
	}
	if !once.Equal(twice) {
		t.Errorf("Eval() not idempotent: once=%v twice=%v", once, twice)
	}
}

func TestEvalUnfoldsChainedGlobals(t *testing.T) {
	globals := NewGlobals()
	// first g0 := \x. g1 x  (re-applies to the second global)
	// second g1 := \x. U0
	globals.Append("first", Global{
		Ty: Expr{ArrowParams: []Expr{Universe(0)}, Head: UniverseIdent(0)},
		Def: &GlobalDef{Arity: 1, Body: Expr{
			Head: GlobalIdent(1),
			Tail: []Expr{{Head: LocalIdent(0)}},
		}},
	})
	globals.Append("second", Global{
		Ty:  Expr{ArrowParams: []Expr{Universe(0)}, Head: UniverseIdent(0)},
		Def: &GlobalDef{Arity: 1, Body: Universe(0)},
	})

	expr := Expr{Head: GlobalIdent(0), Tail: []Expr{Universe(7)}}
	got, err := Eval(globals, expr, 0)
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}
	if !got.Equal(Universe(0)) {
		t.Errorf("Eval() = %v, want U0", got)
	}
}
