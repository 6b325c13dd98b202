package kernel

import "testing"

func TestSubstNoOpOnClosedPrefix(t *testing.T) {
	// subst(base, s, 0, [], n) must equal base when base has no locals
	// above s — substituting nothing into a term fully below the
	// substitution band is a no-op.
	base := Expr{Head: LocalIdent(1), Tail: []Expr{{Head: LocalIdent(0)}}}
	got, err := Subst(base, 2, 0, nil, 5)
	if err != nil {
		t.Fatalf("Subst() error = %v", err)
	}
	if !got.Equal(base) {
		t.Errorf("Subst() = %v, want %v (no-op)", got, base)
	}
}

func TestSubstReplacesHeadVariable(t *testing.T) {
	// base = x0 (a reference to the single bound parameter); substituting
	// g7 for x0 under a context of size 1 should yield g7.
	base := Expr{Head: LocalIdent(0)}
	arg := Expr{Head: GlobalIdent(7)}
	got, err := Subst(base, 0, 0, []Expr{arg}, 0)
	if err != nil {
		t.Fatalf("Subst() error = %v", err)
	}
	if !got.Equal(arg) {
		t.Errorf("Subst() = %v, want %v", got, arg)
	}
}

func TestSubstReseatsLocalsAboveSubstitutedBand(t *testing.T) {
	// base = x2, with shared_ctx_size=0 and a single arg occupying index 0;
	// x2 lies above the substituted band, so it should reseat to
	// arg_ctx_size + (2 - 1) = arg_ctx_size + 1.
	base := Expr{Head: LocalIdent(2)}
	got, err := Subst(base, 0, 0, []Expr{Universe(0)}, 3)
	if err != nil {
		t.Fatalf("Subst() error = %v", err)
	}
	want := Expr{Head: LocalIdent(4)}
	if !got.Equal(want) {
		t.Errorf("Subst() = %v, want %v", got, want)
	}
}

func TestSubstPreservesSharedPrefix(t *testing.T) {
	base := Expr{Head: LocalIdent(0)}
	got, err := Subst(base, 1, 0, []Expr{Universe(9)}, 5)
	if err != nil {
		t.Fatalf("Subst() error = %v", err)
	}
	if !got.Equal(base) {
		t.Errorf("Subst() = %v, want %v (index below shared_ctx_size is untouched)", got, base)
	}
}

func TestDeepenIdentityWithZeroExtra(t *testing.T) {
	e := Expr{
		ArrowParams: []Expr{{Head: LocalIdent(3)}},
		Head:        LocalIdent(5),
		Tail:        []Expr{{Head: LocalIdent(1)}},
	}
	got := Deepen(e, 2, 0)
	if !got.Equal(e) {
		t.Errorf("Deepen(e, k, 0) = %v, want %v (identity)", got, e)
	}
}

func TestDeepenShiftsOnlyFreeLocals(t *testing.T) {
	e := Expr{Head: LocalIdent(1), Tail: []Expr{{Head: LocalIdent(3)}}}
	got := Deepen(e, 2, 10)
	want := Expr{Head: LocalIdent(1), Tail: []Expr{{Head: LocalIdent(13)}}}
	if !got.Equal(want) {
		t.Errorf("Deepen() = %v, want %v", got, want)
	}
}
