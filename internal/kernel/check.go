package kernel

import (
	"github.com/funvibe/dtlc/internal/diagnostics"
	"github.com/funvibe/dtlc/internal/token"
)

// CalculateType computes expr's type under locals. It sort-checks each of
// expr's own arrow params first (each one extends locals for the ones
// after it), seeds the type of the head identifier, then walks expr.Tail
// left to right: whenever the accumulated type runs out of arrow params to
// consume, it substitutes and weak-head-normalizes to try to expose more,
// and failing that reports an arity error. Each argument is checked
// against the corresponding parameter's (substituted, normalized) domain
// before the next one is considered.
//
// Grounded on original_source/src/lib.rs's calculate_type.
func CalculateType(globals *Globals, locals *Context[Expr], expr Expr) (Expr, error) {
	var newLocals []Expr
	for _, each := range expr.ArrowParams {
		if _, err := SortCheckExpr(globals, locals.Push(newLocals), each); err != nil {
			return Expr{}, err
		}
		newLocals = append(newLocals, each)
	}
	scoped := locals.Push(newLocals)

	var actual Expr
	var exprCtxSize int

	switch expr.Head.Kind {
	case IdentLocal:
		i := expr.Head.Index
		actual = scoped.ValueFromIndex(i)
		exprCtxSize = i
	case IdentGlobal:
		g, ok := globals.Get(expr.Head.Index)
		if !ok {
			panic("kernel: global index out of range")
		}
		actual = g.Ty
		exprCtxSize = 0
	case IdentUniverse:
		if len(expr.Tail) > 0 {
			return Expr{}, diagnostics.NewPhaseError(diagnostics.PhaseCheck, diagnostics.ErrE010, token.Token{})
		}
		return Universe(expr.Head.Index + 1), nil
	}

	checked := 0
	subbed := 0
	for checked < len(expr.Tail) {
		if len(actual.ArrowParams) == 0 {
			substituted, err := Subst(actual, exprCtxSize, 0, expr.Tail[subbed:checked], scoped.Size())
			if err != nil {
				return Expr{}, err
			}
			subbed = checked
			exprCtxSize = scoped.Size()
			actual, err = Eval(globals, substituted, scoped.Size())
			if err != nil {
				return Expr{}, err
			}
			if len(actual.ArrowParams) == 0 {
				return Expr{}, diagnostics.NewPhaseError(diagnostics.PhaseCheck, diagnostics.ErrE002, token.Token{}, actual.String())
			}
		}

		argExpectedBase := actual.ArrowParams[0]
		actual.ArrowParams = actual.ArrowParams[1:]

		argExpectedSub, err := Subst(argExpectedBase, exprCtxSize, 0, expr.Tail[subbed:checked], scoped.Size())
		if err != nil {
			return Expr{}, err
		}
		argExpected, err := Eval(globals, argExpectedSub, scoped.Size())
		if err != nil {
			return Expr{}, err
		}
		if err := TypeCheckExpr(globals, scoped, expr.Tail[checked], argExpected); err != nil {
			return Expr{}, err
		}
		checked++
	}

	finalSub, err := Subst(actual, exprCtxSize, 0, expr.Tail[subbed:checked], scoped.Size())
	if err != nil {
		return Expr{}, err
	}
	actual, err = Eval(globals, finalSub, scoped.Size())
	if err != nil {
		return Expr{}, err
	}
	if len(expr.ArrowParams) > 0 {
		if _, ok := actual.UniverseLevel(); !ok {
			return Expr{}, diagnostics.NewPhaseError(diagnostics.PhaseCheck, diagnostics.ErrE004, token.Token{}, actual.String())
		}
	}
	return actual, nil
}

// SortCheckExpr checks that expr's type is itself some universe U<l> and
// returns l.
func SortCheckExpr(globals *Globals, locals *Context[Expr], expr Expr) (int, error) {
	actual, err := CalculateType(globals, locals, expr)
	if err != nil {
		return 0, err
	}
	if l, ok := actual.UniverseLevel(); ok {
		return l, nil
	}
	return 0, diagnostics.NewPhaseError(diagnostics.PhaseCheck, diagnostics.ErrE004, token.Token{}, actual.String())
}

// TypeCheckExpr checks that expr has exactly the type expected.
func TypeCheckExpr(globals *Globals, locals *Context[Expr], expr Expr, expected Expr) error {
	actual, err := CalculateType(globals, locals, expr)
	if err != nil {
		return err
	}
	return AssertType(expr, actual, expected)
}

// AssertType reports a type-mismatch diagnostic unless actual and expected
// are structurally equal.
func AssertType(expr, actual, expected Expr) error {
	if !actual.Equal(expected) {
		return diagnostics.NewPhaseError(diagnostics.PhaseCheck, diagnostics.ErrE003, token.Token{},
			expr.String(), actual.String(), expected.String())
	}
	return nil
}
