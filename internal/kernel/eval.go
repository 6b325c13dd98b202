package kernel

// Eval weak-head-normalizes expr: it evaluates every subterm, then
// repeatedly delta-unfolds a Global head that has a definition whose arity
// is fully saturated by the available tail arguments, until the head is no
// longer such a global.
//
// ctxSize is the size of the local context expr is valid in. It grows by
// one for every arrow param evaluated (each one introduces a binder for
// everything nested after it) and is threaded through every unfolding
// round, since a round's own new arrow params extend the same ambient
// context for any later round's Subst call.
//
// Grounded on original_source/src/lib.rs's eval/eval_on.
func Eval(globals *Globals, expr Expr, ctxSize int) (Expr, error) {
	var result Expr

	for _, p := range expr.ArrowParams {
		ev, err := Eval(globals, p, ctxSize)
		if err != nil {
			return Expr{}, err
		}
		result.ArrowParams = append(result.ArrowParams, ev)
		ctxSize++
	}
	for _, t := range expr.Tail {
		ev, err := Eval(globals, t, ctxSize)
		if err != nil {
			return Expr{}, err
		}
		result.Tail = append(result.Tail, ev)
	}
	result.Head = expr.Head

	for result.Head.Kind == IdentGlobal {
		g, ok := globals.Get(result.Head.Index)
		if !ok || g.Def == nil {
			break
		}
		arity, def := g.Def.Arity, g.Def.Body
		if len(result.Tail) < arity {
			break
		}

		substituted, err := Subst(def, 0, 0, result.Tail[:arity], ctxSize)
		if err != nil {
			return Expr{}, err
		}

		var evParams []Expr
		for _, p := range substituted.ArrowParams {
			ev, err := Eval(globals, p, ctxSize)
			if err != nil {
				return Expr{}, err
			}
			evParams = append(evParams, ev)
			ctxSize++
		}
		var evTail []Expr
		for _, t := range substituted.Tail {
			ev, err := Eval(globals, t, ctxSize)
			if err != nil {
				return Expr{}, err
			}
			evTail = append(evTail, ev)
		}
		substituted.ArrowParams = evParams
		substituted.Tail = evTail

		result.Tail = result.Tail[arity:]
		if err := result.Insert(substituted); err != nil {
			return Expr{}, err
		}
	}

	return result, nil
}
