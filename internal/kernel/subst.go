package kernel

// Subst replaces local variables in base according to three index bands,
// relative to a local context where the first sharedCtxSize indices are
// untouched (shared between base's original scope and the result's),
// followed by len(args) indices that get replaced by args (deepened to
// account for binders introduced while descending into base), followed by
// indices above that band, which get "reseated" to
// argCtxSize + (i - sharedCtxSize - len(args)), i.e. placed right after the
// context the args live in.
//
// extraCtxSize tracks how many extra binders Subst has descended under so
// far (it grows by one per arrow param visited); argCtxSize is the size of
// the local context the args themselves were elaborated against, needed so
// Deepen knows how far to shift an arg's own free variables when it is
// spliced somewhere deeper.
//
// Grounded on original_source/src/lib.rs's subst.
func Subst(base Expr, sharedCtxSize, extraCtxSize int, args []Expr, argCtxSize int) (Expr, error) {
	var result Expr

	for _, param := range base.ArrowParams {
		sub, err := Subst(param, sharedCtxSize, extraCtxSize, args, argCtxSize)
		if err != nil {
			return Expr{}, err
		}
		result.ArrowParams = append(result.ArrowParams, sub)
		extraCtxSize++
	}

	for _, t := range base.Tail {
		sub, err := Subst(t, sharedCtxSize, extraCtxSize, args, argCtxSize)
		if err != nil {
			return Expr{}, err
		}
		result.Tail = append(result.Tail, sub)
	}

	switch base.Head.Kind {
	case IdentLocal:
		i := base.Head.Index
		switch {
		case i < sharedCtxSize:
			result.Head = LocalIdent(i)
		case i-sharedCtxSize < len(args):
			arg := Deepen(args[i-sharedCtxSize], argCtxSize, extraCtxSize)
			if err := result.Insert(arg); err != nil {
				return Expr{}, err
			}
		default:
			reseated := i - (sharedCtxSize + len(args))
			result.Head = LocalIdent(argCtxSize + reseated)
		}
	default:
		result.Head = base.Head
	}

	return result, nil
}

// Deepen shifts every free local variable in arg (those at or above
// argCtxSize) up by extra. It is the pure weakening operation Subst uses
// to re-seat an argument's free variables when splicing it underneath
// extra additional binders it wasn't originally elaborated under.
//
// Grounded on original_source/src/lib.rs's deepen.
func Deepen(arg Expr, argCtxSize, extra int) Expr {
	var result Expr
	for _, p := range arg.ArrowParams {
		result.ArrowParams = append(result.ArrowParams, Deepen(p, argCtxSize, extra))
	}
	for _, t := range arg.Tail {
		result.Tail = append(result.Tail, Deepen(t, argCtxSize, extra))
	}
	result.Head = arg.Head
	if result.Head.Kind == IdentLocal && result.Head.Index >= argCtxSize {
		result.Head.Index += extra
	}
	return result
}
