package kernel

import (
	"strconv"
	"strings"

	"github.com/funvibe/dtlc/internal/ast"
	"github.com/funvibe/dtlc/internal/config"
	"github.com/funvibe/dtlc/internal/diagnostics"
	"github.com/google/uuid"
)

// ConvertExpr elaborates a surface ast.Expr into a kernel Expr: it peels
// any leading chain of arrow binders, recording their domains and names,
// then resolves the trailing application's head against (in priority
// order) the locals just bound, the globals table, and finally the
// U<digits> universe-literal pattern.
//
// Grounded on original_source/src/lib.rs's convert_expr.
func ConvertExpr(globalNames []string, locals *Context[string], expr ast.Expr) (Expr, error) {
	var arrowParams []Expr
	var newLocals []string

	cur := expr
	for {
		arrow, ok := cur.(*ast.ArrowExpr)
		if !ok {
			break
		}
		for _, p := range arrow.Params {
			domain, err := ConvertExpr(globalNames, locals.Push(newLocals), p.Domain)
			if err != nil {
				return Expr{}, err
			}
			arrowParams = append(arrowParams, domain)
			name := anonymousPlaceholder()
			if p.Name != nil {
				name = *p.Name
			}
			newLocals = append(newLocals, name)
		}
		cur = arrow.Output
	}

	scoped := locals.Push(newLocals)

	app, ok := cur.(*ast.AppExpr)
	if !ok {
		// Unreachable: Expr is closed over ArrowExpr and AppExpr, and the
		// loop above only exits once cur stops being an *ArrowExpr.
		panic("kernel: arrow-chain peeling left a non-application expression")
	}

	head, err := resolveHead(globalNames, scoped, app.Head)
	if err != nil {
		return Expr{}, err
	}

	tail := make([]Expr, len(app.Tail))
	for i, t := range app.Tail {
		converted, err := ConvertExpr(globalNames, scoped, t)
		if err != nil {
			return Expr{}, err
		}
		tail[i] = converted
	}

	return Expr{ArrowParams: arrowParams, Head: head, Tail: tail}, nil
}

// anonymousPlaceholder gives an unnamed arrow binder a collision-proof
// internal name: two anonymous binders in the same scope must never
// resolve to each other even though a user can never type either one, so
// a bare AnonymousParamName constant isn't enough once shadowing scans
// are involved.
func anonymousPlaceholder() string {
	return config.AnonymousParamName + uuid.NewString()
}

func resolveHead(globalNames []string, locals *Context[string], ident *ast.Identifier) (Ident, error) {
	name := ident.Value
	if idx, ok := locals.IndexFromValue(func(v string) bool { return v == name }); ok {
		return LocalIdent(idx), nil
	}
	if idx, ok := indexOfName(globalNames, name); ok {
		return GlobalIdent(idx), nil
	}
	if strings.HasPrefix(name, config.UniverseIdentPrefix) {
		if l, err := strconv.Atoi(name[len(config.UniverseIdentPrefix):]); err == nil && l >= 0 {
			return UniverseIdent(l), nil
		}
	}
	return Ident{}, diagnostics.NewPhaseError(diagnostics.PhaseElaborate, diagnostics.ErrE001, ident.Token, name)
}

// indexOfName mirrors Globals.IndexOf but operates on a plain name slice,
// since ConvertExpr receives only the names (Globals.Names()), not the
// Globals table itself.
func indexOfName(names []string, name string) (int, bool) {
	for i := len(names) - 1; i >= 0; i-- {
		if names[i] == name {
			return i, true
		}
	}
	return 0, false
}
