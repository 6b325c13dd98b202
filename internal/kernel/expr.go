package kernel

import (
	"fmt"
	"strings"

	"github.com/funvibe/dtlc/internal/diagnostics"
	"github.com/funvibe/dtlc/internal/token"
)

// Expr is a term in spine form: arrow_params binds a chain of dependent
// function parameters (possibly empty, in which case Expr is not itself a
// function type), Head names the applied function or atom, and Tail holds
// the arguments it is applied to.
//
// Grounded on original_source/src/lib.rs's Expr struct.
type Expr struct {
	ArrowParams []Expr
	Head        Ident
	Tail        []Expr
}

// Universe builds the bare term U<level>.
func Universe(level int) Expr {
	return Expr{Head: UniverseIdent(level)}
}

// UniverseLevel reports the level if e is exactly a bare universe (no
// arrow params, no tail arguments), and false otherwise.
func (e Expr) UniverseLevel() (int, bool) {
	if len(e.ArrowParams) > 0 || len(e.Tail) > 0 {
		return 0, false
	}
	if e.Head.Kind == IdentUniverse {
		return e.Head.Index, true
	}
	return 0, false
}

// Equal reports structural equality. Because terms carry no binder names
// (only de Bruijn indices), structural equality here already is the
// intended up-to-alpha-renaming equality.
func (e Expr) Equal(other Expr) bool {
	if len(e.ArrowParams) != len(other.ArrowParams) {
		return false
	}
	for i := range e.ArrowParams {
		if !e.ArrowParams[i].Equal(other.ArrowParams[i]) {
			return false
		}
	}
	if e.Head != other.Head {
		return false
	}
	if len(e.Tail) != len(other.Tail) {
		return false
	}
	for i := range e.Tail {
		if !e.Tail[i].Equal(other.Tail[i]) {
			return false
		}
	}
	return true
}

// Insert splices other into e's head position: other's arrow params are
// appended after e's own (e's binders were already in scope, so they stay
// outermost), e's head is replaced by other's, and other's tail arguments
// are applied before e's own remaining tail.
//
// Grounded on original_source/src/lib.rs's Expr::insert. The one failure
// mode it guards against: other is itself an arrow type or bare universe
// but e already has pending tail arguments, which would mean applying
// arguments to something that turned out not to be an application head.
func (e *Expr) Insert(other Expr) error {
	_, otherIsUniverse := other.UniverseLevel()
	if (otherIsUniverse || len(other.ArrowParams) > 0) && len(e.Tail) > 0 {
		return diagnostics.NewPhaseError(diagnostics.PhaseCheck, diagnostics.ErrE005, token.Token{})
	}
	e.ArrowParams = append(e.ArrowParams, other.ArrowParams...)
	e.Head = other.Head
	e.Tail = append(append([]Expr{}, other.Tail...), e.Tail...)
	return nil
}

// String renders e the way the kernel prints checked types: bare indices,
// not source-level binder names, since binder names are never stored.
func (e Expr) String() string {
	var sb strings.Builder
	for _, p := range e.ArrowParams {
		writeGrouped(&sb, p, false)
		sb.WriteString(" -> ")
	}
	switch e.Head.Kind {
	case IdentUniverse:
		fmt.Fprintf(&sb, "U%d", e.Head.Index)
	case IdentLocal:
		fmt.Fprintf(&sb, "x%d", e.Head.Index)
	case IdentGlobal:
		fmt.Fprintf(&sb, "g%d", e.Head.Index)
	}
	for _, t := range e.Tail {
		sb.WriteString(" ")
		writeGrouped(&sb, t, true)
	}
	return sb.String()
}

// writeGrouped wraps sub in parens when printing it bare would be
// ambiguous: any sub-expression with its own arrow params always needs
// parens, and tail arguments (groupAlgs) additionally need them when they
// themselves carry further applied arguments.
func writeGrouped(sb *strings.Builder, sub Expr, groupAlgs bool) {
	needsParens := len(sub.ArrowParams) > 0 || (groupAlgs && len(sub.Tail) > 0)
	if needsParens {
		sb.WriteString("(")
		sb.WriteString(sub.String())
		sb.WriteString(")")
		return
	}
	sb.WriteString(sub.String())
}
