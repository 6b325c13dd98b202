package kernel

import (
	"fmt"
	"strings"

	"github.com/funvibe/dtlc/internal/ast"
	"github.com/funvibe/dtlc/internal/config"
)

// CollectParamNames walks the same leading arrow chain ConvertExpr peels
// and returns the binder names in order, substituting
// config.AnonymousParamName for unnamed ones. It exists purely to drive
// RenderNamed; the kernel's own Expr never stores names (see Expr's doc
// comment), so this walks the surface syntax a second time rather than
// threading names through elaboration.
func CollectParamNames(expr ast.Expr) []string {
	var names []string
	cur := expr
	for {
		arrow, ok := cur.(*ast.ArrowExpr)
		if !ok {
			return names
		}
		for _, p := range arrow.Params {
			name := config.AnonymousParamName
			if p.Name != nil {
				name = *p.Name
			}
			names = append(names, name)
		}
		cur = arrow.Output
	}
}

// RenderNamed prints ty the way a user who wrote it would recognize: named
// arrow parameters render as "(name: Domain)" and referencing them in the
// body uses the declared name, instead of the kernel's internal x{i}/g{i}
// indices; globals print under their declared name too.
//
// This is a presentation concern layered on top of Expr.String() (which
// stays index-based, grounded on original_source/src/lib.rs's Display, and
// is what diagnostics still use for inner sub-expressions where no name
// context is at hand). RenderNamed is only used for the driver's top-level
// "name: type" summary line, per spec.md SS8's concrete scenarios, which
// show the declared names surviving into that line.
func RenderNamed(ty Expr, paramNames []string, globalNames []string) string {
	var sb strings.Builder
	writeTopLevel(&sb, ty, paramNames, globalNames)
	return sb.String()
}

func writeTopLevel(sb *strings.Builder, e Expr, paramNames, globalNames []string) {
	for i, p := range e.ArrowParams {
		var name string
		if i < len(paramNames) {
			name = paramNames[i]
		}
		if name != "" && name != config.AnonymousParamName {
			sb.WriteString("(")
			sb.WriteString(name)
			sb.WriteString(": ")
			writeNamedBare(sb, p, paramNames, globalNames)
			sb.WriteString(")")
		} else {
			writeNamedGrouped(sb, p, paramNames, globalNames, false)
		}
		sb.WriteString(" -> ")
	}
	writeNamedHead(sb, e, paramNames, globalNames)
	for _, t := range e.Tail {
		sb.WriteString(" ")
		writeNamedGrouped(sb, t, paramNames, globalNames, true)
	}
}

func writeNamedGrouped(sb *strings.Builder, e Expr, paramNames, globalNames []string, groupAlgs bool) {
	needsParens := len(e.ArrowParams) > 0 || (groupAlgs && len(e.Tail) > 0)
	if needsParens {
		sb.WriteString("(")
		writeNamedBare(sb, e, paramNames, globalNames)
		sb.WriteString(")")
		return
	}
	writeNamedBare(sb, e, paramNames, globalNames)
}

// writeNamedBare renders e without the outer parens/binder-name decoration
// writeTopLevel applies at the root; it's the recursive workhorse shared
// by nested arrow domains and tail arguments.
func writeNamedBare(sb *strings.Builder, e Expr, paramNames, globalNames []string) {
	for _, p := range e.ArrowParams {
		writeNamedGrouped(sb, p, paramNames, globalNames, false)
		sb.WriteString(" -> ")
	}
	writeNamedHead(sb, e, paramNames, globalNames)
	for _, t := range e.Tail {
		sb.WriteString(" ")
		writeNamedGrouped(sb, t, paramNames, globalNames, true)
	}
}

func writeNamedHead(sb *strings.Builder, e Expr, paramNames, globalNames []string) {
	switch e.Head.Kind {
	case IdentUniverse:
		fmt.Fprintf(sb, "U%d", e.Head.Index)
	case IdentLocal:
		if e.Head.Index < len(paramNames) && paramNames[e.Head.Index] != "" {
			sb.WriteString(paramNames[e.Head.Index])
		} else {
			fmt.Fprintf(sb, "x%d", e.Head.Index)
		}
	case IdentGlobal:
		if e.Head.Index < len(globalNames) {
			sb.WriteString(globalNames[e.Head.Index])
		} else {
			fmt.Fprintf(sb, "g%d", e.Head.Index)
		}
	}
}
