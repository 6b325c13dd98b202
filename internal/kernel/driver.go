package kernel

import (
	"fmt"

	"github.com/funvibe/dtlc/internal/ast"
	"github.com/funvibe/dtlc/internal/diagnostics"
)

// CheckedItem is one successfully processed top-level item: its resolved
// name and the Global row it produced.
type CheckedItem struct {
	Name   string
	Global Global
}

// CheckItem elaborates and checks a single source item against globals,
// without appending it — the caller decides whether and when to append,
// since TypeCheckAll needs to report the name before committing it.
//
// Grounded on original_source/src/lib.rs's type_check_function.
func CheckItem(globals *Globals, item *ast.Item) (CheckedItem, error) {
	if len(item.Associated) > 0 {
		return CheckedItem{}, diagnostics.NewPhaseError(diagnostics.PhaseCheck, diagnostics.ErrE008, item.GetToken())
	}

	if item.Annotation == nil {
		if item.Definition == nil {
			return CheckedItem{}, diagnostics.NewPhaseError(diagnostics.PhaseCheck, diagnostics.ErrE009, item.GetToken())
		}
		if len(item.Definition.Params) > 0 {
			return CheckedItem{}, diagnostics.NewPhaseError(diagnostics.PhaseCheck, diagnostics.ErrE007, item.Definition.Token)
		}
		return CheckedItem{}, diagnostics.NewPhaseError(diagnostics.PhaseCheck, diagnostics.ErrE011, item.Definition.Token)
	}

	annotation := item.Annotation
	ty0, err := ConvertExpr(globals.Names(), NewContext[string](nil), annotation.Type)
	if err != nil {
		return CheckedItem{}, err
	}
	if _, err := SortCheckExpr(globals, NewContext[Expr](nil), ty0); err != nil {
		return CheckedItem{}, err
	}
	ty, err := Eval(globals, ty0, 0)
	if err != nil {
		return CheckedItem{}, err
	}

	if item.Definition == nil {
		return CheckedItem{Name: annotation.Name.Value, Global: Global{Ty: ty}}, nil
	}

	definition := item.Definition
	if annotation.Name.Value != definition.Name.Value {
		return CheckedItem{}, diagnostics.NewPhaseError(diagnostics.PhaseCheck, diagnostics.ErrE006, definition.Token,
			annotation.Name.Value, definition.Name.Value)
	}

	paramNum := len(definition.Params)
	varNames := make([]string, paramNum)
	for i, p := range definition.Params {
		varNames[i] = p.Value
	}

	body, err := ConvertExpr(globals.Names(), NewContext[string](varNames), definition.Body)
	if err != nil {
		return CheckedItem{}, err
	}

	if !annotation.IsPost {
		if paramNum > len(ty.ArrowParams) {
			return CheckedItem{}, diagnostics.NewPhaseError(diagnostics.PhaseCheck, diagnostics.ErrE012, definition.Token,
				paramNum, len(ty.ArrowParams))
		}
		bindings := append([]Expr{}, ty.ArrowParams[:paramNum]...)
		remaining := Expr{ArrowParams: ty.ArrowParams[paramNum:], Head: ty.Head, Tail: ty.Tail}
		paramCtx := NewContext[Expr](bindings)
		if err := TypeCheckExpr(globals, paramCtx, body, remaining); err != nil {
			return CheckedItem{}, err
		}
	}

	return CheckedItem{
		Name:   definition.Name.Value,
		Global: Global{Ty: ty, Def: &GlobalDef{Arity: paramNum, Body: body}},
	}, nil
}

// TypeCheckAll checks every item in program in order, appending each to
// globals as it succeeds so later items can refer to earlier ones. It
// returns one rendered "name: type" line per successfully checked item.
// The first item that fails to check aborts the whole run: the kernel is
// fatal-on-first-error, so there is no partial-globals recovery the way
// the parser stage tolerates multiple diagnostics.
//
// Grounded on original_source/src/lib.rs's type_check_all.
func TypeCheckAll(globals *Globals, program *ast.Program) ([]string, error) {
	var lines []string
	for _, item := range program.Items {
		checked, err := CheckItem(globals, item)
		if err != nil {
			return lines, err
		}
		paramNames := CollectParamNames(item.Annotation.Type)
		rendered := RenderNamed(checked.Global.Ty, paramNames, globals.Names())
		lines = append(lines, fmt.Sprintf("%s: %s", checked.Name, rendered))
		globals.Append(checked.Name, checked.Global)
	}
	return lines, nil
}
