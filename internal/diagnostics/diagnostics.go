package diagnostics

import (
	"fmt"

	"github.com/funvibe/dtlc/internal/token"
)

// Phase represents the processing phase where an error occurred.
type Phase string

const (
	PhaseParser    Phase = "parser"
	PhaseElaborate Phase = "elaborate"
	PhaseCheck     Phase = "check"
)

type ErrorCode string

const (
	// Parser errors
	ErrP001 ErrorCode = "P001" // unexpected token
	ErrP002 ErrorCode = "P002" // expected identifier
	ErrP003 ErrorCode = "P003" // expected expression

	// Elaboration errors (name resolution, spec SS4.2 / SS7)
	ErrE001 ErrorCode = "E001" // unknown identifier

	// Checker errors (spec SS7)
	ErrE002 ErrorCode = "E002" // arity / applicability: applying arguments to a non-function
	ErrE003 ErrorCode = "E003" // type mismatch
	ErrE004 ErrorCode = "E004" // sort mismatch: expected element of a universe
	ErrE005 ErrorCode = "E005" // structural misuse: arrow/universe substituted into a non-empty tail
	ErrE006 ErrorCode = "E006" // annotation/definition name mismatch
	ErrE007 ErrorCode = "E007" // parameterized term with no type annotation
	ErrE008 ErrorCode = "E008" // unimplemented: associated (nested) items
	ErrE009 ErrorCode = "E009" // item has neither annotation nor definition
	ErrE010 ErrorCode = "E010" // applying arguments to a universe
	ErrE011 ErrorCode = "E011" // definition without a type annotation (unimplemented)
	ErrE012 ErrorCode = "E012" // definition declares more parameters than its annotation has arrow params
)

var errorTemplates = map[ErrorCode]string{
	ErrP001: "unexpected token: expected %s, but got '%s'",
	ErrP002: "expected an identifier, got '%s'",
	ErrP003: "expected an expression, got '%s'",

	ErrE001: "unknown identifier: '%s'",
	ErrE002: "cannot apply type family to argument(s): %s",
	ErrE003: "%s has type:\n  %s\n\nbut it was expected to have type:\n  %s",
	ErrE004: "expected element of a universe, got: %s",
	ErrE005: "substituted arrow expression into head position",
	ErrE006: "annotation for %s was given alongside definition for %s",
	ErrE007: "terms with parameters must have a type annotation",
	ErrE008: "associated (nested) items are not implemented",
	ErrE009: "item has neither annotation nor definition",
	ErrE010: "cannot apply type to arguments",
	ErrE011: "definitions without a type annotation are not implemented",
	ErrE012: "definition declares %d parameter(s) but its annotation has only %d arrow parameter(s)",
}

// DiagnosticError is the single error type produced by every stage of the
// pipeline. Per spec.md SS7 the kernel is fatal-on-first-error, so a
// DiagnosticError halts the elaborate/check stage as soon as it is raised;
// earlier stages (parsing) still collect what they can, matching the
// teacher's "keep running to gather diagnostics" pipeline shape.
type DiagnosticError struct {
	Code  ErrorCode
	Phase Phase
	Args  []interface{}
	Token token.Token
	File  string
}

func (e *DiagnosticError) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown error code: %s", e.Code)
	}

	message := fmt.Sprintf(template, e.Args...)

	prefix := ""
	if e.File != "" {
		prefix = fmt.Sprintf("%s: ", e.File)
	}

	phaseStr := ""
	if e.Phase != "" {
		phaseStr = fmt.Sprintf("[%s] ", e.Phase)
	}

	if e.Token.Line > 0 {
		return fmt.Sprintf("%s%serror at %d:%d [%s]: %s", prefix, phaseStr, e.Token.Line, e.Token.Column, e.Code, message)
	}
	return fmt.Sprintf("%s%serror [%s]: %s", prefix, phaseStr, e.Code, message)
}

// NewError creates an error with just a code and a token.
func NewError(code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Args: args}
}

// NewPhaseError creates an error tagged with the phase that raised it.
func NewPhaseError(phase Phase, code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Phase: phase, Token: tok, Args: args}
}
