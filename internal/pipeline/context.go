package pipeline

import (
	"github.com/funvibe/dtlc/internal/ast"
	"github.com/funvibe/dtlc/internal/diagnostics"
	"github.com/funvibe/dtlc/internal/kernel"
)

// PipelineContext holds all the data passed between pipeline stages:
// indentation splitting, per-line parsing, then kernel elaboration/check.
type PipelineContext struct {
	SourceCode string
	FilePath   string // path to the source file, or "" for stdin

	Program *ast.Program
	Globals *kernel.Globals

	// Lines holds one rendered "name: type" line per item the checker
	// stage accepted, in source order.
	Lines []string

	Errors []*diagnostics.DiagnosticError
}

// NewPipelineContext creates and initializes a new PipelineContext.
func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		SourceCode: source,
		Globals:    kernel.NewGlobals(),
		Errors:     []*diagnostics.DiagnosticError{},
	}
}

// Failed reports whether any stage has recorded a diagnostic.
func (c *PipelineContext) Failed() bool {
	return len(c.Errors) > 0
}
