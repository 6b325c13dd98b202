package pipeline

import (
	"github.com/funvibe/dtlc/internal/diagnostics"
	"github.com/funvibe/dtlc/internal/kernel"
)

// CheckerProcessor elaborates and type-checks ctx.Program against
// ctx.Globals, the final pipeline stage. It lives in this package rather
// than internal/kernel since internal/kernel must not import pipeline
// (pipeline already imports kernel for Globals).
type CheckerProcessor struct{}

func (cp *CheckerProcessor) Process(ctx *PipelineContext) *PipelineContext {
	if ctx.Failed() {
		return ctx
	}

	lines, err := kernel.TypeCheckAll(ctx.Globals, ctx.Program)
	ctx.Lines = lines
	if err != nil {
		de := err.(*diagnostics.DiagnosticError)
		de.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, de)
	}
	return ctx
}
