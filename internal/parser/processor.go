package parser

import (
	"github.com/funvibe/dtlc/internal/pipeline"
)

// ParserProcessor splits the source into indentation groups and parses
// each into an ast.Program. It collects every diagnostic it can rather
// than stopping at the first bad line, matching the teacher's
// tolerant-parsing shape; the kernel stage after it is fatal-on-first-error
// instead.
type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Failed() {
		return ctx
	}

	program, errs := ParseProgram(ctx.SourceCode)
	if len(errs) > 0 {
		for _, e := range errs {
			e.File = ctx.FilePath
			ctx.Errors = append(ctx.Errors, e)
		}
		return ctx
	}

	ctx.Program = program
	return ctx
}
