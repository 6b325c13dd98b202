// Package parser turns source text into an *ast.Program: it first groups
// lines by indentation (see indent.go, ported from
// original_source/src/indent_parser.rs), then parses each logical line
// independently with a small recursive-descent expression parser and
// pairs consecutive annotation/definition lines into ast.Items.
package parser

import (
	"fmt"

	"github.com/funvibe/dtlc/internal/ast"
	"github.com/funvibe/dtlc/internal/diagnostics"
	"github.com/funvibe/dtlc/internal/lexer"
	"github.com/funvibe/dtlc/internal/token"
)

// lineParser parses one logical line's already-tokenized text: either
//
//	name : Type
//	name param1 param2 = body
type lineParser struct {
	tokens []token.Token
	pos    int
}

func newLineParser(tokens []token.Token) *lineParser {
	return &lineParser{tokens: tokens}
}

func (p *lineParser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *lineParser) curIs(t token.TokenType) bool {
	return p.cur().Type == t
}

func (p *lineParser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *lineParser) expect(t token.TokenType) (token.Token, error) {
	if !p.curIs(t) {
		return token.Token{}, diagnostics.NewPhaseError(diagnostics.PhaseParser, diagnostics.ErrP001, p.cur(), string(t), p.cur().Lexeme)
	}
	return p.advance(), nil
}

func (p *lineParser) expectIdent() (*ast.Identifier, error) {
	tok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, diagnostics.NewPhaseError(diagnostics.PhaseParser, diagnostics.ErrP002, p.cur(), p.cur().Lexeme)
	}
	return &ast.Identifier{Token: tok, Value: tok.Lexeme}, nil
}

// atBinderGroup reports whether the parens starting at pos (a LPAREN)
// open a named-binder group "(name1 name2 ... : Domain)" rather than a
// plain grouped expression: a binder group always has one or more
// consecutive identifiers immediately followed by a colon.
func (p *lineParser) atBinderGroup() bool {
	i := p.pos + 1
	if i >= len(p.tokens) || p.tokens[i].Type != token.IDENT {
		return false
	}
	for i < len(p.tokens) && p.tokens[i].Type == token.IDENT {
		i++
	}
	return i < len(p.tokens) && p.tokens[i].Type == token.COLON
}

// parseArrow parses an expression that may be a chain of arrow
// parameters: either a named-binder group "(x y: A) -> Rest" or a plain
// domain "A -> Rest", right-associatively, or (with no trailing "->") a
// bare application spine.
func (p *lineParser) parseArrow() (ast.Expr, error) {
	if p.curIs(token.LPAREN) && p.atBinderGroup() {
		p.advance() // (
		var names []string
		for p.curIs(token.IDENT) {
			id, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			names = append(names, id.Value)
		}
		if _, err := p.expect(token.COLON); err != nil {
			return nil, err
		}
		domain, err := p.parseArrow()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ARROW); err != nil {
			return nil, err
		}
		output, err := p.parseArrow()
		if err != nil {
			return nil, err
		}
		params := make([]ast.Param, len(names))
		for i := range names {
			name := names[i]
			params[i] = ast.Param{Name: &name, Domain: domain}
		}
		tok := domain.GetToken()
		return &ast.ArrowExpr{Token: tok, Params: params, Output: output}, nil
	}

	var left ast.Expr
	var err error
	if p.curIs(token.LPAREN) {
		left, err = p.parseAtom()
	} else {
		left, err = p.parseApp()
	}
	if err != nil {
		return nil, err
	}
	if p.curIs(token.ARROW) {
		p.advance()
		output, err := p.parseArrow()
		if err != nil {
			return nil, err
		}
		return &ast.ArrowExpr{
			Token:  left.GetToken(),
			Params: []ast.Param{{Domain: left}},
			Output: output,
		}, nil
	}
	return left, nil
}

// parseApp parses an application spine: an identifier head followed by
// zero or more atoms.
func (p *lineParser) parseApp() (ast.Expr, error) {
	head, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	var tail []ast.Expr
	for p.curIs(token.IDENT) || p.curIs(token.LPAREN) {
		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		tail = append(tail, atom)
	}
	return &ast.AppExpr{Head: head, Tail: tail}, nil
}

func (p *lineParser) parseAtom() (ast.Expr, error) {
	switch {
	case p.curIs(token.IDENT):
		id, err := p.expectIdent()
		if err != nil {
			return nil, err
		}
		return &ast.AppExpr{Head: id}, nil
	case p.curIs(token.LPAREN):
		p.advance()
		e, err := p.parseArrow()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, diagnostics.NewPhaseError(diagnostics.PhaseParser, diagnostics.ErrP003, p.cur(), p.cur().Lexeme)
	}
}

// parsedLine is the result of parsing one logical line: exactly one of
// Annotation or Definition is set, mirroring original_source's
// ast::Line enum.
type parsedLine struct {
	annotation *ast.Annotation
	definition *ast.Definition
}

func parseLine(text string, startLine int) (parsedLine, error) {
	tokens := lexer.TokenizeLine(text, startLine)
	p := newLineParser(tokens)

	if p.curIs(token.EOF) {
		return parsedLine{}, diagnostics.NewPhaseError(diagnostics.PhaseParser, diagnostics.ErrP002, p.cur(), "<end of line>")
	}

	name, err := p.expectIdent()
	if err != nil {
		return parsedLine{}, err
	}

	if p.curIs(token.COLON) {
		p.advance()
		ty, err := p.parseArrow()
		if err != nil {
			return parsedLine{}, err
		}
		if _, err := p.expect(token.EOF); err != nil {
			return parsedLine{}, err
		}
		return parsedLine{annotation: &ast.Annotation{Token: name.Token, Name: name, Type: ty}}, nil
	}

	var params []*ast.Identifier
	for p.curIs(token.IDENT) {
		id, err := p.expectIdent()
		if err != nil {
			return parsedLine{}, err
		}
		params = append(params, id)
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return parsedLine{}, err
	}
	body, err := p.parseArrow()
	if err != nil {
		return parsedLine{}, err
	}
	if _, err := p.expect(token.EOF); err != nil {
		return parsedLine{}, err
	}
	return parsedLine{definition: &ast.Definition{Token: name.Token, Name: name, Params: params, Body: body}}, nil
}

// ParseProgram groups source by indentation and parses every resulting
// line-group, pairing annotation/definition lines into ast.Items.
//
// Grounded on original_source/src/indent_parser.rs's
// ProgramParser::from_indented, with one addition: an annotation line
// following a bare definition of the same name pairs with it as a
// trusted post-hoc annotation (IsPost=true, see ast.Annotation), which is
// how a definition can be given before its type is spelled out. The
// original ast::Annotation carried an is_post flag (used by
// type_check_function) but the grammar rule that set it was not part of
// the retrieved source, so this is this project's own surface syntax for
// it.
func ParseProgram(source string) (*ast.Program, []*diagnostics.DiagnosticError) {
	tree := SplitSource(source)
	items, errs := buildItems(tree)
	return &ast.Program{Items: items}, errs
}

func buildItems(tree []indentedLine) ([]*ast.Item, []*diagnostics.DiagnosticError) {
	var items []*ast.Item
	var errs []*diagnostics.DiagnosticError
	var pendingAnnotation *ast.Annotation
	var pendingAssociated []*ast.Item
	var lastBareDefinition *ast.Item

	for _, group := range tree {
		line, err := parseLine(group.text, group.startLine)
		if err != nil {
			errs = append(errs, asDiagnostic(err))
			continue
		}

		switch {
		case line.definition != nil:
			associated, subErrs := buildItems(group.sublines)
			errs = append(errs, subErrs...)
			item := &ast.Item{Definition: line.definition, Associated: associated}
			if pendingAnnotation != nil {
				item.Annotation = pendingAnnotation
				item.Associated = append(pendingAssociated, associated...)
				pendingAnnotation = nil
				pendingAssociated = nil
				lastBareDefinition = nil
			} else {
				lastBareDefinition = item
			}
			items = append(items, item)

		case line.annotation != nil:
			associated, subErrs := buildItems(group.sublines)
			errs = append(errs, subErrs...)
			if lastBareDefinition != nil && lastBareDefinition.Definition.Name.Value == line.annotation.Name.Value {
				line.annotation.IsPost = true
				lastBareDefinition.Annotation = line.annotation
				lastBareDefinition.Associated = append(lastBareDefinition.Associated, associated...)
				lastBareDefinition = nil
				continue
			}
			lastBareDefinition = nil
			if pendingAnnotation != nil {
				items = append(items, &ast.Item{Annotation: pendingAnnotation, Associated: pendingAssociated})
			}
			pendingAnnotation = line.annotation
			pendingAssociated = associated
		}
	}

	if pendingAnnotation != nil {
		items = append(items, &ast.Item{Annotation: pendingAnnotation, Associated: pendingAssociated})
	}

	return items, errs
}

func asDiagnostic(err error) *diagnostics.DiagnosticError {
	if de, ok := err.(*diagnostics.DiagnosticError); ok {
		return de
	}
	return diagnostics.NewPhaseError(diagnostics.PhaseParser, diagnostics.ErrP003, token.Token{}, fmt.Sprint(err))
}
