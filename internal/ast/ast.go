// Package ast defines the small surface grammar this checker accepts: a
// program is a sequence of items, each either a type annotation, a
// definition, or both paired together. Expressions are either an arrow
// chain of dependent function parameters or an application spine.
package ast

import (
	"github.com/funvibe/dtlc/internal/token"
)

// Node is the base interface for every AST node; GetToken anchors
// diagnostics to a source position.
type Node interface {
	GetToken() token.Token
}

// Expr is either an *ArrowExpr or an *AppExpr. Unlike the teacher's full
// language, there is no Visitor here: two node kinds is too few to justify
// one, and kernel.ConvertExpr dispatches with a plain type switch.
type Expr interface {
	Node
	exprNode()
}

// Identifier is a bare name reference: a bound variable, a global, or a
// U<digits> universe literal, disambiguated later by kernel.ConvertExpr.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) GetToken() token.Token { return i.Token }

// Param is one binder of an arrow chain: (name: Domain) for a named
// parameter the body can refer to, or a bare Domain for an anonymous one.
type Param struct {
	Name   *string
	Domain Expr
}

// ArrowExpr is a chain of one or more dependent function parameters ending
// in an Output expression: (x1: A) -> (x2: B) -> Output.
type ArrowExpr struct {
	Token  token.Token
	Params []Param
	Output Expr
}

func (a *ArrowExpr) GetToken() token.Token { return a.Token }
func (a *ArrowExpr) exprNode()             {}

// AppExpr is an application spine: Head applied to zero or more Tail
// arguments, e.g. `f x (g y)`.
type AppExpr struct {
	Head *Identifier
	Tail []Expr
}

func (a *AppExpr) GetToken() token.Token { return a.Head.Token }
func (a *AppExpr) exprNode()             {}

// Annotation declares a name's type: `name : Type`. IsPost marks an
// annotation written directly after its definition (`name = body` followed
// by `name : Type`), which the checker trusts without re-checking the body
// against it — see parser.ParseProgram's doc comment.
type Annotation struct {
	Token  token.Token
	Name   *Identifier
	Type   Expr
	IsPost bool
}

func (a *Annotation) GetToken() token.Token { return a.Token }

// Definition gives a name's value: `name param1 param2 = body`.
type Definition struct {
	Token  token.Token
	Name   *Identifier
	Params []*Identifier
	Body   Expr
}

func (d *Definition) GetToken() token.Token { return d.Token }

// Item is one top-level entry: an Annotation, a Definition, or both when
// the source paired an annotation with its definition. Associated holds
// nested items (e.g. a where-clause): the parser fills it from the lines
// indented under the item's annotation or definition line. This checker
// does not implement those, so the driver rejects a non-empty Associated
// explicitly.
type Item struct {
	Annotation *Annotation
	Definition *Definition
	Associated []*Item
}

func (it *Item) GetToken() token.Token {
	if it.Annotation != nil {
		return it.Annotation.Token
	}
	if it.Definition != nil {
		return it.Definition.Token
	}
	return token.Token{}
}

// Program is the root node: every item a source file declares, in order.
type Program struct {
	Items []*Item
}

func (p *Program) GetToken() token.Token {
	if len(p.Items) > 0 {
		return p.Items[0].GetToken()
	}
	return token.Token{}
}
