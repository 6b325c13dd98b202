// Package kernel implements the dependently-typed core: term representation,
// elaboration, capture-avoiding substitution, weak-head evaluation, and the
// bidirectional type/sort checker. It is grounded on
// original_source/src/lib.rs, reworked from panicking Rust into Go's
// explicit-error idiom.
package kernel

import "fmt"

// IdentKind distinguishes the three namespaces a head identifier can resolve
// into. Unlike most Go enums in this codebase, this one never reaches the
// surface syntax directly: the parser only ever produces names, and
// ConvertExpr is what assigns a Kind.
type IdentKind int

const (
	IdentUniverse IdentKind = iota
	IdentGlobal
	IdentLocal
)

func (k IdentKind) String() string {
	switch k {
	case IdentUniverse:
		return "universe"
	case IdentGlobal:
		return "global"
	case IdentLocal:
		return "local"
	default:
		return fmt.Sprintf("IdentKind(%d)", int(k))
	}
}

// Ident is a resolved head identifier: a universe level, a de Bruijn index
// into the enclosing local context, or an index into the Globals table.
type Ident struct {
	Kind  IdentKind
	Index int
}

func UniverseIdent(level int) Ident { return Ident{Kind: IdentUniverse, Index: level} }
func GlobalIdent(index int) Ident   { return Ident{Kind: IdentGlobal, Index: index} }
func LocalIdent(index int) Ident    { return Ident{Kind: IdentLocal, Index: index} }
