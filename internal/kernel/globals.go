package kernel

// GlobalDef is the body half of a global that carries a definition, not
// just an annotation. Arity is the number of leading parameters the
// definition binds; Body is elaborated against a local context of exactly
// that many binders.
type GlobalDef struct {
	Arity int
	Body  Expr
}

// Global is one row of the append-only globals table: every global has a
// checked type, and optionally (when the source item carried a body) a
// definition that Eval can unfold.
type Global struct {
	Ty  Expr
	Def *GlobalDef
}

// Globals is the append-only table indexed by GlobalIdent. Names are kept
// alongside defs so elaboration can resolve surface names to indices; a
// later append with a reused name shadows the earlier one, same as local
// binders do.
type Globals struct {
	names []string
	defs  []Global
}

func NewGlobals() *Globals {
	return &Globals{}
}

func (g *Globals) Names() []string {
	return g.names
}

func (g *Globals) Len() int {
	return len(g.defs)
}

// Get returns the global at index i, or false if i is out of range.
func (g *Globals) Get(i int) (Global, bool) {
	if i < 0 || i >= len(g.defs) {
		return Global{}, false
	}
	return g.defs[i], true
}

// IndexOf returns the index of the most recently appended global named
// name, scanning backward so a later redefinition shadows an earlier one.
func (g *Globals) IndexOf(name string) (int, bool) {
	for i := len(g.names) - 1; i >= 0; i-- {
		if g.names[i] == name {
			return i, true
		}
	}
	return 0, false
}

// Append adds a new global and returns its index.
func (g *Globals) Append(name string, item Global) int {
	g.names = append(g.names, name)
	g.defs = append(g.defs, item)
	return len(g.defs) - 1
}
