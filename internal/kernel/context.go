package kernel

// Context is a persistent, append-only binder stack. Pushing a new frame
// never mutates an existing one, so a Context can be shared across branches
// of elaboration or checking that diverge after a common prefix of binders.
//
// prevSize records how many indices the tail (prev) covers; This holds the
// most recently pushed frame. Lookups walk outward from This toward prev,
// which is what gives later (more local) bindings priority over earlier
// ones with the same name: ordinary lexical shadowing.
//
// Grounded on original_source/src/lib.rs's Context<'a, T>.
type Context[T any] struct {
	prevSize int
	prev     *Context[T]
	this     []T
}

// NewContext builds a root context holding a single frame.
func NewContext[T any](frame []T) *Context[T] {
	return &Context[T]{this: frame}
}

// Size returns how many bindings are visible through c, in total.
func (c *Context[T]) Size() int {
	if c == nil {
		return 0
	}
	return c.prevSize + len(c.this)
}

// Push adds a new frame on top of c. Bindings in frame shadow any
// same-named binding already visible through c.
func (c *Context[T]) Push(frame []T) *Context[T] {
	return c.PushShadowed(frame, c.Size())
}

// PushShadowed adds a new frame whose indices begin at unshadowed rather
// than at c.Size(). This lets a caller splice a frame into the index space
// of an ancestor context instead of the immediate one. ConvertExpr and
// CalculateType only use Push; nothing in this package calls PushShadowed.
func (c *Context[T]) PushShadowed(frame []T, unshadowed int) *Context[T] {
	return &Context[T]{prevSize: unshadowed, prev: c, this: frame}
}

// IndexFromValue scans outward from the innermost frame for the first
// element matching equal, returning its de Bruijn index (counted from the
// outermost binder) and whether a match was found.
func (c *Context[T]) IndexFromValue(equal func(T) bool) (int, bool) {
	for cur := c; cur != nil; cur = cur.prev {
		for i := len(cur.this) - 1; i >= 0; i-- {
			if equal(cur.this[i]) {
				return cur.prevSize + i, true
			}
		}
	}
	return 0, false
}

// ValueFromIndex returns the binding at de Bruijn index idx. It panics if
// idx is out of range, which signals a bug in the elaborator: every index
// ConvertExpr produces must be in range of the context it was produced
// against.
func (c *Context[T]) ValueFromIndex(idx int) T {
	for cur := c; cur != nil; cur = cur.prev {
		if idx >= cur.prevSize {
			return cur.this[idx-cur.prevSize]
		}
		if cur.prev == nil {
			break
		}
	}
	panic("kernel: de Bruijn index out of range")
}
