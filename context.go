package lambda

import "iter"

// Context is an insertion-ordered mapping from function-name Identifier to
// Function. The reducer consults it read-only; a command layer (see the
// engine package) mutates it through Def/Del.
type Context struct {
	order []Identifier
	funcs map[Identifier]Function
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{funcs: make(map[Identifier]Function)}
}

// Def inserts f, or replaces the existing definition with the same name.
// Preserving the original insertion position on replace is not required;
// overall iteration order is deterministic across repeated iteration of the
// same Context value.
func (c *Context) Def(f Function) {
	if _, exists := c.funcs[f.Name]; !exists {
		c.order = append(c.order, f.Name)
	}
	c.funcs[f.Name] = f
}

// Del removes the function named name, if present.
func (c *Context) Del(name Identifier) {
	if _, exists := c.funcs[name]; !exists {
		return
	}
	delete(c.funcs, name)
	for i, id := range c.order {
		if id == name {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Get returns the Function named name, if present.
func (c *Context) Get(name Identifier) (Function, bool) {
	f, ok := c.funcs[name]
	return f, ok
}

// Arity returns the parameter count of the function named name.
func (c *Context) Arity(name Identifier) (int, bool) {
	f, ok := c.funcs[name]
	if !ok {
		return 0, false
	}
	return f.Arity(), true
}

// Len reports the number of definitions currently in the Context.
func (c *Context) Len() int {
	return len(c.order)
}

// All iterates (name, function) pairs in deterministic, insertion order.
func (c *Context) All() iter.Seq2[Identifier, Function] {
	return func(yield func(Identifier, Function) bool) {
		for _, name := range c.order {
			if !yield(name, c.funcs[name]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of c; mutating the clone never affects
// c, matching the "immutable borrow for the lifetime of a reducer" contract
// of spec §5 for callers that want to snapshot a Context before handing a
// read-only reference to a Reducer.
func (c *Context) Clone() *Context {
	clone := &Context{
		order: append([]Identifier(nil), c.order...),
		funcs: make(map[Identifier]Function, len(c.funcs)),
	}
	for k, v := range c.funcs {
		clone.funcs[k] = v
	}
	return clone
}
