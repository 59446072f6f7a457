package analyzer

import "github.com/pxp-lang/statan/analyzer/definitions"

// Context is the per-traversal-point state: current namespace, imports,
// enclosing class, enclosing function, and local-variable types. Frames
// form a stack owned by the traversal (see Engine.Analyze): a fresh frame
// (locals cleared) is pushed on class/function entry and popped on exit.
type Context struct {
	namespace     []byte
	imports       [][]byte
	classScope    []byte
	functionScope []byte
	locals        map[string]definitions.Type
}

func NewContext() *Context {
	return &Context{locals: make(map[string]definitions.Type)}
}

func (c *Context) Namespace() []byte    { return c.namespace }
func (c *Context) SetNamespace(ns []byte) { c.namespace = ns }

func (c *Context) Imports() [][]byte { return c.imports }
func (c *Context) AddImport(imp []byte) {
	c.imports = append(c.imports, imp)
}

func (c *Context) IsInClass() bool      { return len(c.classScope) > 0 }
func (c *Context) ClassScope() []byte   { return c.classScope }
func (c *Context) SetClassScope(name []byte) { c.classScope = name }

func (c *Context) IsInFunction() bool      { return len(c.functionScope) > 0 }
func (c *Context) FunctionScope() []byte   { return c.functionScope }
func (c *Context) SetFunctionScope(name []byte) { c.functionScope = name }

func (c *Context) HasVariable(name []byte) bool {
	_, ok := c.locals[string(name)]
	return ok
}

func (c *Context) GetVariableType(name []byte) (definitions.Type, bool) {
	t, ok := c.locals[string(name)]
	return t, ok
}

func (c *Context) SetVariable(name []byte, t definitions.Type) {
	c.locals[string(name)] = t
}

// Clean produces a new context sharing namespace, imports, and scope, but
// with empty locals — used when pushing a class or function frame so outer
// locals don't leak into the new scope.
func (c *Context) Clean() *Context {
	return &Context{
		namespace:     c.namespace,
		imports:       c.imports,
		classScope:    c.classScope,
		functionScope: c.functionScope,
		locals:        make(map[string]definitions.Type),
	}
}

// ResolveName implements definitions.Scope.
func (c *Context) ResolveName(raw []byte) []byte {
	return Resolve(raw, c.namespace, c.imports, c.classScope)
}
