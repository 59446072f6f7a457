package analyzer

import "github.com/pxp-lang/statan/analyzer/definitions"

// Engine runs Pass 2 over one file's syntax tree: at every node it first
// updates context on entry (namespace, use, class/function push; a function
// or method frame starts with its typed parameters as locals), then
// dispatches every rule whose gate matches, in registration order, then
// recurses into children, then pops any context frame it pushed.
type Engine struct {
	rules []Rule
}

func NewEngine(rules ...Rule) *Engine {
	return &Engine{rules: rules}
}

// Analyze walks root and returns the diagnostics produced for filename.
// index must already be fully populated by Pass 1.
func (e *Engine) Analyze(root Node, filename string, index *definitions.Collection) *Sink {
	sink := NewSink(filename)
	ctx := NewContext()
	e.visit(root, index, sink, ctx)
	return sink
}

func (e *Engine) visit(node Node, index *definitions.Collection, sink *Sink, ctx *Context) {
	if node == nil {
		return
	}

	childCtx := ctx
	switch node.Kind() {
	case "namespace_definition":
		if name := node.ChildByField("name"); name != nil {
			ctx.SetNamespace(PrependSeparator(name.Content()))
		}
	case "namespace_use_declaration":
		for _, imp := range CollectImports(node) {
			ctx.AddImport(imp)
		}
	case "class_declaration", "interface_declaration", "trait_declaration", "enum_declaration":
		name := node.ChildByField("name")
		if name != nil {
			frame := ctx.Clean()
			frame.SetClassScope(name.Content())
			childCtx = frame
		}
	case "method_declaration", "function_definition":
		name := node.ChildByField("name")
		if name != nil {
			frame := ctx.Clean()
			frame.SetClassScope(ctx.ClassScope())
			frame.SetFunctionScope(name.Content())
			if params := node.ChildByField("parameters"); params != nil {
				for _, p := range params.Children() {
					pName, pType := p.ChildByField("name"), p.ChildByField("type")
					if pName != nil && pType != nil {
						frame.SetVariable(pName.Content(), MapType(pType, ctx))
					}
				}
			}
			childCtx = frame
		}
	}

	for _, rule := range e.rules {
		if rule.ShouldRun(node) {
			rule.Run(node, index, sink, childCtx)
		}
	}

	for _, child := range node.Children() {
		e.visit(child, index, sink, childCtx)
	}
}

// PrependSeparator prepends the canonical-name root separator to name.
func PrependSeparator(name []byte) []byte {
	out := make([]byte, 0, len(name)+1)
	out = append(out, separator)
	out = append(out, name...)
	return out
}

// CollectImports reads the canonical names introduced by a use declaration,
// handling both the plain and grouped forms.
func CollectImports(node Node) [][]byte {
	var out [][]byte
	for _, child := range node.Children() {
		switch child.Kind() {
		case "namespace_use_clause":
			if name := nameOf(child); name != nil {
				out = append(out, PrependSeparator(name.Content()))
			}
		case "namespace_use_group":
			prefix := node.ChildByField("prefix")
			var prefixBytes []byte
			if prefix != nil {
				prefixBytes = prefix.Content()
			}
			for _, clause := range child.Children() {
				if clause.Kind() != "namespace_use_clause" {
					continue
				}
				if name := nameOf(clause); name != nil {
					full := append(append([]byte{}, prefixBytes...), name.Content()...)
					out = append(out, PrependSeparator(full))
				}
			}
		}
	}
	return out
}

func nameOf(node Node) Node {
	if name := node.ChildByField("name"); name != nil {
		return name
	}
	return firstNamedChild(node)
}
