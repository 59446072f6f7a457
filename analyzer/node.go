package analyzer

// Node is the parser contract this engine depends on: every syntax node
// exposes a kind string for dispatch, a 1-based start line, its source
// text, an ordered list of named children for traversal, and field-based
// child lookup for the handful of grammar productions (name, body,
// parameters, ...) the collector and rules need by name rather than
// position. The concrete implementation (a tree-sitter parse tree wrapper)
// lives in inspector/php; nothing in this package imports it.
type Node interface {
	Kind() string
	Line() int
	Content() []byte
	Children() []Node
	ChildByField(name string) Node
}
