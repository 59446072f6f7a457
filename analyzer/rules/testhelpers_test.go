package rules_test

import "github.com/pxp-lang/statan/analyzer"

// fakeNode is a hand-built analyzer.Node, mirroring the one in the analyzer
// package's own tests — rule tests live in a separate package and need their
// own copy since analyzer_test's is unexported.
type fakeNode struct {
	kind     string
	line     int
	content  []byte
	children []analyzer.Node
	fields   map[string]analyzer.Node
}

func node(kind string, opts ...func(*fakeNode)) *fakeNode {
	n := &fakeNode{kind: kind, line: 1, fields: map[string]analyzer.Node{}}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func withLine(l int) func(*fakeNode)       { return func(n *fakeNode) { n.line = l } }
func withContent(c string) func(*fakeNode) { return func(n *fakeNode) { n.content = []byte(c) } }
func withChildren(children ...analyzer.Node) func(*fakeNode) {
	return func(n *fakeNode) { n.children = children }
}
func withField(name string, child analyzer.Node) func(*fakeNode) {
	return func(n *fakeNode) { n.fields[name] = child }
}

func (n *fakeNode) Kind() string    { return n.kind }
func (n *fakeNode) Line() int       { return n.line }
func (n *fakeNode) Content() []byte { return n.content }
func (n *fakeNode) Children() []analyzer.Node {
	return n.children
}
func (n *fakeNode) ChildByField(name string) analyzer.Node {
	if n == nil {
		return nil
	}
	return n.fields[name]
}
