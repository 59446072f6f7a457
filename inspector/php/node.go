// Package php adapts the tree-sitter PHP grammar to the analyzer's parser
// contract and builds the Pass 1 definition index from a parsed file.
package php

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/pxp-lang/statan/analyzer"
)

// Node adapts a tree-sitter node to analyzer.Node.
type Node struct {
	n   *sitter.Node
	src []byte
}

func wrap(n *sitter.Node, src []byte) analyzer.Node {
	if n == nil {
		return nil
	}
	return &Node{n: n, src: src}
}

func (n *Node) Kind() string { return n.n.Type() }

func (n *Node) Line() int { return int(n.n.StartPoint().Row) + 1 }

func (n *Node) Content() []byte { return n.n.Content(n.src) }

func (n *Node) Children() []analyzer.Node {
	count := int(n.n.NamedChildCount())
	if count == 0 {
		return nil
	}
	out := make([]analyzer.Node, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, wrap(n.n.NamedChild(i), n.src))
	}
	return out
}

func (n *Node) ChildByField(name string) analyzer.Node {
	return wrap(n.n.ChildByFieldName(name), n.src)
}
