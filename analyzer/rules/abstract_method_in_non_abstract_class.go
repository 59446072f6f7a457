package rules

import (
	"github.com/pxp-lang/statan/analyzer"
	"github.com/pxp-lang/statan/analyzer/definitions"
)

// AbstractMethodInNonAbstractClassRule flags an abstract method declared
// inside a class that is not itself declared abstract.
type AbstractMethodInNonAbstractClassRule struct{}

func (AbstractMethodInNonAbstractClassRule) ShouldRun(node analyzer.Node) bool {
	return node.Kind() == "method_declaration" && node.ChildByField("body") == nil
}

func (AbstractMethodInNonAbstractClassRule) Run(node analyzer.Node, index *definitions.Collection, sink *analyzer.Sink, ctx *analyzer.Context) {
	if !ctx.IsInClass() {
		return
	}

	class := index.GetClass(ctx.ClassScope(), ctx)
	if class == nil {
		// Interfaces, traits, and enums may declare bodyless methods too.
		return
	}
	if class.IsAbstract() {
		return
	}

	nameNode := node.ChildByField("name")
	if nameNode == nil {
		return
	}

	method := class.GetMethod(nameNode.Content(), index)
	if method == nil || !method.IsAbstract() {
		return
	}

	sink.Errorf(node.Line(), "Non-abstract class %s contains abstract method %s", class.CanonicalName, method.Name)
}
