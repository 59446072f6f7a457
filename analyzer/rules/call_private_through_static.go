package rules

import (
	"github.com/pxp-lang/statan/analyzer"
	"github.com/pxp-lang/statan/analyzer/definitions"
)

// CallPrivateThroughStaticRule flags static::method() calls to a private
// method from a non-final class, where late static binding could resolve
// method to a different class than the one that declared it private.
type CallPrivateThroughStaticRule struct{}

func (CallPrivateThroughStaticRule) ShouldRun(node analyzer.Node) bool {
	return node.Kind() == "scoped_call_expression"
}

func (CallPrivateThroughStaticRule) Run(node analyzer.Node, index *definitions.Collection, sink *analyzer.Sink, ctx *analyzer.Context) {
	if !ctx.IsInClass() {
		return
	}

	scopeNode := node.ChildByField("scope")
	if scopeNode == nil || scopeNode.Kind() != "name" || string(scopeNode.Content()) != "static" {
		return
	}

	nameNode := node.ChildByField("name")
	if nameNode == nil {
		return
	}
	methodName := nameNode.Content()

	class := index.GetClass(ctx.ClassScope(), ctx)
	if class == nil || class.IsFinal() {
		return
	}

	method := class.GetMethod(methodName, index)
	if method == nil || method.Visibility != definitions.Private {
		return
	}

	sink.Errorf(node.Line(), "Unsafe call to private method %s::%s() on static::", class.CanonicalName, methodName)
}
