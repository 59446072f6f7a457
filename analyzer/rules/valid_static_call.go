package rules

import (
	"fmt"

	"github.com/pxp-lang/statan/analyzer"
	"github.com/pxp-lang/statan/analyzer/definitions"
)

// ValidStaticCallRule checks Target::method(...) calls: that the target
// class and method both exist, that the method is actually static and
// concrete, that it is visible from the call site, and that the call's
// arguments match.
type ValidStaticCallRule struct{}

func (ValidStaticCallRule) ShouldRun(node analyzer.Node) bool {
	return node.Kind() == "scoped_call_expression"
}

func (ValidStaticCallRule) Run(node analyzer.Node, index *definitions.Collection, sink *analyzer.Sink, ctx *analyzer.Context) {
	scopeNode := node.ChildByField("scope")
	nameNode := node.ChildByField("name")
	if scopeNode == nil || nameNode == nil {
		return
	}
	methodName := nameNode.Content()

	className, ok := resolveScope(scopeNode, ctx, index, sink, node.Line())
	if !ok {
		return
	}

	class := index.GetClassByCanonical(className)
	if class == nil {
		sink.Errorf(node.Line(), "Call to static method %s() on an unknown class %s", methodName, className)
		return
	}

	definingClass := class
	method := class.GetMethod(methodName, index)
	if method == nil {
		if owner, inherited := class.GetInheritedMethod(methodName, index); inherited != nil {
			method = inherited
			definingClass = index.GetClassByCanonical(owner)
		}
	}

	if method == nil {
		if class.HasCallStatic(index) {
			return
		}
		sink.Errorf(node.Line(), "Call to undefined static method %s::%s()", className, methodName)
		return
	}

	if !method.IsStatic() {
		sink.Errorf(node.Line(), "Static call to instance method %s::%s()", className, methodName)
		return
	}
	if method.IsAbstract() {
		sink.Errorf(node.Line(), "Cannot call abstract static method %s::%s()", className, methodName)
		return
	}

	if !visibilityAllowed(method, definingClass, ctx, index) {
		sink.Errorf(node.Line(), "Call to %s static method %s::%s()", method.Visibility, className, methodName)
		return
	}

	subject := fmt.Sprintf("Static method %s::%s()", className, methodName)
	checkArguments(node.ChildByField("arguments"), method.Parameters, subject, sink, ctx, index, node.Line())
}
