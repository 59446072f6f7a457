package rules

import (
	"bytes"
	"fmt"

	"github.com/pxp-lang/statan/analyzer"
	"github.com/pxp-lang/statan/analyzer/definitions"
)

// ValidThisCallRule checks $this->method(...) calls from inside a class
// body: the class context must exist, the method must be reachable (own,
// inherited, or via __call), and private methods may only be called from
// their own defining class.
type ValidThisCallRule struct{}

func (ValidThisCallRule) ShouldRun(node analyzer.Node) bool {
	return node.Kind() == "member_call_expression"
}

func (ValidThisCallRule) Run(node analyzer.Node, index *definitions.Collection, sink *analyzer.Sink, ctx *analyzer.Context) {
	object := node.ChildByField("object")
	if object == nil || object.Kind() != "variable_name" || !bytes.Equal(object.Content(), []byte("$this")) {
		return
	}

	nameNode := node.ChildByField("name")
	if nameNode == nil || (nameNode.Kind() != "name" && nameNode.Kind() != "variable_name") {
		return
	}
	methodName := nameNode.Content()

	if !ctx.IsInClass() {
		sink.Errorf(node.Line(), "Calling $this->%s() outside of class context", methodName)
		return
	}

	class := index.GetClass(ctx.ClassScope(), ctx)
	if class == nil {
		return
	}

	definingClass := class
	method := class.GetMethod(methodName, index)
	inherited := false
	if method == nil {
		if owner, m := class.GetInheritedMethod(methodName, index); m != nil {
			method = m
			definingClass = index.GetClassByCanonical(owner)
			inherited = true
		}
	}

	if method == nil {
		if class.HasCall(index) {
			return
		}
		// TODO: honor an @method docblock tag once docblocks are parsed.
		sink.Errorf(node.Line(), "Call to undefined method $this->%s() on %s", methodName, class.CanonicalName)
		return
	}

	sameClass := !inherited && bytes.Equal(class.CanonicalName, definingClass.CanonicalName)
	if method.Visibility != definitions.Public && !sameClass && method.Visibility == definitions.Private {
		sink.Errorf(node.Line(), "Call to private method $this->%s()", methodName)
		return
	}

	subject := fmt.Sprintf("Method $this->%s()", methodName)
	checkArguments(node.ChildByField("arguments"), method.Parameters, subject, sink, ctx, index, node.Line())
}
