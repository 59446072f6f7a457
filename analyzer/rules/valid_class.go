package rules

import (
	"fmt"

	"github.com/pxp-lang/statan/analyzer"
	"github.com/pxp-lang/statan/analyzer/definitions"
)

// ValidClassRule checks that `new Target(...)` names a known, instantiable
// class and passes a valid argument list to its constructor.
type ValidClassRule struct{}

func (ValidClassRule) ShouldRun(node analyzer.Node) bool {
	return node.Kind() == "object_creation_expression"
}

func (ValidClassRule) Run(node analyzer.Node, index *definitions.Collection, sink *analyzer.Sink, ctx *analyzer.Context) {
	target := node.ChildByField("class")
	if target == nil || (target.Kind() != "name" && target.Kind() != "qualified_name") {
		return
	}

	class := index.GetClass(target.Content(), ctx)
	if class == nil {
		// TODO: suppress when the surrounding code checks class_exists() first.
		sink.Errorf(node.Line(), "Class `%s` not found", ctx.ResolveName(target.Content()))
		return
	}

	if class.IsAbstract() {
		sink.Errorf(node.Line(), "Cannot instantiate abstract class `%s`", class.CanonicalName)
		return
	}

	ctor := class.GetMethod([]byte("__construct"), index)
	if ctor == nil {
		return
	}
	subject := fmt.Sprintf("Class `%s`", class.CanonicalName)
	checkArguments(node.ChildByField("arguments"), ctor.Parameters, subject, sink, ctx, index, node.Line())
}
