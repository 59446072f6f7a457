package rules

import (
	"fmt"

	"github.com/pxp-lang/statan/analyzer"
	"github.com/pxp-lang/statan/analyzer/definitions"
)

// ValidFunctionRule checks that a call targets a known function, with the
// right number and types of arguments.
type ValidFunctionRule struct{}

func (ValidFunctionRule) ShouldRun(node analyzer.Node) bool {
	return node.Kind() == "function_call_expression"
}

func (ValidFunctionRule) Run(node analyzer.Node, index *definitions.Collection, sink *analyzer.Sink, ctx *analyzer.Context) {
	target := node.ChildByField("function")
	if target == nil || (target.Kind() != "name" && target.Kind() != "qualified_name") {
		return
	}

	fn := index.GetFunction(target.Content(), ctx)
	if fn == nil {
		sink.Errorf(node.Line(), "Function `%s` not found", target.Content())
		return
	}

	subject := fmt.Sprintf("Function `%s`", target.Content())
	checkArguments(node.ChildByField("arguments"), fn.Parameters, subject, sink, ctx, index, node.Line())
}
