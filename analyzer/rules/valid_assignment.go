package rules

import (
	"github.com/pxp-lang/statan/analyzer"
	"github.com/pxp-lang/statan/analyzer/definitions"
)

// ValidAssignmentRule tracks a plain `$x = expr` assignment's inferred type
// into the context, and warns when the assigned value is void — whether
// because the right-hand expression itself is void-typed, or because it's a
// direct call to a function declared to return void.
type ValidAssignmentRule struct{}

func (ValidAssignmentRule) ShouldRun(node analyzer.Node) bool {
	return node.Kind() == "assignment_expression"
}

func (ValidAssignmentRule) Run(node analyzer.Node, index *definitions.Collection, sink *analyzer.Sink, ctx *analyzer.Context) {
	if op := node.ChildByField("operator"); op != nil && string(op.Content()) != "=" {
		return
	}

	left := node.ChildByField("left")
	if left == nil || left.Kind() != "variable_name" {
		return
	}
	variableName := left.Content()

	right := node.ChildByField("right")
	valueType := analyzer.TypeOf(right, ctx, index)

	if valueType.Kind == definitions.KVoid {
		sink.Warningf(node.Line(), "Assignment of void to variable %s", variableName)
	}

	ctx.SetVariable(variableName, valueType)

	// TODO: support assigning to array and object member targets.
}
