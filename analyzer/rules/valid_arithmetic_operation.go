package rules

import (
	"github.com/pxp-lang/statan/analyzer"
	"github.com/pxp-lang/statan/analyzer/definitions"
)

var arithmeticBinaryOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true, "**": true,
}

// ValidArithmeticOperationRule flags arithmetic whose inferred type is the
// Error sentinel, naming the operator and each operand's inferred type.
type ValidArithmeticOperationRule struct{}

func (ValidArithmeticOperationRule) ShouldRun(node analyzer.Node) bool {
	switch node.Kind() {
	case "binary_expression", "unary_op_expression", "increment_expression", "decrement_expression":
		return true
	default:
		return false
	}
}

func (ValidArithmeticOperationRule) Run(node analyzer.Node, index *definitions.Collection, sink *analyzer.Sink, ctx *analyzer.Context) {
	switch node.Kind() {
	case "binary_expression":
		runBinary(node, index, sink, ctx)
	case "unary_op_expression":
		runUnary(node, index, sink, ctx)
	case "increment_expression":
		runIncDec(node, index, sink, ctx, "++")
	case "decrement_expression":
		runIncDec(node, index, sink, ctx, "--")
	}
}

func runBinary(node analyzer.Node, index *definitions.Collection, sink *analyzer.Sink, ctx *analyzer.Context) {
	opNode := node.ChildByField("operator")
	if opNode == nil {
		return
	}
	op := string(opNode.Content())
	if !arithmeticBinaryOps[op] {
		return
	}

	if analyzer.TypeOf(node, ctx, index).Kind != definitions.KError {
		return
	}

	left := analyzer.TypeOf(node.ChildByField("left"), ctx, index)
	right := analyzer.TypeOf(node.ChildByField("right"), ctx, index)
	sink.Errorf(node.Line(), "Arithmetic operation %s between %s and %s is invalid", op, left, right)
}

func runUnary(node analyzer.Node, index *definitions.Collection, sink *analyzer.Sink, ctx *analyzer.Context) {
	opNode := node.ChildByField("operator")
	if opNode == nil {
		return
	}
	op := string(opNode.Content())
	if op != "+" && op != "-" {
		return
	}

	if analyzer.TypeOf(node, ctx, index).Kind != definitions.KError {
		return
	}

	operand := analyzer.TypeOf(node.ChildByField("operand"), ctx, index)
	sink.Errorf(node.Line(), "Arithmetic operation %s%s is invalid", op, operand)
}

func runIncDec(node analyzer.Node, index *definitions.Collection, sink *analyzer.Sink, ctx *analyzer.Context, op string) {
	if analyzer.TypeOf(node, ctx, index).Kind != definitions.KError {
		return
	}
	operand := analyzer.TypeOf(operandNode(node), ctx, index)
	sink.Errorf(node.Line(), "Arithmetic operation %s%s is invalid", op, operand)
}

func operandNode(node analyzer.Node) analyzer.Node {
	if op := node.ChildByField("operand"); op != nil {
		return op
	}
	children := node.Children()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}
