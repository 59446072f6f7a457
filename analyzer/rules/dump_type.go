package rules

import (
	"bytes"

	"github.com/pxp-lang/statan/analyzer"
	"github.com/pxp-lang/statan/analyzer/definitions"
)

var dumpTypeFunction = []byte("\\Statan\\dumpType")

// DumpTypeRule is the diagnostic escape hatch: a call to the special
// \Statan\dumpType(expr) function reports expr's inferred type as a note.
type DumpTypeRule struct{}

func (DumpTypeRule) ShouldRun(node analyzer.Node) bool {
	return node.Kind() == "function_call_expression"
}

func (DumpTypeRule) Run(node analyzer.Node, index *definitions.Collection, sink *analyzer.Sink, ctx *analyzer.Context) {
	target := node.ChildByField("function")
	if target == nil || (target.Kind() != "name" && target.Kind() != "qualified_name") {
		return
	}
	if !bytes.Equal(ctx.ResolveName(target.Content()), dumpTypeFunction) {
		return
	}

	argsNode := node.ChildByField("arguments")
	var args []analyzer.Node
	if argsNode != nil {
		args = argsNode.Children()
	}
	line := node.Line()
	if argsNode != nil {
		line = argsNode.Line()
	}

	if len(args) == 0 {
		sink.Errorf(line, "dumpType() requires an argument")
		return
	}

	first := args[0]
	if first.ChildByField("name") != nil {
		sink.Errorf(line, "dumpType() does not support named arguments")
		return
	}

	value := first.ChildByField("value")
	if value == nil {
		value = first
	}

	ty := analyzer.TypeOf(value, ctx, index)
	sink.Notef(line, "Dumped type: %s", ty)
}
