package rules

import (
	"github.com/pxp-lang/statan/analyzer"
	"github.com/pxp-lang/statan/analyzer/definitions"
)

// FunctionDefinitionRule warns about declaration-site smells on a top-level
// function: untyped parameters, parameters typed void/never, a null default
// against a non-nullable declared type, and a missing return type.
type FunctionDefinitionRule struct{}

func (FunctionDefinitionRule) ShouldRun(node analyzer.Node) bool {
	return node.Kind() == "function_definition"
}

func (FunctionDefinitionRule) Run(node analyzer.Node, index *definitions.Collection, sink *analyzer.Sink, ctx *analyzer.Context) {
	nameNode := node.ChildByField("name")
	var functionName []byte
	if nameNode != nil {
		functionName = nameNode.Content()
	}

	if params := node.ChildByField("parameters"); params != nil {
		for _, param := range params.Children() {
			checkParameter(param, sink, ctx)
		}
	}

	if node.ChildByField("return_type") == nil {
		sink.Warningf(node.Line(), "Function %s has no return type.", functionName)
	}
}

func checkParameter(param analyzer.Node, sink *analyzer.Sink, ctx *analyzer.Context) {
	nameNode := param.ChildByField("name")
	if nameNode == nil {
		return
	}
	paramName := nameNode.Content()

	typeNode := param.ChildByField("type")
	if typeNode == nil {
		sink.Warningf(param.Line(), "Parameter %s has no type.", paramName)
		return
	}

	declared := analyzer.MapType(typeNode, ctx)
	switch declared.Kind {
	case definitions.KVoid:
		sink.Warningf(param.Line(), "Parameter %s has invalid type void.", paramName)
	case definitions.KNever:
		sink.Warningf(param.Line(), "Parameter %s has invalid type never.", paramName)
	}

	if def := param.ChildByField("default"); def != nil && def.Kind() == "null" {
		nullable := declared.Kind == definitions.KNullable || declared.Kind == definitions.KNull || declared.Kind == definitions.KMixed
		if !nullable {
			sink.Warningf(param.Line(), "Parameter %s has a null default but a non-nullable declared type.", paramName)
		}
	}
}
