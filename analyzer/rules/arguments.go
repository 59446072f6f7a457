package rules

import (
	"bytes"

	"github.com/pxp-lang/statan/analyzer"
	"github.com/pxp-lang/statan/analyzer/definitions"
)

// checkArguments applies the arity, named-argument, and declared-type checks
// shared by the function-call, static-call, and $this-call rules against one
// call's argument list. subject is a pre-formatted label for messages, e.g.
// "Function `bar`" or "Static method C::m()".
func checkArguments(argsNode analyzer.Node, params []definitions.Parameter, subject string, sink *analyzer.Sink, ctx *analyzer.Context, index *definitions.Collection, line int) {
	minArity := definitions.MinArity(params)
	maxArity := definitions.MaxArity(params)

	var args []analyzer.Node
	if argsNode != nil {
		args = argsNode.Children()
	}

	positional := 0
	seenNamed := false

	for i, arg := range args {
		nameNode := arg.ChildByField("name")
		valueNode := arg.ChildByField("value")
		if valueNode == nil {
			valueNode = arg
		}

		if nameNode == nil {
			if seenNamed {
				sink.Errorf(line, "Positional argument after named argument in call to %s", subject)
				continue
			}
			positional++

			param := paramAt(params, i, maxArity)
			if param != nil && param.DeclaredType != nil {
				actual := analyzer.TypeOf(valueNode, ctx, index)
				if !param.DeclaredType.Compatible(actual) {
					sink.Errorf(line, "Argument %d passed to %s must be of type %s, %s given", i+1, subject, param.DeclaredType, actual)
				}
			}
			continue
		}

		seenNamed = true
		param := paramNamed(params, nameNode.Content())
		if param == nil {
			sink.Errorf(line, "Unknown named argument $%s in call to %s", nameNode.Content(), subject)
			continue
		}
		if param.DeclaredType != nil {
			actual := analyzer.TypeOf(valueNode, ctx, index)
			if !param.DeclaredType.Compatible(actual) {
				sink.Errorf(line, "Argument $%s passed to %s must be of type %s, %s given", nameNode.Content(), subject, param.DeclaredType, actual)
			}
		}
	}

	if positional < minArity || (maxArity != -1 && positional > maxArity) {
		sink.Errorf(line, "%s requires %d arguments, %d given", subject, minArity, positional)
	}
}

func paramAt(params []definitions.Parameter, i, maxArity int) *definitions.Parameter {
	switch {
	case i < len(params):
		return &params[i]
	case maxArity == -1 && len(params) > 0:
		return &params[len(params)-1]
	default:
		return nil
	}
}

func paramNamed(params []definitions.Parameter, name []byte) *definitions.Parameter {
	for i := range params {
		if bytes.Equal(bytes.TrimPrefix(params[i].Name, []byte("$")), name) {
			return &params[i]
		}
	}
	return nil
}
