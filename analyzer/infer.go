package analyzer

import (
	"bytes"

	"github.com/pxp-lang/statan/analyzer/definitions"
)

// magicConstants maps the source language's compile-time magic constants to
// their inferred type. __LINE__ is the only integer-valued one.
var magicConstants = map[string]definitions.Type{
	"__LINE__":      definitions.Int,
	"__FILE__":      definitions.String,
	"__DIR__":       definitions.String,
	"__FUNCTION__":  definitions.String,
	"__CLASS__":     definitions.String,
	"__METHOD__":    definitions.String,
	"__NAMESPACE__": definitions.String,
	"__TRAIT__":     definitions.String,
}

// TypeOf is the expression type inferencer: type_of(expr, context, index).
// It is total — every node kind it does not specifically recognize falls
// through to Mixed, the conservative upper bound.
func TypeOf(expr Node, ctx *Context, index *definitions.Collection) definitions.Type {
	if expr == nil {
		return definitions.Mixed
	}

	switch expr.Kind() {
	case "integer":
		return definitions.Int
	case "float":
		return definitions.Float
	case "string", "encapsed_string", "heredoc", "nowdoc":
		return definitions.String
	case "boolean":
		return definitions.Bool
	case "null":
		return definitions.Null

	case "variable_name":
		if t, ok := ctx.GetVariableType(expr.Content()); ok {
			return t
		}
		return definitions.Mixed

	case "function_call_expression":
		target := expr.ChildByField("function")
		if target != nil && target.Kind() == "name" {
			if fn := index.GetFunction(target.Content(), ctx); fn != nil {
				if fn.ReturnType != nil {
					return *fn.ReturnType
				}
			}
		}
		return definitions.Mixed

	case "object_creation_expression":
		target := expr.ChildByField("class")
		if target != nil && target.Kind() == "name" {
			if class := index.GetClass(target.Content(), ctx); class != nil {
				return definitions.NamedType(class.CanonicalName)
			}
		}
		return definitions.Object

	case "binary_expression":
		return typeOfBinary(expr, ctx, index)

	case "unary_op_expression":
		if op := expr.ChildByField("operator"); op != nil && string(op.Content()) == "!" {
			return definitions.Bool
		}
		return typeOfUnaryArithmetic(expr.ChildByField("operator"), expr.ChildByField("operand"), ctx, index)

	case "increment_expression", "decrement_expression":
		return typeOfIncDec(TypeOf(operandOf(expr), ctx, index))

	case "clone_expression", "parenthesized_expression", "error_suppression_expression", "reference_assignment_expression":
		return TypeOf(firstNamedChild(expr), ctx, index)

	case "array_creation_expression":
		return definitions.Array

	case "anonymous_function_creation_expression", "arrow_function":
		if rt := expr.ChildByField("return_type"); rt != nil {
			t := MapType(rt, ctx)
			return t
		}
		return definitions.Mixed

	case "match_expression":
		return typeOfMatch(expr, ctx, index)

	case "exit_statement", "throw_expression":
		return definitions.Never

	case "unset_statement":
		return definitions.Void

	case "print_intrinsic":
		return definitions.Int

	case "empty_intrinsic", "isset_variable":
		return definitions.Bool

	case "name", "qualified_name":
		if t, ok := magicConstants[string(expr.Content())]; ok {
			return t
		}
		return definitions.Mixed

	default:
		return definitions.Mixed
	}
}

// boolOperators (logical and comparison operators) produce Bool; "<=>" (spaceship) is the one
// comparison operator that produces Int instead.
var boolOperators = map[string]bool{
	"&&": true, "||": true, "and": true, "or": true, "xor": true,
	"instanceof": true,
	"==": true, "===": true, "!=": true, "<>": true, "!==": true,
	"<": true, ">": true, "<=": true, ">=": true,
}

func typeOfBinary(expr Node, ctx *Context, index *definitions.Collection) definitions.Type {
	opNode := expr.ChildByField("operator")
	op := ""
	if opNode != nil {
		op = string(opNode.Content())
	}

	if op == "<=>" {
		return definitions.Int
	}
	if boolOperators[op] {
		return definitions.Bool
	}
	if op == "." {
		return definitions.String
	}

	left := TypeOf(expr.ChildByField("left"), ctx, index)
	right := TypeOf(expr.ChildByField("right"), ctx, index)

	switch op {
	case "+":
		switch {
		case isNumeric(left, right) && (left.Kind == definitions.KFloat || right.Kind == definitions.KFloat):
			return definitions.Float
		case left.Kind == definitions.KInt && right.Kind == definitions.KInt:
			return definitions.Int
		case left.Kind == definitions.KArray && right.Kind == definitions.KArray:
			return definitions.Array
		default:
			return definitions.ErrorType()
		}
	case "-", "*":
		switch {
		case isNumeric(left, right) && (left.Kind == definitions.KFloat || right.Kind == definitions.KFloat):
			return definitions.Float
		case left.Kind == definitions.KInt && right.Kind == definitions.KInt:
			return definitions.Int
		default:
			return definitions.ErrorType()
		}
	case "/", "**":
		if isNumeric(left, right) {
			return definitions.UnionOf(definitions.Float, definitions.Int)
		}
		return definitions.ErrorType()
	case "%":
		if isNumeric(left, right) {
			return definitions.Int
		}
		return definitions.ErrorType()
	default:
		return definitions.Mixed
	}
}

func isNumeric(t ...definitions.Type) bool {
	for _, ty := range t {
		if ty.Kind != definitions.KInt && ty.Kind != definitions.KFloat {
			return false
		}
	}
	return true
}

func typeOfUnaryArithmetic(opNode, operandNode Node, ctx *Context, index *definitions.Collection) definitions.Type {
	op := ""
	if opNode != nil {
		op = string(opNode.Content())
	}
	if op != "+" && op != "-" {
		return definitions.Mixed
	}
	operand := TypeOf(operandNode, ctx, index)
	switch operand.Kind {
	case definitions.KFloat:
		return definitions.Float
	case definitions.KInt:
		return definitions.Int
	default:
		return definitions.ErrorType()
	}
}

func typeOfIncDec(operand definitions.Type) definitions.Type {
	switch operand.Kind {
	case definitions.KFloat, definitions.KInt, definitions.KString:
		return operand
	default:
		return definitions.ErrorType()
	}
}

func typeOfMatch(expr Node, ctx *Context, index *definitions.Collection) definitions.Type {
	var members []definitions.Type
	for _, arm := range expr.Children() {
		if arm.Kind() != "match_arm" && arm.Kind() != "match_default_arm" {
			continue
		}
		t := TypeOf(arm.ChildByField("body"), ctx, index)
		duplicate := false
		for _, m := range members {
			if m.Equal(t) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			members = append(members, t)
		}
	}
	if len(members) == 0 {
		return definitions.Mixed
	}
	if len(members) == 1 {
		return members[0]
	}
	return definitions.UnionOf(members...)
}

func operandOf(expr Node) Node {
	if op := expr.ChildByField("operand"); op != nil {
		return op
	}
	return firstNamedChild(expr)
}

func firstNamedChild(n Node) Node {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// MapType translates parser-level type syntax into lattice types. Named
// types are resolved through ctx to become canonical.
func MapType(node Node, ctx *Context) definitions.Type {
	if node == nil {
		return definitions.Mixed
	}

	switch node.Kind() {
	case "optional_type":
		return definitions.NullableOf(MapType(firstNamedChild(node), ctx))
	case "union_type":
		return definitions.UnionOf(mapTypeList(node, ctx)...)
	case "intersection_type":
		return definitions.IntersectionOf(mapTypeList(node, ctx)...)
	case "primitive_type":
		return mapPrimitive(node.Content())
	case "named_type", "name", "qualified_name":
		name := node.Content()
		switch string(name) {
		case "static":
			return definitions.StaticType
		case "self":
			return definitions.SelfRef
		case "parent":
			return definitions.ParentRef
		default:
			return definitions.NamedType(ctx.ResolveName(name))
		}
	default:
		return mapPrimitive(node.Content())
	}
}

func mapTypeList(node Node, ctx *Context) []definitions.Type {
	var out []definitions.Type
	for _, child := range node.Children() {
		out = append(out, MapType(child, ctx))
	}
	return out
}

func mapPrimitive(raw []byte) definitions.Type {
	switch string(bytes.ToLower(raw)) {
	case "int", "integer":
		return definitions.Int
	case "float", "double":
		return definitions.Float
	case "string":
		return definitions.String
	case "bool", "boolean":
		return definitions.Bool
	case "array":
		return definitions.Array
	case "object":
		return definitions.Object
	case "void":
		return definitions.Void
	case "false":
		return definitions.False
	case "true":
		return definitions.True
	case "null":
		return definitions.Null
	case "callable":
		return definitions.Callable
	case "iterable":
		return definitions.Iterable
	case "never":
		return definitions.Never
	case "mixed":
		return definitions.Mixed
	default:
		return definitions.Mixed
	}
}
