package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pxp-lang/statan/analyzer"
	"github.com/pxp-lang/statan/analyzer/definitions"
	"github.com/pxp-lang/statan/analyzer/rules"
)

func argument(value analyzer.Node) analyzer.Node {
	return node("argument", withField("value", value))
}

func namedArgument(name string, value analyzer.Node) analyzer.Node {
	return node("argument", withField("name", node("name", withContent(name))), withField("value", value))
}

func TestValidFunctionRule_UnknownFunction(t *testing.T) {
	index := definitions.NewCollection()
	ctx := analyzer.NewContext()
	sink := analyzer.NewSink("f.php")

	call := node("function_call_expression",
		withLine(3),
		withField("function", node("name", withContent("foo"))),
		withField("arguments", node("arguments")),
	)

	rules.ValidFunctionRule{}.Run(call, index, sink, ctx)

	assert.Len(t, sink.Diagnostics(), 1)
	assert.Equal(t, analyzer.Error, sink.Diagnostics()[0].Severity)
	assert.Contains(t, sink.Diagnostics()[0].Message, "foo")
}

func TestValidFunctionRule_ArityMismatch(t *testing.T) {
	index := definitions.NewCollection()
	index.AddFunction(definitions.FunctionDefinition{
		CanonicalName: []byte(`\bar`),
		Parameters: []definitions.Parameter{
			{Name: []byte("$a")},
			{Name: []byte("$b")},
		},
	})
	ctx := analyzer.NewContext()
	sink := analyzer.NewSink("f.php")

	call := node("function_call_expression",
		withField("function", node("name", withContent("bar"))),
		withField("arguments", node("arguments", withChildren(argument(node("integer"))))),
	)

	rules.ValidFunctionRule{}.Run(call, index, sink, ctx)

	assert.Len(t, sink.Diagnostics(), 1)
	assert.Contains(t, sink.Diagnostics()[0].Message, "requires 2 arguments, 1 given")
}

func TestValidFunctionRule_TypeMismatch(t *testing.T) {
	intType := definitions.Int
	index := definitions.NewCollection()
	index.AddFunction(definitions.FunctionDefinition{
		CanonicalName: []byte(`\bar`),
		Parameters: []definitions.Parameter{
			{Name: []byte("$a"), DeclaredType: &intType},
		},
	})
	ctx := analyzer.NewContext()
	sink := analyzer.NewSink("f.php")

	call := node("function_call_expression",
		withField("function", node("name", withContent("bar"))),
		withField("arguments", node("arguments", withChildren(argument(node("string"))))),
	)

	rules.ValidFunctionRule{}.Run(call, index, sink, ctx)

	assert.Len(t, sink.Diagnostics(), 1)
	assert.Contains(t, sink.Diagnostics()[0].Message, "must be of type int, string given")
}

func TestValidFunctionRule_NamedArgumentUnknown(t *testing.T) {
	index := definitions.NewCollection()
	index.AddFunction(definitions.FunctionDefinition{
		CanonicalName: []byte(`\bar`),
		Parameters: []definitions.Parameter{
			{Name: []byte("$a")},
		},
	})
	ctx := analyzer.NewContext()
	sink := analyzer.NewSink("f.php")

	call := node("function_call_expression",
		withField("function", node("name", withContent("bar"))),
		withField("arguments", node("arguments", withChildren(namedArgument("nope", node("integer"))))),
	)

	rules.ValidFunctionRule{}.Run(call, index, sink, ctx)

	assert.Len(t, sink.Diagnostics(), 1)
	assert.Contains(t, sink.Diagnostics()[0].Message, "Unknown named argument")
}

func TestValidFunctionRule_ValidCall(t *testing.T) {
	index := definitions.NewCollection()
	index.AddFunction(definitions.FunctionDefinition{
		CanonicalName: []byte(`\bar`),
		Parameters: []definitions.Parameter{
			{Name: []byte("$a")},
		},
	})
	ctx := analyzer.NewContext()
	sink := analyzer.NewSink("f.php")

	call := node("function_call_expression",
		withField("function", node("name", withContent("bar"))),
		withField("arguments", node("arguments", withChildren(argument(node("integer"))))),
	)

	rules.ValidFunctionRule{}.Run(call, index, sink, ctx)

	assert.Empty(t, sink.Diagnostics())
}

func TestValidClassRule_AbstractInstantiation(t *testing.T) {
	index := definitions.NewCollection()
	index.AddClass(definitions.ClassDefinition{
		CanonicalName: []byte(`\Shape`),
		Modifiers:     definitions.ModifierSet{definitions.Abstract},
	})
	ctx := analyzer.NewContext()
	sink := analyzer.NewSink("f.php")

	call := node("object_creation_expression",
		withField("class", node("name", withContent("Shape"))),
	)

	rules.ValidClassRule{}.Run(call, index, sink, ctx)

	assert.Len(t, sink.Diagnostics(), 1)
	assert.Contains(t, sink.Diagnostics()[0].Message, "abstract")
}

func TestValidClassRule_UnknownClass(t *testing.T) {
	index := definitions.NewCollection()
	ctx := analyzer.NewContext()
	sink := analyzer.NewSink("f.php")

	call := node("object_creation_expression",
		withField("class", node("name", withContent("Missing"))),
	)

	rules.ValidClassRule{}.Run(call, index, sink, ctx)

	assert.Len(t, sink.Diagnostics(), 1)
	assert.Contains(t, sink.Diagnostics()[0].Message, "not found")
}

func TestDumpTypeRule_ReportsInferredType(t *testing.T) {
	index := definitions.NewCollection()
	ctx := analyzer.NewContext()
	sink := analyzer.NewSink("f.php")

	call := node("function_call_expression",
		withLine(9),
		withField("function", node("name", withContent(`\Statan\dumpType`))),
		withField("arguments", node("arguments", withChildren(argument(node("integer"))))),
	)

	rules.DumpTypeRule{}.Run(call, index, sink, ctx)

	assert.Len(t, sink.Diagnostics(), 1)
	assert.Equal(t, analyzer.Note, sink.Diagnostics()[0].Severity)
	assert.Contains(t, sink.Diagnostics()[0].Message, "Dumped type: int")
}

func TestDumpTypeRule_IgnoresOtherCalls(t *testing.T) {
	index := definitions.NewCollection()
	ctx := analyzer.NewContext()
	sink := analyzer.NewSink("f.php")

	call := node("function_call_expression",
		withField("function", node("name", withContent("strlen"))),
		withField("arguments", node("arguments", withChildren(argument(node("string"))))),
	)

	rules.DumpTypeRule{}.Run(call, index, sink, ctx)

	assert.Empty(t, sink.Diagnostics())
}

func TestValidArithmeticOperationRule_InvalidOperands(t *testing.T) {
	index := definitions.NewCollection()
	ctx := analyzer.NewContext()
	sink := analyzer.NewSink("f.php")

	expr := node("binary_expression",
		withLine(5),
		withField("operator", node("op", withContent("-"))),
		withField("left", node("string")),
		withField("right", node("integer")),
	)

	rules.ValidArithmeticOperationRule{}.Run(expr, index, sink, ctx)

	assert.Len(t, sink.Diagnostics(), 1)
	assert.Contains(t, sink.Diagnostics()[0].Message, "Arithmetic operation - between string and int is invalid")
}

func TestValidArithmeticOperationRule_ValidOperands(t *testing.T) {
	index := definitions.NewCollection()
	ctx := analyzer.NewContext()
	sink := analyzer.NewSink("f.php")

	expr := node("binary_expression",
		withField("operator", node("op", withContent("+"))),
		withField("left", node("integer")),
		withField("right", node("integer")),
	)

	rules.ValidArithmeticOperationRule{}.Run(expr, index, sink, ctx)

	assert.Empty(t, sink.Diagnostics())
}
