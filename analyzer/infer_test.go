package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pxp-lang/statan/analyzer"
	"github.com/pxp-lang/statan/analyzer/definitions"
)

func TestTypeOf_Literals(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()

	cases := []struct {
		kind string
		want definitions.Type
	}{
		{"integer", definitions.Int},
		{"float", definitions.Float},
		{"string", definitions.String},
		{"encapsed_string", definitions.String},
		{"heredoc", definitions.String},
		{"boolean", definitions.Bool},
		{"null", definitions.Null},
	}
	for _, c := range cases {
		got := analyzer.TypeOf(node(c.kind), ctx, index)
		assert.Truef(t, got.Equal(c.want), "%s: want %s, got %s", c.kind, c.want, got)
	}
}

func TestTypeOf_Nil(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()
	got := analyzer.TypeOf(nil, ctx, index)
	assert.True(t, got.Equal(definitions.Mixed))
}

func TestTypeOf_Variable(t *testing.T) {
	ctx := analyzer.NewContext()
	ctx.SetVariable([]byte("$x"), definitions.String)
	index := definitions.NewCollection()

	got := analyzer.TypeOf(node("variable_name", withContent("$x")), ctx, index)
	assert.True(t, got.Equal(definitions.String))

	unknown := analyzer.TypeOf(node("variable_name", withContent("$y")), ctx, index)
	assert.True(t, unknown.Equal(definitions.Mixed))
}

func TestTypeOf_BinaryComparison(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()

	expr := node("binary_expression",
		withField("operator", node("op", withContent("==="))),
		withField("left", node("integer")),
		withField("right", node("integer")),
	)
	got := analyzer.TypeOf(expr, ctx, index)
	assert.True(t, got.Equal(definitions.Bool))
}

func TestTypeOf_BinarySpaceship(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()

	expr := node("binary_expression",
		withField("operator", node("op", withContent("<=>"))),
		withField("left", node("integer")),
		withField("right", node("integer")),
	)
	got := analyzer.TypeOf(expr, ctx, index)
	assert.True(t, got.Equal(definitions.Int))
}

func TestTypeOf_Concatenation(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()

	expr := node("binary_expression",
		withField("operator", node("op", withContent("."))),
		withField("left", node("string")),
		withField("right", node("integer")),
	)
	got := analyzer.TypeOf(expr, ctx, index)
	assert.True(t, got.Equal(definitions.String))
}

func TestTypeOf_ArithmeticIntInt(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()

	expr := node("binary_expression",
		withField("operator", node("op", withContent("+"))),
		withField("left", node("integer")),
		withField("right", node("integer")),
	)
	got := analyzer.TypeOf(expr, ctx, index)
	assert.True(t, got.Equal(definitions.Int))
}

func TestTypeOf_ArithmeticStringIsError(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()

	expr := node("binary_expression",
		withField("operator", node("op", withContent("-"))),
		withField("left", node("string")),
		withField("right", node("integer")),
	)
	got := analyzer.TypeOf(expr, ctx, index)
	assert.Equal(t, definitions.KError, got.Kind)
}

func TestTypeOf_DivisionYieldsUnion(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()

	expr := node("binary_expression",
		withField("operator", node("op", withContent("/"))),
		withField("left", node("integer")),
		withField("right", node("integer")),
	)
	got := analyzer.TypeOf(expr, ctx, index)
	assert.Equal(t, "float|int", got.String())
}

func TestTypeOf_LogicalNotIsBool(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()

	expr := node("unary_op_expression",
		withField("operator", node("op", withContent("!"))),
		withField("operand", node("boolean")),
	)
	got := analyzer.TypeOf(expr, ctx, index)
	assert.True(t, got.Equal(definitions.Bool))
}

func TestTypeOf_UnaryMinusOnString(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()

	expr := node("unary_op_expression",
		withField("operator", node("op", withContent("-"))),
		withField("operand", node("string")),
	)
	got := analyzer.TypeOf(expr, ctx, index)
	assert.Equal(t, definitions.KError, got.Kind)
}

func TestTypeOf_ThrowAndExitAreNever(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()

	assert.True(t, analyzer.TypeOf(node("throw_expression"), ctx, index).Equal(definitions.Never))
	assert.True(t, analyzer.TypeOf(node("exit_statement"), ctx, index).Equal(definitions.Never))
}

func TestTypeOf_UnsetIsVoid(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()
	assert.True(t, analyzer.TypeOf(node("unset_statement"), ctx, index).Equal(definitions.Void))
}

func TestTypeOf_PrintIsInt(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()
	assert.True(t, analyzer.TypeOf(node("print_intrinsic"), ctx, index).Equal(definitions.Int))
}

func TestTypeOf_EmptyAndIssetAreBool(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()
	assert.True(t, analyzer.TypeOf(node("empty_intrinsic"), ctx, index).Equal(definitions.Bool))
	assert.True(t, analyzer.TypeOf(node("isset_variable"), ctx, index).Equal(definitions.Bool))
}

func TestTypeOf_MatchUnion(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()

	expr := node("match_expression",
		withChildren(
			node("match_arm", withField("body", node("integer"))),
			node("match_arm", withField("body", node("string"))),
		),
	)
	got := analyzer.TypeOf(expr, ctx, index)
	assert.Equal(t, "int|string", got.String())
}

func TestTypeOf_MatchSingleArmIsBare(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()

	expr := node("match_expression",
		withChildren(node("match_arm", withField("body", node("integer")))),
	)
	got := analyzer.TypeOf(expr, ctx, index)
	assert.True(t, got.Equal(definitions.Int))
}

func TestTypeOf_MagicConstants(t *testing.T) {
	ctx := analyzer.NewContext()
	index := definitions.NewCollection()

	got := analyzer.TypeOf(node("name", withContent("__LINE__")), ctx, index)
	assert.True(t, got.Equal(definitions.Int))

	got = analyzer.TypeOf(node("name", withContent("__CLASS__")), ctx, index)
	assert.True(t, got.Equal(definitions.String))
}

func TestMapType_Primitives(t *testing.T) {
	ctx := analyzer.NewContext()
	got := analyzer.MapType(node("primitive_type", withContent("int")), ctx)
	assert.True(t, got.Equal(definitions.Int))
}

func TestMapType_Optional(t *testing.T) {
	ctx := analyzer.NewContext()
	typeNode := node("optional_type", withChildren(node("primitive_type", withContent("string"))))
	got := analyzer.MapType(typeNode, ctx)
	assert.Equal(t, "?string", got.String())
}

func TestMapType_Named(t *testing.T) {
	ctx := analyzer.NewContext()
	ctx.SetNamespace([]byte(`\App`))
	got := analyzer.MapType(node("name", withContent("Foo")), ctx)
	assert.Equal(t, `\App\Foo`, got.String())
}
