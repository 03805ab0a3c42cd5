package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExpressionParser(name, text string) *Parser {
	p := NewParser(name, text)
	p.prog = &Program{Name: name}
	p.functions = map[string]*Function{
		"twice": {Name: "Twice", ReturnType: TypeReal, Params: []*Variable{{Name: "x", Type: TypeReal}}},
	}
	p.globals = map[string]*Variable{}
	for _, v := range []*Variable{
		{Name: "a", Type: TypeInt},
		{Name: "b", Type: TypeInt},
		{Name: "c", Type: TypeInt},
		{Name: "r", Type: TypeReal},
		{Name: "s", Type: TypeString},
		{Name: "l", Type: TypeList},
		{Name: "m", Type: TypeRef},
		{Name: "d", Type: TypeDict},
	} {
		v.Global = true
		p.globals[v.Name] = v
	}
	return p
}

func TestParseExpressions(t *testing.T) {
	testData := []struct {
		Name      string
		Expr      string
		Type      DataType
		ExpectErr bool
	}{
		{Name: "simple variable", Expr: "a", Type: TypeInt},
		{Name: "comparison of two variables", Expr: "a == b", Type: TypeInt},
		{Name: "comparison of variable with negative integer literal", Expr: "a <> -23", Type: TypeInt},
		{Name: "more complex expression", Expr: "not ((a >= 0) and (a <= 9))", Type: TypeInt},
		{Name: "addition expression", Expr: "a + b - c", Type: TypeInt},
		{Name: "int and real balance to real", Expr: "a * r", Type: TypeReal},
		{Name: "mod of reals", Expr: "r mod 2", Type: TypeReal},
		{Name: "string concatenation", Expr: `s + "x" + s`, Type: TypeString},
		{Name: "string comparison", Expr: `s >= "a"`, Type: TypeInt},
		{Name: "comparison of int with real", Expr: "a < r", Type: TypeInt},
		{Name: "logical expression", Expr: "a and b or not c", Type: TypeInt},
		{Name: "user function call", Expr: "Twice(a)", Type: TypeReal},
		{Name: "library function call", Expr: `Len(s) + Find(s, "x", 0)`, Type: TypeInt},
		{Name: "list element", Expr: "l[a + 1]$", Type: TypeString},
		{Name: "nested list element", Expr: "l[0][r]#", Type: TypeReal},
		{Name: "list literal", Expr: `[1, "two", [3.0], m]`, Type: TypeList},
		{Name: "empty list literal", Expr: "[]", Type: TypeList},
		{Name: "cast to string", Expr: "(a + 1)$", Type: TypeString},
		{Name: "cast binds tighter than multiplication", Expr: `a * "2"%`, Type: TypeInt},
		{Name: "ref compared with null", Expr: "m == null", Type: TypeInt},
		{Name: "list compared with null", Expr: "null <> l", Type: TypeInt},
		{Name: "double negation", Expr: "- -a", Type: TypeInt},
		{Name: "true and false", Expr: "true or false", Type: TypeInt},
		{Name: "dict element", Expr: `d["k" + s]%`, Type: TypeInt},
		{Name: "list inside dict", Expr: `d["k"][0]$`, Type: TypeString},
		{Name: "dict inside list", Expr: `l[1]["k"]#`, Type: TypeReal},
		{Name: "dict literal", Expr: `{"a": 1, s: [2], "c": {"d": m}}`, Type: TypeDict},
		{Name: "empty dict literal", Expr: "{}", Type: TypeDict},
		{Name: "dict literal over several lines", Expr: "{\n\"a\": 1,\n\"b\": 2\n}", Type: TypeDict},
		{Name: "dict compared with null", Expr: "d == null", Type: TypeInt},
		{Name: "string multiplied", Expr: `s * 2`, ExpectErr: true},
		{Name: "dict indexed by number", Expr: "d[0]%", ExpectErr: true},
		{Name: "dict literal with int key", Expr: `{1: "a"}`, ExpectErr: true},
		{Name: "dict literal without colon", Expr: `{"a" 1}`, ExpectErr: true},
		{Name: "dict compared with list", Expr: "d == l", ExpectErr: true},
		{Name: "int compared with string", Expr: `a == s`, ExpectErr: true},
		{Name: "list element without suffix", Expr: "l[0]", ExpectErr: true},
		{Name: "void call in expression", Expr: `Print("x") + 1`, ExpectErr: true},
		{Name: "ref cast", Expr: "m%", ExpectErr: true},
		{Name: "unclosed parenthesis", Expr: "(a + 1", ExpectErr: true},
		{Name: "missing operand", Expr: "a +", ExpectErr: true},
	}

	for _, tt := range testData {
		t.Run(tt.Name, func(t *testing.T) {
			p := newExpressionParser(tt.Name, tt.Expr)

			var (
				err  error
				expr Expression
			)

			func() {
				defer p.recover(&err)
				p.readItems()
				expr = p.parseExpression()
			}()

			if tt.ExpectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, itemEOF, p.peek().typ, "parser has not consumed all tokens, stopped at %s", p.peek())
			assert.Equal(t, tt.Type, expr.Type())
			t.Logf("expr %s = %s", tt.Expr, expr)
		})
	}
}

func TestExpressionTree(t *testing.T) {
	p := newExpressionParser("tree", "a + b * c == r or a")

	var (
		err  error
		expr Expression
	)
	func() {
		defer p.recover(&err)
		p.readItems()
		expr = p.parseExpression()
	}()
	require.NoError(t, err)

	or, ok := expr.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, OpOr, or.Operator)

	eq, ok := or.Left.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, OpEqual, eq.Operator)
	assert.Equal(t, TypeReal, eq.OperandType)

	add, ok := eq.Left.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, OpAdd, add.Operator)

	mul, ok := add.Right.(*BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, OpMultiply, mul.Operator)
}

func TestTypeRules(t *testing.T) {
	assert.True(t, compatible(TypeInt, TypeReal))
	assert.True(t, compatible(TypeReal, TypeInt))
	assert.True(t, compatible(TypeList, TypeList))
	assert.False(t, compatible(TypeVoid, TypeVoid))
	assert.False(t, compatible(TypeString, TypeInt))
	assert.False(t, compatible(TypeRef, TypeList))

	assert.Equal(t, TypeReal, balance(TypeInt, TypeReal))
	assert.Equal(t, TypeInt, balance(TypeInt, TypeInt))
	assert.Equal(t, TypeString, balance(TypeString, TypeString))

	assert.True(t, castable(TypeString, TypeReal))
	assert.True(t, castable(TypeInt, TypeString))
	assert.True(t, castable(TypeList, TypeList))
	assert.False(t, castable(TypeInt, TypeRef))

	assert.True(t, assignable(TypeList, &NullExpr{}))
	assert.True(t, assignable(TypeDict, &NullExpr{}))
	assert.False(t, assignable(TypeString, &NullExpr{}))
	assert.False(t, compatible(TypeDict, TypeList))

	assert.Equal(t, "string", TypeString.String())
	assert.Equal(t, "invalid", DataType(42).String())
}
