package pico2go

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akrennmair/pico/parser"
)

func toGoType(typ parser.DataType) string {
	switch typ {
	case parser.TypeInt:
		return "int"
	case parser.TypeReal:
		return "float64"
	case parser.TypeString:
		return "string"
	case parser.TypeRef:
		return "any"
	case parser.TypeList:
		return "*system.List"
	case parser.TypeDict:
		return "*system.Dict"
	default:
		panic(fmt.Sprintf("unhandled type %s", typ))
	}
}

// goName maps a pico identifier onto a Go identifier. pico identifiers are
// case-insensitive and may clash with Go keywords, hence the prefix.
func goName(name string) string {
	return "pico_" + strings.ToLower(name)
}

func varName(v *parser.Variable) string {
	return goName(v.Name)
}

func funcName(f *parser.Function) string {
	return goName(f.Name)
}

func formalParams(params []*parser.Variable) string {
	var buf strings.Builder

	for idx, param := range params {
		if idx > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(varName(param))
		buf.WriteString(" ")
		buf.WriteString(toGoType(param.Type))
	}

	return buf.String()
}

// unhandled aborts template execution.
func unhandled(what string, v any) (string, error) {
	return "", fmt.Errorf("unhandled %s %v", what, v)
}

func comment(text string) string {
	var buf strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		buf.WriteString("// ")
		buf.WriteString(strings.TrimSpace(line))
		buf.WriteString("\n")
	}
	return buf.String()
}

// toTyped returns expr converted to typ. Only int and real values are ever
// converted, the parser rejects all other mismatches.
func toTyped(expr parser.Expression, typ parser.DataType) string {
	code := toExpr(expr)

	switch {
	case typ == parser.TypeReal && expr.Type() == parser.TypeInt:
		return "float64(" + code + ")"
	case typ == parser.TypeInt && expr.Type() == parser.TypeReal:
		return "system.Int(" + code + ")"
	}

	return code
}

// toIndex renders the index of an element of container. Lists take int
// indexes, dicts string keys.
func toIndex(container, index parser.Expression) string {
	if container.Type() == parser.TypeDict {
		return toExpr(index)
	}
	return toTyped(index, parser.TypeInt)
}

func toCondition(expr parser.Expression) string {
	if expr.Type() == parser.TypeInt {
		return "system.IntBool(" + toExpr(expr) + ")"
	}
	return toExpr(expr) + " != 0"
}

// toStatement renders an expression statement. Go only allows calls in
// statement context.
func toStatement(expr parser.Expression) string {
	if _, ok := expr.(*parser.CallExpr); ok {
		return toExpr(expr)
	}
	return "_ = " + toExpr(expr)
}

var elementGetters = map[parser.DataType]string{
	parser.TypeInt:    "Int",
	parser.TypeReal:   "Float",
	parser.TypeString: "Str",
	parser.TypeRef:    "Ref",
	parser.TypeList:   "List",
	parser.TypeDict:   "Dict",
}

var goOperators = map[parser.BinaryOperator]string{
	parser.OpEqual:        "==",
	parser.OpNotEqual:     "!=",
	parser.OpLess:         "<",
	parser.OpLessEqual:    "<=",
	parser.OpGreater:      ">",
	parser.OpGreaterEqual: ">=",
	parser.OpAdd:          "+",
	parser.OpSubtract:     "-",
	parser.OpMultiply:     "*",
}

func toExpr(expr parser.Expression) string {
	switch e := expr.(type) {
	case *parser.BinaryExpr:
		return binaryExpr(e)
	case *parser.MinusExpr:
		return "-(" + toExpr(e.Expr) + ")"
	case *parser.NotExpr:
		return "system.Not(" + toExpr(e.Expr) + ")"
	case *parser.SubExpr:
		return "(" + toExpr(e.Expr) + ")"
	case *parser.CastExpr:
		return castExpr(e)
	case *parser.IntegerExpr:
		return strconv.Itoa(e.Value)
	case *parser.RealExpr:
		return e.Text
	case *parser.StringExpr:
		return strconv.Quote(e.Value)
	case *parser.NullExpr:
		return "nil"
	case *parser.VariableExpr:
		return varName(e.Variable)
	case *parser.CallExpr:
		return callExpr(e)
	case *parser.IndexExpr:
		return toExpr(e.Container) + "." + elementGetters[e.Element] + "(" + toIndex(e.Container, e.Index) + ")"
	case *parser.ListExpr:
		elems := make([]string, 0, len(e.Elements))
		for _, elem := range e.Elements {
			elems = append(elems, toExpr(elem))
		}
		return "system.NewList(" + strings.Join(elems, ", ") + ")"
	case *parser.DictExpr:
		keyvals := make([]string, 0, 2*len(e.Keys))
		for i := range e.Keys {
			keyvals = append(keyvals, toExpr(e.Keys[i]), toExpr(e.Values[i]))
		}
		return "system.DictOf(" + strings.Join(keyvals, ", ") + ")"
	default:
		panic(fmt.Sprintf("unhandled expression type %T", expr))
	}
}

func binaryExpr(e *parser.BinaryExpr) string {
	if e.Operator.IsLogical() {
		op := "&&"
		if e.Operator == parser.OpOr {
			op = "||"
		}
		return "system.BoolInt(system.IntBool(" + toExpr(e.Left) + ") " + op + " system.IntBool(" + toExpr(e.Right) + "))"
	}

	_, leftNull := e.Left.(*parser.NullExpr)
	_, rightNull := e.Right.(*parser.NullExpr)
	if leftNull && rightNull {
		// nil == nil doesn't compile.
		if e.Operator == parser.OpEqual {
			return "1"
		}
		return "0"
	}

	left := toTyped(e.Left, e.OperandType)
	right := toTyped(e.Right, e.OperandType)

	if e.Operator.IsComparison() {
		return "system.BoolInt(" + left + " " + goOperators[e.Operator] + " " + right + ")"
	}

	// Go rejects constant zero divisors, so divisions go through the runtime.
	if div, ok := divisions[divisionKey{e.Operator, e.OperandType}]; ok {
		return div + "(" + left + ", " + right + ")"
	}

	return left + " " + goOperators[e.Operator] + " " + right
}

type divisionKey struct {
	op  parser.BinaryOperator
	typ parser.DataType
}

var divisions = map[divisionKey]string{
	{parser.OpDivide, parser.TypeInt}:  "system.Div",
	{parser.OpDivide, parser.TypeReal}: "system.Quo",
	{parser.OpMod, parser.TypeInt}:     "system.ModInt",
	{parser.OpMod, parser.TypeReal}:    "system.Mod",
}

var casts = map[[2]parser.DataType]string{
	{parser.TypeInt, parser.TypeReal}:    "float64",
	{parser.TypeReal, parser.TypeInt}:    "system.Int",
	{parser.TypeInt, parser.TypeString}:  "system.FormatInt",
	{parser.TypeReal, parser.TypeString}: "system.FormatFloat",
	{parser.TypeString, parser.TypeInt}:  "system.ParseInt",
	{parser.TypeString, parser.TypeReal}: "system.ParseFloat",
}

func castExpr(e *parser.CastExpr) string {
	conv, ok := casts[[2]parser.DataType{e.Expr.Type(), e.To}]
	if !ok {
		return toExpr(e.Expr)
	}
	return conv + "(" + toExpr(e.Expr) + ")"
}

// libraryNames maps library functions onto differently named runtime
// functions.
var libraryNames = map[string]string{
	"join":  "JoinList",
	"split": "SplitList",
	"str":   "FormatInt",
	"strf":  "FormatFloat",
	"val":   "ParseInt",
	"valf":  "ParseFloat",
}

func callExpr(e *parser.CallExpr) string {
	args := make([]string, 0, len(e.Args))
	for idx, arg := range e.Args {
		param := e.Function.Params[idx]
		code := toTyped(arg, param.Type)
		if e.Function.Builtin && param.Type == parser.TypeRef {
			code = "system.AsMemory(" + code + ")"
		}
		args = append(args, code)
	}

	if !e.Function.Builtin {
		return funcName(e.Function) + "(" + strings.Join(args, ", ") + ")"
	}

	return libraryCall(e.Function, args)
}

func libraryCall(f *parser.Function, args []string) string {
	key := strings.ToLower(f.Name)

	name := f.Name
	if n, ok := libraryNames[key]; ok {
		name = n
	}

	var call string
	if strings.HasPrefix(key, "peek") || strings.HasPrefix(key, "poke") {
		// memory accessors are methods of the memory block.
		call = args[0] + "." + name + "(" + strings.Join(args[1:], ", ") + ")"
	} else {
		call = "system." + name + "(" + strings.Join(args, ", ") + ")"
	}

	if f.ReturnType == parser.TypeRef {
		return "system.Ref(" + call + ")"
	}

	return call
}
