package parser

import (
	"fmt"
	"strings"
)

type Expression interface {
	String() string
	Type() DataType
}

type BinaryOperator string

const (
	OpOr           BinaryOperator = "or"
	OpAnd          BinaryOperator = "and"
	OpEqual        BinaryOperator = "=="
	OpNotEqual     BinaryOperator = "<>"
	OpLess         BinaryOperator = "<"
	OpLessEqual    BinaryOperator = "<="
	OpGreater      BinaryOperator = ">"
	OpGreaterEqual BinaryOperator = ">="
	OpAdd          BinaryOperator = "+"
	OpSubtract     BinaryOperator = "-"
	OpMultiply     BinaryOperator = "*"
	OpDivide       BinaryOperator = "/"
	OpMod          BinaryOperator = "mod"
)

var itemTypeBinaryOps = map[itemType]BinaryOperator{
	itemOr:           OpOr,
	itemAnd:          OpAnd,
	itemEqual:        OpEqual,
	itemNotEqual:     OpNotEqual,
	itemLess:         OpLess,
	itemLessEqual:    OpLessEqual,
	itemGreater:      OpGreater,
	itemGreaterEqual: OpGreaterEqual,
	itemPlus:         OpAdd,
	itemMinus:        OpSubtract,
	itemMultiply:     OpMultiply,
	itemDivide:       OpDivide,
	itemMod:          OpMod,
}

// IsComparison returns true for operators that compare their operands.
func (op BinaryOperator) IsComparison() bool {
	switch op {
	case OpEqual, OpNotEqual, OpLess, OpLessEqual, OpGreater, OpGreaterEqual:
		return true
	}
	return false
}

// IsLogical returns true for and and or.
func (op BinaryOperator) IsLogical() bool {
	return op == OpAnd || op == OpOr
}

// BinaryExpr is an operation on two operands. OperandType is the type both
// operands are converted to before the operation is carried out.
type BinaryExpr struct {
	Left        Expression
	Operator    BinaryOperator
	Right       Expression
	OperandType DataType
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("binary<%s %s %s>", e.Left, e.Operator, e.Right)
}

func (e *BinaryExpr) Type() DataType {
	if e.Operator.IsComparison() || e.Operator.IsLogical() {
		return TypeInt
	}
	return e.OperandType
}

type MinusExpr struct {
	Expr Expression
}

func (e *MinusExpr) String() string {
	return fmt.Sprintf("minus<%s>", e.Expr)
}

func (e *MinusExpr) Type() DataType {
	return e.Expr.Type()
}

type NotExpr struct {
	Expr Expression
}

func (e *NotExpr) String() string {
	return fmt.Sprintf("not<%s>", e.Expr)
}

func (e *NotExpr) Type() DataType {
	return TypeInt
}

type SubExpr struct {
	Expr Expression
}

func (e *SubExpr) String() string {
	return fmt.Sprintf("(%s)", e.Expr)
}

func (e *SubExpr) Type() DataType {
	return e.Expr.Type()
}

// CastExpr converts Expr into To, written as a type suffix after an expression.
type CastExpr struct {
	Expr Expression
	To   DataType
}

func (e *CastExpr) String() string {
	return fmt.Sprintf("cast<%s to %s>", e.Expr, e.To)
}

func (e *CastExpr) Type() DataType {
	return e.To
}

type IntegerExpr struct {
	Value int
}

func (e *IntegerExpr) String() string {
	return fmt.Sprint(e.Value)
}

func (e *IntegerExpr) Type() DataType {
	return TypeInt
}

type RealExpr struct {
	Value float64
	Text  string // literal as it was written
}

func (e *RealExpr) String() string {
	return e.Text
}

func (e *RealExpr) Type() DataType {
	return TypeReal
}

type StringExpr struct {
	Value string
}

func (e *StringExpr) String() string {
	return fmt.Sprintf("%q", e.Value)
}

func (e *StringExpr) Type() DataType {
	return TypeString
}

// NullExpr is the null reference. It can be assigned to ref, list and dict
// values.
type NullExpr struct{}

func (e *NullExpr) String() string {
	return "null"
}

func (e *NullExpr) Type() DataType {
	return TypeRef
}

type VariableExpr struct {
	Variable *Variable
}

func (e *VariableExpr) String() string {
	return e.Variable.Name
}

func (e *VariableExpr) Type() DataType {
	return e.Variable.Type
}

// CallExpr calls either a user-defined or a library function.
type CallExpr struct {
	Function *Function
	Args     []Expression
}

func (e *CallExpr) String() string {
	var buf strings.Builder
	buf.WriteString("call<")
	buf.WriteString(e.Function.Name)
	buf.WriteString("(")
	for i, arg := range e.Args {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(arg.String())
	}
	buf.WriteString(")>")
	return buf.String()
}

func (e *CallExpr) Type() DataType {
	return e.Function.ReturnType
}

// IndexExpr reads the element at Index from Container, which is a list
// indexed by number or a dict indexed by string. Element is the type the
// element is read as.
type IndexExpr struct {
	Container Expression
	Index     Expression
	Element   DataType
}

func (e *IndexExpr) String() string {
	return fmt.Sprintf("%s[%s]%s", e.Container, e.Index, e.Element)
}

func (e *IndexExpr) Type() DataType {
	return e.Element
}

type ListExpr struct {
	Elements []Expression
}

func (e *ListExpr) String() string {
	elems := make([]string, 0, len(e.Elements))
	for _, elem := range e.Elements {
		elems = append(elems, elem.String())
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

func (e *ListExpr) Type() DataType {
	return TypeList
}

// DictExpr is a dict literal. Keys are string expressions.
type DictExpr struct {
	Keys   []Expression
	Values []Expression
}

func (e *DictExpr) String() string {
	entries := make([]string, 0, len(e.Keys))
	for i := range e.Keys {
		entries = append(entries, e.Keys[i].String()+": "+e.Values[i].String())
	}
	return "{" + strings.Join(entries, ", ") + "}"
}

func (e *DictExpr) Type() DataType {
	return TypeDict
}

// assignable returns true if the value of e can be stored in a variable or
// parameter of type to.
func assignable(to DataType, e Expression) bool {
	if _, ok := e.(*NullExpr); ok {
		return to == TypeRef || to.IsContainer()
	}
	return compatible(to, e.Type())
}
