package parser

import (
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"strings"

	"github.com/akrennmair/pico/internal/logging"
)

// Program is a parsed and type-checked pico source file.
type Program struct {
	Name       string
	Functions  []*Function
	Globals    []*Variable
	Statements []Statement
}

// Variable is a global variable, a local variable or a function parameter.
// The type of a variable is fixed when it is defined, either by a type
// suffix or by the value it is first assigned.
type Variable struct {
	Name   string
	Type   DataType
	Global bool
}

// Function is either a user-defined function or a core library function.
type Function struct {
	Name       string
	ReturnType DataType
	Params     []*Variable
	Locals     []*Variable // variables first assigned inside the function
	Statements []Statement
	Builtin    bool
}

// Parse parses the pico source text. name is used in error messages.
func Parse(name, text string) (*Program, error) {
	return NewParser(name, text).Parse()
}

func NewParser(name, text string) *Parser {
	return &Parser{
		lexer:  lex(name, text),
		logger: logging.NewNop(),
	}
}

type Parser struct {
	lexer  *lexer
	logger *slog.Logger
	items  []item
	pos    int

	prog      *Program
	functions map[string]*Function
	globals   map[string]*Variable
	fn        *Function            // function currently being parsed, nil at top level.
	locals    map[string]*Variable // parameters and locals of fn.
}

func (p *Parser) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = logging.NewNop()
	}
	p.logger = logger
}

func (p *Parser) Parse() (prog *Program, err error) {
	defer p.recover(&err)

	p.readItems()

	p.prog = &Program{Name: p.lexer.name}
	p.functions = make(map[string]*Function)
	p.globals = make(map[string]*Variable)

	p.scanFunctions()
	p.parseProgram()

	return p.prog, nil
}

func (p *Parser) recover(errp *error) {
	e := recover()
	if e != nil {
		// rethrow runtime errors
		if _, ok := e.(runtime.Error); ok {
			panic(e)
		}
		*errp = e.(error)
	}
}

// readItems reads all items from the lexer so that the parser can look
// ahead arbitrarily far.
func (p *Parser) readItems() {
	defer p.lexer.drain()
	for {
		it := p.lexer.nextItem()
		if it.typ == itemError {
			p.items = append(p.items, it)
			p.pos = len(p.items)
			p.errorf("%s", it.val)
		}
		p.items = append(p.items, it)
		if it.typ == itemEOF {
			return
		}
	}
}

func (p *Parser) peek() item {
	return p.peekAt(0)
}

func (p *Parser) peekAt(n int) item {
	if p.pos+n < len(p.items) {
		return p.items[p.pos+n]
	}
	return item{typ: itemEOF, pos: Pos(len(p.lexer.input))}
}

func (p *Parser) next() item {
	it := p.peek()
	if p.pos < len(p.items) {
		p.pos++
	}
	return it
}

func (p *Parser) expect(typ itemType, what string) item {
	it := p.next()
	if it.typ != typ {
		p.errorf("expected %s, got %s instead", what, it)
	}
	return it
}

// errorf aborts parsing with an error located at the last item read.
func (p *Parser) errorf(fmtstr string, args ...interface{}) {
	pos := Pos(0)
	if p.pos > 0 {
		pos = p.items[p.pos-1].pos
	}
	line, col := p.lexer.position(pos)
	panic(fmt.Errorf("%s:%d:%d: %s", p.lexer.name, line, col, fmt.Sprintf(fmtstr, args...)))
}

func (p *Parser) skipEOLs() {
	for p.peek().typ == itemEOL {
		p.next()
	}
}

// scanFunctions registers all function headers before the bodies are
// parsed, so functions can be called before they are defined.
func (p *Parser) scanFunctions() {
	start := p.pos
	defer func() { p.pos = start }()

	for i := start; i < len(p.items); i++ {
		if p.items[i].typ != itemFunction {
			continue
		}
		p.pos = i
		f := p.parseFunctionHeader()
		key := strings.ToLower(f.Name)
		if FindLibraryFunction(f.Name) != nil {
			p.errorf("identifier already used as library function: %s", f.Name)
		}
		if _, ok := p.functions[key]; ok {
			p.errorf("identifier already used as function: %s", f.Name)
		}
		p.functions[key] = f
		p.prog.Functions = append(p.prog.Functions, f)
		p.logger.Debug("Declared function", "name", f.Name, "type", f.ReturnType, "params", len(f.Params))
		i = p.pos - 1
	}
}

func (p *Parser) parseProgram() {
	for p.skipEOLs(); p.peek().typ != itemEOF; p.skipEOLs() {
		if p.peek().typ == itemFunction {
			p.parseFunction()
			continue
		}
		p.prog.Statements = append(p.prog.Statements, p.parseStatement())
	}
}

func (p *Parser) parseFunctionHeader() *Function {
	p.expect(itemFunction, "function")
	name := p.expect(itemIdentifier, "function name").val

	f := &Function{Name: name, ReturnType: p.parseTypeSuffix(TypeVoid)}

	p.expect(itemOpenParen, "(")
	seen := map[string]bool{}
	for p.peek().typ != itemCloseParen {
		if len(f.Params) > 0 {
			p.expect(itemComma, ", or )")
		}
		paramName := p.expect(itemIdentifier, "parameter name").val
		if seen[strings.ToLower(paramName)] {
			p.errorf("duplicate parameter %s", paramName)
		}
		seen[strings.ToLower(paramName)] = true

		f.Params = append(f.Params, &Variable{Name: paramName, Type: p.parseTypeSuffix(TypeInt)})
	}
	p.next()

	return f
}

// parseTypeSuffix returns the type of an optional type suffix, or def if
// there is none.
func (p *Parser) parseTypeSuffix(def DataType) DataType {
	if typ, ok := typeSuffixes[p.peek().typ]; ok {
		p.next()
		return typ
	}
	return def
}

func (p *Parser) parseFunction() {
	if p.fn != nil {
		p.errorf("functions can only be defined at the top level")
	}

	header := p.parseFunctionHeader()
	f := p.functions[strings.ToLower(header.Name)]

	p.fn = f
	p.locals = make(map[string]*Variable)
	defer func() {
		p.fn = nil
		p.locals = nil
	}()

	for _, param := range f.Params {
		p.checkVariableName(param.Name)
		p.locals[strings.ToLower(param.Name)] = param
	}

	f.Statements = p.parseBlock()
	p.expect(itemEnd, "end")
	p.parseStatementEnd()
}

// parseBlock parses statements up to end, else, elseif or EOF.
func (p *Parser) parseBlock() []Statement {
	var stmts []Statement
	for {
		p.skipEOLs()
		switch p.peek().typ {
		case itemEnd, itemElse, itemElseIf, itemEOF:
			return stmts
		}
		stmts = append(stmts, p.parseStatement())
	}
}

func (p *Parser) atStatementEnd() bool {
	switch p.peek().typ {
	case itemEOL, itemSemicolon, itemEOF, itemEnd, itemElse, itemElseIf:
		return true
	}
	return false
}

func (p *Parser) parseStatementEnd() {
	if !p.atStatementEnd() {
		p.errorf("expected ; or new line, got %s", p.next())
	}
	if typ := p.peek().typ; typ == itemEOL || typ == itemSemicolon {
		p.next()
	}
}

func (p *Parser) parseStatement() Statement {
	var stmt Statement

	switch p.peek().typ {
	case itemIf:
		stmt = p.parseIfStatement()
	case itemFor:
		stmt = p.parseForStatement()
	case itemWhile:
		stmt = p.parseWhileStatement()
	case itemReturn:
		stmt = p.parseReturnStatement()
	case itemFunction:
		p.next()
		p.errorf("functions can only be defined at the top level")
	default:
		if p.isAssignment() {
			stmt = p.parseAssignment()
		} else {
			stmt = &ExpressionStatement{Expr: p.parseExpression()}
		}
	}

	p.parseStatementEnd()

	return stmt
}

// isAssignment looks past an identifier and any index brackets for =.
func (p *Parser) isAssignment() bool {
	if p.peek().typ != itemIdentifier {
		return false
	}

	if isTypeSuffix(p.peekAt(1).typ) {
		return p.peekAt(2).typ == itemAssign
	}

	n := 1
	for p.peekAt(n).typ == itemOpenBracket {
		depth := 0
		for ; ; n++ {
			typ := p.peekAt(n).typ
			if typ == itemEOF {
				return false
			}
			if typ == itemOpenBracket {
				depth++
			} else if typ == itemCloseBracket {
				depth--
				if depth == 0 {
					n++
					break
				}
			}
		}
	}

	return p.peekAt(n).typ == itemAssign
}

func (p *Parser) parseAssignment() Statement {
	name := p.expect(itemIdentifier, "identifier").val

	if p.peek().typ == itemOpenBracket {
		return p.parseIndexAssignment(name)
	}

	declared, hasSuffix := typeSuffixes[p.peek().typ]
	if hasSuffix {
		p.next()
	}

	p.expect(itemAssign, "=")
	value := p.parseExpression()

	v := p.findVariable(name)
	switch {
	case v == nil && hasSuffix:
		if !assignable(declared, value) {
			p.errorf("can't assign %s to variable %s of type %s", value.Type(), name, declared)
		}
		v = p.defineVariable(name, declared)
	case v == nil:
		v = p.defineVariable(name, value.Type())
	case hasSuffix && v.Type != declared:
		p.errorf("variable %s is %s, not %s", v.Name, v.Type, declared)
	case !assignable(v.Type, value):
		p.errorf("can't assign %s to variable %s of type %s", value.Type(), v.Name, v.Type)
	}

	return &AssignmentStatement{Variable: v, Value: value}
}

func (p *Parser) parseIndexAssignment(name string) Statement {
	v := p.findVariable(name)
	if v == nil {
		p.errorf("variable has not been initialized: %s", name)
	}
	if !v.Type.IsContainer() {
		p.errorf("only lists and dicts can be indexed, %s is %s", v.Name, v.Type)
	}

	container, index := p.parseIndexChain(&VariableExpr{Variable: v})

	p.expect(itemAssign, "=")
	value := p.parseExpression()
	if value.Type() == TypeVoid {
		p.errorf("can't store a void value in a %s", container.Type())
	}

	return &IndexAssignmentStatement{Container: container, Index: index, Value: value}
}

// parseIndexChain parses one or more [index] following container. It returns
// the innermost container and its index. Intermediate elements are read as
// dicts if the index that follows them is a string, as lists otherwise.
func (p *Parser) parseIndexChain(container Expression) (Expression, Expression) {
	index := p.parseIndex()
	p.checkIndex(container.Type(), index)

	for p.peek().typ == itemOpenBracket {
		next := p.parseIndex()
		elem := TypeList
		if next.Type() == TypeString {
			elem = TypeDict
		}
		container = &IndexExpr{Container: container, Index: index, Element: elem}
		p.checkIndex(elem, next)
		index = next
	}

	return container, index
}

func (p *Parser) parseIndex() Expression {
	p.expect(itemOpenBracket, "[")
	p.skipEOLs()
	index := p.parseExpression()
	p.skipEOLs()
	p.expect(itemCloseBracket, "]")
	return index
}

func (p *Parser) checkIndex(container DataType, index Expression) {
	switch {
	case container == TypeList && !index.Type().IsNumeric():
		p.errorf("list index must be numeric, got %s", index.Type())
	case container == TypeDict && index.Type() != TypeString:
		p.errorf("dict key must be string, got %s", index.Type())
	}
}

func (p *Parser) findVariable(name string) *Variable {
	key := strings.ToLower(name)
	if v, ok := p.locals[key]; ok {
		return v
	}
	return p.globals[key]
}

func (p *Parser) checkVariableName(name string) {
	if FindLibraryFunction(name) != nil {
		p.errorf("identifier already used as library function: %s", name)
	}
	if _, ok := p.functions[strings.ToLower(name)]; ok {
		p.errorf("identifier already used as function: %s", name)
	}
}

// defineVariable defines a new variable in the current scope. Without a type
// suffix, the type is taken from the initial value.
func (p *Parser) defineVariable(name string, typ DataType) *Variable {
	p.checkVariableName(name)

	if typ == TypeVoid {
		p.errorf("can't initialize variable %s with a void value", name)
	}

	v := &Variable{Name: name, Type: typ, Global: p.fn == nil}
	if v.Global {
		p.globals[strings.ToLower(name)] = v
		p.prog.Globals = append(p.prog.Globals, v)
	} else {
		p.locals[strings.ToLower(name)] = v
		p.fn.Locals = append(p.fn.Locals, v)
	}

	p.logger.Debug("Defined variable", "name", name, "type", typ, "global", v.Global)

	return v
}

func (p *Parser) parseCondition() Expression {
	cond := p.parseExpression()
	if !cond.Type().IsNumeric() {
		p.errorf("condition must be numeric, got %s", cond.Type())
	}
	return cond
}

func (p *Parser) parseIfStatement() *IfStatement {
	p.expect(itemIf, "if")

	stmt := &IfStatement{}
	stmt.Condition = p.parseCondition()
	p.expect(itemThen, "then")
	stmt.Statements = p.parseBlock()

	for p.peek().typ == itemElseIf {
		p.next()
		elseIf := &ConditionalBlock{Condition: p.parseCondition()}
		p.expect(itemThen, "then")
		elseIf.Statements = p.parseBlock()
		stmt.ElseIfs = append(stmt.ElseIfs, elseIf)
	}

	if p.peek().typ == itemElse {
		p.next()
		stmt.Else = p.parseBlock()
	}

	p.expect(itemEnd, "end")

	return stmt
}

func (p *Parser) parseForStatement() *ForStatement {
	p.expect(itemFor, "for")

	name := p.expect(itemIdentifier, "variable").val
	p.expect(itemAssign, "=")
	initial := p.parseExpression()

	v := p.findVariable(name)
	if v == nil {
		v = p.defineVariable(name, initial.Type())
	} else if !assignable(v.Type, initial) {
		p.errorf("can't assign %s to variable %s of type %s", initial.Type(), v.Name, v.Type)
	}
	if !v.Type.IsNumeric() {
		p.errorf("for loop variable %s must be numeric, got %s", v.Name, v.Type)
	}

	stmt := &ForStatement{Variable: v, Initial: initial}

	p.expect(itemTo, "to")
	stmt.Final = p.parseExpression()
	if !compatible(v.Type, stmt.Final.Type()) {
		p.errorf("for loop limit must be numeric, got %s", stmt.Final.Type())
	}

	if p.peek().typ == itemStep {
		p.next()
		stmt.Step = p.parseExpression()
		if !compatible(v.Type, stmt.Step.Type()) {
			p.errorf("for loop step must be numeric, got %s", stmt.Step.Type())
		}
	} else {
		stmt.Step = &IntegerExpr{Value: 1}
	}

	p.expect(itemDo, "do")
	stmt.Statements = p.parseBlock()
	p.expect(itemEnd, "end")

	return stmt
}

func (p *Parser) parseWhileStatement() *WhileStatement {
	p.expect(itemWhile, "while")

	stmt := &WhileStatement{}
	stmt.Condition = p.parseCondition()
	p.expect(itemDo, "do")
	stmt.Statements = p.parseBlock()
	p.expect(itemEnd, "end")

	return stmt
}

func (p *Parser) parseReturnStatement() *ReturnStatement {
	p.expect(itemReturn, "return")

	if p.fn == nil {
		p.errorf("can't use return outside a function")
	}

	stmt := &ReturnStatement{Function: p.fn}

	if p.atStatementEnd() {
		if p.fn.ReturnType != TypeVoid {
			p.errorf("function %s must return a value of type %s", p.fn.Name, p.fn.ReturnType)
		}
		return stmt
	}

	if p.fn.ReturnType == TypeVoid {
		p.errorf("function %s can't return a value", p.fn.Name)
	}

	stmt.Value = p.parseExpression()
	if !assignable(p.fn.ReturnType, stmt.Value) {
		p.errorf("function %s must return %s, got %s", p.fn.Name, p.fn.ReturnType, stmt.Value.Type())
	}

	return stmt
}

func (p *Parser) parseExpression() Expression {
	return p.parseOrExpr()
}

// parseBinary parses a left-associative chain of the operators in ops.
func (p *Parser) parseBinary(operand func() Expression, check func(op BinaryOperator, left, right Expression) DataType, ops ...itemType) Expression {
	expr := operand()

	for {
		typ := p.peek().typ
		found := false
		for _, op := range ops {
			if typ == op {
				found = true
				break
			}
		}
		if !found {
			return expr
		}

		op := itemTypeBinaryOps[p.next().typ]
		p.skipEOLs()
		right := operand()

		expr = &BinaryExpr{
			Left:        expr,
			Operator:    op,
			Right:       right,
			OperandType: check(op, expr, right),
		}
	}
}

func (p *Parser) parseOrExpr() Expression {
	return p.parseBinary(p.parseAndExpr, p.checkLogical, itemOr)
}

func (p *Parser) parseAndExpr() Expression {
	return p.parseBinary(p.parseEqualityExpr, p.checkLogical, itemAnd)
}

func (p *Parser) parseEqualityExpr() Expression {
	return p.parseBinary(p.parseRelationalExpr, p.checkEquality, itemEqual, itemNotEqual)
}

func (p *Parser) parseRelationalExpr() Expression {
	return p.parseBinary(p.parseAdditiveExpr, p.checkArithmetic, itemLess, itemLessEqual, itemGreater, itemGreaterEqual)
}

func (p *Parser) parseAdditiveExpr() Expression {
	return p.parseBinary(p.parseMultiplicativeExpr, p.checkArithmetic, itemPlus, itemMinus)
}

func (p *Parser) parseMultiplicativeExpr() Expression {
	return p.parseBinary(p.parseCastExpr, p.checkArithmetic, itemMultiply, itemDivide, itemMod)
}

func (p *Parser) checkLogical(op BinaryOperator, left, right Expression) DataType {
	if left.Type() != TypeInt || right.Type() != TypeInt {
		p.errorf("operands of %s must be int, got %s and %s", op, left.Type(), right.Type())
	}
	return TypeInt
}

func (p *Parser) checkEquality(op BinaryOperator, left, right Expression) DataType {
	switch {
	case compatible(left.Type(), right.Type()):
		return balance(left.Type(), right.Type())
	case assignable(left.Type(), right):
		return left.Type()
	case assignable(right.Type(), left):
		return right.Type()
	}
	p.errorf("can't compare %s and %s", left.Type(), right.Type())
	return TypeVoid
}

// checkArithmetic checks the operands of relational, additive and
// multiplicative operators. Strings can be concatenated and compared.
func (p *Parser) checkArithmetic(op BinaryOperator, left, right Expression) DataType {
	if !compatible(left.Type(), right.Type()) {
		p.errorf("incompatible types %s and %s for operator %s", left.Type(), right.Type(), op)
	}

	typ := balance(left.Type(), right.Type())

	switch {
	case typ.IsNumeric():
	case typ == TypeString && (op == OpAdd || op.IsComparison()):
	default:
		p.errorf("operator %s can't be applied to %s", op, typ)
	}

	return typ
}

func (p *Parser) parseCastExpr() Expression {
	expr := p.parseUnaryExpr()

	for isTypeSuffix(p.peek().typ) {
		to := typeSuffixes[p.next().typ]
		if !castable(to, expr.Type()) {
			p.errorf("can't cast %s to %s", expr.Type(), to)
		}
		expr = &CastExpr{Expr: expr, To: to}
	}

	return expr
}

func (p *Parser) parseUnaryExpr() Expression {
	switch p.peek().typ {
	case itemNot:
		p.next()
		expr := p.parseUnaryExpr()
		if expr.Type() != TypeInt {
			p.errorf("operand of not must be int, got %s", expr.Type())
		}
		return &NotExpr{Expr: expr}
	case itemMinus:
		p.next()
		expr := p.parseUnaryExpr()
		if !expr.Type().IsNumeric() {
			p.errorf("operand of unary - must be numeric, got %s", expr.Type())
		}
		return &MinusExpr{Expr: expr}
	}

	return p.parseAtom()
}

func (p *Parser) parseAtom() Expression {
	it := p.next()

	switch it.typ {
	case itemOpenParen:
		p.skipEOLs()
		expr := p.parseExpression()
		p.skipEOLs()
		p.expect(itemCloseParen, ")")
		return &SubExpr{Expr: expr}
	case itemOpenBracket:
		return p.parseListLiteral()
	case itemOpenBrace:
		return p.parseDictLiteral()
	case itemIntegerLiteral:
		v, err := strconv.Atoi(it.val)
		if err != nil {
			p.errorf("invalid integer literal %s: %v", it.val, err)
		}
		return &IntegerExpr{Value: v}
	case itemRealLiteral:
		v, err := strconv.ParseFloat(it.val, 64)
		if err != nil {
			p.errorf("invalid real literal %s: %v", it.val, err)
		}
		return &RealExpr{Value: v, Text: it.val}
	case itemStringLiteral:
		return &StringExpr{Value: it.val}
	case itemNull:
		return &NullExpr{}
	case itemTrue:
		return &IntegerExpr{Value: 1}
	case itemFalse:
		return &IntegerExpr{Value: 0}
	case itemIdentifier:
		if p.peek().typ == itemOpenParen {
			return p.parseCall(it.val)
		}
		return p.parseVariableAccess(it.val)
	}

	p.errorf("unexpected %s", it)
	return nil
}

func (p *Parser) parseListLiteral() Expression {
	list := &ListExpr{}

	for p.skipEOLs(); p.peek().typ != itemCloseBracket; p.skipEOLs() {
		if len(list.Elements) > 0 {
			p.expect(itemComma, ", or ]")
			p.skipEOLs()
		}
		elem := p.parseExpression()
		if elem.Type() == TypeVoid {
			p.errorf("can't store a void value in a list")
		}
		list.Elements = append(list.Elements, elem)
	}
	p.next()

	return list
}

func (p *Parser) parseDictLiteral() Expression {
	dict := &DictExpr{}

	for p.skipEOLs(); p.peek().typ != itemCloseBrace; p.skipEOLs() {
		if len(dict.Keys) > 0 {
			p.expect(itemComma, ", or }")
			p.skipEOLs()
		}
		key := p.parseExpression()
		if key.Type() != TypeString {
			p.errorf("dict key must be string, got %s", key.Type())
		}
		p.skipEOLs()
		p.expect(itemColon, ":")
		p.skipEOLs()
		value := p.parseExpression()
		if value.Type() == TypeVoid {
			p.errorf("can't store a void value in a dict")
		}
		dict.Keys = append(dict.Keys, key)
		dict.Values = append(dict.Values, value)
	}
	p.next()

	return dict
}

func (p *Parser) findFunction(name string) *Function {
	if f := FindLibraryFunction(name); f != nil {
		return f
	}
	return p.functions[strings.ToLower(name)]
}

func (p *Parser) parseCall(name string) Expression {
	f := p.findFunction(name)
	if f == nil {
		p.errorf("unknown function %s", name)
	}

	call := &CallExpr{Function: f}

	p.expect(itemOpenParen, "(")
	for p.skipEOLs(); p.peek().typ != itemCloseParen; p.skipEOLs() {
		if len(call.Args) > 0 {
			p.expect(itemComma, ", or )")
			p.skipEOLs()
		}
		if len(call.Args) == len(f.Params) {
			p.errorf("too many arguments in call to %s, expected %d", f.Name, len(f.Params))
		}
		param := f.Params[len(call.Args)]
		arg := p.parseExpression()
		if !assignable(param.Type, arg) {
			p.errorf("argument %s of %s must be %s, got %s", param.Name, f.Name, param.Type, arg.Type())
		}
		call.Args = append(call.Args, arg)
	}
	p.next()

	if len(call.Args) < len(f.Params) {
		p.errorf("not enough arguments in call to %s, expected %d, got %d", f.Name, len(f.Params), len(call.Args))
	}

	return call
}

func (p *Parser) parseVariableAccess(name string) Expression {
	v := p.findVariable(name)
	if v == nil {
		if p.findFunction(name) != nil {
			p.errorf("expected ( in call to %s", name)
		}
		p.errorf("variable has not been initialized: %s", name)
	}

	var expr Expression = &VariableExpr{Variable: v}
	if p.peek().typ != itemOpenBracket {
		return expr
	}

	if !v.Type.IsContainer() {
		p.errorf("only lists and dicts can be indexed, %s is %s", v.Name, v.Type)
	}

	container, index := p.parseIndexChain(expr)

	elem, ok := typeSuffixes[p.peek().typ]
	if !ok {
		p.errorf("expected type suffix after index, got %s", p.next())
	}
	p.next()

	return &IndexExpr{Container: container, Index: index, Element: elem}
}
