package parser

type StatementType int

const (
	StatementAssignment StatementType = iota
	StatementIndexAssignment
	StatementExpression
	StatementIf
	StatementFor
	StatementWhile
	StatementReturn
)

type Statement interface {
	Type() StatementType
}

type AssignmentStatement struct {
	Variable *Variable
	Value    Expression
}

func (s *AssignmentStatement) Type() StatementType {
	return StatementAssignment
}

// IndexAssignmentStatement stores Value at Index of Container.
type IndexAssignmentStatement struct {
	Container Expression
	Index     Expression
	Value     Expression
}

func (s *IndexAssignmentStatement) Type() StatementType {
	return StatementIndexAssignment
}

// ExpressionStatement evaluates an expression and discards its value.
type ExpressionStatement struct {
	Expr Expression
}

func (s *ExpressionStatement) Type() StatementType {
	return StatementExpression
}

type ConditionalBlock struct {
	Condition  Expression
	Statements []Statement
}

type IfStatement struct {
	ConditionalBlock
	ElseIfs []*ConditionalBlock
	Else    []Statement
}

func (s *IfStatement) Type() StatementType {
	return StatementIf
}

// ForStatement counts Variable from Initial to Final (inclusive) by Step.
// A negative step counts down.
type ForStatement struct {
	Variable   *Variable
	Initial    Expression
	Final      Expression
	Step       Expression
	Statements []Statement
}

func (s *ForStatement) Type() StatementType {
	return StatementFor
}

type WhileStatement struct {
	ConditionalBlock
}

func (s *WhileStatement) Type() StatementType {
	return StatementWhile
}

type ReturnStatement struct {
	Function *Function  // the function being returned from
	Value    Expression // nil in void functions
}

func (s *ReturnStatement) Type() StatementType {
	return StatementReturn
}
