package brio

// Expr is an AST node. Nodes are built once by the parser and never
// mutated afterwards; only the Store changes during evaluation.
type Expr interface{}

// Block is an ordered sequence of statements: the whole program, or a
// brace-delimited block. An empty Block evaluates to NoValue.
type Block struct {
	Statements []Expr
}

type NumberLiteral struct {
	Value float64
}

type BooleanLiteral struct {
	Value bool
}

type Identifier struct {
	Name string
}

type Assignment struct {
	Name  string
	Value Expr
}

type BinaryOp string

const (
	BinaryAddition       BinaryOp = "+"
	BinarySubtraction    BinaryOp = "-"
	BinaryMultiplication BinaryOp = "*"
	BinaryDivision       BinaryOp = "/"
	BinaryEquals         BinaryOp = "=="
	BinaryNotEquals      BinaryOp = "!="
	BinaryLess           BinaryOp = "<"
	BinaryGreater        BinaryOp = ">"
	BinaryAnd            BinaryOp = "&&"
	BinaryOr             BinaryOp = "||"
)

type BinaryExpr struct {
	Operation BinaryOp
	Op1       Expr
	Op2       Expr
}

type UnaryOp string

const (
	UnaryNegative UnaryOp = "-"
	UnaryNot      UnaryOp = "!"
)

type UnaryExpr struct {
	Operation UnaryOp
	Operand   Expr
}

type FuncCall struct {
	Name string
	Args []Expr
}

// IfExpr holds an if statement. Else is nil when no else branch was given.
type IfExpr struct {
	Condition Expr
	Then      Expr
	Else      Expr
}

type WhileExpr struct {
	Condition Expr
	Body      Expr
}
