package brio

import (
	"fmt"
	"strconv"
)

// Parser builds the AST by recursive descent with a single token of
// lookahead. The first error aborts the parse.
type Parser struct {
	filename  string
	tokenizer Tokenizer
	buf       *Token
}

func NewParser(tokenizer Tokenizer) *Parser {
	return &Parser{
		filename:  tokenizer.GetFilename(),
		tokenizer: tokenizer,
	}
}

func (p *Parser) GetFilename() string {
	return p.filename
}

// Run parses the whole input into a Block of statements.
func (p *Parser) Run() (*Block, error) {
	go p.tokenizer.Do()

	prog := &Block{}
	for !p.check(TokenEOF) {
		if p.check(TokenError) {
			return nil, p.lexError(p.peek())
		}

		stmt, err := p.statement()
		if err != nil {
			p.drain()
			return nil, err
		}

		prog.Statements = append(prog.Statements, stmt)
	}

	return prog, nil
}

// drain consumes the remaining tokens after an aborted parse so the
// tokenizer goroutine can finish instead of blocking on its channel send.
func (p *Parser) drain() {
	for {
		if tok := p.tokenizer.Get(); !tok.isValid() {
			return
		}
	}
}

func (p *Parser) peek() Token {
	if p.buf == nil {
		temp := p.next()
		p.buf = &temp
	}

	return *p.buf
}

func (p *Parser) next() Token {
	if p.buf != nil {
		if !p.buf.isValid() {
			// If an invalid token is buffered, don't try to get more tokens
			return *p.buf
		}

		temp := p.buf
		p.buf = nil

		return *temp
	}

	tok := p.tokenizer.Get()
	if !tok.isValid() {
		// Keep Error and EOF buffered since no more valid tokens follow
		p.buf = &tok
	}

	return tok
}

func (p *Parser) check(typ TokenType) bool {
	return p.peek().Typ == typ
}

func (p *Parser) take(typ TokenType, what string) (Token, error) {
	tok := p.next()
	if tok.Typ == TokenError {
		return tok, p.lexError(tok)
	}

	if tok.Typ != typ {
		return tok, &UnexpectedTokenError{Expected: what, Found: tok}
	}

	return tok, nil
}

func (p *Parser) lexError(tok Token) error {
	if err := p.tokenizer.Err(); err != nil {
		return err
	}

	return fmt.Errorf("%s: %s", tok.Loc, tok.Value)
}

func (p *Parser) statement() (Expr, error) {
	switch tok := p.peek(); tok.Typ {
	case TokenIf:
		return p.ifStmt()
	case TokenWhile:
		return p.whileStmt()
	case TokenOpenCurly:
		return p.blockStmt()
	default:
		return p.simpleStmt()
	}
}

// simpleStmt is an assignment or a bare expression followed by its
// terminator.
func (p *Parser) simpleStmt() (Expr, error) {
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}

	return expr, p.terminator()
}

// terminator consumes the ';' ending a simple statement. It is optional
// right before the end of input, a closing brace, or an else keyword.
func (p *Parser) terminator() error {
	switch tok := p.peek(); tok.Typ {
	case TokenSemicolon:
		p.next()
		return nil
	case TokenEOF, TokenCloseCurly, TokenElse:
		return nil
	case TokenError:
		return p.lexError(tok)
	default:
		return &UnexpectedTokenError{Expected: "';'", Found: tok}
	}
}

func (p *Parser) ifStmt() (Expr, error) {
	p.next() // if keyword

	cond, err := p.parenthesisedCondition()
	if err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}

	var elseBranch Expr
	if p.check(TokenElse) {
		p.next() // else keyword

		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}

	return &IfExpr{Condition: cond, Then: then, Else: elseBranch}, nil
}

func (p *Parser) whileStmt() (Expr, error) {
	p.next() // while keyword

	cond, err := p.parenthesisedCondition()
	if err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return &WhileExpr{Condition: cond, Body: body}, nil
}

func (p *Parser) parenthesisedCondition() (Expr, error) {
	if _, err := p.take(TokenOpenParentheses, "'('"); err != nil {
		return nil, err
	}

	cond, err := p.orExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.take(TokenCloseParentheses, "')'"); err != nil {
		return nil, err
	}

	return cond, nil
}

func (p *Parser) blockStmt() (Expr, error) {
	p.next() // {

	block := &Block{}
	for !p.check(TokenCloseCurly) {
		if p.check(TokenEOF) {
			return nil, &UnexpectedTokenError{Expected: "'}'", Found: p.peek()}
		}

		if p.check(TokenError) {
			return nil, p.lexError(p.peek())
		}

		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}

		block.Statements = append(block.Statements, stmt)
	}

	p.next() // }
	return block, nil
}

// expr parses an expression, turning it into an assignment when it started
// with a bare identifier, reduced to that identifier, and '=' is the next
// token. A parenthesised identifier is not an assignment target.
func (p *Parser) expr() (Expr, error) {
	bareIdentifier := p.check(TokenIdentifier)

	expr, err := p.orExpr()
	if err != nil {
		return nil, err
	}

	if id, ok := expr.(*Identifier); ok && bareIdentifier && p.check(TokenAssign) {
		p.next() // Skip =

		value, err := p.orExpr()
		if err != nil {
			return nil, err
		}

		return &Assignment{Name: id.Name, Value: value}, nil
	}

	return expr, nil
}

func (p *Parser) orExpr() (Expr, error) {
	lhs, err := p.andExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TokenOr) {
		tok := p.next()

		rhs, err := p.andExpr()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{Operation: BinaryOp(tok.Value), Op1: lhs, Op2: rhs}
	}

	return lhs, nil
}

func (p *Parser) andExpr() (Expr, error) {
	lhs, err := p.equalityExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TokenAnd) {
		tok := p.next()

		rhs, err := p.equalityExpr()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{Operation: BinaryOp(tok.Value), Op1: lhs, Op2: rhs}
	}

	return lhs, nil
}

func (p *Parser) equalityExpr() (Expr, error) {
	lhs, err := p.relationalExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TokenEquals) || p.check(TokenNotEquals) {
		tok := p.next()

		rhs, err := p.relationalExpr()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{Operation: BinaryOp(tok.Value), Op1: lhs, Op2: rhs}
	}

	return lhs, nil
}

func (p *Parser) relationalExpr() (Expr, error) {
	lhs, err := p.additiveExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TokenLess) || p.check(TokenGreater) {
		tok := p.next()

		rhs, err := p.additiveExpr()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{Operation: BinaryOp(tok.Value), Op1: lhs, Op2: rhs}
	}

	return lhs, nil
}

func (p *Parser) additiveExpr() (Expr, error) {
	lhs, err := p.multiplicativeExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TokenPlus) || p.check(TokenMinus) {
		tok := p.next()

		rhs, err := p.multiplicativeExpr()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{Operation: BinaryOp(tok.Value), Op1: lhs, Op2: rhs}
	}

	return lhs, nil
}

func (p *Parser) multiplicativeExpr() (Expr, error) {
	lhs, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}

	for p.check(TokenMulti) || p.check(TokenDiv) {
		tok := p.next()

		rhs, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{Operation: BinaryOp(tok.Value), Op1: lhs, Op2: rhs}
	}

	return lhs, nil
}

func (p *Parser) unaryExpr() (Expr, error) {
	switch tok := p.peek(); tok.Typ {
	case TokenMinus, TokenNot:
		p.next()

		operand, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}

		return &UnaryExpr{Operation: UnaryOp(tok.Value), Operand: operand}, nil
	}

	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	switch tok := p.peek(); tok.Typ {
	case TokenNumber:
		p.next()

		value, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, &MalformedNumberError{Loc: tok.Loc, Text: tok.Value}
		}

		return &NumberLiteral{Value: value}, nil
	case TokenBool:
		p.next()
		return &BooleanLiteral{Value: tok.Value == "true"}, nil
	case TokenIdentifier:
		p.next()

		if p.check(TokenOpenParentheses) {
			return p.funcCall(tok.Value)
		}

		return &Identifier{Name: tok.Value}, nil
	case TokenOpenParentheses:
		p.next()

		expr, err := p.orExpr()
		if err != nil {
			return nil, err
		}

		if _, err := p.take(TokenCloseParentheses, "')'"); err != nil {
			return nil, err
		}

		return expr, nil
	case TokenError:
		return nil, p.lexError(tok)
	default:
		return nil, &UnexpectedTokenError{Expected: "expression", Found: tok}
	}
}

func (p *Parser) funcCall(name string) (Expr, error) {
	p.next() // (

	call := &FuncCall{Name: name}
	if p.check(TokenCloseParentheses) {
		p.next()
		return call, nil
	}

	for {
		arg, err := p.orExpr()
		if err != nil {
			return nil, err
		}

		call.Args = append(call.Args, arg)

		if !p.check(TokenComma) {
			break
		}

		p.next() // Skip the comma
	}

	if _, err := p.take(TokenCloseParentheses, "')'"); err != nil {
		return nil, err
	}

	return call, nil
}
