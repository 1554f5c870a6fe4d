package brio

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType uint64
type stateFunc func(l *Lexer) stateFunc

const (
	EOF rune = 0

	TokenError TokenType = iota
	TokenEOF
	TokenNumber
	TokenBool
	TokenIdentifier

	TokenIf
	TokenElse
	TokenWhile

	TokenPlus
	TokenMinus
	TokenMulti
	TokenDiv
	TokenAssign
	TokenEquals
	TokenNotEquals
	TokenLess
	TokenGreater
	TokenAnd
	TokenOr
	TokenNot
	TokenOpenParentheses
	TokenCloseParentheses
	TokenOpenCurly
	TokenCloseCurly
	TokenComma
	TokenSemicolon
)

var keywordTable = map[string]TokenType{
	"if":    TokenIf,
	"else":  TokenElse,
	"while": TokenWhile,
	"true":  TokenBool,
	"false": TokenBool,
}

var operatorTable = map[string]TokenType{
	"+":  TokenPlus,
	"-":  TokenMinus,
	"*":  TokenMulti,
	"/":  TokenDiv,
	"=":  TokenAssign,
	"==": TokenEquals,
	"!=": TokenNotEquals,
	"<":  TokenLess,
	">":  TokenGreater,
	"&&": TokenAnd,
	"||": TokenOr,
	"!":  TokenNot,
	"(":  TokenOpenParentheses,
	")":  TokenCloseParentheses,
	"{":  TokenOpenCurly,
	"}":  TokenCloseCurly,
	",":  TokenComma,
	";":  TokenSemicolon,
}

// Location is a line:column position in the source, 1-based.
type Location struct {
	Line int
	Col  int
}

func (l *Location) String() string {
	if l == nil {
		return "-"
	}

	return strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Col)
}

type Token struct {
	Typ   TokenType
	Value string
	Loc   *Location
}

func (t Token) isValid() bool {
	return t.Typ != TokenError && t.Typ != TokenEOF
}

// Tokenizer is the token source consumed by the Parser. Do produces tokens
// until EOF or the first error, Get consumes them one at a time, and Err
// reports the lexing failure once an error token has been seen.
type Tokenizer interface {
	Do()
	Get() Token
	Err() error
	GetFilename() string
}

type Lexer struct {
	reader   *bufio.Reader
	filename string
	done     chan Token

	pos   Location
	prev  Location
	start Location
	err   error
}

func NewLexer(filename string) (*Lexer, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	l := NewLexerFromReader(strings.NewReader(string(data)))
	l.filename = filename

	return l, nil
}

func NewLexerFromReader(reader io.Reader) *Lexer {
	return &Lexer{
		reader:   bufio.NewReader(reader),
		filename: "input",
		done:     make(chan Token),
		pos:      Location{Line: 1, Col: 1},
	}
}

func NewLexerFromString(src string) *Lexer {
	return NewLexerFromReader(strings.NewReader(src))
}

func (l *Lexer) GetFilename() string {
	return l.filename
}

// Do runs the lexer state machine, pushing tokens into the channel until
// EOF or the first error, then closes the channel.
func (l *Lexer) Do() {
	for state := defaultState; state != nil; {
		state = state(l)
	}

	close(l.done)
}

// Get returns the next token. Once the input is exhausted it keeps
// returning EOF tokens.
func (l *Lexer) Get() Token {
	tok, ok := <-l.done
	if !ok {
		return Token{Typ: TokenEOF, Loc: &Location{Line: l.pos.Line, Col: l.pos.Col}}
	}

	return tok
}

// Err reports the lexing failure after an error token has been produced.
func (l *Lexer) Err() error {
	return l.err
}

// RunBlocking drains the lexer into a slice. The EOF token is not included.
func (l *Lexer) RunBlocking() ([]Token, error) {
	go l.Do()

	var tokens []Token
	for {
		t := l.Get()
		if t.Typ == TokenEOF {
			return tokens, nil
		}

		if t.Typ == TokenError {
			return nil, l.err
		}

		tokens = append(tokens, t)
	}
}

func defaultState(l *Lexer) stateFunc {
	for {
		switch r := l.peek(); {
		case r == EOF:
			l.mark()
			l.done <- Token{Typ: TokenEOF, Loc: l.startLoc()}
			return nil
		case unicode.IsSpace(r):
			l.next()
			continue
		case '0' <= r && r <= '9' || r == '.':
			return numberState
		case unicode.IsLetter(r):
			return identifierState
		default:
			return operatorState
		}
	}
}

func numberState(l *Lexer) stateFunc {
	l.mark()

	var num strings.Builder
	for r := l.peek(); '0' <= r && r <= '9'; r = l.peek() {
		num.WriteRune(l.next())
	}

	if l.peek() == '.' {
		if num.Len() == 0 {
			// Leading dot, as in ".5"
			return l.fail(&MalformedNumberError{Loc: l.startLoc(), Text: string(l.next())})
		}

		num.WriteRune(l.next())

		frac := 0
		for r := l.peek(); '0' <= r && r <= '9'; r = l.peek() {
			num.WriteRune(l.next())
			frac++
		}

		if frac == 0 || l.peek() == '.' {
			// Trailing dot ("5.") or a second dot ("1.2.3")
			return l.fail(&MalformedNumberError{Loc: l.startLoc(), Text: num.String()})
		}
	}

	return l.emitValue(TokenNumber, num.String())
}

func identifierState(l *Lexer) stateFunc {
	l.mark()

	var id strings.Builder
	id.WriteRune(l.next())
	for r := l.peek(); unicode.IsLetter(r) || unicode.IsDigit(r); r = l.peek() {
		id.WriteRune(l.next())
	}

	if t, ok := keywordTable[id.String()]; ok {
		return l.emitValue(t, id.String())
	}

	return l.emitValue(TokenIdentifier, id.String())
}

func operatorState(l *Lexer) stateFunc {
	l.mark()

	r := l.next()
	switch r { // Some operators can be two runes
	case '=', '!', '&', '|':
		op := string(r) + string(l.peek())
		if tok, ok := operatorTable[op]; ok {
			l.next() // Skip
			return l.emitValue(tok, op)
		}
	}

	if tok, ok := operatorTable[string(r)]; ok {
		return l.emitValue(tok, string(r))
	}

	return l.fail(&UnexpectedCharacterError{Loc: l.startLoc(), Char: r})
}

func (l *Lexer) fail(err error) stateFunc {
	l.err = err
	l.done <- Token{
		Typ:   TokenError,
		Value: err.Error(),
		Loc:   l.startLoc(),
	}

	return nil
}

func (l *Lexer) emitValue(t TokenType, val string) stateFunc {
	l.done <- Token{
		Typ:   t,
		Value: val,
		Loc:   l.startLoc(),
	}

	return defaultState
}

func (l *Lexer) mark() {
	l.start = l.pos
}

func (l *Lexer) startLoc() *Location {
	return &Location{Line: l.start.Line, Col: l.start.Col}
}

func (l *Lexer) peek() rune {
	r := l.next()
	if r != EOF {
		_ = l.reader.UnreadRune()
		l.pos = l.prev
	}

	return r
}

func (l *Lexer) next() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF
		}

		return utf8.RuneError
	}

	l.prev = l.pos
	if r == '\n' {
		l.pos.Line++
		l.pos.Col = 1
	} else {
		l.pos.Col++
	}

	return r
}
