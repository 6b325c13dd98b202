// Package lexer tokenizes a single logical line of source text.
//
// Indentation grouping happens one layer up, in internal/parser, on the raw
// line text (see original_source/src/indent_parser.rs); by the time a string
// reaches the Lexer it is already one concatenated logical line with its
// "--" comment stripped, so there is no NEWLINE token here.
package lexer

import (
	"github.com/funvibe/dtlc/internal/token"
)

type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

// New creates a Lexer over a single logical line's text. startLine is the
// source line number to report in tokens (for multi-line continuations the
// caller passes the line the group started on).
func New(input string, startLine int) *Lexer {
	l := &Lexer{input: input, line: startLine, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func newToken(tokenType token.TokenType, ch byte, line, col int) token.Token {
	return token.Token{Type: tokenType, Lexeme: string(ch), Line: line, Column: col}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

// NextToken scans and returns the next token, advancing the lexer.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	var tok token.Token

	switch l.ch {
	case 0:
		tok = token.Token{Type: token.EOF, Lexeme: "", Line: l.line, Column: l.column}
	case ':':
		tok = newToken(token.COLON, l.ch, l.line, l.column)
	case '=':
		tok = newToken(token.ASSIGN, l.ch, l.line, l.column)
	case '(':
		tok = newToken(token.LPAREN, l.ch, l.line, l.column)
	case ')':
		tok = newToken(token.RPAREN, l.ch, l.line, l.column)
	case '-':
		if l.peekChar() == '>' {
			line, col := l.line, l.column
			l.readChar()
			tok = token.Token{Type: token.ARROW, Lexeme: "->", Line: line, Column: col}
		} else {
			tok = token.Token{Type: token.ILLEGAL, Lexeme: string(l.ch), Line: l.line, Column: l.column}
		}
	default:
		if isLetter(l.ch) {
			return l.readIdent()
		}
		tok = token.Token{Type: token.ILLEGAL, Lexeme: string(l.ch), Line: l.line, Column: l.column}
	}

	l.readChar()
	return tok
}

func (l *Lexer) readIdent() token.Token {
	line, col := l.line, l.column
	start := l.position
	for isIdentChar(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.Token{Type: token.IDENT, Lexeme: lexeme, Line: line, Column: col}
}
