// Package lang implements the map-description language: lexing source text
// into tokens, parsing tokens into an abstract syntax tree, and the shared
// diagnostic Error type used by every compilation stage.
//
// The language is line-comment based ('#' to end of line) with
// insignificant whitespace; line and column numbers are tracked only for
// diagnostics. Lexing and parsing abort on the first error.
package lang

import (
	"strconv"
	"unicode"
)

const commentChar = '#'

type lexer struct {
	input  []rune
	i      int
	line   int
	col    int
	tokens []Token
}

// Lex splits input into tokens. It returns a *Error with the position of
// the first invalid character, unknown identifier or malformed number.
func Lex(input string) ([]Token, *Error) {
	lx := &lexer{input: []rune(input), line: 1, col: 1}
	return lx.run()
}

func (lx *lexer) run() ([]Token, *Error) {
	for lx.i < len(lx.input) {
		ch := lx.input[lx.i]
		switch {
		case unicode.IsLetter(ch):
			if err := lx.lexIdentifier(); err != nil {
				return nil, err
			}
		case unicode.IsDigit(ch):
			if err := lx.lexNumber(); err != nil {
				return nil, err
			}
		case ch == ',':
			lx.tokens = append(lx.tokens, Token{Kind: TokenComma, Pos: lx.pos()})
			lx.advance()
		case ch == '\n':
			lx.i++
			lx.line++
			lx.col = 1
		case unicode.IsSpace(ch):
			lx.advance()
		case ch == commentChar:
			lx.skipComment()
		default:
			return nil, NewError(InvalidCharacter, lx.pos())
		}
	}
	return lx.tokens, nil
}

func (lx *lexer) lexIdentifier() *Error {
	pos := lx.pos()
	word := lx.takeWhile(unicode.IsLetter)
	kind, ok := keywords[word]
	if !ok {
		return NewError(UnrecognizedKeyword, pos)
	}
	lx.tokens = append(lx.tokens, Token{Kind: kind, Pos: pos})
	return nil
}

func (lx *lexer) lexNumber() *Error {
	pos := lx.pos()
	digits := lx.takeWhile(unicode.IsDigit)
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return NewError(InvalidNumber, pos)
	}
	lx.tokens = append(lx.tokens, Token{Kind: TokenNumber, Value: int(n), Pos: pos})
	return nil
}

func (lx *lexer) skipComment() {
	for lx.i < len(lx.input) && lx.input[lx.i] != '\n' {
		lx.advance()
	}
}

func (lx *lexer) takeWhile(pred func(rune) bool) string {
	start := lx.i
	for lx.i < len(lx.input) && pred(lx.input[lx.i]) {
		lx.advance()
	}
	return string(lx.input[start:lx.i])
}

func (lx *lexer) advance() {
	lx.i++
	lx.col++
}

func (lx *lexer) pos() Position {
	return Position{Line: lx.line, Col: lx.col}
}
