package lexer

import (
	"unicode"

	"chimp/token"
)

// Lexer is a single-pass scanner over an immutable source buffer. Each call
// to NextToken produces one token and advances the cursor; after the end of
// input it returns EOF tokens forever.
type Lexer struct {
	input   []rune
	pos     int  // position of the current character in the input string
	readPos int  // position of the next character to be read
	char    rune // current character being processed
}

var keywords = map[string]token.TokenType{
	"let":    token.LET,
	"fn":     token.FUNCTION,
	"true":   token.TRUE,
	"false":  token.FALSE,
	"if":     token.IF,
	"else":   token.ELSE,
	"return": token.RETURN,
}

func New(input string) *Lexer {
	l := &Lexer{input: []rune(input)}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.char = 0
	} else {
		l.char = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	switch l.char {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.EQ, Literal: "=="}
		} else {
			tok = token.Token{Type: token.ASSIGN, Literal: "="}
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.NOT_EQ, Literal: "!="}
		} else {
			tok = token.Token{Type: token.BANG, Literal: "!"}
		}
	case 0:
		tok = token.Token{Type: token.EOF, Literal: ""}
	default:
		if t, ok := token.LookupSymbol(l.char); ok {
			tok = token.Token{Type: t, Literal: string(l.char)}
		} else if isLetter(l.char) {
			return l.readIdentifier()
		} else if isDigit(l.char) {
			return l.readNumber()
		} else {
			tok = token.Token{Type: token.ILLEGAL, Literal: string(l.char)}
		}
	}

	l.readChar()
	return tok
}

// readIdentifier consumes a maximal run of letters, digits, and underscores.
// The first character is already known to be a letter.
func (l *Lexer) readIdentifier() token.Token {
	pos := l.pos

	for isLetter(l.char) || isDigit(l.char) || l.char == '_' {
		l.readChar()
	}

	literal := string(l.input[pos:l.pos])

	return token.Token{Type: l.lookupIdent(literal), Literal: literal}
}

func (l *Lexer) lookupIdent(ident string) token.TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return token.IDENT
}

// readNumber consumes a maximal run of decimal digits. No sign, no radix
// prefix, no fractional part.
func (l *Lexer) readNumber() token.Token {
	pos := l.pos

	for isDigit(l.char) {
		l.readChar()
	}

	return token.Token{Type: token.INT, Literal: string(l.input[pos:l.pos])}
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.char) {
		l.readChar()
	}
}

func isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
