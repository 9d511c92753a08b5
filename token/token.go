package token

import "fmt"

const (
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENT
	INT

	// Operators
	ASSIGN
	PLUS
	MINUS
	SLASH
	ASTERISK
	BANG
	LT
	GT
	EQ
	NOT_EQ

	// Delimiters
	COMMA
	SEMICOLON
	LPAREN
	RPAREN
	LBRACE
	RBRACE

	// Keywords
	FUNCTION
	LET
	TRUE
	FALSE
	IF
	ELSE
	RETURN
)

type TokenType int

var names = map[TokenType]string{
	ILLEGAL:   "ILLEGAL",
	EOF:       "EOF",
	IDENT:     "IDENT",
	INT:       "INT",
	ASSIGN:    "ASSIGN",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	SLASH:     "SLASH",
	ASTERISK:  "ASTERISK",
	BANG:      "BANG",
	LT:        "LT",
	GT:        "GT",
	EQ:        "EQ",
	NOT_EQ:    "NOT_EQ",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",
	FUNCTION:  "FUNCTION",
	LET:       "LET",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
	IF:        "IF",
	ELSE:      "ELSE",
	RETURN:    "RETURN",
}

// String returns the category name as it appears in parser diagnostics.
func (t TokenType) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

type Token struct {
	Type    TokenType
	Literal string
}

var symbols = map[rune]TokenType{
	'=': ASSIGN,
	'+': PLUS,
	'-': MINUS,
	'/': SLASH,
	'*': ASTERISK,
	'!': BANG,
	'<': LT,
	'>': GT,
	',': COMMA,
	';': SEMICOLON,
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
}

// LookupSymbol maps a single-character operator or delimiter to its
// category. The two-character operators == and != are recognized by the
// lexer before this lookup applies.
func LookupSymbol(ch rune) (TokenType, bool) {
	t, ok := symbols[ch]
	return t, ok
}
