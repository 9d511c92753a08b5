package lexer

import (
	"testing"

	"chimp/token"
)

func TestNextToken(t *testing.T) {
	input := `let five = 5;
let ten = 10;

let add = fn(x, y) {
  x + y;
};

let result = add(five, ten);
!-/*5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
`

	l := New(input)

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.LET, "let"},
		{token.IDENT, "five"},
		{token.ASSIGN, "="},
		{token.INT, "5"},
		{token.SEMICOLON, ";"},
		{token.LET, "let"},
		{token.IDENT, "ten"},
		{token.ASSIGN, "="},
		{token.INT, "10"},
		{token.SEMICOLON, ";"},
		{token.LET, "let"},
		{token.IDENT, "add"},
		{token.ASSIGN, "="},
		{token.FUNCTION, "fn"},
		{token.LPAREN, "("},
		{token.IDENT, "x"},
		{token.COMMA, ","},
		{token.IDENT, "y"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.IDENT, "x"},
		{token.PLUS, "+"},
		{token.IDENT, "y"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.SEMICOLON, ";"},
		{token.LET, "let"},
		{token.IDENT, "result"},
		{token.ASSIGN, "="},
		{token.IDENT, "add"},
		{token.LPAREN, "("},
		{token.IDENT, "five"},
		{token.COMMA, ","},
		{token.IDENT, "ten"},
		{token.RPAREN, ")"},
		{token.SEMICOLON, ";"},
		{token.BANG, "!"},
		{token.MINUS, "-"},
		{token.SLASH, "/"},
		{token.ASTERISK, "*"},
		{token.INT, "5"},
		{token.SEMICOLON, ";"},
		{token.INT, "5"},
		{token.LT, "<"},
		{token.INT, "10"},
		{token.GT, ">"},
		{token.INT, "5"},
		{token.SEMICOLON, ";"},
		{token.IF, "if"},
		{token.LPAREN, "("},
		{token.INT, "5"},
		{token.LT, "<"},
		{token.INT, "10"},
		{token.RPAREN, ")"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.TRUE, "true"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.ELSE, "else"},
		{token.LBRACE, "{"},
		{token.RETURN, "return"},
		{token.FALSE, "false"},
		{token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.INT, "10"},
		{token.EQ, "=="},
		{token.INT, "10"},
		{token.SEMICOLON, ";"},
		{token.INT, "10"},
		{token.NOT_EQ, "!="},
		{token.INT, "9"},
		{token.SEMICOLON, ";"},
		{token.EOF, ""},
	}

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("#%d - expected type `%s`, got `%s` (literal %q)", i, tt.expectedType, tok.Type, tok.Literal)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("#%d - expected literal `%s`, got `%s`", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextTokenSingle(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Token
	}{
		{"=", token.Token{Type: token.ASSIGN, Literal: "="}},
		{"+", token.Token{Type: token.PLUS, Literal: "+"}},
		{",", token.Token{Type: token.COMMA, Literal: ","}},
		{";", token.Token{Type: token.SEMICOLON, Literal: ";"}},
		{"(", token.Token{Type: token.LPAREN, Literal: "("}},
		{")", token.Token{Type: token.RPAREN, Literal: ")"}},
		{"{", token.Token{Type: token.LBRACE, Literal: "{"}},
		{"}", token.Token{Type: token.RBRACE, Literal: "}"}},
		{"let", token.Token{Type: token.LET, Literal: "let"}},
		{"letter", token.Token{Type: token.IDENT, Literal: "letter"}},
		{"fn", token.Token{Type: token.FUNCTION, Literal: "fn"}},
		{"fnn", token.Token{Type: token.IDENT, Literal: "fnn"}},
		{"foo_bar2", token.Token{Type: token.IDENT, Literal: "foo_bar2"}},
		{"", token.Token{Type: token.EOF, Literal: ""}},
		{"?", token.Token{Type: token.ILLEGAL, Literal: "?"}},
		{"@", token.Token{Type: token.ILLEGAL, Literal: "@"}},
	}

	for i, tt := range tests {
		tok := New(tt.input).NextToken()

		if tok != tt.expected {
			t.Fatalf("#%d - NextToken(%q) = %+v, want %+v", i, tt.input, tok, tt.expected)
		}
	}
}

func TestEOFIsTerminal(t *testing.T) {
	l := New("5")

	if tok := l.NextToken(); tok.Type != token.INT {
		t.Fatalf("expected INT, got %s", tok.Type)
	}

	// EOF must repeat forever once reached.
	for i := 0; i < 5; i++ {
		tok := l.NextToken()
		if tok.Type != token.EOF || tok.Literal != "" {
			t.Fatalf("#%d - expected repeating EOF, got %+v", i, tok)
		}
	}
}

func TestIllegalDoesNotStopScanning(t *testing.T) {
	l := New("a $ b")

	expected := []token.Token{
		{Type: token.IDENT, Literal: "a"},
		{Type: token.ILLEGAL, Literal: "$"},
		{Type: token.IDENT, Literal: "b"},
		{Type: token.EOF, Literal: ""},
	}

	for i, want := range expected {
		tok := l.NextToken()
		if tok != want {
			t.Fatalf("#%d - expected %+v, got %+v", i, want, tok)
		}
	}
}
