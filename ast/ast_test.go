package ast

import (
	"testing"

	"chimp/token"
)

func TestProgramString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.Token{Type: token.LET, Literal: "let"},
				Name: &Identifier{
					Token: token.Token{Type: token.IDENT, Literal: "myVar"},
					Value: "myVar",
				},
				Value: &Identifier{
					Token: token.Token{Type: token.IDENT, Literal: "anotherVar"},
					Value: "anotherVar",
				},
			},
		},
	}

	if got := program.String(); got != "let myVar = anotherVar;" {
		t.Fatalf("program.String() = %q, want %q", got, "let myVar = anotherVar;")
	}
}

func TestExpressionStrings(t *testing.T) {
	five := &IntegerLiteral{Token: token.Token{Type: token.INT, Literal: "5"}, Value: 5}

	tests := []struct {
		node     Node
		expected string
	}{
		{five, "5"},
		{&Boolean{Token: token.Token{Type: token.TRUE, Literal: "true"}, Value: true}, "true"},
		{&Boolean{Token: token.Token{Type: token.FALSE, Literal: "false"}, Value: false}, "false"},
		{
			&PrefixExpression{
				Token:    token.Token{Type: token.MINUS, Literal: "-"},
				Operator: "-",
				Right:    five,
			},
			"(-5)",
		},
		{
			&InfixExpression{
				Token:    token.Token{Type: token.PLUS, Literal: "+"},
				Left:     five,
				Operator: "+",
				Right:    five,
			},
			"(5 + 5)",
		},
		{
			&ReturnStatement{
				Token:       token.Token{Type: token.RETURN, Literal: "return"},
				ReturnValue: five,
			},
			"return 5;",
		},
	}

	for i, tt := range tests {
		if got := tt.node.String(); got != tt.expected {
			t.Fatalf("#%d - String() = %q, want %q", i, got, tt.expected)
		}
	}
}

func TestEmptyProgram(t *testing.T) {
	program := &Program{}

	if got := program.TokenLiteral(); got != "" {
		t.Fatalf("TokenLiteral() = %q, want empty", got)
	}

	if got := program.String(); got != "" {
		t.Fatalf("String() = %q, want empty", got)
	}
}
