package parser

import (
	"fmt"
	"strconv"

	"chimp/ast"
	"chimp/fault"
	"chimp/lexer"
	"chimp/token"
)

// Precedence levels, low to high. CALL is declared for call expressions but
// produced by no rule yet.
type Precedence int

const (
	LOWEST Precedence = iota + 1
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	CALL
)

func precedenceOf(t token.TokenType) Precedence {
	switch t {
	case token.EQ, token.NOT_EQ:
		return EQUALS
	case token.LT, token.GT:
		return LESSGREATER
	case token.PLUS, token.MINUS:
		return SUM
	case token.SLASH, token.ASTERISK:
		return PRODUCT
	default:
		return LOWEST
	}
}

type (
	prefixParseFn func() (ast.Expression, error)
	infixParseFn  func(ast.Expression) (ast.Expression, error)
)

// Parser builds a Program from the token stream with exactly two tokens of
// lookahead. Failures inside a statement are threaded up as fault values and
// absorbed at the ParseProgram loop: the statement is discarded, its
// diagnostic is already recorded, and parsing resumes at the next token.
type Parser struct {
	l         *lexer.Lexer
	errors    []string
	curToken  token.Token
	peekToken token.Token
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l: l,
	}

	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns the ordered diagnostic list. A non-empty list does not
// prevent ParseProgram from returning a Program; callers must inspect it to
// know whether the parse is complete and sound.
func (p *Parser) Errors() []string {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.TokenType) bool {
	return p.peekToken.Type == t
}

func (p *Parser) curPrecedence() Precedence {
	return precedenceOf(p.curToken.Type)
}

func (p *Parser) peekPrecedence() Precedence {
	return precedenceOf(p.peekToken.Type)
}

// expectPeek is the sole validation choke point for multi-token constructs:
// it advances past the peek token when it has the required category, and
// otherwise records a diagnostic and returns a structural-mismatch fault.
func (p *Parser) expectPeek(t token.TokenType) error {
	if !p.peekTokenIs(t) {
		msg := fmt.Sprintf("Expected next token to be %s, got %s instead", t, p.peekToken.Type)
		p.errors = append(p.errors, msg)
		return fault.New(fault.StructuralMismatchCode, msg).
			WithMetadata(fault.TokenMismatchMetadata{Expected: t, Got: p.peekToken.Type})
	}

	p.nextToken()
	return nil
}

// ParseProgram consumes the whole token stream and returns the Program built
// from every statement that succeeded. It never aborts early: a failed
// statement is dropped and the loop advances one token and continues.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curTokenIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err == nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseLetStatement() (*ast.LetStatement, error) {
	tok := p.curToken

	if err := p.expectPeek(token.IDENT); err != nil {
		return nil, err
	}

	name := &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if err := p.expectPeek(token.ASSIGN); err != nil {
		return nil, err
	}

	p.nextToken()

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	p.skipToSemicolon()

	return &ast.LetStatement{Token: tok, Name: name, Value: value}, nil
}

func (p *Parser) parseReturnStatement() (*ast.ReturnStatement, error) {
	tok := p.curToken

	p.nextToken()

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	p.skipToSemicolon()

	return &ast.ReturnStatement{Token: tok, ReturnValue: value}, nil
}

// skipToSemicolon advances permissively until a semicolon is current. EOF
// bounds the skip so that an unterminated statement still ends the parse.
func (p *Parser) skipToSemicolon() {
	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

func (p *Parser) parseExpressionStatement() (*ast.ExpressionStatement, error) {
	tok := p.curToken

	expression, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	// A trailing semicolon is optional at statement end.
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return &ast.ExpressionStatement{Token: tok, Expression: expression}, nil
}

// parseExpression is the precedence-climbing loop. An infix rule parses its
// right-hand operand at its own precedence, so a chain of equal-precedence
// operators associates left: the strict greater-than test below stops
// recursion at equal precedence.
func (p *Parser) parseExpression(precedence Precedence) (ast.Expression, error) {
	prefix := p.prefixParseFn(p.curToken.Type)
	if prefix == nil {
		msg := fmt.Sprintf("No prefix parse function for %s found", p.curToken.Type)
		p.errors = append(p.errors, msg)
		return nil, fault.New(fault.NoParseRuleCode, msg)
	}

	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFn(p.peekToken.Type)
		if infix == nil {
			return left, nil
		}

		p.nextToken()

		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// The rule tables are switches over the closed token categories rather than
// registration maps: the category set is fixed and exhaustively known.
func (p *Parser) prefixParseFn(t token.TokenType) prefixParseFn {
	switch t {
	case token.IDENT:
		return p.parseIdentifier
	case token.INT:
		return p.parseIntegerLiteral
	case token.BANG, token.MINUS:
		return p.parsePrefixExpression
	case token.TRUE, token.FALSE:
		return p.parseBoolean
	case token.LPAREN:
		return p.parseGroupedExpression
	case token.IF:
		return p.parseIfExpression
	default:
		return nil
	}
}

func (p *Parser) infixParseFn(t token.TokenType) infixParseFn {
	switch t {
	case token.PLUS, token.MINUS, token.SLASH, token.ASTERISK,
		token.EQ, token.NOT_EQ, token.LT, token.GT:
		return p.parseInfixExpression
	default:
		return nil
	}
}

func (p *Parser) parseIdentifier() (ast.Expression, error) {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}, nil
}

func (p *Parser) parseIntegerLiteral() (ast.Expression, error) {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		msg := fmt.Sprintf("could not parse %q as integer", p.curToken.Literal)
		p.errors = append(p.errors, msg)
		return nil, fault.New(fault.UnknownCode, msg).WithOriginal(err)
	}

	return &ast.IntegerLiteral{Token: p.curToken, Value: value}, nil
}

func (p *Parser) parseBoolean() (ast.Expression, error) {
	return &ast.Boolean{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}, nil
}

func (p *Parser) parsePrefixExpression() (ast.Expression, error) {
	tok := p.curToken

	p.nextToken()

	right, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}

	return &ast.PrefixExpression{Token: tok, Operator: tok.Literal, Right: right}, nil
}

func (p *Parser) parseInfixExpression(left ast.Expression) (ast.Expression, error) {
	tok := p.curToken
	precedence := p.curPrecedence()

	p.nextToken()

	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}

	return &ast.InfixExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}, nil
}

func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	p.nextToken()

	expression, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}

	return expression, nil
}

func (p *Parser) parseIfExpression() (ast.Expression, error) {
	tok := p.curToken

	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}

	p.nextToken()

	condition, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}

	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}

	consequence, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	if err := p.expectPeek(token.RBRACE); err != nil {
		return nil, err
	}

	var alternative *ast.BlockStatement
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()

		if err := p.expectPeek(token.LBRACE); err != nil {
			return nil, err
		}

		alternative, err = p.parseBlockStatement()
		if err != nil {
			return nil, err
		}

		if err := p.expectPeek(token.RBRACE); err != nil {
			return nil, err
		}
	}

	return &ast.IfExpression{
		Token:       tok,
		Condition:   condition,
		Consequence: consequence,
		Alternative: alternative,
	}, nil
}

// parseBlockStatement accumulates statements until the closing brace or EOF
// is peeked; the caller consumes the closing brace itself.
func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	tok := p.curToken

	statements := []ast.Statement{}

	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		statements = append(statements, stmt)
	}

	return &ast.BlockStatement{Token: tok, Statements: statements}, nil
}
