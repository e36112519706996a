package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/basixel/basixel/ast"
	"github.com/basixel/basixel/lexer"
	"github.com/basixel/basixel/token"
)

const (
	_ int = iota
	// LOWEST defines the bottom of the priority stack
	LOWEST
	LOGICOR  // OR, XOR
	LOGICAND // AND
	LOGICNOT // NOT x
	EQUALS   // = <> < > <= >=
	SUM      // + -
	PRODUCT  // * / \ MOD
	PREFIX   // -x
	POWER    // ^ binds tightest of the operators
	CALL     // name(args)
)

var precedences = map[token.TokenType]int{
	token.OR:       LOGICOR,
	token.XOR:      LOGICOR,
	token.AND:      LOGICAND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       EQUALS,
	token.GT:       EQUALS,
	token.GTE:      EQUALS,
	token.LTE:      EQUALS,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.BSLASH:   PRODUCT,
	token.MOD:      PRODUCT,
	token.CARET:    POWER,
	token.LPAREN:   CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser an instance
type Parser struct {
	l      *lexer.Lexer
	errors []string

	curToken  token.Token
	peekToken token.Token

	prog   *ast.Program
	blocks []*openBlock

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn
}

// New create and return a Parser instance
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: []string{},
	}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.INTD, p.parseIntDoubleLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatSingleLiteral)
	p.registerPrefix(token.FLOATD, p.parseFloatDoubleLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.NOT, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, tt := range []token.TokenType{
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH,
		token.BSLASH, token.MOD, token.CARET,
		token.EQ, token.NOT_EQ, token.LT, token.GT, token.GTE, token.LTE,
		token.AND, token.OR, token.XOR,
	} {
		p.registerInfix(tt, p.parseInfixExpression)
	}
	p.registerInfix(token.LPAREN, p.parseCallExpression)

	// read two tokens so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns list of errors seen while parsing
func (p *Parser) Errors() []string {
	return p.errors
}

// ParseProgram consumes the whole input and returns the flat
// statement list with all jump targets resolved
func (p *Parser) ParseProgram() *ast.Program {
	p.prog = &ast.Program{Labels: make(map[string]int)}

	for !p.curTokenIs(token.EOF) {
		p.parseLine()
	}
	p.closeDanglingBlocks()
	p.checkJumpTargets()

	return p.prog
}

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
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

func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.reportError(fmt.Sprintf("expected %s, got %s", t, p.peekToken.Type))
}

func (p *Parser) reportError(msg string) {
	p.errors = append(p.errors, fmt.Sprintf("%s in line %d", msg, p.curToken.Line))
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.reportError(fmt.Sprintf("unexpected %s", p.curToken.Literal))
		return nil
	}
	leftExp := prefix()

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		leftExp = infix(leftExp)
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: strings.ToUpper(p.curToken.Literal)}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	n, err := strconv.ParseInt(p.curToken.Literal, 10, 16)
	if err != nil {
		p.reportError(fmt.Sprintf("could not parse %q as an integer", p.curToken.Literal))
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: int16(n)}
}

func (p *Parser) parseIntDoubleLiteral() ast.Expression {
	n, err := strconv.ParseInt(p.curToken.Literal, 10, 32)
	if err != nil {
		p.reportError(fmt.Sprintf("could not parse %q as an integer", p.curToken.Literal))
		return nil
	}
	return &ast.DblIntegerLiteral{Token: p.curToken, Value: int32(n)}
}

func (p *Parser) parseFloatSingleLiteral() ast.Expression {
	f, err := strconv.ParseFloat(p.curToken.Literal, 32)
	if err != nil {
		p.reportError(fmt.Sprintf("could not parse %q as a number", p.curToken.Literal))
		return nil
	}
	return &ast.FloatSingleLiteral{Token: p.curToken, Value: float32(f)}
}

func (p *Parser) parseFloatDoubleLiteral() ast.Expression {
	lit := strings.Map(func(r rune) rune {
		if r == 'd' || r == 'D' {
			return 'E'
		}
		return r
	}, p.curToken.Literal)
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		p.reportError(fmt.Sprintf("could not parse %q as a number", p.curToken.Literal))
		return nil
	}
	return &ast.FloatDoubleLiteral{Token: p.curToken, Value: f}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	exp := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: strings.ToUpper(p.curToken.Literal),
	}

	prec := PREFIX
	if p.curTokenIs(token.NOT) {
		prec = LOGICNOT
	}
	p.nextToken()
	exp.Right = p.parseExpression(prec)

	return exp
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	exp := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: strings.ToUpper(p.curToken.Literal),
	}

	prec, ok := precedences[p.curToken.Type]
	if !ok {
		prec = LOWEST
	}
	// exponentiation associates to the right
	if p.curTokenIs(token.CARET) {
		prec--
	}
	p.nextToken()
	exp.Right = p.parseExpression(prec)

	return exp
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	grp := &ast.GroupedExpression{Token: p.curToken}

	p.nextToken()
	grp.Exp = p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}

	return grp
}

// parseCallExpression covers builtin calls and array element reads,
// anything else in front of a paren is an error
func (p *Parser) parseCallExpression(left ast.Expression) ast.Expression {
	name, ok := left.(*ast.Identifier)
	if !ok {
		p.reportError(fmt.Sprintf("unexpected ( after %s", left.String()))
		return nil
	}

	call := &ast.CallExpression{Token: p.curToken, Name: name}
	call.Arguments = p.parseExpressionList(token.RPAREN)

	return call
}

// parseExpressionList reads comma separated expressions up to the
// closing token, leaving it as curToken
func (p *Parser) parseExpressionList(end token.TokenType) []ast.Expression {
	list := []ast.Expression{}

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}
