package parser

import (
	"fmt"
	"strings"

	"github.com/basixel/basixel/ast"
	"github.com/basixel/basixel/token"
)

type blockKind int

const (
	blockIf blockKind = iota
	blockFor
	blockWhile
	blockDo
)

// openBlock tracks a block construct whose closer has not been seen
// yet. IF chains collect every IF node and branch marker so END IF
// can patch all the jump targets at once.
type openBlock struct {
	kind    blockKind
	line    int
	opener  int
	forVar  string
	ifs     []int
	markers []int
	sawElse bool
}

func (p *Parser) emit(s ast.Statement) int {
	p.prog.Statements = append(p.prog.Statements, s)
	return len(p.prog.Statements) - 1
}

func (p *Parser) defineLabel(name string) {
	name = strings.ToUpper(name)
	if _, ok := p.prog.Labels[name]; ok {
		p.reportError(fmt.Sprintf("duplicate label %s", name))
		return
	}
	p.prog.Labels[name] = len(p.prog.Statements)
}

// parseLine handles one source line: optional line number, optional
// name label, then colon separated statements
func (p *Parser) parseLine() {
	if p.curTokenIs(token.LINENUM) {
		p.defineLabel(p.curToken.Literal)
		p.nextToken()
	}
	if p.curTokenIs(token.IDENT) && p.peekTokenIs(token.COLON) {
		p.defineLabel(p.curToken.Literal)
		p.nextToken()
		p.nextToken()
	}

	for {
		switch p.curToken.Type {
		case token.EOL:
			p.nextToken()
			return
		case token.EOF:
			return
		case token.COLON:
			p.nextToken()
			continue
		}

		p.parseStatement()
		p.nextToken()

		if !p.curTokenIs(token.COLON) && !p.curTokenIs(token.EOL) && !p.curTokenIs(token.EOF) {
			p.reportError(fmt.Sprintf("unexpected %s", p.curToken.Literal))
			p.skipToEOL()
		}
	}
}

func (p *Parser) skipToEOL() {
	for !p.curTokenIs(token.EOL) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

// parseStatement dispatches one statement, leaving curToken on its
// final token. Block constructs manage the open block stack.
func (p *Parser) parseStatement() {
	switch p.curToken.Type {
	case token.IF:
		p.parseIfStatement()
	case token.ELSEIF:
		p.parseElseIf()
	case token.ELSE:
		p.parseBlockElse()
	case token.END:
		if p.peekTokenIs(token.IF) {
			p.nextToken()
			p.parseEndIf()
		} else {
			p.emit(&ast.EndStatement{Token: p.curToken})
		}
	case token.FOR:
		p.parseForStatement()
	case token.NEXT:
		p.parseNextStatement()
	case token.WHILE:
		p.parseWhileStatement()
	case token.WEND:
		p.parseWendStatement()
	case token.DO:
		p.parseDoStatement()
	case token.LOOP:
		p.parseLoopStatement()
	default:
		if s := p.parseSimpleStatement(); s != nil {
			p.emit(s)
		}
	}
}

// parseSimpleStatement parses every statement that is legal inside a
// single line IF branch. Returns nil after a parse error.
func (p *Parser) parseSimpleStatement() ast.Statement {
	switch p.curToken.Type {
	case token.REM:
		return &ast.RemStatement{Token: p.curToken, Comment: p.curToken.Literal}
	case token.LET:
		tok := p.curToken
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		return p.parseLetStatement(tok)
	case token.IDENT:
		return p.parseLetStatement(p.curToken)
	case token.DIM:
		return p.parseDimStatement()
	case token.PRINT:
		return p.parsePrintStatement()
	case token.INPUT:
		return p.parseInputStatement()
	case token.GOTO:
		tok := p.curToken
		return &ast.GotoStatement{Token: tok, Target: p.parseJumpTarget()}
	case token.GOSUB:
		tok := p.curToken
		return &ast.GosubStatement{Token: tok, Target: p.parseJumpTarget()}
	case token.RETURN:
		return &ast.ReturnStatement{Token: p.curToken}
	case token.ON:
		return p.parseOnStatement()
	case token.DATA:
		return p.parseDataStatement()
	case token.READ:
		return p.parseReadStatement()
	case token.RESTORE:
		stmt := &ast.RestoreStatement{Token: p.curToken}
		if p.peekTokenIs(token.INT) || p.peekTokenIs(token.INTD) || p.peekTokenIs(token.IDENT) {
			stmt.Label = p.parseJumpTarget()
		}
		return stmt
	case token.STOP:
		return &ast.EndStatement{Token: p.curToken}
	case token.SWAP:
		return p.parseSwapStatement()
	case token.RANDOMIZE:
		stmt := &ast.RandomizeStatement{Token: p.curToken}
		if !p.atStatementEnd() {
			p.nextToken()
			stmt.Seed = p.parseExpression(LOWEST)
		}
		return stmt
	case token.SLEEP:
		tok := p.curToken
		p.nextToken()
		return &ast.SleepStatement{Token: tok, Seconds: p.parseExpression(LOWEST)}
	case token.SOUND:
		return p.parseSoundStatement()
	case token.BEEP:
		return &ast.BeepStatement{Token: p.curToken}
	case token.CLS:
		return &ast.ClsStatement{Token: p.curToken}
	case token.SCREEN:
		tok := p.curToken
		p.nextToken()
		return &ast.ScreenStatement{Token: tok, Mode: p.parseExpression(LOWEST)}
	case token.COLOR:
		return p.parseColorStatement()
	case token.LOCATE:
		return p.parseLocateStatement()
	case token.WIDTH:
		tok := p.curToken
		p.nextToken()
		return &ast.WidthStatement{Token: tok, Cols: p.parseExpression(LOWEST)}
	case token.PSET:
		return p.parsePsetStatement(false)
	case token.PRESET:
		return p.parsePsetStatement(true)
	case token.LINE:
		return p.parseLineStatement()
	case token.CIRCLE:
		return p.parseCircleStatement()
	case token.PAINT:
		return p.parsePaintStatement()
	case token.BEZIER:
		return p.parseBezierStatement()
	case token.END:
		return &ast.EndStatement{Token: p.curToken}
	default:
		p.reportError(fmt.Sprintf("unexpected %s", p.curToken.Literal))
		p.skipToEOL()
		return nil
	}
}

// atStatementEnd reports whether the next token cannot start an
// expression because the statement is over
func (p *Parser) atStatementEnd() bool {
	switch p.peekToken.Type {
	case token.EOL, token.EOF, token.COLON, token.ELSE:
		return true
	}
	return false
}

// parseJumpTarget accepts a line number or a label name
func (p *Parser) parseJumpTarget() string {
	if p.peekTokenIs(token.INT) || p.peekTokenIs(token.INTD) ||
		p.peekTokenIs(token.LINENUM) || p.peekTokenIs(token.IDENT) {
		p.nextToken()
		return strings.ToUpper(p.curToken.Literal)
	}
	p.reportError("expected a line number or label")
	return ""
}

func (p *Parser) parseLetStatement(tok token.Token) ast.Statement {
	stmt := &ast.LetStatement{
		Token: tok,
		Name:  &ast.Identifier{Token: p.curToken, Value: strings.ToUpper(p.curToken.Literal)},
	}

	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		stmt.Indices = p.parseExpressionList(token.RPAREN)
	}
	if !p.expectPeek(token.EQ) {
		return nil
	}
	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)

	return stmt
}

func (p *Parser) parseDimStatement() ast.Statement {
	stmt := &ast.DimStatement{Token: p.curToken}

	for {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		decl := ast.DimDecl{
			Name: &ast.Identifier{Token: p.curToken, Value: strings.ToUpper(p.curToken.Literal)},
		}
		if !p.expectPeek(token.LPAREN) {
			return nil
		}
		decl.Dims = p.parseExpressionList(token.RPAREN)
		stmt.Vars = append(stmt.Vars, decl)

		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parsePrintStatement() ast.Statement {
	stmt := &ast.PrintStatement{Token: p.curToken}

	for !p.atStatementEnd() {
		p.nextToken()

		var item ast.Expression
		switch p.curToken.Type {
		case token.TAB:
			tok := p.curToken
			if !p.expectPeek(token.LPAREN) {
				return nil
			}
			p.nextToken()
			col := p.parseExpression(LOWEST)
			if !p.expectPeek(token.RPAREN) {
				return nil
			}
			item = &ast.TabExpression{Token: tok, Col: col}
		case token.SPC:
			tok := p.curToken
			if !p.expectPeek(token.LPAREN) {
				return nil
			}
			p.nextToken()
			count := p.parseExpression(LOWEST)
			if !p.expectPeek(token.RPAREN) {
				return nil
			}
			item = &ast.SpcExpression{Token: tok, Count: count}
		default:
			item = p.parseExpression(LOWEST)
		}
		stmt.Items = append(stmt.Items, item)

		sep := ""
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
			sep = ";"
		} else if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			sep = ","
		}
		stmt.Seps = append(stmt.Seps, sep)
		if sep == "" {
			break
		}
	}

	return stmt
}

func (p *Parser) parseInputStatement() ast.Statement {
	stmt := &ast.InputStatement{Token: p.curToken, ShowQuestion: true}

	// a semicolon after the prompt suppresses the trailing question
	// mark, a comma keeps it
	if p.peekTokenIs(token.STRING) {
		p.nextToken()
		stmt.Prompt = p.curToken.Literal
		if p.peekTokenIs(token.SEMICOLON) {
			p.nextToken()
			stmt.ShowQuestion = false
		} else if !p.expectPeek(token.COMMA) {
			return nil
		}
	}

	for {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		stmt.Vars = append(stmt.Vars, &ast.Identifier{
			Token: p.curToken, Value: strings.ToUpper(p.curToken.Literal),
		})
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parseOnStatement() ast.Statement {
	stmt := &ast.OnStatement{Token: p.curToken}

	p.nextToken()
	stmt.Exp = p.parseExpression(LOWEST)

	switch {
	case p.peekTokenIs(token.GOSUB):
		stmt.Gosub = true
	case p.peekTokenIs(token.GOTO):
	default:
		p.peekError(token.GOTO)
		return nil
	}
	p.nextToken()

	for {
		tgt := p.parseJumpTarget()
		if tgt == "" {
			return nil
		}
		stmt.Targets = append(stmt.Targets, tgt)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	return stmt
}

// parseDataStatement collects literal values, bare words are kept as
// strings
func (p *Parser) parseDataStatement() ast.Statement {
	stmt := &ast.DataStatement{Token: p.curToken}

	for {
		p.nextToken()
		neg := false
		if p.curTokenIs(token.MINUS) {
			neg = true
			p.nextToken()
		}

		var val ast.Expression
		switch p.curToken.Type {
		case token.INT, token.INTD, token.FLOAT, token.FLOATD:
			val = p.parseNumericLiteral()
			if neg {
				val = &ast.PrefixExpression{Token: p.curToken, Operator: "-", Right: val}
			}
		case token.STRING:
			val = &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
		case token.IDENT:
			val = &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
		default:
			p.reportError(fmt.Sprintf("bad DATA value %s", p.curToken.Literal))
			return nil
		}
		stmt.Values = append(stmt.Values, val)

		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parseNumericLiteral() ast.Expression {
	switch p.curToken.Type {
	case token.INT:
		return p.parseIntegerLiteral()
	case token.INTD:
		return p.parseIntDoubleLiteral()
	case token.FLOATD:
		return p.parseFloatDoubleLiteral()
	default:
		return p.parseFloatSingleLiteral()
	}
}

func (p *Parser) parseReadStatement() ast.Statement {
	stmt := &ast.ReadStatement{Token: p.curToken}

	for {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		stmt.Vars = append(stmt.Vars, &ast.Identifier{
			Token: p.curToken, Value: strings.ToUpper(p.curToken.Literal),
		})
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	return stmt
}

func (p *Parser) parseSwapStatement() ast.Statement {
	stmt := &ast.SwapStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.A = &ast.Identifier{Token: p.curToken, Value: strings.ToUpper(p.curToken.Literal)}
	if !p.expectPeek(token.COMMA) {
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.B = &ast.Identifier{Token: p.curToken, Value: strings.ToUpper(p.curToken.Literal)}

	return stmt
}

func (p *Parser) parseColorStatement() ast.Statement {
	stmt := &ast.ColorStatement{Token: p.curToken}

	p.nextToken()
	stmt.Fg = p.parseExpression(LOWEST)
	if p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		stmt.Bg = p.parseExpression(LOWEST)
	}

	return stmt
}

func (p *Parser) parseSoundStatement() ast.Statement {
	stmt := &ast.SoundStatement{Token: p.curToken}

	p.nextToken()
	stmt.Freq = p.parseExpression(LOWEST)
	if !p.expectPeek(token.COMMA) {
		return nil
	}
	p.nextToken()
	stmt.Duration = p.parseExpression(LOWEST)

	return stmt
}

func (p *Parser) parseLocateStatement() ast.Statement {
	stmt := &ast.LocateStatement{Token: p.curToken}

	p.nextToken()
	stmt.Row = p.parseExpression(LOWEST)
	if !p.expectPeek(token.COMMA) {
		return nil
	}
	p.nextToken()
	stmt.Col = p.parseExpression(LOWEST)

	return stmt
}

// parsePoint reads a parenthesized coordinate pair
func (p *Parser) parsePoint() (ast.Expression, ast.Expression, bool) {
	if !p.expectPeek(token.LPAREN) {
		return nil, nil, false
	}
	p.nextToken()
	x := p.parseExpression(LOWEST)
	if !p.expectPeek(token.COMMA) {
		return nil, nil, false
	}
	p.nextToken()
	y := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil, nil, false
	}
	return x, y, true
}

func (p *Parser) parsePsetStatement(preset bool) ast.Statement {
	stmt := &ast.PsetStatement{Token: p.curToken, Preset: preset}

	var ok bool
	if stmt.X, stmt.Y, ok = p.parsePoint(); !ok {
		return nil
	}
	if p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		stmt.Color = p.parseExpression(LOWEST)
	}

	return stmt
}

func (p *Parser) parseLineStatement() ast.Statement {
	stmt := &ast.LineStatement{Token: p.curToken}

	var ok bool
	if stmt.X1, stmt.Y1, ok = p.parsePoint(); !ok {
		return nil
	}
	if !p.expectPeek(token.MINUS) {
		return nil
	}
	if stmt.X2, stmt.Y2, ok = p.parsePoint(); !ok {
		return nil
	}

	if p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.peekTokenIs(token.COMMA) {
			p.nextToken()
			stmt.Color = p.parseExpression(LOWEST)
		}
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if !p.expectPeek(token.IDENT) {
				return nil
			}
			stmt.Style = strings.ToUpper(p.curToken.Literal)
			if stmt.Style != "B" && stmt.Style != "BF" {
				p.reportError(fmt.Sprintf("bad LINE option %s", p.curToken.Literal))
				return nil
			}
		}
	}

	return stmt
}

func (p *Parser) parseCircleStatement() ast.Statement {
	stmt := &ast.CircleStatement{Token: p.curToken}

	var ok bool
	if stmt.X, stmt.Y, ok = p.parsePoint(); !ok {
		return nil
	}
	if !p.expectPeek(token.COMMA) {
		return nil
	}
	p.nextToken()
	stmt.R = p.parseExpression(LOWEST)

	// trailing options can be skipped with empty commas
	for _, slot := range []*ast.Expression{&stmt.Color, &stmt.Start, &stmt.End, &stmt.Aspect} {
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
		if p.peekTokenIs(token.COMMA) {
			continue
		}
		if p.atStatementEnd() {
			break
		}
		p.nextToken()
		*slot = p.parseExpression(LOWEST)
	}

	return stmt
}

func (p *Parser) parsePaintStatement() ast.Statement {
	stmt := &ast.PaintStatement{Token: p.curToken}

	var ok bool
	if stmt.X, stmt.Y, ok = p.parsePoint(); !ok {
		return nil
	}
	if p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		stmt.Fill = p.parseExpression(LOWEST)
	}

	return stmt
}

func (p *Parser) parseBezierStatement() ast.Statement {
	stmt := &ast.BezierStatement{Token: p.curToken}

	var ok bool
	if stmt.X1, stmt.Y1, ok = p.parsePoint(); !ok {
		return nil
	}
	if !p.expectPeek(token.MINUS) {
		return nil
	}
	if stmt.CX, stmt.CY, ok = p.parsePoint(); !ok {
		return nil
	}
	if !p.expectPeek(token.MINUS) {
		return nil
	}
	if stmt.X2, stmt.Y2, ok = p.parsePoint(); !ok {
		return nil
	}

	if p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		stmt.Color = p.parseExpression(LOWEST)
	}
	if p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		stmt.Thickness = p.parseExpression(LOWEST)
	}

	return stmt
}
