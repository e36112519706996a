package parser

import (
	"fmt"
	"strings"

	"github.com/basixel/basixel/ast"
	"github.com/basixel/basixel/token"
)

func (p *Parser) pushBlock(b *openBlock) {
	b.line = p.curToken.Line
	p.blocks = append(p.blocks, b)
}

func (p *Parser) topBlock() *openBlock {
	if len(p.blocks) == 0 {
		return nil
	}
	return p.blocks[len(p.blocks)-1]
}

func (p *Parser) popBlock() *openBlock {
	b := p.topBlock()
	if b != nil {
		p.blocks = p.blocks[:len(p.blocks)-1]
	}
	return b
}

// parseIfStatement handles both forms. THEN at the end of the line
// opens a block whose false target gets patched at END IF; anything
// after THEN makes a single line IF with nested branches.
func (p *Parser) parseIfStatement() {
	stmt := &ast.IfStatement{Token: p.curToken}

	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.THEN) {
		p.skipToEOL()
		return
	}

	if p.peekTokenIs(token.EOL) || p.peekTokenIs(token.EOF) {
		stmt.Block = true
		idx := p.emit(stmt)
		p.pushBlock(&openBlock{kind: blockIf, ifs: []int{idx}})
		return
	}

	stmt.Then = p.parseInlineBranch()
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		stmt.Else = p.parseInlineBranch()
	}
	p.emit(stmt)
}

// parseInlineBranch reads the statements of one single line IF
// branch. A bare number is a GOTO to that line.
func (p *Parser) parseInlineBranch() []ast.Statement {
	var list []ast.Statement

	for {
		p.nextToken()

		var s ast.Statement
		switch p.curToken.Type {
		case token.INT, token.INTD, token.LINENUM:
			s = &ast.GotoStatement{Token: p.curToken, Target: p.curToken.Literal}
		case token.IF:
			s = p.parseInlineIf()
		default:
			s = p.parseSimpleStatement()
		}
		if s == nil {
			return list
		}
		list = append(list, s)

		if !p.peekTokenIs(token.COLON) {
			return list
		}
		p.nextToken()
		if p.peekTokenIs(token.ELSE) {
			return list
		}
	}
}

// parseInlineIf supports an IF nested inside another single line IF
func (p *Parser) parseInlineIf() ast.Statement {
	stmt := &ast.IfStatement{Token: p.curToken}

	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.THEN) {
		return nil
	}
	if p.peekTokenIs(token.EOL) || p.peekTokenIs(token.EOF) {
		p.reportError("block IF cannot nest inside a single line IF")
		return nil
	}
	stmt.Then = p.parseInlineBranch()
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		stmt.Else = p.parseInlineBranch()
	}

	return stmt
}

// parseElseIf ends the branch above with a marker and chains a fresh
// block IF onto the same open block
func (p *Parser) parseElseIf() {
	blk := p.topBlock()
	if blk == nil || blk.kind != blockIf || blk.sawElse {
		p.reportError("ELSEIF without IF")
		p.skipToEOL()
		return
	}

	blk.markers = append(blk.markers, p.emit(&ast.ElseStatement{Token: p.curToken}))

	stmt := &ast.IfStatement{Token: p.curToken, Block: true}
	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)
	if !p.expectPeek(token.THEN) {
		p.skipToEOL()
		return
	}
	if !p.peekTokenIs(token.EOL) && !p.peekTokenIs(token.EOF) {
		p.reportError("ELSEIF must end its line")
		p.skipToEOL()
		return
	}
	blk.ifs = append(blk.ifs, p.emit(stmt))
}

// parseBlockElse emits the branch terminator marker. ELSE IF on one
// line chains the same way ELSEIF does.
func (p *Parser) parseBlockElse() {
	if p.peekTokenIs(token.IF) {
		blk := p.topBlock()
		if blk == nil || blk.kind != blockIf || blk.sawElse {
			p.reportError("ELSE without IF")
			p.skipToEOL()
			return
		}
		blk.markers = append(blk.markers, p.emit(&ast.ElseStatement{Token: p.curToken}))

		p.nextToken()
		stmt := &ast.IfStatement{Token: p.curToken, Block: true}
		p.nextToken()
		stmt.Condition = p.parseExpression(LOWEST)
		if !p.expectPeek(token.THEN) {
			p.skipToEOL()
			return
		}
		blk.ifs = append(blk.ifs, p.emit(stmt))
		return
	}

	blk := p.topBlock()
	if blk == nil || blk.kind != blockIf || blk.sawElse {
		p.reportError("ELSE without IF")
		return
	}
	blk.markers = append(blk.markers, p.emit(&ast.ElseStatement{Token: p.curToken}))
	blk.sawElse = true
}

// parseEndIf patches the whole IF chain: each IF's false jump lands
// just past its marker, every marker jumps to the landing node
func (p *Parser) parseEndIf() {
	blk := p.topBlock()
	if blk == nil || blk.kind != blockIf {
		p.reportError("END IF without IF")
		return
	}
	p.popBlock()

	endIdx := p.emit(&ast.EndIfStatement{Token: p.curToken})

	for i, ifIdx := range blk.ifs {
		ifNode := p.prog.Statements[ifIdx].(*ast.IfStatement)
		if i < len(blk.markers) {
			ifNode.FalseTarget = blk.markers[i] + 1
		} else {
			ifNode.FalseTarget = endIdx
		}
	}
	for _, m := range blk.markers {
		p.prog.Statements[m].(*ast.ElseStatement).Target = endIdx
	}
}

func (p *Parser) parseForStatement() {
	stmt := &ast.ForStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		p.skipToEOL()
		return
	}
	stmt.Var = &ast.Identifier{Token: p.curToken, Value: strings.ToUpper(p.curToken.Literal)}
	if !p.expectPeek(token.EQ) {
		p.skipToEOL()
		return
	}
	p.nextToken()
	stmt.Start = p.parseExpression(LOWEST)
	if !p.expectPeek(token.TO) {
		p.skipToEOL()
		return
	}
	p.nextToken()
	stmt.End = p.parseExpression(LOWEST)
	if p.peekTokenIs(token.STEP) {
		p.nextToken()
		p.nextToken()
		stmt.Step = p.parseExpression(LOWEST)
	}

	idx := p.emit(stmt)
	p.pushBlock(&openBlock{kind: blockFor, opener: idx, forVar: stmt.Var.Value})
}

func (p *Parser) parseNextStatement() {
	stmt := &ast.NextStatement{Token: p.curToken}
	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		stmt.Var = &ast.Identifier{Token: p.curToken, Value: strings.ToUpper(p.curToken.Literal)}
	}

	blk := p.topBlock()
	if blk == nil || blk.kind != blockFor {
		p.reportError("NEXT without FOR")
		return
	}
	if stmt.Var != nil && stmt.Var.Value != blk.forVar {
		p.reportError("NEXT without FOR")
		return
	}
	p.popBlock()

	idx := p.emit(stmt)
	p.prog.Statements[blk.opener].(*ast.ForStatement).AfterNext = idx + 1
}

func (p *Parser) parseWhileStatement() {
	stmt := &ast.WhileStatement{Token: p.curToken}

	p.nextToken()
	stmt.Condition = p.parseExpression(LOWEST)

	idx := p.emit(stmt)
	p.pushBlock(&openBlock{kind: blockWhile, opener: idx})
}

func (p *Parser) parseWendStatement() {
	blk := p.topBlock()
	if blk == nil || blk.kind != blockWhile {
		p.reportError("WEND without WHILE")
		return
	}
	p.popBlock()

	idx := p.emit(&ast.WendStatement{Token: p.curToken, WhileIdx: blk.opener})
	p.prog.Statements[blk.opener].(*ast.WhileStatement).AfterWend = idx + 1
}

func (p *Parser) parseDoStatement() {
	stmt := &ast.DoStatement{Token: p.curToken}

	if p.peekTokenIs(token.WHILE) || p.peekTokenIs(token.UNTIL) {
		p.nextToken()
		stmt.While = p.curTokenIs(token.WHILE)
		p.nextToken()
		stmt.Condition = p.parseExpression(LOWEST)
	}

	idx := p.emit(stmt)
	p.pushBlock(&openBlock{kind: blockDo, opener: idx})
}

func (p *Parser) parseLoopStatement() {
	blk := p.topBlock()
	if blk == nil || blk.kind != blockDo {
		p.reportError("LOOP without DO")
		p.skipToEOL()
		return
	}
	p.popBlock()

	stmt := &ast.LoopStatement{Token: p.curToken, DoIdx: blk.opener}
	if p.peekTokenIs(token.WHILE) || p.peekTokenIs(token.UNTIL) {
		p.nextToken()
		stmt.While = p.curTokenIs(token.WHILE)
		p.nextToken()
		stmt.Condition = p.parseExpression(LOWEST)
	}

	idx := p.emit(stmt)
	p.prog.Statements[blk.opener].(*ast.DoStatement).AfterLoop = idx + 1
}

// closeDanglingBlocks reports every block construct still open when
// the source runs out
func (p *Parser) closeDanglingBlocks() {
	for _, blk := range p.blocks {
		var msg string
		switch blk.kind {
		case blockIf:
			msg = "IF without END IF"
		case blockFor:
			msg = "FOR without NEXT"
		case blockWhile:
			msg = "WHILE without WEND"
		case blockDo:
			msg = "DO without LOOP"
		}
		p.errors = append(p.errors, fmt.Sprintf("%s in line %d", msg, blk.line))
	}
	p.blocks = nil
}

// checkJumpTargets verifies every jump lands on a known label so a
// bad GOTO fails at parse time
func (p *Parser) checkJumpTargets() {
	for _, s := range p.prog.Statements {
		p.checkStatementTargets(s)
	}
}

func (p *Parser) checkStatementTargets(s ast.Statement) {
	switch st := s.(type) {
	case *ast.GotoStatement:
		p.requireLabel(st.Target, st.Token)
	case *ast.GosubStatement:
		p.requireLabel(st.Target, st.Token)
	case *ast.OnStatement:
		for _, t := range st.Targets {
			p.requireLabel(t, st.Token)
		}
	case *ast.RestoreStatement:
		if st.Label != "" {
			p.requireLabel(st.Label, st.Token)
		}
	case *ast.IfStatement:
		for _, sub := range st.Then {
			p.checkStatementTargets(sub)
		}
		for _, sub := range st.Else {
			p.checkStatementTargets(sub)
		}
	}
}

func (p *Parser) requireLabel(target string, tok token.Token) {
	if _, ok := p.prog.LabelIndex(target); !ok {
		p.errors = append(p.errors, fmt.Sprintf("undefined label %s in line %d", target, tok.Line))
	}
}
