package ast

import (
	"testing"

	"github.com/basixel/basixel/token"
	"github.com/stretchr/testify/assert"
)

func ident(name string) *Identifier {
	return &Identifier{Token: token.Token{Type: token.IDENT, Literal: name}, Value: name}
}

func intlit(v int16) *IntegerLiteral {
	return &IntegerLiteral{Token: token.Token{Type: token.INT, Literal: intLitText(v)}, Value: v}
}

func intLitText(v int16) string {
	digits := "0123456789"
	if v == 0 {
		return "0"
	}
	out := ""
	for v > 0 {
		out = string(digits[v%10]) + out
		v /= 10
	}
	return out
}

func TestStatementStrings(t *testing.T) {
	tests := []struct {
		stmt Statement
		want string
	}{
		{&LetStatement{Name: ident("X%"), Value: intlit(5)}, "X% = 5"},
		{&LetStatement{Name: ident("A"), Indices: []Expression{intlit(3)}, Value: intlit(7)}, "A(3) = 7"},
		{&GotoStatement{Target: "100"}, "GOTO 100"},
		{&GosubStatement{Target: "draw"}, "GOSUB draw"},
		{&ReturnStatement{}, "RETURN"},
		{&NextStatement{}, "NEXT"},
		{&NextStatement{Var: ident("I")}, "NEXT I"},
		{&WhileStatement{Condition: &InfixExpression{Left: ident("X"), Operator: "<", Right: intlit(10)}}, "WHILE (X < 10)"},
		{&WendStatement{}, "WEND"},
		{&RestoreStatement{}, "RESTORE"},
		{&RestoreStatement{Label: "shapes"}, "RESTORE shapes"},
		{&SwapStatement{A: ident("A"), B: ident("B")}, "SWAP A, B"},
		{&PsetStatement{X: intlit(5), Y: intlit(6)}, "PSET (5, 6)"},
		{&PsetStatement{X: intlit(5), Y: intlit(6), Preset: true}, "PRESET (5, 6)"},
		{&PaintStatement{X: intlit(1), Y: intlit(2), Fill: intlit(4)}, "PAINT (1, 2), 4"},
		{&LineStatement{X1: intlit(0), Y1: intlit(0), X2: intlit(9), Y2: intlit(9), Style: "BF"}, "LINE (0, 0)-(9, 9),, BF"},
		{&BezierStatement{X1: intlit(0), Y1: intlit(0), CX: intlit(5), CY: intlit(9), X2: intlit(9), Y2: intlit(0), Color: intlit(14), Thickness: intlit(3)},
			"BEZIER (0, 0)-(5, 9)-(9, 0), 14, 3"},
		{&OnStatement{Exp: ident("K"), Targets: []string{"100", "200"}}, "ON K GOTO 100, 200"},
		{&RemStatement{Comment: "setup"}, "REM setup"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.stmt.String())
	}
}

func TestForStatementString(t *testing.T) {
	fs := &ForStatement{
		Var:   ident("I"),
		Start: intlit(1),
		End:   intlit(10),
	}

	assert.Equal(t, "FOR I = 1 TO 10", fs.String())

	fs.Step = intlit(2)
	assert.Equal(t, "FOR I = 1 TO 10 STEP 2", fs.String())
}

func TestIfStatementString(t *testing.T) {
	ifs := &IfStatement{
		Condition: &InfixExpression{Left: ident("X"), Operator: ">", Right: intlit(0)},
		Then:      []Statement{&GotoStatement{Target: "50"}},
		Else:      []Statement{&EndStatement{Token: token.Token{Literal: "END"}}},
	}

	assert.Equal(t, "IF (X > 0) THEN GOTO 50 ELSE END", ifs.String())
}

func TestProgramLabelIndex(t *testing.T) {
	p := &Program{
		Statements: []Statement{&RemStatement{}, &EndStatement{Token: token.Token{Literal: "END"}}},
		Labels:     map[string]int{"10": 0, "DONE": 1},
	}

	idx, ok := p.LabelIndex("done")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = p.LabelIndex("missing")
	assert.False(t, ok)
}

func TestExpressionStrings(t *testing.T) {
	exp := &InfixExpression{
		Left:     &PrefixExpression{Operator: "-", Right: ident("A")},
		Operator: "^",
		Right:    &GroupedExpression{Exp: intlit(2)},
	}

	assert.Equal(t, "((-A) ^ (2))", exp.String())

	call := &CallExpression{Name: ident("MID$"), Arguments: []Expression{ident("S$"), intlit(2)}}
	assert.Equal(t, "MID$(S$, 2)", call.String())
}
