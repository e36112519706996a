package evaluator

import (
	"testing"

	"github.com/basixel/basixel/berrors"
	"github.com/basixel/basixel/lexer"
	"github.com/basixel/basixel/mocks"
	"github.com/basixel/basixel/object"
	"github.com/basixel/basixel/parser"
	"github.com/stretchr/testify/assert"
)

func runProgram(t *testing.T, src string) (*Interpreter, *mocks.MockTerm) {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	assert.Empty(t, p.Errors(), "parse errors for %q", src)

	term := mocks.NewMockTerm()
	interp := New(prog, object.NewTermEnvironment(term))
	interp.Run()
	return interp, term
}

func getNum(t *testing.T, i *Interpreter, name string) float64 {
	t.Helper()
	obj, ok := i.Env().Get(name)
	assert.True(t, ok, "no variable %s", name)
	v, vok := toFloat64(obj)
	assert.True(t, vok, "%s is not numeric: %s", name, obj.Inspect())
	return v
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"X = 2 + 3 * 4", 14},
		{"X = 10 / 4", 2.5},
		{"X = 7 \\ 2", 3},
		{"X = -7 \\ 2", -3},
		{"X = 7 MOD 3", 1},
		{"X = -7 MOD 3", 2},
		{"X = 7 MOD -3", -2},
		{"X = 2 ^ 10", 1024},
		{"X = 2 ^ 3 ^ 2", 512},
		{"X = -3 + 1", -2},
		{"X = 32767 + 1", 32768},
	}

	for _, tt := range tests {
		i, _ := runProgram(t, tt.src)
		assert.Nil(t, i.Err(), tt.src)
		assert.InDelta(t, tt.want, getNum(t, i, "X"), 1e-6, tt.src)
	}
}

func TestComparisons(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"X = 1 < 2", -1},
		{"X = 2 < 1", 0},
		{"X = 3 = 3", -1},
		{"X = 3 <> 3", 0},
		{"X = 2 >= 2", -1},
		{`X = "ABC" < "ABD"`, -1},
		{`X = "A" = "A"`, -1},
	}

	for _, tt := range tests {
		i, _ := runProgram(t, tt.src)
		assert.Equal(t, tt.want, getNum(t, i, "X"), tt.src)
	}
}

func TestLogicOperators(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"X = 6 AND 3", 2},
		{"X = 6 OR 3", 7},
		{"X = 6 XOR 3", 5},
		{"X = NOT 0", -1},
		{"X = NOT -1", 0},
		{"X = 1 < 2 AND 3 < 4", -1},
		{"X = 1.6 AND 3", 2},
	}

	for _, tt := range tests {
		i, _ := runProgram(t, tt.src)
		assert.Equal(t, tt.want, getNum(t, i, "X"), tt.src)
	}
}

func TestStringConcat(t *testing.T) {
	i, _ := runProgram(t, `A$ = "SIX" + "EL"`)
	obj, _ := i.Env().Get("A$")
	assert.Equal(t, "SIXEL", obj.(*object.String).Value)
}

func TestDivisionByZero(t *testing.T) {
	for _, src := range []string{"X = 1 / 0", "X = 1 \\ 0", "X = 1 MOD 0"} {
		i, _ := runProgram(t, src)
		assert.NotNil(t, i.Err(), src)
		assert.Equal(t, berrors.DivByZero, i.Err().Code, src)
	}
}

func TestTypeMismatch(t *testing.T) {
	tests := []string{
		`X = 1 + "A"`,
		`X = "A" - "B"`,
		`X$ = 5`,
		`X = "A"`,
	}
	for _, src := range tests {
		i, _ := runProgram(t, src)
		assert.NotNil(t, i.Err(), src)
		assert.Equal(t, berrors.TypeMismatch, i.Err().Code, src)
	}
}

func TestSuffixCoercion(t *testing.T) {
	i, _ := runProgram(t, "A% = 2.6\nB& = 70000.2\nC# = 1.5\nD! = 2.5")
	assert.Nil(t, i.Err())

	a, _ := i.Env().Get("A%")
	assert.Equal(t, &object.Integer{Value: 3}, a)
	b, _ := i.Env().Get("B&")
	assert.Equal(t, &object.IntDbl{Value: 70000}, b)
	c, _ := i.Env().Get("C#")
	assert.IsType(t, &object.FloatDbl{}, c)
	d, _ := i.Env().Get("D!")
	assert.IsType(t, &object.FloatSgl{}, d)
}

func TestIntegerOverflow(t *testing.T) {
	i, _ := runProgram(t, "A% = 40000")
	assert.NotNil(t, i.Err())
	assert.Equal(t, berrors.Overflow, i.Err().Code)
}

func TestUnsetVariablesReadZero(t *testing.T) {
	i, _ := runProgram(t, `X = Y + 1
S$ = T$ + "!"`)
	assert.Nil(t, i.Err())
	assert.Equal(t, 1.0, getNum(t, i, "X"))
	s, _ := i.Env().Get("S$")
	assert.Equal(t, "!", s.(*object.String).Value)
}

func TestArrays(t *testing.T) {
	src := `DIM A(5), B$(2, 3)
A(0) = 10
A(5) = 99
B$(2, 3) = "END"
X = A(5) + A(0)
Y$ = B$(2, 3)`
	i, _ := runProgram(t, src)
	assert.Nil(t, i.Err())
	assert.Equal(t, 109.0, getNum(t, i, "X"))
	y, _ := i.Env().Get("Y$")
	assert.Equal(t, "END", y.(*object.String).Value)
}

func TestArrayAutoDim(t *testing.T) {
	i, _ := runProgram(t, "A(10) = 7\nX = A(10)")
	assert.Nil(t, i.Err())
	assert.Equal(t, 7.0, getNum(t, i, "X"))

	// the implicit extent is ten, eleven is out of range
	i, _ = runProgram(t, "A(3) = 1\nA(11) = 2")
	assert.NotNil(t, i.Err())
	assert.Equal(t, berrors.SubscriptRange, i.Err().Code)
}

func TestArrayRedim(t *testing.T) {
	i, _ := runProgram(t, "DIM A(5)\nDIM A(9)")
	assert.NotNil(t, i.Err())
	assert.Equal(t, berrors.DuplicateDefinition, i.Err().Code)
}

func TestArraySubscriptRange(t *testing.T) {
	for _, src := range []string{"DIM A(4)\nA(5) = 1", "DIM A(4)\nX = A(-1)", "DIM A(2, 2)\nX = A(1)"} {
		i, _ := runProgram(t, src)
		assert.NotNil(t, i.Err(), src)
		assert.Equal(t, berrors.SubscriptRange, i.Err().Code, src)
	}
}

func TestBuiltinInExpression(t *testing.T) {
	i, _ := runProgram(t, `X = LEN("ABC") * 2 + ABS(-1)`)
	assert.Nil(t, i.Err())
	assert.Equal(t, 7.0, getNum(t, i, "X"))
}

func TestErrorCarriesLine(t *testing.T) {
	i, _ := runProgram(t, "A = 1\nB = 1 / 0")
	assert.NotNil(t, i.Err())
	assert.Contains(t, i.Err().Message, "Division by zero in 2")
}
