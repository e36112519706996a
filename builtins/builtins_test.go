package builtins

import (
	"testing"

	"github.com/basixel/basixel/canvas"
	"github.com/basixel/basixel/mocks"
	"github.com/basixel/basixel/object"
	"github.com/stretchr/testify/assert"
)

func testEnv() *object.Environment {
	return object.NewTermEnvironment(mocks.NewMockTerm())
}

func callBuiltin(t *testing.T, env *object.Environment, name string, args ...object.Object) object.Object {
	t.Helper()
	fn, ok := Lookup(name)
	assert.True(t, ok, "no builtin %s", name)
	return fn.Fn(env, fn, args...)
}

func num(v float64) object.Object {
	return &object.FloatDbl{Value: v}
}

func str(s string) object.Object {
	return &object.String{Value: s}
}

func TestNumericBuiltins(t *testing.T) {
	env := testEnv()

	tests := []struct {
		name string
		arg  float64
		want float64
	}{
		{"ABS", -4.5, 4.5},
		{"INT", 2.7, 2},
		{"INT", -2.1, -3},
		{"FIX", 2.7, 2},
		{"FIX", -2.7, -2},
		{"SGN", -7, -1},
		{"SGN", 0, 0},
		{"SGN", 12, 1},
		{"SQR", 16, 4},
		{"EXP", 0, 1},
		{"LOG", 1, 0},
		{"SIN", 0, 0},
		{"COS", 0, 1},
		{"ATN", 0, 0},
	}

	for _, tt := range tests {
		res := callBuiltin(t, env, tt.name, num(tt.arg))
		got, ok := toF(res)
		assert.True(t, ok, "%s(%v) -> %s", tt.name, tt.arg, res.Inspect())
		assert.InDelta(t, tt.want, got, 1e-9, "%s(%v)", tt.name, tt.arg)
	}
}

func toF(obj object.Object) (float64, bool) {
	switch o := obj.(type) {
	case *object.Integer:
		return float64(o.Value), true
	case *object.IntDbl:
		return float64(o.Value), true
	case *object.FloatSgl:
		return float64(o.Value), true
	case *object.FloatDbl:
		return o.Value, true
	}
	return 0, false
}

func TestNumericErrors(t *testing.T) {
	env := testEnv()

	assert.IsType(t, &object.Error{}, callBuiltin(t, env, "SQR", num(-1)))
	assert.IsType(t, &object.Error{}, callBuiltin(t, env, "LOG", num(0)))
	assert.IsType(t, &object.Error{}, callBuiltin(t, env, "ABS", str("X")))
	assert.IsType(t, &object.Error{}, callBuiltin(t, env, "INT"))
}

func TestRndSequence(t *testing.T) {
	env := testEnv()

	first := callBuiltin(t, env, "RND").(*object.FloatSgl)
	repeat := callBuiltin(t, env, "RND", num(0)).(*object.FloatSgl)
	assert.Equal(t, first.Value, repeat.Value)

	second := callBuiltin(t, env, "RND").(*object.FloatSgl)
	assert.NotEqual(t, first.Value, second.Value)
	assert.GreaterOrEqual(t, second.Value, float32(0))
	assert.Less(t, second.Value, float32(1))

	// reseeding replays the series
	env.Randomize(99)
	a := callBuiltin(t, env, "RND").(*object.FloatSgl)
	env.Randomize(99)
	b := callBuiltin(t, env, "RND").(*object.FloatSgl)
	assert.Equal(t, a.Value, b.Value)
}

func TestStringBuiltins(t *testing.T) {
	env := testEnv()

	tests := []struct {
		name string
		args []object.Object
		want string
	}{
		{"LEFT$", []object.Object{str("BASIC"), num(2)}, "BA"},
		{"LEFT$", []object.Object{str("AB"), num(10)}, "AB"},
		{"RIGHT$", []object.Object{str("BASIC"), num(3)}, "SIC"},
		{"MID$", []object.Object{str("GRAPHICS"), num(4)}, "PHICS"},
		{"MID$", []object.Object{str("GRAPHICS"), num(4), num(2)}, "PH"},
		{"MID$", []object.Object{str("ABC"), num(9)}, ""},
		{"CHR$", []object.Object{num(65)}, "A"},
		{"SPACE$", []object.Object{num(3)}, "   "},
		{"STRING$", []object.Object{num(4), num(42)}, "****"},
		{"STRING$", []object.Object{num(2), str("ab")}, "aa"},
		{"UCASE$", []object.Object{str("MiXeD")}, "MIXED"},
		{"LCASE$", []object.Object{str("MiXeD")}, "mixed"},
		{"LTRIM$", []object.Object{str("  hi ")}, "hi "},
		{"RTRIM$", []object.Object{str("  hi ")}, "  hi"},
		{"STR$", []object.Object{num(12)}, " 12"},
		{"STR$", []object.Object{num(-3.5)}, "-3.5"},
	}

	for _, tt := range tests {
		res := callBuiltin(t, env, tt.name, tt.args...)
		s, ok := res.(*object.String)
		assert.True(t, ok, "%s -> %s", tt.name, res.Inspect())
		assert.Equal(t, tt.want, s.Value, tt.name)
	}
}

func TestLenAscInstr(t *testing.T) {
	env := testEnv()

	l := callBuiltin(t, env, "LEN", str("HELLO")).(*object.Integer)
	assert.EqualValues(t, 5, l.Value)

	a := callBuiltin(t, env, "ASC", str("A")).(*object.Integer)
	assert.EqualValues(t, 65, a.Value)
	assert.IsType(t, &object.Error{}, callBuiltin(t, env, "ASC", str("")))

	tests := []struct {
		args []object.Object
		want int16
	}{
		{[]object.Object{str("ABCABC"), str("BC")}, 2},
		{[]object.Object{num(3), str("ABCABC"), str("BC")}, 5},
		{[]object.Object{str("ABC"), str("Z")}, 0},
		{[]object.Object{num(9), str("ABC"), str("A")}, 0},
	}
	for _, tt := range tests {
		res := callBuiltin(t, env, "INSTR", tt.args...).(*object.Integer)
		assert.Equal(t, tt.want, res.Value)
	}
}

func TestVal(t *testing.T) {
	env := testEnv()

	tests := []struct {
		in   string
		want float64
	}{
		{"42", 42},
		{" -3.5", -3.5},
		{"12AB", 12},
		{"1E2", 100},
		{"", 0},
		{"HELLO", 0},
		{".5X", 0.5},
	}
	for _, tt := range tests {
		res := callBuiltin(t, env, "VAL", str(tt.in)).(*object.FloatDbl)
		assert.Equal(t, tt.want, res.Value, "VAL(%q)", tt.in)
	}
}

func TestConversions(t *testing.T) {
	env := testEnv()

	ci := callBuiltin(t, env, "CINT", num(2.5)).(*object.Integer)
	assert.EqualValues(t, 3, ci.Value)
	assert.IsType(t, &object.Error{}, callBuiltin(t, env, "CINT", num(40000)))

	cl := callBuiltin(t, env, "CLNG", num(40000.4)).(*object.IntDbl)
	assert.EqualValues(t, 40000, cl.Value)

	assert.IsType(t, &object.FloatSgl{}, callBuiltin(t, env, "CSNG", num(1.5)))
	assert.IsType(t, &object.FloatDbl{}, callBuiltin(t, env, "CDBL", &object.Integer{Value: 2}))
}

func TestCursorBuiltins(t *testing.T) {
	term := mocks.NewMockTerm()
	env := object.NewTermEnvironment(term)

	term.Locate(4, 9)
	pos := callBuiltin(t, env, "POS", num(0)).(*object.Integer)
	assert.EqualValues(t, 10, pos.Value)
	row := callBuiltin(t, env, "CSRLIN").(*object.Integer)
	assert.EqualValues(t, 5, row.Value)
}

func TestInkey(t *testing.T) {
	term := mocks.NewMockTerm()
	env := object.NewTermEnvironment(term)

	empty := callBuiltin(t, env, "INKEY$").(*object.String)
	assert.Equal(t, "", empty.Value)

	term.Keys = []byte{'Q'}
	key := callBuiltin(t, env, "INKEY$").(*object.String)
	assert.Equal(t, "Q", key.Value)
}

func TestPointAndScreenSize(t *testing.T) {
	term := mocks.NewMockTerm()
	env := object.NewTermEnvironment(term)

	// before SCREEN the surface tracks the terminal cell grid
	w := callBuiltin(t, env, "SCREENWIDTH").(*object.Integer)
	assert.EqualValues(t, 640, w.Value)
	h := callBuiltin(t, env, "SCREENHEIGHT").(*object.Integer)
	assert.EqualValues(t, 400, h.Value)

	p := callBuiltin(t, env, "POINT", num(1), num(1)).(*object.Integer)
	assert.EqualValues(t, 0, p.Value)

	cv := canvas.New(320, 200)
	cv.Pset(5, 6, 9)
	env.SetScreen(cv)

	p = callBuiltin(t, env, "POINT", num(5), num(6)).(*object.Integer)
	assert.EqualValues(t, 9, p.Value)
	w2 := callBuiltin(t, env, "SCREENWIDTH").(*object.Integer)
	assert.EqualValues(t, 320, w2.Value)
}

func TestScreenSizeFollowsTerminalResize(t *testing.T) {
	term := mocks.NewMockTerm()
	env := object.NewTermEnvironment(term)
	env.SetScreen(canvas.NewForTerminal(term.Cols, term.Rows))

	w := callBuiltin(t, env, "SCREENWIDTH").(*object.Integer)
	assert.EqualValues(t, 640, w.Value)

	// a surface that was never pinned by SCREEN refits on query
	term.Cols, term.Rows = 100, 30
	w2 := callBuiltin(t, env, "SCREENWIDTH").(*object.Integer)
	assert.EqualValues(t, 800, w2.Value)
	h := callBuiltin(t, env, "SCREENHEIGHT").(*object.Integer)
	assert.EqualValues(t, 480, h.Value)

	// SCREEN pins the dimensions, later resizes are ignored
	env.Screen().SetMode(1)
	term.Cols = 120
	w3 := callBuiltin(t, env, "SCREENWIDTH").(*object.Integer)
	assert.EqualValues(t, 320, w3.Value)
}

func TestTimerAndClock(t *testing.T) {
	env := testEnv()

	tm := callBuiltin(t, env, "TIMER").(*object.FloatSgl)
	assert.GreaterOrEqual(t, tm.Value, float32(0))
	assert.Less(t, tm.Value, float32(86400))

	d := callBuiltin(t, env, "DATE$").(*object.String)
	assert.Len(t, d.Value, 10)
	tv := callBuiltin(t, env, "TIME$").(*object.String)
	assert.Len(t, tv.Value, 8)
}
