package object

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/basixel/basixel/canvas"
	"github.com/basixel/basixel/mocks"
)

func TestInspectAndType(t *testing.T) {
	tests := []struct {
		obj Object
		exp string
		tp  ObjectType
	}{
		{obj: &Integer{Value: 5}, exp: "5", tp: INTEGER_OBJ},
		{obj: &IntDbl{Value: 70000}, exp: "70000", tp: INTEGER_DBL},
		{obj: &FloatSgl{Value: 14.25}, exp: "14.25", tp: FLOATSGL_OBJ},
		{obj: &FloatDbl{Value: 0.5}, exp: "0.5", tp: FLOATDBL_OBJ},
		{obj: &String{Value: "Hello"}, exp: "Hello", tp: STRING_OBJ},
		{obj: &Error{Message: "Overflow"}, exp: "Overflow", tp: ERROR_OBJ},
		{obj: &Builtin{}, exp: "builtin function", tp: BUILTIN_OBJ},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.exp, tt.obj.Inspect())
		assert.Equal(t, tt.tp, tt.obj.Type())
	}
}

func TestEnvironmentFoldsCase(t *testing.T) {
	env := NewTermEnvironment(mocks.NewMockTerm())

	_, ok := env.Get("A")
	assert.False(t, ok)

	env.Set("count", &Integer{Value: 5})
	obj, ok := env.Get("COUNT")
	assert.True(t, ok)
	assert.Equal(t, int16(5), obj.(*Integer).Value)
}

func TestArrayOffset(t *testing.T) {
	arr := &Array{Dims: []int{2, 3}}

	tests := []struct {
		subs []int
		off  int
		ok   bool
	}{
		{[]int{0, 0}, 0, true},
		{[]int{0, 3}, 3, true},
		{[]int{1, 0}, 4, true},
		{[]int{2, 3}, 11, true},
		{[]int{3, 0}, 0, false},
		{[]int{0, 4}, 0, false},
		{[]int{0, -1}, 0, false},
		{[]int{1}, 0, false},
	}

	for _, tt := range tests {
		off, ok := arr.Offset(tt.subs)
		assert.Equal(t, tt.ok, ok, tt.subs)
		if ok {
			assert.Equal(t, tt.off, off, tt.subs)
		}
	}
}

func TestRandomSequence(t *testing.T) {
	env := NewTermEnvironment(mocks.NewMockTerm())

	first := env.Random(1).Value
	held := env.Random(0).Value
	assert.Equal(t, first, held)

	next := env.Random(1).Value
	assert.NotEqual(t, first, next)
	assert.GreaterOrEqual(t, first, float32(0))
	assert.Less(t, first, float32(1))

	// the same seed replays the same series
	env.Randomize(99)
	a := env.Random(1).Value
	env.Randomize(99)
	assert.Equal(t, a, env.Random(1).Value)
}

func TestScreenAttachment(t *testing.T) {
	env := NewTermEnvironment(mocks.NewMockTerm())
	assert.Nil(t, env.Screen())

	cv := canvas.New(320, 200)
	env.SetScreen(cv)
	assert.Same(t, cv, env.Screen())
}

func TestFlushHook(t *testing.T) {
	env := NewTermEnvironment(mocks.NewMockTerm())

	// no hook registered is a no-op
	env.Flush()

	calls := 0
	env.SetFlushHook(func() { calls++ })
	env.Flush()
	env.Flush()
	assert.Equal(t, 2, calls)
}
