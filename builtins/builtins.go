// Package builtins the function library available to programs
package builtins

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/basixel/basixel/berrors"
	"github.com/basixel/basixel/object"
)

// Lookup finds a builtin by its uppercase name
func Lookup(name string) (*object.Builtin, bool) {
	fn, ok := builtins[name]
	return fn, ok
}

func funcError(code int) *object.Error {
	return &object.Error{Message: berrors.TextForError(code), Code: code}
}

func illegalCall() *object.Error {
	return funcError(berrors.IllegalFuncCallErr)
}

func numArg(args []object.Object, n int) (float64, bool) {
	if n >= len(args) {
		return 0, false
	}
	switch o := args[n].(type) {
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

func intArg(args []object.Object, n int) (int, bool) {
	v, ok := numArg(args, n)
	if !ok {
		return 0, false
	}
	return int(math.Round(v)), true
}

func strArg(args []object.Object, n int) (string, bool) {
	if n >= len(args) {
		return "", false
	}
	s, ok := args[n].(*object.String)
	if !ok {
		return "", false
	}
	return s.Value, true
}

// isDouble reports whether any argument carries double precision
func isDouble(args []object.Object) bool {
	for _, a := range args {
		if _, ok := a.(*object.FloatDbl); ok {
			return true
		}
	}
	return false
}

func newFloat(v float64, dbl bool) object.Object {
	if dbl {
		return &object.FloatDbl{Value: v}
	}
	return &object.FloatSgl{Value: float32(v)}
}

// newInt narrows to 16 bits when the value fits
func newInt(v int32) object.Object {
	if (v >= math.MinInt16) && (v <= math.MaxInt16) {
		return &object.Integer{Value: int16(v)}
	}
	return &object.IntDbl{Value: v}
}

// mathFn wraps a one argument float function
func mathFn(f func(float64) (float64, bool)) *object.Builtin {
	return &object.Builtin{Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		v, ok := numArg(args, 0)
		if !ok || (len(args) != 1) {
			return illegalCall()
		}
		r, ok := f(v)
		if !ok {
			return illegalCall()
		}
		return newFloat(r, isDouble(args))
	}}
}

// strFn wraps a one argument string transform
func strFn(f func(string) string) *object.Builtin {
	return &object.Builtin{Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		s, ok := strArg(args, 0)
		if !ok || (len(args) != 1) {
			return illegalCall()
		}
		return &object.String{Value: f(s)}
	}}
}

var builtins = map[string]*object.Builtin{
	"ABS": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		if len(args) != 1 {
			return illegalCall()
		}
		switch o := args[0].(type) {
		case *object.Integer:
			if o.Value == math.MinInt16 {
				return &object.IntDbl{Value: -math.MinInt16}
			}
			if o.Value < 0 {
				return &object.Integer{Value: -o.Value}
			}
			return o
		case *object.IntDbl:
			if o.Value < 0 {
				return &object.IntDbl{Value: -o.Value}
			}
			return o
		case *object.FloatSgl:
			return &object.FloatSgl{Value: float32(math.Abs(float64(o.Value)))}
		case *object.FloatDbl:
			return &object.FloatDbl{Value: math.Abs(o.Value)}
		}
		return funcError(berrors.TypeMismatch)
	}},

	// INT floors, FIX cuts toward zero
	"INT": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		v, ok := numArg(args, 0)
		if !ok || (len(args) != 1) {
			return illegalCall()
		}
		return roundResult(math.Floor(v))
	}},
	"FIX": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		v, ok := numArg(args, 0)
		if !ok || (len(args) != 1) {
			return illegalCall()
		}
		return roundResult(math.Trunc(v))
	}},
	"SGN": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		v, ok := numArg(args, 0)
		if !ok || (len(args) != 1) {
			return illegalCall()
		}
		switch {
		case v > 0:
			return &object.Integer{Value: 1}
		case v < 0:
			return &object.Integer{Value: -1}
		}
		return &object.Integer{Value: 0}
	}},

	"SQR": mathFn(func(v float64) (float64, bool) {
		if v < 0 {
			return 0, false
		}
		return math.Sqrt(v), true
	}),
	"SIN": mathFn(func(v float64) (float64, bool) { return math.Sin(v), true }),
	"COS": mathFn(func(v float64) (float64, bool) { return math.Cos(v), true }),
	"TAN": mathFn(func(v float64) (float64, bool) { return math.Tan(v), true }),
	"ATN": mathFn(func(v float64) (float64, bool) { return math.Atan(v), true }),
	"EXP": mathFn(func(v float64) (float64, bool) { return math.Exp(v), true }),
	"LOG": mathFn(func(v float64) (float64, bool) {
		if v <= 0 {
			return 0, false
		}
		return math.Log(v), true
	}),

	"RND": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		x := 1
		if len(args) > 0 {
			n, ok := intArg(args, 0)
			if !ok {
				return illegalCall()
			}
			x = n
		}
		return env.Random(x)
	}},

	"LEN": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		s, ok := strArg(args, 0)
		if !ok || (len(args) != 1) {
			return illegalCall()
		}
		return &object.Integer{Value: int16(len(s))}
	}},

	"LEFT$": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		s, sok := strArg(args, 0)
		n, nok := intArg(args, 1)
		if !sok || !nok || (len(args) != 2) || (n < 0) {
			return illegalCall()
		}
		if n > len(s) {
			n = len(s)
		}
		return &object.String{Value: s[:n]}
	}},
	"RIGHT$": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		s, sok := strArg(args, 0)
		n, nok := intArg(args, 1)
		if !sok || !nok || (len(args) != 2) || (n < 0) {
			return illegalCall()
		}
		if n > len(s) {
			n = len(s)
		}
		return &object.String{Value: s[len(s)-n:]}
	}},

	// MID$ counts from one, a start past the end is empty
	"MID$": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		s, sok := strArg(args, 0)
		start, tok := intArg(args, 1)
		if !sok || !tok || (len(args) < 2) || (len(args) > 3) || (start < 1) {
			return illegalCall()
		}
		count := len(s)
		if len(args) == 3 {
			var cok bool
			if count, cok = intArg(args, 2); !cok || (count < 0) {
				return illegalCall()
			}
		}
		if start > len(s) {
			return &object.String{}
		}
		end := start - 1 + count
		if end > len(s) {
			end = len(s)
		}
		return &object.String{Value: s[start-1 : end]}
	}},

	// INSTR finds a substring, an optional leading argument sets the
	// one based start position
	"INSTR": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		start := 1
		if len(args) == 3 {
			n, ok := intArg(args, 0)
			if !ok || (n < 1) {
				return illegalCall()
			}
			start = n
			args = args[1:]
		}
		s, sok := strArg(args, 0)
		sub, bok := strArg(args, 1)
		if !sok || !bok || (len(args) != 2) {
			return illegalCall()
		}
		if start > len(s) {
			return &object.Integer{Value: 0}
		}
		at := strings.Index(s[start-1:], sub)
		if at < 0 {
			return &object.Integer{Value: 0}
		}
		return &object.Integer{Value: int16(start + at)}
	}},

	// STR$ keeps the sign slot, non-negative numbers lead with a space
	"STR$": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		if (len(args) != 1) || (args[0].Type() == object.STRING_OBJ) {
			return illegalCall()
		}
		text := args[0].Inspect()
		if !strings.HasPrefix(text, "-") {
			text = " " + text
		}
		return &object.String{Value: text}
	}},

	// VAL reads the longest numeric prefix, anything else is zero
	"VAL": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		s, ok := strArg(args, 0)
		if !ok || (len(args) != 1) {
			return illegalCall()
		}
		return &object.FloatDbl{Value: NumericPrefix(s)}
	}},

	"CHR$": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		n, ok := intArg(args, 0)
		if !ok || (len(args) != 1) || (n < 0) || (n > 255) {
			return illegalCall()
		}
		return &object.String{Value: string(rune(n))}
	}},
	"ASC": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		s, ok := strArg(args, 0)
		if !ok || (len(args) != 1) || (len(s) == 0) {
			return illegalCall()
		}
		return &object.Integer{Value: int16(s[0])}
	}},

	"SPACE$": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		n, ok := intArg(args, 0)
		if !ok || (len(args) != 1) || (n < 0) || (n > 255) {
			return illegalCall()
		}
		return &object.String{Value: strings.Repeat(" ", n)}
	}},
	// STRING$ repeats a character given as a code or as the first
	// character of a string
	"STRING$": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		n, ok := intArg(args, 0)
		if !ok || (len(args) != 2) || (n < 0) || (n > 255) {
			return illegalCall()
		}
		var ch byte
		if s, sok := strArg(args, 1); sok {
			if len(s) == 0 {
				return illegalCall()
			}
			ch = s[0]
		} else {
			code, cok := intArg(args, 1)
			if !cok || (code < 0) || (code > 255) {
				return illegalCall()
			}
			ch = byte(code)
		}
		return &object.String{Value: strings.Repeat(string(rune(ch)), n)}
	}},

	"UCASE$": strFn(strings.ToUpper),
	"LCASE$": strFn(strings.ToLower),
	"LTRIM$": strFn(func(s string) string { return strings.TrimLeft(s, " ") }),
	"RTRIM$": strFn(func(s string) string { return strings.TrimRight(s, " ") }),

	"CINT": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		v, ok := numArg(args, 0)
		if !ok || (len(args) != 1) {
			return illegalCall()
		}
		n := math.Round(v)
		if (n > math.MaxInt16) || (n < math.MinInt16) {
			return funcError(berrors.Overflow)
		}
		return &object.Integer{Value: int16(n)}
	}},
	"CLNG": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		v, ok := numArg(args, 0)
		if !ok || (len(args) != 1) {
			return illegalCall()
		}
		n := math.Round(v)
		if (n > math.MaxInt32) || (n < math.MinInt32) {
			return funcError(berrors.Overflow)
		}
		return &object.IntDbl{Value: int32(n)}
	}},
	"CSNG": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		v, ok := numArg(args, 0)
		if !ok || (len(args) != 1) {
			return illegalCall()
		}
		return &object.FloatSgl{Value: float32(v)}
	}},
	"CDBL": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		v, ok := numArg(args, 0)
		if !ok || (len(args) != 1) {
			return illegalCall()
		}
		return &object.FloatDbl{Value: v}
	}},

	// TIMER wraps at midnight
	"TIMER": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		now := time.Now()
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return &object.FloatSgl{Value: float32(now.Sub(midnight).Seconds())}
	}},
	"DATE$": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		return &object.String{Value: time.Now().Format("01-02-2006")}
	}},
	"TIME$": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		return &object.String{Value: time.Now().Format("15:04:05")}
	}},

	// INKEY$ polls without blocking, pending drawing goes out first
	"INKEY$": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		env.Flush()
		return &object.String{Value: env.Terminal().InKey()}
	}},

	"POS": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		_, col := env.Terminal().GetCursor()
		return &object.Integer{Value: int16(col + 1)}
	}},
	"CSRLIN": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		row, _ := env.Terminal().GetCursor()
		return &object.Integer{Value: int16(row + 1)}
	}},

	"POINT": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		x, xok := intArg(args, 0)
		y, yok := intArg(args, 1)
		if !xok || !yok || (len(args) != 2) {
			return illegalCall()
		}
		cv := env.Screen()
		if cv == nil {
			return &object.Integer{Value: 0}
		}
		return &object.Integer{Value: int16(cv.Point(x, y))}
	}},

	"SCREENWIDTH": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		w, _ := surfaceSize(env)
		return newInt(int32(w))
	}},
	"SCREENHEIGHT": {Fn: func(env *object.Environment, fn *object.Builtin, args ...object.Object) object.Object {
		_, h := surfaceSize(env)
		return newInt(int32(h))
	}},
}

// surfaceSize reads the live drawing size.  A surface that still
// follows the terminal is re-fitted first so resizes show up, one
// pinned by a SCREEN mode keeps its dimensions.
func surfaceSize(env *object.Environment) (int, int) {
	cv := env.Screen()
	if cv == nil {
		cols, rows := env.Terminal().Size()
		return cols * 8, rows * 16
	}
	if cv.TermSized() {
		cols, rows := env.Terminal().Size()
		cv.Resize(cols*8, rows*16)
	}
	return cv.Size()
}

// roundResult INT and FIX return an integer kind when the value fits
func roundResult(v float64) object.Object {
	if (v >= math.MinInt32) && (v <= math.MaxInt32) {
		return newInt(int32(v))
	}
	return &object.FloatDbl{Value: v}
}

// NumericPrefix the VAL scan, leading blanks skipped.  INPUT field
// coercion shares it.
func NumericPrefix(s string) float64 {
	s = strings.TrimLeft(s, " \t")
	end := 0
	seenDigit := false
	for end < len(s) {
		c := s[end]
		switch {
		case (c >= '0') && (c <= '9'):
			seenDigit = true
		case (c == '+') || (c == '-'):
			if (end != 0) && (s[end-1] != 'e') && (s[end-1] != 'E') {
				goto done
			}
		case c == '.':
		case (c == 'e') || (c == 'E'):
			if !seenDigit {
				goto done
			}
		default:
			goto done
		}
		end++
	}
done:
	for end > 0 {
		if v, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return v
		}
		end--
	}
	return 0
}
