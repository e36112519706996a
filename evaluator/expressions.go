// Package evaluator executes a parsed program against an environment
package evaluator

import (
	"fmt"
	"math"
	"strings"

	"github.com/basixel/basixel/ast"
	"github.com/basixel/basixel/berrors"
	"github.com/basixel/basixel/builtins"
	"github.com/basixel/basixel/object"
)

// numeric promotion order, wider kinds win
const (
	rankInteger = iota + 1
	rankIntDbl
	rankFloatSgl
	rankFloatDbl
)

func stdError(code int) *object.Error {
	return &object.Error{Message: berrors.TextForError(code), Code: code}
}

// errWithLine tags an error with the source line it happened on,
// errors that already carry one pass through
func errWithLine(err *object.Error, line int) *object.Error {
	if strings.Contains(err.Message, " in ") {
		return err
	}
	return &object.Error{
		Message: fmt.Sprintf("%s in %d", err.Message, line),
		Code:    err.Code,
	}
}

func evalExpression(exp ast.Expression, env *object.Environment) object.Object {
	switch node := exp.(type) {
	case *ast.IntegerLiteral:
		return &object.Integer{Value: node.Value}
	case *ast.DblIntegerLiteral:
		return &object.IntDbl{Value: node.Value}
	case *ast.FloatSingleLiteral:
		return &object.FloatSgl{Value: node.Value}
	case *ast.FloatDoubleLiteral:
		return &object.FloatDbl{Value: node.Value}
	case *ast.StringLiteral:
		return &object.String{Value: node.Value}
	case *ast.GroupedExpression:
		return evalExpression(node.Exp, env)
	case *ast.Identifier:
		return evalIdentifier(node, env)
	case *ast.PrefixExpression:
		return evalPrefixExpression(node, env)
	case *ast.InfixExpression:
		return evalInfixExpression(node, env)
	case *ast.CallExpression:
		return evalCallExpression(node, env)
	}
	return stdError(berrors.Syntax)
}

// evalIdentifier reads a variable, builtins that take no arguments
// evaluate directly so TIMER and INKEY$ work without parens
func evalIdentifier(id *ast.Identifier, env *object.Environment) object.Object {
	if fn, ok := builtins.Lookup(id.Value); ok {
		return fn.Fn(env, fn)
	}
	if obj, ok := env.Get(id.Value); ok {
		return obj
	}
	return zeroValue(id.Value)
}

// zeroValue an unset variable reads as the zero of its suffix kind
func zeroValue(name string) object.Object {
	switch nameSuffix(name) {
	case '$':
		return &object.String{}
	case '%':
		return &object.Integer{}
	case '&':
		return &object.IntDbl{}
	case '#':
		return &object.FloatDbl{}
	default:
		return &object.FloatSgl{}
	}
}

func nameSuffix(name string) byte {
	if len(name) == 0 {
		return 0
	}
	return name[len(name)-1]
}

func evalPrefixExpression(pe *ast.PrefixExpression, env *object.Environment) object.Object {
	right := evalExpression(pe.Right, env)
	if isError(right) {
		return right
	}

	switch pe.Operator {
	case "-":
		return negate(right)
	case "NOT":
		n, ok := roundToInt32(right)
		if !ok {
			return stdError(berrors.TypeMismatch)
		}
		return wrapInt(^n)
	}
	return stdError(berrors.Syntax)
}

func negate(obj object.Object) object.Object {
	switch o := obj.(type) {
	case *object.Integer:
		return &object.Integer{Value: -o.Value}
	case *object.IntDbl:
		return &object.IntDbl{Value: -o.Value}
	case *object.FloatSgl:
		return &object.FloatSgl{Value: -o.Value}
	case *object.FloatDbl:
		return &object.FloatDbl{Value: -o.Value}
	}
	return stdError(berrors.TypeMismatch)
}

func evalInfixExpression(ie *ast.InfixExpression, env *object.Environment) object.Object {
	left := evalExpression(ie.Left, env)
	if isError(left) {
		return left
	}
	right := evalExpression(ie.Right, env)
	if isError(right) {
		return right
	}

	lStr, lIsStr := left.(*object.String)
	rStr, rIsStr := right.(*object.String)
	if lIsStr != rIsStr {
		return stdError(berrors.TypeMismatch)
	}
	if lIsStr {
		return evalStringInfix(ie.Operator, lStr.Value, rStr.Value)
	}

	lv, lok := toFloat64(left)
	rv, rok := toFloat64(right)
	if !lok || !rok {
		return stdError(berrors.TypeMismatch)
	}

	switch ie.Operator {
	case "=", "<>", "<", ">", "<=", ">=":
		return boolInt(compareFloats(ie.Operator, lv, rv))
	case "AND", "OR", "XOR":
		return evalBitwise(ie.Operator, left, right)
	case "+", "-", "*":
		return evalArith(ie.Operator, left, right, lv, rv)
	case "/":
		if rv == 0 {
			return stdError(berrors.DivByZero)
		}
		if maxRank(left, right) == rankFloatDbl {
			return &object.FloatDbl{Value: lv / rv}
		}
		return &object.FloatSgl{Value: float32(lv / rv)}
	case "\\":
		ln, lok := roundToInt32(left)
		rn, rok := roundToInt32(right)
		if !lok || !rok {
			return stdError(berrors.TypeMismatch)
		}
		if rn == 0 {
			return stdError(berrors.DivByZero)
		}
		return wrapInt(ln / rn)
	case "MOD":
		ln, lok := roundToInt32(left)
		rn, rok := roundToInt32(right)
		if !lok || !rok {
			return stdError(berrors.TypeMismatch)
		}
		if rn == 0 {
			return stdError(berrors.DivByZero)
		}
		// remainder takes the sign of the divisor
		r := ln % rn
		if (r != 0) && ((r < 0) != (rn < 0)) {
			r += rn
		}
		return wrapInt(r)
	case "^":
		v := math.Pow(lv, rv)
		if maxRank(left, right) == rankFloatDbl {
			return &object.FloatDbl{Value: v}
		}
		return &object.FloatSgl{Value: float32(v)}
	}
	return stdError(berrors.Syntax)
}

func evalStringInfix(op, l, r string) object.Object {
	switch op {
	case "+":
		return &object.String{Value: l + r}
	case "=":
		return boolInt(l == r)
	case "<>":
		return boolInt(l != r)
	case "<":
		return boolInt(l < r)
	case ">":
		return boolInt(l > r)
	case "<=":
		return boolInt(l <= r)
	case ">=":
		return boolInt(l >= r)
	}
	return stdError(berrors.TypeMismatch)
}

// evalArith adds, subtracts or multiplies at the wider operand kind.
// int16 results that no longer fit widen, int32 overflow errors.
func evalArith(op string, left, right object.Object, lv, rv float64) object.Object {
	var v float64
	switch op {
	case "+":
		v = lv + rv
	case "-":
		v = lv - rv
	case "*":
		v = lv * rv
	}

	switch maxRank(left, right) {
	case rankInteger, rankIntDbl:
		if (v > math.MaxInt32) || (v < math.MinInt32) {
			return stdError(berrors.Overflow)
		}
		return wrapInt(int32(v))
	case rankFloatSgl:
		return &object.FloatSgl{Value: float32(v)}
	}
	return &object.FloatDbl{Value: v}
}

func evalBitwise(op string, left, right object.Object) object.Object {
	ln, lok := roundToInt32(left)
	rn, rok := roundToInt32(right)
	if !lok || !rok {
		return stdError(berrors.TypeMismatch)
	}

	var v int32
	switch op {
	case "AND":
		v = ln & rn
	case "OR":
		v = ln | rn
	case "XOR":
		v = ln ^ rn
	}
	return wrapInt(v)
}

func compareFloats(op string, l, r float64) bool {
	switch op {
	case "=":
		return l == r
	case "<>":
		return l != r
	case "<":
		return l < r
	case ">":
		return l > r
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	}
	return false
}

// boolInt comparisons are BASIC booleans, 0 and -1
func boolInt(b bool) *object.Integer {
	if b {
		return &object.Integer{Value: -1}
	}
	return &object.Integer{Value: 0}
}

// wrapInt narrows back to 16 bits when the value fits
func wrapInt(v int32) object.Object {
	if (v >= math.MinInt16) && (v <= math.MaxInt16) {
		return &object.Integer{Value: int16(v)}
	}
	return &object.IntDbl{Value: v}
}

func maxRank(objs ...object.Object) int {
	r := 0
	for _, o := range objs {
		if or := rankOf(o); or > r {
			r = or
		}
	}
	return r
}

func rankOf(obj object.Object) int {
	switch obj.(type) {
	case *object.Integer:
		return rankInteger
	case *object.IntDbl:
		return rankIntDbl
	case *object.FloatSgl:
		return rankFloatSgl
	case *object.FloatDbl:
		return rankFloatDbl
	}
	return 0
}

func toFloat64(obj object.Object) (float64, bool) {
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

func roundToInt32(obj object.Object) (int32, bool) {
	v, ok := toFloat64(obj)
	if !ok {
		return 0, false
	}
	return int32(math.Round(v)), true
}

func isTruthy(obj object.Object) bool {
	v, ok := toFloat64(obj)
	return ok && (v != 0)
}

func isError(obj object.Object) bool {
	if obj == nil {
		return false
	}
	return obj.Type() == object.ERROR_OBJ
}

// evalCallExpression is either a builtin call or an array element
// read, builtins win the name
func evalCallExpression(ce *ast.CallExpression, env *object.Environment) object.Object {
	args := make([]object.Object, 0, len(ce.Arguments))
	for _, a := range ce.Arguments {
		v := evalExpression(a, env)
		if isError(v) {
			return v
		}
		args = append(args, v)
	}

	if fn, ok := builtins.Lookup(ce.Name.Value); ok {
		return fn.Fn(env, fn, args...)
	}

	return evalArrayRead(ce.Name.Value, args, env)
}

func evalArrayRead(name string, subs []object.Object, env *object.Environment) object.Object {
	arr, err := fetchArray(name, len(subs), env)
	if err != nil {
		return err
	}

	off, oerr := arrayOffset(arr, subs)
	if oerr != nil {
		return oerr
	}
	if arr.Elements[off] == nil {
		return zeroValue(name)
	}
	return arr.Elements[off]
}

// arrayKey arrays live in the same namespace under a marker so A and
// A() can coexist
func arrayKey(name string) string {
	return name + "()"
}

// fetchArray looks an array up, dimensioning 0..10 per subscript on
// first use
func fetchArray(name string, nsubs int, env *object.Environment) (*object.Array, *object.Error) {
	obj, ok := env.Get(arrayKey(name))
	if ok {
		arr, isArr := obj.(*object.Array)
		if !isArr {
			return nil, stdError(berrors.TypeMismatch)
		}
		return arr, nil
	}

	if nsubs == 0 {
		return nil, stdError(berrors.Syntax)
	}
	dims := make([]int, nsubs)
	size := 1
	for i := range dims {
		dims[i] = 10
		size *= 11
	}
	arr := &object.Array{
		Elements: make([]object.Object, size),
		Dims:     dims,
		TypeID:   string(nameSuffix(name)),
	}
	env.Set(arrayKey(name), arr)
	return arr, nil
}

func arrayOffset(arr *object.Array, subs []object.Object) (int, *object.Error) {
	idx := make([]int, len(subs))
	for i, s := range subs {
		n, ok := roundToInt32(s)
		if !ok {
			return 0, stdError(berrors.TypeMismatch)
		}
		idx[i] = int(n)
	}
	off, ok := arr.Offset(idx)
	if !ok {
		return 0, stdError(berrors.SubscriptRange)
	}
	return off, nil
}

// assignVar stores a value under its name, coercing to the kind the
// suffix demands
func assignVar(name string, val object.Object, env *object.Environment) *object.Error {
	coerced, err := coerce(name, val)
	if err != nil {
		return err
	}
	env.Set(name, coerced)
	return nil
}

func assignArray(name string, subs []object.Object, val object.Object, env *object.Environment) *object.Error {
	arr, err := fetchArray(name, len(subs), env)
	if err != nil {
		return err
	}
	off, oerr := arrayOffset(arr, subs)
	if oerr != nil {
		return oerr
	}
	coerced, cerr := coerce(name, val)
	if cerr != nil {
		return cerr
	}
	arr.Elements[off] = coerced
	return nil
}

// coerce converts a value to the kind a variable name demands, a
// bare name defaults to single precision float
func coerce(name string, val object.Object) (object.Object, *object.Error) {
	if isError(val) {
		e := val.(*object.Error)
		return nil, e
	}

	if nameSuffix(name) == '$' {
		s, ok := val.(*object.String)
		if !ok {
			return nil, stdError(berrors.TypeMismatch)
		}
		return s, nil
	}

	v, ok := toFloat64(val)
	if !ok {
		return nil, stdError(berrors.TypeMismatch)
	}

	switch nameSuffix(name) {
	case '%':
		n := math.Round(v)
		if (n > math.MaxInt16) || (n < math.MinInt16) {
			return nil, stdError(berrors.Overflow)
		}
		return &object.Integer{Value: int16(n)}, nil
	case '&':
		n := math.Round(v)
		if (n > math.MaxInt32) || (n < math.MinInt32) {
			return nil, stdError(berrors.Overflow)
		}
		return &object.IntDbl{Value: int32(n)}, nil
	case '#':
		return &object.FloatDbl{Value: v}, nil
	case '!':
		return &object.FloatSgl{Value: float32(v)}, nil
	default:
		return val, nil
	}
}
