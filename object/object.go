// Package object how the interpreter holds values during execution
package object

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// BuiltinFunction is a function supplied by the interpreter itself
type BuiltinFunction func(env *Environment, fn *Builtin, args ...Object) Object

// ObjectType can always be displayed as a string
type ObjectType string

type Object interface {
	Type() ObjectType
	Inspect() string
}

const (
	ERROR_OBJ    = "ERROR"
	INTEGER_OBJ  = "INTEGER"
	INTEGER_DBL  = "INTDBL"
	FLOATSGL_OBJ = "FLOATSGL"
	FLOATDBL_OBJ = "FLOATDBL"
	STRING_OBJ   = "STRING"
	BUILTIN_OBJ  = "BUILTIN"
	ARRAY_OBJ    = "ARRAY"
)

// Console defines how to collect input and display output
type Console interface {
	Cls()
	Print(string)
	Println(string)

	Locate(int, int)
	GetCursor() (int, int)
	ReadKeys(count int) []byte
	InKey() string
	SoundBell()
	BreakCheck() bool
	Size() (cols int, rows int)
}

// Array a fixed extent container of values, stored flat in
// row-major order
type Array struct {
	Elements []Object
	Dims     []int // extent per dimension, index range is 0..n inclusive
	TypeID   string
}

func (ao *Array) Type() ObjectType { return ARRAY_OBJ }
func (ao *Array) Inspect() string {
	var out bytes.Buffer
	elements := []string{}
	for _, e := range ao.Elements {
		if e != nil {
			elements = append(elements, e.Inspect())
		}
	}
	out.WriteString(strings.Join(elements, ", "))
	return out.String()
}

// Offset maps a multi-dimension subscript onto the flat element
// slice, false when any subscript is out of range
func (ao *Array) Offset(subs []int) (int, bool) {
	if len(subs) != len(ao.Dims) {
		return 0, false
	}

	off := 0
	for i, s := range subs {
		if (s < 0) || (s > ao.Dims[i]) {
			return 0, false
		}
		off = off*(ao.Dims[i]+1) + s
	}
	return off, true
}

// Integer values
type Integer struct {
	Value int16
}

// Type returns my type
func (i *Integer) Type() ObjectType { return INTEGER_OBJ }

// Inspect returns value as a string
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// IntDbl values
type IntDbl struct {
	Value int32 // 32bit value
}

// Type returns my type
func (id *IntDbl) Type() ObjectType { return INTEGER_DBL }

// Inspect returns value as a string
func (id *IntDbl) Inspect() string { return fmt.Sprintf("%d", id.Value) }

// Single precision floats
type FloatSgl struct {
	Value float32
}

func (fs *FloatSgl) Type() ObjectType { return FLOATSGL_OBJ }
func (fs *FloatSgl) Inspect() string {
	return strconv.FormatFloat(float64(fs.Value), 'g', -1, 32)
}

// Double precision floats
type FloatDbl struct {
	Value float64
}

func (fd *FloatDbl) Type() ObjectType { return FLOATDBL_OBJ }
func (fd *FloatDbl) Inspect() string {
	return strconv.FormatFloat(fd.Value, 'g', -1, 64)
}

// Error runtime or syntax error, Code holds the berrors value
type Error struct {
	Message string
	Code    int
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return e.Message }

// String values
type String struct {
	Value string
}

// Type returns my type
func (i *String) Type() ObjectType { return STRING_OBJ }

// Inspect returns value as a string
func (i *String) Inspect() string { return i.Value }

type Builtin struct {
	Fn BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "builtin function" }
