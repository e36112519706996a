// Package mocks test doubles shared across the packages
package mocks

import "strings"

// MockTerm stands in for the terminal console in tests. Output
// accumulates in Out, keystrokes are fed through Keys.
type MockTerm struct {
	Row int
	Col int

	Out     *strings.Builder
	SawCls  *bool
	SawBeep *bool

	Keys     []byte
	Lines    []string
	BreakSet bool

	Cols int
	Rows int
}

// NewMockTerm builds a mock sized like an 80x25 display
func NewMockTerm() *MockTerm {
	return &MockTerm{
		Out:     &strings.Builder{},
		SawCls:  new(bool),
		SawBeep: new(bool),
		Cols:    80,
		Rows:    25,
	}
}

func (mt *MockTerm) Cls() {
	*mt.SawCls = true
	mt.Row, mt.Col = 0, 0
}

func (mt *MockTerm) Print(msg string) {
	mt.Out.WriteString(msg)
	mt.Col += len(msg)
}

func (mt *MockTerm) Println(msg string) {
	mt.Out.WriteString(msg)
	mt.Out.WriteString("\n")
	mt.Col = 0
	mt.Row++
}

func (mt *MockTerm) Locate(row, col int) {
	mt.Row, mt.Col = row, col
}

func (mt *MockTerm) GetCursor() (int, int) {
	return mt.Row, mt.Col
}

// ReadKeys hands back up to count queued bytes
func (mt *MockTerm) ReadKeys(count int) []byte {
	if count > len(mt.Keys) {
		count = len(mt.Keys)
	}
	keys := mt.Keys[:count]
	mt.Keys = mt.Keys[count:]
	return keys
}

// InKey pops a single queued key, empty when none are waiting
func (mt *MockTerm) InKey() string {
	if len(mt.Keys) == 0 {
		return ""
	}
	k := mt.Keys[0]
	mt.Keys = mt.Keys[1:]
	return string(rune(k))
}

// ReadLine pops a queued input line, empty when none remain
func (mt *MockTerm) ReadLine() string {
	if len(mt.Lines) == 0 {
		return ""
	}
	line := mt.Lines[0]
	mt.Lines = mt.Lines[1:]
	return line
}

func (mt *MockTerm) SoundBell() {
	*mt.SawBeep = true
}

func (mt *MockTerm) BreakCheck() bool {
	return mt.BreakSet
}

func (mt *MockTerm) Size() (int, int) {
	return mt.Cols, mt.Rows
}
