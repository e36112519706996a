package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/basixel/basixel/mocks"
)

func writeProgram(t *testing.T, src string) string {
	path := filepath.Join(t.TempDir(), "prog.bas")
	assert.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestRunMissingFile(t *testing.T) {
	assert.Equal(t, ExitRuntime, Run("/no/such/file.bas"))
}

func TestRunParseErrorExitsTwo(t *testing.T) {
	path := writeProgram(t, "FOR I = 1 TO 5\nPRINT I")
	assert.Equal(t, ExitParse, Run(path))
}

func TestExecuteOutput(t *testing.T) {
	prog, errs := compile(`PRINT "HELLO"`)
	assert.Empty(t, errs)

	term := mocks.NewMockTerm()
	assert.Equal(t, ExitOK, execute(prog, term))
	assert.Equal(t, "HELLO\n", term.Out.String())
}

func TestExecuteRuntimeError(t *testing.T) {
	prog, errs := compile("X = 1\nY = 1 / 0")
	assert.Empty(t, errs)

	term := mocks.NewMockTerm()
	assert.Equal(t, ExitRuntime, execute(prog, term))
	assert.Contains(t, term.Out.String(), "Division by zero in 2")
}

func TestExecuteResumesInput(t *testing.T) {
	prog, errs := compile(`INPUT "N"; A
PRINT A * 2`)
	assert.Empty(t, errs)

	term := mocks.NewMockTerm()
	term.Lines = []string{"21"}
	assert.Equal(t, ExitOK, execute(prog, term))
	assert.Contains(t, term.Out.String(), " 42 ")
}

func TestSplitLineNumber(t *testing.T) {
	tests := []struct {
		input string
		num   int
		rest  string
		ok    bool
	}{
		{"10 PRINT", 10, "PRINT", true},
		{"20", 20, "", true},
		{"RUN", 0, "", false},
		{"  ", 0, "", false},
	}

	for _, tt := range tests {
		n, rest, ok := splitLineNumber(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.num, n, tt.input)
		assert.Equal(t, tt.rest, rest, tt.input)
	}
}

func TestListingOrdersLines(t *testing.T) {
	lines := map[int]string{
		30: "30 END",
		10: `10 PRINT "A"`,
		20: "20 GOTO 30",
	}
	want := "10 PRINT \"A\"\n20 GOTO 30\n30 END\n"
	assert.Equal(t, want, listing(lines))
}
