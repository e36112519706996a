// Package cli runs BASIC programs from the command line and hosts
// the interactive prompt.
package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/basixel/basixel/ast"
	"github.com/basixel/basixel/evaluator"
	"github.com/basixel/basixel/lexer"
	"github.com/basixel/basixel/object"
	"github.com/basixel/basixel/parser"
	"github.com/basixel/basixel/settings"
	"github.com/basixel/basixel/sixel"
	"github.com/basixel/basixel/terminal"
)

// Exit codes
const (
	ExitOK      = 0
	ExitRuntime = 1
	ExitParse   = 2
)

// lineReader is the console side of INPUT, satisfied by the real
// terminal and by the test mock
type lineReader interface {
	ReadLine() string
}

// Run executes the program in the named file and returns the
// process exit code
func Run(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitRuntime
	}

	prog, errs := compile(string(src))
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}
		return ExitParse
	}

	term, err := terminal.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitRuntime
	}
	defer term.Close()

	return execute(prog, term)
}

func compile(src string) (*ast.Program, []string) {
	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	return prog, p.Errors()
}

// execute runs a parsed program on the given console, wiring the
// sixel renderer in when the console can take it
func execute(prog *ast.Program, con object.Console) int {
	env := object.NewTermEnvironment(con)

	if st, ok := con.(*terminal.Terminal); ok && settings.Sixel() {
		rend := sixel.NewRenderer()
		env.SetFlushHook(func() {
			cv := env.Screen()
			if cv == nil {
				return
			}
			for _, u := range rend.Flush(cv) {
				st.WriteSixel(u)
			}
		})
	}

	i := evaluator.New(prog, env)
	state := i.Run()
	for state == evaluator.AwaitingInput {
		rd, ok := con.(lineReader)
		if !ok {
			break
		}
		state = i.ResumeInput(rd.ReadLine())
	}

	if err := i.Err(); err != nil {
		con.Println(err.Message)
		return ExitRuntime
	}
	return ExitOK
}

// Interactive hosts the numbered-line prompt.  Lines that start
// with a number are stored, RUN/LIST/NEW/EXIT act on the store.
func Interactive() int {
	lin := liner.NewLiner()
	defer lin.Close()
	lin.SetCtrlCAborts(true)

	fmt.Println("basixel")
	fmt.Println("Ok")

	lines := map[int]string{}
	for {
		input, err := lin.Prompt("")
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			return ExitOK
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		lin.AppendHistory(input)

		if n, rest, ok := splitLineNumber(input); ok {
			if rest == "" {
				delete(lines, n)
			} else {
				lines[n] = input
			}
			continue
		}

		word, _, _ := strings.Cut(strings.ToUpper(input), " ")
		switch word {
		case "RUN":
			runStored(lines)
		case "LIST":
			for _, n := range sortedLineNumbers(lines) {
				fmt.Println(lines[n])
			}
		case "NEW":
			lines = map[int]string{}
		case "EXIT", "SYSTEM":
			return ExitOK
		default:
			fmt.Println("Syntax error")
		}
		fmt.Println("Ok")
	}
}

func runStored(lines map[int]string) {
	prog, errs := compile(listing(lines))
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Println(e)
		}
		return
	}

	term, err := terminal.New()
	if err != nil {
		fmt.Println(err)
		return
	}
	defer term.Close()
	execute(prog, term)
}

// splitLineNumber peels a leading line number off a stored line
func splitLineNumber(input string) (int, string, bool) {
	i := 0
	for (i < len(input)) && (input[i] >= '0') && (input[i] <= '9') {
		i++
	}
	if i == 0 {
		return 0, "", false
	}
	n, err := strconv.Atoi(input[:i])
	if err != nil {
		return 0, "", false
	}
	return n, strings.TrimSpace(input[i:]), true
}

func sortedLineNumbers(lines map[int]string) []int {
	nums := make([]int, 0, len(lines))
	for n := range lines {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// listing rebuilds the program text in line-number order
func listing(lines map[int]string) string {
	var sb strings.Builder
	for _, n := range sortedLineNumbers(lines) {
		sb.WriteString(lines[n])
		sb.WriteString("\n")
	}
	return sb.String()
}
