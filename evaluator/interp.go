package evaluator

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/basixel/basixel/ast"
	"github.com/basixel/basixel/berrors"
	"github.com/basixel/basixel/builtins"
	"github.com/basixel/basixel/canvas"
	"github.com/basixel/basixel/object"
)

// State reports what the interpreter is doing
type State int

const (
	Running State = iota
	AwaitingInput
	Halted
)

const printZone = 14

// frame is one entry on the control stack, either a GOSUB return
// or a live FOR loop. The stack is strictly LIFO.
type frame struct {
	gosub bool
	retPC int

	forIdx  int
	varName string
	end     float64
	step    float64
}

// Interpreter drives a parsed program to completion, suspending for
// INPUT and resuming when the host delivers the line
type Interpreter struct {
	prog  *ast.Program
	env   *object.Environment
	state State
	pc    int

	frames []frame

	data     []object.Object
	dataIdx  int
	dataAt   map[int]int // statement index of each DATA -> position
	dataStmt []int       // DATA statement indices in order

	pending *ast.InputStatement
	err     *object.Error

	sleep func(time.Duration)
}

// New builds an interpreter over a parsed program, pre-walking the
// DATA statements so READ and RESTORE have their table up front
func New(prog *ast.Program, env *object.Environment) *Interpreter {
	i := &Interpreter{
		prog:   prog,
		env:    env,
		dataAt: make(map[int]int),
		sleep:  time.Sleep,
	}

	for idx, s := range prog.Statements {
		ds, ok := s.(*ast.DataStatement)
		if !ok {
			continue
		}
		i.dataAt[idx] = len(i.data)
		i.dataStmt = append(i.dataStmt, idx)
		for _, v := range ds.Values {
			i.data = append(i.data, evalExpression(v, env))
		}
	}
	sort.Ints(i.dataStmt)

	return i
}

// State reports the current run state
func (i *Interpreter) State() State {
	return i.state
}

// Err returns the runtime error that halted the program, nil on a
// clean stop
func (i *Interpreter) Err() *object.Error {
	return i.err
}

// Env exposes the environment, used by hosts after a run
func (i *Interpreter) Env() *object.Environment {
	return i.env
}

// Run executes statements until the program ends, errors, or
// suspends for input. The break key halts between statements.
func (i *Interpreter) Run() State {
	i.state = Running
	term := i.env.Terminal()

	for (i.state == Running) && (i.pc < len(i.prog.Statements)) {
		if term.BreakCheck() {
			i.halt(&object.Error{Message: "Break"})
			break
		}

		stmt := i.prog.Statements[i.pc]
		i.pc++
		if err := i.execStatement(stmt); err != nil {
			i.halt(errWithLine(err, stmtLine(stmt)))
		}
	}

	if (i.state == Running) && (i.pc >= len(i.prog.Statements)) {
		i.state = Halted
	}
	i.env.Flush()
	return i.state
}

// ResumeInput delivers the line a suspended INPUT was waiting for
// and continues the program
func (i *Interpreter) ResumeInput(line string) State {
	if (i.state != AwaitingInput) || (i.pending == nil) {
		return i.state
	}

	stmt := i.pending
	i.pending = nil

	fields := strings.Split(line, ",")
	for n, v := range stmt.Vars {
		field := ""
		if n < len(fields) {
			field = strings.TrimSpace(fields[n])
		}
		if err := assignVar(v.Value, inputValue(v.Value, field), i.env); err != nil {
			i.halt(errWithLine(err, stmt.Token.Line))
			return i.state
		}
	}

	return i.Run()
}

// inputValue coerces one typed field, numbers read like VAL so
// trailing junk is dropped and a non-number reads as zero
func inputValue(name, field string) object.Object {
	if nameSuffix(name) == '$' {
		return &object.String{Value: field}
	}
	return &object.FloatDbl{Value: builtins.NumericPrefix(field)}
}

func (i *Interpreter) halt(err *object.Error) {
	i.err = err
	i.state = Halted
}

// stmtLine digs the source line out of the statements that can fail
// at run time
func stmtLine(s ast.Statement) int {
	switch st := s.(type) {
	case *ast.LetStatement:
		return st.Token.Line
	case *ast.PrintStatement:
		return st.Token.Line
	case *ast.IfStatement:
		return st.Token.Line
	case *ast.ForStatement:
		return st.Token.Line
	case *ast.NextStatement:
		return st.Token.Line
	case *ast.ReadStatement:
		return st.Token.Line
	case *ast.ReturnStatement:
		return st.Token.Line
	case *ast.GotoStatement:
		return st.Token.Line
	case *ast.GosubStatement:
		return st.Token.Line
	case *ast.WhileStatement:
		return st.Token.Line
	case *ast.DoStatement:
		return st.Token.Line
	case *ast.DimStatement:
		return st.Token.Line
	case *ast.OnStatement:
		return st.Token.Line
	case *ast.SwapStatement:
		return st.Token.Line
	case *ast.ScreenStatement:
		return st.Token.Line
	case *ast.PsetStatement:
		return st.Token.Line
	case *ast.LineStatement:
		return st.Token.Line
	case *ast.CircleStatement:
		return st.Token.Line
	case *ast.PaintStatement:
		return st.Token.Line
	case *ast.BezierStatement:
		return st.Token.Line
	case *ast.SoundStatement:
		return st.Token.Line
	}
	return 0
}

func (i *Interpreter) execStatement(s ast.Statement) *object.Error {
	switch stmt := s.(type) {
	case *ast.RemStatement, *ast.DataStatement, *ast.EndIfStatement:
		return nil
	case *ast.LetStatement:
		return i.execLet(stmt)
	case *ast.DimStatement:
		return i.execDim(stmt)
	case *ast.PrintStatement:
		return i.execPrint(stmt)
	case *ast.InputStatement:
		return i.execInput(stmt)
	case *ast.IfStatement:
		return i.execIf(stmt)
	case *ast.ElseStatement:
		i.pc = stmt.Target
		return nil
	case *ast.ForStatement:
		return i.execFor(stmt)
	case *ast.NextStatement:
		return i.execNext(stmt)
	case *ast.WhileStatement:
		return i.execWhile(stmt)
	case *ast.WendStatement:
		i.pc = stmt.WhileIdx
		return nil
	case *ast.DoStatement:
		return i.execDo(stmt)
	case *ast.LoopStatement:
		return i.execLoop(stmt)
	case *ast.GotoStatement:
		return i.jump(stmt.Target)
	case *ast.GosubStatement:
		i.frames = append(i.frames, frame{gosub: true, retPC: i.pc})
		return i.jump(stmt.Target)
	case *ast.ReturnStatement:
		return i.execReturn()
	case *ast.OnStatement:
		return i.execOn(stmt)
	case *ast.ReadStatement:
		return i.execRead(stmt)
	case *ast.RestoreStatement:
		return i.execRestore(stmt)
	case *ast.EndStatement:
		i.state = Halted
		return nil
	case *ast.SwapStatement:
		return i.execSwap(stmt)
	case *ast.RandomizeStatement:
		return i.execRandomize(stmt)
	case *ast.SleepStatement:
		return i.execSleep(stmt)
	case *ast.SoundStatement:
		return i.execSound(stmt)
	case *ast.BeepStatement:
		i.env.Terminal().SoundBell()
		return nil
	case *ast.ClsStatement:
		i.env.Terminal().Cls()
		if cv := i.env.Screen(); cv != nil {
			cv.Clear()
		}
		return nil
	case *ast.ScreenStatement:
		return i.execScreen(stmt)
	case *ast.ColorStatement:
		return i.execColor(stmt)
	case *ast.LocateStatement:
		return i.execLocate(stmt)
	case *ast.WidthStatement:
		return i.execWidth(stmt)
	case *ast.PsetStatement:
		return i.execPset(stmt)
	case *ast.LineStatement:
		return i.execLine(stmt)
	case *ast.CircleStatement:
		return i.execCircle(stmt)
	case *ast.PaintStatement:
		return i.execPaint(stmt)
	case *ast.BezierStatement:
		return i.execBezier(stmt)
	}
	return stdError(berrors.Syntax)
}

func (i *Interpreter) jump(label string) *object.Error {
	idx, ok := i.prog.LabelIndex(label)
	if !ok {
		return stdError(berrors.UnDefinedLabel)
	}
	i.pc = idx
	return nil
}

func (i *Interpreter) execLet(stmt *ast.LetStatement) *object.Error {
	val := evalExpression(stmt.Value, i.env)
	if isError(val) {
		return val.(*object.Error)
	}

	if len(stmt.Indices) > 0 {
		subs := make([]object.Object, 0, len(stmt.Indices))
		for _, ix := range stmt.Indices {
			v := evalExpression(ix, i.env)
			if isError(v) {
				return v.(*object.Error)
			}
			subs = append(subs, v)
		}
		return assignArray(stmt.Name.Value, subs, val, i.env)
	}
	return assignVar(stmt.Name.Value, val, i.env)
}

func (i *Interpreter) execDim(stmt *ast.DimStatement) *object.Error {
	for _, decl := range stmt.Vars {
		if _, exists := i.env.Get(arrayKey(decl.Name.Value)); exists {
			return stdError(berrors.DuplicateDefinition)
		}

		dims := make([]int, len(decl.Dims))
		size := 1
		for n, d := range decl.Dims {
			v := evalExpression(d, i.env)
			if isError(v) {
				return v.(*object.Error)
			}
			ext, ok := roundToInt32(v)
			if !ok || (ext < 0) {
				return stdError(berrors.IllegalFuncCallErr)
			}
			dims[n] = int(ext)
			size *= int(ext) + 1
		}
		i.env.Set(arrayKey(decl.Name.Value), &object.Array{
			Elements: make([]object.Object, size),
			Dims:     dims,
			TypeID:   string(nameSuffix(decl.Name.Value)),
		})
	}
	return nil
}

func (i *Interpreter) execPrint(stmt *ast.PrintStatement) *object.Error {
	term := i.env.Terminal()

	for n, item := range stmt.Items {
		switch it := item.(type) {
		case *ast.TabExpression:
			col, err := i.evalToInt(it.Col)
			if err != nil {
				return err
			}
			_, cur := term.GetCursor()
			if pad := int(col) - 1 - cur; pad > 0 {
				term.Print(strings.Repeat(" ", pad))
			}
		case *ast.SpcExpression:
			count, err := i.evalToInt(it.Count)
			if err != nil {
				return err
			}
			if count > 0 {
				term.Print(strings.Repeat(" ", int(count)))
			}
		default:
			val := evalExpression(item, i.env)
			if isError(val) {
				return val.(*object.Error)
			}
			term.Print(printText(val))
		}

		if (n < len(stmt.Seps)) && (stmt.Seps[n] == ",") {
			_, cur := term.GetCursor()
			pad := printZone - (cur % printZone)
			term.Print(strings.Repeat(" ", pad))
		}
	}

	if (len(stmt.Seps) == 0) || (stmt.Seps[len(stmt.Seps)-1] == "") {
		term.Println("")
	}
	return nil
}

// printText numbers print with a sign slot in front and a trailing
// space, strings print verbatim
func printText(val object.Object) string {
	if s, ok := val.(*object.String); ok {
		return s.Value
	}
	text := val.Inspect()
	if !strings.HasPrefix(text, "-") {
		text = " " + text
	}
	return text + " "
}

func (i *Interpreter) execInput(stmt *ast.InputStatement) *object.Error {
	term := i.env.Terminal()
	if stmt.Prompt != "" {
		term.Print(stmt.Prompt)
	}
	if stmt.ShowQuestion {
		term.Print("? ")
	}

	i.pending = stmt
	i.state = AwaitingInput
	i.env.Flush()
	return nil
}

func (i *Interpreter) execIf(stmt *ast.IfStatement) *object.Error {
	cond := evalExpression(stmt.Condition, i.env)
	if isError(cond) {
		return cond.(*object.Error)
	}

	if stmt.Block {
		if !isTruthy(cond) {
			i.pc = stmt.FalseTarget
		}
		return nil
	}

	branch := stmt.Then
	if !isTruthy(cond) {
		branch = stmt.Else
	}
	for _, sub := range branch {
		if err := i.execStatement(sub); err != nil {
			return err
		}
		if i.state != Running {
			break
		}
	}
	return nil
}

func (i *Interpreter) execFor(stmt *ast.ForStatement) *object.Error {
	start, err := i.evalToFloat(stmt.Start)
	if err != nil {
		return err
	}
	end, err := i.evalToFloat(stmt.End)
	if err != nil {
		return err
	}
	step := 1.0
	if stmt.Step != nil {
		if step, err = i.evalToFloat(stmt.Step); err != nil {
			return err
		}
	}
	if step == 0 {
		return stdError(berrors.ZeroStep)
	}

	if aerr := assignVar(stmt.Var.Value, &object.FloatDbl{Value: start}, i.env); aerr != nil {
		return aerr
	}

	// loops that never run skip past NEXT without a frame
	if ((step > 0) && (start > end)) || ((step < 0) && (start < end)) {
		i.pc = stmt.AfterNext
		return nil
	}

	i.frames = append(i.frames, frame{
		forIdx:  i.pc - 1,
		varName: stmt.Var.Value,
		end:     end,
		step:    step,
	})
	return nil
}

func (i *Interpreter) execNext(stmt *ast.NextStatement) *object.Error {
	if len(i.frames) == 0 {
		return stdError(berrors.NextWithoutFor)
	}
	top := i.frames[len(i.frames)-1]
	if top.gosub {
		return stdError(berrors.NextWithoutFor)
	}
	if (stmt.Var != nil) && (stmt.Var.Value != top.varName) {
		return stdError(berrors.NextWithoutFor)
	}

	cur, ok := i.env.Get(top.varName)
	if !ok {
		return stdError(berrors.NextWithoutFor)
	}
	v, _ := toFloat64(cur)
	v += top.step
	if aerr := assignVar(top.varName, &object.FloatDbl{Value: v}, i.env); aerr != nil {
		return aerr
	}

	if ((top.step > 0) && (v <= top.end)) || ((top.step < 0) && (v >= top.end)) {
		i.pc = top.forIdx + 1
		return nil
	}
	i.frames = i.frames[:len(i.frames)-1]
	return nil
}

func (i *Interpreter) execWhile(stmt *ast.WhileStatement) *object.Error {
	cond := evalExpression(stmt.Condition, i.env)
	if isError(cond) {
		return cond.(*object.Error)
	}
	if !isTruthy(cond) {
		i.pc = stmt.AfterWend
	}
	return nil
}

func (i *Interpreter) execDo(stmt *ast.DoStatement) *object.Error {
	if stmt.Condition == nil {
		return nil
	}
	cond := evalExpression(stmt.Condition, i.env)
	if isError(cond) {
		return cond.(*object.Error)
	}
	t := isTruthy(cond)
	if (stmt.While && !t) || (!stmt.While && t) {
		i.pc = stmt.AfterLoop
	}
	return nil
}

func (i *Interpreter) execLoop(stmt *ast.LoopStatement) *object.Error {
	if stmt.Condition == nil {
		i.pc = stmt.DoIdx
		return nil
	}
	cond := evalExpression(stmt.Condition, i.env)
	if isError(cond) {
		return cond.(*object.Error)
	}
	t := isTruthy(cond)
	if (stmt.While && t) || (!stmt.While && !t) {
		i.pc = stmt.DoIdx
	}
	return nil
}

func (i *Interpreter) execReturn() *object.Error {
	if len(i.frames) == 0 {
		return stdError(berrors.ReturnWoGosub)
	}
	top := i.frames[len(i.frames)-1]
	if !top.gosub {
		return stdError(berrors.ReturnWoGosub)
	}
	i.frames = i.frames[:len(i.frames)-1]
	i.pc = top.retPC
	return nil
}

func (i *Interpreter) execOn(stmt *ast.OnStatement) *object.Error {
	n, err := i.evalToInt(stmt.Exp)
	if err != nil {
		return err
	}
	if (n < 0) || (n > 255) {
		return stdError(berrors.IllegalFuncCallErr)
	}
	// zero or past the end of the list falls through
	if (n == 0) || (int(n) > len(stmt.Targets)) {
		return nil
	}

	if stmt.Gosub {
		i.frames = append(i.frames, frame{gosub: true, retPC: i.pc})
	}
	return i.jump(stmt.Targets[n-1])
}

func (i *Interpreter) execRead(stmt *ast.ReadStatement) *object.Error {
	for _, v := range stmt.Vars {
		if i.dataIdx >= len(i.data) {
			return stdError(berrors.OutOfData)
		}
		if err := assignVar(v.Value, i.data[i.dataIdx], i.env); err != nil {
			return err
		}
		i.dataIdx++
	}
	return nil
}

func (i *Interpreter) execRestore(stmt *ast.RestoreStatement) *object.Error {
	if stmt.Label == "" {
		i.dataIdx = 0
		return nil
	}

	idx, ok := i.prog.LabelIndex(stmt.Label)
	if !ok {
		return stdError(berrors.UnDefinedLabel)
	}
	// first DATA statement at or after the label
	for _, di := range i.dataStmt {
		if di >= idx {
			i.dataIdx = i.dataAt[di]
			return nil
		}
	}
	i.dataIdx = len(i.data)
	return nil
}

func (i *Interpreter) execSwap(stmt *ast.SwapStatement) *object.Error {
	va, aok := i.env.Get(stmt.A.Value)
	if !aok {
		va = zeroValue(stmt.A.Value)
	}
	vb, bok := i.env.Get(stmt.B.Value)
	if !bok {
		vb = zeroValue(stmt.B.Value)
	}

	if err := assignVar(stmt.A.Value, vb, i.env); err != nil {
		return err
	}
	return assignVar(stmt.B.Value, va, i.env)
}

func (i *Interpreter) execRandomize(stmt *ast.RandomizeStatement) *object.Error {
	if stmt.Seed == nil {
		i.env.RandomizeClock()
		return nil
	}
	seed, err := i.evalToFloat(stmt.Seed)
	if err != nil {
		return err
	}
	i.env.Randomize(int64(seed))
	return nil
}

func (i *Interpreter) execSleep(stmt *ast.SleepStatement) *object.Error {
	secs, err := i.evalToFloat(stmt.Seconds)
	if err != nil {
		return err
	}
	if secs < 0 {
		return stdError(berrors.IllegalFuncCallErr)
	}
	i.env.Flush()
	i.sleep(time.Duration(secs * float64(time.Second)))
	return nil
}

// execSound validates the classic argument ranges and renders the
// tone as the terminal bell, the closest a character cell display
// gets to the PC speaker
func (i *Interpreter) execSound(stmt *ast.SoundStatement) *object.Error {
	freq, err := i.evalToFloat(stmt.Freq)
	if err != nil {
		return err
	}
	dur, err := i.evalToFloat(stmt.Duration)
	if err != nil {
		return err
	}
	if (freq < 37) || (freq > 32767) || (dur < 0) || (dur > 65535) {
		return stdError(berrors.IllegalFuncCallErr)
	}

	if dur > 0 {
		i.env.Terminal().SoundBell()
	}
	return nil
}

func (i *Interpreter) execScreen(stmt *ast.ScreenStatement) *object.Error {
	mode, err := i.evalToInt(stmt.Mode)
	if err != nil {
		return err
	}

	cv := i.env.Screen()
	if cv == nil {
		cv = canvas.New(1, 1)
		i.env.SetScreen(cv)
	}
	if !cv.SetMode(int(mode)) {
		return stdError(berrors.IllegalFuncCallErr)
	}
	return nil
}

func (i *Interpreter) execColor(stmt *ast.ColorStatement) *object.Error {
	fg, err := i.evalToInt(stmt.Fg)
	if err != nil {
		return err
	}
	cv := i.screen()
	bg := int32(cv.Bg())
	if stmt.Bg != nil {
		if bg, err = i.evalToInt(stmt.Bg); err != nil {
			return err
		}
	}
	if (fg < 0) || (fg > 15) || (bg < 0) || (bg > 15) {
		return stdError(berrors.IllegalFuncCallErr)
	}
	cv.SetColor(int(fg), int(bg))
	return nil
}

func (i *Interpreter) execLocate(stmt *ast.LocateStatement) *object.Error {
	row, err := i.evalToInt(stmt.Row)
	if err != nil {
		return err
	}
	col, err := i.evalToInt(stmt.Col)
	if err != nil {
		return err
	}
	if (row < 1) || (col < 1) {
		return stdError(berrors.IllegalFuncCallErr)
	}
	i.env.Terminal().Locate(int(row)-1, int(col)-1)
	return nil
}

func (i *Interpreter) execWidth(stmt *ast.WidthStatement) *object.Error {
	cols, err := i.evalToInt(stmt.Cols)
	if err != nil {
		return err
	}
	if (cols != 40) && (cols != 80) {
		return stdError(berrors.IllegalFuncCallErr)
	}
	return nil
}

// screen returns the drawing surface, creating one sized to the
// terminal when the program never ran SCREEN
func (i *Interpreter) screen() *canvas.Canvas {
	cv := i.env.Screen()
	if cv == nil {
		cols, rows := i.env.Terminal().Size()
		cv = canvas.NewForTerminal(cols, rows)
		i.env.SetScreen(cv)
	}
	return cv
}

func (i *Interpreter) execPset(stmt *ast.PsetStatement) *object.Error {
	x, y, err := i.evalPoint(stmt.X, stmt.Y)
	if err != nil {
		return err
	}
	cv := i.screen()

	color := int32(cv.Fg())
	if stmt.Preset {
		color = int32(cv.Bg())
	}
	if stmt.Color != nil {
		if color, err = i.evalToInt(stmt.Color); err != nil {
			return err
		}
	}
	cv.Pset(x, y, uint8(color&0x0F))
	return nil
}

func (i *Interpreter) execLine(stmt *ast.LineStatement) *object.Error {
	x1, y1, err := i.evalPoint(stmt.X1, stmt.Y1)
	if err != nil {
		return err
	}
	x2, y2, err := i.evalPoint(stmt.X2, stmt.Y2)
	if err != nil {
		return err
	}
	cv := i.screen()

	color := int32(cv.Fg())
	if stmt.Color != nil {
		if color, err = i.evalToInt(stmt.Color); err != nil {
			return err
		}
	}

	c := uint8(color & 0x0F)
	switch stmt.Style {
	case "B":
		cv.Box(x1, y1, x2, y2, c)
	case "BF":
		cv.BoxFill(x1, y1, x2, y2, c)
	default:
		cv.Line(x1, y1, x2, y2, c)
	}
	return nil
}

func (i *Interpreter) execCircle(stmt *ast.CircleStatement) *object.Error {
	x, y, err := i.evalPoint(stmt.X, stmt.Y)
	if err != nil {
		return err
	}
	r, err := i.evalToInt(stmt.R)
	if err != nil {
		return err
	}
	cv := i.screen()

	color := int32(cv.Fg())
	if stmt.Color != nil {
		if color, err = i.evalToInt(stmt.Color); err != nil {
			return err
		}
	}
	c := uint8(color & 0x0F)

	if (stmt.Start == nil) && (stmt.End == nil) && (stmt.Aspect == nil) {
		cv.Circle(x, y, int(r), c)
		return nil
	}

	start := 0.0
	if stmt.Start != nil {
		if start, err = i.evalToFloat(stmt.Start); err != nil {
			return err
		}
	}
	end := 2 * math.Pi
	if stmt.End != nil {
		if end, err = i.evalToFloat(stmt.End); err != nil {
			return err
		}
	}
	aspect := 1.0
	if stmt.Aspect != nil {
		if aspect, err = i.evalToFloat(stmt.Aspect); err != nil {
			return err
		}
	}
	cv.Arc(x, y, int(r), c, start, end, aspect)
	return nil
}

func (i *Interpreter) execPaint(stmt *ast.PaintStatement) *object.Error {
	x, y, err := i.evalPoint(stmt.X, stmt.Y)
	if err != nil {
		return err
	}
	cv := i.screen()

	fill := int32(cv.Fg())
	if stmt.Fill != nil {
		if fill, err = i.evalToInt(stmt.Fill); err != nil {
			return err
		}
	}
	cv.Paint(x, y, uint8(fill&0x0F))
	return nil
}

func (i *Interpreter) execBezier(stmt *ast.BezierStatement) *object.Error {
	x1, y1, err := i.evalPoint(stmt.X1, stmt.Y1)
	if err != nil {
		return err
	}
	cx, cy, err := i.evalPoint(stmt.CX, stmt.CY)
	if err != nil {
		return err
	}
	x2, y2, err := i.evalPoint(stmt.X2, stmt.Y2)
	if err != nil {
		return err
	}
	cv := i.screen()

	color := int32(cv.Fg())
	if stmt.Color != nil {
		if color, err = i.evalToInt(stmt.Color); err != nil {
			return err
		}
	}
	thickness := int32(1)
	if stmt.Thickness != nil {
		if thickness, err = i.evalToInt(stmt.Thickness); err != nil {
			return err
		}
		if thickness < 1 {
			thickness = 1
		}
	}
	cv.Bezier(x1, y1, cx, cy, x2, y2, uint8(color&0x0F), int(thickness))
	return nil
}

func (i *Interpreter) evalPoint(xe, ye ast.Expression) (int, int, *object.Error) {
	x, err := i.evalToInt(xe)
	if err != nil {
		return 0, 0, err
	}
	y, err := i.evalToInt(ye)
	if err != nil {
		return 0, 0, err
	}
	return int(x), int(y), nil
}

func (i *Interpreter) evalToFloat(exp ast.Expression) (float64, *object.Error) {
	val := evalExpression(exp, i.env)
	if isError(val) {
		return 0, val.(*object.Error)
	}
	v, ok := toFloat64(val)
	if !ok {
		return 0, stdError(berrors.TypeMismatch)
	}
	return v, nil
}

func (i *Interpreter) evalToInt(exp ast.Expression) (int32, *object.Error) {
	val := evalExpression(exp, i.env)
	if isError(val) {
		return 0, val.(*object.Error)
	}
	n, ok := roundToInt32(val)
	if !ok {
		return 0, stdError(berrors.TypeMismatch)
	}
	return n, nil
}
