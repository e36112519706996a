package ast

import (
	"bytes"
	"strings"

	"github.com/basixel/basixel/token"
)

// Node defines interface for all node types
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement defines the interface for all statement nodes
type Statement interface {
	Node
	statementNode()
}

// Expression defines the interface for all expression nodes
type Expression interface {
	Node
	expressionNode()
}

// Program is the fully parsed program, a flat statement list plus
// the label/line-number table. Jump targets inside block statements
// are indices into Statements, resolved at parse time.
type Program struct {
	Statements []Statement
	Labels     map[string]int
}

// LabelIndex resolves a label or line number to its statement index
func (p *Program) LabelIndex(label string) (int, bool) {
	idx, ok := p.Labels[strings.ToUpper(label)]
	return idx, ok
}

func (p *Program) String() string {
	var out bytes.Buffer

	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Identifier a variable or builtin name, the type suffix stays
// part of the name
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }

// IntegerLiteral holds an int16 literal
type IntegerLiteral struct {
	Token token.Token
	Value int16
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }

// DblIntegerLiteral holds a 32-bit integer literal
type DblIntegerLiteral struct {
	Token token.Token
	Value int32
}

func (dil *DblIntegerLiteral) expressionNode()      {}
func (dil *DblIntegerLiteral) TokenLiteral() string { return dil.Token.Literal }
func (dil *DblIntegerLiteral) String() string       { return dil.Token.Literal }

// FloatSingleLiteral holds a single precision literal
type FloatSingleLiteral struct {
	Token token.Token
	Value float32
}

func (fs *FloatSingleLiteral) expressionNode()      {}
func (fs *FloatSingleLiteral) TokenLiteral() string { return fs.Token.Literal }
func (fs *FloatSingleLiteral) String() string       { return fs.Token.Literal }

// FloatDoubleLiteral holds a double precision literal
type FloatDoubleLiteral struct {
	Token token.Token
	Value float64
}

func (fd *FloatDoubleLiteral) expressionNode()      {}
func (fd *FloatDoubleLiteral) TokenLiteral() string { return fd.Token.Literal }
func (fd *FloatDoubleLiteral) String() string       { return fd.Token.Literal }

// StringLiteral a quoted string constant
type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return `"` + sl.Value + `"` }

// PrefixExpression the operator comes before the operand
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PrefixExpression) String() string {
	var out bytes.Buffer

	out.WriteString("(")
	out.WriteString(pe.Operator)
	if len(pe.Operator) > 1 {
		out.WriteString(" ")
	}
	out.WriteString(pe.Right.String())
	out.WriteString(")")

	return out.String()
}

// InfixExpression a binary operator expression
type InfixExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *InfixExpression) String() string {
	var out bytes.Buffer

	out.WriteString("(")
	out.WriteString(ie.Left.String())
	out.WriteString(" " + ie.Operator + " ")
	out.WriteString(ie.Right.String())
	out.WriteString(")")

	return out.String()
}

// GroupedExpression a parenthesized sub-expression
type GroupedExpression struct {
	Token token.Token
	Exp   Expression
}

func (ge *GroupedExpression) expressionNode()      {}
func (ge *GroupedExpression) TokenLiteral() string { return ge.Token.Literal }
func (ge *GroupedExpression) String() string {
	if ge.Exp == nil {
		return "()"
	}
	return "(" + ge.Exp.String() + ")"
}

// CallExpression a name followed by a parenthesized argument list.
// Covers both builtin function calls and array element reads, the
// evaluator decides which one it is.
type CallExpression struct {
	Token     token.Token
	Name      *Identifier
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	var out bytes.Buffer

	args := []string{}
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}

	out.WriteString(ce.Name.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")

	return out.String()
}

// TabExpression a TAB(n) item inside a PRINT list
type TabExpression struct {
	Token token.Token
	Col   Expression
}

func (te *TabExpression) expressionNode()      {}
func (te *TabExpression) TokenLiteral() string { return te.Token.Literal }
func (te *TabExpression) String() string       { return "TAB(" + te.Col.String() + ")" }

// SpcExpression a SPC(n) item inside a PRINT list
type SpcExpression struct {
	Token token.Token
	Count Expression
}

func (se *SpcExpression) expressionNode()      {}
func (se *SpcExpression) TokenLiteral() string { return se.Token.Literal }
func (se *SpcExpression) String() string       { return "SPC(" + se.Count.String() + ")" }

// RemStatement a comment, held so a commented line can still carry
// a jump label
type RemStatement struct {
	Token   token.Token
	Comment string
}

func (rem *RemStatement) statementNode()       {}
func (rem *RemStatement) TokenLiteral() string { return rem.Token.Literal }
func (rem *RemStatement) String() string {
	if len(rem.Comment) == 0 {
		return "REM"
	}
	return "REM " + rem.Comment
}

// LetStatement assigns a value to a scalar or array element, the
// LET keyword itself is optional
type LetStatement struct {
	Token   token.Token
	Name    *Identifier
	Indices []Expression
	Value   Expression
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LetStatement) String() string {
	var out bytes.Buffer

	out.WriteString(ls.Name.String())
	if len(ls.Indices) > 0 {
		inds := []string{}
		for _, ind := range ls.Indices {
			inds = append(inds, ind.String())
		}
		out.WriteString("(" + strings.Join(inds, ",") + ")")
	}
	out.WriteString(" = ")
	if ls.Value != nil {
		out.WriteString(ls.Value.String())
	}

	return out.String()
}

// DimDecl one declared array inside a DIM statement
type DimDecl struct {
	Name *Identifier
	Dims []Expression
}

// DimStatement declares one or more arrays
type DimStatement struct {
	Token token.Token
	Vars  []DimDecl
}

func (ds *DimStatement) statementNode()       {}
func (ds *DimStatement) TokenLiteral() string { return ds.Token.Literal }
func (ds *DimStatement) String() string {
	var out bytes.Buffer

	out.WriteString("DIM ")
	for i, v := range ds.Vars {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(v.Name.String())
		dims := []string{}
		for _, d := range v.Dims {
			dims = append(dims, d.String())
		}
		out.WriteString("(" + strings.Join(dims, ",") + ")")
	}

	return out.String()
}

// PrintStatement writes items to the console. Seps holds the
// separator that followed each item, "" when the item was last with
// no trailing separator.
type PrintStatement struct {
	Token token.Token
	Items []Expression
	Seps  []string
}

func (ps *PrintStatement) statementNode()       {}
func (ps *PrintStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PrintStatement) String() string {
	var out bytes.Buffer

	out.WriteString("PRINT")
	for i, item := range ps.Items {
		out.WriteString(" " + item.String())
		if i < len(ps.Seps) {
			out.WriteString(ps.Seps[i])
		}
	}

	return out.String()
}

// InputStatement reads a line of input into one or more variables
type InputStatement struct {
	Token        token.Token
	Prompt       string
	ShowQuestion bool
	Vars         []*Identifier
}

func (is *InputStatement) statementNode()       {}
func (is *InputStatement) TokenLiteral() string { return is.Token.Literal }
func (is *InputStatement) String() string {
	var out bytes.Buffer

	out.WriteString("INPUT ")
	if len(is.Prompt) > 0 {
		out.WriteString(`"` + is.Prompt + `"`)
		if is.ShowQuestion {
			out.WriteString(", ")
		} else {
			out.WriteString("; ")
		}
	}
	vars := []string{}
	for _, v := range is.Vars {
		vars = append(vars, v.String())
	}
	out.WriteString(strings.Join(vars, ", "))

	return out.String()
}

// IfStatement both the single-line and the block form. Block form
// stores the parse-time resolved index to jump to when the
// condition is false; single-line form nests its branches.
type IfStatement struct {
	Token       token.Token
	Condition   Expression
	Block       bool
	FalseTarget int
	Then        []Statement
	Else        []Statement
}

func (ifs *IfStatement) statementNode()       {}
func (ifs *IfStatement) TokenLiteral() string { return ifs.Token.Literal }
func (ifs *IfStatement) String() string {
	var out bytes.Buffer

	out.WriteString("IF ")
	out.WriteString(ifs.Condition.String())
	out.WriteString(" THEN")
	for i, s := range ifs.Then {
		if i > 0 {
			out.WriteString(" :")
		}
		out.WriteString(" " + s.String())
	}
	if len(ifs.Else) > 0 {
		out.WriteString(" ELSE")
		for i, s := range ifs.Else {
			if i > 0 {
				out.WriteString(" :")
			}
			out.WriteString(" " + s.String())
		}
	}

	return out.String()
}

// ElseStatement marks the end of a taken IF branch. Reaching one
// sequentially means the branch above just finished, so execution
// jumps to Target, the END IF landing index.
type ElseStatement struct {
	Token  token.Token
	Target int
}

func (es *ElseStatement) statementNode()       {}
func (es *ElseStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ElseStatement) String() string       { return "ELSE" }

// EndIfStatement the END IF landing point, a no-op at run time
type EndIfStatement struct {
	Token token.Token
}

func (eis *EndIfStatement) statementNode()       {}
func (eis *EndIfStatement) TokenLiteral() string { return eis.Token.Literal }
func (eis *EndIfStatement) String() string       { return "END IF" }

// ForStatement opens a counted loop. AfterNext is the index just
// past the matching NEXT, used when the loop never runs.
type ForStatement struct {
	Token     token.Token
	Var       *Identifier
	Start     Expression
	End       Expression
	Step      Expression
	AfterNext int
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) String() string {
	var out bytes.Buffer

	out.WriteString("FOR ")
	out.WriteString(fs.Var.String())
	out.WriteString(" = ")
	out.WriteString(fs.Start.String())
	out.WriteString(" TO ")
	out.WriteString(fs.End.String())
	if fs.Step != nil {
		out.WriteString(" STEP ")
		out.WriteString(fs.Step.String())
	}

	return out.String()
}

// NextStatement closes a FOR loop, the counter name is optional
type NextStatement struct {
	Token token.Token
	Var   *Identifier
}

func (ns *NextStatement) statementNode()       {}
func (ns *NextStatement) TokenLiteral() string { return ns.Token.Literal }
func (ns *NextStatement) String() string {
	if ns.Var == nil {
		return "NEXT"
	}
	return "NEXT " + ns.Var.String()
}

// WhileStatement re-evaluates its condition on every pass, a false
// result jumps past the matching WEND
type WhileStatement struct {
	Token     token.Token
	Condition Expression
	AfterWend int
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) String() string       { return "WHILE " + ws.Condition.String() }

// WendStatement jumps back to its WHILE for the re-check
type WendStatement struct {
	Token    token.Token
	WhileIdx int
}

func (ws *WendStatement) statementNode()       {}
func (ws *WendStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WendStatement) String() string       { return "WEND" }

// DoStatement opens a DO loop with an optional pre-test
type DoStatement struct {
	Token     token.Token
	Condition Expression
	While     bool
	AfterLoop int
}

func (ds *DoStatement) statementNode()       {}
func (ds *DoStatement) TokenLiteral() string { return ds.Token.Literal }
func (ds *DoStatement) String() string {
	if ds.Condition == nil {
		return "DO"
	}
	kw := " UNTIL "
	if ds.While {
		kw = " WHILE "
	}
	return "DO" + kw + ds.Condition.String()
}

// LoopStatement closes a DO loop with an optional post-test
type LoopStatement struct {
	Token     token.Token
	Condition Expression
	While     bool
	DoIdx     int
}

func (ls *LoopStatement) statementNode()       {}
func (ls *LoopStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LoopStatement) String() string {
	if ls.Condition == nil {
		return "LOOP"
	}
	kw := " UNTIL "
	if ls.While {
		kw = " WHILE "
	}
	return "LOOP" + kw + ls.Condition.String()
}

// GotoStatement jumps to a line number or label
type GotoStatement struct {
	Token  token.Token
	Target string
}

func (gs *GotoStatement) statementNode()       {}
func (gs *GotoStatement) TokenLiteral() string { return gs.Token.Literal }
func (gs *GotoStatement) String() string       { return "GOTO " + gs.Target }

// GosubStatement jumps to a subroutine, pushing a return frame
type GosubStatement struct {
	Token  token.Token
	Target string
}

func (gs *GosubStatement) statementNode()       {}
func (gs *GosubStatement) TokenLiteral() string { return gs.Token.Literal }
func (gs *GosubStatement) String() string       { return "GOSUB " + gs.Target }

// ReturnStatement resumes after the most recent GOSUB
type ReturnStatement struct {
	Token token.Token
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) String() string       { return "RETURN" }

// OnStatement computed GOTO/GOSUB, the expression picks the target
// from the list, one-based
type OnStatement struct {
	Token   token.Token
	Exp     Expression
	Targets []string
	Gosub   bool
}

func (os *OnStatement) statementNode()       {}
func (os *OnStatement) TokenLiteral() string { return os.Token.Literal }
func (os *OnStatement) String() string {
	kw := " GOTO "
	if os.Gosub {
		kw = " GOSUB "
	}
	return "ON " + os.Exp.String() + kw + strings.Join(os.Targets, ", ")
}

// DataStatement holds literal values read by READ
type DataStatement struct {
	Token  token.Token
	Values []Expression
}

func (ds *DataStatement) statementNode()       {}
func (ds *DataStatement) TokenLiteral() string { return ds.Token.Literal }
func (ds *DataStatement) String() string {
	vals := []string{}
	for _, v := range ds.Values {
		vals = append(vals, v.String())
	}
	return "DATA " + strings.Join(vals, ", ")
}

// ReadStatement pulls the next DATA values into variables
type ReadStatement struct {
	Token token.Token
	Vars  []*Identifier
}

func (rs *ReadStatement) statementNode()       {}
func (rs *ReadStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReadStatement) String() string {
	vars := []string{}
	for _, v := range rs.Vars {
		vars = append(vars, v.String())
	}
	return "READ " + strings.Join(vars, ", ")
}

// RestoreStatement resets the DATA pointer, optionally to a label
type RestoreStatement struct {
	Token token.Token
	Label string
}

func (rs *RestoreStatement) statementNode()       {}
func (rs *RestoreStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *RestoreStatement) String() string {
	if len(rs.Label) == 0 {
		return "RESTORE"
	}
	return "RESTORE " + rs.Label
}

// EndStatement halts the program, STOP does the same
type EndStatement struct {
	Token token.Token
}

func (es *EndStatement) statementNode()       {}
func (es *EndStatement) TokenLiteral() string { return es.Token.Literal }
func (es *EndStatement) String() string       { return strings.ToUpper(es.Token.Literal) }

// SwapStatement exchanges the values of two variables
type SwapStatement struct {
	Token token.Token
	A     *Identifier
	B     *Identifier
}

func (ss *SwapStatement) statementNode()       {}
func (ss *SwapStatement) TokenLiteral() string { return ss.Token.Literal }
func (ss *SwapStatement) String() string       { return "SWAP " + ss.A.String() + ", " + ss.B.String() }

// RandomizeStatement reseeds the random number generator
type RandomizeStatement struct {
	Token token.Token
	Seed  Expression
}

func (rs *RandomizeStatement) statementNode()       {}
func (rs *RandomizeStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *RandomizeStatement) String() string {
	if rs.Seed == nil {
		return "RANDOMIZE"
	}
	return "RANDOMIZE " + rs.Seed.String()
}

// SleepStatement pauses execution for a number of seconds
type SleepStatement struct {
	Token   token.Token
	Seconds Expression
}

func (ss *SleepStatement) statementNode()       {}
func (ss *SleepStatement) TokenLiteral() string { return ss.Token.Literal }
func (ss *SleepStatement) String() string       { return "SLEEP " + ss.Seconds.String() }

// SoundStatement plays a tone of a frequency and duration
type SoundStatement struct {
	Token    token.Token
	Freq     Expression
	Duration Expression
}

func (ss *SoundStatement) statementNode()       {}
func (ss *SoundStatement) TokenLiteral() string { return ss.Token.Literal }
func (ss *SoundStatement) String() string {
	return "SOUND " + ss.Freq.String() + ", " + ss.Duration.String()
}

// BeepStatement sounds the terminal bell
type BeepStatement struct {
	Token token.Token
}

func (bs *BeepStatement) statementNode()       {}
func (bs *BeepStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BeepStatement) String() string       { return "BEEP" }

// ClsStatement clears the screen and the canvas
type ClsStatement struct {
	Token token.Token
}

func (cs *ClsStatement) statementNode()       {}
func (cs *ClsStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ClsStatement) String() string       { return "CLS" }

// ScreenStatement selects a screen mode
type ScreenStatement struct {
	Token token.Token
	Mode  Expression
}

func (ss *ScreenStatement) statementNode()       {}
func (ss *ScreenStatement) TokenLiteral() string { return ss.Token.Literal }
func (ss *ScreenStatement) String() string       { return "SCREEN " + ss.Mode.String() }

// ColorStatement sets the drawing foreground and background
type ColorStatement struct {
	Token token.Token
	Fg    Expression
	Bg    Expression
}

func (cs *ColorStatement) statementNode()       {}
func (cs *ColorStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ColorStatement) String() string {
	out := "COLOR " + cs.Fg.String()
	if cs.Bg != nil {
		out += ", " + cs.Bg.String()
	}
	return out
}

// LocateStatement moves the text cursor
type LocateStatement struct {
	Token token.Token
	Row   Expression
	Col   Expression
}

func (ls *LocateStatement) statementNode()       {}
func (ls *LocateStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LocateStatement) String() string {
	return "LOCATE " + ls.Row.String() + ", " + ls.Col.String()
}

// WidthStatement reconfigures the text column count
type WidthStatement struct {
	Token token.Token
	Cols  Expression
}

func (ws *WidthStatement) statementNode()       {}
func (ws *WidthStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WidthStatement) String() string       { return "WIDTH " + ws.Cols.String() }

// PsetStatement sets a single pixel, PRESET uses the background
type PsetStatement struct {
	Token  token.Token
	X      Expression
	Y      Expression
	Color  Expression
	Preset bool
}

func (ps *PsetStatement) statementNode()       {}
func (ps *PsetStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PsetStatement) String() string {
	kw := "PSET"
	if ps.Preset {
		kw = "PRESET"
	}
	out := kw + " (" + ps.X.String() + ", " + ps.Y.String() + ")"
	if ps.Color != nil {
		out += ", " + ps.Color.String()
	}
	return out
}

// LineStatement draws a line, a box outline (B) or a filled
// box (BF)
type LineStatement struct {
	Token token.Token
	X1    Expression
	Y1    Expression
	X2    Expression
	Y2    Expression
	Color Expression
	Style string
}

func (ls *LineStatement) statementNode()       {}
func (ls *LineStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LineStatement) String() string {
	var out bytes.Buffer

	out.WriteString("LINE (" + ls.X1.String() + ", " + ls.Y1.String() + ")")
	out.WriteString("-(" + ls.X2.String() + ", " + ls.Y2.String() + ")")
	if ls.Color != nil {
		out.WriteString(", " + ls.Color.String())
	}
	if len(ls.Style) > 0 {
		if ls.Color == nil {
			out.WriteString(",")
		}
		out.WriteString(", " + ls.Style)
	}

	return out.String()
}

// CircleStatement draws a circle, ellipse or arc
type CircleStatement struct {
	Token  token.Token
	X      Expression
	Y      Expression
	R      Expression
	Color  Expression
	Start  Expression
	End    Expression
	Aspect Expression
}

func (cs *CircleStatement) statementNode()       {}
func (cs *CircleStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *CircleStatement) String() string {
	var out bytes.Buffer

	out.WriteString("CIRCLE (" + cs.X.String() + ", " + cs.Y.String() + "), " + cs.R.String())
	for _, opt := range []Expression{cs.Color, cs.Start, cs.End, cs.Aspect} {
		if opt != nil {
			out.WriteString(", " + opt.String())
		}
	}

	return out.String()
}

// PaintStatement flood fills from a seed point
type PaintStatement struct {
	Token token.Token
	X     Expression
	Y     Expression
	Fill  Expression
}

func (ps *PaintStatement) statementNode()       {}
func (ps *PaintStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PaintStatement) String() string {
	out := "PAINT (" + ps.X.String() + ", " + ps.Y.String() + ")"
	if ps.Fill != nil {
		out += ", " + ps.Fill.String()
	}
	return out
}

// BezierStatement strokes a quadratic curve with a pixel thickness
type BezierStatement struct {
	Token     token.Token
	X1        Expression
	Y1        Expression
	CX        Expression
	CY        Expression
	X2        Expression
	Y2        Expression
	Color     Expression
	Thickness Expression
}

func (bs *BezierStatement) statementNode()       {}
func (bs *BezierStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BezierStatement) String() string {
	var out bytes.Buffer

	out.WriteString("BEZIER (" + bs.X1.String() + ", " + bs.Y1.String() + ")")
	out.WriteString("-(" + bs.CX.String() + ", " + bs.CY.String() + ")")
	out.WriteString("-(" + bs.X2.String() + ", " + bs.Y2.String() + ")")
	if bs.Color != nil {
		out.WriteString(", " + bs.Color.String())
	}
	if bs.Thickness != nil {
		out.WriteString(", " + bs.Thickness.String())
	}

	return out.String()
}
