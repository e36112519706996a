package berrors

const (
	NextWithoutFor = iota + 1
	Syntax
	ReturnWoGosub
	OutOfData
	IllegalFuncCallErr
	Overflow
	UnDefinedLabel
	SubscriptRange
	DuplicateDefinition
	DivByZero // 10
	TypeMismatch
	ZeroStep
	WhileWoWend
	WendWoWhile
	LoopWoDo
	Unprintable
)

// TextForError returns the error text based on error number
func TextForError(err int) string {
	switch err {
	case NextWithoutFor:
		return "NEXT without FOR"
	case Syntax:
		return "Syntax error"
	case ReturnWoGosub:
		return "RETURN without GOSUB"
	case OutOfData:
		return "Out of DATA"
	case IllegalFuncCallErr:
		return "Illegal function call"
	case Overflow:
		return "Overflow"
	case UnDefinedLabel:
		return "Undefined line number"
	case SubscriptRange:
		return "Subscript out of range"
	case DuplicateDefinition:
		return "Duplicate definition"
	case DivByZero:
		return "Division by zero"
	case TypeMismatch:
		return "Type mismatch"
	case ZeroStep:
		return "FOR step is zero"
	case WhileWoWend:
		return "WHILE without WEND"
	case WendWoWhile:
		return "WEND without WHILE"
	case LoopWoDo:
		return "LOOP without DO"
	}

	return "Unprintable error"
}
