package token

import "strings"

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"
	EOL     = "EOL"

	// Identifiers + literals
	IDENT   = "IDENT" // count, x, msg$, total#
	LINENUM = "####"  // 10, 15, 20, ...
	INT     = "INT"   // -32768 to 32767
	INTD    = "INTD"  // 32-bit integer literal
	STRING  = "STRING"
	FLOAT   = "FLOAT"  // 2.539999E+01
	FLOATD  = "FLOATD" // 2.539999D+01

	// Operators
	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	BSLASH   = "\\"
	CARET    = "^"

	LT = "<"
	GT = ">"

	EQ     = "="
	NOT_EQ = "<>"
	GTE    = ">="
	LTE    = "<="

	// Delimiters
	COMMA     = ","
	SEMICOLON = ";"
	COLON     = ":"

	LPAREN = "("
	RPAREN = ")"

	// Keywords
	AND       = "AND"
	BEEP      = "BEEP"
	BEZIER    = "BEZIER"
	CIRCLE    = "CIRCLE"
	CLS       = "CLS"
	COLOR     = "COLOR"
	DATA      = "DATA"
	DIM       = "DIM"
	DO        = "DO"
	ELSE      = "ELSE"
	ELSEIF    = "ELSEIF"
	END       = "END"
	FOR       = "FOR"
	GOSUB     = "GOSUB"
	GOTO      = "GOTO"
	IF        = "IF"
	INPUT     = "INPUT"
	LET       = "LET"
	LINE      = "LINE"
	LOCATE    = "LOCATE"
	LOOP      = "LOOP"
	MOD       = "MOD"
	NEXT      = "NEXT"
	NOT       = "NOT"
	ON        = "ON"
	OR        = "OR"
	PAINT     = "PAINT"
	PRESET    = "PRESET"
	PRINT     = "PRINT"
	PSET      = "PSET"
	RANDOMIZE = "RANDOMIZE"
	READ      = "READ"
	REM       = "REM"
	RESTORE   = "RESTORE"
	RETURN    = "RETURN"
	SCREEN    = "SCREEN"
	SLEEP     = "SLEEP"
	SOUND     = "SOUND"
	SPC       = "SPC"
	STEP      = "STEP"
	STOP      = "STOP"
	SWAP      = "SWAP"
	TAB       = "TAB"
	THEN      = "THEN"
	TO        = "TO"
	UNTIL     = "UNTIL"
	WEND      = "WEND"
	WHILE     = "WHILE"
	WIDTH     = "WIDTH"
	XOR       = "XOR"
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Col     int
}

var keywords = map[string]TokenType{
	"and":       AND,
	"beep":      BEEP,
	"bezier":    BEZIER,
	"circle":    CIRCLE,
	"cls":       CLS,
	"color":     COLOR,
	"data":      DATA,
	"dim":       DIM,
	"do":        DO,
	"else":      ELSE,
	"elseif":    ELSEIF,
	"end":       END,
	"for":       FOR,
	"gosub":     GOSUB,
	"goto":      GOTO,
	"if":        IF,
	"input":     INPUT,
	"let":       LET,
	"line":      LINE,
	"locate":    LOCATE,
	"loop":      LOOP,
	"mod":       MOD,
	"next":      NEXT,
	"not":       NOT,
	"on":        ON,
	"or":        OR,
	"paint":     PAINT,
	"preset":    PRESET,
	"print":     PRINT,
	"pset":      PSET,
	"randomize": RANDOMIZE,
	"read":      READ,
	"rem":       REM,
	"restore":   RESTORE,
	"return":    RETURN,
	"screen":    SCREEN,
	"sleep":     SLEEP,
	"sound":     SOUND,
	"spc":       SPC,
	"step":      STEP,
	"stop":      STOP,
	"swap":      SWAP,
	"tab":       TAB,
	"then":      THEN,
	"to":        TO,
	"until":     UNTIL,
	"wend":      WEND,
	"while":     WHILE,
	"width":     WIDTH,
	"xor":       XOR,
}

// LookupIdent maps reserved words onto their token types, anything
// else is an identifier.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[strings.ToLower(ident)]; ok {
		return tok
	}
	return IDENT
}
