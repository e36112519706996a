package lexer

import (
	"testing"

	"github.com/basixel/basixel/token"
)

func TestNextToken(t *testing.T) {

	input := `10 LET COUNT% = 5
20 TOTAL# = COUNT% * 2.5 + 1E2
30 PRINT "HELLO"; MSG$, A(3)
40 IF X <= 10 AND X <> 4 THEN GOTO 90
50 R = X \ 2 MOD 3 ^ 2
`
	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.LINENUM, "10"},
		{token.LET, "LET"},
		{token.IDENT, "COUNT%"},
		{token.ASSIGN, "="},
		{token.INT, "5"},
		{token.EOL, "\n"},
		{token.LINENUM, "20"},
		{token.IDENT, "TOTAL#"},
		{token.ASSIGN, "="},
		{token.IDENT, "COUNT%"},
		{token.ASTERISK, "*"},
		{token.FLOAT, "2.5"},
		{token.PLUS, "+"},
		{token.FLOAT, "1E2"},
		{token.EOL, "\n"},
		{token.LINENUM, "30"},
		{token.PRINT, "PRINT"},
		{token.STRING, "HELLO"},
		{token.SEMICOLON, ";"},
		{token.IDENT, "MSG$"},
		{token.COMMA, ","},
		{token.IDENT, "A"},
		{token.LPAREN, "("},
		{token.INT, "3"},
		{token.RPAREN, ")"},
		{token.EOL, "\n"},
		{token.LINENUM, "40"},
		{token.IF, "IF"},
		{token.IDENT, "X"},
		{token.LTE, "<="},
		{token.INT, "10"},
		{token.AND, "AND"},
		{token.IDENT, "X"},
		{token.NOT_EQ, "<>"},
		{token.INT, "4"},
		{token.THEN, "THEN"},
		{token.GOTO, "GOTO"},
		{token.INT, "90"},
		{token.EOL, "\n"},
		{token.LINENUM, "50"},
		{token.IDENT, "R"},
		{token.ASSIGN, "="},
		{token.IDENT, "X"},
		{token.BSLASH, "\\"},
		{token.INT, "2"},
		{token.MOD, "MOD"},
		{token.INT, "3"},
		{token.CARET, "^"},
		{token.INT, "2"},
		{token.EOL, "\n"},
		{token.EOF, "EOF"},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestReadNumber(t *testing.T) {
	tests := []struct {
		input string
		tok   token.TokenType
		lit   string
	}{
		{"43.8", token.FLOAT, "43.8"},
		{"235.988E-7", token.FLOAT, "235.988E-7"},
		{"235.988D-12", token.FLOATD, "235.988D-12"},
		{"32767", token.INT, "32767"},
		{"32768", token.INTD, "32768"},
		{"-5", token.MINUS, "-"},
		{".25", token.FLOAT, ".25"},
		{"7#", token.FLOATD, "7"},
		{"7%", token.INT, "7"},
		{"70000&", token.INTD, "70000"},
	}

	for _, tt := range tests {
		l := New(tt.input)
		l.newLine = false

		tk := l.NextToken()

		if tk.Type != tt.tok {
			t.Fatalf("%s: got back a %s, expected a %s", tt.input, tk.Type, tt.tok)
		}

		if tk.Literal != tt.lit {
			t.Fatalf("%s: expected to get back %s, got back %s instead", tt.input, tt.lit, tk.Literal)
		}
	}
}

func TestLineNumbers(t *testing.T) {
	input := "10 PRINT\n20 X = 20\n"

	l := New(input)

	tests := []token.TokenType{token.LINENUM, token.PRINT, token.EOL, token.LINENUM}

	for i, want := range tests {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("tests[%d] - expected %s, got %s", i, want, tok.Type)
		}
	}

	// 20 inside the line is a plain integer, not a line number
	tok := l.NextToken()
	tok = l.NextToken()
	if tok.Type != token.ASSIGN {
		t.Fatalf("expected assign, got %s", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != token.INT {
		t.Fatalf("expected INT, got %s", tok.Type)
	}
}

func TestComments(t *testing.T) {
	tests := []struct {
		input   string
		results []token.TokenType
	}{
		{"10 REM unmatched \" quote\n20 PRINT", []token.TokenType{
			token.LINENUM, token.REM, token.EOL, token.LINENUM, token.PRINT, token.EOF}},
		{"draw: ' label then comment\nGOTO draw", []token.TokenType{
			token.IDENT, token.COLON, token.REM, token.EOL, token.GOTO, token.IDENT, token.EOF}},
	}

	for _, tt := range tests {
		l := New(tt.input)

		for i, want := range tt.results {
			tok := l.NextToken()
			if tok.Type != want {
				t.Fatalf("%s: tests[%d] expected %s, got %s", tt.input, i, want, tok.Type)
			}
		}
	}
}

func TestTokenPositions(t *testing.T) {
	input := "10 PRINT\n20 END"

	l := New(input)

	tests := []struct {
		line int
		col  int
	}{
		{1, 1},  // 10
		{1, 4},  // PRINT
		{1, 9},  // EOL
		{2, 1},  // 20
		{2, 4},  // END
	}

	for i, tt := range tests {
		tok := l.NextToken()
		if (tok.Line != tt.line) || (tok.Col != tt.col) {
			t.Fatalf("tests[%d] - expected %d:%d, got %d:%d", i, tt.line, tt.col, tok.Line, tok.Col)
		}
	}
}

func TestIllegalTokens(t *testing.T) {
	tests := []struct {
		input string
		tok   token.TokenType
	}{
		{`"no closing quote`, token.ILLEGAL},
		{"@", token.ILLEGAL},
		{"{", token.ILLEGAL},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()

		if tok.Type != tt.tok {
			t.Errorf("%s: expected %s, got %s", tt.input, tt.tok, tok.Type)
		}
	}
}
