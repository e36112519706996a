package lexer

import (
	"strconv"
	"strings"

	"github.com/basixel/basixel/token"
)

// Lexer a lexical analyzer instance
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // 1-based source line of the current char
	col          int  // 1-based column of the current char
	newLine      bool // flag that I'm at the start of a line
}

// New create a new lexer object
func New(input string) *Lexer {
	l := &Lexer{
		input:   input,
		newLine: true,
		line:    1,
	}
	l.readChar()
	return l
}

// NextToken scans for the next token
func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	line, col := l.line, l.col

	switch l.ch {
	case '\n':
		tok = newToken(token.EOL, l.ch)
	case '=':
		tok = newToken(token.ASSIGN, l.ch)
	case ':':
		tok = newToken(token.COLON, l.ch)
	case ';':
		tok = newToken(token.SEMICOLON, l.ch)
	case '(':
		tok = newToken(token.LPAREN, l.ch)
	case ')':
		tok = newToken(token.RPAREN, l.ch)
	case ',':
		tok = newToken(token.COMMA, l.ch)
	case '+':
		tok = newToken(token.PLUS, l.ch)
	case '-':
		tok = newToken(token.MINUS, l.ch)
	case '/':
		tok = newToken(token.SLASH, l.ch)
	case '*':
		tok = newToken(token.ASTERISK, l.ch)
	case '^':
		tok = newToken(token.CARET, l.ch)
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.LTE, Literal: "<="}
		} else if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Type: token.NOT_EQ, Literal: "<>"}
		} else {
			tok = newToken(token.LT, l.ch)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.GTE, Literal: ">="}
		} else {
			tok = newToken(token.GT, l.ch)
		}
	case '\\':
		tok = newToken(token.BSLASH, l.ch)
	case '\'':
		tok.Type = token.REM
		tok.Literal = l.readComment()
		tok.Line, tok.Col = line, col
		return tok
	case '"':
		lit, ok := l.readString()
		if ok {
			tok = token.Token{Type: token.STRING, Literal: lit}
		} else {
			tok = token.Token{Type: token.ILLEGAL, Literal: lit}
		}
	case 0:
		tok.Literal = token.EOF
		tok.Type = token.EOF
	default:
		if isLetter(l.ch) {
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
			l.newLine = false
			if tok.Type == token.REM {
				tok.Literal = l.readComment()
			}
			tok.Line, tok.Col = line, col
			return tok
		} else if isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())) {
			tok.Type, tok.Literal = l.readNumber()
			if l.newLine && ((tok.Type == token.INT) || (tok.Type == token.INTD)) {
				tok.Type = token.LINENUM
			}
			l.newLine = false
			tok.Line, tok.Col = line, col
			return tok
		}
		tok = newToken(token.ILLEGAL, l.ch)
	}

	if tok.Type == token.EOL {
		l.newLine = true
	} else {
		l.newLine = false
	}
	tok.Line, tok.Col = line, col

	l.readChar()
	return tok
}

// identifiers are letters and digits with an optional
// single trailing type suffix
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	switch l.ch {
	case '$', '%', '&', '!', '#':
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.col++
}

func (l *Lexer) readString() (string, bool) {
	position := l.position + 1
	for {
		l.readChar()
		if l.ch == '"' {
			return l.input[position:l.position], true
		}
		if (l.ch == 0) || (l.ch == '\n') {
			return l.input[position:l.position], false
		}
	}
}

// consume the rest of the line, the next token will be the EOL
func (l *Lexer) readComment() string {
	position := l.position
	for (l.ch != '\n') && (l.ch != 0) {
		l.readChar()
	}
	return strings.TrimSpace(l.input[position:l.position])
}

// reads a numeric literal, classifying it by its form or
// trailing type suffix
func (l *Lexer) readNumber() (token.TokenType, string) {
	tt := token.TokenType(token.INT)
	position := l.position

	done := false
	for !done {
		switch l.ch {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			l.readChar()
		case '.':
			var bad bool
			bad, tt = chgType(tt, token.INT, token.FLOAT)
			if bad {
				done = true
				break
			}
			l.readChar()
		case 'e', 'E':
			var bad bool
			bad, tt = chgType(tt, token.INT, token.FLOAT)
			if bad {
				bad, tt = chgType(tt, token.FLOAT, token.FLOAT)
			}
			if bad {
				done = true
				break
			}
			l.readExponent()
		case 'd', 'D':
			l.readExponent()
			tt = token.FLOATD
			done = true
		default:
			done = true
		}
	}

	lit := l.input[position:l.position]

	// trailing type suffix wins over literal form
	switch l.ch {
	case '%':
		tt = token.INT
		l.readChar()
	case '&':
		tt = token.INTD
		l.readChar()
	case '!':
		tt = token.FLOAT
		l.readChar()
	case '#':
		tt = token.FLOATD
		l.readChar()
	}

	if tt == token.INT {
		if n, err := strconv.ParseInt(lit, 10, 64); (err != nil) || (n < -32768) || (n > 32767) {
			tt = token.INTD
		}
	}

	return tt, lit
}

func (l *Lexer) readExponent() {
	l.readChar()
	if (l.ch == '-') || (l.ch == '+') {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
}

func chgType(curTok token.TokenType, ifTok token.TokenType, newTok token.TokenType) (bool, token.TokenType) {
	if curTok == ifTok {
		return false, newTok
	}
	return true, curTok
}

// peekChar - take a look at, but don't consume the next character
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}

	return l.input[l.readPosition]
}

func newToken(tokenType token.TokenType, ch byte) token.Token {
	return token.Token{Type: tokenType, Literal: string(ch)}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}
