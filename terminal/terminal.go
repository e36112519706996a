// Package terminal drives an ANSI terminal with optional sixel
// graphics.  It owns the tty, raw mode included, and feeds every
// keystroke into the keybuffer for INKEY$ and break detection.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
	"golang.org/x/text/encoding/charmap"

	"github.com/basixel/basixel/canvas"
	"github.com/basixel/basixel/keybuffer"
	"github.com/basixel/basixel/settings"
	"github.com/basixel/basixel/sixel"
)

// Terminal implements object.Console on a real tty
type Terminal struct {
	out      io.Writer
	fd       int
	oldState *term.State
	row, col int
	cols     int
	rows     int
}

// New puts stdin into raw mode and starts the keystroke reader.
// Callers must Close to restore the tty.
func New() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		cols, rows = settings.FallbackSize()
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	t := &Terminal{out: os.Stdout, fd: fd, oldState: old, cols: cols, rows: rows}
	go readKeystrokes(os.Stdin)
	return t, nil
}

// Close restores the tty state captured by New
func (t *Terminal) Close() {
	if t.oldState != nil {
		term.Restore(t.fd, t.oldState)
		t.oldState = nil
	}
}

// readKeystrokes moves stdin bytes into the keybuffer one at a time
// so Ctrl-C is seen even while the program is busy
func readKeystrokes(in io.Reader) {
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if err != nil {
			return
		}
		if n > 0 {
			keybuffer.SaveKeyStroke(buf[:n])
		}
	}
}

// Cls clears the screen and homes the cursor
func (t *Terminal) Cls() {
	fmt.Fprint(t.out, "\x1b[2J\x1b[H")
	t.row, t.col = 0, 0
}

// Print writes at the current cursor position.  Runes 128-255 are
// CHR$ codes and map through the CP437 glyph table.
func (t *Terminal) Print(msg string) {
	fmt.Fprint(t.out, mapGlyphs(msg))
	for range msg {
		t.col++
		if t.col >= t.cols {
			t.col = 0
			if t.row < t.rows-1 {
				t.row++
			}
		}
	}
}

func (t *Terminal) Println(msg string) {
	fmt.Fprint(t.out, mapGlyphs(msg)+"\r\n")
	t.col = 0
	if t.row < t.rows-1 {
		t.row++
	}
}

// Locate moves the cursor, row and col count from 0,0 at top left
func (t *Terminal) Locate(row, col int) {
	fmt.Fprintf(t.out, "\x1b[%d;%dH", row+1, col+1)
	t.row, t.col = row, col
}

func (t *Terminal) GetCursor() (int, int) {
	return t.row, t.col
}

// ReadKeys blocks until count keystrokes have arrived
func (t *Terminal) ReadKeys(count int) []byte {
	var keys []byte
	for len(keys) < count {
		bt, ok := keybuffer.ReadByte()
		if !ok {
			time.Sleep(25 * time.Millisecond)
			continue
		}
		keys = append(keys, bt)
	}
	return keys
}

// InKey returns one pending keystroke without waiting, "" when none
func (t *Terminal) InKey() string {
	bt, ok := keybuffer.ReadByte()
	if !ok {
		return ""
	}
	return string(bt)
}

// ReadLine collects a line of input with echo, ending at CR.
// Backspace erases, other control bytes are dropped.
func (t *Terminal) ReadLine() string {
	var line []byte
	for {
		bt, ok := keybuffer.ReadByte()
		if !ok {
			time.Sleep(25 * time.Millisecond)
			continue
		}

		switch {
		case bt == '\r' || bt == '\n':
			t.Println("")
			return string(line)
		case bt == 0x08 || bt == 0x7f:
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(t.out, "\b \b")
				if t.col > 0 {
					t.col--
				}
			}
		case bt >= 0x20:
			line = append(line, bt)
			t.Print(string(bt))
		}
	}
}

func (t *Terminal) SoundBell() {
	fmt.Fprint(t.out, "\a")
}

// BreakCheck reports a pending Ctrl-C and clears it
func (t *Terminal) BreakCheck() bool {
	if !keybuffer.BreakSeen() {
		return false
	}
	keybuffer.ClearBreak()
	return true
}

// Size reads the live terminal size so resizes are picked up
func (t *Terminal) Size() (int, int) {
	if cols, rows, err := term.GetSize(t.fd); err == nil {
		t.cols, t.rows = cols, rows
	}
	return t.cols, t.rows
}

// WriteSixel positions the cursor at the cell containing the region,
// emits the sixel data, then puts the cursor back
func (t *Terminal) WriteSixel(u sixel.Update) {
	row, col := t.row, t.col
	fmt.Fprintf(t.out, "\x1b[%d;%dH", u.Y/canvas.CharHeight+1, u.X/canvas.CharWidth+1)
	t.out.Write(u.Data)
	t.Locate(row, col)
}

// mapGlyphs rewrites CHR$ codes 128-255 into their CP437 glyphs
func mapGlyphs(msg string) string {
	mapped := false
	for _, r := range msg {
		if (r >= 0x80) && (r <= 0xff) {
			mapped = true
			break
		}
	}
	if !mapped {
		return msg
	}

	var sb strings.Builder
	for _, r := range msg {
		if (r >= 0x80) && (r <= 0xff) {
			r = charmap.CodePage437.DecodeByte(byte(r))
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
