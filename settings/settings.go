// Package settings reads the environment variables that control the
// interpreter host.
package settings

import (
	"strings"

	"github.com/xyproto/env/v2"

	"github.com/basixel/basixel/sixel"
)

const (
	sixelVar = "BASIXEL_SIXEL" // force graphics output on or off
	colsVar  = "BASIXEL_COLS"  // screen size fallback when the tty
	rowsVar  = "BASIXEL_ROWS"  // size cannot be read
)

// Sixel reports whether graphics updates should be written.
// BASIXEL_SIXEL overrides, otherwise TERM decides.
func Sixel() bool {
	if env.Has(sixelVar) {
		switch strings.ToLower(env.Str(sixelVar)) {
		case "0", "off", "no", "false":
			return false
		default:
			return true
		}
	}
	return sixel.Supported(env.Str("TERM"))
}

// FallbackSize is the text screen size used when the tty size is
// unknown, 80x25 unless overridden
func FallbackSize() (cols int, rows int) {
	cols = env.Int(colsVar, 80)
	rows = env.Int(rowsVar, 25)
	if cols < 1 {
		cols = 80
	}
	if rows < 1 {
		rows = 25
	}
	return cols, rows
}
