package sixel

import (
	"bytes"
	"fmt"

	"github.com/basixel/basixel/canvas"
)

const (
	intro      = "\x1bP0;1;q"
	terminator = "\x1b\\"
)

// Encoder turns canvas pixel data into DEC sixel sequences.
type Encoder struct{}

// Encode emits a complete sixel image for the whole canvas.
func (e *Encoder) Encode(cv *canvas.Canvas) []byte {
	w, h := cv.Size()
	return e.EncodeRegion(cv, 0, 0, w, h)
}

// EncodeRegion emits a standalone sixel image for the given
// rectangle.  y must land on a band boundary, which tile geometry
// guarantees for renderer callers.
func (e *Encoder) EncodeRegion(cv *canvas.Canvas, x, y, w, h int) []byte {
	var buf bytes.Buffer
	buf.WriteString(intro)
	for i, c := range Palette {
		fmt.Fprintf(&buf, "#%d;2;%d;%d;%d", i, scale100(c[0]), scale100(c[1]), scale100(c[2]))
	}

	pix := cv.Pixels()
	cw, ch := cv.Size()

	for band := y; band < y+h; band += canvas.TileHeight {
		var present [len(Palette)]bool
		for row := band; row < band+canvas.TileHeight && row < ch; row++ {
			for col := x; col < x+w && col < cw; col++ {
				present[pix[row*cw+col]] = true
			}
		}

		firstPass := true
		for color := range Palette {
			if !present[color] {
				continue
			}
			if !firstPass {
				buf.WriteByte('$')
			}
			firstPass = false
			fmt.Fprintf(&buf, "#%d", color)
			e.encodePass(&buf, pix, cw, ch, x, band, w, uint8(color))
		}
		buf.WriteByte('-')
	}
	buf.WriteString(terminator)
	return buf.Bytes()
}

// encodePass writes one color's sixel characters for one band,
// run-length encoding repeats longer than three.
func (e *Encoder) encodePass(buf *bytes.Buffer, pix []uint8, cw, ch, x, band, w int, color uint8) {
	runChar := byte(0)
	runLen := 0

	flush := func() {
		if runLen == 0 {
			return
		}
		if runLen > 3 {
			fmt.Fprintf(buf, "!%d%c", runLen, runChar)
		} else {
			for i := 0; i < runLen; i++ {
				buf.WriteByte(runChar)
			}
		}
		runLen = 0
	}

	for col := x; col < x+w; col++ {
		bits := 0
		if col < cw {
			for bit := 0; bit < canvas.TileHeight; bit++ {
				row := band + bit
				if row < ch && pix[row*cw+col] == color {
					bits |= 1 << bit
				}
			}
		}
		c := byte(bits + 63)
		if c == runChar {
			runLen++
			continue
		}
		flush()
		runChar = c
		runLen = 1
	}
	flush()
}

func scale100(v uint8) int {
	return int(v) * 100 / 255
}
