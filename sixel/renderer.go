package sixel

import (
	"strings"

	"github.com/basixel/basixel/canvas"
)

// Update is one positioned sixel image ready for the terminal.
// X and Y are pixel coordinates on the canvas.
type Update struct {
	Data       []byte
	X, Y, W, H int
}

// Renderer tracks what the terminal has already been sent and
// retransmits only the tiles that changed since the last flush.
type Renderer struct {
	enc     Encoder
	started bool
	lastW   int
	lastH   int
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Flush encodes everything drawn since the previous call.  The first
// flush, any flush after a resize, and any flush where more than a
// quarter of the tiles changed send one full-canvas image; otherwise
// each horizontal run of dirty tiles becomes its own update.  The
// canvas dirty set is cleared on return.
func (r *Renderer) Flush(cv *canvas.Canvas) []Update {
	w, h := cv.Size()
	full := !r.started || w != r.lastW || h != r.lastH || cv.FullRedrawNeeded()
	r.started = true
	r.lastW, r.lastH = w, h

	var ups []Update
	if full {
		ups = append(ups, Update{Data: r.enc.EncodeRegion(cv, 0, 0, w, h), W: w, H: h})
		cv.ClearDirty()
		return ups
	}

	tx, ty := cv.TileGrid()
	for row := 0; row < ty; row++ {
		for col := 0; col < tx; {
			if !cv.TileDirty(col, row) {
				col++
				continue
			}
			start := col
			for col < tx && cv.TileDirty(col, row) {
				col++
			}
			px := start * canvas.TileWidth
			py := row * canvas.TileHeight
			pw := (col - start) * canvas.TileWidth
			if px+pw > w {
				pw = w - px
			}
			ph := canvas.TileHeight
			if py+ph > h {
				ph = h - py
			}
			ups = append(ups, Update{
				Data: r.enc.EncodeRegion(cv, px, py, pw, ph),
				X:    px, Y: py, W: pw, H: ph,
			})
		}
	}
	cv.ClearDirty()
	return ups
}

// Reset forgets the transmitted state so the next flush repaints
// the whole canvas.
func (r *Renderer) Reset() {
	r.started = false
}

// Supported reports whether the named terminal is known to decode
// sixel sequences.
func Supported(term string) bool {
	if term == "" {
		return false
	}
	if strings.Contains(term, "sixel") {
		return true
	}
	for _, known := range []string{"mlterm", "foot", "wezterm", "contour", "yaft", "mintty"} {
		if strings.HasPrefix(term, known) {
			return true
		}
	}
	return strings.HasPrefix(term, "xterm")
}
