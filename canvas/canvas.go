// Package canvas holds the indexed-color pixel surface the graphics
// statements draw on, and tracks which tiles changed since the last
// flush to the terminal.
package canvas

const (
	// CharWidth and CharHeight are the pixel size of one terminal
	// character cell
	CharWidth  = 8
	CharHeight = 16

	// TileWidth and TileHeight fix the dirty-tracking granularity.
	// Tile height matches the sixel band quantum of six pixel rows.
	TileWidth  = 8
	TileHeight = 6
)

// Canvas is a width x height grid of palette indices 0-15
type Canvas struct {
	width  int
	height int
	pixels []uint8

	fg uint8
	bg uint8

	tilesX int
	tilesY int
	dirty  []bool
	nDirty int

	termSized bool // surface follows the terminal size, no SCREEN mode yet
}

// New creates a canvas of the passed pixel dimensions
func New(width, height int) *Canvas {
	cv := &Canvas{fg: 15, bg: 0}
	cv.alloc(width, height)
	return cv
}

// NewForTerminal sizes the canvas to a terminal of cols x rows
// character cells
func NewForTerminal(cols, rows int) *Canvas {
	cv := New(cols*CharWidth, rows*CharHeight)
	cv.termSized = true
	return cv
}

// TermSized reports whether the surface still tracks the terminal
// size, true until a SCREEN mode pins the dimensions
func (cv *Canvas) TermSized() bool {
	return cv.termSized
}

func (cv *Canvas) alloc(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cv.width = width
	cv.height = height
	cv.pixels = make([]uint8, width*height)
	cv.tilesX = (width + TileWidth - 1) / TileWidth
	cv.tilesY = (height + TileHeight - 1) / TileHeight
	cv.dirty = make([]bool, cv.tilesX*cv.tilesY)
	cv.markAll()
}

// Size reports the canvas dimensions in pixels
func (cv *Canvas) Size() (int, int) {
	return cv.width, cv.height
}

// Resize replaces the surface, content is lost and the whole
// canvas is retransmitted on the next flush
func (cv *Canvas) Resize(width, height int) {
	if (width == cv.width) && (height == cv.height) {
		return
	}
	cv.alloc(width, height)
}

// modeDims maps the classic screen mode numbers onto canvas sizes
var modeDims = map[int][2]int{
	1:  {320, 200},
	2:  {640, 200},
	7:  {320, 200},
	8:  {640, 200},
	9:  {640, 350},
	12: {640, 480},
	13: {320, 200},
}

// SetMode resizes the canvas for a screen mode, false when the
// mode number is not a graphics mode
func (cv *Canvas) SetMode(mode int) bool {
	dims, ok := modeDims[mode]
	if !ok {
		return false
	}
	cv.alloc(dims[0], dims[1])
	cv.termSized = false
	return true
}

// SetColor sets the drawing foreground and background
func (cv *Canvas) SetColor(fg, bg int) {
	cv.fg = uint8(fg) & 0x0F
	cv.bg = uint8(bg) & 0x0F
}

// Fg current foreground color
func (cv *Canvas) Fg() uint8 { return cv.fg }

// Bg current background color
func (cv *Canvas) Bg() uint8 { return cv.bg }

// Clear fills the canvas with the background color and marks
// every tile dirty
func (cv *Canvas) Clear() {
	for i := range cv.pixels {
		cv.pixels[i] = cv.bg
	}
	cv.markAll()
}

// Pset sets one pixel, coordinates off the canvas are silently
// clipped. The touched tile goes dirty only when the pixel value
// actually changes.
func (cv *Canvas) Pset(x, y int, color uint8) {
	if (x < 0) || (y < 0) || (x >= cv.width) || (y >= cv.height) {
		return
	}

	idx := y*cv.width + x
	color &= 0x0F
	if cv.pixels[idx] == color {
		return
	}
	cv.pixels[idx] = color
	cv.markTile(x/TileWidth, y/TileHeight)
}

// Point reads one pixel, off-canvas reads return zero
func (cv *Canvas) Point(x, y int) int {
	if (x < 0) || (y < 0) || (x >= cv.width) || (y >= cv.height) {
		return 0
	}
	return int(cv.pixels[y*cv.width+x])
}

// Pixels exposes the raw pixel buffer for the encoder
func (cv *Canvas) Pixels() []uint8 {
	return cv.pixels
}

// TileGrid reports the dirty-tracking grid dimensions
func (cv *Canvas) TileGrid() (int, int) {
	return cv.tilesX, cv.tilesY
}

// TileDirty reports whether one tile changed since the last flush
func (cv *Canvas) TileDirty(tx, ty int) bool {
	if (tx < 0) || (ty < 0) || (tx >= cv.tilesX) || (ty >= cv.tilesY) {
		return false
	}
	return cv.dirty[ty*cv.tilesX+tx]
}

// DirtyCount number of dirty tiles
func (cv *Canvas) DirtyCount() int {
	return cv.nDirty
}

// FullRedrawNeeded true when enough of the canvas changed that a
// single full retransmit beats many small ones
func (cv *Canvas) FullRedrawNeeded() bool {
	return cv.nDirty*4 > len(cv.dirty)
}

// ClearDirty resets the dirty set after a flush
func (cv *Canvas) ClearDirty() {
	for i := range cv.dirty {
		cv.dirty[i] = false
	}
	cv.nDirty = 0
}

func (cv *Canvas) markTile(tx, ty int) {
	idx := ty*cv.tilesX + tx
	if !cv.dirty[idx] {
		cv.dirty[idx] = true
		cv.nDirty++
	}
}

func (cv *Canvas) markAll() {
	for i := range cv.dirty {
		cv.dirty[i] = true
	}
	cv.nDirty = len(cv.dirty)
}
