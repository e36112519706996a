package sixel

import (
	"fmt"
	"strings"
	"testing"

	"github.com/basixel/basixel/canvas"
	"github.com/stretchr/testify/assert"
)

func TestEncodeFraming(t *testing.T) {
	cv := canvas.New(16, 12)
	var enc Encoder

	out := string(enc.Encode(cv))
	assert.True(t, strings.HasPrefix(out, "\x1bP0;1;q"))
	assert.True(t, strings.HasSuffix(out, "\x1b\\"))

	// every palette slot is defined up front, black maps to 0;0;0
	assert.Contains(t, out, "#0;2;0;0;0")
	assert.Contains(t, out, "#15;2;100;100;100")
	for i := range Palette {
		assert.Contains(t, out, fmt.Sprintf("#%d;2;", i))
	}
}

func TestEncodeRunLength(t *testing.T) {
	cv := canvas.New(320, 6)
	cv.Line(0, 0, 319, 0, 15)
	var enc Encoder

	out := string(enc.Encode(cv))
	// one solid row of 320 identical columns collapses to a
	// single repeat introducer
	assert.Contains(t, out, "!320@")
}

func TestEncodeBandColors(t *testing.T) {
	cv := canvas.New(12, 6)
	cv.Pset(0, 0, 1)
	cv.Pset(1, 0, 2)
	var enc Encoder

	out := string(enc.Encode(cv))
	// both colors restated with a carriage return between passes
	assert.Contains(t, out, "$")
	i1 := strings.LastIndex(out, "#1")
	i2 := strings.LastIndex(out, "#2")
	assert.True(t, i1 > 0 && i2 > i1)
}

func TestFlushFullThenNothing(t *testing.T) {
	cv := canvas.New(64, 48)
	r := NewRenderer()

	ups := r.Flush(cv)
	assert.Len(t, ups, 1)
	assert.Equal(t, 0, ups[0].X)
	assert.Equal(t, 0, ups[0].Y)
	assert.Equal(t, 64, ups[0].W)
	assert.Equal(t, 48, ups[0].H)

	// nothing drawn since, nothing sent
	ups = r.Flush(cv)
	assert.Empty(t, ups)
}

func TestFlushSinglePixel(t *testing.T) {
	cv := canvas.New(64, 48)
	r := NewRenderer()
	r.Flush(cv)

	cv.Pset(20, 20, 5)
	ups := r.Flush(cv)
	assert.Len(t, ups, 1)
	assert.Equal(t, 16, ups[0].X)
	assert.Equal(t, 18, ups[0].Y)
	assert.Equal(t, canvas.TileWidth, ups[0].W)
	assert.Equal(t, canvas.TileHeight, ups[0].H)
}

func TestFlushMergesTileRuns(t *testing.T) {
	cv := canvas.New(64, 48)
	r := NewRenderer()
	r.Flush(cv)

	// three adjacent tiles in one row plus one isolated tile
	cv.Pset(0, 0, 5)
	cv.Pset(9, 0, 5)
	cv.Pset(17, 0, 5)
	cv.Pset(40, 30, 5)

	ups := r.Flush(cv)
	assert.Len(t, ups, 2)
	assert.Equal(t, 0, ups[0].X)
	assert.Equal(t, 3*canvas.TileWidth, ups[0].W)
	assert.Equal(t, 40, ups[1].X)
	assert.Equal(t, 30, ups[1].Y)
}

func TestFlushFullRedrawThreshold(t *testing.T) {
	cv := canvas.New(64, 48)
	r := NewRenderer()
	r.Flush(cv)

	// dirty more than a quarter of the tiles
	for y := 0; y < 24; y++ {
		for x := 0; x < 64; x++ {
			cv.Pset(x, y, 3)
		}
	}
	ups := r.Flush(cv)
	assert.Len(t, ups, 1)
	assert.Equal(t, 64, ups[0].W)
	assert.Equal(t, 48, ups[0].H)
}

func TestFlushAfterResize(t *testing.T) {
	cv := canvas.New(64, 48)
	r := NewRenderer()
	r.Flush(cv)

	cv.Resize(128, 48)
	r.Flush(cv) // full frame for the new size
	ups := r.Flush(cv)
	assert.Empty(t, ups)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("xterm-256color"))
	assert.True(t, Supported("foot"))
	assert.True(t, Supported("mlterm"))
	assert.True(t, Supported("st-sixel"))
	assert.False(t, Supported("dumb"))
	assert.False(t, Supported(""))
}
