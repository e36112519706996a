package keybuffer

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	mu.Lock()
	read, write, sig_break = 0, 0, false
	mu.Unlock()
}

func drain() []byte {
	var got []byte
	for {
		bt, ok := ReadByte()
		if !ok {
			return got
		}
		got = append(got, bt)
	}
}

func TestSaveAndReadRoundTrip(t *testing.T) {
	reset()

	SaveKeyStroke([]byte("foo"))
	assert.Equal(t, []byte("foo"), drain())

	_, ok := ReadByte()
	assert.False(t, ok)

	SaveKeyStroke(nil)
	_, ok = ReadByte()
	assert.False(t, ok)
}

func TestWrapAround(t *testing.T) {
	reset()
	mu.Lock()
	read, write = ringsize-4, ringsize-4
	mu.Unlock()

	SaveKeyStroke([]byte("wrap test"))
	assert.Equal(t, []byte("wrap test"), drain())
}

func TestFullBufferDropsBytes(t *testing.T) {
	reset()

	// capacity is one less than the ring so write never catches read
	SaveKeyStroke([]byte(strings.Repeat("x", ringsize+10)))
	assert.Len(t, drain(), ringsize-1)

	// draining frees the space back up
	SaveKeyStroke([]byte("more"))
	assert.Equal(t, []byte("more"), drain())
}

func TestBreakFlag(t *testing.T) {
	reset()

	assert.False(t, BreakSeen())
	SaveKeyStroke([]byte{'a', 0x03, 'b'})
	assert.True(t, BreakSeen())

	// Ctrl-C raises the flag but never queues
	assert.Equal(t, []byte("ab"), drain())

	ClearBreak()
	assert.False(t, BreakSeen())
}

func TestConcurrentFeed(t *testing.T) {
	reset()

	var wg sync.WaitGroup
	for n := 0; n < 4; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				SaveKeyStroke([]byte{'k'})
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		SaveKeyStroke([]byte{0x03})
	}()
	wg.Wait()

	assert.Len(t, drain(), 100)
	assert.True(t, BreakSeen())
	ClearBreak()
}
