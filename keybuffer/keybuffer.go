// Package keybuffer holds keystrokes read off the terminal until the
// interpreter asks for them.  The reader goroutine calls SaveKeyStroke,
// the INKEY$ side calls ReadByte.
package keybuffer

import "sync"

const ringsize = 128

var (
	mu        sync.Mutex
	buffer    [ringsize]byte
	read      int
	write     int
	sig_break bool
)

// SaveKeyStroke adds the bytes of one keystroke to the buffer.
// Ctrl-C sets the break flag instead of queueing.  Bytes that
// arrive while the buffer is full are dropped.
func SaveKeyStroke(key []byte) {
	mu.Lock()
	defer mu.Unlock()

	for _, bt := range key {
		if bt == 0x03 {
			sig_break = true
			continue
		}

		next := (write + 1) % ringsize
		if next == read {
			return
		}
		buffer[write] = bt
		write = next
	}
}

// ReadByte pops the oldest buffered byte, ok is false when empty
func ReadByte() (byte, bool) {
	mu.Lock()
	defer mu.Unlock()

	if read == write {
		return 0, false
	}

	bt := buffer[read]
	read = (read + 1) % ringsize
	return bt, true
}

// BreakSeen reports whether Ctrl-C arrived since the last ClearBreak
func BreakSeen() bool {
	mu.Lock()
	defer mu.Unlock()
	return sig_break
}

func ClearBreak() {
	mu.Lock()
	defer mu.Unlock()
	sig_break = false
}
