package settings

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xyproto/env/v2"
)

func setVar(t *testing.T, name, value string) {
	t.Setenv(name, value)
	env.Unload()
	t.Cleanup(env.Unload)
}

func clearVar(t *testing.T, name string) {
	prev, had := os.LookupEnv(name)
	os.Unsetenv(name)
	env.Unload()
	t.Cleanup(func() {
		if had {
			os.Setenv(name, prev)
		}
		env.Unload()
	})
}

func TestSixelOverride(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"on", true},
		{"yes", true},
		{"0", false},
		{"off", false},
		{"FALSE", false},
	}

	for _, tt := range tests {
		setVar(t, sixelVar, tt.value)
		assert.Equal(t, tt.want, Sixel(), tt.value)
	}
}

func TestSixelSniffsTerm(t *testing.T) {
	clearVar(t, sixelVar)

	setVar(t, "TERM", "foot")
	assert.True(t, Sixel())

	setVar(t, "TERM", "dumb")
	assert.False(t, Sixel())
}

func TestFallbackSize(t *testing.T) {
	clearVar(t, colsVar)
	clearVar(t, rowsVar)
	cols, rows := FallbackSize()
	assert.Equal(t, 80, cols)
	assert.Equal(t, 25, rows)

	setVar(t, colsVar, "132")
	setVar(t, rowsVar, "50")
	cols, rows = FallbackSize()
	assert.Equal(t, 132, cols)
	assert.Equal(t, 50, rows)

	setVar(t, colsVar, "-3")
	cols, _ = FallbackSize()
	assert.Equal(t, 80, cols)
}
