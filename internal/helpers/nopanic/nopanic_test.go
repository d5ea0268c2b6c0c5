package nopanic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoPanicRun(t *testing.T) {
	assert.Equal(t, 7, NoPanicRun("ok", -1, func() int { return 7 }))
	assert.Equal(t, -1, NoPanicRun("boom", -1, func() int { panic("boom") }))

	var m map[string]int
	assert.Equal(t, "fallback", NoPanicRun("nil map", "fallback", func() string {
		m["x"] = 1
		return "unreachable"
	}))
}

func TestNoPanicRunVoid(t *testing.T) {
	ran := false
	assert.False(t, NoPanicRunVoid("ok", func() { ran = true }))
	assert.True(t, ran)
	assert.True(t, NoPanicRunVoid("boom", func() { panic("boom") }))
}
