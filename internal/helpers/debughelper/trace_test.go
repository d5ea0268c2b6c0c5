package debughelper

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

//go:noinline
func traceParent() string {
	return TraceCaller(1)
}

func TestTraceCaller(t *testing.T) {
	got := TraceCaller(0)
	assert.True(t, strings.HasPrefix(got, "trace: trace_test.go:"), got)
	assert.True(t, strings.HasSuffix(got, "debughelper.TestTraceCaller)"), got)

	assert.Contains(t, traceParent(), "debughelper.TestTraceCaller)")
	assert.Equal(t, "???", TraceCaller(1<<20))
	assert.Equal(t, "???", TraceCaller(math.MaxInt))
}

func TestTraceStack(t *testing.T) {
	got := TraceStack(0)
	lines := strings.Split(got, "\n")

	assert.Equal(t, "stack:", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "debughelper.TestTraceStack"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "\t"))
	assert.Contains(t, got, "testing.tRunner")
	assert.NotContains(t, got, "runtime.goexit")
}

func TestTraceStack_TooDeep(t *testing.T) {
	assert.Equal(t, "stack:\n", TraceStack(math.MaxInt))
}
