package frameinfo_test

import (
	"math"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/lattesec/frameinfo/pkg/frameinfo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModule = "github.com/lattesec/frameinfo/pkg/frameinfo_test"

var chainIndexes = []int{0, -1, -2, -3, 1, 2, 3, 4}

type probes struct {
	byIndex map[int]frameinfo.Info
	frames  []frameinfo.Info
	names   []frameinfo.Name

	midByName    frameinfo.Info
	rootByOffset frameinfo.Info
	leafByOffset frameinfo.Info
	pastRoot     frameinfo.Info
	wrongModule  frameinfo.Info
	missing      frameinfo.Info
}

// root -> mid -> leaf on a goroutine of its own, so root is the root-most frame.
func runChain() probes {
	out := make(chan probes, 1)
	go root(out)
	return <-out
}

//go:noinline
func root(out chan<- probes) {
	out <- mid()
}

//go:noinline
func mid() probes {
	return leaf()
}

//go:noinline
func leaf() probes {
	p := probes{byIndex: make(map[int]frameinfo.Info)}
	for _, i := range chainIndexes {
		p.byIndex[i] = frameinfo.Resolve(i)
	}
	p.frames = frameinfo.Frames()
	p.names = frameinfo.Names()

	p.midByName = frameinfo.ByName("mid", testModule, 0)
	p.rootByOffset = frameinfo.ByName("mid", testModule, 1)
	p.leafByOffset = frameinfo.ByName("mid", "", -1)
	p.pastRoot = frameinfo.ByName("mid", testModule, 2)
	p.wrongModule = frameinfo.ByName("mid", "example.com/elsewhere", 0)
	p.missing = frameinfo.ByName("nowhere", "", 0)
	return p
}

func TestResolve_Chain(t *testing.T) {
	p := runChain()

	want := map[int]string{
		0:  "leaf",
		-1: "mid",
		-2: "root",
		1:  "root",
		2:  "mid",
		3:  "leaf",
	}
	for index, name := range want {
		info := p.byIndex[index]
		assert.True(t, info.Found(), "index %d", index)
		assert.Equal(t, name, info.CallerName, "index %d", index)
		assert.Equal(t, testModule, info.ModuleName, "index %d", index)
		assert.Greater(t, info.CallerLine, 0, "index %d", index)
		assert.Equal(t, "frameinfo_test.go", filepath.Base(info.File), "index %d", index)
	}

	for _, index := range []int{-3, 4} {
		info := p.byIndex[index]
		assert.False(t, info.Found(), "index %d", index)
		assert.Equal(t, frameinfo.Unknown, info.CallerName)
		assert.Equal(t, 0, info.CallerLine)
		assert.Equal(t, frameinfo.Unknown, info.ModuleName)
	}
}

func TestFrames_Chain(t *testing.T) {
	p := runChain()

	require.Len(t, p.frames, 3)
	assert.Equal(t, "leaf", p.frames[0].CallerName)
	assert.Equal(t, "mid", p.frames[1].CallerName)
	assert.Equal(t, "root", p.frames[2].CallerName)

	assert.Equal(t, []frameinfo.Name{
		{Module: testModule, Function: "leaf"},
		{Module: testModule, Function: "mid"},
		{Module: testModule, Function: "root"},
	}, p.names)
}

func TestByName_Chain(t *testing.T) {
	p := runChain()

	assert.Equal(t, "mid", p.midByName.CallerName)
	assert.Equal(t, testModule, p.midByName.ModuleName)
	assert.Equal(t, "root", p.rootByOffset.CallerName)
	assert.Equal(t, "leaf", p.leafByOffset.CallerName)

	assert.False(t, p.pastRoot.Found())
	assert.False(t, p.wrongModule.Found())
	assert.False(t, p.missing.Found())
}

func TestResolve_Self(t *testing.T) {
	info := frameinfo.Resolve(0)
	_, file, line, _ := runtime.Caller(0)

	assert.Equal(t, "TestResolve_Self", info.CallerName)
	assert.Equal(t, testModule, info.ModuleName)
	assert.Equal(t, line-1, info.CallerLine)
	assert.Equal(t, file, info.File)
	assert.Equal(t, testModule+".TestResolve_Self", info.Function)
}

func TestResolve_TestRunnerIsRoot(t *testing.T) {
	caller := frameinfo.Resolve(-1)
	assert.Equal(t, "tRunner", caller.CallerName)
	assert.Equal(t, "testing", caller.ModuleName)

	root := frameinfo.Resolve(1)
	assert.Equal(t, "tRunner", root.CallerName)
}

func TestResolve_OutOfRange(t *testing.T) {
	for _, index := range []int{-1000, 1000, math.MinInt, math.MaxInt} {
		info := frameinfo.Resolve(index)
		assert.False(t, info.Found(), "index %d", index)
		assert.Equal(t, "Unknown.Unknown:0", info.String())
	}
}

// walking backward from 0 and forward from 1 visits the same frames in
// opposite order
func TestResolve_Symmetry(t *testing.T) {
	n := len(frameinfo.Frames())
	require.Greater(t, n, 0)

	backward := make([]string, 0, n)
	for k := 0; k < n; k++ {
		info := frameinfo.Resolve(-k)
		require.True(t, info.Found(), "index %d", -k)
		backward = append(backward, info.Function)
	}

	forward := make([]string, 0, n)
	for k := 1; k <= n; k++ {
		info := frameinfo.Resolve(k)
		require.True(t, info.Found(), "index %d", k)
		forward = append(forward, info.Function)
	}

	for i := range backward {
		assert.Equal(t, backward[i], forward[n-1-i])
	}

	assert.False(t, frameinfo.Resolve(-n).Found())
	assert.False(t, frameinfo.Resolve(n+1).Found())
}

func TestResolve_Idempotent(t *testing.T) {
	var got []frameinfo.Info
	for i := 0; i < 2; i++ {
		got = append(got, frameinfo.Resolve(-1))
	}
	assert.Equal(t, got[0].CallerName, got[1].CallerName)
	assert.Equal(t, got[0].ModuleName, got[1].ModuleName)
}

//go:noinline
func resolveForCaller() frameinfo.Info {
	return frameinfo.ResolveSkip(1, 0)
}

//go:noinline
func whoCalled() frameinfo.Info {
	return frameinfo.Caller()
}

func TestResolveSkip(t *testing.T) {
	assert.Equal(t, "TestResolveSkip", resolveForCaller().CallerName)
	assert.Equal(t, "TestResolveSkip", frameinfo.ResolveSkip(0, 0).CallerName)
	assert.Equal(t, "TestResolveSkip", frameinfo.ResolveSkip(-5, 0).CallerName)
	assert.False(t, frameinfo.ResolveSkip(1<<20, 0).Found())

	for _, index := range []int{0, -1, 1} {
		info := frameinfo.ResolveSkip(math.MaxInt, index)
		assert.False(t, info.Found(), index)
		assert.Equal(t, frameinfo.Unknown, info.CallerName, index)
	}
	assert.Empty(t, frameinfo.FramesSkip(math.MaxInt))
}

func TestCaller(t *testing.T) {
	assert.Equal(t, "TestCaller", whoCalled().CallerName)
}

func TestResolve_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]probes, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = runChain()
		}()
	}
	wg.Wait()

	for _, p := range results {
		assert.Equal(t, "leaf", p.byIndex[0].CallerName)
		assert.Equal(t, "mid", p.byIndex[-1].CallerName)
		assert.Equal(t, "root", p.byIndex[1].CallerName)
	}
}
