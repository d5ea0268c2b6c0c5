package frameinfo

import (
	"runtime"

	"github.com/lattesec/frameinfo/internal/helpers/nopanic"
)

const (
	DefaultNameCacheSize = 512

	// MaxSkip caps every skip count. It is far deeper than any real stack.
	MaxSkip = 1 << 20

	initialDepth = 32
)

func clampSkip(n int) int {
	return min(max(n, 0), MaxSkip)
}

// Locator captures stack snapshots and resolves indexes against them.
// A Locator holds no per-call state and is safe for concurrent use.
type Locator struct {
	skip          int // wrapper frames dropped above the caller
	maxDepth      int // 0 = unlimited
	runtimeFrames bool
	cache         *nameCache
}

type Option func(*Locator)

// WithSkip drops n wrapper frames above the caller on every capture.
func WithSkip(n int) Option {
	return func(l *Locator) {
		l.skip = clampSkip(n)
	}
}

// WithMaxDepth limits a snapshot to n frames counted from the caller.
// Frames beyond the limit are cut from the root end, so positive indexes
// count from the deepest frame that was kept.
func WithMaxDepth(n int) Option {
	return func(l *Locator) {
		l.maxDepth = max(n, 0)
	}
}

// WithRuntimeFrames keeps frames of package runtime (runtime.main,
// runtime.goexit) in the snapshot.
func WithRuntimeFrames() Option {
	return func(l *Locator) {
		l.runtimeFrames = true
	}
}

// WithNameCache sets the size of the function name cache. 0 disables it.
func WithNameCache(size int) Option {
	return func(l *Locator) {
		l.cache = newNameCache(size)
	}
}

func New(opts ...Option) *Locator {
	l := &Locator{
		cache: newNameCache(DefaultNameCacheSize),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolve returns the frame at index relative to the function calling Resolve.
func (l *Locator) Resolve(index int) Info {
	return l.resolve(1, index)
}

// ResolveSkip is Resolve after dropping skip additional wrapper frames.
func (l *Locator) ResolveSkip(skip, index int) Info {
	return l.resolve(1+clampSkip(skip), index)
}

// Frames returns every frame of the captured stack, the caller of Frames first.
func (l *Locator) Frames() []Info {
	return l.frames(1)
}

// FramesSkip is Frames after dropping skip additional wrapper frames.
func (l *Locator) FramesSkip(skip int) []Info {
	return l.frames(1 + clampSkip(skip))
}

// Names returns the (module, function) pair of every captured frame.
func (l *Locator) Names() []Name {
	return l.names(1)
}

// ByName: see the package level ByName.
func (l *Locator) ByName(callerName, moduleName string, offset int) Info {
	return l.byName(1, callerName, moduleName, offset)
}

// resolve and the other lowercase helpers take skip as the number of exported
// frames between the user and the helper.
func (l *Locator) resolve(skip, index int) Info {
	frames := l.capture(skip + 1)
	return nopanic.NoPanicRun("frameinfo.Resolve", fallback(), func() Info {
		i, ok := pick(len(frames), index)
		if !ok {
			return fallback()
		}
		return l.describe(frames[i])
	})
}

func (l *Locator) frames(skip int) []Info {
	frames := l.capture(skip + 1)
	out := make([]Info, 0, len(frames))
	for _, f := range frames {
		out = append(out, l.describe(f))
	}
	return out
}

func (l *Locator) names(skip int) []Name {
	frames := l.capture(skip + 1)
	out := make([]Name, 0, len(frames))
	for _, f := range frames {
		module, name := l.cache.split(f.Function)
		out = append(out, Name{Module: module, Function: name})
	}
	return out
}

func (l *Locator) byName(skip int, callerName, moduleName string, offset int) Info {
	frames := l.capture(skip + 1)
	return nopanic.NoPanicRun("frameinfo.ByName", fallback(), func() Info {
		for i, f := range frames {
			module, name := l.cache.split(f.Function)
			if name != callerName || (moduleName != "" && module != moduleName) {
				continue
			}

			j := i + offset
			if j < 0 || j >= len(frames) {
				return fallback()
			}
			return l.describe(frames[j])
		}
		return fallback()
	})
}

// capture returns the stack of the calling goroutine. With skip 0 the first
// frame is the function calling capture.
func (l *Locator) capture(skip int) []runtime.Frame {
	size := initialDepth
	if l.maxDepth > 0 {
		size = l.maxDepth
	}

	// 0 = runtime.Callers, 1 = capture
	pcs := make([]uintptr, size)
	for {
		n := runtime.Callers(skip+2+l.skip, pcs)
		if n < len(pcs) || l.maxDepth > 0 {
			pcs = pcs[:n]
			break
		}
		pcs = make([]uintptr, 2*len(pcs))
	}
	if len(pcs) == 0 {
		return nil
	}

	frames := make([]runtime.Frame, 0, len(pcs))
	it := runtime.CallersFrames(pcs)
	for {
		frame, more := it.Next()
		if l.runtimeFrames || !l.isRuntime(frame.Function) {
			frames = append(frames, frame)
		}
		if !more {
			break
		}
	}

	// inlined calls can expand past the pc count
	if l.maxDepth > 0 && len(frames) > l.maxDepth {
		frames = frames[:l.maxDepth]
	}
	return frames
}

func (l *Locator) isRuntime(function string) bool {
	module, _ := l.cache.split(function)
	return module == "runtime"
}

// pick maps a signed index onto a snapshot of n frames.
func pick(n, index int) (int, bool) {
	var i int
	switch {
	case index == 0:
		i = 0
	case index < 0:
		i = -index // stays negative for math.MinInt
	default:
		i = n - index
	}

	if i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

// describe copies the facts out of frame.
func (l *Locator) describe(frame runtime.Frame) Info {
	info := fallback()
	info.Frame = &frame
	info.Function = frame.Function
	info.File = frame.File

	module, name := l.cache.split(frame.Function)
	if name != "" {
		info.CallerName = name
	}
	if module != "" {
		info.ModuleName = module
	}
	if frame.Line > 0 {
		info.CallerLine = frame.Line
	}
	return info
}
