// Package frameinfo resolves frames of the calling goroutine's stack by a signed
// index and reports the function name, line and package of the selected frame.
//
// Index convention:
//
//	 0  the function calling Resolve
//	-1  its caller
//	-n  n levels toward the root
//	+1  the root-most frame
//	+n  the n-th frame from the root, moving back toward the caller
//
// Usage:
//
//	func leaf() {
//		self := frameinfo.Resolve(0)    // leaf
//		caller := frameinfo.Resolve(-1) // whoever called leaf
//		root := frameinfo.Resolve(1)    // goroutine entry
//	}
//
// Resolution never fails. An index that falls outside the captured stack yields
// an Info whose fields are "Unknown", 0 and "Unknown".
package frameinfo

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// Unknown is reported for names that could not be resolved.
const Unknown = "Unknown"

// Info describes a single resolved frame.
type Info struct {
	// Frame is a private copy of the runtime frame, nil when nothing resolved.
	Frame *runtime.Frame

	CallerName string // function name without the package path
	CallerLine int
	ModuleName string // package import path

	Function string // fully qualified function name
	File     string
}

func fallback() Info {
	return Info{
		CallerName: Unknown,
		CallerLine: 0,
		ModuleName: Unknown,
	}
}

// Unresolved returns the record reported when no frame resolves.
func Unresolved() Info {
	return fallback()
}

// Found reports whether the record names a real frame.
func (i Info) Found() bool {
	return i.Frame != nil
}

func (i Info) String() string {
	return fmt.Sprintf("%s.%s:%d", i.ModuleName, i.CallerName, i.CallerLine)
}

// Name is the (module, function) pair of a frame.
type Name struct {
	Module   string
	Function string
}

var std atomic.Pointer[Locator]

func init() {
	std.Store(New())
}

// Default returns the locator used by the package level functions.
func Default() *Locator {
	return std.Load()
}

// SetDefault replaces the locator used by the package level functions.
// A nil locator is ignored.
func SetDefault(l *Locator) {
	if l != nil {
		std.Store(l)
	}
}

// Resolve returns the frame at index relative to the function calling Resolve.
func Resolve(index int) Info {
	return Default().resolve(1, index)
}

// ResolveSkip is Resolve after dropping skip wrapper frames above the caller.
// Helpers that resolve on behalf of their own caller pass the number of frames
// they add, so index 0 names the helper's caller.
func ResolveSkip(skip, index int) Info {
	return Default().resolve(1+clampSkip(skip), index)
}

// Caller returns the caller of the function calling Caller.
func Caller() Info {
	return Default().resolve(1, -1)
}

// Frames returns every frame of the captured stack, the caller of Frames first.
func Frames() []Info {
	return Default().frames(1)
}

// FramesSkip is Frames after dropping skip wrapper frames above the caller.
func FramesSkip(skip int) []Info {
	return Default().frames(1 + clampSkip(skip))
}

// Names returns the (module, function) pair of every captured frame.
func Names() []Name {
	return Default().names(1)
}

// ByName finds the frame nearest to the caller whose function is callerName and,
// if moduleName is not empty, whose package is moduleName. The result is then
// moved offset frames toward the root, or toward the caller when offset is
// negative.
func ByName(callerName, moduleName string, offset int) Info {
	return Default().byName(1, callerName, moduleName, offset)
}
