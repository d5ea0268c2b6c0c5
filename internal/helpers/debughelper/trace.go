package debughelper

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lattesec/frameinfo/pkg/frameinfo"
)

// TraceCaller describes the function skip levels above the caller of
// TraceCaller (0 = that caller).
func TraceCaller(skip int) string {
	info := frameinfo.ResolveSkip(min(max(skip, 0), frameinfo.MaxSkip)+1, 0)
	if !info.Found() {
		return "???"
	}
	return fmt.Sprintf("trace: %s:%d (%s)", filepath.Base(info.File), info.CallerLine, info.Function)
}

// TraceStack renders the stack above the caller of TraceStack, dropping skip
// more frames.
func TraceStack(skip int) string {
	frames := frameinfo.FramesSkip(min(max(skip, 0), frameinfo.MaxSkip) + 1)

	var b strings.Builder
	b.WriteString("stack:\n")
	for _, f := range frames {
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.CallerLine)
	}
	return b.String()
}
