package main

import (
	"fmt"
	"io"

	"github.com/lattesec/frameinfo/pkg/frameinfo"
)

// walk runs walkRoot on a goroutine of its own so that walkRoot is the
// root-most frame, then prints what each index resolved to.
func (a *app) walk(w io.Writer, indexes []int) {
	out := make(chan []frameinfo.Info, 1)
	go walkRoot(a.locator, indexes, out)
	results := <-out

	for i, info := range results {
		if !info.Found() {
			fmt.Fprintf(w, "no frame found for index: %d\n", indexes[i])
			a.logger.Debugf("index %d is outside the stack", indexes[i])
			continue
		}
		fmt.Fprintf(w, "index: %d, name: %s, line: %d, module: %s\n",
			indexes[i], info.CallerName, info.CallerLine, info.ModuleName)
	}
}

//go:noinline
func walkRoot(l *frameinfo.Locator, indexes []int, out chan<- []frameinfo.Info) {
	out <- walkMid(l, indexes)
}

//go:noinline
func walkMid(l *frameinfo.Locator, indexes []int) []frameinfo.Info {
	return walkLeaf(l, indexes)
}

//go:noinline
func walkLeaf(l *frameinfo.Locator, indexes []int) []frameinfo.Info {
	results := make([]frameinfo.Info, 0, len(indexes))
	for _, i := range indexes {
		results = append(results, l.Resolve(i))
	}
	return results
}
