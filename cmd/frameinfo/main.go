// Command frameinfo demonstrates stack frame resolution.
package main

import (
	"fmt"
	"os"

	"github.com/lattesec/frameinfo/pkg/log"
)

func main() {
	if err := log.UseStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start logging: %v\n", err)
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
