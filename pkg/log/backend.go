package log

import (
	"errors"
	"os"
	"sync"

	lslog "github.com/lattesec/log"
)

var useStdio = sync.OnceValue(func() error {
	out := lslog.NewWriterHandler(os.Stdout)
	errOut := lslog.NewWriterHandler(os.Stderr)
	if err := errors.Join(out.Start(), errOut.Start()); err != nil {
		return err
	}
	lslog.DefaultStdoutHandler.Store(out)
	lslog.DefaultStderrHandler.Store(errOut)
	return nil
})

// UseStdio installs started stdout and stderr writers as the lattesec/log
// default handlers. The ones it installs on init are never started and drop
// every message. Later calls return the result of the first.
func UseStdio() error {
	return useStdio()
}
