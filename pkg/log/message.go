package log

import (
	"fmt"
	"time"

	"github.com/lattesec/frameinfo/internal/helpers/debughelper"
	"github.com/lattesec/frameinfo/pkg/frameinfo"
)

type LogMessage struct {
	Timestamp time.Time         // timestamp
	Level     Level             // log level
	Msg       string            // log message
	Meta      map[string]string // log metadata

	trace  string         // stack trace (optional)
	caller frameinfo.Info // caller (optional)
}

// NewLogMessage
//
// Creates a new LogMessage
func NewLogMessage(level Level, msg string) *LogMessage {
	return &LogMessage{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Msg:       msg,
		Meta:      make(map[string]string),
	}
}

func (lm *LogMessage) WithMeta(key string, value any) *LogMessage {
	lm.Meta[key] = fmt.Sprintf("%v", value)
	return lm
}

func (lm *LogMessage) WithMetaf(key, format string, v ...any) *LogMessage {
	lm.Meta[key] = fmt.Sprintf(format, v...)
	return lm
}

// WithTraceStack attaches the stack of the function calling it.
func (lm *LogMessage) WithTraceStack() *LogMessage {
	lm.trace = debughelper.TraceStack(1)
	return lm
}

// WithCaller records the frame skip levels above the function calling it
// (0 = that function) and adds it as "caller", "line" and "module" meta.
func (lm *LogMessage) WithCaller(skip int) *LogMessage {
	lm.caller = frameinfo.ResolveSkip(min(max(skip, 0), frameinfo.MaxSkip)+1, 0)
	lm.Meta["caller"] = lm.caller.CallerName
	lm.Meta["line"] = fmt.Sprintf("%d", lm.caller.CallerLine)
	lm.Meta["module"] = lm.caller.ModuleName
	return lm
}

// Caller is the frame recorded by WithCaller. It is the fallback record if
// WithCaller was never called.
func (lm *LogMessage) Caller() frameinfo.Info {
	if lm.caller.CallerName == "" {
		return frameinfo.Unresolved()
	}
	return lm.caller
}

func (lm *LogMessage) Trace() string {
	return lm.trace
}

func (lm *LogMessage) String() string {
	return fmt.Sprintf("%s [%s] %s %s",
		lm.Timestamp.Format(time.RFC3339Nano),
		lm.Level,
		lm.Msg,
		lm.Meta,
	)
}
