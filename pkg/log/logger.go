package log

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/lattesec/frameinfo/internal/helpers/nopanic"
	"github.com/lattesec/frameinfo/pkg/frameinfo"
	lslog "github.com/lattesec/log"
)

// Sink receives every message that passes the level filter.
type Sink func(msg *LogMessage)

type Logger struct {
	mu sync.RWMutex

	level Level  // defaults to WARN
	name  string // the name of the logger, sent as "logger" meta when set
	skip  int    // wrapper frames between the code being logged and this logger
	sink  Sink   // defaults to Forward
}

func NewLogger(name string, level Level) *Logger {
	if !level.valid() {
		level = WARN
	}
	return &Logger{
		level: level,
		name:  name,
		sink:  Forward,
	}
}

func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func (l *Logger) SetLevel(level Level) error {
	if !level.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
	return nil
}

func (l *Logger) GetName() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.name
}

func (l *Logger) SetName(name string) {
	l.mu.Lock()
	l.name = name
	l.mu.Unlock()
}

// SetCallerSkip tells the logger how many wrapper frames sit between the
// logged code and the logger's methods, so the caller meta names the
// wrapper's caller.
func (l *Logger) SetCallerSkip(n int) {
	l.mu.Lock()
	l.skip = min(max(n, 0), frameinfo.MaxSkip)
	l.mu.Unlock()
}

// SetSink replaces the sink and returns the previous one. A nil sink restores
// Forward.
func (l *Logger) SetSink(s Sink) Sink {
	if s == nil {
		s = Forward
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	prev := l.sink
	l.sink = s
	return prev
}

func (l *Logger) Enabled(level Level) bool {
	return level != QUIET && level >= l.GetLevel()
}

// Log hands a copy of msg to the sink. msg itself is left untouched, so it
// can be logged again through another logger. A panicking sink never reaches
// the caller.
func (l *Logger) Log(msg *LogMessage) {
	if msg == nil || !l.Enabled(msg.Level) {
		return
	}

	l.mu.RLock()
	name, sink := l.name, l.sink
	l.mu.RUnlock()

	out := *msg
	out.Meta = maps.Clone(msg.Meta)
	if out.Meta == nil {
		out.Meta = make(map[string]string)
	}
	if name != "" {
		out.Meta["logger"] = name
	}
	nopanic.NoPanicRunVoid("log.sink", func() { sink(&out) })
}

func (l *Logger) log(skip int, level Level, msg string) {
	if !l.Enabled(level) {
		return
	}

	l.mu.RLock()
	extra := l.skip
	l.mu.RUnlock()

	l.Log(NewLogMessage(level, strings.TrimSuffix(msg, "\n")).WithCaller(skip + 1 + extra))
}

func (l *Logger) Tracef(format string, v ...any) { l.log(1, TRACE, fmt.Sprintf(format, v...)) }
func (l *Logger) Debugf(format string, v ...any) { l.log(1, DEBUG, fmt.Sprintf(format, v...)) }
func (l *Logger) Infof(format string, v ...any)  { l.log(1, INFO, fmt.Sprintf(format, v...)) }
func (l *Logger) Warnf(format string, v ...any)  { l.log(1, WARN, fmt.Sprintf(format, v...)) }
func (l *Logger) Errorf(format string, v ...any) { l.log(1, ERROR, fmt.Sprintf(format, v...)) }

type event[E any] interface {
	WithMeta(key string, value any) E
}

func withMeta[E event[E]](ev E, msg *LogMessage) E {
	for _, k := range slices.Sorted(maps.Keys(msg.Meta)) {
		ev = ev.WithMeta(k, msg.Meta[k])
	}
	return ev
}

// Forward is the default sink. It writes msg through github.com/lattesec/log
// at the same level; the two packages number their levels alike.
func Forward(msg *LogMessage) {
	if !msg.Level.valid() || msg.Level == QUIET {
		return
	}

	body := msg.Msg
	if msg.trace != "" {
		body += "\n" + msg.trace
	}
	withMeta(lslog.Log(lslog.Level(msg.Level)), msg).Msg(body).Send()
}
