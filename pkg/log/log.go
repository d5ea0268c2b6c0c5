package log

import (
	"errors"
	"fmt"
	"os"
	"strings"

	lslog "github.com/lattesec/log"
)

// Log Level
type Level int

// Log Levels
//
// Arranged from most to least verbose
const (
	TRACE Level = iota
	DEBUG
	INFO
	WARN
	ERROR
	QUIET
)

var (
	ErrInvalidLevel = errors.New("invalid log level")

	levelNames = [6]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "QUIET"}

	std  = NewLogger("", WARN)
	exit = os.Exit
)

func (l Level) String() string {
	if l < TRACE || l > QUIET {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

func (l Level) valid() bool {
	return l >= TRACE && l <= QUIET
}

// ParseLevel accepts the level names in any case.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return WARN, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// Init names the default logger and sets its level.
func Init(name string, lvl Level) error {
	if err := SetLevel(lvl); err != nil {
		return err
	}
	std.SetName(name)
	return nil
}

func Default() *Logger { return std }

// SetLevel sets the level of the default logger and of the lattesec/log
// default logger behind Forward, so messages that pass one filter are not
// dropped by the other.
func SetLevel(l Level) error {
	if err := std.SetLevel(l); err != nil {
		return err
	}
	return lslog.DefaultLogger().SetLevel(lslog.Level(l))
}

func GetLevel() Level { return std.GetLevel() }

// SetSink replaces the sink of the default logger and returns the old one.
func SetSink(s Sink) Sink { return std.SetSink(s) }

func Trace(v ...any) { std.log(1, TRACE, fmt.Sprint(v...)) }
func Debug(v ...any) { std.log(1, DEBUG, fmt.Sprint(v...)) }
func Info(v ...any)  { std.log(1, INFO, fmt.Sprint(v...)) }
func Warn(v ...any)  { std.log(1, WARN, fmt.Sprint(v...)) }
func Error(v ...any) { std.log(1, ERROR, fmt.Sprint(v...)) }
func Fatal(v ...any) { std.log(1, ERROR, fmt.Sprint(v...)); exit(1) }

func Tracef(format string, v ...any) { std.log(1, TRACE, fmt.Sprintf(format, v...)) }
func Debugf(format string, v ...any) { std.log(1, DEBUG, fmt.Sprintf(format, v...)) }
func Infof(format string, v ...any)  { std.log(1, INFO, fmt.Sprintf(format, v...)) }
func Warnf(format string, v ...any)  { std.log(1, WARN, fmt.Sprintf(format, v...)) }
func Errorf(format string, v ...any) { std.log(1, ERROR, fmt.Sprintf(format, v...)) }
func Fatalf(format string, v ...any) {
	std.log(1, ERROR, fmt.Sprintf(format, v...))
	exit(1)
}

func Debugln(v ...any) { std.log(1, DEBUG, fmt.Sprintln(v...)) }
func Infoln(v ...any)  { std.log(1, INFO, fmt.Sprintln(v...)) }
func Warnln(v ...any)  { std.log(1, WARN, fmt.Sprintln(v...)) }
func Errorln(v ...any) { std.log(1, ERROR, fmt.Sprintln(v...)) }
