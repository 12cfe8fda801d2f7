package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cast"
)

const (
	UNKNOWN int32 = iota
	TRACE
	DEBUG
	INFO
	WARN
	ERROR
	FATAL
	OFF
)

type levelAttribute struct {
	name   string
	flag   string
	colors []color.Attribute
}

var levelAttributes = map[int32]levelAttribute{
	TRACE: {"TRACE", "T", []color.Attribute{color.FgCyan}},
	DEBUG: {"DEBUG", "D", []color.Attribute{color.FgGreen}},
	INFO:  {"INFO", "I", nil},
	WARN:  {"WARN", "W", []color.Attribute{color.FgYellow}},
	ERROR: {"ERROR", "E", []color.Attribute{color.FgRed}},
	FATAL: {"FATAL", "F", []color.Attribute{color.FgMagenta}},
}

// ParseLevel accepts a level name ("debug", "WARN", ...) or a numeric
// level and returns the level id, UNKNOWN when unrecognized.
func ParseLevel(level interface{}) int32 {
	if n, err := cast.ToInt32E(level); err == nil && n >= TRACE && n <= OFF {
		return n
	}
	name := strings.ToUpper(strings.TrimSpace(cast.ToString(level)))
	if name == "OFF" {
		return OFF
	}
	for id, attr := range levelAttributes {
		if attr.name == name {
			return id
		}
	}
	return UNKNOWN
}

// Logger writes leveled, optionally colorized lines to one output.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	level int32
	color bool
}

func New() *Logger {
	return &Logger{out: os.Stdout, level: INFO, color: true}
}

func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// SetLevel accepts a level name or id; unrecognized input is ignored.
func (l *Logger) SetLevel(level interface{}) {
	if n := ParseLevel(level); n != UNKNOWN {
		l.mu.Lock()
		l.level = n
		l.mu.Unlock()
	}
}

func (l *Logger) SetColor(isColor bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.color = isColor
}

func (l *Logger) PrintOut(level int32, format string, a ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level || l.out == nil {
		return
	}
	attr, ok := levelAttributes[level]
	if !ok {
		return
	}
	msg := fmt.Sprint(a...)
	if format != "" {
		msg = fmt.Sprintf(format, a...)
	}
	line := fmt.Sprint(time.Now().Format("2006-01-02 15:04:05.000"), " [", attr.flag, "] ", msg)
	if l.color && len(attr.colors) > 0 {
		line = color.New(attr.colors...).Sprint(line)
	}
	fmt.Fprintln(l.out, line)
}

func (l *Logger) Trace(a ...interface{}) { l.PrintOut(TRACE, "", a...) }
func (l *Logger) Debug(a ...interface{}) { l.PrintOut(DEBUG, "", a...) }
func (l *Logger) Info(a ...interface{})  { l.PrintOut(INFO, "", a...) }
func (l *Logger) Warn(a ...interface{})  { l.PrintOut(WARN, "", a...) }
func (l *Logger) Error(a ...interface{}) { l.PrintOut(ERROR, "", a...) }
func (l *Logger) Fatal(a ...interface{}) { l.PrintOut(FATAL, "", a...) }

func (l *Logger) Tracef(format string, a ...interface{}) { l.PrintOut(TRACE, format, a...) }
func (l *Logger) Debugf(format string, a ...interface{}) { l.PrintOut(DEBUG, format, a...) }
func (l *Logger) Infof(format string, a ...interface{})  { l.PrintOut(INFO, format, a...) }
func (l *Logger) Warnf(format string, a ...interface{})  { l.PrintOut(WARN, format, a...) }
func (l *Logger) Errorf(format string, a ...interface{}) { l.PrintOut(ERROR, format, a...) }
func (l *Logger) Fatalf(format string, a ...interface{}) { l.PrintOut(FATAL, format, a...) }

var defaultLogger = New()

func DefaultLogger() *Logger {
	return defaultLogger
}

func SetLevel(level interface{}) {
	defaultLogger.SetLevel(level)
}

func SetColor(isColor bool) {
	defaultLogger.SetColor(isColor)
}

func Trace(a ...interface{}) { defaultLogger.PrintOut(TRACE, "", a...) }
func Debug(a ...interface{}) { defaultLogger.PrintOut(DEBUG, "", a...) }
func Info(a ...interface{})  { defaultLogger.PrintOut(INFO, "", a...) }
func Warn(a ...interface{})  { defaultLogger.PrintOut(WARN, "", a...) }
func Error(a ...interface{}) { defaultLogger.PrintOut(ERROR, "", a...) }
func Fatal(a ...interface{}) { defaultLogger.PrintOut(FATAL, "", a...) }

func Tracef(format string, a ...interface{}) { defaultLogger.PrintOut(TRACE, format, a...) }
func Debugf(format string, a ...interface{}) { defaultLogger.PrintOut(DEBUG, format, a...) }
func Infof(format string, a ...interface{})  { defaultLogger.PrintOut(INFO, format, a...) }
func Warnf(format string, a ...interface{})  { defaultLogger.PrintOut(WARN, format, a...) }
func Errorf(format string, a ...interface{}) { defaultLogger.PrintOut(ERROR, format, a...) }
func Fatalf(format string, a ...interface{}) { defaultLogger.PrintOut(FATAL, format, a...) }
