// Package log is the leveled logging facade used across the ring buffer packages. It writes through glog, so output
// destination and verbosity are controlled by glog's flags (-logtostderr, -v, -vmodule).
package log

import (
	"fmt"

	"github.com/golang/glog"
)

// Level is a glog verbosity level. Messages logged at a level are emitted when -v is at least that level.
type Level = glog.Level

const (
	LevelInfo Level = iota
	LevelDebug
	LevelInternal
)

const Prefix = "ringbuffer"

// callerDepth makes glog report the file and line of this package's caller.
const callerDepth = 1

// Enabled reports whether messages at level are emitted.
func Enabled(level Level) bool {
	return bool(glog.V(level))
}

// At logs message at the given verbosity level.
func At(level Level, message ...interface{}) {
	if glog.V(level) {
		glog.InfoDepth(callerDepth, prefixed(message))
	}
}

// Atf logs a formatted message at the given verbosity level.
func Atf(level Level, format string, args ...interface{}) {
	if glog.V(level) {
		glog.InfoDepth(callerDepth, "["+Prefix+"] "+fmt.Sprintf(format, args...))
	}
}

func Print(message ...interface{}) {
	if glog.V(LevelInternal) {
		glog.InfoDepth(callerDepth, prefixed(message))
	}
}

func Debug(message ...interface{}) {
	if glog.V(LevelDebug) {
		glog.InfoDepth(callerDepth, prefixed(message))
	}
}

func Info(message ...interface{}) {
	glog.InfoDepth(callerDepth, prefixed(message))
}

func Warn(message ...interface{}) {
	glog.WarningDepth(callerDepth, prefixed(message))
}

func Error(message ...interface{}) {
	glog.ErrorDepth(callerDepth, prefixed(message))
}

// Flush writes any buffered log entries.
func Flush() {
	glog.Flush()
}

func prefixed(message []interface{}) string {
	return "[" + Prefix + "] " + fmt.Sprintln(message...)
}
