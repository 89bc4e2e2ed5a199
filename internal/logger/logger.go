package logger

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	// Lazy-load and ensure a single instance
	loggerOnce      sync.Once
	loggerSingleton *Logger
)

type VerboseLevel int

const (
	VerboseOff VerboseLevel = iota
	VerboseInfo
	VerboseDebug
	VerboseTrace
)

func CurrentLogger() *Logger {
	loggerOnce.Do(func() {
		loggerSingleton = NewLogger(os.Stderr)
	})
	return loggerSingleton
}

// Logger writes messages only when the verbose level allows it.
// Warnings are always printed.
type Logger struct {
	mu      sync.RWMutex
	verbose VerboseLevel
	out     *log.Logger
}

func NewLogger(w io.Writer) *Logger {
	return &Logger{
		verbose: VerboseOff,
		out:     log.New(w, "", log.LstdFlags),
	}
}

// SetVerboseLevel overrides the default verbose level
func (l *Logger) SetVerboseLevel(level VerboseLevel) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = level
	return l
}

// VerboseLevel returns the current verbose level.
func (l *Logger) VerboseLevel() VerboseLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.verbose
}

func (l *Logger) enabled(level VerboseLevel) bool {
	return l.VerboseLevel() >= level
}

func (l *Logger) Fatal(v ...any) {
	l.out.Fatalln(v...)
}
func (l *Logger) Fatalf(format string, v ...any) {
	l.out.Fatalf(format, v...)
}

func (l *Logger) Warn(v ...any) {
	l.out.Println(v...)
}
func (l *Logger) Warnf(format string, v ...any) {
	l.out.Printf(format, v...)
}

func (l *Logger) Info(v ...any) {
	if l.enabled(VerboseInfo) {
		l.out.Println(v...)
	}
}
func (l *Logger) Infof(format string, v ...any) {
	if l.enabled(VerboseInfo) {
		l.out.Printf(format, v...)
	}
}

func (l *Logger) Debug(v ...any) {
	if l.enabled(VerboseDebug) {
		l.out.Println(v...)
	}
}
func (l *Logger) Debugf(format string, v ...any) {
	if l.enabled(VerboseDebug) {
		l.out.Printf(format, v...)
	}
}

func (l *Logger) Trace(v ...any) {
	if l.enabled(VerboseTrace) {
		l.out.Println(v...)
	}
}
func (l *Logger) Tracef(format string, v ...any) {
	if l.enabled(VerboseTrace) {
		l.out.Printf(format, v...)
	}
}
