// Package simplelog defines a minimal logging contract: a sink that accepts
// severity-tagged text messages, plus a null sink usable as a safe default
// when the caller does not configure a real one. The package produces no
// output of its own; concrete sinks live outside it.
package simplelog

import "fmt"

// Level is the severity of a log message.
type Level int

// Severity levels, ordered from least to most verbose.
const (
	LevelInfo Level = iota
	LevelDebug
	LevelTrace
)

var levelNames = []string{
	"Info",
	"Debug",
	"Trace",
}

func (l Level) String() string {
	if l >= 0 && int(l) < len(levelNames) {
		return levelNames[l]
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Logger represents a destination for log messages. Log must complete
// synchronously and never surface a failure to the caller; a sink that hits a
// transport fault recovers locally. The level returned by Level is state with
// plain getter/setter semantics only: whether Log consults it is each
// implementation's documented choice.
type Logger interface {
	// Level returns the current verbosity threshold, the value last passed
	// to SetLevel.
	Level() Level

	// SetLevel updates the verbosity threshold.
	SetLevel(level Level)

	// Log emits message at the given severity. Implementations must not
	// retain message beyond the call without copying it.
	Log(level Level, message string)

	// IsActive reports whether messages go anywhere at all. Functional
	// sinks return true; structural no-ops return false so callers can skip
	// assembling an expensive message. The predicate is advisory: calling
	// Log on an inactive sink is harmless.
	IsActive() bool
}

// Info logs message at Info severity.
func Info(l Logger, message string) {
	l.Log(LevelInfo, message)
}

// Debug logs message at Debug severity.
func Debug(l Logger, message string) {
	l.Log(LevelDebug, message)
}

// Trace logs message at Trace severity.
func Trace(l Logger, message string) {
	l.Log(LevelTrace, message)
}
