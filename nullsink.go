package simplelog

// nullLogger discards every log message and reports itself inactive. Its
// level is fixed at Info: SetLevel is ignored because the sink has no
// meaningful state to report back. Safe for concurrent use from any number
// of goroutines, since every operation is a no-op or a read of immutable
// state.
type nullLogger struct{}

var _ Logger = nullLogger{}

var gNullLogger Logger = nullLogger{}

// Null returns the process-wide null sink. The same instance is returned on
// every call and stays valid for the lifetime of the process.
func Null() Logger {
	return gNullLogger
}

// OrNull substitutes the null sink for an absent logger: it returns l when
// l is non-nil and Null() otherwise. It lets code that accepts an optional
// Logger normalize it once and never nil-check again.
func OrNull(l Logger) Logger {
	if l == nil {
		return gNullLogger
	}
	return l
}

func (self nullLogger) Level() Level {
	return LevelInfo
}

func (self nullLogger) SetLevel(level Level) {
}

func (self nullLogger) Log(level Level, message string) {
}

func (self nullLogger) IsActive() bool {
	return false
}
