package mocks

// Logger is a mockable model.Logger.
type Logger struct {
	MockDebug  func(msg string)
	MockDebugf func(format string, v ...interface{})
	MockWarn   func(msg string)
	MockWarnf  func(format string, v ...interface{})
}

// Debug calls MockDebug.
func (lo *Logger) Debug(msg string) {
	lo.MockDebug(msg)
}

// Debugf calls MockDebugf.
func (lo *Logger) Debugf(format string, v ...interface{}) {
	lo.MockDebugf(format, v...)
}

// Warn calls MockWarn.
func (lo *Logger) Warn(msg string) {
	lo.MockWarn(msg)
}

// Warnf calls MockWarnf.
func (lo *Logger) Warnf(format string, v ...interface{}) {
	lo.MockWarnf(format, v...)
}
