package model

import "testing"

func TestDiscardLoggerWorksAsIntended(t *testing.T) {
	logger := DiscardLogger
	logger.Debug("foobar")
	logger.Debugf("%s", "foobar")
	logger.Warn("foobar")
	logger.Warnf("%s", "foobar")
}

func TestValidLoggerOrDefault(t *testing.T) {
	t.Run("with nil argument", func(t *testing.T) {
		if logger := ValidLoggerOrDefault(nil); logger != DiscardLogger {
			t.Fatal("expected the discard logger")
		}
	})

	t.Run("with non-nil argument", func(t *testing.T) {
		in := logDiscarder{}
		if logger := ValidLoggerOrDefault(in); logger != in {
			t.Fatal("expected the logger we passed in")
		}
	})
}
