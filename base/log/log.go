package log

import (
	"go.uber.org/zap"
)

// Fields is a set of key/value pairs attached to a log line
type Fields map[string]interface{}

// Logger carries the process logger plus per-call fields
type Logger struct {
	base   *zap.SugaredLogger
	fields []interface{}
}

var root *zap.SugaredLogger

func init() {
	build(false)
}

func build(debug bool) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	root = logger.Named("goaggregator").Sugar()
}

// SetDebug rebuilds the process logger with the development config. Call
// before any Logger is captured, typically right after config load.
func SetDebug(debug bool) {
	build(debug)
}

// Log returns an empty field logger
func Log() Logger {
	return Logger{
		base:   root,
		fields: []interface{}{},
	}
}

// WithField adds a key/value pair to its fields
func (l Logger) WithField(key string, value interface{}) Logger {
	l.fields = append(l.fields, key, value)
	return l
}

// WithFields adds multiple key/value pairs to its fields
func (l Logger) WithFields(kvs Fields) Logger {
	for k, v := range kvs {
		l = l.WithField(k, v)
	}
	return l
}

func (l Logger) Debug(args ...interface{}) {
	l.base.With(l.fields...).Debug(args...)
}

func (l Logger) Info(args ...interface{}) {
	l.base.With(l.fields...).Info(args...)
}

func (l Logger) Warn(args ...interface{}) {
	l.base.With(l.fields...).Warn(args...)
}

func (l Logger) Error(args ...interface{}) {
	l.base.With(l.fields...).Error(args...)
}

func (l Logger) Panic(args ...interface{}) {
	l.base.With(l.fields...).Panic(args...)
}
