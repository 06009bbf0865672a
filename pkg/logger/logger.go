package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Interface -.
type Interface interface {
	Debug(message interface{}, args ...interface{})
	Info(message string, args ...interface{})
	Warn(message string, args ...interface{})
	Error(message interface{}, args ...interface{})
	Fatal(message interface{}, args ...interface{})
}

// Logger implements Interface on top of a zap sugared logger.
type Logger struct {
	logger *zap.SugaredLogger
}

var _ Interface = (*Logger)(nil)

func New(level string) *Logger {
	var l zapcore.Level

	switch strings.ToLower(level) {
	case "error":
		l = zap.ErrorLevel
	case "warn":
		l = zap.WarnLevel
	case "info":
		l = zap.InfoLevel
	case "debug":
		l = zap.DebugLevel
	default:
		l = zap.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(l)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return &Logger{
		logger: zap.Must(cfg.Build(zap.AddCallerSkip(2))).Sugar(),
	}
}

func (l *Logger) Debug(message interface{}, args ...interface{}) {
	l.msg(l.logger.Debugf, message, args...)
}

func (l *Logger) Info(message string, args ...interface{}) {
	l.msg(l.logger.Infof, message, args...)
}

func (l *Logger) Warn(message string, args ...interface{}) {
	l.msg(l.logger.Warnf, message, args...)
}

func (l *Logger) Error(message interface{}, args ...interface{}) {
	l.msg(l.logger.Errorf, message, args...)
}

func (l *Logger) Fatal(message interface{}, args ...interface{}) {
	l.msg(l.logger.Fatalf, message, args...)
}

func (l *Logger) msg(log func(string, ...interface{}), message interface{}, args ...interface{}) {
	switch m := message.(type) {
	case error:
		// call sites pass the error first and the context string after it
		if len(args) == 0 {
			log("%s", m.Error())
		} else {
			log("%s: %s", fmt.Sprint(args...), m.Error())
		}
	case string:
		if len(args) == 0 {
			log("%s", m)
		} else {
			log(m, args...)
		}
	default:
		log("message %v has unknown type %T", message, message)
	}
}
