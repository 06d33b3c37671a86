/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	alwaysLevel     struct{}
	loggerComposite struct {
		debug  *zap.Logger
		debugS *zap.SugaredLogger
		info   *zap.Logger
		infoS  *zap.SugaredLogger
		warn   *zap.Logger
		warnS  *zap.SugaredLogger
		error  *zap.Logger
		errorS *zap.SugaredLogger
	}
)

var (
	zapLogger *loggerComposite
	// DebugEnabled gates the Debug* helpers.
	DebugEnabled = false
)

// init builds console loggers writing to stderr. Stdout is reserved for
// report tables.
func init() {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		CallerKey:        "caller",
		MessageKey:       "msg",
		StacktraceKey:    "stacktrace",
		ConsoleSeparator: " ",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.LowercaseLevelEncoder,
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000"),
		EncodeDuration:   zapcore.SecondsDurationEncoder,
	}

	newZapLogger := func() *zap.Logger {
		return zap.New(
			zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stderr), alwaysLevel{}),
		)
	}

	zapLogger = &loggerComposite{
		debug: newZapLogger(),
		info:  newZapLogger(),
		warn:  newZapLogger(),
		error: newZapLogger(),
	}
	zapLogger.debugS = zapLogger.debug.Sugar()
	zapLogger.infoS = zapLogger.info.Sugar()
	zapLogger.warnS = zapLogger.warn.Sugar()
	zapLogger.errorS = zapLogger.error.Sugar()
}

func (a alwaysLevel) Enabled(level zapcore.Level) bool {
	return true
}

func Debugz(msg string, fields ...zap.Field) {
	if DebugEnabled {
		zapLogger.debug.Info(msg, fields...)
	}
}
func Infoz(msg string, fields ...zap.Field) {
	zapLogger.info.Info(msg, fields...)
}
func Warnz(msg string, fields ...zap.Field) {
	zapLogger.warn.Info(msg, fields...)
}
func Errorz(msg string, fields ...zap.Field) {
	zapLogger.error.Info(msg, fields...)
}

func Debugf(msg string, args ...interface{}) {
	if DebugEnabled {
		zapLogger.debugS.Infof(msg, args...)
	}
}
func Infof(msg string, args ...interface{}) {
	zapLogger.infoS.Infof(msg, args...)
}
func Warnf(msg string, args ...interface{}) {
	zapLogger.warnS.Infof(msg, args...)
}
func Errorf(msg string, args ...interface{}) {
	zapLogger.errorS.Infof(msg, args...)
}

func IsDebugEnabled() bool {
	return DebugEnabled
}
