package handler

import (
	"go.uber.org/zap"
)

// ErrorHandler receives errors raised while handling records. Logging
// never fails the caller, so these errors are only observable here and
// in Stats. An ErrorHandler must not log through the dispatcher that
// reports to it.
type ErrorHandler func(err error)

// SilentErrorHandler discards all errors
var SilentErrorHandler ErrorHandler = func(error) {}

// ZapErrorHandler reports handler errors to a zap logger at error
// level. Errors wrapped with github.com/pkg/errors carry their stack in
// the "errorVerbose" field.
func ZapErrorHandler(l *zap.Logger) ErrorHandler {
	if l == nil {
		return SilentErrorHandler
	}
	l = l.WithOptions(zap.AddCallerSkip(1))
	return func(err error) {
		if err == nil {
			return
		}
		l.Error("log handler failed", zap.Error(err))
	}
}
