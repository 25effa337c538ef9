package report

import "go.uber.org/zap"

// ZapSink adapts a *zap.SugaredLogger to vmplace.LogSink, so the engine's
// optional per-incumbent trace logging lands in the same structured log
// stream as everything else in the CLI.
type ZapSink struct {
	log *zap.SugaredLogger
}

// NewZapSink wraps log, which must be non-nil: ZapSink does not check it,
// and a ZapSink around a nil logger is still a non-nil LogSink that
// NewAllocator accepts and the engine calls.
func NewZapSink(log *zap.SugaredLogger) *ZapSink {
	return &ZapSink{log: log}
}

// Printf implements vmplace.LogSink.
func (z *ZapSink) Printf(format string, args ...any) {
	z.log.Debugf(format, args...)
}
