package logger

import (
	"context"
	"log/slog"
	"time"
)

// Operation tracks one user-facing action (a login, a check-in, a backup)
// from start to completion so its log lines share attributes and a duration.
type Operation struct {
	logger  *Logger
	ctx     context.Context
	name    string
	started time.Time
	attrs   []any
}

// StartOp logs the start of an operation and returns a tracker for its
// completion.
func (l *Logger) StartOp(ctx context.Context, name string, args ...any) *Operation {
	op := &Operation{
		logger:  l,
		ctx:     ctx,
		name:    name,
		started: time.Now(),
		attrs:   args,
	}
	l.WithContext(ctx).Info("operation started",
		append([]any{slog.String("operation", name)}, args...)...)
	return op
}

// With attaches attributes to every subsequent log line of the operation.
func (op *Operation) With(args ...any) *Operation {
	op.attrs = append(op.attrs, args...)
	return op
}

// Complete logs the operation as succeeded with its elapsed time.
func (op *Operation) Complete(msg string, args ...any) {
	if msg == "" {
		msg = "operation completed"
	}
	op.logger.WithContext(op.ctx).Info(msg, op.finalAttrs(nil, args)...)
}

// Fail logs the operation as failed with the error and elapsed time.
func (op *Operation) Fail(err error, msg string, args ...any) {
	if msg == "" {
		msg = "operation failed"
	}
	op.logger.WithContext(op.ctx).Error(msg, op.finalAttrs(err, args)...)
}

// Progress emits a debug line while the operation is still running.
func (op *Operation) Progress(msg string, args ...any) {
	attrs := append([]any{
		slog.String("operation", op.name),
		slog.Duration("elapsed", time.Since(op.started)),
	}, op.attrs...)
	op.logger.WithContext(op.ctx).Debug(msg, append(attrs, args...)...)
}

func (op *Operation) finalAttrs(err error, extra []any) []any {
	attrs := []any{
		slog.String("operation", op.name),
		slog.Duration("duration", time.Since(op.started)),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	attrs = append(attrs, op.attrs...)
	return append(attrs, extra...)
}
