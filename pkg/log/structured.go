package log

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kubev2v/paint-planner/pkg/requestid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// StructuredLogger traces named operations with typed fields:
//
//	tracer := logger.WithContext(ctx).Operation("create_worksheet").WithString("name", n).Build()
//	tracer.Step("stored").WithInt("rows", 3).Log()
//	tracer.Success().Log()
type StructuredLogger struct {
	name   string
	level  zapcore.Level
	fields []zap.Field
}

// NewDebugLogger returns a logger whose steps are written at debug level.
// Errors are always written at error level.
func NewDebugLogger(name string) *StructuredLogger {
	return &StructuredLogger{name: name, level: zapcore.DebugLevel}
}

// WithContext attaches the request id carried by ctx, if any.
func (l *StructuredLogger) WithContext(ctx context.Context) *StructuredLogger {
	c := &StructuredLogger{name: l.name, level: l.level, fields: append([]zap.Field{}, l.fields...)}
	if id := requestid.FromContext(ctx); id != "" {
		c.fields = append(c.fields, zap.String("request_id", id))
	}
	return c
}

func (l *StructuredLogger) Operation(name string) *OperationBuilder {
	return &OperationBuilder{
		logger:    l,
		operation: name,
		fields:    append([]zap.Field{}, l.fields...),
	}
}

func (l *StructuredLogger) zap() *zap.Logger {
	return zap.L().Named(l.name)
}

type OperationBuilder struct {
	logger    *StructuredLogger
	operation string
	fields    []zap.Field
}

func (b *OperationBuilder) WithString(key, value string) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value))
	return b
}

func (b *OperationBuilder) WithInt(key string, value int) *OperationBuilder {
	b.fields = append(b.fields, zap.Int(key, value))
	return b
}

func (b *OperationBuilder) WithFloat(key string, value float64) *OperationBuilder {
	b.fields = append(b.fields, zap.Float64(key, value))
	return b
}

func (b *OperationBuilder) WithUUID(key string, value uuid.UUID) *OperationBuilder {
	b.fields = append(b.fields, zap.String(key, value.String()))
	return b
}

func (b *OperationBuilder) Build() *OperationTracer {
	return &OperationTracer{
		logger:    b.logger,
		operation: b.operation,
		fields:    append([]zap.Field{zap.String("operation", b.operation)}, b.fields...),
		start:     time.Now(),
	}
}

type OperationTracer struct {
	logger    *StructuredLogger
	operation string
	fields    []zap.Field
	start     time.Time
}

func (t *OperationTracer) Step(name string) *Event {
	return t.event(t.logger.level, t.operation+": "+name, zap.String("step", name))
}

func (t *OperationTracer) Success() *Event {
	return t.event(t.logger.level, t.operation+": success", zap.Duration("elapsed", time.Since(t.start)))
}

func (t *OperationTracer) Error(err error) *Event {
	return t.event(zapcore.ErrorLevel, t.operation+": failed", zap.Error(err), zap.Duration("elapsed", time.Since(t.start)))
}

func (t *OperationTracer) event(level zapcore.Level, msg string, extra ...zap.Field) *Event {
	fields := make([]zap.Field, 0, len(t.fields)+len(extra))
	fields = append(fields, t.fields...)
	fields = append(fields, extra...)
	return &Event{logger: t.logger, level: level, message: msg, fields: fields}
}

// Event is a single log line under construction; nothing is written until Log.
type Event struct {
	logger  *StructuredLogger
	level   zapcore.Level
	message string
	fields  []zap.Field
}

func (e *Event) WithString(key, value string) *Event {
	e.fields = append(e.fields, zap.String(key, value))
	return e
}

func (e *Event) WithInt(key string, value int) *Event {
	e.fields = append(e.fields, zap.Int(key, value))
	return e
}

func (e *Event) WithFloat(key string, value float64) *Event {
	e.fields = append(e.fields, zap.Float64(key, value))
	return e
}

func (e *Event) WithUUID(key string, value uuid.UUID) *Event {
	e.fields = append(e.fields, zap.String(key, value.String()))
	return e
}

func (e *Event) Log() {
	if ce := e.logger.zap().Check(e.level, e.message); ce != nil {
		ce.Write(e.fields...)
	}
}
