package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"posadmin/m/internal/logger"
)

var tracer = otel.Tracer("posadmin/service")

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// endSpan closes span, recording err on it and in the log.
func endSpan(ctx context.Context, span trace.Span, op string, err error) {
	defer span.End()
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	if IsConflict(err) {
		logger.WithContext(ctx).Warn().Str("op", op).Msg(err.Error())
		return
	}
	logger.WithContext(ctx).Error().Err(err).Str("op", op).Msg("operation failed")
}
