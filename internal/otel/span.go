// Package otel holds the span helpers and attribute keys shared by the filter
// service and its HTTP handlers.
package otel

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Attribute keys used on filter spans.
const (
	AttrCatalogVersion = attribute.Key("catalog.version")
	AttrModuleCount    = attribute.Key("catalog.modules")
	AttrFilterGroup    = attribute.Key("filter.group")
	AttrFilterCount    = attribute.Key("filter.count")
	AttrLanguage       = attribute.Key("filter.language")
	AttrResultCount    = attribute.Key("result.count")
	AttrResultLimit    = attribute.Key("result.limit")
)

// StartSpan starts a span on tracer. A nil tracer returns the span already in
// ctx, which is a no-op span when tracing is off.
func StartSpan(
	ctx context.Context,
	tracer trace.Tracer,
	name string,
	opts ...trace.SpanStartOption,
) (context.Context, trace.Span) {
	if tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return tracer.Start(ctx, name, opts...)
}

// RecordError records err as a span event and marks the span failed. Errors
// matching one of expected are recorded but leave the status untouched, so
// rejected client input does not show up as a server failure.
//
// The status description stays generic; details live in the event.
func RecordError(span trace.Span, err error, expected ...error) {
	if err == nil || span == nil {
		return
	}
	span.RecordError(err)
	for _, e := range expected {
		if errors.Is(err, e) {
			return
		}
	}
	span.SetStatus(codes.Error, "operation failed")
}
