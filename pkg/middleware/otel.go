package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/veldt-dev/veldt/pkg/component"
)

// Default tracer name for veldt applications.
const defaultTracerName = "veldt"

// OTelConfig configures the OpenTelemetry render observer.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "veldt").
	TracerName string

	// Filter decides which components to trace. Nil traces everything.
	Filter func(component string) bool

	// AttributeExtractor adds custom attributes per observed render.
	AttributeExtractor func(component string) []attribute.KeyValue

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry render observer.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) { c.TracerName = name }
}

// WithComponentFilter sets a component filter.
func WithComponentFilter(filter func(component string) bool) OTelOption {
	return func(c *OTelConfig) { c.Filter = filter }
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(fn func(component string) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) { c.AttributeExtractor = fn }
}

type otelObserver struct {
	cfg OTelConfig
}

// OTel returns a render observer that emits one span per render pass,
// ended with the observed duration and the render error status.
func OTel(opts ...OTelOption) component.Observer {
	cfg := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.tracer = otel.Tracer(cfg.TracerName)
	return &otelObserver{cfg: cfg}
}

// ObserveRender implements component.Observer. Renders are observed
// after the fact, so the span is reconstructed from the measured
// duration rather than wrapping the call.
func (o *otelObserver) ObserveRender(name string, d time.Duration, err error) {
	if o.cfg.Filter != nil && !o.cfg.Filter(name) {
		return
	}

	end := time.Now()
	attrs := []attribute.KeyValue{
		attribute.String("veldt.component", name),
		attribute.Float64("veldt.render.duration_ms", float64(d.Microseconds())/1000),
	}
	if o.cfg.AttributeExtractor != nil {
		attrs = append(attrs, o.cfg.AttributeExtractor(name)...)
	}

	_, span := o.cfg.tracer.Start(context.Background(), "veldt.render",
		trace.WithTimestamp(end.Add(-d)),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End(trace.WithTimestamp(end))
}
