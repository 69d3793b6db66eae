package pubsub

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "profileview-pubsub"

// TracingConfig controls OpenTelemetry tracing of the event bus.
type TracingConfig struct {
	Enabled     bool
	ServiceName string
	ZipkinURL   string
}

// Tracing owns the tracer used by the bus. It is a no-op when disabled.
type Tracing struct {
	tracer   trace.Tracer
	provider *sdktrace.TracerProvider
}

// NewTracing sets up a Zipkin-exporting tracer provider, or a no-op tracer
// when cfg.Enabled is false.
func NewTracing(ctx context.Context, cfg TracingConfig) (*Tracing, error) {
	if !cfg.Enabled {
		return &Tracing{tracer: noop.NewTracerProvider().Tracer(tracerName)}, nil
	}

	exporter, err := zipkin.New(cfg.ZipkinURL)
	if err != nil {
		return nil, fmt.Errorf("create zipkin exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceNameKey.String(cfg.ServiceName),
	))
	if err != nil {
		return nil, fmt.Errorf("create trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Tracing{tracer: tp.Tracer(tracerName), provider: tp}, nil
}

// Tracer returns the bus tracer.
func (t *Tracing) Tracer() trace.Tracer {
	return t.tracer
}

// Shutdown flushes pending spans.
func (t *Tracing) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}

var propagator = propagation.TraceContext{}

func spanAttributes(operation, topic string, msg *message.Message) trace.SpanStartOption {
	return trace.WithAttributes(
		attribute.String("messaging.system", "watermill"),
		attribute.String("messaging.operation", operation),
		attribute.String("messaging.destination", topic),
		attribute.String("messaging.message_id", msg.UUID),
		attribute.String("request.id", msg.Metadata.Get("request_id")),
		attribute.Int("messaging.message_payload_size_bytes", len(msg.Payload)),
	)
}

// tracingPublisher starts a producer span per message and carries its
// context to subscribers in the message metadata.
type tracingPublisher struct {
	message.Publisher
	tracer trace.Tracer
}

func (p *tracingPublisher) Publish(topic string, messages ...*message.Message) error {
	spans := make([]trace.Span, 0, len(messages))
	for _, msg := range messages {
		ctx, span := p.tracer.Start(msg.Context(), "pubsub.publish."+topic,
			trace.WithSpanKind(trace.SpanKindProducer),
			spanAttributes("publish", topic, msg),
		)
		propagator.Inject(ctx, propagation.MapCarrier(msg.Metadata))
		msg.SetContext(ctx)
		spans = append(spans, span)
	}

	err := p.Publisher.Publish(topic, messages...)
	for _, span := range spans {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
	return err
}

// startProcessSpan continues the publisher's trace for a received message.
func startProcessSpan(tracer trace.Tracer, topic string, msg *message.Message) (context.Context, trace.Span) {
	ctx := propagator.Extract(msg.Context(), propagation.MapCarrier(msg.Metadata))
	return tracer.Start(ctx, "pubsub.process."+topic,
		trace.WithSpanKind(trace.SpanKindConsumer),
		spanAttributes("process", topic, msg),
	)
}
