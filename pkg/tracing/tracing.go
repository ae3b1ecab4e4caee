// Package tracing wraps OpenTelemetry span creation around the two
// hottest entry points of the engine: AnonymizationResult.Output and
// the optimize* family. It follows the same "works with no collector
// configured" posture the teacher's metrics packages take towards
// Prometheus: spans are always created, but without an explicit
// exporter wired in they simply aren't sent anywhere.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/arxgo/arxgo")

// Init installs a TracerProvider under serviceName as the global
// provider. With no exporter registered, Init still causes every
// StartSpan call to build a real span (sampled, attributed, timed)
// that is simply dropped at End rather than shipped anywhere; the
// returned provider has no span processor attached.
func Init(serviceName string) (*sdktrace.TracerProvider, error) {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(semconv.ServiceNameKey.String(serviceName)))
	if err != nil {
		return nil, err
	}
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	tracer = provider.Tracer("github.com/arxgo/arxgo")
	return provider, nil
}

// StartSpan starts a span named name with the given key/value
// attribute pairs (attrs must have even length; an odd trailing key is
// dropped). The returned finish func must be deferred, passing the
// operation's error (nil for success).
func StartSpan(ctx context.Context, name string, attrs ...string) (context.Context, func(error)) {
	kvs := make([]attribute.KeyValue, 0, len(attrs)/2)
	for i := 0; i+1 < len(attrs); i += 2 {
		kvs = append(kvs, attribute.String(attrs[i], attrs[i+1]))
	}
	ctx, span := tracer.Start(ctx, name, trace.WithAttributes(kvs...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()
	}
}
