package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{ServiceName: "seller-console"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewTracerProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ratio      float64
		wantSample bool
	}{
		{name: "always sample", ratio: 1, wantSample: true},
		{name: "never sample", ratio: 0, wantSample: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// The gRPC connection is established lazily, so nothing needs to
			// listen on the endpoint.
			tp, err := NewTracerProvider(context.Background(), Config{
				Endpoint:    "127.0.0.1:4317",
				Insecure:    true,
				ServiceName: "seller-console",
				Version:     "test",
				SampleRatio: tt.ratio,
			})
			require.NoError(t, err)

			_, span := tp.Tracer("test").Start(context.Background(), "op")
			assert.Equal(t, tt.wantSample, span.SpanContext().IsSampled())
			span.End()

			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()
			_ = tp.Shutdown(ctx)
		})
	}
}

func TestNewTracerProvider_Resource(t *testing.T) {
	t.Parallel()

	tp, err := NewTracerProvider(context.Background(), Config{
		Endpoint:    "127.0.0.1:4317",
		Insecure:    true,
		ServiceName: "seller-console",
		SampleRatio: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		_ = tp.Shutdown(ctx)
	})

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	ro, ok := span.(sdktrace.ReadOnlySpan)
	require.True(t, ok)
	v, found := ro.Resource().Set().Value(attribute.Key("service.name"))
	require.True(t, found)
	assert.Equal(t, "seller-console", v.AsString())
}
