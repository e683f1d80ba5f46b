package obs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), TracingConfig{})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracing_Stdout(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), TracingConfig{
		Enabled:     true,
		ServiceName: "freight-route-service-test",
		Exporter:    "stdout",
		SampleRatio: 1,
	})
	require.NoError(t, err)
	ShutdownWithTimeout(context.Background(), shutdown)

	// leave a noop provider behind for other tests
	_, err = InitTracing(context.Background(), TracingConfig{})
	require.NoError(t, err)
}

func TestInitTracing_UnsupportedExporter(t *testing.T) {
	_, err := InitTracing(context.Background(), TracingConfig{Enabled: true, Exporter: "zipkin"})
	require.Error(t, err)
}

func TestWithRequestID(t *testing.T) {
	ctx, id := WithRequestID(context.Background())
	require.NotEmpty(t, id)
	assert.Equal(t, id, RequestID(ctx))

	// an existing id is kept
	ctx2, id2 := WithRequestID(ctx)
	assert.Equal(t, id, id2)
	assert.Equal(t, id, RequestID(ctx2))

	assert.Empty(t, RequestID(context.Background()))
}
