package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTelemetryDisabled(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	_, err := Init(ctx, &Config{
		Enabled:     false,
		ServiceName: "test-service",
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = Shutdown(ctx)
	})
}

func TestNewCounter_Disabled(t *testing.T) {
	setupTelemetryDisabled(t)

	counter, err := NewCounter(MetricOpts{
		Name:        "test_counter",
		Description: "A test counter",
		Unit:        "1",
	})
	require.NoError(t, err)
	require.NotNil(t, counter)

	// no-op meter, must not panic
	counter.Inc(context.Background(), OperationAttr("test.op"))
	counter.Add(context.Background(), 5, OrganizationAttr("acme"))
}

func TestNewHistogram_Disabled(t *testing.T) {
	setupTelemetryDisabled(t)

	histogram, err := NewHistogram(MetricOpts{
		Name:        "test_histogram",
		Description: "A test histogram",
		Unit:        "ms",
	})
	require.NoError(t, err)
	require.NotNil(t, histogram)

	histogram.Record(context.Background(), 12.5, OrganizationAttr("acme"))
}

func TestStartSpan_WithoutInit(t *testing.T) {
	globalTelemetry = nil

	ctx, span := StartSpan(context.Background(), "test.span")
	require.NotNil(t, span)
	defer span.End()

	// helpers on the no-op span must not panic
	SetSpanAttributes(ctx, OrganizationAttr("acme"), StatusCodeAttr(404))
	SetSpanError(ctx, assert.AnError)
}

func TestAttributeHelpers(t *testing.T) {
	org := OrganizationAttr("acme")
	assert.Equal(t, "organization.slug", string(org.Key))
	assert.Equal(t, "acme", org.Value.AsString())

	op := OperationAttr("project.create")
	assert.Equal(t, "operation", string(op.Key))
	assert.Equal(t, "project.create", op.Value.AsString())

	code := StatusCodeAttr(201)
	assert.Equal(t, "http.status_code", string(code.Key))
	assert.Equal(t, int64(201), code.Value.AsInt64())
}
