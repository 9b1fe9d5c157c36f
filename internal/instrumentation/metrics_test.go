package instrumentation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	m, err := NewMetrics(provider.Meter("test"))
	require.NoError(t, err)
	return m, reader
}

func collectedMetricNames(t *testing.T, reader *sdkmetric.ManualReader) map[string]bool {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	names := make(map[string]bool)
	for _, scope := range rm.ScopeMetrics {
		for _, metric := range scope.Metrics {
			names[metric.Name] = true
		}
	}
	return names
}

func TestRecordToolInvocation(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordToolInvocation(context.Background(), "drive_search_files", StatusSuccess, 100*time.Millisecond)

	names := collectedMetricNames(t, reader)
	assert.True(t, names["mcp_tool_invocations_total"])
	assert.True(t, names["mcp_tool_duration_seconds"])
}

func TestRecordWorkspaceAPIOperation(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordWorkspaceAPIOperation(context.Background(), ServiceSheets, "get_values", StatusError, time.Second)

	names := collectedMetricNames(t, reader)
	assert.True(t, names["workspace_api_operations_total"])
	assert.True(t, names["workspace_api_operation_duration_seconds"])
}

func TestRecordCredentialResolution(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordCredentialResolution(context.Background(), "stored-token", StatusSuccess)
	m.RecordCredentialResolution(context.Background(), "", StatusError)

	names := collectedMetricNames(t, reader)
	assert.True(t, names["credential_resolutions_total"])
}

func TestRecordTokenRefresh(t *testing.T) {
	m, reader := newTestMetrics(t)

	m.RecordTokenRefresh(context.Background(), "success")

	names := collectedMetricNames(t, reader)
	assert.True(t, names["oauth_token_refresh_total"])
}

func TestZeroValueMetricsAreNoOp(t *testing.T) {
	var m Metrics

	// Must not panic with uninitialized instruments.
	m.RecordToolInvocation(context.Background(), "tool", StatusSuccess, time.Second)
	m.RecordWorkspaceAPIOperation(context.Background(), ServiceGmail, "send", StatusSuccess, time.Second)
	m.RecordCredentialResolution(context.Background(), "inline-config", StatusSuccess)
	m.RecordTokenRefresh(context.Background(), "failure")
}
