package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitTracer_NoCollector(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), "test-service", "", zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	shutdown()
}

func TestSampler_RatioFromEnv(t *testing.T) {
	testCases := []struct {
		name  string
		ratio string
		want  string
	}{
		{name: "default samples everything", ratio: "", want: "ParentBased{root:AlwaysOnSampler"},
		{name: "fraction", ratio: "0.25", want: "ParentBased{root:TraceIDRatioBased{0.25}"},
		{name: "clamped above one", ratio: "3", want: "ParentBased{root:AlwaysOnSampler"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OTEL_SAMPLE_RATIO", tc.ratio)
			assert.Contains(t, sampler().Description(), tc.want)
		})
	}
}
