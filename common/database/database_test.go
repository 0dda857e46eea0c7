package database

import (
	"context"
	"testing"

	"github.com/nickdelicto/ai-resume-builder-sub008/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOptions_Hosts(t *testing.T) {
	testCases := []struct {
		name string
		dsn  string
		want []string
	}{
		{name: "single host", dsn: "localhost:9000", want: []string{"localhost:9000"}},
		{name: "query suffix ignored", dsn: "ch1:9000,ch2:9000?secure=true", want: []string{"ch1:9000", "ch2:9000"}},
		{name: "blank entries dropped", dsn: " ch1:9000 , ,", want: []string{"ch1:9000"}},
		{name: "empty", dsn: "", want: nil},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Options{DSN: tc.dsn}.Hosts())
		})
	}
}

func TestNew_NoHosts(t *testing.T) {
	_, err := New(context.Background(), Options{DSN: "?debug=1"}, zap.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrTypeInvalidInput))
}
