package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tastenamibia/recipe-catalog/backend/config"
)

func TestInitDisabled(t *testing.T) {
	shutdown, err := Init(context.Background(), &config.Config{}, "test")
	require.NoError(t, err)

	_, span := Tracer().Start(context.Background(), "noop")
	assert.False(t, span.IsRecording())
	span.End()
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitEnabled(t *testing.T) {
	shutdown, err := Init(context.Background(), &config.Config{OTelEnabled: true}, "test")
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = Init(context.Background(), &config.Config{}, "test")
	})

	_, span := Tracer().Start(context.Background(), "recorded")
	assert.True(t, span.IsRecording())
	span.End()
	assert.NoError(t, shutdown(context.Background()))
}
