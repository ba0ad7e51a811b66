package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestShutdownTracer(t *testing.T) {
	a := &App{tracer: sdktrace.NewTracerProvider()}
	require.NoError(t, a.shutdownTracer(context.Background()))
}

func TestShutdownTracerDisabled(t *testing.T) {
	a := &App{}
	require.NoError(t, a.shutdownTracer(context.Background()))
}
