package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSimulatedGatewayZeroDelaySucceeds(t *testing.T) {
	g := NewSimulatedGateway(0, zap.NewNop().Sugar())
	ctx := context.Background()

	assert.NoError(t, g.SendOTP(ctx, "9876543210"))
	assert.NoError(t, g.VerifyOTP(ctx, "9876543210", "123456"))
	assert.NoError(t, g.PlaceOrder(ctx, "#BKS00000001"))
	assert.NoError(t, g.SendOrderConfirmation(ctx, "priya@example.com", "#BKS00000001"))
}

func TestSimulatedGatewayHonorsCancellation(t *testing.T) {
	g := NewSimulatedGateway(time.Minute, zap.NewNop().Sugar())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- g.PlaceOrder(ctx, "#BKS00000001") }()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("gateway ignored the cancelled context")
	}
}

func TestSimulatedGatewayDelays(t *testing.T) {
	delay := 20 * time.Millisecond
	g := NewSimulatedGateway(delay, zap.NewNop().Sugar())

	start := time.Now()
	require.NoError(t, g.SendOTP(context.Background(), "9876543210"))
	assert.GreaterOrEqual(t, time.Since(start), delay)
}
