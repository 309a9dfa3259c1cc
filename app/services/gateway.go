// Package services holds the storefront flows built on top of the stores:
// the checkout and cake customization wizards, the simulated auth flows,
// and the gateway standing in for the network backend.
package services

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// OTPResendSeconds is the countdown the view runs before offering to
// resend a one-time code.
const OTPResendSeconds = 30

// Gateway is the port for everything the real product would do over the
// network. The production implementation only waits a fixed delay and
// succeeds; tests substitute a zero-delay or failing one.
type Gateway interface {
	SendOTP(ctx context.Context, destination string) error
	VerifyOTP(ctx context.Context, destination, code string) error
	PlaceOrder(ctx context.Context, orderCode string) error
	SendOrderConfirmation(ctx context.Context, email, orderCode string) error
}

// SimulatedGateway answers every call successfully after a fixed delay,
// unless the context is cancelled first.
type SimulatedGateway struct {
	delay time.Duration
	log   *zap.SugaredLogger
}

func NewSimulatedGateway(delay time.Duration, log *zap.SugaredLogger) *SimulatedGateway {
	return &SimulatedGateway{delay: delay, log: log}
}

func (g *SimulatedGateway) wait(ctx context.Context) error {
	if g.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (g *SimulatedGateway) SendOTP(ctx context.Context, destination string) error {
	if err := g.wait(ctx); err != nil {
		return err
	}
	g.log.Infof("simulated OTP sent to %s", destination)
	return nil
}

// VerifyOTP accepts any code. There is no real verification anywhere.
func (g *SimulatedGateway) VerifyOTP(ctx context.Context, destination, code string) error {
	if err := g.wait(ctx); err != nil {
		return err
	}
	g.log.Infof("simulated OTP verified for %s", destination)
	return nil
}

func (g *SimulatedGateway) PlaceOrder(ctx context.Context, orderCode string) error {
	if err := g.wait(ctx); err != nil {
		return err
	}
	g.log.Infof("simulated order placement confirmed for %s", orderCode)
	return nil
}

func (g *SimulatedGateway) SendOrderConfirmation(ctx context.Context, email, orderCode string) error {
	if err := g.wait(ctx); err != nil {
		return err
	}
	g.log.Infof("simulated confirmation email for %s sent to %s", orderCode, email)
	return nil
}
