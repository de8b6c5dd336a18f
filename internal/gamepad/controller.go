// Package gamepad issues button input to the emulator. Presses are
// rate-limited so a retry loop upstream can never hammer the device faster
// than the game can sample the joypad.
package gamepad

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/wrenhollow/bluebot/api/schemas"
)

// Device is the emulator joypad surface.
type Device interface {
	ButtonDown(ctx context.Context, b schemas.Button) error
	ButtonUp(ctx context.Context, b schemas.Button) error
	Tick(ctx context.Context, frames int) error
}

// Config tunes input pacing.
type Config struct {
	// PressesPerSecond caps the press rate.
	PressesPerSecond float64
	// MinHoldFrames is the floor for any press hold.
	MinHoldFrames int
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		PressesPerSecond: 30,
		MinHoldFrames:    2,
	}
}

// Controller implements schemas.InputController over a Device.
type Controller struct {
	cfg     Config
	dev     Device
	limiter *rate.Limiter
	logger  *zap.Logger
}

// New returns a Controller over the given device.
func New(cfg Config, dev Device, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		cfg:     cfg,
		dev:     dev,
		limiter: rate.NewLimiter(rate.Limit(cfg.PressesPerSecond), 1),
		logger:  logger.Named("gamepad"),
	}
}

// Press holds a button for holdFrames frames, then releases it. The release
// is attempted even when the tick fails so a stuck button cannot outlive the
// call.
func (c *Controller) Press(ctx context.Context, b schemas.Button, holdFrames int) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("gamepad: pacing press: %w", err)
	}
	if holdFrames < c.cfg.MinHoldFrames {
		holdFrames = c.cfg.MinHoldFrames
	}
	c.logger.Debug("press", zap.String("button", string(b)), zap.Int("hold_frames", holdFrames))

	if err := c.dev.ButtonDown(ctx, b); err != nil {
		return fmt.Errorf("gamepad: press %s: %w", b, err)
	}
	tickErr := c.dev.Tick(ctx, holdFrames)
	if err := c.dev.ButtonUp(ctx, b); err != nil {
		if tickErr != nil {
			return fmt.Errorf("gamepad: hold %s: %w", b, tickErr)
		}
		return fmt.Errorf("gamepad: release %s: %w", b, err)
	}
	if tickErr != nil {
		return fmt.Errorf("gamepad: hold %s: %w", b, tickErr)
	}
	return nil
}

// Advance runs the emulator forward without any input held.
func (c *Controller) Advance(ctx context.Context, frames int) error {
	if err := c.dev.Tick(ctx, frames); err != nil {
		return fmt.Errorf("gamepad: advance %d frames: %w", frames, err)
	}
	return nil
}
