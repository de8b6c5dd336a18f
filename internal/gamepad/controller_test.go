package gamepad

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wrenhollow/bluebot/api/schemas"
)

type fakeDevice struct {
	events  []string
	tickErr error
	downErr error
}

func (d *fakeDevice) ButtonDown(ctx context.Context, b schemas.Button) error {
	d.events = append(d.events, "down:"+string(b))
	return d.downErr
}

func (d *fakeDevice) ButtonUp(ctx context.Context, b schemas.Button) error {
	d.events = append(d.events, "up:"+string(b))
	return nil
}

func (d *fakeDevice) Tick(ctx context.Context, frames int) error {
	d.events = append(d.events, "tick")
	return d.tickErr
}

func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.PressesPerSecond = 10000 // keep tests from sleeping
	return cfg
}

func TestPressHoldReleaseOrder(t *testing.T) {
	dev := &fakeDevice{}
	c := New(fastConfig(), dev, zap.NewNop())

	err := c.Press(context.Background(), schemas.ButtonA, 10)

	require.NoError(t, err)
	assert.Equal(t, []string{"down:a", "tick", "up:a"}, dev.events)
}

func TestPressEnforcesMinimumHold(t *testing.T) {
	dev := &fakeDevice{}
	cfg := fastConfig()
	cfg.MinHoldFrames = 5
	c := New(cfg, dev, zap.NewNop())

	require.NoError(t, c.Press(context.Background(), schemas.ButtonUp, 0))
	assert.Equal(t, []string{"down:up", "tick", "up:up"}, dev.events)
}

func TestPressReleasesAfterTickFailure(t *testing.T) {
	dev := &fakeDevice{tickErr: errors.New("emulator gone")}
	c := New(fastConfig(), dev, zap.NewNop())

	err := c.Press(context.Background(), schemas.ButtonB, 4)

	require.Error(t, err)
	assert.Contains(t, dev.events, "up:b", "button must be released even when the hold fails")
}

func TestPressDeviceFailure(t *testing.T) {
	dev := &fakeDevice{downErr: errors.New("no joypad")}
	c := New(fastConfig(), dev, zap.NewNop())

	err := c.Press(context.Background(), schemas.ButtonStart, 4)
	assert.Error(t, err)
}

func TestPressCancelledContext(t *testing.T) {
	dev := &fakeDevice{}
	cfg := fastConfig()
	cfg.PressesPerSecond = 0.001 // force the limiter to block
	c := New(cfg, dev, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, c.Press(ctx, schemas.ButtonA, 4)) // first press uses the burst token
	cancel()

	err := c.Press(ctx, schemas.ButtonA, 4)
	assert.Error(t, err)
}

func TestAdvanceTicksWithoutInput(t *testing.T) {
	dev := &fakeDevice{}
	c := New(fastConfig(), dev, zap.NewNop())

	require.NoError(t, c.Advance(context.Background(), 60))
	assert.Equal(t, []string{"tick"}, dev.events)
}
