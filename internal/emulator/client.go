// Package emulator speaks to the emulator bridge over a TCP line protocol.
// Each request is a single line terminated by \n; each response is either
// "OK", "OK <hex>", or "ERR <message>". The client serializes requests, so
// it is safe to share between the reader and the controller.
package emulator

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wrenhollow/bluebot/api/schemas"
)

// Config holds the bridge connection settings.
type Config struct {
	// Address is the bridge host:port.
	Address string
	// DialTimeout bounds the initial connection attempt.
	DialTimeout time.Duration
	// RequestTimeout bounds each round trip.
	RequestTimeout time.Duration
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() Config {
	return Config{
		Address:        "127.0.0.1:8712",
		DialTimeout:    5 * time.Second,
		RequestTimeout: 10 * time.Second,
	}
}

// Client implements the memory bus and joypad device over one connection.
type Client struct {
	cfg    Config
	logger *zap.Logger

	mu   sync.Mutex
	conn net.Conn
	rd   *bufio.Reader
}

// Dial connects to the bridge.
func Dial(cfg Config, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	conn, err := net.DialTimeout("tcp", cfg.Address, cfg.DialTimeout)
	if err != nil {
		return nil, fmt.Errorf("emulator: dialing %s: %v: %w", cfg.Address, err, schemas.ErrCollaboratorUnavailable)
	}
	logger.Info("connected to emulator bridge", zap.String("address", cfg.Address))
	return &Client{
		cfg:    cfg,
		logger: logger.Named("emulator"),
		conn:   conn,
		rd:     bufio.NewReader(conn),
	}, nil
}

// Close shuts the connection down.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// roundTrip sends one request line and reads one response line.
func (c *Client) roundTrip(ctx context.Context, request string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return "", fmt.Errorf("emulator: connection closed: %w", schemas.ErrCollaboratorUnavailable)
	}

	deadline := time.Now().Add(c.cfg.RequestTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return "", fmt.Errorf("emulator: setting deadline: %w", err)
	}

	if _, err := fmt.Fprintf(c.conn, "%s\n", request); err != nil {
		return "", fmt.Errorf("emulator: sending %q: %v: %w", request, err, schemas.ErrCollaboratorUnavailable)
	}
	line, err := c.rd.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("emulator: reading reply to %q: %v: %w", request, err, schemas.ErrCollaboratorUnavailable)
	}
	line = strings.TrimSpace(line)

	switch {
	case line == "OK":
		return "", nil
	case strings.HasPrefix(line, "OK "):
		return strings.TrimPrefix(line, "OK "), nil
	case strings.HasPrefix(line, "ERR "):
		return "", fmt.Errorf("emulator: bridge error for %q: %s", request, strings.TrimPrefix(line, "ERR "))
	default:
		return "", fmt.Errorf("emulator: unexpected reply %q to %q", line, request)
	}
}

// ReadByte reads one byte of work RAM.
func (c *Client) ReadByte(ctx context.Context, addr uint16) (byte, error) {
	reply, err := c.roundTrip(ctx, fmt.Sprintf("READ %04X", addr))
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(reply, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("emulator: bad byte %q for 0x%04X: %w", reply, addr, err)
	}
	return byte(v), nil
}

// ButtonDown presses and holds a button.
func (c *Client) ButtonDown(ctx context.Context, b schemas.Button) error {
	_, err := c.roundTrip(ctx, "DOWN "+string(b))
	return err
}

// ButtonUp releases a button.
func (c *Client) ButtonUp(ctx context.Context, b schemas.Button) error {
	_, err := c.roundTrip(ctx, "UP "+string(b))
	return err
}

// Tick advances the emulator by the given frame count.
func (c *Client) Tick(ctx context.Context, frames int) error {
	_, err := c.roundTrip(ctx, "TICK "+strconv.Itoa(frames))
	return err
}
