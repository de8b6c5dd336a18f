package emulator

import (
	"bufio"
	"context"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wrenhollow/bluebot/api/schemas"
)

// startBridge runs a one-connection fake bridge and returns its address plus
// a channel of received request lines.
func startBridge(t *testing.T, respond func(request string) string) (string, <-chan string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	requests := make(chan string, 32)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		rd := bufio.NewReader(conn)
		for {
			line, err := rd.ReadString('\n')
			if err != nil {
				return
			}
			line = strings.TrimSpace(line)
			requests <- line
			if _, err := conn.Write([]byte(respond(line) + "\n")); err != nil {
				return
			}
		}
	}()
	return ln.Addr().String(), requests
}

func dialTest(t *testing.T, addr string) *Client {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Address = addr
	client, err := Dial(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestReadByte(t *testing.T) {
	addr, requests := startBridge(t, func(req string) string {
		if req == "READ D057" {
			return "OK 02"
		}
		return "OK 00"
	})
	client := dialTest(t, addr)

	v, err := client.ReadByte(context.Background(), 0xD057)

	require.NoError(t, err)
	assert.Equal(t, byte(0x02), v)
	assert.Equal(t, "READ D057", <-requests)
}

func TestButtonAndTickCommands(t *testing.T) {
	addr, requests := startBridge(t, func(string) string { return "OK" })
	client := dialTest(t, addr)
	ctx := context.Background()

	require.NoError(t, client.ButtonDown(ctx, schemas.ButtonA))
	require.NoError(t, client.Tick(ctx, 16))
	require.NoError(t, client.ButtonUp(ctx, schemas.ButtonA))

	assert.Equal(t, "DOWN a", <-requests)
	assert.Equal(t, "TICK 16", <-requests)
	assert.Equal(t, "UP a", <-requests)
}

func TestBridgeErrorSurfaces(t *testing.T) {
	addr, _ := startBridge(t, func(string) string { return "ERR no such address" })
	client := dialTest(t, addr)

	_, err := client.ReadByte(context.Background(), 0xFFFF)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such address")
}

func TestMalformedReply(t *testing.T) {
	addr, _ := startBridge(t, func(string) string { return "WAT" })
	client := dialTest(t, addr)

	err := client.Tick(context.Background(), 1)
	assert.Error(t, err)
}

func TestClosedClientReportsUnavailable(t *testing.T) {
	addr, _ := startBridge(t, func(string) string { return "OK" })
	client := dialTest(t, addr)
	require.NoError(t, client.Close())

	err := client.Tick(context.Background(), 1)
	assert.ErrorIs(t, err, schemas.ErrCollaboratorUnavailable)
}

func TestDialFailureWrapsUnavailable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "127.0.0.1:1" // nothing listens here
	cfg.DialTimeout = cfg.DialTimeout / 10

	_, err := Dial(cfg, zap.NewNop())
	assert.ErrorIs(t, err, schemas.ErrCollaboratorUnavailable)
}
