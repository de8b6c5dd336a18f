package observability

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/wrenhollow/bluebot/internal/config"
)

// memSink collects log output for assertions.
type memSink struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (s *memSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.WriteString(string(p))
}

func (s *memSink) Sync() error { return nil }

func (s *memSink) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func testLoggerConfig() config.LoggerConfig {
	cfg := config.NewDefaultConfig().Logger
	cfg.LogFile = "" // no file core in tests
	return cfg
}

func TestInitializeWritesToConsole(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	sink := &memSink{}
	cfg := testLoggerConfig()
	cfg.Format = "json"
	Initialize(cfg, zapcore.Lock(sink))

	GetLogger().Info("snapshot ready")

	out := sink.String()
	assert.Contains(t, out, "snapshot ready")
	assert.Contains(t, out, "INFO")
}

func TestInitializeOnlyOnce(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	first := &memSink{}
	second := &memSink{}
	cfg := testLoggerConfig()
	cfg.Format = "json"
	Initialize(cfg, zapcore.Lock(first))
	Initialize(cfg, zapcore.Lock(second))

	GetLogger().Info("only one sink")

	assert.Contains(t, first.String(), "only one sink")
	assert.Empty(t, second.String())
}

func TestGetLoggerFallbackBeforeInitialize(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	logger := GetLogger()
	require.NotNil(t, logger)
}

func TestInitializeRespectsLevel(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	sink := &memSink{}
	cfg := testLoggerConfig()
	cfg.Format = "json"
	cfg.Level = "warn"
	Initialize(cfg, zapcore.Lock(sink))

	GetLogger().Info("too quiet")
	GetLogger().Warn("loud enough")

	out := sink.String()
	assert.NotContains(t, out, "too quiet")
	assert.Contains(t, out, "loud enough")
}
