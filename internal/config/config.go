// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the entire application configuration.
type Config struct {
	Logger      LoggerConfig      `mapstructure:"logger" yaml:"logger"`
	Emulator    EmulatorConfig    `mapstructure:"emulator" yaml:"emulator"`
	Battle      BattleConfig      `mapstructure:"battle" yaml:"battle"`
	Navigation  NavigationConfig  `mapstructure:"navigation" yaml:"navigation"`
	Progression ProgressionConfig `mapstructure:"progression" yaml:"progression"`
	Bot         BotConfig         `mapstructure:"bot" yaml:"bot"`
}

// LoggerConfig configures the global zap logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig maps log levels to terminal colors for the console encoder.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// EmulatorConfig configures the connection to the emulator process and input
// pacing.
type EmulatorConfig struct {
	// Address is the emulator bridge host:port.
	Address string `mapstructure:"address" yaml:"address"`
	// DialTimeout bounds the initial connection attempt.
	DialTimeout time.Duration `mapstructure:"dial_timeout" yaml:"dial_timeout"`
	// RequestTimeout bounds each bridge round trip.
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
	// PressesPerSecond caps how fast the controller injects button presses.
	PressesPerSecond float64 `mapstructure:"presses_per_second" yaml:"presses_per_second"`
	// MinHoldFrames is the minimum hold for any press.
	MinHoldFrames int `mapstructure:"min_hold_frames" yaml:"min_hold_frames"`
}

// BattleConfig tunes the combat policy.
type BattleConfig struct {
	// LowHPThreshold is the HP ratio below which the strongest potion is used.
	LowHPThreshold float64 `mapstructure:"low_hp_threshold" yaml:"low_hp_threshold"`
	// MidHPThreshold is the HP ratio below which a basic potion is used.
	MidHPThreshold float64 `mapstructure:"mid_hp_threshold" yaml:"mid_hp_threshold"`
	// FleeAfterIneffectiveTurns flees a wild battle after this many
	// consecutive turns with no effective damaging move.
	FleeAfterIneffectiveTurns int `mapstructure:"flee_after_ineffective_turns" yaml:"flee_after_ineffective_turns"`
	// MenuFrames, ConfirmFrames, and AnimationFrames hold the menu walk,
	// selection confirm, and move animation timings.
	MenuFrames      int `mapstructure:"menu_frames" yaml:"menu_frames"`
	ConfirmFrames   int `mapstructure:"confirm_frames" yaml:"confirm_frames"`
	AnimationFrames int `mapstructure:"animation_frames" yaml:"animation_frames"`
}

// NavigationConfig tunes overworld movement.
type NavigationConfig struct {
	FramesPerStep     int `mapstructure:"frames_per_step" yaml:"frames_per_step"`
	StuckThreshold    int `mapstructure:"stuck_threshold" yaml:"stuck_threshold"`
	EscapeSteps       int `mapstructure:"escape_steps" yaml:"escape_steps"`
	MaxEscapeAttempts int `mapstructure:"max_escape_attempts" yaml:"max_escape_attempts"`
	MaxSteps          int `mapstructure:"max_steps" yaml:"max_steps"`
}

// ProgressionConfig tunes the milestone machine and its persistence.
type ProgressionConfig struct {
	// RecordPath is where the progression record is stored.
	RecordPath string `mapstructure:"record_path" yaml:"record_path"`
	// MaxSubGoalFailures aborts the run when one sub-goal keeps failing.
	MaxSubGoalFailures int `mapstructure:"max_sub_goal_failures" yaml:"max_sub_goal_failures"`
}

// BotConfig tunes the orchestrator loop.
type BotConfig struct {
	// MaxIterations bounds the main loop; 0 means run until complete.
	MaxIterations int `mapstructure:"max_iterations" yaml:"max_iterations"`
	// StatusInterval throttles periodic status log lines, in seconds.
	StatusInterval float64 `mapstructure:"status_interval" yaml:"status_interval"`
}

// NewDefaultConfig creates a configuration struct populated with defaults.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for all configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "bluebot")
	v.SetDefault("logger.log_file", "bluebot.log")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "magenta")

	// -- Emulator --
	v.SetDefault("emulator.address", "127.0.0.1:8712")
	v.SetDefault("emulator.dial_timeout", "5s")
	v.SetDefault("emulator.request_timeout", "10s")
	v.SetDefault("emulator.presses_per_second", 30.0)
	v.SetDefault("emulator.min_hold_frames", 2)

	// -- Battle --
	v.SetDefault("battle.low_hp_threshold", 0.20)
	v.SetDefault("battle.mid_hp_threshold", 0.50)
	v.SetDefault("battle.flee_after_ineffective_turns", 3)
	v.SetDefault("battle.menu_frames", 10)
	v.SetDefault("battle.confirm_frames", 30)
	v.SetDefault("battle.animation_frames", 60)

	// -- Navigation --
	v.SetDefault("navigation.frames_per_step", 16)
	v.SetDefault("navigation.stuck_threshold", 5)
	v.SetDefault("navigation.escape_steps", 3)
	v.SetDefault("navigation.max_escape_attempts", 3)
	v.SetDefault("navigation.max_steps", 2000)

	// -- Progression --
	v.SetDefault("progression.record_path", "progression_state.json")
	v.SetDefault("progression.max_sub_goal_failures", 10)

	// -- Bot --
	v.SetDefault("bot.max_iterations", 0)
	v.SetDefault("bot.status_interval", 10.0)
}

// NewConfigFromViper creates a validated configuration from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.Emulator.Address == "" {
		return fmt.Errorf("emulator.address is required")
	}
	if c.Emulator.PressesPerSecond <= 0 {
		return fmt.Errorf("emulator.presses_per_second must be positive")
	}
	if c.Battle.LowHPThreshold <= 0 || c.Battle.LowHPThreshold >= 1 {
		return fmt.Errorf("battle.low_hp_threshold must be in (0, 1)")
	}
	if c.Battle.MidHPThreshold <= c.Battle.LowHPThreshold || c.Battle.MidHPThreshold >= 1 {
		return fmt.Errorf("battle.mid_hp_threshold must be in (low_hp_threshold, 1)")
	}
	if c.Battle.FleeAfterIneffectiveTurns <= 0 {
		return fmt.Errorf("battle.flee_after_ineffective_turns must be positive")
	}
	if c.Navigation.StuckThreshold <= 0 {
		return fmt.Errorf("navigation.stuck_threshold must be positive")
	}
	if c.Navigation.MaxSteps <= 0 {
		return fmt.Errorf("navigation.max_steps must be positive")
	}
	if c.Progression.RecordPath == "" {
		return fmt.Errorf("progression.record_path is required")
	}
	if c.Progression.MaxSubGoalFailures <= 0 {
		return fmt.Errorf("progression.max_sub_goal_failures must be positive")
	}
	if c.Bot.MaxIterations < 0 {
		return fmt.Errorf("bot.max_iterations must not be negative")
	}
	return nil
}
