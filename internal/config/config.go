package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/username/day-range-counter/internal/dayrange"
)

// EnvPrefix is prepended to environment overrides, e.g. DRC_SERVER_LISTEN_ADDR
const EnvPrefix = "DRC"

// Config represents application configuration
type Config struct {
	Counter CounterConfig `mapstructure:"counter"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
}

// CounterConfig holds the initial state of the day selection
type CounterConfig struct {
	IncludeAllDays bool     `mapstructure:"include_all_days"`
	IncludeEndDay  bool     `mapstructure:"include_end_day"`
	Weekdays       []string `mapstructure:"weekdays"`
}

// ServerConfig represents HTTP endpoint configuration
type ServerConfig struct {
	ListenAddr      string   `mapstructure:"listen_addr" validate:"required"`
	RatePerMinute   int      `mapstructure:"rate_per_minute" validate:"gte=0"`
	RateBurst       int      `mapstructure:"rate_burst" validate:"gte=0"`
	AllowedOrigins  []string `mapstructure:"allowed_origins" validate:"min=1,dive,required"`
	ShutdownTimeout string   `mapstructure:"shutdown_timeout"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// SetDefaults registers the default value of every key
func SetDefaults(v *viper.Viper) {
	labels := make([]string, 0, len(dayrange.AllWeekdays))
	for _, day := range dayrange.AllWeekdays {
		labels = append(labels, day.Label())
	}

	v.SetDefault("counter.include_all_days", true)
	v.SetDefault("counter.include_end_day", false)
	v.SetDefault("counter.weekdays", labels)

	v.SetDefault("server.listen_addr", ":8080")
	v.SetDefault("server.rate_per_minute", 120)
	v.SetDefault("server.rate_burst", 20)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", "5s")

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Load loads configuration from file.
// A missing file is not an error: defaults and environment still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.day-range-counter")
		v.AddConfigPath("/etc/day-range-counter")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if _, err := dayrange.ParseWeekdays(c.Counter.Weekdays...); err != nil {
		return fmt.Errorf("counter.weekdays: %w", err)
	}

	if c.Server.ShutdownTimeout != "" {
		if _, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil {
			return fmt.Errorf("server.shutdown_timeout: %w", err)
		}
	}

	return nil
}

// Selection returns the initial day selection described by the counter section
func (c *CounterConfig) Selection() *dayrange.Selection {
	// Weekdays were checked by Validate
	days, _ := dayrange.ParseWeekdays(c.Weekdays...)

	selection := dayrange.NewSelection()
	selection.SetFilter(dayrange.NewWeekdayFilter(days...))
	selection.SetIncludeAll(c.IncludeAllDays)
	selection.SetIncludeEndDay(c.IncludeEndDay)
	return selection
}

// GetShutdownTimeout returns graceful shutdown timeout duration
func (c *ServerConfig) GetShutdownTimeout() time.Duration {
	if c.ShutdownTimeout == "" {
		return 5 * time.Second
	}
	duration, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		return 5 * time.Second
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Server.ListenAddr = os.ExpandEnv(c.Server.ListenAddr)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
